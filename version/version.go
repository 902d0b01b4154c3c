package version

// Set through ldflags at release build time.
var (
	Version   = "0.0.0"
	BuildDate = ""
)
