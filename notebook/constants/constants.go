package constants

const (
	// DefaultRunsDir is where snapshots of running notebooks are collected.
	DefaultRunsDir = "/Shared/runs"

	// DefaultStagingDir is the DBFS location used for transfer staging artifacts.
	DefaultStagingDir = "/mnt/external/tmp"

	// StagingNamePrefix is the prefix of every staging artifact name.
	StagingNamePrefix = "backup_"

	// StagingNameSpace bounds the random suffix of a staging artifact name (inclusive).
	StagingNameSpace = 1000

	// SnapshotTimeLayout renders a fixed-width, lexicographically sortable timestamp.
	SnapshotTimeLayout = "20060102150405"

	// ErrorCodeResourceDoesNotExist is the only remote error code with dedicated handling.
	ErrorCodeResourceDoesNotExist = "RESOURCE_DOES_NOT_EXIST"
)
