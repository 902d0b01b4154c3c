package platform

import (
	"errors"
	"fmt"
)

//go:generate go run github.com/raito-io/enumer -type=DatabricksPlatform -trimprefix=DatabricksPlatform -transform=lower
type DatabricksPlatform int

const (
	DatabricksPlatformAzure DatabricksPlatform = iota + 1
	DatabricksPlatformGCP
	DatabricksPlatformAWS
)

// WorkspaceAddress builds the browser host URL for a workspace deployment name.
func (p DatabricksPlatform) WorkspaceAddress(deploymentName string) (string, error) {
	url, err := p.fmtUrl()
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(url, deploymentName), nil
}

func (p DatabricksPlatform) fmtUrl() (string, error) {
	switch p {
	case DatabricksPlatformAzure:
		return "https://%s.azuredatabricks.net", nil
	case DatabricksPlatformGCP:
		return "https://%s.gcp.databricks.com", nil
	case DatabricksPlatformAWS:
		return "https://%s.cloud.databricks.com", nil
	default:
		return "", errors.New("unsupported platform")
	}
}
