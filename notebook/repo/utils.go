package repo

import (
	"errors"
	"net/http"

	"github.com/databricks/databricks-sdk-go/apierr"
	"github.com/hashicorp/go-hclog"
)

var logger hclog.Logger

func init() {
	logger = hclog.New(&hclog.LoggerOptions{Name: "notebook-kit.repo"})
}

// SetLogger replaces the package logger, for callers that aggregate logging.
func SetLogger(l hclog.Logger) {
	if l != nil {
		logger = l
	}
}

func isNotFound(err error) bool {
	var apiErr *apierr.APIError
	if !errors.As(err, &apiErr) {
		return false
	}

	return apiErr.StatusCode == http.StatusNotFound
}
