package notebook

import (
	"errors"

	"github.com/databricks/databricks-sdk-go/apierr"

	"notebook-kit-databricks/notebook/constants"
)

var (
	// ErrAmbiguousCluster is returned when both a cluster name and a cluster id are provided.
	ErrAmbiguousCluster = errors.New("cluster name and cluster id are mutually exclusive")
	// ErrMissingNotebookPath is returned when no notebook path is given and none is available from the context.
	ErrMissingNotebookPath = errors.New("notebook path is required")
)

func isResourceDoesNotExist(err error) bool {
	var apiErr *apierr.APIError
	if !errors.As(err, &apiErr) {
		return false
	}

	return apiErr.ErrorCode == constants.ErrorCodeResourceDoesNotExist
}
