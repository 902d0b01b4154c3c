package notebook

import (
	"path"
	"strings"

	"github.com/hashicorp/go-hclog"
)

var logger hclog.Logger

func init() {
	logger = hclog.New(&hclog.LoggerOptions{Name: "notebook-kit"})
}

// SetLogger replaces the package logger, for callers that aggregate logging.
func SetLogger(l hclog.Logger) {
	if l != nil {
		logger = l
	}
}

// resolveNotebookPath makes notebookPath absolute, resolving relative paths
// against the directory of the current notebook.
func resolveNotebookPath(notebookPath string, currentNotebookPath string) string {
	if path.IsAbs(notebookPath) {
		return notebookPath
	}

	return path.Join(path.Dir(currentNotebookPath), notebookPath)
}

// snapshotTargetPath composes runsDir, the notebook path with its leading
// slash stripped, and the timestamp into the snapshot location.
func snapshotTargetPath(runsDir string, currentPath string, timestamp string) string {
	return path.Join(runsDir, strings.TrimPrefix(currentPath, "/"), timestamp)
}
