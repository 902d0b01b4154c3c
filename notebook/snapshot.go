package notebook

import (
	"context"
	"fmt"
	"path"

	"notebook-kit-databricks/notebook/constants"
)

// SnapshotCurrentRun backs up the currently executing notebook into the runs
// directory, preserving its workspace path and appending a sortable timestamp.
// When the destination's directory tree does not exist yet, it is created and
// the backup is retried exactly once; any other failure propagates unchanged.
// The two attempts are not atomic, neither between themselves nor internally.
//
// Returns the workspace path the snapshot was written to.
func (c *Client) SnapshotCurrentRun(ctx context.Context, opt ...SnapshotOption) (string, error) {
	options := snapshotOptions{runsDir: constants.DefaultRunsDir}
	for _, fn := range opt {
		fn(&options)
	}

	currentPath := c.nbContext.NotebookPath()
	if currentPath == "" {
		return "", ErrMissingNotebookPath
	}

	timestamp := c.now().Format(constants.SnapshotTimeLayout)
	targetPath := snapshotTargetPath(options.runsDir, currentPath, timestamp)

	err := c.BackupNotebook(ctx, currentPath, targetPath, options.transfer...)
	if err == nil {
		return targetPath, nil
	}

	if !isResourceDoesNotExist(err) {
		return "", err
	}

	parentDir := path.Dir(targetPath)

	logger.Debug(fmt.Sprintf("Snapshot target %q has no parent directory, creating %q and retrying once", targetPath, parentDir))

	if err = c.Mkdir(ctx, parentDir); err != nil {
		return "", err
	}

	if err = c.BackupNotebook(ctx, currentPath, targetPath, options.transfer...); err != nil {
		return "", err
	}

	return targetPath, nil
}
