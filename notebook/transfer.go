package notebook

import (
	"context"
	"fmt"
	"path"

	"github.com/hashicorp/go-multierror"

	"notebook-kit-databricks/notebook/constants"
)

// transferJob is the ephemeral record of one backup operation. It owns exactly
// one staging artifact and is responsible for deleting it regardless of outcome.
type transferJob struct {
	sourcePath       string
	targetPath       string
	intermediatePath string

	options transferOptions
}

// BackupNotebook copies the notebook at sourcePath to targetPath through a
// staging artifact on DBFS. The workspace API only supports export-to-file and
// import-from-file, not a direct move.
//
// Staging names are drawn from a small random space without collision
// detection, so concurrent backups into the same staging directory can clash.
func (c *Client) BackupNotebook(ctx context.Context, sourcePath string, targetPath string, opt ...TransferOption) error {
	options := c.transferOptions(opt...)

	job := transferJob{
		sourcePath:       sourcePath,
		targetPath:       targetPath,
		intermediatePath: path.Join(options.stagingDir, fmt.Sprintf("%s%d", constants.StagingNamePrefix, c.intn(constants.StagingNameSpace+1))),
		options:          options,
	}

	logger.Debug(fmt.Sprintf("Backing up notebook %q to %q via %q", sourcePath, targetPath, job.intermediatePath))

	return c.runTransfer(ctx, job)
}

// runTransfer stages the exported source, then imports the staged content to
// the target. Once the staging artifact exists it is deleted on every exit
// path; before that, failures propagate with nothing to clean up.
func (c *Client) runTransfer(ctx context.Context, job transferJob) error {
	content, err := c.repo.ExportNotebook(ctx, job.sourcePath, job.options.format)
	if err != nil {
		return err
	}

	if err = c.repo.WriteStagingFile(ctx, job.intermediatePath, content); err != nil {
		return err
	}

	importErr := c.importFromStaging(ctx, job)

	if err = c.repo.DeleteStagingFile(ctx, job.intermediatePath); err != nil {
		if importErr != nil {
			return multierror.Append(importErr, err)
		}

		return err
	}

	return importErr
}

func (c *Client) importFromStaging(ctx context.Context, job transferJob) error {
	staged, err := c.repo.ReadStagingFile(ctx, job.intermediatePath)
	if err != nil {
		return err
	}

	return c.repo.ImportNotebook(ctx, job.targetPath, staged, job.options.language, job.options.importFormat(), job.options.overwrite)
}
