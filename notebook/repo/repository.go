package repo

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/databricks/databricks-sdk-go"
	"github.com/databricks/databricks-sdk-go/service/files"
	"github.com/databricks/databricks-sdk-go/service/jobs"
	"github.com/databricks/databricks-sdk-go/service/workspace"
	"github.com/imroc/req/v3"
)

// dbfsReadLimit is the maximum number of bytes a single DBFS read call returns.
const dbfsReadLimit = 1024 * 1024

type WorkspaceRepository struct {
	client *databricks.WorkspaceClient

	httpClient *req.Client
}

func NewWorkspaceRepository(credentials *RepositoryCredentials) (*WorkspaceRepository, error) {
	config := credentials.DatabricksConfig()

	client, err := databricks.NewWorkspaceClient(config)
	if err != nil {
		return nil, fmt.Errorf("create workspace client: %w", err)
	}

	httpClient := req.C().
		SetBaseURL(config.Host).
		SetCommonBearerAuthToken(config.Token)

	return &WorkspaceRepository{
		client:     client,
		httpClient: httpClient,
	}, nil
}

// ExportNotebook exports the notebook at sourcePath and returns its decoded content.
func (r *WorkspaceRepository) ExportNotebook(ctx context.Context, sourcePath string, format workspace.ExportFormat) ([]byte, error) {
	response, err := r.client.Workspace.Export(ctx, workspace.ExportRequest{
		Path:   sourcePath,
		Format: format,
	})
	if err != nil {
		return nil, fmt.Errorf("export notebook %q: %w", sourcePath, err)
	}

	content, err := base64.StdEncoding.DecodeString(response.Content)
	if err != nil {
		return nil, fmt.Errorf("decode export content of %q: %w", sourcePath, err)
	}

	return content, nil
}

func (r *WorkspaceRepository) ImportNotebook(ctx context.Context, targetPath string, content []byte, language workspace.Language, format workspace.ImportFormat, overwrite bool) error {
	err := r.client.Workspace.Import(ctx, workspace.Import{
		Path:      targetPath,
		Content:   base64.StdEncoding.EncodeToString(content),
		Language:  language,
		Format:    format,
		Overwrite: overwrite,
	})
	if err != nil {
		return fmt.Errorf("import notebook %q: %w", targetPath, err)
	}

	return nil
}

// Mkdirs creates the directory and any missing ancestors.
func (r *WorkspaceRepository) Mkdirs(ctx context.Context, dirPath string) error {
	err := r.client.Workspace.MkdirsByPath(ctx, dirPath)
	if err != nil {
		return fmt.Errorf("mkdirs %q: %w", dirPath, err)
	}

	return nil
}

func (r *WorkspaceRepository) WriteStagingFile(ctx context.Context, stagingPath string, content []byte) error {
	err := r.client.Dbfs.Put(ctx, files.Put{
		Path:      stagingPath,
		Contents:  base64.StdEncoding.EncodeToString(content),
		Overwrite: true,
	})
	if err != nil {
		return fmt.Errorf("write staging file %q: %w", stagingPath, err)
	}

	return nil
}

// ReadStagingFile reads the whole staging file, chunked to stay under the DBFS read limit.
func (r *WorkspaceRepository) ReadStagingFile(ctx context.Context, stagingPath string) ([]byte, error) {
	var content []byte

	offset := 0

	for {
		response, err := r.client.Dbfs.Read(ctx, files.ReadDbfsRequest{
			Path:   stagingPath,
			Offset: int64(offset),
			Length: dbfsReadLimit,
		})
		if err != nil {
			return nil, fmt.Errorf("read staging file %q at offset %d: %w", stagingPath, offset, err)
		}

		if response.BytesRead == 0 {
			break
		}

		chunk, err := base64.StdEncoding.DecodeString(response.Data)
		if err != nil {
			return nil, fmt.Errorf("decode staging file %q at offset %d: %w", stagingPath, offset, err)
		}

		content = append(content, chunk...)
		offset += int(response.BytesRead)

		if response.BytesRead < dbfsReadLimit {
			break
		}
	}

	logger.Debug(fmt.Sprintf("Read staging file %q (%d bytes)", stagingPath, len(content)))

	return content, nil
}

func (r *WorkspaceRepository) DeleteStagingFile(ctx context.Context, stagingPath string) error {
	err := r.client.Dbfs.Delete(ctx, files.Delete{
		Path: stagingPath,
	})
	if err != nil {
		return fmt.Errorf("delete staging file %q: %w", stagingPath, err)
	}

	return nil
}

func (r *WorkspaceRepository) StagingFileExists(ctx context.Context, stagingPath string) (bool, error) {
	_, err := r.client.Dbfs.GetStatusByPath(ctx, stagingPath)
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}

		return false, fmt.Errorf("stat staging file %q: %w", stagingPath, err)
	}

	return true, nil
}

func (r *WorkspaceRepository) CreateJob(ctx context.Context, job jobs.CreateJob) (int64, error) {
	response, err := r.client.Jobs.Create(ctx, job)
	if err != nil {
		return 0, fmt.Errorf("create job %q: %w", job.Name, err)
	}

	return response.JobId, nil
}

func (r *WorkspaceRepository) RunJobNow(ctx context.Context, runNow jobs.RunNow) (int64, error) {
	wait, err := r.client.Jobs.RunNow(ctx, runNow)
	if err != nil {
		return 0, fmt.Errorf("run job %d: %w", runNow.JobId, err)
	}

	return wait.Response.RunId, nil
}

func (r *WorkspaceRepository) GetRun(ctx context.Context, runId int64) (*jobs.Run, error) {
	run, err := r.client.Jobs.GetRun(ctx, jobs.GetRunRequest{RunId: runId})
	if err != nil {
		return nil, fmt.Errorf("get run %d: %w", runId, err)
	}

	return run, nil
}

func (r *WorkspaceRepository) GetRunOutput(ctx context.Context, runId int64) (*jobs.RunOutput, error) {
	output, err := r.client.Jobs.GetRunOutput(ctx, jobs.GetRunOutputRequest{RunId: runId})
	if err != nil {
		return nil, fmt.Errorf("get run output %d: %w", runId, err)
	}

	return output, nil
}

func (r *WorkspaceRepository) GetClusterIdForName(ctx context.Context, clusterName string) (string, error) {
	details, err := r.client.Clusters.GetByClusterName(ctx, clusterName)
	if err != nil {
		return "", fmt.Errorf("get cluster %q: %w", clusterName, err)
	}

	return details.ClusterId, nil
}

func (r *WorkspaceRepository) Ping(ctx context.Context) error {
	_, err := r.client.CurrentUser.Me(ctx)
	if err != nil {
		return err
	}

	return nil
}
