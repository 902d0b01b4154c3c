package notebook

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/databricks/databricks-sdk-go/service/jobs"
	"github.com/databricks/databricks-sdk-go/service/workspace"
	"github.com/hashicorp/go-multierror"

	"notebook-kit-databricks/notebook/constants"
	"notebook-kit-databricks/notebook/platform"
	"notebook-kit-databricks/notebook/repo"
)

//go:generate go run github.com/vektra/mockery/v2 --name=workspaceRepository --with-expecter --inpackage
type workspaceRepository interface {
	ExportNotebook(ctx context.Context, sourcePath string, format workspace.ExportFormat) ([]byte, error)
	ImportNotebook(ctx context.Context, targetPath string, content []byte, language workspace.Language, format workspace.ImportFormat, overwrite bool) error
	Mkdirs(ctx context.Context, dirPath string) error
	WriteStagingFile(ctx context.Context, stagingPath string, content []byte) error
	ReadStagingFile(ctx context.Context, stagingPath string) ([]byte, error)
	DeleteStagingFile(ctx context.Context, stagingPath string) error
	DownloadNotebook(ctx context.Context, sourcePath string, format workspace.ExportFormat, w io.Writer) error
	CreateJob(ctx context.Context, job jobs.CreateJob) (int64, error)
	RunJobNow(ctx context.Context, runNow jobs.RunNow) (int64, error)
	GetRun(ctx context.Context, runId int64) (*jobs.Run, error)
	GetRunOutput(ctx context.Context, runId int64) (*jobs.RunOutput, error)
	GetClusterIdForName(ctx context.Context, clusterName string) (string, error)
	Ping(ctx context.Context) error
}

// Client namespaces workspace, job, run and cluster operations for notebook
// automation. All remote work is delegated to the workspace repository; the
// client only sequences calls.
type Client struct {
	nbContext NotebookContext
	repo      workspaceRepository

	repoFactory func(credentials *repo.RepositoryCredentials) (workspaceRepository, error)

	credentials *repo.RepositoryCredentials
	stagingDir  string

	now  func() time.Time
	intn func(n int) int
}

// ClientOption configures a Client during construction.
type ClientOption func(c *Client) error

// WithCredentials sets the full credential set used to build the repository.
func WithCredentials(credentials repo.RepositoryCredentials) ClientOption {
	return func(c *Client) error {
		c.credentials = &credentials
		return nil
	}
}

// WithToken sets the API token. Defaults to the token from the notebook context.
func WithToken(token string) ClientOption {
	return func(c *Client) error {
		c.ensureCredentials().Token = token
		return nil
	}
}

// WithHost sets the workspace host URL. Defaults to the host from the notebook context.
func WithHost(host string) ClientOption {
	return func(c *Client) error {
		c.ensureCredentials().Host = host
		return nil
	}
}

// WithPlatformDeployment derives the workspace host URL from a platform and a
// deployment name, for callers that do not know the full URL.
func WithPlatformDeployment(pltfrm platform.DatabricksPlatform, deploymentName string) ClientOption {
	return func(c *Client) error {
		host, err := pltfrm.WorkspaceAddress(deploymentName)
		if err != nil {
			return fmt.Errorf("workspace address for deployment %q: %w", deploymentName, err)
		}

		c.ensureCredentials().Host = host

		return nil
	}
}

// WithDefaultStagingDir sets the DBFS staging directory used by transfers.
func WithDefaultStagingDir(stagingDir string) ClientOption {
	return func(c *Client) error {
		c.stagingDir = stagingDir
		return nil
	}
}

func (c *Client) ensureCredentials() *repo.RepositoryCredentials {
	if c.credentials == nil {
		c.credentials = &repo.RepositoryCredentials{}
	}

	return c.credentials
}

// NewClient builds a Client for the workspace the notebook context points at.
// Token and host fall back to the context when not set through options.
func NewClient(nbContext NotebookContext, opts ...ClientOption) (*Client, error) {
	c := &Client{
		nbContext:  nbContext,
		stagingDir: constants.DefaultStagingDir,
		now:        time.Now,
		intn:       rand.Intn,
		repoFactory: func(credentials *repo.RepositoryCredentials) (workspaceRepository, error) {
			return repo.NewWorkspaceRepository(credentials)
		},
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	credentials := c.ensureCredentials()
	if credentials.Token == "" {
		credentials.Token = nbContext.APIToken()
	}

	if credentials.Host == "" {
		credentials.Host = nbContext.BrowserHostNameURL()
	}

	r, err := c.repoFactory(credentials)
	if err != nil {
		return nil, err
	}

	c.repo = r

	return c, nil
}

// Ping verifies the client can reach the workspace.
func (c *Client) Ping(ctx context.Context) error {
	return c.repo.Ping(ctx)
}

// ExportNotebook returns the serialized content of the notebook at sourcePath.
func (c *Client) ExportNotebook(ctx context.Context, sourcePath string, opt ...TransferOption) ([]byte, error) {
	options := c.transferOptions(opt...)

	return c.repo.ExportNotebook(ctx, sourcePath, options.format)
}

// ExportNotebookToFile writes a direct-download export of the notebook at
// sourcePath to a local file.
func (c *Client) ExportNotebookToFile(ctx context.Context, sourcePath string, localPath string, opt ...TransferOption) error {
	options := c.transferOptions(opt...)

	f, err := os.Create(localPath)
	if err != nil {
		return fmt.Errorf("create local file %q: %w", localPath, err)
	}

	err = c.repo.DownloadNotebook(ctx, sourcePath, options.format, f)

	if cerr := f.Close(); cerr != nil {
		err = multierror.Append(err, fmt.Errorf("close local file %q: %w", localPath, cerr)).ErrorOrNil()
	}

	return err
}

// ImportNotebook writes content as a notebook at targetPath.
func (c *Client) ImportNotebook(ctx context.Context, targetPath string, content []byte, opt ...TransferOption) error {
	options := c.transferOptions(opt...)

	return c.repo.ImportNotebook(ctx, targetPath, content, options.language, options.importFormat(), options.overwrite)
}

// Mkdir creates a workspace directory, including any missing ancestors.
func (c *Client) Mkdir(ctx context.Context, dirPath string) error {
	return c.repo.Mkdirs(ctx, dirPath)
}

func (c *Client) transferOptions(opt ...TransferOption) transferOptions {
	options := transferOptions{
		format:     workspace.ExportFormatDbc,
		language:   workspace.LanguagePython,
		stagingDir: c.stagingDir,
	}

	for _, fn := range opt {
		fn(&options)
	}

	return options
}
