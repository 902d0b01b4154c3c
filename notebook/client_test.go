package notebook

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/databricks/databricks-sdk-go/service/workspace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"notebook-kit-databricks/notebook/platform"
	"notebook-kit-databricks/notebook/repo"
)

// withFakeRepoFactory keeps NewClient tests from building a real workspace
// client. It also hands back the credentials the factory was called with.
func withFakeRepoFactory(t *testing.T, captured **repo.RepositoryCredentials) ClientOption {
	t.Helper()

	return func(c *Client) error {
		c.repoFactory = func(credentials *repo.RepositoryCredentials) (workspaceRepository, error) {
			if captured != nil {
				*captured = credentials
			}

			return newMockWorkspaceRepository(t), nil
		}

		return nil
	}
}

func TestNewClient_CredentialsFromContext(t *testing.T) {
	nbContext := StaticNotebookContext{
		Token:   "context-token",
		HostURL: "https://context-host.cloud.databricks.com",
	}

	var captured *repo.RepositoryCredentials

	client, err := NewClient(nbContext, withFakeRepoFactory(t, &captured))

	require.NoError(t, err)
	require.NotNil(t, client.credentials)
	assert.Equal(t, "context-token", client.credentials.Token)
	assert.Equal(t, "https://context-host.cloud.databricks.com", client.credentials.Host)
	assert.Same(t, client.credentials, captured)
}

func TestNewClient_ExplicitOptionsWinOverContext(t *testing.T) {
	nbContext := StaticNotebookContext{
		Token:   "context-token",
		HostURL: "https://context-host.cloud.databricks.com",
	}

	client, err := NewClient(nbContext,
		withFakeRepoFactory(t, nil),
		WithToken("explicit-token"),
		WithHost("https://explicit-host.cloud.databricks.com"),
		WithDefaultStagingDir("/mnt/other/tmp"),
	)

	require.NoError(t, err)
	assert.Equal(t, "explicit-token", client.credentials.Token)
	assert.Equal(t, "https://explicit-host.cloud.databricks.com", client.credentials.Host)
	assert.Equal(t, "/mnt/other/tmp", client.stagingDir)
}

func TestNewClient_WithCredentials(t *testing.T) {
	nbContext := StaticNotebookContext{}

	client, err := NewClient(nbContext, withFakeRepoFactory(t, nil), WithCredentials(repo.RepositoryCredentials{
		ClientId:     "client-id",
		ClientSecret: "client-secret",
		Host:         "https://host.cloud.databricks.com",
	}))

	require.NoError(t, err)
	assert.Equal(t, "client-id", client.credentials.ClientId)
	assert.Equal(t, "https://host.cloud.databricks.com", client.credentials.Host)
}

func TestNewClient_WithPlatformDeployment(t *testing.T) {
	nbContext := StaticNotebookContext{Token: "context-token"}

	client, err := NewClient(nbContext, withFakeRepoFactory(t, nil), WithPlatformDeployment(platform.DatabricksPlatformAWS, "deployment-1"))

	require.NoError(t, err)
	assert.Equal(t, "https://deployment-1.cloud.databricks.com", client.credentials.Host)

	_, err = NewClient(nbContext, withFakeRepoFactory(t, nil), WithPlatformDeployment(platform.DatabricksPlatform(42), "deployment-1"))
	require.Error(t, err)
}

func TestClient_ExportNotebook(t *testing.T) {
	client, repoMock, _ := createTestClient(t)

	repoMock.EXPECT().ExportNotebook(mock.Anything, "/a/b", workspace.ExportFormatJupyter).Return([]byte("content"), nil).Once()

	content, err := client.ExportNotebook(context.Background(), "/a/b", WithExportFormat(workspace.ExportFormatJupyter))

	require.NoError(t, err)
	assert.Equal(t, []byte("content"), content)
}

func TestClient_ImportNotebook(t *testing.T) {
	client, repoMock, _ := createTestClient(t)

	repoMock.EXPECT().ImportNotebook(mock.Anything, "/c/d", []byte("content"), workspace.LanguagePython, workspace.ImportFormatDbc, true).Return(nil).Once()

	err := client.ImportNotebook(context.Background(), "/c/d", []byte("content"), WithOverwrite(true))

	require.NoError(t, err)
}

func TestClient_Mkdir(t *testing.T) {
	client, repoMock, _ := createTestClient(t)

	repoMock.EXPECT().Mkdirs(mock.Anything, "/Shared/runs/Users/a").Return(nil).Once()

	err := client.Mkdir(context.Background(), "/Shared/runs/Users/a")

	require.NoError(t, err)
}

func TestClient_Ping(t *testing.T) {
	client, repoMock, _ := createTestClient(t)

	repoMock.EXPECT().Ping(mock.Anything).Return(nil).Once()

	require.NoError(t, client.Ping(context.Background()))
}

func TestClient_ExportNotebookToFile(t *testing.T) {
	client, repoMock, _ := createTestClient(t)

	localPath := filepath.Join(t.TempDir(), "nb.dbc")

	repoMock.EXPECT().DownloadNotebook(mock.Anything, "/a/b", workspace.ExportFormatDbc, mock.Anything).
		Run(func(_ context.Context, _ string, _ workspace.ExportFormat, w io.Writer) {
			_, werr := w.Write([]byte("downloaded content"))
			require.NoError(t, werr)
		}).Return(nil).Once()

	err := client.ExportNotebookToFile(context.Background(), "/a/b", localPath)

	require.NoError(t, err)

	content, err := os.ReadFile(localPath)
	require.NoError(t, err)
	assert.Equal(t, []byte("downloaded content"), content)
}

func TestClient_ExportNotebookToFile_DownloadFails(t *testing.T) {
	client, repoMock, _ := createTestClient(t)

	localPath := filepath.Join(t.TempDir(), "nb.dbc")

	repoMock.EXPECT().DownloadNotebook(mock.Anything, "/a/b", workspace.ExportFormatDbc, mock.Anything).Return(assert.AnError).Once()

	err := client.ExportNotebookToFile(context.Background(), "/a/b", localPath)

	require.ErrorIs(t, err, assert.AnError)
}
