package notebook

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/databricks/databricks-sdk-go/apierr"
	"github.com/databricks/databricks-sdk-go/service/workspace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestClient_BackupNotebook(t *testing.T) {
	// Given
	client, repoMock, _ := createTestClient(t)
	client.intn = func(int) int { return 42 }

	content := []byte("notebook content")
	intermediatePath := "/mnt/external/tmp/backup_42"

	repoMock.EXPECT().ExportNotebook(mock.Anything, "/a/b", workspace.ExportFormatDbc).Return(content, nil).Once()
	repoMock.EXPECT().WriteStagingFile(mock.Anything, intermediatePath, content).Return(nil).Once()
	repoMock.EXPECT().ReadStagingFile(mock.Anything, intermediatePath).Return(content, nil).Once()
	repoMock.EXPECT().ImportNotebook(mock.Anything, "/c/d", content, workspace.LanguagePython, workspace.ImportFormatDbc, false).Return(nil).Once()
	repoMock.EXPECT().DeleteStagingFile(mock.Anything, intermediatePath).Return(nil).Once()

	// When
	err := client.BackupNotebook(context.Background(), "/a/b", "/c/d")

	// Then
	require.NoError(t, err)
}

func TestClient_BackupNotebook_IntermediateName(t *testing.T) {
	// The staging name is drawn from {stagingDir}/backup_{0..1000} and the same
	// name is used for write, read and delete.
	client, repoMock, _ := createTestClient(t)
	client.intn = rand.Intn

	content := []byte("content")
	namePattern := regexp.MustCompile(`^/mnt/external/tmp/backup_(0|[1-9][0-9]{0,2}|1000)$`)

	var intermediatePath string

	sameIntermediate := func(p string) bool { return p == intermediatePath }

	repoMock.EXPECT().ExportNotebook(mock.Anything, "/a/b", workspace.ExportFormatDbc).Return(content, nil).Once()
	repoMock.EXPECT().WriteStagingFile(mock.Anything, mock.MatchedBy(func(p string) bool { return namePattern.MatchString(p) }), content).
		Run(func(_ context.Context, stagingPath string, _ []byte) {
			intermediatePath = stagingPath
		}).Return(nil).Once()
	repoMock.EXPECT().ReadStagingFile(mock.Anything, mock.MatchedBy(sameIntermediate)).Return(content, nil).Once()
	repoMock.EXPECT().ImportNotebook(mock.Anything, "/c/d", content, workspace.LanguagePython, workspace.ImportFormatDbc, false).Return(nil).Once()
	repoMock.EXPECT().DeleteStagingFile(mock.Anything, mock.MatchedBy(sameIntermediate)).Return(nil).Once()

	err := client.BackupNotebook(context.Background(), "/a/b", "/c/d")

	require.NoError(t, err)
}

func TestClient_BackupNotebook_TransferOptions(t *testing.T) {
	client, repoMock, _ := createTestClient(t)
	client.intn = func(int) int { return 7 }

	content := []byte("# Databricks notebook source")
	intermediatePath := "/tmp/staging/backup_7"

	repoMock.EXPECT().ExportNotebook(mock.Anything, "/a/b", workspace.ExportFormatSource).Return(content, nil).Once()
	repoMock.EXPECT().WriteStagingFile(mock.Anything, intermediatePath, content).Return(nil).Once()
	repoMock.EXPECT().ReadStagingFile(mock.Anything, intermediatePath).Return(content, nil).Once()
	repoMock.EXPECT().ImportNotebook(mock.Anything, "/c/d", content, workspace.LanguageScala, workspace.ImportFormatSource, true).Return(nil).Once()
	repoMock.EXPECT().DeleteStagingFile(mock.Anything, intermediatePath).Return(nil).Once()

	err := client.BackupNotebook(context.Background(), "/a/b", "/c/d",
		WithExportFormat(workspace.ExportFormatSource),
		WithLanguage(workspace.LanguageScala),
		WithOverwrite(true),
		WithStagingDir("/tmp/staging"),
	)

	require.NoError(t, err)
}

func TestClient_BackupNotebook_ExportFails(t *testing.T) {
	// The intermediate artifact never existed, so no staging call is made.
	client, repoMock, _ := createTestClient(t)
	client.intn = func(int) int { return 42 }

	exportErr := &apierr.APIError{
		ErrorCode:  "RESOURCE_DOES_NOT_EXIST",
		Message:    "Path (/a/b) doesn't exist.",
		StatusCode: http.StatusNotFound,
	}

	repoMock.EXPECT().ExportNotebook(mock.Anything, "/a/b", workspace.ExportFormatDbc).Return(nil, exportErr).Once()

	err := client.BackupNotebook(context.Background(), "/a/b", "/c/d")

	require.Error(t, err)
	assert.ErrorIs(t, err, exportErr)
	repoMock.AssertNotCalled(t, "WriteStagingFile", mock.Anything, mock.Anything, mock.Anything)
	repoMock.AssertNotCalled(t, "DeleteStagingFile", mock.Anything, mock.Anything)
}

func TestClient_BackupNotebook_StagingWriteFails(t *testing.T) {
	client, repoMock, _ := createTestClient(t)
	client.intn = func(int) int { return 42 }

	content := []byte("content")
	writeErr := errors.New("dbfs unavailable")

	repoMock.EXPECT().ExportNotebook(mock.Anything, "/a/b", workspace.ExportFormatDbc).Return(content, nil).Once()
	repoMock.EXPECT().WriteStagingFile(mock.Anything, "/mnt/external/tmp/backup_42", content).Return(writeErr).Once()

	err := client.BackupNotebook(context.Background(), "/a/b", "/c/d")

	require.Error(t, err)
	assert.ErrorIs(t, err, writeErr)
	repoMock.AssertNotCalled(t, "DeleteStagingFile", mock.Anything, mock.Anything)
}

func TestClient_BackupNotebook_ImportFails(t *testing.T) {
	// Cleanup still occurs, then the import error propagates with its identity intact.
	client, repoMock, _ := createTestClient(t)
	client.intn = func(int) int { return 42 }

	content := []byte("content")
	intermediatePath := "/mnt/external/tmp/backup_42"
	importErr := &apierr.APIError{
		ErrorCode:  "RESOURCE_DOES_NOT_EXIST",
		Message:    "Parent directory (/c) doesn't exist.",
		StatusCode: http.StatusNotFound,
	}

	repoMock.EXPECT().ExportNotebook(mock.Anything, "/a/b", workspace.ExportFormatDbc).Return(content, nil).Once()
	repoMock.EXPECT().WriteStagingFile(mock.Anything, intermediatePath, content).Return(nil).Once()
	repoMock.EXPECT().ReadStagingFile(mock.Anything, intermediatePath).Return(content, nil).Once()
	repoMock.EXPECT().ImportNotebook(mock.Anything, "/c/d", content, workspace.LanguagePython, workspace.ImportFormatDbc, false).Return(importErr).Once()
	repoMock.EXPECT().DeleteStagingFile(mock.Anything, intermediatePath).Return(nil).Once()

	err := client.BackupNotebook(context.Background(), "/a/b", "/c/d")

	require.Error(t, err)

	var apiErr *apierr.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "RESOURCE_DOES_NOT_EXIST", apiErr.ErrorCode)
}

func TestClient_BackupNotebook_ImportAndCleanupFail(t *testing.T) {
	// Neither failure is lost when the import and the staging delete both fail.
	client, repoMock, _ := createTestClient(t)
	client.intn = func(int) int { return 42 }

	content := []byte("content")
	intermediatePath := "/mnt/external/tmp/backup_42"
	importErr := &apierr.APIError{
		ErrorCode:  "INTERNAL_ERROR",
		Message:    "import failed",
		StatusCode: http.StatusInternalServerError,
	}
	deleteErr := errors.New("delete failed")

	repoMock.EXPECT().ExportNotebook(mock.Anything, "/a/b", workspace.ExportFormatDbc).Return(content, nil).Once()
	repoMock.EXPECT().WriteStagingFile(mock.Anything, intermediatePath, content).Return(nil).Once()
	repoMock.EXPECT().ReadStagingFile(mock.Anything, intermediatePath).Return(content, nil).Once()
	repoMock.EXPECT().ImportNotebook(mock.Anything, "/c/d", content, workspace.LanguagePython, workspace.ImportFormatDbc, false).Return(importErr).Once()
	repoMock.EXPECT().DeleteStagingFile(mock.Anything, intermediatePath).Return(deleteErr).Once()

	err := client.BackupNotebook(context.Background(), "/a/b", "/c/d")

	require.Error(t, err)
	assert.ErrorIs(t, err, importErr)
	assert.ErrorIs(t, err, deleteErr)
}

func TestClient_BackupNotebook_CleanupFailsAfterSuccess(t *testing.T) {
	client, repoMock, _ := createTestClient(t)
	client.intn = func(int) int { return 42 }

	content := []byte("content")
	intermediatePath := "/mnt/external/tmp/backup_42"
	deleteErr := fmt.Errorf("delete staging file %q: %w", intermediatePath, errors.New("dbfs unavailable"))

	repoMock.EXPECT().ExportNotebook(mock.Anything, "/a/b", workspace.ExportFormatDbc).Return(content, nil).Once()
	repoMock.EXPECT().WriteStagingFile(mock.Anything, intermediatePath, content).Return(nil).Once()
	repoMock.EXPECT().ReadStagingFile(mock.Anything, intermediatePath).Return(content, nil).Once()
	repoMock.EXPECT().ImportNotebook(mock.Anything, "/c/d", content, workspace.LanguagePython, workspace.ImportFormatDbc, false).Return(nil).Once()
	repoMock.EXPECT().DeleteStagingFile(mock.Anything, intermediatePath).Return(deleteErr).Once()

	err := client.BackupNotebook(context.Background(), "/a/b", "/c/d")

	require.Error(t, err)
	assert.ErrorIs(t, err, deleteErr)
}

func createTestClient(t *testing.T) (*Client, *mockWorkspaceRepository, *MockNotebookContext) {
	t.Helper()

	repoMock := newMockWorkspaceRepository(t)
	nbContext := NewMockNotebookContext(t)

	client := &Client{
		nbContext:  nbContext,
		repo:       repoMock,
		stagingDir: "/mnt/external/tmp",
		now:        time.Now,
		intn:       func(n int) int { return 0 },
	}

	return client, repoMock, nbContext
}
