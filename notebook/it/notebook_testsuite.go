//go:build integration

package it

import (
	"os"
	"sync"

	"github.com/stretchr/testify/suite"

	"notebook-kit-databricks/notebook/repo"
)

var (
	dbHost         string
	dbToken        string
	dbClientID     string
	dbClientSecret string
	dbTestingDir   string
	lock           = &sync.Mutex{}
)

func readWorkspaceCredentials() *repo.RepositoryCredentials {
	lock.Lock()
	defer lock.Unlock()

	if dbHost == "" {
		dbHost = os.Getenv("DB_HOST")
		dbToken = os.Getenv("DB_TOKEN")
		dbClientID = os.Getenv("DB_CLIENT_ID")
		dbClientSecret = os.Getenv("DB_CLIENT_SECRET")
	}

	return &repo.RepositoryCredentials{
		Host:         dbHost,
		Token:        dbToken,
		ClientId:     dbClientID,
		ClientSecret: dbClientSecret,
	}
}

type NotebookTestSuite struct {
	suite.Suite
}

func (s *NotebookTestSuite) GetCredentials() *repo.RepositoryCredentials {
	return readWorkspaceCredentials()
}

// GetTestingDir returns the workspace directory integration tests may write to.
func (s *NotebookTestSuite) GetTestingDir() string {
	lock.Lock()
	defer lock.Unlock()

	if dbTestingDir == "" {
		dbTestingDir = os.Getenv("DB_TESTING_DIR")
		if dbTestingDir == "" {
			dbTestingDir = "/Shared/notebook-kit-it"
		}
	}

	return dbTestingDir
}
