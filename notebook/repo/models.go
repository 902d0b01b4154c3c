package repo

import (
	"github.com/databricks/databricks-sdk-go"
	"github.com/databricks/databricks-sdk-go/config"
)

type RepositoryCredentials struct {
	Username     string
	Password     string
	ClientId     string
	ClientSecret string
	Token        string

	Host string
}

func (r *RepositoryCredentials) DatabricksConfig() *databricks.Config {
	return &databricks.Config{
		Credentials:  &config.DefaultCredentials{},
		Username:     r.Username,
		Password:     r.Password,
		Token:        r.Token,
		ClientID:     r.ClientId,
		ClientSecret: r.ClientSecret,
		Host:         r.Host,
	}
}
