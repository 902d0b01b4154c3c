package notebook

// NotebookContext supplies the identity of the currently executing notebook.
// On Databricks this information lives in the runtime context of the cluster;
// callers obtain it there and inject it, it is never read from ambient state.
//
//go:generate go run github.com/vektra/mockery/v2 --name=NotebookContext --with-expecter --inpackage
type NotebookContext interface {
	// APIToken returns a token usable against the workspace REST API.
	APIToken() string
	// BrowserHostNameURL returns the workspace host URL.
	BrowserHostNameURL() string
	// NotebookPath returns the workspace path of the executing notebook.
	NotebookPath() string
	// ClusterID returns the id of the cluster the notebook is attached to.
	ClusterID() string
}

// StaticNotebookContext is a NotebookContext with fixed values.
type StaticNotebookContext struct {
	Token   string
	HostURL string
	Path    string
	Cluster string
}

func (c StaticNotebookContext) APIToken() string {
	return c.Token
}

func (c StaticNotebookContext) BrowserHostNameURL() string {
	return c.HostURL
}

func (c StaticNotebookContext) NotebookPath() string {
	return c.Path
}

func (c StaticNotebookContext) ClusterID() string {
	return c.Cluster
}
