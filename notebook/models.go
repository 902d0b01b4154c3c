package notebook

import (
	"github.com/databricks/databricks-sdk-go/service/workspace"
)

type transferOptions struct {
	format     workspace.ExportFormat
	language   workspace.Language
	overwrite  bool
	stagingDir string
}

func (o transferOptions) importFormat() workspace.ImportFormat {
	return workspace.ImportFormat(o.format)
}

// TransferOption adjusts a single export, import or backup call.
type TransferOption func(*transferOptions)

// WithExportFormat overrides the notebook serialization format (default DBC).
func WithExportFormat(format workspace.ExportFormat) TransferOption {
	return func(o *transferOptions) {
		o.format = format
	}
}

// WithLanguage overrides the notebook language used on import (default Python).
func WithLanguage(language workspace.Language) TransferOption {
	return func(o *transferOptions) {
		o.language = language
	}
}

// WithOverwrite controls whether imports replace an existing notebook (default false).
func WithOverwrite(overwrite bool) TransferOption {
	return func(o *transferOptions) {
		o.overwrite = overwrite
	}
}

// WithStagingDir overrides the DBFS staging directory for a single transfer.
func WithStagingDir(stagingDir string) TransferOption {
	return func(o *transferOptions) {
		o.stagingDir = stagingDir
	}
}

type snapshotOptions struct {
	runsDir  string
	transfer []TransferOption
}

// SnapshotOption adjusts a single snapshot call.
type SnapshotOption func(*snapshotOptions)

// WithRunsDir overrides the base directory snapshots are written under.
func WithRunsDir(runsDir string) SnapshotOption {
	return func(o *snapshotOptions) {
		o.runsDir = runsDir
	}
}

// WithTransferOptions passes transfer options through to the underlying backup.
func WithTransferOptions(opt ...TransferOption) SnapshotOption {
	return func(o *snapshotOptions) {
		o.transfer = append(o.transfer, opt...)
	}
}

// JobSettings describes a notebook job to create.
type JobSettings struct {
	// NotebookPath is the notebook the job runs. A relative path is resolved
	// against the directory of the current notebook.
	NotebookPath string

	// Name of the job. Defaults to NotebookPath as passed.
	Name string

	// ClusterName selects the job cluster by name. Mutually exclusive with ClusterID.
	ClusterName string

	// ClusterID selects the job cluster by id. When neither ClusterName nor
	// ClusterID is set, the cluster of the current notebook is used.
	ClusterID string

	// NotificationEmails receive a mail on both run success and run failure.
	NotificationEmails []string
}

// RunParameters are passed to a single job run.
type RunParameters struct {
	JarParams         []string
	NotebookParams    map[string]string
	PythonParams      []string
	SparkSubmitParams []string
}
