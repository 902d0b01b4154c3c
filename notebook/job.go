package notebook

import (
	"context"
	"fmt"

	"github.com/databricks/databricks-sdk-go/service/jobs"
	"github.com/raito-io/golang-set/set"
)

const notebookTaskKey = "notebook"

// CreateJob creates a job running a single notebook task. The cluster is
// selected by name, by id, or defaults to the cluster of the current notebook;
// providing both name and id is rejected before any remote call.
func (c *Client) CreateJob(ctx context.Context, settings JobSettings) (*Job, error) {
	if settings.NotebookPath == "" {
		return nil, ErrMissingNotebookPath
	}

	if settings.ClusterName != "" && settings.ClusterID != "" {
		return nil, ErrAmbiguousCluster
	}

	clusterId := settings.ClusterID

	switch {
	case settings.ClusterName != "":
		id, err := c.repo.GetClusterIdForName(ctx, settings.ClusterName)
		if err != nil {
			return nil, err
		}

		clusterId = id
	case clusterId == "":
		clusterId = c.nbContext.ClusterID()
	}

	name := settings.Name
	if name == "" {
		name = settings.NotebookPath
	}

	notebookPath := resolveNotebookPath(settings.NotebookPath, c.nbContext.NotebookPath())

	createJob := jobs.CreateJob{
		Name: name,
		Tasks: []jobs.Task{
			{
				TaskKey:           notebookTaskKey,
				ExistingClusterId: clusterId,
				NotebookTask: &jobs.NotebookTask{
					NotebookPath: notebookPath,
				},
			},
		},
	}

	if len(settings.NotificationEmails) > 0 {
		emails := set.NewSet(settings.NotificationEmails...).Slice()

		createJob.EmailNotifications = &jobs.JobEmailNotifications{
			OnSuccess: emails,
			OnFailure: emails,
		}
	}

	jobId, err := c.repo.CreateJob(ctx, createJob)
	if err != nil {
		return nil, err
	}

	logger.Debug(fmt.Sprintf("Created job %d for notebook %q on cluster %q", jobId, notebookPath, clusterId))

	return &Job{
		ID:   jobId,
		repo: c.repo,
	}, nil
}

// Job is a handle on a created job and the runs triggered through it.
type Job struct {
	ID   int64
	Runs []*JobRun

	repo workspaceRepository
}

// RunNow triggers a run of the job and records the handle in Runs.
func (j *Job) RunNow(ctx context.Context, params RunParameters) (*JobRun, error) {
	runId, err := j.repo.RunJobNow(ctx, jobs.RunNow{
		JobId:             j.ID,
		JarParams:         params.JarParams,
		NotebookParams:    params.NotebookParams,
		PythonParams:      params.PythonParams,
		SparkSubmitParams: params.SparkSubmitParams,
	})
	if err != nil {
		return nil, err
	}

	run := &JobRun{
		ID:   runId,
		Job:  j,
		repo: j.repo,
	}

	j.Runs = append(j.Runs, run)

	return run, nil
}

// JobRun is a handle on one execution of a job. The state getters fetch the
// live run record on every call.
type JobRun struct {
	ID  int64
	Job *Job

	repo workspaceRepository
}

// Data returns the full run record.
func (r *JobRun) Data(ctx context.Context) (*jobs.Run, error) {
	return r.repo.GetRun(ctx, r.ID)
}

func (r *JobRun) ResultState(ctx context.Context) (jobs.RunResultState, error) {
	run, err := r.Data(ctx)
	if err != nil {
		return "", err
	}

	if run.State == nil {
		return "", nil
	}

	return run.State.ResultState, nil
}

func (r *JobRun) LifeCycleState(ctx context.Context) (jobs.RunLifeCycleState, error) {
	run, err := r.Data(ctx)
	if err != nil {
		return "", err
	}

	if run.State == nil {
		return "", nil
	}

	return run.State.LifeCycleState, nil
}

func (r *JobRun) StateMessage(ctx context.Context) (string, error) {
	run, err := r.Data(ctx)
	if err != nil {
		return "", err
	}

	if run.State == nil {
		return "", nil
	}

	return run.State.StateMessage, nil
}

func (r *JobRun) RunPageURL(ctx context.Context) (string, error) {
	run, err := r.Data(ctx)
	if err != nil {
		return "", err
	}

	return run.RunPageUrl, nil
}

func (r *JobRun) AttemptNumber(ctx context.Context) (int, error) {
	run, err := r.Data(ctx)
	if err != nil {
		return 0, err
	}

	return run.AttemptNumber, nil
}

// Output returns the notebook output of the run, if any.
func (r *JobRun) Output(ctx context.Context) (*jobs.NotebookOutput, error) {
	output, err := r.repo.GetRunOutput(ctx, r.ID)
	if err != nil {
		return nil, err
	}

	return output.NotebookOutput, nil
}
