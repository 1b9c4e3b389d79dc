package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/fivetwenty-io/scm-client/internal/constants"
	"github.com/fivetwenty-io/scm-client/internal/http"
	"github.com/fivetwenty-io/scm-client/pkg/scm"
)

// JobsClient implements scm.JobsClient.
type JobsClient struct {
	httpClient   *http.Client
	pollInterval time.Duration
	pollTimeout  time.Duration
}

// NewJobsClient creates a new jobs client.
func NewJobsClient(httpClient *http.Client) *JobsClient {
	return &JobsClient{
		httpClient:   httpClient,
		pollInterval: constants.DefaultPollInterval,
		pollTimeout:  constants.DefaultJobPollTimeout,
	}
}

// Get implements scm.JobsClient.Get. The job endpoint wraps even a single
// job in a data envelope.
func (c *JobsClient) Get(ctx context.Context, jobID string) (*scm.Job, error) {
	if jobID == "" {
		return nil, constants.ErrJobIDRequired
	}

	path := "/config/operations/v1/jobs/" + jobID

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting job: %w", err)
	}

	return parseJobEnvelope(resp.Body)
}

// List implements scm.JobsClient.List. It carries the same offset/limit
// contract as object listings; parentID narrows to children of one job.
func (c *JobsClient) List(ctx context.Context, limit, offset int, parentID string) (*scm.ListResponse[scm.Job], error) {
	if limit <= 0 {
		limit = constants.DefaultJobPageSize
	}

	limit = scm.ClampLimit(limit)

	if offset < 0 {
		offset = 0
	}

	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(offset))

	if parentID != "" {
		query.Set("parent_id", parentID)
	}

	resp, err := c.httpClient.Get(ctx, "/config/operations/v1/jobs", query)
	if err != nil {
		return nil, fmt.Errorf("listing jobs: %w", err)
	}

	var page scm.ListResponse[scm.Job]

	err = json.Unmarshal(resp.Body, &page)
	if err != nil {
		return nil, fmt.Errorf("parsing jobs list: %w", err)
	}

	return &page, nil
}

// PollUntilComplete implements scm.JobsClient.PollUntilComplete.
// It polls the job until it reaches a terminal state (FIN) or the poll
// window closes. The default poll window applies only when the caller's
// context carries no deadline of its own; a caller deadline always wins,
// even past the default window.
func (c *JobsClient) PollUntilComplete(ctx context.Context, jobID string) (*scm.Job, error) {
	pollCtx := ctx

	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc

		pollCtx, cancel = context.WithTimeout(ctx, c.pollTimeout)
		defer cancel()
	}

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	// First check immediately
	job, err := c.Get(pollCtx, jobID)
	if err != nil {
		return nil, fmt.Errorf("getting job status: %w", err)
	}

	if job.Done() {
		return finishedJob(job)
	}

	for {
		select {
		case <-pollCtx.Done():
			// Return the last known state on timeout
			return job, fmt.Errorf("timeout waiting for job to complete: %w", pollCtx.Err())
		case <-ticker.C:
			job, err = c.Get(pollCtx, jobID)
			if err != nil {
				return nil, fmt.Errorf("getting job status: %w", err)
			}

			if job.Done() {
				return finishedJob(job)
			}
		}
	}
}

// finishedJob maps a terminal job to its result: the job itself, plus
// ErrJobFailed when the server reports a failed outcome.
func finishedJob(job *scm.Job) (*scm.Job, error) {
	if job.Failed() {
		return job, fmt.Errorf("%w: %s", scm.ErrJobFailed, jobFailureDetail(job))
	}

	return job, nil
}

func jobFailureDetail(job *scm.Job) string {
	if job.Details != "" {
		return job.Details
	}

	if job.Summary != "" {
		return job.Summary
	}

	return "no error details available"
}

// parseJobEnvelope unwraps the {"data": [job]} envelope the job endpoints
// return. An empty data array means the job does not exist.
func parseJobEnvelope(body []byte) (*scm.Job, error) {
	var envelope struct {
		Data []scm.Job `json:"data"`
	}

	err := json.Unmarshal(body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing job: %w", err)
	}

	if len(envelope.Data) == 0 {
		return nil, constants.ErrJobNoData
	}

	return &envelope.Data[0], nil
}
