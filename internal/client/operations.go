package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fivetwenty-io/scm-client/internal/constants"
	"github.com/fivetwenty-io/scm-client/internal/http"
	"github.com/fivetwenty-io/scm-client/pkg/scm"
)

// OperationsClient implements scm.OperationsClient.
type OperationsClient struct {
	httpClient *http.Client
	jobs       *JobsClient
}

// NewOperationsClient creates a new operations client.
func NewOperationsClient(httpClient *http.Client, jobs *JobsClient) *OperationsClient {
	return &OperationsClient{
		httpClient: httpClient,
		jobs:       jobs,
	}
}

// Commit implements scm.OperationsClient.Commit. It submits the push and
// returns immediately with the job reference.
func (c *OperationsClient) Commit(ctx context.Context, request *scm.CommitRequest) (*scm.CommitResponse, error) {
	if request == nil {
		return nil, scm.NewInvalidObjectError("commit request is required")
	}

	if err := request.Validate(); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, "/config/operations/v1/candidate:push", request)
	if err != nil {
		return nil, fmt.Errorf("submitting commit: %w", err)
	}

	var commit scm.CommitResponse

	err = json.Unmarshal(resp.Body, &commit)
	if err != nil {
		return nil, fmt.Errorf("parsing commit response: %w", err)
	}

	if commit.JobID == "" {
		return nil, constants.ErrCommitNoJobID
	}

	return &commit, nil
}

// CommitAndWait implements scm.OperationsClient.CommitAndWait. It blocks
// until the push job reaches a terminal state. Running out of timeout is a
// client-side give-up reported as ErrCommitTimeout, distinct from any
// server-reported failure; the push may still land afterwards.
func (c *OperationsClient) CommitAndWait(ctx context.Context, request *scm.CommitRequest, timeout time.Duration) (*scm.Job, error) {
	if timeout <= 0 {
		timeout = constants.DefaultCommitTimeout
	}

	commit, err := c.Commit(ctx, request)
	if err != nil {
		return nil, err
	}

	waitCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	job, err := c.jobs.PollUntilComplete(waitCtx, commit.JobID)
	if err != nil {
		if waitCtx.Err() != nil && ctx.Err() == nil {
			return job, fmt.Errorf("%w after %s (job %s)", scm.ErrCommitTimeout, timeout, commit.JobID)
		}

		if errors.Is(err, scm.ErrJobFailed) {
			return job, err
		}

		return job, fmt.Errorf("waiting for commit job %s: %w", commit.JobID, err)
	}

	return job, nil
}
