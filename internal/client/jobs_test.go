package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fivetwenty-io/scm-client/internal/constants"
	internalhttp "github.com/fivetwenty-io/scm-client/internal/http"
	"github.com/fivetwenty-io/scm-client/pkg/scm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jobEnvelope(jobs ...scm.Job) map[string]any {
	return map[string]any{"data": jobs}
}

func TestJobsClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/config/operations/v1/jobs/1586", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)

		_ = json.NewEncoder(w).Encode(jobEnvelope(scm.Job{
			ID:     "1586",
			Type:   "CommitAndPush",
			Status: "FIN",
			Result: "OK",
			Owner:  "admin@example.com",
		}))
	}))
	defer server.Close()

	jobs := NewJobsClient(internalhttp.NewClient(server.URL, nil))

	job, err := jobs.Get(context.Background(), "1586")
	require.NoError(t, err)

	assert.Equal(t, "1586", job.ID)
	assert.Equal(t, "CommitAndPush", job.Type)
	assert.True(t, job.Succeeded())
}

func TestJobsClient_GetEmptyEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data": []}`))
	}))
	defer server.Close()

	jobs := NewJobsClient(internalhttp.NewClient(server.URL, nil))

	_, err := jobs.Get(context.Background(), "1586")
	assert.ErrorIs(t, err, constants.ErrJobNoData)
}

func TestJobsClient_GetRequiresID(t *testing.T) {
	jobs := NewJobsClient(internalhttp.NewClient("http://unused.invalid", nil))

	_, err := jobs.Get(context.Background(), "")
	assert.ErrorIs(t, err, constants.ErrJobIDRequired)
}

func TestJobsClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/config/operations/v1/jobs", r.URL.Path)
		assert.Equal(t, "25", r.URL.Query().Get("limit"))
		assert.Equal(t, "50", r.URL.Query().Get("offset"))
		assert.Equal(t, "1580", r.URL.Query().Get("parent_id"))

		_ = json.NewEncoder(w).Encode(scm.ListResponse[scm.Job]{
			Data:   []scm.Job{{ID: "1586", Status: "ACT"}},
			Limit:  25,
			Offset: 50,
			Total:  51,
		})
	}))
	defer server.Close()

	jobs := NewJobsClient(internalhttp.NewClient(server.URL, nil))

	page, err := jobs.List(context.Background(), 25, 50, "1580")
	require.NoError(t, err)

	require.Len(t, page.Data, 1)
	assert.Equal(t, 51, page.Total)
}

func TestJobsClient_ListDefaults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "100", r.URL.Query().Get("limit"))
		assert.Equal(t, "0", r.URL.Query().Get("offset"))
		assert.Empty(t, r.URL.Query().Get("parent_id"))

		_ = json.NewEncoder(w).Encode(scm.ListResponse[scm.Job]{})
	}))
	defer server.Close()

	jobs := NewJobsClient(internalhttp.NewClient(server.URL, nil))

	_, err := jobs.List(context.Background(), 0, -5, "")
	require.NoError(t, err)
}

func TestJobsClient_ListClampsLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "5000", r.URL.Query().Get("limit"))

		_ = json.NewEncoder(w).Encode(scm.ListResponse[scm.Job]{})
	}))
	defer server.Close()

	jobs := NewJobsClient(internalhttp.NewClient(server.URL, nil))

	_, err := jobs.List(context.Background(), 99999, 0, "")
	require.NoError(t, err)
}

func TestJobsClient_PollUntilComplete(t *testing.T) {
	var polls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		job := scm.Job{ID: "1586", Status: "ACT"}
		if polls.Add(1) >= 3 {
			job.Status = "FIN"
			job.Result = "OK"
		}

		_ = json.NewEncoder(w).Encode(jobEnvelope(job))
	}))
	defer server.Close()

	jobs := NewJobsClient(internalhttp.NewClient(server.URL, nil))
	jobs.pollInterval = constants.QuickPollInterval

	job, err := jobs.PollUntilComplete(context.Background(), "1586")
	require.NoError(t, err)

	assert.True(t, job.Succeeded())
	assert.GreaterOrEqual(t, polls.Load(), int32(3))
}

func TestJobsClient_PollUntilComplete_AlreadyDone(t *testing.T) {
	var polls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		polls.Add(1)
		_ = json.NewEncoder(w).Encode(jobEnvelope(scm.Job{ID: "1586", Status: "FIN", Result: "OK"}))
	}))
	defer server.Close()

	jobs := NewJobsClient(internalhttp.NewClient(server.URL, nil))
	jobs.pollInterval = constants.QuickPollInterval

	job, err := jobs.PollUntilComplete(context.Background(), "1586")
	require.NoError(t, err)

	assert.True(t, job.Done())
	assert.Equal(t, int32(1), polls.Load())
}

func TestJobsClient_PollUntilComplete_JobFailed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(jobEnvelope(scm.Job{
			ID:      "1586",
			Status:  "FIN",
			Result:  "FAIL",
			Details: "validation error on folder Shared",
		}))
	}))
	defer server.Close()

	jobs := NewJobsClient(internalhttp.NewClient(server.URL, nil))
	jobs.pollInterval = constants.QuickPollInterval

	job, err := jobs.PollUntilComplete(context.Background(), "1586")
	require.Error(t, err)

	assert.ErrorIs(t, err, scm.ErrJobFailed)
	assert.Contains(t, err.Error(), "validation error on folder Shared")

	// The terminal job comes back alongside the error
	require.NotNil(t, job)
	assert.True(t, job.Failed())
}

func TestJobsClient_PollUntilComplete_CallerDeadlineWins(t *testing.T) {
	var polls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		job := scm.Job{ID: "1586", Status: "ACT"}
		if polls.Add(1) >= 3 {
			job.Status = "FIN"
			job.Result = "OK"
		}

		_ = json.NewEncoder(w).Encode(jobEnvelope(job))
	}))
	defer server.Close()

	jobs := NewJobsClient(internalhttp.NewClient(server.URL, nil))
	jobs.pollInterval = constants.QuickPollInterval
	// Shorter than the time the job needs; a caller deadline must
	// override it.
	jobs.pollTimeout = time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	job, err := jobs.PollUntilComplete(ctx, "1586")
	require.NoError(t, err)

	assert.True(t, job.Succeeded())
	assert.GreaterOrEqual(t, polls.Load(), int32(3))
}

func TestJobsClient_PollUntilComplete_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(jobEnvelope(scm.Job{ID: "1586", Status: "ACT"}))
	}))
	defer server.Close()

	jobs := NewJobsClient(internalhttp.NewClient(server.URL, nil))
	jobs.pollInterval = constants.QuickPollInterval
	jobs.pollTimeout = 50 * time.Millisecond

	_, err := jobs.PollUntilComplete(context.Background(), "1586")
	require.Error(t, err)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
