package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations such as token fetches.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 3

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Pagination limits enforced by the configuration API.
const (
	// DefaultPageSize is the page size used when a listing does not set one.
	DefaultPageSize = 2500

	// MaxPageSize is the hard cap the server enforces on the limit parameter.
	// Larger values are clamped, not rejected.
	MaxPageSize = 5000

	// DefaultJobPageSize is the page size used for job listings.
	DefaultJobPageSize = 100
)

// Job polling.
const (
	// DefaultPollInterval is the delay between job status checks.
	DefaultPollInterval = 2 * time.Second

	// QuickPollInterval is used for fast polling in tests.
	QuickPollInterval = 10 * time.Millisecond

	// DefaultJobPollTimeout bounds PollUntilComplete when the caller
	// supplies no deadline of its own.
	DefaultJobPollTimeout = 10 * time.Minute

	// DefaultCommitTimeout bounds a synchronous commit.
	DefaultCommitTimeout = 5 * time.Minute
)

// Job status and result strings reported by the jobs endpoint.
const (
	// JobStatusQueued means the job is waiting to be scheduled.
	JobStatusQueued = "QUEUED"

	// JobStatusActive means the job is running.
	JobStatusActive = "ACT"

	// JobStatusFinished means the job reached a terminal state; the
	// result string says whether it succeeded.
	JobStatusFinished = "FIN"

	// JobResultOK is the result string of a succeeded job.
	JobResultOK = "OK"

	// JobResultFailed is the result string of a failed job.
	JobResultFailed = "FAIL"
)

// Token handling.
const (
	// DefaultTokenURL is the platform OAuth2 token endpoint used when the
	// configuration does not name one.
	DefaultTokenURL = "https://auth.apps.paloaltonetworks.com/am/oauth2/access_token"


	// TokenExpirationBuffer is the buffer time before token expiration
	// at which a token is considered stale and refreshed.
	TokenExpirationBuffer = 30 * time.Second
)
