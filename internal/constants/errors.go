package constants

import "errors"

// Configuration errors.
var (
	ErrNoAPIEndpoint    = errors.New("no API endpoint configured, use 'scm login' or set SCM_API")
	ErrNoCredentials    = errors.New("no credentials configured, use 'scm login' first")
	ErrNoTokenURL       = errors.New("no token URL configured and none could be derived")
	ErrConfigDirCreate  = errors.New("failed to create configuration directory")
	ErrUnknownConfigKey = errors.New("unknown configuration key")
)

// Validation errors.
var (
	ErrFolderRequired      = errors.New("at least one folder must be specified")
	ErrDescriptionRequired = errors.New("a commit description is required")
	ErrObjectIDRequired    = errors.New("object ID is required")
	ErrJobIDRequired       = errors.New("job ID is required")
	ErrInvalidOutputFormat = errors.New("invalid output format (expected table, json, or yaml)")
)

// Operation errors.
var (
	ErrAddressNotFound    = errors.New("address not found")
	ErrTagNotFound        = errors.New("tag not found")
	ErrNoObjectsMatched   = errors.New("no objects matched the given filters")
	ErrJobNoData          = errors.New("job status response contained no data")
	ErrCommitNoJobID      = errors.New("commit response contained no job ID")
	ErrStaticTokenRefresh = errors.New("static token cannot be refreshed")
)
