package scm

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorKind classifies an API failure. The set is closed: every error the
// client surfaces from the configuration API carries exactly one kind,
// derived from the HTTP status code and, where present, the structured
// error body.
type ErrorKind string

const (
	// ErrorKindInvalidObject covers 400 responses and client-side
	// validation failures.
	ErrorKindInvalidObject ErrorKind = "invalid_object"

	// ErrorKindMissingQueryParameter covers 400 responses whose error body
	// reports a required query parameter as absent (error code E003).
	ErrorKindMissingQueryParameter ErrorKind = "missing_query_parameter"

	// ErrorKindAuthentication covers 401 responses.
	ErrorKindAuthentication ErrorKind = "authentication"

	// ErrorKindAuthorization covers 403 responses.
	ErrorKindAuthorization ErrorKind = "authorization"

	// ErrorKindNotFound covers 404 responses.
	ErrorKindNotFound ErrorKind = "not_found"

	// ErrorKindConflict covers 409 responses.
	ErrorKindConflict ErrorKind = "conflict"

	// ErrorKindServer covers 5xx responses and any otherwise unmapped status.
	ErrorKindServer ErrorKind = "server"
)

// Error codes the API reports in structured error bodies.
const (
	ErrorCodeInvalidObject  = "API_I00013"
	ErrorCodeMissingParam   = "E003"
	ErrorCodeNotFound       = "API_I00007"
	ErrorCodeObjectConflict = "API_I00005"
)

// ErrCommitTimeout is returned when a synchronous commit does not reach a
// terminal job state within the caller's timeout. This is a client-side
// give-up: the server-side job keeps running.
var ErrCommitTimeout = errors.New("timed out waiting for commit job to complete")

// APIError is the typed error surfaced for every non-2xx API response.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Code       string
	Message    string
	RequestID  string
	Details    json.RawMessage
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s (status: %d, code: %s)", e.Kind, e.Message, e.StatusCode, e.Code)
	}

	return fmt.Sprintf("%s: %s (status: %d)", e.Kind, e.Message, e.StatusCode)
}

// ErrorResponse mirrors the structured error payload the API returns.
type ErrorResponse struct {
	Errors    []ErrorDetail `json:"_errors"`
	RequestID string        `json:"_request_id,omitempty"`
}

// ErrorDetail is a single entry in an error payload.
type ErrorDetail struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Details json.RawMessage `json:"details,omitempty"`
}

// KindForStatus maps an HTTP status code to its error kind. Unmapped
// statuses fall back to the server kind.
func KindForStatus(statusCode int) ErrorKind {
	switch statusCode {
	case http.StatusBadRequest:
		return ErrorKindInvalidObject
	case http.StatusUnauthorized:
		return ErrorKindAuthentication
	case http.StatusForbidden:
		return ErrorKindAuthorization
	case http.StatusNotFound:
		return ErrorKindNotFound
	case http.StatusConflict:
		return ErrorKindConflict
	default:
		return ErrorKindServer
	}
}

// genericMessage returns a fallback message for a status class when the
// response body carries no parseable error payload.
func genericMessage(statusCode int) string {
	text := http.StatusText(statusCode)
	if text == "" {
		text = "unexpected response"
	}

	return fmt.Sprintf("%s from configuration API", text)
}

// NewAPIError builds an APIError from a response status and body. The body
// is parsed as a structured error payload when possible; otherwise the
// error carries a generic message for that status class.
func NewAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{
		Kind:       KindForStatus(statusCode),
		StatusCode: statusCode,
		Message:    genericMessage(statusCode),
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil || len(errResp.Errors) == 0 {
		return apiErr
	}

	first := errResp.Errors[0]
	apiErr.Code = first.Code
	apiErr.RequestID = errResp.RequestID
	apiErr.Details = first.Details

	if first.Message != "" {
		apiErr.Message = first.Message
	}

	// A 400 with the missing-parameter code is its own kind; the filter and
	// container checks depend on the distinction.
	if statusCode == http.StatusBadRequest && isMissingParam(first) {
		apiErr.Kind = ErrorKindMissingQueryParameter
	}

	return apiErr
}

func isMissingParam(detail ErrorDetail) bool {
	return detail.Code == ErrorCodeMissingParam ||
		strings.HasPrefix(detail.Message, "Missing Query Parameter")
}

// NewInvalidObjectError builds a client-side validation failure. It shares
// the invalid-object kind with server-reported 400s so callers handle both
// the same way.
func NewInvalidObjectError(message string) *APIError {
	return &APIError{
		Kind:       ErrorKindInvalidObject,
		StatusCode: http.StatusBadRequest,
		Message:    message,
	}
}

// IsKind reports whether err (or anything it wraps) is an APIError of the
// given kind.
func IsKind(err error, kind ErrorKind) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Kind == kind
	}

	return false
}

// IsInvalidObject reports whether the error is a validation failure.
func IsInvalidObject(err error) bool {
	return IsKind(err, ErrorKindInvalidObject)
}

// IsMissingQueryParameter reports whether a required parameter was absent.
func IsMissingQueryParameter(err error) bool {
	return IsKind(err, ErrorKindMissingQueryParameter)
}

// IsAuthentication reports whether the error is an authentication failure.
func IsAuthentication(err error) bool {
	return IsKind(err, ErrorKindAuthentication)
}

// IsAuthorization reports whether the error is an authorization failure.
func IsAuthorization(err error) bool {
	return IsKind(err, ErrorKindAuthorization)
}

// IsNotFound reports whether the requested object does not exist.
func IsNotFound(err error) bool {
	return IsKind(err, ErrorKindNotFound)
}

// IsConflict reports whether the request conflicted with existing state.
func IsConflict(err error) bool {
	return IsKind(err, ErrorKindConflict)
}

// IsServerError reports whether the API failed with a server-side error.
func IsServerError(err error) bool {
	return IsKind(err, ErrorKindServer)
}

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrAPIEndpointRequired = errors.New("API endpoint is required")
	ErrUpdateRequiresID    = errors.New("update requires an object id")
	ErrJobFailed           = errors.New("job failed")
	ErrNoMoreItems         = errors.New("no more items")
)
