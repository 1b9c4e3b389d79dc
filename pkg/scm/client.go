package scm

import (
	"context"
	"time"
)

// Client is the top-level interface to the configuration API.
type Client interface {
	Addresses() AddressesClient
	AddressGroups() AddressGroupsClient
	Tags() TagsClient
	EthernetInterfaces() EthernetInterfacesClient
	Jobs() JobsClient
	Operations() OperationsClient
}

// AddressesClient manages address objects.
type AddressesClient interface {
	Create(ctx context.Context, request *AddressCreateRequest) (*Address, error)
	Get(ctx context.Context, id string) (*Address, error)
	// Update issues a full replace. It accepts either an
	// *AddressUpdateRequest or a raw map[string]any carrying an "id".
	Update(ctx context.Context, input any) (*Address, error)
	Delete(ctx context.Context, id string) error
	// List materializes every matching object across the whole collection.
	List(ctx context.Context, params *QueryParams) ([]Address, error)
	ListPage(ctx context.Context, params *QueryParams) (*ListResponse[Address], error)
}

// AddressGroupsClient manages address group objects.
type AddressGroupsClient interface {
	Create(ctx context.Context, request *AddressGroupCreateRequest) (*AddressGroup, error)
	Get(ctx context.Context, id string) (*AddressGroup, error)
	Update(ctx context.Context, input any) (*AddressGroup, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, params *QueryParams) ([]AddressGroup, error)
	ListPage(ctx context.Context, params *QueryParams) (*ListResponse[AddressGroup], error)
}

// TagsClient manages tag objects.
type TagsClient interface {
	Create(ctx context.Context, request *TagCreateRequest) (*Tag, error)
	Get(ctx context.Context, id string) (*Tag, error)
	Update(ctx context.Context, input any) (*Tag, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, params *QueryParams) ([]Tag, error)
	ListPage(ctx context.Context, params *QueryParams) (*ListResponse[Tag], error)
}

// EthernetInterfacesClient manages ethernet interface objects.
type EthernetInterfacesClient interface {
	Create(ctx context.Context, request *EthernetInterfaceCreateRequest) (*EthernetInterface, error)
	Get(ctx context.Context, id string) (*EthernetInterface, error)
	Update(ctx context.Context, input any) (*EthernetInterface, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, params *QueryParams) ([]EthernetInterface, error)
	ListPage(ctx context.Context, params *QueryParams) (*ListResponse[EthernetInterface], error)
}

// JobsClient tracks server-side asynchronous jobs.
type JobsClient interface {
	// Get fetches the current status of one job. It does not retry.
	Get(ctx context.Context, jobID string) (*Job, error)
	// List pages through jobs with the same offset/limit contract as
	// object listings; parentID filters to children of one job.
	List(ctx context.Context, limit, offset int, parentID string) (*ListResponse[Job], error)
	// PollUntilComplete polls at a fixed interval until the job reaches a
	// terminal state or the context expires.
	PollUntilComplete(ctx context.Context, jobID string) (*Job, error)
}

// OperationsClient submits candidate-configuration pushes.
type OperationsClient interface {
	// Commit submits a push and returns its job reference immediately.
	Commit(ctx context.Context, request *CommitRequest) (*CommitResponse, error)
	// CommitAndWait submits a push and blocks until the job reaches a
	// terminal state or timeout elapses; the timeout is a client-side
	// give-up wrapped around ErrCommitTimeout.
	CommitAndWait(ctx context.Context, request *CommitRequest, timeout time.Duration) (*Job, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building an scm.Client.
//
// # Authentication precedence
//
//  1. AccessToken: if set, it is used directly as a static Bearer token and
//     never refreshed.
//  2. ClientID/ClientSecret: uses the OAuth2 client_credentials grant
//     against TokenURL, scoped to TSGID. Expired tokens are refreshed
//     transparently; a 401 mid-call triggers one refresh-and-retry.
//
// # Token URL defaulting
//
// If authentication is required and TokenURL is empty, scmclient.New fills
// in the platform's default token endpoint.
type Config struct {
	// APIEndpoint: base URL for the configuration API. scmclient.New
	// normalizes it by trimming a trailing slash and adding "https://"
	// when no scheme is present.
	APIEndpoint string

	// ClientID: OAuth2 client ID for the client_credentials grant.
	ClientID string
	// ClientSecret: OAuth2 client secret used with ClientID.
	ClientSecret string
	// TSGID: tenant service group the token is scoped to.
	TSGID string
	// AccessToken: if set, used directly as a Bearer token.
	AccessToken string
	// TokenURL: full OAuth2 token endpoint; defaulted when empty.
	TokenURL string

	// HTTPTimeout: optional default HTTP timeout where supported. Most
	// calls should rely on context timeouts.
	HTTPTimeout time.Duration
	// RetryMax: maximum retries for transient failures (>=500, 429, and
	// connection errors). Zero disables transparent retries.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries.
	RetryWaitMax time.Duration
	// Debug: enables verbose HTTP request/response logging when a Logger
	// is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent: overrides the default User-Agent header.
	UserAgent string
}
