package client

import (
	"context"

	"github.com/fivetwenty-io/scm-client/internal/http"
	"github.com/fivetwenty-io/scm-client/pkg/scm"
)

// AddressesClient implements scm.AddressesClient.
type AddressesClient struct {
	objects *objectClient[scm.Address]
}

// NewAddressesClient creates a new addresses client. The endpoint
// evaluates tag filters server-side; everything else is applied locally.
func NewAddressesClient(httpClient *http.Client) *AddressesClient {
	return &AddressesClient{
		objects: newObjectClient[scm.Address](httpClient, "/config/objects/v1/addresses", "tag"),
	}
}

// Create creates a new address object.
func (c *AddressesClient) Create(ctx context.Context, request *scm.AddressCreateRequest) (*scm.Address, error) {
	return c.objects.create(ctx, request)
}

// Get fetches an address object by ID.
func (c *AddressesClient) Get(ctx context.Context, id string) (*scm.Address, error) {
	return c.objects.get(ctx, id)
}

// Update replaces an address object. It accepts an *scm.AddressUpdateRequest
// or a raw map carrying an "id".
func (c *AddressesClient) Update(ctx context.Context, input any) (*scm.Address, error) {
	return c.objects.update(ctx, input)
}

// Delete removes an address object by ID.
func (c *AddressesClient) Delete(ctx context.Context, id string) error {
	return c.objects.delete(ctx, id)
}

// List materializes every address matching the params.
func (c *AddressesClient) List(ctx context.Context, params *scm.QueryParams) ([]scm.Address, error) {
	return c.objects.list(ctx, params)
}

// ListPage fetches a single page of addresses.
func (c *AddressesClient) ListPage(ctx context.Context, params *scm.QueryParams) (*scm.ListResponse[scm.Address], error) {
	return c.objects.listPage(ctx, params)
}
