package client

import (
	"context"

	"github.com/fivetwenty-io/scm-client/internal/http"
	"github.com/fivetwenty-io/scm-client/pkg/scm"
)

// AddressGroupsClient implements scm.AddressGroupsClient.
type AddressGroupsClient struct {
	objects *objectClient[scm.AddressGroup]
}

// NewAddressGroupsClient creates a new address groups client.
func NewAddressGroupsClient(httpClient *http.Client) *AddressGroupsClient {
	return &AddressGroupsClient{
		objects: newObjectClient[scm.AddressGroup](httpClient, "/config/objects/v1/address-groups", "tag"),
	}
}

// Create creates a new address group.
func (c *AddressGroupsClient) Create(ctx context.Context, request *scm.AddressGroupCreateRequest) (*scm.AddressGroup, error) {
	return c.objects.create(ctx, request)
}

// Get fetches an address group by ID.
func (c *AddressGroupsClient) Get(ctx context.Context, id string) (*scm.AddressGroup, error) {
	return c.objects.get(ctx, id)
}

// Update replaces an address group. It accepts an
// *scm.AddressGroupUpdateRequest or a raw map carrying an "id".
func (c *AddressGroupsClient) Update(ctx context.Context, input any) (*scm.AddressGroup, error) {
	return c.objects.update(ctx, input)
}

// Delete removes an address group by ID.
func (c *AddressGroupsClient) Delete(ctx context.Context, id string) error {
	return c.objects.delete(ctx, id)
}

// List materializes every address group matching the params.
func (c *AddressGroupsClient) List(ctx context.Context, params *scm.QueryParams) ([]scm.AddressGroup, error) {
	return c.objects.list(ctx, params)
}

// ListPage fetches a single page of address groups.
func (c *AddressGroupsClient) ListPage(ctx context.Context, params *scm.QueryParams) (*scm.ListResponse[scm.AddressGroup], error) {
	return c.objects.listPage(ctx, params)
}
