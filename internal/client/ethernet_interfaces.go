package client

import (
	"context"

	"github.com/fivetwenty-io/scm-client/internal/http"
	"github.com/fivetwenty-io/scm-client/pkg/scm"
)

// EthernetInterfacesClient implements scm.EthernetInterfacesClient.
type EthernetInterfacesClient struct {
	objects *objectClient[scm.EthernetInterface]
}

// NewEthernetInterfacesClient creates a new ethernet interfaces client.
func NewEthernetInterfacesClient(httpClient *http.Client) *EthernetInterfacesClient {
	return &EthernetInterfacesClient{
		objects: newObjectClient[scm.EthernetInterface](httpClient, "/config/network/v1/ethernet-interfaces"),
	}
}

// Create creates a new ethernet interface.
func (c *EthernetInterfacesClient) Create(ctx context.Context, request *scm.EthernetInterfaceCreateRequest) (*scm.EthernetInterface, error) {
	return c.objects.create(ctx, request)
}

// Get fetches an ethernet interface by ID.
func (c *EthernetInterfacesClient) Get(ctx context.Context, id string) (*scm.EthernetInterface, error) {
	return c.objects.get(ctx, id)
}

// Update replaces an ethernet interface. It accepts an
// *scm.EthernetInterfaceUpdateRequest or a raw map carrying an "id".
func (c *EthernetInterfacesClient) Update(ctx context.Context, input any) (*scm.EthernetInterface, error) {
	return c.objects.update(ctx, input)
}

// Delete removes an ethernet interface by ID.
func (c *EthernetInterfacesClient) Delete(ctx context.Context, id string) error {
	return c.objects.delete(ctx, id)
}

// List materializes every ethernet interface matching the params.
func (c *EthernetInterfacesClient) List(ctx context.Context, params *scm.QueryParams) ([]scm.EthernetInterface, error) {
	return c.objects.list(ctx, params)
}

// ListPage fetches a single page of ethernet interfaces.
func (c *EthernetInterfacesClient) ListPage(ctx context.Context, params *scm.QueryParams) (*scm.ListResponse[scm.EthernetInterface], error) {
	return c.objects.listPage(ctx, params)
}
