package client

import (
	"context"

	"github.com/fivetwenty-io/scm-client/internal/http"
	"github.com/fivetwenty-io/scm-client/pkg/scm"
)

// TagsClient implements scm.TagsClient. The tags endpoint evaluates no
// filter fields server-side, so color filters and friends run locally.
type TagsClient struct {
	objects *objectClient[scm.Tag]
}

// NewTagsClient creates a new tags client.
func NewTagsClient(httpClient *http.Client) *TagsClient {
	return &TagsClient{
		objects: newObjectClient[scm.Tag](httpClient, "/config/objects/v1/tags"),
	}
}

// Create creates a new tag.
func (c *TagsClient) Create(ctx context.Context, request *scm.TagCreateRequest) (*scm.Tag, error) {
	return c.objects.create(ctx, request)
}

// Get fetches a tag by ID.
func (c *TagsClient) Get(ctx context.Context, id string) (*scm.Tag, error) {
	return c.objects.get(ctx, id)
}

// Update replaces a tag. It accepts an *scm.TagUpdateRequest or a raw map
// carrying an "id".
func (c *TagsClient) Update(ctx context.Context, input any) (*scm.Tag, error) {
	return c.objects.update(ctx, input)
}

// Delete removes a tag by ID.
func (c *TagsClient) Delete(ctx context.Context, id string) error {
	return c.objects.delete(ctx, id)
}

// List materializes every tag matching the params.
func (c *TagsClient) List(ctx context.Context, params *scm.QueryParams) ([]scm.Tag, error) {
	return c.objects.list(ctx, params)
}

// ListPage fetches a single page of tags.
func (c *TagsClient) ListPage(ctx context.Context, params *scm.QueryParams) (*scm.ListResponse[scm.Tag], error) {
	return c.objects.listPage(ctx, params)
}
