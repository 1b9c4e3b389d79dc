package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/scm-client/internal/http"
	"github.com/fivetwenty-io/scm-client/pkg/scm"
)

// objectClient is the generic implementation of create/read/update/delete
// and exhaustive listing shared by every configuration object type. A
// concrete client is an objectClient bound to an endpoint path plus typed
// wrappers over these methods.
type objectClient[T any] struct {
	httpClient *http.Client
	endpoint   string

	// serverFilters names the filter fields this endpoint evaluates
	// server-side. Any other filter is applied client-side after the
	// collection is assembled, with the same matching semantics, so the
	// result set does not depend on where the filter ran.
	serverFilters map[string]struct{}
}

func newObjectClient[T any](httpClient *http.Client, endpoint string, serverFilters ...string) *objectClient[T] {
	filters := make(map[string]struct{}, len(serverFilters))
	for _, field := range serverFilters {
		filters[field] = struct{}{}
	}

	return &objectClient[T]{
		httpClient:    httpClient,
		endpoint:      endpoint,
		serverFilters: filters,
	}
}

// create validates the request client-side, then posts it and parses the
// server-validated representation.
func (c *objectClient[T]) create(ctx context.Context, body any) (*T, error) {
	if err := validateInput(body); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, c.endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("creating object: %w", err)
	}

	return parseObject[T](resp.Body)
}

// get fetches one object by its server-assigned identifier.
func (c *objectClient[T]) get(ctx context.Context, id string) (*T, error) {
	if id == "" {
		return nil, scm.NewInvalidObjectError("object id is required")
	}

	resp, err := c.httpClient.Get(ctx, c.endpoint+"/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("getting object: %w", err)
	}

	return parseObject[T](resp.Body)
}

// update issues a full replace. It accepts either a typed update model or
// a raw map carrying an "id"; both are resolved into one canonical payload
// before the request goes out. An empty 2xx response body is success: the
// canonical payload is returned as the resulting representation.
func (c *objectClient[T]) update(ctx context.Context, input any) (*T, error) {
	payload, id, err := canonicalizeUpdate(input)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Put(ctx, c.endpoint+"/"+id, payload)
	if err != nil {
		return nil, fmt.Errorf("updating object: %w", err)
	}

	if len(bytes.TrimSpace(resp.Body)) == 0 {
		payload["id"] = id

		return objectFromMap[T](payload)
	}

	return parseObject[T](resp.Body)
}

// delete removes one object by identifier.
func (c *objectClient[T]) delete(ctx context.Context, id string) error {
	if id == "" {
		return scm.NewInvalidObjectError("object id is required")
	}

	_, err := c.httpClient.Delete(ctx, c.endpoint+"/"+id)
	if err != nil {
		return fmt.Errorf("deleting object: %w", err)
	}

	return nil
}

// ListWithPath fetches a single page; it satisfies scm.PageClient so the
// pagination helpers can drive this client.
func (c *objectClient[T]) ListWithPath(ctx context.Context, path string, params *scm.QueryParams) (*scm.ListResponse[T], error) {
	wireParams := params.Clone()
	wireParams.Limit = wireParams.EffectiveLimit()

	resp, err := c.httpClient.Get(ctx, path, wireParams.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing objects: %w", err)
	}

	var page scm.ListResponse[T]
	if err := json.Unmarshal(resp.Body, &page); err != nil {
		return nil, fmt.Errorf("parsing list response: %w", err)
	}

	return &page, nil
}

// listPage fetches one page with all filters on the wire.
func (c *objectClient[T]) listPage(ctx context.Context, params *scm.QueryParams) (*scm.ListResponse[T], error) {
	params, err := c.prepareListParams(params)
	if err != nil {
		return nil, err
	}

	return c.ListWithPath(ctx, c.endpoint, params)
}

// list materializes every matching object. Filters the server supports go
// on the wire; the rest become client-side predicates applied after the
// whole collection is assembled. A page failure aborts the call; no
// partial result is returned.
func (c *objectClient[T]) list(ctx context.Context, params *scm.QueryParams) ([]T, error) {
	params, err := c.prepareListParams(params)
	if err != nil {
		return nil, err
	}

	wireParams, localFilters := c.splitFilters(params)

	items, err := scm.FetchAllPages[T](ctx, c, c.endpoint, wireParams, nil)
	if err != nil {
		return nil, err
	}

	if len(localFilters) == 0 {
		return items, nil
	}

	return filterItems(items, localFilters)
}

func (c *objectClient[T]) prepareListParams(params *scm.QueryParams) (*scm.QueryParams, error) {
	if params == nil {
		params = scm.NewQueryParams()
	}

	if err := params.Validate(); err != nil {
		return nil, err
	}

	for field, values := range params.Filters {
		if field == "" || len(values) == 0 {
			return nil, scm.NewInvalidObjectError("filter fields require a name and at least one value")
		}
	}

	return params, nil
}

// splitFilters separates the params into the wire request and the
// predicates evaluated locally.
func (c *objectClient[T]) splitFilters(params *scm.QueryParams) (*scm.QueryParams, map[string][]string) {
	wireParams := params.Clone()
	localFilters := make(map[string][]string)

	for field, values := range params.Filters {
		if _, ok := c.serverFilters[field]; ok {
			continue
		}

		localFilters[field] = values

		delete(wireParams.Filters, field)
	}

	return wireParams, localFilters
}

// filterItems applies the local predicates with the server's matching
// semantics: a scalar field matches when it equals any filter value, a
// list field when it contains any filter value.
func filterItems[T any](items []T, filters map[string][]string) ([]T, error) {
	filtered := make([]T, 0, len(items))

	for _, item := range items {
		fields, err := itemFields(item)
		if err != nil {
			return nil, err
		}

		if matchesFilters(fields, filters) {
			filtered = append(filtered, item)
		}
	}

	return filtered, nil
}

// itemFields exposes an item's JSON field values for predicate matching,
// so client-side filters see exactly the names the server filters on.
func itemFields(item any) (map[string]any, error) {
	encoded, err := json.Marshal(item)
	if err != nil {
		return nil, fmt.Errorf("encoding object for filtering: %w", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(encoded, &fields); err != nil {
		return nil, fmt.Errorf("decoding object for filtering: %w", err)
	}

	return fields, nil
}

func matchesFilters(fields map[string]any, filters map[string][]string) bool {
	for field, values := range filters {
		if !matchesField(fields[field], values) {
			return false
		}
	}

	return true
}

func matchesField(fieldValue any, values []string) bool {
	switch typed := fieldValue.(type) {
	case string:
		for _, value := range values {
			if typed == value {
				return true
			}
		}
	case []any:
		for _, element := range typed {
			str, ok := element.(string)
			if !ok {
				continue
			}

			for _, value := range values {
				if str == value {
					return true
				}
			}
		}
	}

	return false
}

// canonicalizeUpdate resolves the update input (typed model or raw map)
// into one canonical payload and the target identifier. The id travels in
// the path, not the body.
func canonicalizeUpdate(input any) (map[string]any, string, error) {
	if input == nil {
		return nil, "", scm.NewInvalidObjectError("update requires a payload")
	}

	if err := validateInput(input); err != nil {
		return nil, "", err
	}

	payload, ok := input.(map[string]any)
	if !ok {
		encoded, err := json.Marshal(input)
		if err != nil {
			return nil, "", fmt.Errorf("encoding update payload: %w", err)
		}

		if err := json.Unmarshal(encoded, &payload); err != nil {
			return nil, "", fmt.Errorf("decoding update payload: %w", err)
		}
	} else {
		// Copy so the caller's map is not mutated.
		cloned := make(map[string]any, len(payload))
		for key, value := range payload {
			cloned[key] = value
		}

		payload = cloned
	}

	id, _ := payload["id"].(string)
	if id == "" {
		return nil, "", scm.ErrUpdateRequiresID
	}

	delete(payload, "id")

	return payload, id, nil
}

// validateInput runs a model's own validation when it carries one.
func validateInput(input any) error {
	if validatable, ok := input.(scm.Validatable); ok {
		return validatable.Validate()
	}

	return nil
}

func parseObject[T any](body []byte) (*T, error) {
	var object T
	if err := json.Unmarshal(body, &object); err != nil {
		return nil, fmt.Errorf("parsing object response: %w", err)
	}

	return &object, nil
}

func objectFromMap[T any](fields map[string]any) (*T, error) {
	encoded, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("encoding object: %w", err)
	}

	return parseObject[T](encoded)
}
