package scm

import (
	"net/url"
	"strconv"
	"strings"
)

// Server-enforced limits on the limit query parameter.
const (
	// DefaultLimit is applied when a listing does not set a page size.
	DefaultLimit = 2500

	// MaxLimit is the hard cap; larger values are clamped, not rejected.
	MaxLimit = 5000
)

// QueryParams represents query parameters for listing endpoints: the
// container scope selector, the pagination cursor, and filter predicates.
type QueryParams struct {
	// Exactly one of Folder, Snippet, or Device scopes the listing.
	Folder  string
	Snippet string
	Device  string

	// Limit is the page size; zero means DefaultLimit, values above
	// MaxLimit behave as MaxLimit.
	Limit int

	// Offset is the position within the collection to start from.
	Offset int

	// Name matches objects by exact name.
	Name string

	// Filters maps field names to match values. Multi-values are
	// comma-joined on the wire; a field not supported server-side is
	// matched client-side after the collection is assembled.
	Filters map[string][]string
}

// NewQueryParams creates an empty QueryParams.
func NewQueryParams() *QueryParams {
	return &QueryParams{
		Filters: make(map[string][]string),
	}
}

// WithFolder sets the folder scope.
func (p *QueryParams) WithFolder(folder string) *QueryParams {
	p.Folder = folder

	return p
}

// WithSnippet sets the snippet scope.
func (p *QueryParams) WithSnippet(snippet string) *QueryParams {
	p.Snippet = snippet

	return p
}

// WithDevice sets the device scope.
func (p *QueryParams) WithDevice(device string) *QueryParams {
	p.Device = device

	return p
}

// WithLimit sets the page size.
func (p *QueryParams) WithLimit(limit int) *QueryParams {
	p.Limit = limit

	return p
}

// WithOffset sets the cursor offset.
func (p *QueryParams) WithOffset(offset int) *QueryParams {
	p.Offset = offset

	return p
}

// WithName sets the exact-name filter.
func (p *QueryParams) WithName(name string) *QueryParams {
	p.Name = name

	return p
}

// WithFilter appends match values for a field.
func (p *QueryParams) WithFilter(field string, values ...string) *QueryParams {
	if p.Filters == nil {
		p.Filters = make(map[string][]string)
	}

	p.Filters[field] = append(p.Filters[field], values...)

	return p
}

// EffectiveLimit returns the page size after defaulting and clamping.
func (p *QueryParams) EffectiveLimit() int {
	return ClampLimit(p.Limit)
}

// ClampLimit applies the server's limit semantics: zero and negative
// values take the default, values above the cap are clamped to it.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}

	if limit > MaxLimit {
		return MaxLimit
	}

	return limit
}

// Validate checks that exactly one container scope is set.
func (p *QueryParams) Validate() error {
	count := 0
	for _, container := range []string{p.Folder, p.Snippet, p.Device} {
		if container != "" {
			count++
		}
	}

	if count != 1 {
		return NewInvalidObjectError("exactly one of 'folder', 'snippet', or 'device' must be provided")
	}

	return nil
}

// Clone returns a deep copy; pagination helpers mutate the offset without
// touching the caller's params.
func (p *QueryParams) Clone() *QueryParams {
	if p == nil {
		return NewQueryParams()
	}

	clone := *p
	clone.Filters = make(map[string][]string, len(p.Filters))

	for field, values := range p.Filters {
		clone.Filters[field] = append([]string(nil), values...)
	}

	return &clone
}

// ToValues converts the params to url.Values. Filter fields are included
// as-is; splitting them into server- and client-side predicates is the
// listing code's job.
func (p *QueryParams) ToValues() url.Values {
	values := url.Values{}

	if p.Folder != "" {
		values.Set("folder", p.Folder)
	}

	if p.Snippet != "" {
		values.Set("snippet", p.Snippet)
	}

	if p.Device != "" {
		values.Set("device", p.Device)
	}

	if p.Limit > 0 {
		values.Set("limit", strconv.Itoa(ClampLimit(p.Limit)))
	}

	if p.Offset > 0 {
		values.Set("offset", strconv.Itoa(p.Offset))
	}

	if p.Name != "" {
		values.Set("name", p.Name)
	}

	for field, filterValues := range p.Filters {
		if len(filterValues) > 0 {
			values.Set(field, strings.Join(filterValues, ","))
		}
	}

	return values
}
