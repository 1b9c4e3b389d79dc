package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"

	internalhttp "github.com/fivetwenty-io/scm-client/internal/http"
	"github.com/fivetwenty-io/scm-client/pkg/scm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressesClient_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/config/objects/v1/addresses", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "web-server", body["name"])
		assert.Equal(t, "10.0.0.1/32", body["ip_netmask"])
		assert.Equal(t, "Shared", body["folder"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(scm.Address{
			Resource:  scm.Resource{ID: "addr-1"},
			Name:      "web-server",
			IPNetmask: "10.0.0.1/32",
			Folder:    "Shared",
		})
	}))
	defer server.Close()

	addresses := NewAddressesClient(internalhttp.NewClient(server.URL, nil))

	address, err := addresses.Create(context.Background(), &scm.AddressCreateRequest{
		Name:      "web-server",
		IPNetmask: "10.0.0.1/32",
		Folder:    "Shared",
	})
	require.NoError(t, err)

	assert.Equal(t, "addr-1", address.ID)
	assert.Equal(t, "web-server", address.Name)
}

func TestAddressesClient_CreateValidatesBeforeSending(t *testing.T) {
	var requests atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	addresses := NewAddressesClient(internalhttp.NewClient(server.URL, nil))

	// Two value fields set
	_, err := addresses.Create(context.Background(), &scm.AddressCreateRequest{
		Name:      "bad",
		IPNetmask: "10.0.0.1/32",
		FQDN:      "example.com",
		Folder:    "Shared",
	})

	require.Error(t, err)
	assert.True(t, scm.IsInvalidObject(err))
	assert.Equal(t, int32(0), requests.Load())
}

func TestAddressesClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/config/objects/v1/addresses/addr-1", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)

		_ = json.NewEncoder(w).Encode(scm.Address{
			Resource: scm.Resource{ID: "addr-1"},
			Name:     "web-server",
			FQDN:     "web.example.com",
			Folder:   "Shared",
		})
	}))
	defer server.Close()

	addresses := NewAddressesClient(internalhttp.NewClient(server.URL, nil))

	address, err := addresses.Get(context.Background(), "addr-1")
	require.NoError(t, err)
	assert.Equal(t, "web.example.com", address.FQDN)
}

func TestAddressesClient_GetNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"_errors": [{"code": "API_I00007", "message": "Object Not Present"}]}`))
	}))
	defer server.Close()

	addresses := NewAddressesClient(internalhttp.NewClient(server.URL, nil))

	_, err := addresses.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, scm.IsNotFound(err))
}

func TestAddressesClient_Update(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/config/objects/v1/addresses/addr-1", r.URL.Path)
		assert.Equal(t, http.MethodPut, r.Method)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		// The id travels in the path, not the body
		assert.NotContains(t, body, "id")
		assert.Equal(t, "renamed", body["name"])

		_ = json.NewEncoder(w).Encode(scm.Address{
			Resource:  scm.Resource{ID: "addr-1"},
			Name:      "renamed",
			IPNetmask: "10.0.0.1/32",
			Folder:    "Shared",
		})
	}))
	defer server.Close()

	addresses := NewAddressesClient(internalhttp.NewClient(server.URL, nil))

	address, err := addresses.Update(context.Background(), &scm.AddressUpdateRequest{
		ID:        "addr-1",
		Name:      "renamed",
		IPNetmask: "10.0.0.1/32",
		Folder:    "Shared",
	})
	require.NoError(t, err)
	assert.Equal(t, "renamed", address.Name)
}

func TestAddressesClient_UpdateFromMap(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/config/objects/v1/addresses/addr-9", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.NotContains(t, body, "id")

		_ = json.NewEncoder(w).Encode(scm.Address{
			Resource: scm.Resource{ID: "addr-9"},
			Name:     "from-map",
			Folder:   "Shared",
		})
	}))
	defer server.Close()

	addresses := NewAddressesClient(internalhttp.NewClient(server.URL, nil))

	input := map[string]any{
		"id":         "addr-9",
		"name":       "from-map",
		"ip_netmask": "10.0.0.9/32",
		"folder":     "Shared",
	}

	address, err := addresses.Update(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "from-map", address.Name)

	// The caller's map is left intact
	assert.Equal(t, "addr-9", input["id"])
}

func TestAddressesClient_UpdateEmptyResponseBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		// Some endpoints acknowledge a replace with an empty 2xx
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	addresses := NewAddressesClient(internalhttp.NewClient(server.URL, nil))

	address, err := addresses.Update(context.Background(), &scm.AddressUpdateRequest{
		ID:        "addr-1",
		Name:      "renamed",
		IPNetmask: "10.0.0.1/32",
		Folder:    "Shared",
	})
	require.NoError(t, err)

	// Success: the validated request stands in for the representation
	assert.Equal(t, "addr-1", address.ID)
	assert.Equal(t, "renamed", address.Name)
	assert.Equal(t, "10.0.0.1/32", address.IPNetmask)
}

func TestAddressesClient_UpdateRequiresID(t *testing.T) {
	addresses := NewAddressesClient(internalhttp.NewClient("http://unused.invalid", nil))

	_, err := addresses.Update(context.Background(), map[string]any{
		"name":   "no-id",
		"folder": "Shared",
	})
	assert.ErrorIs(t, err, scm.ErrUpdateRequiresID)
}

func TestAddressesClient_Delete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/config/objects/v1/addresses/addr-1", r.URL.Path)
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	addresses := NewAddressesClient(internalhttp.NewClient(server.URL, nil))

	require.NoError(t, addresses.Delete(context.Background(), "addr-1"))

	err := addresses.Delete(context.Background(), "")
	assert.True(t, scm.IsInvalidObject(err))
}

func TestAddressesClient_ListPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Shared", r.URL.Query().Get("folder"))
		// An oversized limit goes out clamped
		assert.Equal(t, "5000", r.URL.Query().Get("limit"))

		_ = json.NewEncoder(w).Encode(scm.ListResponse[scm.Address]{
			Data: []scm.Address{
				{Resource: scm.Resource{ID: "a1"}, Name: "one", Folder: "Shared"},
				{Resource: scm.Resource{ID: "a2"}, Name: "two", Folder: "Shared"},
			},
			Limit:  5000,
			Offset: 0,
			Total:  2,
		})
	}))
	defer server.Close()

	addresses := NewAddressesClient(internalhttp.NewClient(server.URL, nil))

	page, err := addresses.ListPage(context.Background(), scm.NewQueryParams().WithFolder("Shared").WithLimit(99999))
	require.NoError(t, err)

	assert.Len(t, page.Data, 2)
	assert.Equal(t, 2, page.Total)
}

func TestAddressesClient_ListRequiresContainer(t *testing.T) {
	addresses := NewAddressesClient(internalhttp.NewClient("http://unused.invalid", nil))

	_, err := addresses.List(context.Background(), scm.NewQueryParams())
	require.Error(t, err)
	assert.True(t, scm.IsInvalidObject(err))

	_, err = addresses.List(context.Background(), scm.NewQueryParams().WithFolder("a").WithSnippet("b"))
	assert.True(t, scm.IsInvalidObject(err))
}

func TestAddressesClient_ListPaginates(t *testing.T) {
	all := make([]scm.Address, 5)
	for i := range all {
		all[i] = scm.Address{
			Resource: scm.Resource{ID: "addr-" + strconv.Itoa(i)},
			Name:     "host-" + strconv.Itoa(i),
			Folder:   "Shared",
		}
	}

	var requests atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)

		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

		end := offset + limit
		if end > len(all) {
			end = len(all)
		}

		_ = json.NewEncoder(w).Encode(scm.ListResponse[scm.Address]{
			Data:   all[offset:end],
			Limit:  limit,
			Offset: offset,
			Total:  len(all),
		})
	}))
	defer server.Close()

	addresses := NewAddressesClient(internalhttp.NewClient(server.URL, nil))

	items, err := addresses.List(context.Background(), scm.NewQueryParams().WithFolder("Shared").WithLimit(2))
	require.NoError(t, err)

	assert.Len(t, items, 5)
	assert.Equal(t, int32(3), requests.Load())
}

func TestAddressesClient_ListSplitsFilters(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The tag filter is evaluated server-side and stays on the wire
		assert.Equal(t, "prod", r.URL.Query().Get("tag"))
		// The fqdn filter is not; it must not leak into the request
		assert.Empty(t, r.URL.Query().Get("fqdn"))

		_ = json.NewEncoder(w).Encode(scm.ListResponse[scm.Address]{
			Data: []scm.Address{
				{Resource: scm.Resource{ID: "a1"}, Name: "one", FQDN: "web.example.com", Folder: "Shared", Tags: []string{"prod"}},
				{Resource: scm.Resource{ID: "a2"}, Name: "two", FQDN: "db.example.com", Folder: "Shared", Tags: []string{"prod"}},
			},
			Total: 2,
		})
	}))
	defer server.Close()

	addresses := NewAddressesClient(internalhttp.NewClient(server.URL, nil))

	items, err := addresses.List(context.Background(), scm.NewQueryParams().
		WithFolder("Shared").
		WithFilter("tag", "prod").
		WithFilter("fqdn", "web.example.com"))
	require.NoError(t, err)

	// Local filtering keeps only the matching object
	require.Len(t, items, 1)
	assert.Equal(t, "one", items[0].Name)
}

func TestAddressGroupsClient_ListFiltersListFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// "static" is not a server-evaluated field, so it stays off the wire
		assert.Empty(t, r.URL.Query().Get("static"))

		_ = json.NewEncoder(w).Encode(scm.ListResponse[scm.AddressGroup]{
			Data: []scm.AddressGroup{
				{Resource: scm.Resource{ID: "g1"}, Name: "one", Folder: "Shared", Static: []string{"web-server", "db-server"}},
				{Resource: scm.Resource{ID: "g2"}, Name: "two", Folder: "Shared", Static: []string{"mail-server"}},
				{Resource: scm.Resource{ID: "g3"}, Name: "three", Folder: "Shared", Dynamic: &scm.DynamicFilter{Filter: "'prod'"}},
			},
			Total: 3,
		})
	}))
	defer server.Close()

	groups := NewAddressGroupsClient(internalhttp.NewClient(server.URL, nil))

	// A list field matches when it contains any of the filter values
	items, err := groups.List(context.Background(), scm.NewQueryParams().
		WithFolder("Shared").
		WithFilter("static", "db-server", "mail-server"))
	require.NoError(t, err)

	require.Len(t, items, 2)
	assert.Equal(t, "one", items[0].Name)
	assert.Equal(t, "two", items[1].Name)
}
