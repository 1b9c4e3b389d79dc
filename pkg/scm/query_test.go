package scm_test

import (
	"testing"

	"github.com/fivetwenty-io/scm-client/pkg/scm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampLimit(t *testing.T) {
	tests := []struct {
		name     string
		limit    int
		expected int
	}{
		{"zero takes the default", 0, scm.DefaultLimit},
		{"negative takes the default", -10, scm.DefaultLimit},
		{"in range passes through", 100, 100},
		{"at the default", scm.DefaultLimit, scm.DefaultLimit},
		{"at the cap", scm.MaxLimit, scm.MaxLimit},
		{"above the cap is clamped, not rejected", 999999, scm.MaxLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, scm.ClampLimit(tt.limit))
		})
	}
}

func TestQueryParams_EffectiveLimit(t *testing.T) {
	assert.Equal(t, scm.DefaultLimit, scm.NewQueryParams().EffectiveLimit())
	assert.Equal(t, 50, scm.NewQueryParams().WithLimit(50).EffectiveLimit())
	assert.Equal(t, scm.MaxLimit, scm.NewQueryParams().WithLimit(6000).EffectiveLimit())
}

func TestQueryParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		params  *scm.QueryParams
		wantErr bool
	}{
		{"folder only", scm.NewQueryParams().WithFolder("Shared"), false},
		{"snippet only", scm.NewQueryParams().WithSnippet("predefined"), false},
		{"device only", scm.NewQueryParams().WithDevice("fw-01"), false},
		{"no container", scm.NewQueryParams(), true},
		{"folder and snippet", scm.NewQueryParams().WithFolder("Shared").WithSnippet("predefined"), true},
		{"all three", scm.NewQueryParams().WithFolder("a").WithSnippet("b").WithDevice("c"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, scm.IsInvalidObject(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestQueryParams_ToValues(t *testing.T) {
	params := scm.NewQueryParams().
		WithFolder("Shared").
		WithLimit(200).
		WithOffset(400).
		WithName("web-server").
		WithFilter("tag", "prod", "dmz")

	values := params.ToValues()

	assert.Equal(t, "Shared", values.Get("folder"))
	assert.Equal(t, "200", values.Get("limit"))
	assert.Equal(t, "400", values.Get("offset"))
	assert.Equal(t, "web-server", values.Get("name"))
	assert.Equal(t, "prod,dmz", values.Get("tag"))
}

func TestQueryParams_ToValues_Clamping(t *testing.T) {
	values := scm.NewQueryParams().WithFolder("Shared").WithLimit(99999).ToValues()
	assert.Equal(t, "5000", values.Get("limit"))

	// Unset limit and offset stay off the wire
	values = scm.NewQueryParams().WithFolder("Shared").ToValues()
	assert.Empty(t, values.Get("limit"))
	assert.Empty(t, values.Get("offset"))
}

func TestQueryParams_Clone(t *testing.T) {
	original := scm.NewQueryParams().WithFolder("Shared").WithFilter("tag", "prod")

	clone := original.Clone()
	clone.Offset = 2500
	clone.WithFilter("tag", "dev")
	clone.WithFilter("fqdn", "example.com")

	assert.Equal(t, 0, original.Offset)
	assert.Equal(t, []string{"prod"}, original.Filters["tag"])
	assert.NotContains(t, original.Filters, "fqdn")
	assert.Equal(t, []string{"prod", "dev"}, clone.Filters["tag"])
}

func TestQueryParams_CloneNil(t *testing.T) {
	var params *scm.QueryParams

	clone := params.Clone()
	require.NotNil(t, clone)
	assert.NotNil(t, clone.Filters)
}
