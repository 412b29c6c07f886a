package environment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/xrequestid/pkg/environment"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want environment.Environment
	}{
		{"", environment.Development},
		{"dev", environment.Development},
		{" Development ", environment.Development},
		{"stage", environment.Staging},
		{"STAGING", environment.Staging},
		{"prod", environment.Production},
		{"production", environment.Production},
		{"Custom", environment.Environment("custom")},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, environment.Parse(tt.in))
		})
	}
}

func TestPredicates(t *testing.T) {
	t.Parallel()

	assert.True(t, environment.Development.IsDevelopment())
	assert.True(t, environment.Staging.IsStaging())
	assert.True(t, environment.Production.IsProduction())
	assert.False(t, environment.Environment("custom").IsDevelopment())
	assert.False(t, environment.Production.IsDevelopment())
	assert.Equal(t, "staging", environment.Staging.String())
}

func TestUnmarshalText(t *testing.T) {
	t.Parallel()

	var env environment.Environment
	require.NoError(t, env.UnmarshalText([]byte("prod")))
	assert.Equal(t, environment.Production, env)
}
