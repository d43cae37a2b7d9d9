package allocation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorsResource(t *testing.T) {
	t.Run(
		"1. empty params",
		func(t *testing.T) {
			res, errCr := NewResource(
				&ParamsNewResource{},
			)
			require.Error(t, errCr)
			require.Nil(t, res)
		},
	)

	t.Run(
		"2. empty name",
		func(t *testing.T) {
			res, errCr := NewResource(
				&ParamsNewResource{
					ID:   1,
					Type: ResourceTypeEmployee,
				},
			)
			require.Error(t, errCr)
			require.Nil(t, res)
		},
	)

	t.Run(
		"3. unknown type",
		func(t *testing.T) {
			res, errCr := NewResource(
				&ParamsNewResource{
					Name: "res",

					ID:   1,
					Type: ResourceType(9),
				},
			)
			require.Error(t, errCr)
			require.Nil(t, res)
		},
	)

	t.Run(
		"4. negative cost",
		func(t *testing.T) {
			res, errCr := NewResource(
				&ParamsNewResource{
					Name: "res",

					CostPerHour: -1,

					ID:   1,
					Type: ResourceTypeEmployee,
				},
			)
			require.Error(t, errCr)
			require.Nil(t, res)
		},
	)
}

func TestNewResourceDefaults(t *testing.T) {
	res, errCr := NewResource(
		&ParamsNewResource{
			Name:   "res",
			Skills: []string{"go"},

			ID:   1,
			Type: ResourceTypeEmployee,
		},
	)
	require.NoError(t, errCr)
	require.NotNil(t, res)

	require.True(t, res.Available)
}

func TestHasSkills(t *testing.T) {
	tests := []struct {
		name     string
		skills   []string
		required []string
		expected bool
	}{
		{
			name:     "1. empty requirement matches anything",
			skills:   nil,
			required: nil,

			expected: true,
		},
		{
			name:     "2. exact match",
			skills:   []string{"go"},
			required: []string{"go"},

			expected: true,
		},
		{
			name:     "3. superset",
			skills:   []string{"go", "sql", "docs"},
			required: []string{"go", "docs"},

			expected: true,
		},
		{
			name:     "4. partial coverage is no match",
			skills:   []string{"go"},
			required: []string{"go", "sql"},

			expected: false,
		},
		{
			name:     "5. no skills at all",
			skills:   nil,
			required: []string{"go"},

			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(
			tt.name,
			func(t *testing.T) {
				res := Resource{
					Skills: tt.skills,
				}

				require.Equal(t,
					tt.expected,
					res.HasSkills(tt.required),
				)
			},
		)
	}
}
