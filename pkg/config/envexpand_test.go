package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("SNI_TEST_KEY", "secret-value")
	t.Setenv("SNI_TEST_HOST", "db.internal")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "single variable",
			input:    `api_key: "{{.SNI_TEST_KEY}}"`,
			expected: `api_key: "secret-value"`,
		},
		{
			name:     "multiple variables on one line",
			input:    `url: "{{.SNI_TEST_HOST}}:{{.SNI_TEST_KEY}}"`,
			expected: `url: "db.internal:secret-value"`,
		},
		{
			name:     "missing variable expands to empty",
			input:    `api_key: "{{.SNI_DOES_NOT_EXIST}}"`,
			expected: `api_key: ""`,
		},
		{
			name:     "no template syntax passes through",
			input:    `model: "gpt-4o"`,
			expected: `model: "gpt-4o"`,
		},
		{
			name:     "dollar signs preserved literally",
			input:    `password: "p@ss$word$PATH"`,
			expected: `password: "p@ss$word$PATH"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExpandEnv([]byte(tt.input))
			assert.Equal(t, tt.expected, string(got))
		})
	}
}

func TestExpandEnvMalformedTemplate(t *testing.T) {
	// Malformed template syntax returns the original bytes untouched so
	// the YAML parser can produce the real error.
	input := []byte(`key: "{{.UNCLOSED"`)
	got := ExpandEnv(input)
	assert.Equal(t, input, got)
}
