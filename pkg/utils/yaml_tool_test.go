package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONToYAML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "flat object keeps key order",
			input:    `{"title":"Contract A","isPublic":true,"tags":["night","warehouse"]}`,
			expected: "title: Contract A\nisPublic: true\ntags:\n- night\n- warehouse\n",
		},
		{
			name:     "nested objects and nulls",
			input:    `{"questions":[null,{"ordering":1,"questionType":"text"}]}`,
			expected: "questions:\n- null\n- ordering: 1\n  questionType: text\n",
		},
		{
			name:     "empty object",
			input:    `{}`,
			expected: "{}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := JSONToYAML([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(out))
		})
	}
}

func TestJSONToYAMLRejectsNonObject(t *testing.T) {
	_, err := JSONToYAML([]byte(`[1, 2]`))
	assert.Error(t, err)
}
