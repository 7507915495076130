package conv

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestKey(t *testing.T) {
	var testCases = []struct {
		description string
		id          interface{}
		expect      string
	}{
		{description: "int", id: 7, expect: "number:7"},
		{description: "float", id: float64(7), expect: "number:7"},
		{description: "uint64", id: uint64(7), expect: "number:7"},
		{description: "raw number", id: json.RawMessage(`7`), expect: "number:7"},
		{description: "raw float", id: json.RawMessage(`7.0`), expect: "number:7"},
		{description: "string", id: "7", expect: "string:7"},
		{description: "raw string", id: json.RawMessage(`"a"`), expect: "string:a"},
		{description: "nil", id: nil, expect: "null"},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, RequestKey(testCase.id), testCase.description)
	}
	assert.NotEqual(t, RequestKey("a"), RequestKey("b"))
}

func TestConvert(t *testing.T) {
	type target struct {
		Name     string  `json:"name"`
		MimeType *string `json:"mimeType,omitempty"`
	}
	actual, err := Convert[target](map[string]interface{}{"name": "BP_Player", "mimeType": "application/json"})
	require.NoError(t, err)
	assert.Equal(t, "BP_Player", actual.Name)
	require.NotNil(t, actual.MimeType)
	assert.Equal(t, "application/json", *actual.MimeType)

	_, err = Convert[target](func() {})
	assert.Error(t, err)
}
