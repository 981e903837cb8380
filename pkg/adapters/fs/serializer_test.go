package fs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYAMLSerializer(t *testing.T) {
	doc := map[string]any{
		"events": []any{
			map[string]any{"type": "file-missing", "path": "/srv/appsettings.json"},
		},
		"configFileContents": map[string]any{
			"/srv/appsettings.json": map[string]any{"Port": 8080, "Debug": false},
		},
		"uiState": map[string]any{"settingsOpen": true},
		"ratio":   0.5,
		"nothing": nil,
	}

	s := NewYAMLSerializer()

	data, err := s.Serialize(doc)
	require.NoError(t, err)

	// Block style with 2-space indentation, human readable.
	assert.Contains(t, string(data), "uiState:\n  settingsOpen: true\n")

	parsed, err := s.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, doc, parsed)
}

func TestYAMLSerializer_ScalarRoot(t *testing.T) {
	s := NewYAMLSerializer()

	data, err := s.Serialize("just text")
	require.NoError(t, err)

	parsed, err := s.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, "just text", parsed)
}

func TestYAMLSerializer_Rejects(t *testing.T) {
	cyclicMap := map[string]any{"name": "root"}
	cyclicMap["self"] = cyclicMap

	cyclicSlice := make([]any, 1)
	cyclicSlice[0] = cyclicSlice

	type node struct {
		Next *node
	}
	loop := &node{}
	loop.Next = loop

	tests := []struct {
		name string
		doc  any
		want string
	}{
		{"map cycle", cyclicMap, "cyclic"},
		{"slice cycle", cyclicSlice, "cyclic"},
		{"pointer cycle", loop, "cyclic"},
		{"nested cycle", map[string]any{"a": []any{cyclicMap}}, "cyclic"},
		{"func", map[string]any{"cb": func() {}}, "cannot be encoded"},
		{"channel", []any{make(chan int)}, "cannot be encoded"},
		{"complex", map[string]any{"z": complex(1, 2)}, "cannot be encoded"},
	}

	s := NewYAMLSerializer()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			data, err := s.Serialize(tc.doc)
			require.Error(t, err)
			assert.Nil(t, data)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestYAMLSerializer_SharedReferencesAreNotCycles(t *testing.T) {
	shared := map[string]any{"k": "v"}
	doc := map[string]any{
		"a": shared,
		"b": shared,
		"c": []any{shared, shared},
	}

	data, err := NewYAMLSerializer().Serialize(doc)
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(string(data), "k: v"))
}

func TestYAMLSerializer_ParseMalformed(t *testing.T) {
	s := NewYAMLSerializer()

	for _, input := range []string{
		"events: [unclosed\n",
		"key: value: another\n",
		"a: 1\n---\nb: 2\n",
		"\tevents: []\n",
	} {
		_, err := s.Parse([]byte(input))
		assert.Error(t, err, "input %q", input)
	}
}

func TestYAMLSerializer_ParseSingleDocument(t *testing.T) {
	s := NewYAMLSerializer()

	doc, err := s.Parse([]byte("---\na: 1\n"))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 1}, doc)

	doc, err = s.Parse(nil)
	require.NoError(t, err)
	assert.Nil(t, doc)
}
