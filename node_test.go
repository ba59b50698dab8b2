package jsonschema

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildNodeLocations(t *testing.T) {
	root, err := buildNode(map[string]any{
		"name": "jam",
		"tags": []any{"a", "b"},
	}, "https://example.com/s")
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/s#", root.Location)

	name := objectGet(root, "name")
	require.NotNil(t, name)
	assert.Equal(t, "https://example.com/s#/name", name.Location)
	assert.Equal(t, KindString, name.Kind)

	tags := objectGet(root, "tags")
	require.NotNil(t, tags)
	require.Len(t, tags.Children, 2)
	assert.Equal(t, "https://example.com/s#/tags/0", tags.Children[0].Location)
	assert.Equal(t, "https://example.com/s#/tags/1", tags.Children[1].Location)
}

func TestBuildNodeEscaping(t *testing.T) {
	root, err := buildNode(map[string]any{
		"a/b": 1.0,
		"c~d": 2.0,
		"^e":  3.0,
	}, "")
	require.NoError(t, err)

	locations := make(map[string]string)
	for _, property := range root.Children {
		locations[property.key()] = property.Location
	}

	// RFC 6901 escapes apply before percent encoding.
	assert.Equal(t, "#/a~1b", locations["a/b"])
	assert.Equal(t, "#/c~0d", locations["c~d"])
	assert.Equal(t, "#/%5Ee", locations["^e"])
}

func TestBuildNodePropertyShape(t *testing.T) {
	root, err := buildNode(map[string]any{"key": "value"}, "")
	require.NoError(t, err)
	require.Len(t, root.Children, 1)

	property := root.Children[0]
	assert.Equal(t, KindProperty, property.Kind)
	require.Len(t, property.Children, 2)
	assert.Equal(t, KindString, property.Children[0].Kind)
	assert.Equal(t, "key", property.Children[0].String)
	// The property node points at the value slot.
	assert.Equal(t, property.Location, property.value().Location)
}

func TestBuildNodeRejectsInvalidJSON(t *testing.T) {
	_, err := buildNode(math.NaN(), "")
	assert.ErrorIs(t, err, ErrInvalidJSON)

	_, err = buildNode(math.Inf(1), "")
	assert.ErrorIs(t, err, ErrInvalidJSON)

	_, err = buildNode(func() {}, "")
	assert.ErrorIs(t, err, ErrInvalidJSON)

	_, err = buildNode(map[string]any{"fn": make(chan int)}, "")
	assert.ErrorIs(t, err, ErrInvalidJSON)
}

// TestPointerRoundTrip walks every leaf of a built tree through pointerGet by
// the pointer part of its own location and expects to land on the same node.
func TestPointerRoundTrip(t *testing.T) {
	value := map[string]any{
		"plain":   "p",
		"a/b":     true,
		"wei~rd":  nil,
		"^anchor": 1.5,
		"nested": map[string]any{
			"inner": []any{"x", map[string]any{"deep": 9.0}},
		},
	}
	root, err := buildNode(value, "")
	require.NoError(t, err)

	var walk func(node *Node)
	walk = func(node *Node) {
		switch node.Kind {
		case KindObject, KindArray:
			for _, child := range node.Children {
				walk(child)
			}
		case KindProperty:
			walk(node.value())
		default:
			_, pointer := splitLocation(node.Location)
			found, err := pointerGet(pointer, root)
			require.NoError(t, err, "pointer %q", pointer)
			assert.Same(t, node, found, "pointer %q", pointer)
		}
	}
	walk(root)
}

func TestPointerGetDanglingStep(t *testing.T) {
	root, err := buildNode(map[string]any{"a": []any{1.0}}, "")
	require.NoError(t, err)

	_, err = pointerGet("/missing", root)
	assert.ErrorIs(t, err, ErrInvalidReference)

	_, err = pointerGet("/a/5", root)
	assert.ErrorIs(t, err, ErrInvalidReference)

	_, err = pointerGet("not-a-pointer", root)
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestBuildJSONNodePreservesDocumentOrder(t *testing.T) {
	root, err := buildJSONNode([]byte(`{"zebra": 1, "apple": 2, "mango": 3}`), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"zebra", "apple", "mango"}, objectKeys(root))
}
