package jsonschema

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/goccy/go-json"
)

// Kind identifies the shape of a tree node. The six JSON shapes plus a
// wrapper for object members.
type Kind int

const (
	KindNull Kind = iota
	KindBoolean
	KindNumber
	KindString
	KindArray
	KindObject
	KindProperty
)

// String returns the JSON Schema type name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBoolean:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindProperty:
		return "property"
	default:
		return "unknown"
	}
}

// Node is one node of a located JSON tree. Every node carries a location of
// the form "<base-uri>#<json-pointer>"; the pointer of the root node is empty.
// Object children are property nodes whose first child is the key as a string
// node and whose second child is the member value. A property node's location
// points at the value slot.
//
// Nodes are built once per validation or registration and are immutable
// afterwards.
type Node struct {
	Kind     Kind
	Location string
	Bool     bool
	Number   float64
	String   string
	Children []*Node
}

// buildNode converts an already-parsed JSON value into a located tree rooted
// at "<baseURI>#". Object members built from Go maps are ordered
// lexicographically by key, the deterministic stand-in when no document order
// exists. Values that have no JSON representation (NaN, infinities, channels,
// functions, …) fail with ErrInvalidJSON.
func buildNode(value any, baseURI string) (*Node, error) {
	return buildValue(value, baseURI+"#")
}

func buildValue(value any, location string) (*Node, error) {
	switch v := value.(type) {
	case nil:
		return &Node{Kind: KindNull, Location: location}, nil
	case bool:
		return &Node{Kind: KindBoolean, Location: location, Bool: v}, nil
	case string:
		return &Node{Kind: KindString, Location: location, String: v}, nil
	case []any:
		node := &Node{Kind: KindArray, Location: location, Children: make([]*Node, 0, len(v))}
		for index, element := range v {
			child, err := buildValue(element, appendLocation(location, strconv.Itoa(index)))
			if err != nil {
				return nil, err
			}
			node.Children = append(node.Children, child)
		}
		return node, nil
	case map[string]any:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		node := &Node{Kind: KindObject, Location: location, Children: make([]*Node, 0, len(v))}
		for _, key := range keys {
			property, err := buildProperty(key, v[key], location)
			if err != nil {
				return nil, err
			}
			node.Children = append(node.Children, property)
		}
		return node, nil
	default:
		number, ok := toFloat(value)
		if !ok {
			return nil, fmt.Errorf("%w: cannot represent %T as a json value", ErrInvalidJSON, value)
		}
		if math.IsNaN(number) || math.IsInf(number, 0) {
			return nil, fmt.Errorf("%w: %v is not a json number", ErrInvalidJSON, number)
		}
		return &Node{Kind: KindNumber, Location: location, Number: number}, nil
	}
}

func buildProperty(key string, value any, parentLocation string) (*Node, error) {
	location := appendLocation(parentLocation, key)
	valueNode, err := buildValue(value, location)
	if err != nil {
		return nil, err
	}
	return &Node{
		Kind:     KindProperty,
		Location: location,
		Children: []*Node{
			{Kind: KindString, Location: location, String: key},
			valueNode,
		},
	}, nil
}

// toFloat widens the numeric Go kinds that decoded JSON may arrive as.
func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case json.Number:
		number, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return number, true
	default:
		return 0, false
	}
}

// assertKind fails with ErrInvalidSchema when the node does not have the
// expected shape. Handlers use it for keywords whose values must be of a
// fixed shape, e.g. allOf must be an array.
func assertKind(node *Node, expected Kind) error {
	if node.Kind != expected {
		return fmt.Errorf("%w: expected %s at %q, got %s", ErrInvalidSchema, expected, node.Location, node.Kind)
	}
	return nil
}

// key returns the member name of a property node.
func (n *Node) key() string {
	return n.Children[0].String
}

// value returns the value slot of a property node.
func (n *Node) value() *Node {
	return n.Children[1]
}

// objectGet returns the value slot of the named member, or nil.
func objectGet(object *Node, key string) *Node {
	if object == nil || object.Kind != KindObject {
		return nil
	}
	for _, property := range object.Children {
		if property.key() == key {
			return property.value()
		}
	}
	return nil
}

// objectHas reports whether the object has a member with the given name.
func objectHas(object *Node, key string) bool {
	return objectGet(object, key) != nil
}

// objectKeys returns the member names of an object node in child order.
func objectKeys(object *Node) []string {
	keys := make([]string, 0, len(object.Children))
	for _, property := range object.Children {
		keys = append(keys, property.key())
	}
	return keys
}

// pointerStep returns the value slot named by a single decoded pointer
// segment: a member name for objects, a decimal index for arrays.
func pointerStep(segment string, node *Node) (*Node, error) {
	switch node.Kind {
	case KindObject:
		if value := objectGet(node, segment); value != nil {
			return value, nil
		}
	case KindArray:
		index, err := strconv.Atoi(segment)
		if err == nil && index >= 0 && index < len(node.Children) {
			return node.Children[index], nil
		}
	}
	return nil, fmt.Errorf("%w: no value at segment %q under %q", ErrInvalidReference, segment, node.Location)
}
