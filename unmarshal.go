package jsonschema

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
)

// ParseJSON unmarshals a JSON document into the generic Go representation the
// validator consumes (map[string]any, []any, float64, string, bool, nil).
func ParseJSON(data []byte) (any, error) {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrJSONUnmarshal, err)
	}
	return value, nil
}

// ParseYAML unmarshals a YAML document into the same generic representation.
func ParseYAML(data []byte) (any, error) {
	var value any
	if err := yaml.Unmarshal(data, &value); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrYAMLUnmarshal, err)
	}
	return value, nil
}

// ValidateJSON validates a raw JSON instance against a raw JSON schema using
// the package-level registry. Unlike Validate, the located trees are built
// from the token stream, so object members keep their document order — which
// is the order keyword failures are reported in.
func ValidateJSON(schema, instance []byte) (*Result, error) {
	return defaultRegistry.ValidateJSON(schema, instance)
}

// ValidateJSON is the raw-bytes variant of Validate. See the package-level
// ValidateJSON.
func (r *Registry) ValidateJSON(schema, instance []byte) (*Result, error) {
	schemaValue, err := ParseJSON(schema)
	if err != nil {
		return nil, err
	}
	uri := schemaURI(schemaValue)

	schemaRoot, err := buildJSONNode(schema, uri)
	if err != nil {
		return nil, err
	}
	instanceRoot, err := buildJSONNode(instance, "")
	if err != nil {
		return nil, err
	}

	r.register(schemaRoot, uri)
	defer r.Unregister(uri)

	return r.evaluate(schemaRoot, instanceRoot)
}

// ValidateYAML validates a raw YAML instance against a raw YAML schema using
// the package-level registry.
func ValidateYAML(schema, instance []byte) (*Result, error) {
	return defaultRegistry.ValidateYAML(schema, instance)
}

// ValidateYAML is the raw-bytes YAML variant of Validate.
func (r *Registry) ValidateYAML(schema, instance []byte) (*Result, error) {
	schemaValue, err := ParseYAML(schema)
	if err != nil {
		return nil, err
	}
	instanceValue, err := ParseYAML(instance)
	if err != nil {
		return nil, err
	}
	return r.Validate(schemaValue, instanceValue)
}

// RegisterSchemaJSON registers a raw JSON schema under uri in the
// package-level registry, preserving document order of its members.
func RegisterSchemaJSON(data []byte, uri string) error {
	return defaultRegistry.RegisterJSON(data, uri)
}

// RegisterJSON registers a raw JSON schema under uri, preserving document
// order of its members.
func (r *Registry) RegisterJSON(data []byte, uri string) error {
	root, err := buildJSONNode(data, uri)
	if err != nil {
		return err
	}
	r.register(root, uri)
	return nil
}

// buildJSONNode builds a located tree straight from the JSON token stream so
// that object members keep the order they have in the document.
func buildJSONNode(data []byte, baseURI string) (*Node, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	node, err := decodeValue(decoder, baseURI+"#")
	if err != nil {
		return nil, err
	}
	if _, err := decoder.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after json value", ErrInvalidJSON)
	}
	return node, nil
}

func decodeValue(decoder *json.Decoder, location string) (*Node, error) {
	token, err := decoder.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return decodeToken(decoder, token, location)
}

func decodeToken(decoder *json.Decoder, token json.Token, location string) (*Node, error) {
	switch t := token.(type) {
	case nil:
		return &Node{Kind: KindNull, Location: location}, nil

	case bool:
		return &Node{Kind: KindBoolean, Location: location, Bool: t}, nil

	case float64:
		return &Node{Kind: KindNumber, Location: location, Number: t}, nil

	case json.Number:
		number, err := t.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
		return &Node{Kind: KindNumber, Location: location, Number: number}, nil

	case string:
		return &Node{Kind: KindString, Location: location, String: t}, nil

	case json.Delim:
		switch t {
		case '{':
			return decodeObject(decoder, location)
		case '[':
			return decodeArray(decoder, location)
		}
	}
	return nil, fmt.Errorf("%w: unexpected token %v", ErrInvalidJSON, token)
}

func decodeObject(decoder *json.Decoder, location string) (*Node, error) {
	node := &Node{Kind: KindObject, Location: location}
	for decoder.More() {
		keyToken, err := decoder.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
		key, ok := keyToken.(string)
		if !ok {
			return nil, fmt.Errorf("%w: object key is not a string", ErrInvalidJSON)
		}

		memberLocation := appendLocation(location, key)
		value, err := decodeValue(decoder, memberLocation)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, &Node{
			Kind:     KindProperty,
			Location: memberLocation,
			Children: []*Node{
				{Kind: KindString, Location: memberLocation, String: key},
				value,
			},
		})
	}
	// Consume the closing brace.
	if _, err := decoder.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return node, nil
}

func decodeArray(decoder *json.Decoder, location string) (*Node, error) {
	node := &Node{Kind: KindArray, Location: location}
	for index := 0; decoder.More(); index++ {
		element, err := decodeValue(decoder, appendLocation(location, strconv.Itoa(index)))
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, element)
	}
	if _, err := decoder.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return node, nil
}
