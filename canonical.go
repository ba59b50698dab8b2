package jsonschema

import (
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// canonicalize renders a located tree node as a deterministic string: object
// keys sorted lexicographically, numbers in a canonical form, no whitespace.
// Two nodes are equal JSON values exactly when their canonical strings are
// equal; "const", "enum" and "uniqueItems" are defined in terms of it.
func canonicalize(node *Node) string {
	var sb strings.Builder
	writeCanonical(&sb, node)
	return sb.String()
}

func writeCanonical(sb *strings.Builder, node *Node) {
	switch node.Kind {
	case KindNull:
		sb.WriteString("null")

	case KindBoolean:
		sb.WriteString(strconv.FormatBool(node.Bool))

	case KindNumber:
		sb.WriteString(strconv.FormatFloat(node.Number, 'g', -1, 64))

	case KindString:
		writeCanonicalString(sb, node.String)

	case KindArray:
		sb.WriteByte('[')
		for i, child := range node.Children {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeCanonical(sb, child)
		}
		sb.WriteByte(']')

	case KindObject:
		properties := make([]*Node, len(node.Children))
		copy(properties, node.Children)
		sort.Slice(properties, func(i, j int) bool {
			return properties[i].key() < properties[j].key()
		})

		sb.WriteByte('{')
		for i, property := range properties {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeCanonicalString(sb, property.key())
			sb.WriteByte(':')
			writeCanonical(sb, property.value())
		}
		sb.WriteByte('}')

	case KindProperty:
		writeCanonical(sb, node.value())
	}
}

func writeCanonicalString(sb *strings.Builder, s string) {
	encoded, err := json.Marshal(s)
	if err != nil {
		// Marshalling a string cannot fail; quote as a last resort.
		sb.WriteString(strconv.Quote(s))
		return
	}
	sb.Write(encoded)
}

// canonicalEqual reports deep JSON equality of two nodes.
func canonicalEqual(a, b *Node) bool {
	return canonicalize(a) == canonicalize(b)
}
