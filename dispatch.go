package jsonschema

import (
	"fmt"
)

// handlerFunc is the signature shared by every keyword handler. The value
// node is the schema fragment paired with the keyword, schema is the
// enclosing object node (handlers such as "then" or "additionalProperties"
// read sibling keywords off it), and errs is a buffer the handler appends
// child output units to while recursing. Handlers return false on a
// validation failure and a non-nil error only for schema errors, which bubble
// out of the whole evaluation untouched.
type handlerFunc func(e *evaluator, value, instance, schema *Node, errs *[]OutputUnit) (bool, error)

// keywords is the dispatch table. "if" is deliberately absent: its effect is
// realized through "then" and "else", which read it back from the enclosing
// schema. The same holds for "minContains"/"maxContains" (read by "contains").
// "prefixItems" has its own handler and is also consulted by "items".
// Keywords not in this table do not constrain validation.
//
// Filled in init: handlers recurse through the table, so a composite literal
// would be an initialization cycle.
var keywords map[string]handlerFunc

func init() {
	keywords = map[string]handlerFunc{
		"$schema": evaluateDialect,
		"$id":     evaluateID,
		"$ref":    evaluateRef,

		"$anchor":               unsupported("$anchor"),
		"$dynamicAnchor":        unsupported("$dynamicAnchor"),
		"$dynamicRef":           unsupported("$dynamicRef"),
		"unevaluatedProperties": unsupported("unevaluatedProperties"),
		"unevaluatedItems":      unsupported("unevaluatedItems"),

		"allOf": evaluateAllOf,
		"anyOf": evaluateAnyOf,
		"oneOf": evaluateOneOf,
		"not":   evaluateNot,

		"then": evaluateThen,
		"else": evaluateElse,

		"properties":           evaluateProperties,
		"patternProperties":    evaluatePatternProperties,
		"additionalProperties": evaluateAdditionalProperties,
		"propertyNames":        evaluatePropertyNames,
		"dependentSchemas":     evaluateDependentSchemas,
		"dependentRequired":    evaluateDependentRequired,
		"required":             evaluateRequired,
		"maxProperties":        evaluateMaxProperties,
		"minProperties":        evaluateMinProperties,

		"prefixItems": evaluatePrefixItems,
		"items":       evaluateItems,
		"contains":    evaluateContains,
		"maxItems":    evaluateMaxItems,
		"minItems":    evaluateMinItems,
		"uniqueItems": evaluateUniqueItems,

		"type":             evaluateType,
		"enum":             evaluateEnum,
		"const":            evaluateConst,
		"maximum":          evaluateMaximum,
		"minimum":          evaluateMinimum,
		"exclusiveMaximum": evaluateExclusiveMaximum,
		"exclusiveMinimum": evaluateExclusiveMinimum,
		"multipleOf":       evaluateMultipleOf,
		"maxLength":        evaluateMaxLength,
		"minLength":        evaluateMinLength,
		"pattern":          evaluatePattern,
	}
}

// keywordMessages maps a keyword to the message code and default English
// template of the output unit the dispatcher emits when that keyword fails.
var keywordMessages = map[string]struct{ code, message string }{
	"$ref":                 {"ref_mismatch", "Value does not match the reference schema"},
	"allOf":                {"all_of_mismatch", "Value does not match all of the required schemas"},
	"anyOf":                {"any_of_mismatch", "Value does not match any of the allowed schemas"},
	"oneOf":                {"one_of_mismatch", "Value does not match exactly one of the allowed schemas"},
	"not":                  {"not_mismatch", "Value matches the schema it must not match"},
	"then":                 {"then_mismatch", "Value does not match the 'then' schema"},
	"else":                 {"else_mismatch", "Value does not match the 'else' schema"},
	"properties":           {"properties_mismatch", "One or more properties do not match their schemas"},
	"patternProperties":    {"pattern_properties_mismatch", "One or more pattern properties do not match their schemas"},
	"additionalProperties": {"additional_properties_mismatch", "Additional properties do not match the schema"},
	"propertyNames":        {"property_names_mismatch", "One or more property names do not match the schema"},
	"dependentSchemas":     {"dependent_schemas_mismatch", "Value does not match a dependent schema"},
	"dependentRequired":    {"dependent_required_mismatch", "Required dependent properties are missing"},
	"required":             {"required_mismatch", "Required properties are missing"},
	"maxProperties":        {"max_properties_mismatch", "Object has too many properties"},
	"minProperties":        {"min_properties_mismatch", "Object has too few properties"},
	"prefixItems":          {"prefix_items_mismatch", "One or more prefix items do not match their schemas"},
	"items":                {"items_mismatch", "One or more items do not match the schema"},
	"contains":             {"contains_mismatch", "Array does not contain the required number of matching items"},
	"maxItems":             {"max_items_mismatch", "Array has too many items"},
	"minItems":             {"min_items_mismatch", "Array has too few items"},
	"uniqueItems":          {"unique_items_mismatch", "Array items are not unique"},
	"type":                 {"type_mismatch", "Value does not match the expected type"},
	"enum":                 {"enum_mismatch", "Value is not one of the allowed values"},
	"const":                {"const_mismatch", "Value does not match the constant"},
	"maximum":              {"maximum_mismatch", "Value is greater than the maximum"},
	"minimum":              {"minimum_mismatch", "Value is less than the minimum"},
	"exclusiveMaximum":     {"exclusive_maximum_mismatch", "Value is not less than the exclusive maximum"},
	"exclusiveMinimum":     {"exclusive_minimum_mismatch", "Value is not greater than the exclusive minimum"},
	"multipleOf":           {"multiple_of_mismatch", "Value is not a multiple of the divisor"},
	"maxLength":            {"max_length_mismatch", "String is longer than the maximum length"},
	"minLength":            {"min_length_mismatch", "String is shorter than the minimum length"},
	"pattern":              {"pattern_mismatch", "String does not match the pattern"},
}

// visitKey identifies one (schema location, instance location) pair on the
// active $ref recursion path.
type visitKey struct {
	schema   string
	instance string
}

// evaluator carries the per-call evaluation state: the registry that $ref
// resolves against and the cycle guard for reference recursion.
type evaluator struct {
	registry *Registry
	visited  map[visitKey]struct{}
}

func newEvaluator(registry *Registry) *evaluator {
	return &evaluator{
		registry: registry,
		visited:  make(map[visitKey]struct{}),
	}
}

// apply applies a schema node to an instance node and reports whether the
// instance conforms. A boolean schema is trivially valid or always invalid;
// an object schema dispatches its recognized keywords in document order. Any
// other schema shape is malformed.
//
// The merge discipline for a failing keyword is: one output unit for the
// keyword itself, then the units the handler buffered during its recursion.
// Document order is preserved, so errors from earlier keywords appear before
// errors from later ones. A handler that recurses purely to make a decision
// uses a throwaway buffer and leaks nothing here.
func (e *evaluator) apply(schema, instance *Node, errs *[]OutputUnit) (bool, error) {
	switch schema.Kind {
	case KindBoolean:
		if schema.Bool {
			return true, nil
		}
		*errs = append(*errs, newOutputUnit(schema.Location, instance.Location,
			"false_schema_mismatch", "No values are allowed because the schema is set to 'false'"))
		return false, nil

	case KindObject:
		valid := true
		for _, property := range schema.Children {
			handler, known := keywords[property.key()]
			if !known {
				// Unrecognized annotations do not constrain validation.
				continue
			}

			buffered := []OutputUnit{}
			ok, err := handler(e, property.value(), instance, schema, &buffered)
			if err != nil {
				return false, err
			}
			if !ok {
				valid = false
				*errs = append(*errs, keywordUnit(property.key(), property.value().Location, instance.Location))
				*errs = append(*errs, buffered...)
			}
		}
		return valid, nil

	default:
		return false, fmt.Errorf("%w: schema at %q must be an object or a boolean, got %s",
			ErrInvalidSchema, schema.Location, schema.Kind)
	}
}

// keywordUnit builds the output unit the dispatcher emits for a failed
// keyword invocation.
func keywordUnit(keyword, keywordLocation, instanceLocation string) OutputUnit {
	if m, ok := keywordMessages[keyword]; ok {
		return newOutputUnit(keywordLocation, instanceLocation, m.code, m.message)
	}
	return newOutputUnit(keywordLocation, instanceLocation, "keyword_mismatch", "Value does not match the schema")
}

// unsupported builds a handler that rejects a recognized but unsupported
// draft 2020-12 feature. Failing loudly here beats silently producing wrong
// validation outcomes.
func unsupported(name string) handlerFunc {
	return func(_ *evaluator, value, _, _ *Node, _ *[]OutputUnit) (bool, error) {
		return false, fmt.Errorf("%w: %q at %q", ErrUnsupportedFeature, name, value.Location)
	}
}
