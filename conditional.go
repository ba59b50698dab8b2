package jsonschema

// Conditional application with "if"/"then"/"else". The "if" keyword has no
// handler of its own: "then" and "else" read it back from the enclosing
// schema and evaluate it against a throwaway buffer, so the condition never
// contributes errors of its own.
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-core#name-if-then-else

// evaluateThen applies the "then" schema when the sibling "if" is present and
// passes; without an "if", or when the condition fails, it is a no-op.
func evaluateThen(e *evaluator, value, instance, schema *Node, errs *[]OutputUnit) (bool, error) {
	condition := objectGet(schema, "if")
	if condition == nil {
		return true, nil
	}

	discard := []OutputUnit{}
	ok, err := e.apply(condition, instance, &discard)
	if err != nil {
		return false, err
	}
	if !ok {
		return true, nil
	}
	return e.apply(value, instance, errs)
}

// evaluateElse applies the "else" schema when the sibling "if" is present and
// fails.
func evaluateElse(e *evaluator, value, instance, schema *Node, errs *[]OutputUnit) (bool, error) {
	condition := objectGet(schema, "if")
	if condition == nil {
		return true, nil
	}

	discard := []OutputUnit{}
	ok, err := e.apply(condition, instance, &discard)
	if err != nil {
		return false, err
	}
	if ok {
		return true, nil
	}
	return e.apply(value, instance, errs)
}
