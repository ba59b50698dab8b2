package jsonschema

import "math"

// multipleOfTolerance absorbs IEEE-754 rounding in the divisibility check.
// The value is the float32 epsilon.
const multipleOfTolerance = 1.19209290e-07

// evaluateMultipleOf checks that a numeric instance is divisible by the
// given divisor.
// According to the JSON Schema Draft 2020-12:
//   - The value of "multipleOf" must be a number strictly greater than 0.
//   - A numeric instance is valid only if dividing it by the divisor yields
//     an integer.
//
// Division is performed on 64-bit floats, so the remainder is accepted when
// it is within tolerance of either 0 or the divisor itself (rounding can
// leave an exact multiple with a remainder just below the divisor, as with
// 0.3 and 0.1; the sign math.Mod takes from the dividend is dropped first).
//
// Reference: https://json-schema.org/draft/2020-12/json-schema-validation#name-multipleof
func evaluateMultipleOf(_ *evaluator, value, instance, _ *Node, _ *[]OutputUnit) (bool, error) {
	if err := assertKind(value, KindNumber); err != nil {
		return false, err
	}
	if instance.Kind != KindNumber {
		return true, nil
	}

	divisor := math.Abs(value.Number)
	remainder := math.Abs(math.Mod(instance.Number, divisor))
	return remainder <= multipleOfTolerance || divisor-remainder <= multipleOfTolerance, nil
}
