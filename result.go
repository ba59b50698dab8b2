package jsonschema

import (
	"fmt"
	"strings"

	"github.com/kaptinlin/go-i18n"
)

// OutputUnit is one entry in the failure trace: the location of the schema
// node that rejected and the location of the instance node that was rejected.
// KeywordLocation is reserved for extension and left empty by the engine.
// Error carries a default English message; use Localize for other locales.
type OutputUnit struct {
	AbsoluteKeywordLocation string `json:"absoluteKeywordLocation"`
	InstanceLocation        string `json:"instanceLocation"`
	KeywordLocation         string `json:"keywordLocation,omitempty"`
	Error                   string `json:"error,omitempty"`

	code   string
	params map[string]any
}

func newOutputUnit(keywordLocation, instanceLocation, code, message string, params ...map[string]any) OutputUnit {
	unit := OutputUnit{
		AbsoluteKeywordLocation: keywordLocation,
		InstanceLocation:        instanceLocation,
		code:                    code,
	}
	if len(params) > 0 {
		unit.params = params[0]
	}
	unit.Error = replace(message, unit.params)
	return unit
}

// Localize returns a localized message for this unit using the provided
// localizer, falling back to the default English message.
func (u *OutputUnit) Localize(localizer *i18n.Localizer) string {
	if localizer != nil {
		return localizer.Get(u.code, i18n.Vars(u.params))
	}
	return u.Error
}

// Result is the outcome of applying a schema to an instance. When Valid is
// false, Errors is non-empty and lists the failure trace in document order of
// the schema: each failing keyword first, followed by the units its recursion
// produced.
type Result struct {
	Valid  bool         `json:"valid"`
	Errors []OutputUnit `json:"errors,omitempty"`
}

// IsValid reports whether the instance conformed to the schema.
func (r *Result) IsValid() bool {
	return r.Valid
}

// replace substitutes {placeholder} markers in a template with parameter
// values.
func replace(template string, params map[string]any) string {
	for key, value := range params {
		template = strings.ReplaceAll(template, "{"+key+"}", fmt.Sprint(value))
	}
	return template
}
