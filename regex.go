package jsonschema

import (
	"fmt"
	"sync"

	"github.com/dlclark/regexp2"
)

// neverMatchPattern rejects every input. It is the identity of the pattern
// union "additionalProperties" builds from its siblings, and is one of the
// constructs the stdlib RE2 engine cannot express.
const neverMatchPattern = "(?!)"

// patternCache holds compiled patterns keyed by source text. Schemas tend to
// reuse a small set of patterns across validations, and compilation dominates
// matching for short inputs.
var patternCache sync.Map // string -> *regexp2.Regexp

// compilePattern compiles an ECMA-style pattern with Unicode semantics. A
// pattern that does not compile is a schema authoring bug, so the failure
// surfaces as ErrInvalidSchema.
func compilePattern(pattern string) (*regexp2.Regexp, error) {
	if cached, ok := patternCache.Load(pattern); ok {
		return cached.(*regexp2.Regexp), nil
	}

	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid pattern %q: %v", ErrInvalidSchema, pattern, err)
	}

	patternCache.Store(pattern, re)
	return re, nil
}

// matchPattern tests a string against a compiled pattern. No anchors are
// implied. A match timeout or engine fault counts as a non-match.
func matchPattern(re *regexp2.Regexp, s string) bool {
	matched, err := re.MatchString(s)
	return err == nil && matched
}
