package jsonschema

// Validate checks the instance against the schema using the package-level
// registry. The schema is registered for the duration of the call — under its
// "$id" when it is an object carrying a string "$id", under "" otherwise —
// and unregistered before returning, so sibling documents it references must
// be pre-registered with RegisterSchema.
//
// A non-nil error reports a broken schema or unrepresentable input, never a
// validation failure; those are returned as data in the Result.
func Validate(schema, instance any) (*Result, error) {
	return defaultRegistry.Validate(schema, instance)
}

// Validate checks the instance against the schema, auto-registering the
// schema in this registry for the duration of the call. See the package-level
// Validate.
func (r *Registry) Validate(schema, instance any) (*Result, error) {
	uri := schemaURI(schema)

	schemaRoot, err := buildNode(schema, uri)
	if err != nil {
		return nil, err
	}
	instanceRoot, err := buildNode(instance, "")
	if err != nil {
		return nil, err
	}

	r.register(schemaRoot, uri)
	defer r.Unregister(uri)

	return r.evaluate(schemaRoot, instanceRoot)
}

// ValidateRegistered validates the instance against an already registered
// schema, skipping the auto-register lifecycle entirely. Concurrent callers
// that pre-register distinct URIs use this to avoid racing on registry
// entries.
func (r *Registry) ValidateRegistered(uri string, instance any) (*Result, error) {
	schemaRoot := r.Lookup(uri)
	if schemaRoot == nil {
		return nil, errNotRegistered(uri)
	}
	instanceRoot, err := buildNode(instance, "")
	if err != nil {
		return nil, err
	}
	return r.evaluate(schemaRoot, instanceRoot)
}

func (r *Registry) evaluate(schemaRoot, instanceRoot *Node) (*Result, error) {
	errs := []OutputUnit{}
	valid, err := newEvaluator(r).apply(schemaRoot, instanceRoot, &errs)
	if err != nil {
		return nil, err
	}
	if valid {
		return &Result{Valid: true}, nil
	}
	return &Result{Valid: false, Errors: errs}, nil
}

// schemaURI extracts the registration URI for a schema document: its "$id"
// when present, the anonymous "" otherwise.
func schemaURI(schema any) string {
	if object, ok := schema.(map[string]any); ok {
		if id, ok := object["$id"].(string); ok {
			return id
		}
	}
	return ""
}
