package envflag

// KeyQuery is the untyped first stage of the query builder. It holds the
// variable name and an optional prefix choice; parsing, defaults, and
// validators only become available after transitioning to a typed query via
// [Default] or resolving directly via [Required].
type KeyQuery struct {
	store  *Store // nil means the process-wide store, resolved lazily
	name   string
	prefix string
}

// WithPrefix specifies which prefix to use for this lookup.
//
// Required when multiple prefixes are configured; optional with a single
// prefix (which is used automatically).
func (q *KeyQuery) WithPrefix(prefix string) *KeyQuery {
	q.prefix = prefix
	return q
}

func (q *KeyQuery) resolveStore() (*Store, error) {
	if q.store != nil {
		return q.store, nil
	}
	return getInstance()
}

// Default sets a default value and transitions to a typed query.
//
// Go methods cannot introduce type parameters, so the stage transition is a
// package-level function: Default(Query("PORT"), 8080).
func Default[T Value](q *KeyQuery, def T) *TypedQuery[T] {
	return &TypedQuery[T]{key: q, def: def}
}

// Required resolves the variable, failing if it is absent.
//
// Returns a [NotSetError] if the variable is missing, a [ParseError] if
// parsing fails, or an [AmbiguousPrefixError] if multiple prefixes are
// configured without a WithPrefix call. No validators apply in required mode;
// validating a required value is the caller's responsibility.
func Required[T Value](q *KeyQuery) (T, error) {
	var zero T

	s, err := q.resolveStore()
	if err != nil {
		return zero, err
	}

	if len(s.prefixes) > 1 && q.prefix == "" {
		return zero, &AmbiguousPrefixError{Key: q.name}
	}

	raw, ok := s.lookup(q.name, q.prefix)
	if !ok {
		return zero, &NotSetError{Key: q.name}
	}

	if isBool[T]() {
		raw = NormalizeBool(raw)
	}

	v, err := parseValue[T](raw)
	if err != nil {
		return zero, &ParseError{Key: q.name, Value: raw}
	}
	return v, nil
}

// TypedQuery is the typed second stage of the query builder: a key with a
// default value and an ordered validator chain.
type TypedQuery[T Value] struct {
	key        *KeyQuery
	def        T
	validators []func(string) bool
}

// Validate appends a validator to run against the raw string value.
//
// Validators run in declaration order and short-circuit at the first failure.
// Any func(string) bool is accepted, including closures from [InRange] and
// [MatchesRegex].
func (q *TypedQuery[T]) Validate(f func(string) bool) *TypedQuery[T] {
	q.validators = append(q.validators, f)
	return q
}

// Get executes the query and returns the parsed value, or the default when
// the variable is absent. Validators and parsing never run on the default.
//
// Returns an [AmbiguousPrefixError] if multiple prefixes are configured
// without a WithPrefix call, a [ValidationError] if any validator rejects the
// value, or a [ParseError] if parsing fails.
func (q *TypedQuery[T]) Get() (T, error) {
	var zero T

	s, err := q.key.resolveStore()
	if err != nil {
		return zero, err
	}

	if len(s.prefixes) > 1 && q.key.prefix == "" {
		return zero, &AmbiguousPrefixError{Key: q.key.name}
	}

	raw, ok := s.lookup(q.key.name, q.key.prefix)
	if !ok {
		return q.def, nil
	}

	// Normalize booleans before validation so validators see the canonical
	// "true"/"false" form, not the original spelling.
	if isBool[T]() {
		raw = NormalizeBool(raw)
	}

	for _, validate := range q.validators {
		if !validate(raw) {
			logger.Warn().
				Str("key", q.key.name).
				Str("value", raw).
				Msg("validation failed for environment variable")
			return zero, &ValidationError{Key: q.key.name, Value: raw}
		}
	}

	v, err := parseValue[T](raw)
	if err != nil {
		return zero, &ParseError{Key: q.key.name, Value: raw}
	}
	return v, nil
}
