package envflag

import "strings"

// Init initializes the process-wide store with no overlay path and no
// prefixes. Shorthand for NewInit().Init().
func Init() error {
	return NewInit().Init()
}

// Query starts a two-stage query against the process-wide store. The store
// is resolved when the query executes, so a not-yet-initialized store is
// reported as [ErrNotInitialized] by Get/Required rather than aborting.
func Query(name string) *KeyQuery {
	return &KeyQuery{name: name}
}

// mustInstance returns the process-wide store, aborting the process when it
// has not been initialized. Accessing configuration before Init is a
// programming error, not a runtime condition, so the convenience accessors
// do not return it as an error.
func mustInstance() *Store {
	s := instance.Load()
	if s == nil {
		logger.Fatal().Msg("envflag is not initialized: call Init or NewInit().Init() before querying")
	}
	return s
}

// lookupGlobal resolves name against the process-wide store with no prefix
// preference, warning when the miss is caused by multi-prefix ambiguity
// rather than genuine absence.
func lookupGlobal(name string) (string, bool) {
	s := mustInstance()
	raw, ok := s.lookup(name, "")
	if !ok && len(s.prefixes) > 1 {
		logger.Warn().
			Str("key", name).
			Msg("multiple prefixes configured, falling back to default; use Query().WithPrefix to disambiguate")
	}
	return raw, ok
}

// Get retrieves an environment variable and parses it into T.
//
// If the variable is absent, cannot be parsed, or cannot be resolved because
// multiple prefixes are configured, the default is returned. For booleans the
// strict "true"/"false" spelling applies; prefer [GetBool] for permissive
// boolean reads.
func Get[T Value](name string, def T) T {
	raw, ok := lookupGlobal(name)
	if !ok {
		return def
	}

	v, err := parseValue[T](raw)
	if err != nil {
		logger.Warn().
			Str("key", name).
			Str("value", raw).
			Msg("parse failed, falling back to default")
		return def
	}
	return v
}

// GetString retrieves an environment variable as a string, or the default if
// it is absent.
func GetString(name, def string) string {
	if raw, ok := lookupGlobal(name); ok {
		return raw
	}
	return def
}

// GetBool retrieves an environment variable as a boolean.
//
// The case-insensitive values "true", "1", and "yes" are considered true;
// every other present value (including the empty string) is false. The
// default only applies when the variable is absent.
func GetBool(name string, def bool) bool {
	raw, ok := lookupGlobal(name)
	if !ok {
		return def
	}

	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}

// Lookup retrieves an environment variable parsed into T. The second return
// is false when the variable is absent, unparseable, or unresolvable due to
// multi-prefix ambiguity.
func Lookup[T Value](name string) (T, bool) {
	var zero T

	raw, ok := lookupGlobal(name)
	if !ok {
		return zero, false
	}

	v, err := parseValue[T](raw)
	if err != nil {
		return zero, false
	}
	return v, true
}

// LookupString retrieves an environment variable as a string, reporting
// whether it was present.
func LookupString(name string) (string, bool) {
	return lookupGlobal(name)
}

// IsSet reports whether the variable resolves to a value.
func IsSet(name string) bool {
	_, ok := lookupGlobal(name)
	return ok
}

// Entries returns every key-value pair in the process-wide store. See
// [Store.Entries] for the sensitive-values caveat.
func Entries() []Entry {
	return mustInstance().Entries()
}
