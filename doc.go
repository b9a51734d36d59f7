// Package envflag resolves typed configuration values from process
// environment variables, optionally seeded from a .env-style overlay file.
//
// Values are resolved through an immutable [Store] built exactly once per
// process (later initialization attempts fail with [ErrAlreadyInitialized]).
// Initialization proceeds in the following order:
//  1. The .env overlay file is loaded (the default ".env" may be absent;
//     an explicitly configured path must exist and parse).
//  2. Overlay keys are written into the live process environment, overriding
//     pre-existing variables of the same name.
//  3. The post-merge environment is snapshotted into the store, optionally
//     filtered by configured key prefixes.
//
// The main entry points are [Init] / [NewInit] for initialization, [Query]
// for the two-stage typed query builder, and the convenience accessors
// [Get], [GetString], [GetBool], [Lookup], [LookupString], and [IsSet].
//
// Basic usage:
//
//	func main() {
//		if err := envflag.Init(); err != nil {
//			log.Fatal().Err(err).Msg("config init failed")
//		}
//
//		port, err := envflag.Default(envflag.Query("PORT"), uint16(8080)).
//			Validate(envflag.IsPort).
//			Get()
//		if err != nil {
//			log.Fatal().Err(err).Msg("bad PORT")
//		}
//
//		debug := envflag.GetBool("DEBUG", false)
//		_ = port
//		_ = debug
//	}
//
// With prefixes, variables are stored under their full name and queried by
// their short name:
//
//	_ = envflag.NewInit().Prefix("APP_").Init()
//	host := envflag.GetString("HOST", "localhost") // reads APP_HOST
//
// When two or more prefixes are configured, queries must pick one explicitly
// via [KeyQuery.WithPrefix]; the typed query path reports the ambiguity as an
// [AmbiguousPrefixError], while the convenience accessors fall back to their
// defaults.
//
// The convenience accessors treat a missing store as a programmer error and
// abort the process; the builder and initializer layers return errors instead.
// For tests, [FromMap] and [FromMapWithPrefixes] construct isolated stores
// that bypass the process-wide state entirely.
package envflag
