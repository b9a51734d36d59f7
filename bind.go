package envflag

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Bind populates cfg from the process-wide store using the caarlos0/env
// library. Struct fields are mapped via their `env`, `envPrefix`, and
// `envDefault` tags.
//
// Unlike env.Parse, resolution happens against the store snapshot — not the
// raw process environment — so prefix filtering and the overlay merge apply.
//
// Returns [ErrNotInitialized] before initialization, or a wrapped error if
// env.Parse fails (e.g. a tag-required variable is missing or a value cannot
// be converted to the field type).
func Bind(cfg any) error {
	s, err := getInstance()
	if err != nil {
		return err
	}
	return s.Bind(cfg)
}

// Bind populates cfg from this store's snapshot. See [Bind].
func (s *Store) Bind(cfg any) error {
	err := env.ParseWithOptions(cfg, env.Options{Environment: s.entries})
	if err != nil {
		return fmt.Errorf("error binding env configs: %w", err)
	}
	return nil
}
