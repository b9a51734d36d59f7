// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envflag

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
)

// defaultOverlayFile is probed when no explicit path is configured.
// Its absence is not an error.
const defaultOverlayFile = ".env"

// InitBuilder configures and performs the one-time store initialization.
//
// It is recommended to initialize early in main, before spawning goroutines.
// Concurrent Init calls are safe — the publish step is atomic and exactly one
// caller wins — but deterministic single-goroutine initialization avoids
// surprises about which overlay ends up in the environment.
type InitBuilder struct {
	path     string
	prefixes []string
}

// NewInit creates a new InitBuilder.
func NewInit() *InitBuilder {
	return &InitBuilder{}
}

// Path sets the path to the .env overlay file. Unlike the default overlay,
// an explicitly configured file must exist.
func (b *InitBuilder) Path(path string) *InitBuilder {
	b.path = path
	return b
}

// Prefix adds a prefix to filter environment variables.
//
// Only keys matching at least one configured prefix are kept in the store,
// under their original full name. At query time the prefix is prepended
// automatically, so callers use the short name (e.g. Get("PORT", 8080) finds
// APP_PORT).
func (b *InitBuilder) Prefix(prefix string) *InitBuilder {
	b.prefixes = append(b.prefixes, prefix)
	return b
}

// Init builds the store and publishes it into process-wide state.
//
// Side effect: overlay keys are written into the live process environment
// (overriding pre-existing variables of the same name), so code that reads
// raw environment variables directly observes the overlay too. The side
// effect happens even when Init subsequently fails with
// [ErrAlreadyInitialized].
//
// Returns [ErrAlreadyInitialized] if a store was already published, a
// [FileError] if the overlay file cannot be read, or a [FormatError] if it
// cannot be parsed.
func (b *InitBuilder) Init() error {
	overlay, err := b.loadOverlay()
	if err != nil {
		return err
	}

	snapshot := environMap()
	if len(overlay) > 0 {
		for k, v := range overlay {
			if err := os.Setenv(k, v); err != nil {
				return fmt.Errorf("error merging overlay into environment: %w", err)
			}
		}
		if err := mergo.Merge(&snapshot, overlay, mergo.WithOverride); err != nil {
			return fmt.Errorf("error merging overlay into snapshot: %w", err)
		}
	}

	if !instance.CompareAndSwap(nil, buildStore(snapshot, b.prefixes)) {
		return ErrAlreadyInitialized
	}
	return nil
}

// MustInit is like [InitBuilder.Init] but aborts the process on failure.
func (b *InitBuilder) MustInit() {
	if err := b.Init(); err != nil {
		logger.Fatal().Err(err).Msg("envflag initialization failed")
	}
}

// loadOverlay reads the overlay file into a map without touching the
// environment. A missing default overlay yields an empty map; every other
// failure is classified as [FileError] (unreadable) or [FormatError]
// (unparseable), mirroring how parseJSON-style loaders split open and decode
// errors.
func (b *InitBuilder) loadOverlay() (map[string]string, error) {
	path := b.path
	explicit := path != ""
	if !explicit {
		path = defaultOverlayFile
	}

	overlay, err := godotenv.Read(path)
	if err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			if !explicit && errors.Is(err, fs.ErrNotExist) {
				return nil, nil
			}
			return nil, &FileError{Path: path, Err: err}
		}
		return nil, &FormatError{Path: path, Err: err}
	}
	return overlay, nil
}

// environMap snapshots the current process environment into a flat map.
func environMap() map[string]string {
	environ := os.Environ()
	snapshot := make(map[string]string, len(environ))
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			snapshot[k] = v
		}
	}
	return snapshot
}

// buildStore filters the snapshot by the configured prefixes. Matching keys
// keep their original full names; the prefix is only prepended at lookup time.
func buildStore(snapshot map[string]string, prefixes []string) *Store {
	if len(prefixes) == 0 {
		return &Store{entries: snapshot}
	}

	filtered := make(map[string]string, len(snapshot))
	for k, v := range snapshot {
		for _, p := range prefixes {
			if strings.HasPrefix(k, p) {
				filtered[k] = v
				break
			}
		}
	}
	return &Store{entries: filtered, prefixes: slices.Clone(prefixes)}
}
