// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envflag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_NoPrefixes(t *testing.T) {
	// Arrange
	s := FromMap(map[string]string{
		"PORT": "3000",
		"HOST": "localhost",
	})

	// Act & Assert: identity passthrough, no transformation
	v, ok := s.lookup("PORT", "")
	assert.True(t, ok)
	assert.Equal(t, "3000", v)

	v, ok = s.lookup("HOST", "")
	assert.True(t, ok)
	assert.Equal(t, "localhost", v)

	_, ok = s.lookup("MISSING", "")
	assert.False(t, ok)

	// A preferred prefix is irrelevant when no prefixes are configured
	v, ok = s.lookup("PORT", "APP_")
	assert.True(t, ok)
	assert.Equal(t, "3000", v)
}

func TestLookup_SinglePrefix(t *testing.T) {
	// Arrange
	s := FromMapWithPrefixes(map[string]string{
		"APP_PORT": "3000",
	}, []string{"APP_"})

	// Act & Assert: the single prefix is prepended automatically
	v, ok := s.lookup("PORT", "")
	assert.True(t, ok)
	assert.Equal(t, "3000", v)

	// An explicit preference works the same way
	v, ok = s.lookup("PORT", "APP_")
	assert.True(t, ok)
	assert.Equal(t, "3000", v)

	// The full key is not a valid short name: APP_ is prepended again
	_, ok = s.lookup("APP_PORT", "")
	assert.False(t, ok)
}

func TestLookup_MultiplePrefixes(t *testing.T) {
	// Arrange
	s := FromMapWithPrefixes(map[string]string{
		"APP_PORT": "3000",
		"SVC_PORT": "4000",
	}, []string{"APP_", "SVC_"})

	// Act & Assert: unresolvable without an explicit choice
	_, ok := s.lookup("PORT", "")
	assert.False(t, ok)

	// Each configured prefix resolves explicitly
	v, ok := s.lookup("PORT", "APP_")
	assert.True(t, ok)
	assert.Equal(t, "3000", v)

	v, ok = s.lookup("PORT", "SVC_")
	assert.True(t, ok)
	assert.Equal(t, "4000", v)

	_, ok = s.lookup("PORT", "OTHER_")
	assert.False(t, ok)
}

func TestPrefixes(t *testing.T) {
	// Arrange
	prefixes := []string{"APP_", "SVC_"}
	s := FromMapWithPrefixes(map[string]string{}, prefixes)

	// Act
	got := s.Prefixes()

	// Assert: configuration order is preserved and the copy is independent
	require.Equal(t, prefixes, got)
	got[0] = "MUTATED_"
	assert.Equal(t, "APP_", s.Prefixes()[0])
}

func TestEntries(t *testing.T) {
	// Arrange
	s := FromMap(map[string]string{
		"PORT": "3000",
		"HOST": "localhost",
	})

	// Act
	entries := s.Entries()

	// Assert
	require.Len(t, entries, 2)
	assert.ElementsMatch(t, []Entry{
		{Key: "PORT", Value: "3000"},
		{Key: "HOST", Value: "localhost"},
	}, entries)
}
