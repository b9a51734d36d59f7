// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envflag

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_ExplicitFileMissing(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "missing.env")

	// Act
	err := NewInit().Path(path).Init()

	// Assert: an explicitly named file must exist
	var fileErr *FileError
	require.ErrorAs(t, err, &fileErr)
	assert.Equal(t, path, fileErr.Path)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestInit_MalformedOverlay(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "broken.env")
	require.NoError(t, os.WriteFile(path, []byte("THIS IS NOT A VALID LINE\n"), 0o600))

	// Act
	err := NewInit().Path(path).Init()

	// Assert
	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, path, formatErr.Path)
}

func TestEnvironMap(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"ENVFLAG_SNAPSHOT_A": "1",
		"ENVFLAG_SNAPSHOT_B": "two",
	})

	// Act
	snapshot := environMap()

	// Assert
	assert.Equal(t, "1", snapshot["ENVFLAG_SNAPSHOT_A"])
	assert.Equal(t, "two", snapshot["ENVFLAG_SNAPSHOT_B"])
}

func TestBuildStore_NoPrefixes(t *testing.T) {
	// Arrange
	snapshot := map[string]string{
		"PORT": "3000",
		"HOST": "localhost",
	}

	// Act
	s := buildStore(snapshot, nil)

	// Assert: the snapshot is stored verbatim
	assert.Equal(t, snapshot, s.entries)
	assert.Empty(t, s.Prefixes())
}

func TestBuildStore_PrefixFilter(t *testing.T) {
	// Arrange
	snapshot := map[string]string{
		"APP_PORT":  "3000",
		"APP_HOST":  "localhost",
		"SVC_PORT":  "4000",
		"UNRELATED": "x",
	}

	// Act
	s := buildStore(snapshot, []string{"APP_", "SVC_"})

	// Assert: matching keys survive under their original full names
	assert.Equal(t, map[string]string{
		"APP_PORT": "3000",
		"APP_HOST": "localhost",
		"SVC_PORT": "4000",
	}, s.entries)
	assert.Equal(t, []string{"APP_", "SVC_"}, s.Prefixes())
}

func TestBuildStore_PrefixMatchIsCaseSensitive(t *testing.T) {
	// Arrange
	snapshot := map[string]string{
		"APP_PORT": "3000",
		"app_port": "9999",
	}

	// Act
	s := buildStore(snapshot, []string{"APP_"})

	// Assert
	assert.Equal(t, map[string]string{"APP_PORT": "3000"}, s.entries)
}
