package migration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMigration(t *testing.T) {
	dir := t.TempDir()

	mf, err := CreateMigration(dir, "Add Product Barcode", "barcode column for catalog products")
	require.NoError(t, err)

	assert.Len(t, mf.Version, 14)
	assert.Contains(t, mf.UpPath, "_add_product_barcode.up.sql")
	assert.Contains(t, mf.DownPath, "_add_product_barcode.down.sql")

	up, err := os.ReadFile(mf.UpPath)
	require.NoError(t, err)
	assert.Contains(t, string(up), "-- Migration: Add Product Barcode")
	assert.Contains(t, string(up), "barcode column for catalog products")
	assert.Contains(t, string(up), "UP migration")

	down, err := os.ReadFile(mf.DownPath)
	require.NoError(t, err)
	assert.Contains(t, string(down), "Rollback for barcode column")
	assert.Contains(t, string(down), "DOWN migration")
}

func TestCreateMigration_MissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "migrations")

	_, err := CreateMigration(dir, "seed criteria", "")
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"add product barcode", "add_product_barcode"},
		{"Add-Rating--Index", "add_rating_index"},
		{"  seed criteria  ", "seed_criteria"},
		{"sync_jobs v2!", "sync_jobs_v2"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeName(tt.in))
	}
}

func TestListMigrations(t *testing.T) {
	t.Run("returns sorted base names", func(t *testing.T) {
		dir := t.TempDir()
		for _, name := range []string{
			"000002_create_rating_tables.up.sql",
			"000002_create_rating_tables.down.sql",
			"000001_create_catalog_tables.up.sql",
			"000001_create_catalog_tables.down.sql",
		} {
			require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("-- sql"), 0644))
		}

		migrations, err := ListMigrations(dir)
		require.NoError(t, err)
		assert.Equal(t, []string{
			"000001_create_catalog_tables",
			"000002_create_rating_tables",
		}, migrations)
	})

	t.Run("missing directory is empty", func(t *testing.T) {
		migrations, err := ListMigrations(filepath.Join(t.TempDir(), "nope"))
		require.NoError(t, err)
		assert.Empty(t, migrations)
	})
}
