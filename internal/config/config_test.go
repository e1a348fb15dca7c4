package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridworks/internal/domain"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "/api/v1", cfg.Server.BasePath)
	assert.Equal(t, 12*time.Hour, cfg.TokenTTL())
}

func TestGeneratedTemplateParses(t *testing.T) {
	cfg, err := FromYAML([]byte(GenerateDefault()))
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Paging.PerPage)
	assert.Equal(t, 100, cfg.Paging.MaxPerPage)
}

func TestPageBoundsReachTheNormalizer(t *testing.T) {
	cfg, err := FromYAML([]byte("paging:\n  per_page: 25\n  max_per_page: 40\n"))
	require.NoError(t, err)

	in := domain.NormalizePageWith(domain.PageQuery{}, cfg.PageBounds())
	assert.Equal(t, 25, in.PerPage)

	in = domain.NormalizePageWith(domain.PageQuery{PerPage: 99}, cfg.PageBounds())
	assert.Equal(t, 40, in.PerPage)
}

func TestFromYAMLRejectsBadValues(t *testing.T) {
	_, err := FromYAML([]byte("server:\n  base_path: api\n"))
	assert.ErrorContains(t, err, "base_path")

	_, err = FromYAML([]byte("auth:\n  token_ttl: soon\n"))
	assert.ErrorContains(t, err, "token_ttl")

	_, err = FromYAML([]byte("paging:\n  per_page: 50\n  max_per_page: 5\n"))
	assert.ErrorContains(t, err, "max_per_page")
}

func TestLoadOptional(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadOptional(dir)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "gridworks.yml"), []byte("server:\n  addr: \":9090\"\n"), 0o644))
	cfg, err = LoadOptional(dir)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "/api/v1", cfg.Server.BasePath)
}
