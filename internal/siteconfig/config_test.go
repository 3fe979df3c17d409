package siteconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "footer.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "/", cfg.BaseURL)
	assert.Empty(t, cfg.DocsURL)
	require.Len(t, cfg.Docs, 6)
	assert.Equal(t, Link{ID: "why", Label: "Introduction"}, cfg.Docs[0])
	assert.Empty(t, cfg.Pages)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
base_url: /site/
docs_url: docs
footer_icon: img/logo.png
title: phpseclib
repo_url: https://github.com/phpseclib/phpseclib
copyright: Copyright © 2026 phpseclib
language: en
languages: [en, de]
open_source_badge: true
localize_doc_links: true
pages:
  - id: users.html
    label: User Showcase
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/site/", cfg.BaseURL)
	assert.Equal(t, "docs", cfg.DocsURL)
	assert.Equal(t, "img/logo.png", cfg.FooterIcon)
	assert.Equal(t, "phpseclib", cfg.Title)
	assert.Equal(t, "en", cfg.Language)
	assert.Equal(t, []string{"en", "de"}, cfg.Languages)
	assert.True(t, cfg.OpenSourceBadge)
	assert.True(t, cfg.LocalizeDocLinks)
	assert.Equal(t, []Link{{ID: "users.html", Label: "User Showcase"}}, cfg.Pages)
	assert.Len(t, cfg.Docs, 6, "docs default is kept when the file doesn't set it")
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "base_url: /site/\ndocs_url: docs\nopen_source_badge: true\n")

	t.Setenv("FOOTER_BASE_URL", "/other/")
	t.Setenv("FOOTER_OPEN_SOURCE_BADGE", "false")
	t.Setenv("FOOTER_LANGUAGES", "en,fr")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/other/", cfg.BaseURL)
	assert.Equal(t, "docs", cfg.DocsURL, "unset env vars keep file values")
	assert.False(t, cfg.OpenSourceBadge)
	assert.Equal(t, []string{"en", "fr"}, cfg.Languages)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "could not read config file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "base_url: [unterminated"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "could not parse config file")
	})

	t.Run("invalid env", func(t *testing.T) {
		t.Setenv("FOOTER_LOCALIZE_DOC_LINKS", "not-a-bool")

		_, err := Load("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "could not parse env")
	})
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, Default().Validate())
	assert.ErrorIs(t, Config{}.Validate(), ErrMissingBaseURL)
}
