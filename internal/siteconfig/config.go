package siteconfig

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

var (
	// ErrMissingBaseURL indicates that a configuration has no base URL.
	ErrMissingBaseURL = errors.New("base url is required")
)

// Config holds the site-wide settings the footer is rendered from. Empty
// optional fields mean "not configured" and the elements depending on them
// are left out of the output.
type Config struct {
	BaseURL    string `yaml:"base_url"`
	DocsURL    string `yaml:"docs_url"`
	FooterIcon string `yaml:"footer_icon"`
	Title      string `yaml:"title"`
	RepoURL    string `yaml:"repo_url"`
	Copyright  string `yaml:"copyright"`

	// Language is the language code used when a request doesn't ask for one.
	Language string `yaml:"language"`
	// Languages lists the language codes a preview can switch between.
	Languages []string `yaml:"languages"`

	OpenSourceBadge  bool `yaml:"open_source_badge"`
	LocalizeDocLinks bool `yaml:"localize_doc_links"`

	Docs  []Link `yaml:"docs"`
	Pages []Link `yaml:"pages"`
}

// Link is a footer entry pointing to a page of the site by its ID.
type Link struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
}

// envOverrides mirrors the scalar settings of Config that can be set from
// the environment. Pointers distinguish unset variables from zero values.
type envOverrides struct {
	BaseURL          *string  `env:"FOOTER_BASE_URL"`
	DocsURL          *string  `env:"FOOTER_DOCS_URL"`
	FooterIcon       *string  `env:"FOOTER_ICON"`
	Title            *string  `env:"FOOTER_TITLE"`
	RepoURL          *string  `env:"FOOTER_REPO_URL"`
	Copyright        *string  `env:"FOOTER_COPYRIGHT"`
	Language         *string  `env:"FOOTER_LANGUAGE"`
	Languages        []string `env:"FOOTER_LANGUAGES" envSeparator:","`
	OpenSourceBadge  *bool    `env:"FOOTER_OPEN_SOURCE_BADGE"`
	LocalizeDocLinks *bool    `env:"FOOTER_LOCALIZE_DOC_LINKS"`
}

// Default returns a configuration with the documentation entries the site
// has always linked to from its footer.
func Default() Config {
	return Config{
		BaseURL: "/",
		Docs: []Link{
			{ID: "why", Label: "Introduction"},
			{ID: "connect", Label: "SSH2 / SFTP"},
			{ID: "publickeys", Label: "Public Key Crypto"},
			{ID: "symmetric", Label: "Symmetric Key Crypto"},
			{ID: "x509", Label: "X.509 / CSR / SPKAC / CRL"},
			{ID: "interop", Label: "Interoperability"},
		},
	}
}

// Load reads a configuration from a YAML file on top of Default and then
// applies overrides from the environment. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("could not read config file: %w", err)
		}

		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("could not parse config file: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("could not parse env: %w", err)
	}

	setIf(&c.BaseURL, o.BaseURL)
	setIf(&c.DocsURL, o.DocsURL)
	setIf(&c.FooterIcon, o.FooterIcon)
	setIf(&c.Title, o.Title)
	setIf(&c.RepoURL, o.RepoURL)
	setIf(&c.Copyright, o.Copyright)
	setIf(&c.Language, o.Language)
	setIf(&c.OpenSourceBadge, o.OpenSourceBadge)
	setIf(&c.LocalizeDocLinks, o.LocalizeDocLinks)
	if len(o.Languages) > 0 {
		c.Languages = o.Languages
	}

	return nil
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// Validate reports whether the configuration can be rendered. Only the base
// URL is mandatory.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return ErrMissingBaseURL
	}
	return nil
}
