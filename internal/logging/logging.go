package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"go.mau.fi/zeroconfig"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable pointing to a zeroconfig YAML
// file that replaces the default logger setup.
const EnvConfigPath = "FOOTER_LOG_CONFIG"

// New returns a logger writing human readable lines to w at the given level.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// Load builds a logger from a zeroconfig YAML file. An empty path yields the
// default console logger at info level on stderr.
func Load(path string) (zerolog.Logger, error) {
	if path == "" {
		return New(os.Stderr, zerolog.InfoLevel), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("could not read log config: %w", err)
	}

	var cfg zeroconfig.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return zerolog.Logger{}, fmt.Errorf("could not parse log config: %w", err)
	}

	logger, err := cfg.Compile()
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("could not compile log config: %w", err)
	}

	return *logger, nil
}
