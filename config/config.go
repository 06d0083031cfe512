package config

import (
	"os"

	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no config file is given. It is optional.
const DefaultPath = ".jasm-ls.yaml"

type CompletionConfig struct {
	DocumentMacros *bool `yaml:"documentMacros,omitempty"`
}

type LogConfig struct {
	Level string `yaml:"level,omitempty"`
	JSON  bool   `yaml:"json,omitempty"`
}

type ListenConfig struct {
	TCP       string `yaml:"tcp,omitempty"`
	WebSocket string `yaml:"websocket,omitempty"`
}

type Config struct {
	Vocabulary string           `yaml:"vocabulary,omitempty"` // path to a dialect vocabulary file
	Completion CompletionConfig `yaml:"completion,omitempty"`
	Log        LogConfig        `yaml:"log,omitempty"`
	Listen     ListenConfig     `yaml:"listen,omitempty"`
}

func Default() *Config {
	return &Config{
		Log: LogConfig{Level: "info"},
		Listen: ListenConfig{
			TCP:       ":2036",
			WebSocket: ":2037",
		},
	}
}

// DocumentMacrosEnabled reports whether document macros are offered as
// completions. Defaults to true.
func (c *Config) DocumentMacrosEnabled() bool {
	return c.Completion.DocumentMacros == nil || *c.Completion.DocumentMacros
}

// Load reads the config at path on top of Default(). An empty path reads
// DefaultPath and tolerates it being absent; an explicit path must exist.
func Load(fs afero.Fs, path string) (*Config, error) {
	conf := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	b, err := afero.ReadFile(fs, path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return conf, nil
		}
		return nil, errors.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(b, conf); err != nil {
		return nil, errors.Errorf("parsing config %s: %w", path, err)
	}
	return conf, nil
}
