package config

import (
	"fmt"

	"linesplit/internal/chunker"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	OutputDir      string           `env:"ENV_OUTPUT_DIR_NAME,required,notEmpty"`
	MaxLinePerFile int              `env:"ENV_MAX_LINE_PER_FILE" envDefault:"1024"`
	FileSyncType   chunker.SyncType `env:"ENV_FILE_SYNC_TYPE" envDefault:"nop"`
	ShowProgress   bool             `env:"ENV_SHOW_PROGRESS" envDefault:"false"`
}

func Init(cfg interface{}) error {
	return env.Parse(cfg)
}

// Load читает конфиг из окружения процесса
func Load() (*Config, error) {
	cfg := &Config{}
	if err := Init(cfg); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

// LoadFrom читает конфиг из переданного окружения вместо os.Environ
func LoadFrom(environ map[string]string) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.MaxLinePerFile < 1 {
		return fmt.Errorf("ENV_MAX_LINE_PER_FILE: %w: got %d", chunker.ErrInvalidCapacity, c.MaxLinePerFile)
	}
	return nil
}
