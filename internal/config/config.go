package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Game     Game    `yaml:"game"`
	Console  Console `yaml:"console"`
}

type Game struct {
	Mode      string `yaml:"mode" env:"GAME_MODE" env-default:"bot"`
	HumanMark string `yaml:"human-mark" env:"HUMAN_MARK" env-default:"X"`
}

type Console struct {
	// Color is "auto" (colour when the terminal supports it) or "never".
	Color string `yaml:"color" env:"COLOR" env-default:"auto"`
}

func (that *Console) UseColor() bool {
	return that.Color != "never"
}

// MustLoad - load all configurations in config.yml file, falling back to the environment when the file is absent.
func MustLoad(path string) *Config {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			panic(fmt.Errorf("unable to read config from environment: %w", err))
		}

		return config
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}
