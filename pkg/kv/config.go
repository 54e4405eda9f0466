package kv

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

type Config interface {
	BasePath() string
}

// LoadConfig resolves the on-disk base path from a .taskbook config file or
// the TASKBOOK environment, defaulting to ~/.taskbook.db.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.taskbook.db")
	viper.SetConfigName(".taskbook") // .yaml is implicit
	viper.SetEnvPrefix("TASKBOOK")
	viper.AutomaticEnv()

	if override := os.Getenv("TASKBOOK_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("kv: read config: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("kv: expand base path: %w", err)
	}
	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
