package session

import (
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config locates the session store and the remote API.
type Config interface {
	BasePath() string
	APIURL() string
}

// LoadConfig resolves configuration from a .kharcha file, KHARCHA_*
// environment variables, and defaults, in that order of preference.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.kharcha.db")
	viper.SetDefault("api_url", "http://localhost:5000")
	viper.SetConfigName(".kharcha") // .yaml is implicit
	viper.SetEnvPrefix("KHARCHA")
	viper.AutomaticEnv()

	if override := os.Getenv("KHARCHA_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{Path: path, URL: viper.GetString("api_url")}, nil
}

type fileConfig struct {
	Path string `json:"path"`
	URL  string `json:"api_url"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) APIURL() string {
	return f.URL
}
