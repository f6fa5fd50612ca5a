package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/juancwu/quiz-cli/shared/env"
	"github.com/spf13/viper"
)

const (
	CONFIG_DIR_NAME = "quiz"
	CONFIG_NAME     = "config"
	CONFIG_TYPE     = "yaml"
)

// ErrNoCredentials is returned when there is no stored access token.
var ErrNoCredentials = errors.New("No credentials found. Please sign-in first using `quiz auth login`.")

// Credentials represent the tokens saved in the config folder.
type Credentials struct {
	Email       string `mapstructure:"email"`
	AccessToken string `mapstructure:"access_token"`
}

type AppConfig struct {
	Auth Credentials `mapstructure:"auth"`
}

// ConfigDir returns the directory where the config file lives.
// QUIZ_CONFIG_DIR takes precedence over the user's configuration directory.
func ConfigDir() (string, error) {
	if dir := env.Values().QUIZ_CONFIG_DIR; dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		log.Errorf("Failed to get user configuration directory: %v\n", err)
		return "", err
	}
	return filepath.Join(base, CONFIG_DIR_NAME), nil
}

// ConfigPath returns the config file path inside dir.
func ConfigPath(dir string) string {
	return filepath.Join(dir, CONFIG_NAME+"."+CONFIG_TYPE)
}

// LoadCredentialsFrom loads the credentials stored in dir.
// ErrNoCredentials is returned if the file is missing or has no access token.
func LoadCredentialsFrom(dir string) (*Credentials, error) {
	v := viper.New()
	v.SetConfigFile(ConfigPath(dir))
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.Is(err, fs.ErrNotExist) || errors.As(err, &notFound) {
			return nil, ErrNoCredentials
		}
		log.Errorf("Failed to read configuration file: %v\n", err)
		return nil, err
	}

	var appConfig AppConfig
	if err := v.Unmarshal(&appConfig); err != nil {
		log.Errorf("Failed to unmarshal configuration file: %v\n", err)
		return nil, err
	}
	if appConfig.Auth.AccessToken == "" {
		return nil, ErrNoCredentials
	}

	return &appConfig.Auth, nil
}

// SaveCredentialsTo writes the credentials into dir, creating it if needed.
// Only the owner can read or write the file.
func SaveCredentialsTo(dir string, c *Credentials) error {
	// needs executive perms to work with dir in Unix
	if err := os.MkdirAll(dir, 0700); err != nil {
		log.Errorf("Failed to create application configuration directory: %v\n", err)
		return err
	}

	v := viper.New()
	v.SetConfigPermissions(0600)
	v.Set("auth.email", c.Email)
	v.Set("auth.access_token", c.AccessToken)

	path := ConfigPath(dir)
	if err := v.WriteConfigAs(path); err != nil {
		log.Errorf("Failed to write configuration file: %v\n", err)
		return err
	}
	log.Debug("Credentials saved.", "path", path)
	return nil
}

// RemoveCredentialsFrom deletes the credentials stored in dir. Removing missing credentials is not an error.
func RemoveCredentialsFrom(dir string) error {
	err := os.Remove(ConfigPath(dir))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
