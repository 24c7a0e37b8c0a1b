package auth

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"golang.org/x/oauth2"
)

// AuthConfig holds all authentication configuration for the application
type AuthConfig struct {
	JWTSecret   string       `yaml:"jwt_secret" json:"jwt_secret"`
	RedirectURL string       `yaml:"redirect_url" json:"redirect_url"`
	OAuth       *OAuthConfig `yaml:"oauth,omitempty" json:"oauth,omitempty"`
}

// OAuthConfig holds configuration for the optional OAuth sign-in provider
type OAuthConfig struct {
	ClientID     string   `yaml:"client_id" json:"client_id"`
	ClientSecret string   `yaml:"client_secret" json:"client_secret"`
	AuthURL      string   `yaml:"auth_url" json:"auth_url"`
	TokenURL     string   `yaml:"token_url" json:"token_url"`
	UserInfoURL  string   `yaml:"user_info_url" json:"user_info_url"`
	Scopes       []string `yaml:"scopes" json:"scopes"`
}

// Endpoint returns the oauth2 endpoint for the configured provider
func (o *OAuthConfig) Endpoint() oauth2.Endpoint {
	return oauth2.Endpoint{
		AuthURL:  o.AuthURL,
		TokenURL: o.TokenURL,
	}
}

// LoadAuthConfig loads and validates authentication configuration
func LoadAuthConfig(configPath string) (*AuthConfig, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("auth")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setAuthDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		_, notFound := err.(viper.ConfigFileNotFoundError)
		if !notFound && !os.IsNotExist(err) {
			// A missing file is fine; env vars and defaults take over.
			if _, statErr := os.Stat(configPath); configPath == "" || !os.IsNotExist(statErr) {
				return nil, fmt.Errorf("error reading auth config file: %w", err)
			}
		}
	}

	v.AutomaticEnv()

	var config AuthConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling auth config: %w", err)
	}

	// Environment variables win for sensitive values
	if jwtSecret := os.Getenv("JWT_SECRET"); jwtSecret != "" {
		config.JWTSecret = jwtSecret
	}
	if redirectURL := os.Getenv("AUTH_REDIRECT_URL"); redirectURL != "" {
		config.RedirectURL = redirectURL
	}
	if config.OAuth != nil {
		if clientID := os.Getenv("OAUTH_CLIENT_ID"); clientID != "" {
			config.OAuth.ClientID = clientID
		}
		if clientSecret := os.Getenv("OAUTH_CLIENT_SECRET"); clientSecret != "" {
			config.OAuth.ClientSecret = clientSecret
		}
	}

	if config.JWTSecret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}

	return &config, nil
}

func setAuthDefaults(v *viper.Viper) {
	v.SetDefault("jwt_secret", "")
	v.SetDefault("redirect_url", "http://localhost:5173")
}
