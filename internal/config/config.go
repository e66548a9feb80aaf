// Package config loads application settings from the environment, an
// optional .env file and command-line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/naka-gawa/github-repo-search/internal/gateway"
)

// Keys understood by Load. Each is bound to the environment variable shown.
const (
	KeyGitHubToken     = "github_token"     // GITHUB_TOKEN
	KeyAPIURL          = "api_url"          // REPO_SEARCH_API_URL
	KeyEncodeQuery     = "encode_query"     // REPO_SEARCH_ENCODE_QUERY
	KeyProfileEndpoint = "profile_endpoint" // PROFILE_ENDPOINT
	KeyProfileUserID   = "profile_user_id"  // PROFILE_USER_ID
	KeyProfileToken    = "profile_token"    // PROFILE_TOKEN
	KeyRequestTimeout  = "request_timeout"  // REQUEST_TIMEOUT
	KeyVerbose         = "verbose"          // --verbose only
)

var envBindings = map[string]string{
	KeyGitHubToken:     "GITHUB_TOKEN",
	KeyAPIURL:          "REPO_SEARCH_API_URL",
	KeyEncodeQuery:     "REPO_SEARCH_ENCODE_QUERY",
	KeyProfileEndpoint: "PROFILE_ENDPOINT",
	KeyProfileUserID:   "PROFILE_USER_ID",
	KeyProfileToken:    "PROFILE_TOKEN",
	KeyRequestTimeout:  "REQUEST_TIMEOUT",
}

// Config holds application configuration.
type Config struct {
	GitHubToken     string
	APIBaseURL      string
	EncodeQuery     bool
	ProfileEndpoint string
	ProfileUserID   string
	ProfileToken    string
	// RequestTimeout bounds each outbound request; zero means no timeout.
	RequestTimeout time.Duration
	Verbose        bool
}

// New returns a viper instance with defaults and environment bindings set.
// Flags may be bound to it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyAPIURL, gateway.DefaultAPIBaseURL)
	v.SetDefault(KeyEncodeQuery, false)
	v.SetDefault(KeyProfileUserID, "1")
	v.SetDefault(KeyRequestTimeout, time.Duration(0))
	for key, env := range envBindings {
		// BindEnv only fails when called without a key.
		_ = v.BindEnv(key, env)
	}
	return v
}

// LoadDotEnv reads environment variables from the given files (".env" when
// none are given). Missing files are not an error; variables already set in
// the environment win.
func LoadDotEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, f := range filenames {
		if err := godotenv.Load(f); err != nil && !isNotExist(err) {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

// Load reads and validates the configuration from v.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		GitHubToken:     v.GetString(KeyGitHubToken),
		APIBaseURL:      v.GetString(KeyAPIURL),
		EncodeQuery:     v.GetBool(KeyEncodeQuery),
		ProfileEndpoint: v.GetString(KeyProfileEndpoint),
		ProfileUserID:   v.GetString(KeyProfileUserID),
		ProfileToken:    v.GetString(KeyProfileToken),
		RequestTimeout:  v.GetDuration(KeyRequestTimeout),
		Verbose:         v.GetBool(KeyVerbose),
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if err := validateURL(KeyAPIURL, c.APIBaseURL); err != nil {
		return err
	}
	if c.ProfileEndpoint != "" {
		if err := validateURL(KeyProfileEndpoint, c.ProfileEndpoint); err != nil {
			return err
		}
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("invalid %s: must not be negative", KeyRequestTimeout)
	}
	return nil
}

func validateURL(key, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return fmt.Errorf("invalid %s: %q is not an absolute http(s) URL", key, raw)
	}
	return nil
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
