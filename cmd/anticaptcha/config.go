package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	anticaptcha "github.com/anatolykoptev/go-anticaptcha"
)

const envPrefix = "ANTICAPTCHA"

// Config is the CLI configuration. Sources in priority order: flags,
// ANTICAPTCHA_* environment variables, the yaml config file, defaults.
type Config struct {
	APIKey            string        `mapstructure:"api-key"`
	APIURL            string        `mapstructure:"api-url"`
	Delay             time.Duration `mapstructure:"delay"`
	Timeout           time.Duration `mapstructure:"timeout"`
	SoftID            int           `mapstructure:"soft-id"`
	CallbackURL       string        `mapstructure:"callback-url"`
	Proxy             string        `mapstructure:"proxy"`
	Verbose           bool          `mapstructure:"verbose"`
	VerboseIdentifier string        `mapstructure:"identifier"`
	Metrics           bool          `mapstructure:"metrics"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api-url", anticaptcha.DefaultAPIURL)
	v.SetDefault("delay", 2*time.Second)
	v.SetDefault("timeout", 30*time.Second)
}

func registerFlags(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.String("config", "", "config file (default ./anticaptcha.yaml or ~/.config/anticaptcha/anticaptcha.yaml)")
	f.String("api-key", "", "Anti-Captcha client key")
	f.String("api-url", anticaptcha.DefaultAPIURL, "API base URL")
	f.Duration("delay", 2*time.Second, "poll interval for solve")
	f.Duration("timeout", 30*time.Second, "HTTP request timeout")
	f.Int("soft-id", 0, "application id sent with createTask")
	f.String("callback-url", "", "callback URL sent with createTask")
	f.String("proxy", "", "route API calls through this proxy with a browser TLS fingerprint")
	f.BoolP("verbose", "v", false, "log solve progress to stderr")
	f.String("identifier", "", "tag added to verbose log lines")
	f.Bool("metrics", false, "print Prometheus metrics to stderr on exit")
}

// loadConfig merges flags, environment and config file into a Config.
func loadConfig(cmd *cobra.Command) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("anticaptcha")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "anticaptcha"))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

// clientConfig converts the CLI config into a library config.
func (c *Config) clientConfig() (anticaptcha.ClientConfig, error) {
	cc := anticaptcha.ClientConfig{
		SoftID:            c.SoftID,
		Verbose:           c.Verbose,
		VerboseIdentifier: c.VerboseIdentifier,
		APIURL:            c.APIURL,
		Delay:             c.Delay,
		CallbackURL:       c.CallbackURL,
		HTTPTimeout:       c.Timeout,
	}
	if c.Proxy != "" {
		t, err := anticaptcha.NewStealthTransport(c.Proxy)
		if err != nil {
			return cc, fmt.Errorf("proxy transport: %w", err)
		}
		cc.Transport = t
	}
	return cc, nil
}
