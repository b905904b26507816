package currency

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

// EnvPrefix prefixes environment variables overriding [Settings], e.g.
// CURFMT_LOCALE or CURFMT_BREAKER_TIMEOUT.
const EnvPrefix = "CURFMT"

// Settings are the user and deployment settings consumed by the package.
// They are passed explicitly to constructors.
type Settings struct {
	Locale           string          `mapstructure:"locale"`
	BTCUnit          string          `mapstructure:"btc_unit"`
	WalletCurrencies []string        `mapstructure:"wallet_currencies"`
	RatesURL         string          `mapstructure:"rates_url"`
	FetchTimeout     time.Duration   `mapstructure:"fetch_timeout"`
	Breaker          BreakerSettings `mapstructure:"breaker"`
	LogLevel         string          `mapstructure:"log_level"`
}

// DefaultSettings returns the settings used when no configuration is found.
func DefaultSettings() Settings {
	return Settings{
		Locale:           "en-US",
		BTCUnit:          string(UnitBTC),
		WalletCurrencies: []string{"BTC"},
		RatesURL:         "http://localhost:4002/ob/exchange-rates",
		FetchTimeout:     30 * time.Second,
		Breaker: BreakerSettings{
			ConsecutiveFailures: 3,
			Timeout:             time.Minute,
			MaxRequests:         1,
		},
		LogLevel: "info",
	}
}

// LoadSettings reads {name}.yaml from paths (default "./config" and "."),
// applies CURFMT_ environment overrides and fills the remaining keys from
// [DefaultSettings]. A missing file is not an error.
func LoadSettings(name string, paths ...string) (Settings, error) {
	v := viper.New()
	v.SetConfigName(name)
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{"./config", "."}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := DefaultSettings()
	v.SetDefault("locale", def.Locale)
	v.SetDefault("btc_unit", def.BTCUnit)
	v.SetDefault("wallet_currencies", def.WalletCurrencies)
	v.SetDefault("rates_url", def.RatesURL)
	v.SetDefault("fetch_timeout", def.FetchTimeout)
	v.SetDefault("breaker.consecutive_failures", def.Breaker.ConsecutiveFailures)
	v.SetDefault("breaker.timeout", def.Breaker.Timeout)
	v.SetDefault("breaker.interval", def.Breaker.Interval)
	v.SetDefault("breaker.max_requests", def.Breaker.MaxRequests)
	v.SetDefault("log_level", def.LogLevel)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("reading settings %q: %w", name, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decoding settings %q: %w", name, err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate reports the first invalid setting.
func (s Settings) Validate() error {
	if _, err := s.Tag(); err != nil {
		return err
	}
	if _, err := s.Unit(); err != nil {
		return err
	}
	if len(s.WalletCurrencies) == 0 {
		return ErrNoWalletCurrencies
	}
	if s.FetchTimeout < 0 {
		return fmt.Errorf("fetch timeout must not be negative, got %v", s.FetchTimeout)
	}
	return nil
}

// Tag returns the parsed locale.
func (s Settings) Tag() (language.Tag, error) {
	tag, err := language.Parse(s.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("parsing locale %q: %w", s.Locale, err)
	}
	return tag, nil
}

// Unit returns the parsed bitcoin display unit.
func (s Settings) Unit() (BTCUnit, error) {
	return ParseBTCUnit(s.BTCUnit)
}
