package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// EngineConfig holds the engine tunables that accountants adjust without a
// redeploy: the reporting company's own registration id and the engine
// defaults.
type EngineConfig struct {
	// CompanyGSTIN is the reporting company's registration id, the "our
	// side" input to every classification.
	CompanyGSTIN string `mapstructure:"companyGstin"`
	// DefaultNominalRate is the combined GST percentage applied to a line
	// that has no rate yet.
	DefaultNominalRate float64 `mapstructure:"defaultNominalRate"`
	// DefaultUsefulLifeYears applies to assets that omit a useful life.
	DefaultUsefulLifeYears int `mapstructure:"defaultUsefulLifeYears"`
}

func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		DefaultNominalRate:     18,
		DefaultUsefulLifeYears: 5,
	}
}

// EngineConfigHolder exposes the current engine config and hot-reloads it
// when the file changes.
type EngineConfigHolder struct {
	current atomic.Value // holds EngineConfig
}

func NewEngineConfigHolder() (*EngineConfigHolder, error) {
	v := viper.New()

	v.SetConfigName("engine")
	v.SetConfigType("yml")
	v.AddConfigPath("/etc/taxledger")
	v.AddConfigPath(".")

	v.SetEnvPrefix("TAXLEDGER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		defaults := DefaultEngineConfig()
		v.SetDefault("engine.companyGstin", defaults.CompanyGSTIN)
		v.SetDefault("engine.defaultNominalRate", defaults.DefaultNominalRate)
		v.SetDefault("engine.defaultUsefulLifeYears", defaults.DefaultUsefulLifeYears)
	}

	var cfg EngineConfig
	if err := v.UnmarshalKey("engine", &cfg); err != nil {
		return nil, err
	}
	cfg = withEngineDefaults(cfg)
	if err := validateEngineConfig(cfg); err != nil {
		return nil, err
	}

	holder := &EngineConfigHolder{}
	holder.current.Store(cfg)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated EngineConfig
		if err := v.UnmarshalKey("engine", &updated); err != nil {
			log.Printf("[engine-config] reload failed: %v", err)
			return
		}
		updated = withEngineDefaults(updated)
		if err := validateEngineConfig(updated); err != nil {
			log.Printf("[engine-config] invalid config ignored: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[engine-config] reloaded from %s", e.Name)
	})

	return holder, nil
}

// NewStaticEngineConfigHolder wraps a fixed config without file watching.
func NewStaticEngineConfigHolder(cfg EngineConfig) *EngineConfigHolder {
	holder := &EngineConfigHolder{}
	holder.current.Store(withEngineDefaults(cfg))
	return holder
}

func (h *EngineConfigHolder) Get() EngineConfig {
	return h.current.Load().(EngineConfig)
}

func withEngineDefaults(cfg EngineConfig) EngineConfig {
	defaults := DefaultEngineConfig()
	if cfg.DefaultNominalRate == 0 {
		cfg.DefaultNominalRate = defaults.DefaultNominalRate
	}
	if cfg.DefaultUsefulLifeYears == 0 {
		cfg.DefaultUsefulLifeYears = defaults.DefaultUsefulLifeYears
	}
	return cfg
}

func validateEngineConfig(cfg EngineConfig) error {
	if cfg.DefaultNominalRate < 0 || cfg.DefaultNominalRate > 28 {
		return errors.New("engine.defaultNominalRate must be within 0-28")
	}
	if cfg.DefaultUsefulLifeYears <= 0 {
		return errors.New("engine.defaultUsefulLifeYears must be positive")
	}
	return nil
}
