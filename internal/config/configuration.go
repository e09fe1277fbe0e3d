package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type Configuration struct {
	Persistence PersistenceConfig `yaml:"persistence"`
	Log         LogConfig         `yaml:"log"`
	Janitor     JanitorConfig     `yaml:"janitor"`
}

// PersistenceConfig holds the named persistence units. Unit selects the one
// the application opens.
type PersistenceConfig struct {
	Unit  string                `yaml:"unit" validate:"required"`
	Units map[string]UnitConfig `yaml:"units" validate:"required,min=1,dive"`
}

type UnitConfig struct {
	Driver        string        `yaml:"driver" validate:"required,oneof=postgres sqlite"`
	DSN           string        `yaml:"dsn" validate:"required"`
	AutoMigrate   bool          `yaml:"autoMigrate"`
	TablePrefix   string        `yaml:"tablePrefix"`
	SingularTable bool          `yaml:"singularTable"`
	LogLevel      string        `yaml:"logLevel" validate:"omitempty,oneof=silent error warn info"`
	SlowThreshold time.Duration `yaml:"slowThreshold"`
}

type LogConfig struct {
	Level   string `yaml:"level" validate:"omitempty,oneof=debug info warn error fatal panic"`
	Format  string `yaml:"format" validate:"omitempty,oneof=json text"`
	Output  string `yaml:"output" validate:"omitempty,oneof=stdout file"`
	LogPath string `yaml:"logPath" validate:"required_if=Output file"`
}

type JanitorConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Schedule  string        `yaml:"schedule" validate:"required_if=Enabled true"`
	Retention time.Duration `yaml:"retention"`
}

func LoadConfiguration(configurationFilePath string) (*Configuration, error) {
	data, err := os.ReadFile(configurationFilePath)
	if err != nil {
		return nil, err
	}
	return ParseConfiguration(data)
}

// ParseConfiguration expands ${VAR} references from the environment before
// decoding, so DSNs can carry credentials without storing them in the file.
func ParseConfiguration(data []byte) (*Configuration, error) {
	var config Configuration
	err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &config)
	if err != nil {
		return nil, err
	}
	config.setDefaults()
	if err := validator.New().Struct(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if _, ok := config.Persistence.Units[config.Persistence.Unit]; !ok {
		return nil, fmt.Errorf("invalid configuration: persistence unit %q is not defined", config.Persistence.Unit)
	}
	return &config, nil
}

// Unit returns the configuration of the named persistence unit.
func (c *Configuration) Unit(name string) (UnitConfig, error) {
	unit, ok := c.Persistence.Units[name]
	if !ok {
		return UnitConfig{}, fmt.Errorf("persistence unit %q is not defined", name)
	}
	return unit, nil
}

func (c *Configuration) setDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Log.Output == "" {
		c.Log.Output = "stdout"
	}
	if c.Janitor.Retention == 0 {
		c.Janitor.Retention = 30 * 24 * time.Hour
	}
	for name, unit := range c.Persistence.Units {
		if unit.LogLevel == "" {
			unit.LogLevel = "warn"
		}
		if unit.SlowThreshold == 0 {
			unit.SlowThreshold = 200 * time.Millisecond
		}
		c.Persistence.Units[name] = unit
	}
}
