// Package config defines the application configuration and the loading of
// it from a YAML file.
package config

import (
	"fmt"

	"github.com/fincast/goalplanner/internal/goal"
	"github.com/fincast/goalplanner/pkg/constants"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for the goal planner.
type Configuration struct {
	Logging   LoggingConfig   `yaml:"logging,omitempty"`
	Output    OutputConfig    `yaml:"output,omitempty"`
	Server    ServerConfig    `yaml:"server,omitempty"`
	Store     StoreConfig     `yaml:"store,omitempty"`
	Portfolio PortfolioConfig `yaml:"portfolio,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// ServerConfig holds the HTTP API listen options
type ServerConfig struct {
	Address string `yaml:"address,omitempty"`
}

// StoreConfig holds the persisted portfolio store options
type StoreConfig struct {
	Path     string `yaml:"path,omitempty"`
	Disabled bool   `yaml:"disabled,omitempty"`
}

// PortfolioConfig optionally seeds a portfolio when no stored state exists.
// Goal fields are raw text and go through the normalization boundary.
type PortfolioConfig struct {
	RiskProfile   string       `yaml:"riskProfile,omitempty"`
	MonthlyIncome float64      `yaml:"monthlyIncome,omitempty"`
	Goals         []goal.Input `yaml:"goals,omitempty"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// StorePath returns the configured store location or the default.
func (c *Configuration) StorePath() string {
	if c.Store.Path != "" {
		return c.Store.Path
	}
	return constants.DefaultStorePath
}

// ServerAddress returns the configured listen address or the default.
func (c *Configuration) ServerAddress() string {
	if c.Server.Address != "" {
		return c.Server.Address
	}
	return constants.DefaultServerAddress
}

// SeedPortfolio builds a portfolio from the configuration, or nil when the
// configuration defines no goals.
func (c *Configuration) SeedPortfolio() *goal.Portfolio {
	if len(c.Portfolio.Goals) == 0 {
		return nil
	}
	p := goal.Portfolio{
		RiskProfile:   goal.ParseRiskProfile(c.Portfolio.RiskProfile),
		MonthlyIncome: c.Portfolio.MonthlyIncome,
	}
	for _, in := range c.Portfolio.Goals {
		p = p.AddGoal(in)
	}
	return &p
}
