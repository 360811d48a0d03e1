package simulator

import (
	"fmt"
	"os"
	"runtime"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete simulation configuration
type Config struct {
	Simulation SimulationSettings `hcl:"simulation,block"`
}

// SimulationSettings contains simulation-level configuration
type SimulationSettings struct {
	Games    int    `hcl:"games,optional"`
	Players  int    `hcl:"players,optional"`
	Seed     int64  `hcl:"seed,optional"`
	MaxTurns int    `hcl:"max_turns,optional"`
	Parallel int    `hcl:"parallel,optional"`
	LogLevel string `hcl:"log_level,optional"`
}

// DefaultConfig returns default simulation configuration
func DefaultConfig() *Config {
	return &Config{
		Simulation: SimulationSettings{
			Games:    100,
			Players:  4,
			Seed:     1,
			MaxTurns: 1000,
			Parallel: runtime.NumCPU(),
			LogLevel: "info",
		},
	}
}

// LoadConfig loads simulation configuration from an HCL file. A missing
// file yields the defaults.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	if config.Simulation.Games == 0 {
		config.Simulation.Games = 100
	}
	if config.Simulation.Players == 0 {
		config.Simulation.Players = 4
	}
	if config.Simulation.Seed == 0 {
		config.Simulation.Seed = 1
	}
	if config.Simulation.MaxTurns == 0 {
		config.Simulation.MaxTurns = 1000
	}
	if config.Simulation.Parallel == 0 {
		config.Simulation.Parallel = runtime.NumCPU()
	}
	if config.Simulation.LogLevel == "" {
		config.Simulation.LogLevel = "info"
	}

	return &config, nil
}

// Validate validates the simulation configuration
func (c *Config) Validate() error {
	if c.Simulation.Games < 1 {
		return fmt.Errorf("games must be positive, got %d", c.Simulation.Games)
	}
	if c.Simulation.Players < 1 {
		return fmt.Errorf("players must be at least 1, got %d", c.Simulation.Players)
	}
	if c.Simulation.MaxTurns < 1 {
		return fmt.Errorf("max_turns must be positive, got %d", c.Simulation.MaxTurns)
	}
	if c.Simulation.Parallel < 1 {
		return fmt.Errorf("parallel must be positive, got %d", c.Simulation.Parallel)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.Simulation.LogLevel] {
		return fmt.Errorf("invalid log level %q", c.Simulation.LogLevel)
	}

	return nil
}
