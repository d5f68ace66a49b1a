package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/rocketsim/internal/physics"
	"github.com/san-kum/rocketsim/internal/sim"
)

const (
	DefaultDt       = physics.DefaultTimeStep
	DefaultGravity  = physics.DefaultGravity
	DefaultMaxSteps = sim.DefaultMaxSteps
	DefaultFigure   = "RocketGraphs_Other.png"
)

type Config struct {
	Name            string  `yaml:"-"`
	Description     string  `yaml:"description"`
	DryMass         float64 `yaml:"dry_mass"`
	PropellantMass  float64 `yaml:"propellant_mass"`
	ConsumptionRate float64 `yaml:"consumption_rate"`
	Thrust          float64 `yaml:"thrust"`
	Dt              float64 `yaml:"dt"`
	Gravity         float64 `yaml:"gravity"`
	InitialTime     float64 `yaml:"initial_time"`
	InitialHeight   float64 `yaml:"initial_height"`
	MaxSteps        int     `yaml:"max_steps"`
}

func DefaultConfig() *Config {
	return &Config{
		Dt:       DefaultDt,
		Gravity:  DefaultGravity,
		MaxSteps: DefaultMaxSteps,
	}
}

// Parse decodes a preset catalogue. Every entry starts from DefaultConfig, so
// omitted fields keep their defaults.
func Parse(data []byte) (map[string]*Config, error) {
	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse presets: %w", err)
	}

	presets := make(map[string]*Config, len(raw))
	for name, node := range raw {
		cfg := DefaultConfig()
		if err := node.Decode(cfg); err != nil {
			return nil, fmt.Errorf("parse preset %s: %w", name, err)
		}
		cfg.Name = name
		presets[name] = cfg
	}
	return presets, nil
}

func (c *Config) Params() physics.Params {
	return physics.Params{
		DryMass:         c.DryMass,
		PropellantMass:  c.PropellantMass,
		ConsumptionRate: c.ConsumptionRate,
		Thrust:          c.Thrust,
		TimeStep:        c.Dt,
		Gravity:         c.Gravity,
		InitialTime:     c.InitialTime,
		InitialHeight:   c.InitialHeight,
	}
}

func (c *Config) SimConfig() sim.Config {
	return sim.Config{MaxSteps: c.MaxSteps}
}

// NewRocket builds the rocket described by c.
func (c *Config) NewRocket() (*physics.Rocket, error) {
	r, err := physics.New(c.Params())
	if err != nil {
		return nil, fmt.Errorf("preset %s: %w", c.Name, err)
	}
	return r, nil
}
