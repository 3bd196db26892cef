// Package config provides configuration loading for glowchase.
// It supports loading from YAML files and environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lixenwraith/glowchase/core"
	"github.com/lixenwraith/glowchase/parameter"
	"github.com/lixenwraith/glowchase/sim"
	"gopkg.in/yaml.v3"
)

// Backend names accepted by HostConfig.Backend
const (
	BackendTerminal = "terminal"
	BackendWindow   = "window"
)

// Config contains all glowchase configuration settings.
type Config struct {
	// Seed fixes the random source. Zero picks a time-based seed at startup.
	Seed uint64 `yaml:"seed"`

	World     WorldConfig     `yaml:"world"`
	Glow      GlowConfig      `yaml:"glow"`
	Spider    SpiderConfig    `yaml:"spider"`
	Behavior  BehaviorConfig  `yaml:"behavior"`
	Avoidance AvoidanceConfig `yaml:"avoidance"`
	Host      HostConfig      `yaml:"host"`
	Audio     AudioConfig     `yaml:"audio"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// WorldConfig sizes the plane.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// GlowConfig tunes the pursued light.
type GlowConfig struct {
	Speed  float64 `yaml:"speed"`
	Radius int     `yaml:"radius"`
}

// SpiderConfig tunes spider motion.
type SpiderConfig struct {
	SpeedMin float64 `yaml:"speed_min"`
	SpeedMax float64 `yaml:"speed_max"`
	Friction float64 `yaml:"friction"`
	Radius   int     `yaml:"radius"`
}

// BehaviorConfig tunes the spider state machine.
type BehaviorConfig struct {
	RetargetChance      float64 `yaml:"retarget_chance"`
	WanderChaseDistance float64 `yaml:"wander_chase_distance"`
	PounceDistance      float64 `yaml:"pounce_distance"`
	PounceMultiplier    float64 `yaml:"pounce_multiplier"`

	// ChaseTrigger is "patrol" (default: chase once the wander target is reached)
	// or "glow" (chase once the glow is near).
	ChaseTrigger string `yaml:"chase_trigger"`
}

// AvoidanceConfig tunes spider separation.
type AvoidanceConfig struct {
	MinDistance float64 `yaml:"min_distance"`
	PushStep    float64 `yaml:"push_step"`
}

// HostConfig selects and tunes the host loop.
type HostConfig struct {
	// Backend is "terminal" or "window".
	Backend  string `yaml:"backend"`
	TickRate int    `yaml:"tick_rate"`
}

// AudioConfig toggles sound cues.
type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default) or "debug".
	Level string `yaml:"level"`

	// Debug enables the log file. Without it logs are discarded.
	Debug bool `yaml:"debug"`
}

// Default returns a Config with the stock tuning.
func Default() *Config {
	return &Config{
		World: WorldConfig{
			Width:  parameter.WorldWidth,
			Height: parameter.WorldHeight,
		},
		Glow: GlowConfig{
			Speed:  parameter.GlowSpeed,
			Radius: parameter.GlowRadius,
		},
		Spider: SpiderConfig{
			SpeedMin: parameter.SpiderSpeedMin,
			SpeedMax: parameter.SpiderSpeedMax,
			Friction: parameter.SpiderFriction,
			Radius:   parameter.SpiderRadius,
		},
		Behavior: BehaviorConfig{
			RetargetChance:      parameter.WanderRetargetChance,
			WanderChaseDistance: parameter.WanderChaseDistance,
			PounceDistance:      parameter.PounceDistance,
			PounceMultiplier:    parameter.PounceSpeedMultiplier,
			ChaseTrigger:        sim.ChaseOnPatrolPoint.String(),
		},
		Avoidance: AvoidanceConfig{
			MinDistance: parameter.AvoidanceMinDistance,
			PushStep:    parameter.AvoidancePushStep,
		},
		Host: HostConfig{
			Backend:  BackendTerminal,
			TickRate: parameter.TickRate,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load builds configuration in order: defaults -> YAML file (if path is set) -> environment.
func Load(path string) (*Config, error) {
	config := Default()

	if path != "" {
		fileConfig, err := LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
		config = fileConfig
	}

	if err := applyEnvOverrides(config); err != nil {
		return nil, err
	}

	return config, nil
}

// LoadFromFile loads configuration from a specific YAML file on top of the defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return config, nil
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("world dimensions must be positive, got %vx%v", c.World.Width, c.World.Height)
	}

	if c.Glow.Speed < 0 {
		return fmt.Errorf("glow speed must be non-negative, got %v", c.Glow.Speed)
	}

	if c.Spider.SpeedMin <= 0 || c.Spider.SpeedMax < c.Spider.SpeedMin {
		return fmt.Errorf("spider speed range must satisfy 0 < min <= max, got [%v, %v]", c.Spider.SpeedMin, c.Spider.SpeedMax)
	}

	if c.Spider.Friction <= 0 || c.Spider.Friction >= 1 {
		return fmt.Errorf("friction must be in (0, 1), got %v", c.Spider.Friction)
	}

	if c.Glow.Radius <= 0 || c.Spider.Radius <= 0 {
		return fmt.Errorf("radii must be positive, got glow %d spider %d", c.Glow.Radius, c.Spider.Radius)
	}

	if c.Behavior.RetargetChance < 0 || c.Behavior.RetargetChance > 1 {
		return fmt.Errorf("retarget_chance must be between 0 and 1, got %v", c.Behavior.RetargetChance)
	}

	if c.Behavior.WanderChaseDistance <= 0 || c.Behavior.PounceDistance <= 0 {
		return fmt.Errorf("behavior distances must be positive")
	}

	if c.Behavior.PounceMultiplier <= 0 {
		return fmt.Errorf("pounce_multiplier must be positive, got %v", c.Behavior.PounceMultiplier)
	}

	if _, err := ParseChaseTrigger(c.Behavior.ChaseTrigger); err != nil {
		return err
	}

	if c.Avoidance.MinDistance < 0 || c.Avoidance.PushStep < 0 {
		return fmt.Errorf("avoidance values must be non-negative")
	}

	if c.Host.Backend != BackendTerminal && c.Host.Backend != BackendWindow {
		return fmt.Errorf("invalid backend: %s (valid: terminal, window)", c.Host.Backend)
	}

	if c.Host.TickRate <= 0 || c.Host.TickRate > 1000 {
		return fmt.Errorf("tick_rate must be in 1..1000, got %d", c.Host.TickRate)
	}

	validLevels := map[string]bool{"info": true, "debug": true}
	if c.Logging.Level != "" && !validLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("invalid log level: %s (valid: info, debug, or empty for default)", c.Logging.Level)
	}

	return nil
}

// ParseChaseTrigger maps a trigger name to its sim value. Empty means patrol.
func ParseChaseTrigger(s string) (sim.ChaseTrigger, error) {
	switch strings.ToLower(s) {
	case "", "patrol":
		return sim.ChaseOnPatrolPoint, nil
	case "glow":
		return sim.ChaseNearGlow, nil
	default:
		return 0, fmt.Errorf("invalid chase_trigger: %s (valid: patrol, glow)", s)
	}
}

// Simulation converts the configuration into immutable world tuning.
// Call Validate first; an unknown trigger falls back to patrol.
func (c *Config) Simulation() sim.Config {
	trigger, _ := ParseChaseTrigger(c.Behavior.ChaseTrigger)

	cfg := sim.DefaultConfig()
	cfg.Bounds = core.Bounds{Width: c.World.Width, Height: c.World.Height}
	cfg.GlowSpeed = c.Glow.Speed
	cfg.GlowRadius = c.Glow.Radius
	cfg.SpiderSpeedMin = c.Spider.SpeedMin
	cfg.SpiderSpeedMax = c.Spider.SpeedMax
	cfg.Friction = c.Spider.Friction
	cfg.SpiderRadius = c.Spider.Radius
	cfg.RetargetChance = c.Behavior.RetargetChance
	cfg.WanderChaseDistance = c.Behavior.WanderChaseDistance
	cfg.PounceDistance = c.Behavior.PounceDistance
	cfg.PounceMultiplier = c.Behavior.PounceMultiplier
	cfg.ChaseTrigger = trigger
	cfg.AvoidMinDistance = c.Avoidance.MinDistance
	cfg.AvoidPushStep = c.Avoidance.PushStep
	return cfg
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(config *Config) error {
	if v := os.Getenv("GLOWCHASE_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("parsing GLOWCHASE_SEED: %w", err)
		}
		config.Seed = seed
	}

	if v := os.Getenv("GLOWCHASE_BACKEND"); v != "" {
		config.Host.Backend = v
	}

	if v := os.Getenv("GLOWCHASE_AUDIO"); v != "" {
		config.Audio.Enabled = v == "true" || v == "1"
	}

	if v := os.Getenv("GLOWCHASE_CHASE_TRIGGER"); v != "" {
		config.Behavior.ChaseTrigger = v
	}

	if v := os.Getenv("GLOWCHASE_LOG_LEVEL"); v != "" {
		config.Logging.Level = strings.ToLower(v)
	}

	return nil
}
