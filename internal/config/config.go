package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Family names accepted by service.family.
const (
	FamilyGamma          = "gamma"
	FamilyChiSquared     = "chi-squared"
	FamilyFisherSnedecor = "fisher-snedecor"
	FamilyNormal         = "normal"
	FamilyExponential    = "exponential"
)

// Spike is a temporary surge of the arrival rate.
type Spike struct {
	At       float64 `yaml:"at"`       // start second
	Duration float64 `yaml:"duration"` // spike length
	Factor   float64 `yaml:"factor"`   // multiplier on rate_per_second
}

type Config struct {
	Simulation struct {
		TimeSeconds float64 `yaml:"time_seconds"` // total simulated time
		StepSeconds float64 `yaml:"step_seconds"` // snapshot and plot bucket step
		Seed        int64   `yaml:"seed"`         // 0 picks a time-based seed
	} `yaml:"simulation"`

	Workload struct {
		RatePerSecond float64 `yaml:"rate_per_second"` // Poisson arrival rate
	} `yaml:"workload"`

	Spikes []Spike `yaml:"spikes"`

	Service struct {
		Family string `yaml:"family"`

		// gamma; rate doubles as the exponential parameter
		Shape float64 `yaml:"shape"`
		Rate  float64 `yaml:"rate"`

		// chi-squared
		Freedom float64 `yaml:"freedom"`

		// fisher-snedecor
		FreedomOne float64 `yaml:"freedom_one"`
		FreedomTwo float64 `yaml:"freedom_two"`

		// normal
		Mean   float64 `yaml:"mean"`
		StdDev float64 `yaml:"std_dev"`
	} `yaml:"service"`

	Output struct {
		Dir     string `yaml:"dir"`
		Samples bool   `yaml:"samples"` // stream every draw to samples.csv
	} `yaml:"output"`
}

func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("error when parsing config: %w", err)
	}

	fillDefaults(&cfg)
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("error when validating config: %w", err)
	}
	return &cfg, nil
}

func fillDefaults(c *Config) {
	if c.Simulation.TimeSeconds == 0 {
		c.Simulation.TimeSeconds = 600
	}
	if c.Simulation.StepSeconds == 0 {
		c.Simulation.StepSeconds = 1
	}
	if c.Simulation.Seed == 0 {
		c.Simulation.Seed = time.Now().UnixNano()
	}
	if c.Workload.RatePerSecond == 0 {
		c.Workload.RatePerSecond = 200
	}
	if c.Service.Family == "" {
		c.Service.Family = FamilyGamma
	}
	if c.Service.Shape == 0 {
		c.Service.Shape = 2
	}
	if c.Service.Rate == 0 {
		c.Service.Rate = 1
	}
	if c.Service.Freedom == 0 {
		c.Service.Freedom = 3
	}
	if c.Service.FreedomOne == 0 {
		c.Service.FreedomOne = 3
	}
	if c.Service.FreedomTwo == 0 {
		c.Service.FreedomTwo = 3
	}
	if c.Service.Mean == 0 {
		c.Service.Mean = 1
	}
	if c.Service.StdDev == 0 {
		c.Service.StdDev = 1
	}
	if c.Output.Dir == "" {
		c.Output.Dir = "./csv"
	}
}

func validate(cfg *Config) error {
	if cfg.Simulation.TimeSeconds < 0 {
		return fmt.Errorf("simulation.time_seconds must be positive, got %v",
			cfg.Simulation.TimeSeconds)
	}
	if cfg.Workload.RatePerSecond < 0 {
		return fmt.Errorf("workload.rate_per_second must be positive, got %v",
			cfg.Workload.RatePerSecond)
	}
	for i, sp := range cfg.Spikes {
		if sp.At < 0 || sp.Duration < 0 || sp.Factor <= 0 {
			return fmt.Errorf("spike %d must have at >= 0, duration >= 0 and factor > 0", i)
		}
	}
	switch cfg.Service.Family {
	case FamilyGamma, FamilyChiSquared, FamilyFisherSnedecor, FamilyNormal, FamilyExponential:
	default:
		return fmt.Errorf("unknown service family %q", cfg.Service.Family)
	}
	return nil
}
