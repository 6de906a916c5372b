package config

import (
	"themepark/pkg/serrors"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the application configuration. Every field has a default, so
// the park runs without a config file.
type Config struct {
	// Environment selects the logger flavour (development or production)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level
	LogLevel string `env:"LOG_LEVEL" env-default:"info" yaml:"logLevel"`

	Output struct {
		// Color styles announcements when stdout is a terminal
		Color bool `env:"OUTPUT_COLOR" env-default:"true" yaml:"color"`
	} `yaml:"output"`

	Metrics struct {
		// Print appends the park metrics to the demo output
		Print bool `env:"METRICS_PRINT" env-default:"false" yaml:"print"`
	} `yaml:"metrics"`

	Demo Demo `yaml:"demo"`
}

// Demo holds the cast of the demo scenario.
type Demo struct {
	Thrill struct {
		Name      string  `env:"DEMO_THRILL_NAME"       env-default:"Daniel Coaster" yaml:"name"`
		Capacity  int     `env:"DEMO_THRILL_CAPACITY"   env-default:"30"             yaml:"capacity"`
		MinHeight float64 `env:"DEMO_THRILL_MIN_HEIGHT" env-default:"150"            yaml:"minHeight"`
	} `yaml:"thrill"`

	Family struct {
		Name     string `env:"DEMO_FAMILY_NAME"     env-default:"Mahdi Ride" yaml:"name"`
		Capacity int    `env:"DEMO_FAMILY_CAPACITY" env-default:"10"         yaml:"capacity"`
		MinAge   int    `env:"DEMO_FAMILY_MIN_AGE"  env-default:"10"         yaml:"minAge"`
	} `yaml:"family"`

	Visitor struct {
		Name   string  `env:"DEMO_VISITOR_NAME"   env-default:"Vahid" yaml:"name"`
		Height float64 `env:"DEMO_VISITOR_HEIGHT" env-default:"180"   yaml:"height"`
		Age    int     `env:"DEMO_VISITOR_AGE"    env-default:"16"    yaml:"age"`
	} `yaml:"visitor"`

	Manager struct {
		Name string `env:"DEMO_MANAGER_NAME" env-default:"Katie" yaml:"name"`
	} `yaml:"manager"`

	Staff struct {
		Name string `env:"DEMO_STAFF_NAME" env-default:"Alim"     yaml:"name"`
		Role string `env:"DEMO_STAFF_ROLE" env-default:"Operator" yaml:"role"`
	} `yaml:"staff"`
}

// Load reads the yaml file at configPath, then the environment. An empty
// path reads the environment only. Failures are of kind
// serrors.ErrInvalidArgument.
func Load(configPath string) (*Config, error) {
	var cfg Config

	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, serrors.Wrap(serrors.ErrInvalidArgument, err, "could not read config from env")
		}

		return &cfg, nil
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, serrors.Wrap(serrors.ErrInvalidArgument, err, "could not read config")
	}

	return &cfg, nil
}
