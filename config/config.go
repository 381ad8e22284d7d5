package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/subtlepseudonym/sunsign"
	"github.com/subtlepseudonym/sunsign/zodiac"
)

var validate = validator.New()

type Config struct {
	// Location enables sunrise, sunset and sect output when set
	Location *sunsign.Location `yaml:"location"`
	Log      Log               `yaml:"log"`
	Watch    Watch             `yaml:"watch"`
}

type Log struct {
	Level  string `yaml:"level" default:"info" validate:"oneof=trace debug info warn error fatal panic disabled"`
	Format string `yaml:"format" default:"console" validate:"oneof=console json"`
}

// Watch limits which ingresses are logged by the watch command. An empty
// list logs every sign change.
type Watch struct {
	Signs []string `yaml:"signs"`
}

// Default returns a Config with only default values set
func Default() *Config {
	var config Config
	// only fails for non-pointer arguments
	_ = defaults.Set(&config)
	return &config
}

// Open reads a YAML config file, fills in defaults and validates it
func Open(filename string) (*Config, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var config Config
	err = yaml.Unmarshal(b, &config)
	if err != nil {
		return nil, fmt.Errorf("decode config file: %w", err)
	}

	err = defaults.Set(&config)
	if err != nil {
		return nil, fmt.Errorf("set config defaults: %w", err)
	}

	err = config.Validate()
	if err != nil {
		return nil, fmt.Errorf("validate config file: %w", err)
	}

	return &config, nil
}

func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%s: %v fails %s=%s", fe.Namespace(), fe.Value(), fe.Tag(), fe.Param())
		}
		return err
	}

	_, err = c.WatchSigns()
	return err
}

// WatchSigns parses the configured watch signs
func (c *Config) WatchSigns() ([]zodiac.Sign, error) {
	signs := make([]zodiac.Sign, 0, len(c.Watch.Signs))
	for _, name := range c.Watch.Signs {
		sign, err := zodiac.ParseSign(name)
		if err != nil {
			return nil, fmt.Errorf("watch references %w", err)
		}
		signs = append(signs, sign)
	}
	return signs, nil
}
