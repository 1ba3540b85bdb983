package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config is the configuration data as present in a config file at
// '${TIMEGRID_HOME}/config.yaml'.
type Config struct {
	View     View      `yaml:"view"`
	Location *Location `yaml:"location,omitempty"`
}

// View describes the time column the pointer samples are taken on.
type View struct {
	// HourStart and HourEnd are the hours shown at the top and the bottom of
	// the column.
	HourStart *float64 `yaml:"hour-start,omitempty"`
	HourEnd   *float64 `yaml:"hour-end,omitempty"`
	// Top is the screen row (or pixel) at which the column begins.
	Top *int `yaml:"top,omitempty"`
	// Height is the rendered height of the column.
	Height *int `yaml:"height,omitempty"`
}

// Location is a location on earth, used to tag samples with whether the sun
// is up.
type Location struct {
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
}

// ParseConfigAugmentDefaults parses the configuration specified in
// YAML-formatted data and uses it to augment the default configuration.
func ParseConfigAugmentDefaults(yamlData []byte) (Config, error) {
	defaultConfig := Default()

	parsedConfig := Config{}
	err := yaml.Unmarshal(yamlData, &parsedConfig)
	if err != nil {
		return defaultConfig, fmt.Errorf("error unmarshaling yaml (%s)", err)
	}

	result := defaultConfig.augmentWith(parsedConfig)

	return result, nil
}

func (base Config) augmentWith(augment Config) Config {
	result := base

	result.View = base.View.augmentWith(augment.View)

	if augment.Location != nil {
		result.Location = augment.Location
	}

	return result
}

func (base View) augmentWith(augment View) View {
	result := base

	if augment.HourStart != nil {
		result.HourStart = augment.HourStart
	}
	if augment.HourEnd != nil {
		result.HourEnd = augment.HourEnd
	}
	if augment.Top != nil {
		result.Top = augment.Top
	}
	if augment.Height != nil {
		result.Height = augment.Height
	}

	return result
}
