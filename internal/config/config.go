package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultFPS    = 30
	DefaultWidth  = 110
	DefaultHeight = 34
	DefaultVin    = 9.0
	DefaultR1     = 10000.0
	DefaultR2     = 10000.0
	DefaultRL     = 1e6
	DefaultLEDs   = 0
	DefaultVmin   = 3.0
)

type Config struct {
	Scene  string       `yaml:"scene"`
	FPS    int          `yaml:"fps"`
	Width  int          `yaml:"width"`
	Height int          `yaml:"height"`
	OutDir string       `yaml:"out_dir"`
	Params ParamsConfig `yaml:"params"`
}

type ParamsConfig struct {
	Vin  float64 `yaml:"vin"`
	R1   float64 `yaml:"r1"`
	R2   float64 `yaml:"r2"`
	RL   float64 `yaml:"rl"`
	LEDs int     `yaml:"leds"`
	Vmin float64 `yaml:"vmin"`
}

func DefaultConfig() *Config {
	return &Config{
		Scene:  "voltage_divider",
		FPS:    DefaultFPS,
		Width:  DefaultWidth,
		Height: DefaultHeight,
		OutDir: ".electroanim",
		Params: ParamsConfig{
			Vin:  DefaultVin,
			R1:   DefaultR1,
			R2:   DefaultR2,
			RL:   DefaultRL,
			LEDs: DefaultLEDs,
			Vmin: DefaultVmin,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
