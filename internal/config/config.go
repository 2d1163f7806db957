package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v2"
)

var ErrCfg = errors.New("error reading config.yml")

type Config struct {
	Base struct {
		Debug     bool   `yaml:"debug"`
		SizeLimit int64  `yaml:"size_limit"`
		Timeout   int64  `yaml:"timeout"`
		UserAgent string `yaml:"user_agent"`
		Proxy     string `yaml:"proxy"`
	} `yaml:"base"`
}

var cfg = Config{
	Base: struct {
		Debug     bool   `yaml:"debug"`
		SizeLimit int64  `yaml:"size_limit"`
		Timeout   int64  `yaml:"timeout"`
		UserAgent string `yaml:"user_agent"`
		Proxy     string `yaml:"proxy"`
	}{
		Debug:     false,
		Timeout:   30,
		SizeLimit: 10 << 20,
	},
}

func NewDefaultConfig() (err error) {
	err = os.MkdirAll("configs", 0755)
	if err != nil {
		return
	}
	f, err := os.Create("configs/config.yml")
	if err != nil {
		return
	}
	defer f.Close()

	encoder := yaml.NewEncoder(f)
	err = encoder.Encode(cfg)
	if err != nil {
		return
	}
	return
}

func NewConfig() (cfg *Config, err error) {
	f, err := os.Open("configs/config.yml")
	if err != nil {
		return nil, ErrCfg
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	err = decoder.Decode(&cfg)
	if err != nil {
		return
	}
	return
}
