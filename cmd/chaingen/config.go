// Config loading for the chaingen CLI.
package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/bugadani/object-chain/pkg/chain/gen"
)

const (
	configFileName = "chaingen"
	configFileType = "yaml"
)

// config mirrors the chaingen YAML layout. Chains are a list rather than a
// map so alias names keep their exported casing.
type config struct {
	Package string     `mapstructure:"package"`
	Output  string     `mapstructure:"output"`
	Imports []string   `mapstructure:"imports"`
	Chains  []gen.Spec `mapstructure:"chains"`
}

// loadConfig reads the chaingen config using Viper. An explicit path is
// required to exist; the default chaingen.yaml is looked up in the working
// directory.
func loadConfig(path string) (gen.File, string, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		return gen.File{}, "", fmt.Errorf("read config: %w", err)
	}

	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return gen.File{}, "", fmt.Errorf("parse config: %w", err)
	}

	file := gen.File{
		Package: cfg.Package,
		Imports: cfg.Imports,
		Specs:   cfg.Chains,
	}
	return file, cfg.Output, nil
}
