// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config is the root-level settings struct and is a mix
// of settings available in a settings file and those
// available from the command line
type Config struct {
	// directory the FASTA file is written to
	OutputDir string `mapstructure:"out"`

	// seed for the random source, 0 means seed from the current time
	Seed int64 `mapstructure:"seed"`

	// width the sequence body is wrapped at, 0 means a single line
	LineWidth int `mapstructure:"line-width"`
}

// New returns a new Config struct populated by
// Viper settings (either from a local settings file)
// and/or command line arguments
func New() Config {
	var c Config

	err := viper.Unmarshal(&c)
	if err != nil {
		log.Fatalf("unable to decode into struct, %v", err)
	}

	if c.OutputDir == "" {
		c.OutputDir = "."
	}

	return c
}
