package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Config holds the settings of the command line front end. Values come from
// SEXP_* environment variables.
type Config struct {
	Prompt         string `default:"sexp> "`
	ContinuePrompt string `default:"  ... " split_words:"true"`
	Tree           bool   `default:"false"`
}

func FromEnv() (Config, error) {
	var c Config
	err := envconfig.Process("sexp", &c)
	return c, err
}
