package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config holds the runtime configuration for the quizgen CLI: generation
// defaults plus logger settings. Every field can be overridden per
// invocation by command-line flags.
type Config struct {
	Generation GenerationConfig
	Logger     LoggerConfig
}

// GenerationConfig carries the default quiz-generation parameters.
type GenerationConfig struct {
	Length     int
	Types      []string
	AnswerWith string
	NOptions   int
	NTerms     int
}

// LoggerConfig carries logger settings.
type LoggerConfig struct {
	Level string
	Env   string
}

// Defaults returns the built-in configuration used when no config file is
// present. The values mirror the library defaults.
func Defaults() *Config {
	return &Config{
		Generation: GenerationConfig{
			Length:     10,
			Types:      []string{"mcq", "frq", "tf"},
			AnswerWith: "def",
			NOptions:   4,
			NTerms:     5,
		},
		Logger: LoggerConfig{
			Level: "info",
			Env:   "development",
		},
	}
}

// LoadConfig reads config.yaml from the working directory or ./config,
// falling back to built-in defaults when no file is found. Environment
// variables override file values.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../config")
		viper.AddConfigPath("../../")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	viper.AutomaticEnv()

	cfg := Defaults()
	viper.SetDefault("generation.length", cfg.Generation.Length)
	viper.SetDefault("generation.types", cfg.Generation.Types)
	viper.SetDefault("generation.answer_with", cfg.Generation.AnswerWith)
	viper.SetDefault("generation.n_options", cfg.Generation.NOptions)
	viper.SetDefault("generation.n_terms", cfg.Generation.NTerms)
	viper.SetDefault("logger.level", cfg.Logger.Level)
	viper.SetDefault("logger.env", cfg.Logger.Env)

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; anything else is a caller problem.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg.Generation = GenerationConfig{
		Length:     viper.GetInt("generation.length"),
		Types:      viper.GetStringSlice("generation.types"),
		AnswerWith: viper.GetString("generation.answer_with"),
		NOptions:   viper.GetInt("generation.n_options"),
		NTerms:     viper.GetInt("generation.n_terms"),
	}
	cfg.Logger = LoggerConfig{
		Level: viper.GetString("logger.level"),
		Env:   viper.GetString("logger.env"),
	}

	if env := os.Getenv("QUIZGEN_ENV"); env != "" {
		cfg.Logger.Env = env
	}
	if level := os.Getenv("QUIZGEN_LOG_LEVEL"); level != "" {
		cfg.Logger.Level = level
	}

	return cfg, nil
}
