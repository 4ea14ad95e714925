package internal

import (
	"fmt"
	"phish-lab/errors"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type Config struct {
	CorpusPath      string  `env:"CORPUS_PATH,required=true" validate:"required"`
	ModelPath       string  `env:"MODEL_PATH,default=model.json" validate:"required"`
	TestSize        float64 `env:"TEST_SIZE,default=0.2" validate:"gt=0,lt=1"`
	SplitSeed       uint64  `env:"SPLIT_SEED,default=42"`
	Alpha           float64 `env:"ALPHA,default=1" validate:"gt=0"`
	LogLevel        string  `env:"LOG_LEVEL,default=INFO" validate:"required"`
	BadgerFilepath  string  `env:"BADGER_FILEPATH"`
	MetricsFilepath string  `env:"METRICS_FILEPATH"`
	Colours         bool    `env:"COLOURS,default=true"`
}

// LoadConfig reads the trainer settings from the environment and validates
// them.
func LoadConfig() (Config, error) {
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}
	return nil
}
