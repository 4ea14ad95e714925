package test

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// PHISH_CORPUS_PATH points at a real corpus to train on in addition to the fixture
	CorpusPath string  `envconfig:"PHISH_CORPUS_PATH"`
	TestSize   float64 `envconfig:"PHISH_TEST_SIZE" default:"0.2"`
	SplitSeed  uint64  `envconfig:"PHISH_SPLIT_SEED" default:"42"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
