package core

import (
	"encoding/json"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults mirror the knobs of the hosted search API: 100 results per page,
// up to 10 pages per query, 1 second between page fetches.
const (
	DefaultPages           = 10
	DefaultIntervalSeconds = 1
)

type Config struct {
	ShodanAPIKey    string `json:"shodan_api_key" yaml:"shodan_api_key"`
	Pages           int    `json:"pages" yaml:"pages"`
	IntervalSeconds int    `json:"interval_seconds" yaml:"interval_seconds"`
}

func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var cfg Config
	if len(path) > 5 && path[len(path)-5:] == ".yaml" {
		err = yaml.NewDecoder(f).Decode(&cfg)
	} else {
		err = json.NewDecoder(f).Decode(&cfg)
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
