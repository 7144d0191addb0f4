package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/fishy/errbatch"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"gcsfake/internal/infrastructure/broker"
)

// Config represents the configs used by services on system.
type Config struct {
	Environment     string                 `yaml:"environment"`
	Server          ServerConfig           `yaml:"server"`
	Storage         StorageConfig          `yaml:"storage"`
	BrokerConfig    broker.Config          `yaml:"redis_broker_config"`
	PublisherConfig broker.PublisherConfig `yaml:"publisher_config"`
	Logger          logger.Config          `yaml:"logger"`
}

type ServerConfig struct {
	// Bind is the listen address, Address the public base URL put in
	// object links.
	Bind    string `yaml:"bind"`
	Address string `yaml:"address"`
}

type StorageConfig struct {
	Buckets    []BucketConfig `yaml:"buckets"`
	FixtureDir string         `yaml:"fixture_dir"`
	Workers    int            `yaml:"loader_workers"`
}

type BucketConfig struct {
	Name        string   `yaml:"name"`
	Permissions []string `yaml:"permissions"`
}

// NotificationsEnabled reports whether object notifications go to redis.
func (c *Config) NotificationsEnabled() bool {
	return c.BrokerConfig.URI != ""
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}
	defer file.Close()

	config := &Config{}

	decoder := yaml.NewDecoder(file)

	if err := decoder.Decode(config); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	if config.Environment != "prod" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, Error{
				reason: err.Error(),
			}
		}
	}

	if uri := os.Getenv("BROKER_URI"); uri != "" {
		config.BrokerConfig.URI = uri
	}

	if err = config.basicCheck(); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	return config, nil
}

// basicCheck validates the basic stuff in config and reports every problem
// found.
func (c *Config) basicCheck() error {
	var errs errbatch.ErrBatch

	if c.Server.Bind == "" {
		errs.Add(errors.New("server.bind is required"))
	}

	if c.Server.Address == "" && c.Server.Bind != "" {
		c.Server.Address = "http://" + c.Server.Bind
	}

	seen := make(map[string]struct{}, len(c.Storage.Buckets))
	for i, b := range c.Storage.Buckets {
		if b.Name == "" {
			errs.Add(fmt.Errorf("storage.buckets[%d] has no name", i))

			continue
		}
		if _, ok := seen[b.Name]; ok {
			errs.Add(fmt.Errorf("bucket %s is configured twice", b.Name))
		}
		seen[b.Name] = struct{}{}
	}

	if c.Storage.Workers < 0 {
		errs.Add(errors.New("storage.loader_workers must not be negative"))
	}

	if c.NotificationsEnabled() && (c.BrokerConfig.StreamName == "" || c.BrokerConfig.GroupName == "") {
		errs.Add(errors.New("redis_broker_config needs stream_name and group_name"))
	}

	return errs.Compile()
}
