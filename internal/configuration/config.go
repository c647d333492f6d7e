package configuration

import (
	"encoding/json"
	"os"
	"strconv"
)

const defaultAppPort = 8000

type MongoConfig struct {
	Uri      string `json:"uri"`
	Database string `json:"database"`
}

type ServerConfig struct {
	AppPort int `json:"app_port"`
}

type Config struct {
	Mongo  MongoConfig  `json:"mongo"`
	Server ServerConfig `json:"server"`
}

// LoadConfig reads the JSON config file and then applies environment
// overrides (DATABASE_URL, DATABASE_NAME, PORT). A missing file is not an
// error; deployments that configure everything through the environment
// ship no file at all.
func LoadConfig(config_path string) (*Config, error) {
	var config Config

	if config_path != "" {
		file, err := os.ReadFile(config_path)
		if err == nil {
			if err := json.Unmarshal(file, &config); err != nil {
				return nil, err
			}
		} else if !os.IsNotExist(err) {
			return nil, err
		}
	}

	if uri := os.Getenv("DATABASE_URL"); uri != "" {
		config.Mongo.Uri = uri
	}
	if name := os.Getenv("DATABASE_NAME"); name != "" {
		config.Mongo.Database = name
	}
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.AppPort = p
		}
	}

	if config.Server.AppPort == 0 {
		config.Server.AppPort = defaultAppPort
	}

	return &config, nil
}
