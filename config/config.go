// Copyright 2024 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the JSON configuration used by the web and convert
// commands. Values missing from the file are read from environment
// variables.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/lygwys/cms/common/constants"
)

// SSHTunnel describes an optional bastion used to reach a database.
type SSHTunnel struct {
	User    string `json:"User"`
	Host    string `json:"Host"`
	Port    int    `json:"Port"`
	KeyPath string `json:"KeyPath"`
}

// Database contains the parameters needed to make a direct database connection.
type Database struct {
	Driver   string     `json:"Driver"`
	Host     string     `json:"Host"`
	Port     string     `json:"Port"`
	Database string     `json:"Database"`
	User     string     `json:"User"`
	Password string     `json:"Password"`
	SSH      *SSHTunnel `json:"SSH,omitempty"`
}

// CreateWorker configures the background page generation worker.
type CreateWorker struct {
	Enabled             bool `json:"Enabled"`
	PollIntervalSeconds int  `json:"PollIntervalSeconds"`
	TasksPerSecond      int  `json:"TasksPerSecond"`
}

// Config is the whole application configuration.
type Config struct {
	Port            int          `json:"Port"`
	LogLevel        string       `json:"LogLevel"`
	Database        Database     `json:"Database"`
	LegacyDatabase  Database     `json:"LegacyDatabase"`
	JWTSecret       string       `json:"JWTSecret"`
	CacheTTLSeconds int          `json:"CacheTTLSeconds"`
	CreateWorker    CreateWorker `json:"CreateWorker"`
	ReportPath      string       `json:"ReportPath"`
}

// Load reads the configuration at path. A missing file is not an error:
// environment variables and defaults are used instead.
func Load(path string) (Config, error) {
	var c Config
	content, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return c, fmt.Errorf("can't read config file %s: %w", path, err)
	}
	if err == nil {
		if err := json.Unmarshal(content, &c); err != nil {
			return c, fmt.Errorf("can't parse config file %s: %w", path, err)
		}
	}
	applyEnv(&c)
	applyDefaults(&c)
	return c, nil
}

// Save writes c to path as indented JSON.
func Save(path string, c Config) error {
	content, err := json.MarshalIndent(c, "", " ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, content, 0600)
}

func applyEnv(c *Config) {
	fillDatabase(&c.Database, "CMS_DB_")
	fillDatabase(&c.LegacyDatabase, "CMS_LEGACY_DB_")
	if c.JWTSecret == "" {
		c.JWTSecret = os.Getenv("CMS_JWT_SECRET")
	}
	if c.LogLevel == "" {
		c.LogLevel = os.Getenv("CMS_LOG_LEVEL")
	}
	if c.Port == 0 {
		if p, err := strconv.Atoi(os.Getenv("CMS_PORT")); err == nil {
			c.Port = p
		}
	}
}

func fillDatabase(db *Database, prefix string) {
	setIfEmpty(&db.Driver, prefix+"DRIVER")
	setIfEmpty(&db.Host, prefix+"HOST")
	setIfEmpty(&db.Port, prefix+"PORT")
	setIfEmpty(&db.Database, prefix+"DATABASE")
	setIfEmpty(&db.User, prefix+"USER")
	setIfEmpty(&db.Password, prefix+"PASSWORD")
}

func setIfEmpty(field *string, env string) {
	if *field == "" {
		*field = os.Getenv(env)
	}
}

func applyDefaults(c *Config) {
	if c.Port == 0 {
		c.Port = constants.DEFAULT_PORT
	}
	if c.LogLevel == "" {
		c.LogLevel = "INFO"
	}
	if c.CacheTTLSeconds <= 0 {
		c.CacheTTLSeconds = constants.DEFAULT_CACHE_TTL_SECONDS
	}
	if c.Database.Driver == "" {
		c.Database.Driver = constants.MYSQL
	}
	if c.LegacyDatabase.Driver == "" {
		c.LegacyDatabase.Driver = c.Database.Driver
	}
	if c.CreateWorker.PollIntervalSeconds <= 0 {
		c.CreateWorker.PollIntervalSeconds = 5
	}
	if c.CreateWorker.TasksPerSecond <= 0 {
		c.CreateWorker.TasksPerSecond = 10
	}
}
