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

// Package cmd implements the subcommands of the cms binary.
package cmd

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/lygwys/cms/common/constants"
	"github.com/lygwys/cms/config"
	"github.com/lygwys/cms/logger"
	"github.com/lygwys/cms/store"
)

const defaultConfigPath = constants.DEFAULT_CONFIG_FILE

// loadConfig reads the configuration file and lets a non-empty logLevel
// override the configured one.
func loadConfig(path, logLevel string) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	return cfg, nil
}

// openDatabase connects to db and checks that it answers.
func openDatabase(ctx context.Context, db config.Database) (*sql.DB, error) {
	conn, err := store.Open(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("can't open %s database %s on %s: %w", db.Driver, db.Database, db.Host, err)
	}
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("can't reach %s database %s on %s: %w", db.Driver, db.Database, db.Host, err)
	}
	logger.Log.Info("Connected to database", zap.String("driver", db.Driver), zap.String("host", db.Host),
		zap.String("database", db.Database))
	return conn, nil
}
