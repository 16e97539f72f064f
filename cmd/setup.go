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

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/google/subcommands"
	"go.uber.org/zap"

	"github.com/lygwys/cms/config"
	"github.com/lygwys/cms/logger"
	"github.com/lygwys/cms/store"
)

// SetupCmd creates the tables of the current schema that do not exist yet.
type SetupCmd struct {
	configPath  string
	writeConfig bool
	logLevel    string
}

func (cmd *SetupCmd) Name() string {
	return "setup"
}

func (cmd *SetupCmd) Synopsis() string {
	return "create the tables of the current schema"
}

func (cmd *SetupCmd) Usage() string {
	return fmt.Sprintf(`%v setup -config=cms.json [-write-config]

Create every table of the current schema that is missing from the configured
database. Existing tables are left untouched. The setup flags are:
`, path.Base(os.Args[0]))
}

func (cmd *SetupCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&cmd.configPath, "config", defaultConfigPath, "Path of the JSON configuration file")
	f.BoolVar(&cmd.writeConfig, "write-config", false, "Write the effective configuration, including environment overrides, back to the config file")
	f.StringVar(&cmd.logLevel, "log-level", "", "Configure the logging level for the command (INFO, DEBUG), overrides the config file")
}

func (cmd *SetupCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var err error
	defer func() {
		if err != nil {
			fmt.Printf("FATAL error: %v\n", err)
		}
	}()
	cfg, err := loadConfig(cmd.configPath, cmd.logLevel)
	if err != nil {
		return subcommands.ExitUsageError
	}
	if err = logger.InitializeLogger(cfg.LogLevel); err != nil {
		return subcommands.ExitFailure
	}
	defer logger.Log.Sync()
	if cmd.writeConfig {
		if err = config.Save(cmd.configPath, cfg); err != nil {
			return subcommands.ExitFailure
		}
		logger.Log.Info("Wrote configuration", zap.String("path", cmd.configPath))
	}

	db, err := openDatabase(ctx, cfg.Database)
	if err != nil {
		return subcommands.ExitFailure
	}
	defer db.Close()

	var lookupErr error
	existing := func(name string) bool {
		ok, err := store.TableExists(ctx, db, cfg.Database.Driver, name)
		if err != nil && lookupErr == nil {
			lookupErr = err
		}
		return ok
	}
	if err = store.CreateTables(ctx, db, cfg.Database.Driver, existing); err != nil {
		return subcommands.ExitFailure
	}
	if err = lookupErr; err != nil {
		return subcommands.ExitFailure
	}
	logger.Log.Info("Current schema is in place", zap.String("database", cfg.Database.Database))
	return subcommands.ExitSuccess
}
