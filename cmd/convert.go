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

	"github.com/lygwys/cms/conversion"
	"github.com/lygwys/cms/internal"
	"github.com/lygwys/cms/logger"
	"github.com/lygwys/cms/profiles"
	"github.com/lygwys/cms/updater/tables"
)

// ConvertCmd copies legacy tables into the current schema.
type ConvertCmd struct {
	configPath    string
	sourceProfile string
	targetProfile string
	tables        string
	report        string
	rate          int
	verbose       bool
	logLevel      string
}

func (cmd *ConvertCmd) Name() string {
	return "convert"
}

func (cmd *ConvertCmd) Synopsis() string {
	return "convert legacy tables into the current schema"
}

func (cmd *ConvertCmd) Usage() string {
	return fmt.Sprintf(`%v convert -source-profile="host=old,db_name=cms" -target-profile="db_name=cms_new" -tables=bairong_Administrator,...

Copy the rows of legacy tables into the current tables, creating the current
tables when missing. Connection parameters not given in a profile are taken
from LegacyDatabase (source) and Database (target) in the config file. A
report of the run is written locally or to a gs:// path. The convert flags are:
`, path.Base(os.Args[0]))
}

func (cmd *ConvertCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&cmd.configPath, "config", defaultConfigPath, "Path of the JSON configuration file")
	f.StringVar(&cmd.sourceProfile, "source-profile", "", "Connection profile of the legacy database e.g., \"driver=mysql,host=old-db,user=cms,db_name=cms\"")
	f.StringVar(&cmd.targetProfile, "target-profile", "", "Connection profile of the current database e.g., \"driver=postgres,host=db,db_name=cms\"")
	f.StringVar(&cmd.tables, "tables", "", "Comma separated legacy tables to convert, defaults to every known table")
	f.StringVar(&cmd.report, "report", "", "Report file, directory (ending in /) or gs:// path, defaults to the config ReportPath")
	f.IntVar(&cmd.rate, "rate", 0, "Maximum rows written per second, 0 for no limit")
	f.BoolVar(&cmd.verbose, "verbose", false, "Print progress while converting")
	f.StringVar(&cmd.logLevel, "log-level", "", "Configure the logging level for the command (INFO, DEBUG), overrides the config file")
}

func (cmd *ConvertCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	source, err := profiles.NewDatabaseProfile(cmd.sourceProfile, cfg.LegacyDatabase)
	if err != nil {
		return subcommands.ExitUsageError
	}
	target, err := profiles.NewDatabaseProfile(cmd.targetProfile, cfg.Database)
	if err != nil {
		return subcommands.ExitUsageError
	}
	names, err := profiles.ParseList(cmd.tables)
	if err != nil {
		return subcommands.ExitUsageError
	}
	registry := tables.Registry()
	for _, n := range names {
		if _, ok := registry[n]; !ok {
			err = fmt.Errorf("unknown legacy table %s, see the tables command", n)
			return subcommands.ExitUsageError
		}
	}

	srcDB, err := openDatabase(ctx, source)
	if err != nil {
		return subcommands.ExitFailure
	}
	defer srcDB.Close()
	dstDB, err := openDatabase(ctx, target)
	if err != nil {
		return subcommands.ExitFailure
	}
	defer dstDB.Close()

	e := conversion.NewExecutor(&conversion.SQLSource{DB: srcDB, Driver: source.Driver}, conversion.NewSQLSink(dstDB, target.Driver), cmd.rate)
	e.Verbose = cmd.verbose
	runErr := e.Run(ctx, registry, names)
	fmt.Print(internal.GenerateSummary(e.Conv))

	reportPath := cmd.report
	if reportPath == "" {
		reportPath = cfg.ReportPath
	}
	written, err := conversion.WriteReport(ctx, e.Conv, reportPath)
	if err != nil {
		return subcommands.ExitFailure
	}
	fmt.Printf("Wrote report to %s\n", written)
	if runErr != nil {
		logger.Log.Error("Some tables failed to convert", zap.Error(runErr))
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
