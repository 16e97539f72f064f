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
	"os/signal"
	"path"
	"syscall"
	"time"

	"github.com/google/subcommands"
	"github.com/pkg/browser"
	"go.uber.org/zap"

	"github.com/lygwys/cms/auth"
	"github.com/lygwys/cms/caches"
	"github.com/lygwys/cms/create"
	"github.com/lygwys/cms/logger"
	"github.com/lygwys/cms/store"
	"github.com/lygwys/cms/web"
)

// WebCmd serves the administration API.
type WebCmd struct {
	configPath string
	logLevel   string
	port       int
	open       bool
}

func (cmd *WebCmd) Name() string {
	return "web"
}

func (cmd *WebCmd) Synopsis() string {
	return "serve the administration API"
}

func (cmd *WebCmd) Usage() string {
	return fmt.Sprintf(`%v web -config=cms.json -port=8080

Serve the administration API. Database settings are read from the config
file, falling back to CMS_DB_* environment variables. When the create worker
is enabled in the config, queued page generation tasks are processed in the
same process. The web flags are:
`, path.Base(os.Args[0]))
}

func (cmd *WebCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&cmd.configPath, "config", defaultConfigPath, "Path of the JSON configuration file")
	f.StringVar(&cmd.logLevel, "log-level", "", "Configure the logging level for the command (INFO, DEBUG), overrides the config file")
	f.IntVar(&cmd.port, "port", 0, "Port to listen on, overrides the config file")
	f.BoolVar(&cmd.open, "open", false, "Open the metrics page in a browser once the server is up")
}

func (cmd *WebCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig(cmd.configPath, cmd.logLevel)
	if err != nil {
		fmt.Printf("FATAL error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := logger.InitializeLogger(cfg.LogLevel); err != nil {
		fmt.Println("Error initialising logger, did you specify a valid log-level? [DEBUG, INFO, WARN, ERROR, FATAL]", err)
		return subcommands.ExitFailure
	}
	defer logger.Log.Sync()
	if cmd.port > 0 {
		cfg.Port = cmd.port
	}
	if cfg.JWTSecret == "" {
		logger.Log.Error("No JWT secret configured, set JWTSecret or CMS_JWT_SECRET")
		return subcommands.ExitUsageError
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := openDatabase(ctx, cfg.Database)
	if err != nil {
		logger.Log.Error("Can't connect to database", zap.Error(err))
		return subcommands.ExitFailure
	}
	defer db.Close()

	repos := store.New(db, cfg.Database.Driver)
	managers, err := caches.New(repos, time.Duration(cfg.CacheTTLSeconds)*time.Second)
	if err != nil {
		logger.Log.Error("Can't create caches", zap.Error(err))
		return subcommands.ExitFailure
	}
	creator := create.NewManager(repos.CreateTasks, managers.Channels)
	handlers := web.NewHandlers(repos, managers, &auth.TokenAuthenticator{Secret: []byte(cfg.JWTSecret)}, creator)

	if cfg.CreateWorker.Enabled {
		svc := create.NewService(repos.CreateTasks, create.LogGenerator{},
			time.Duration(cfg.CreateWorker.PollIntervalSeconds)*time.Second, cfg.CreateWorker.TasksPerSecond)
		go svc.Run(ctx)
	}
	if cmd.open {
		go openBrowser(fmt.Sprintf("http://localhost:%d/metrics", cfg.Port))
	}

	if err := web.App(ctx, fmt.Sprintf(":%d", cfg.Port), web.GetRoutes(handlers)); err != nil {
		logger.Log.Error("Server stopped", zap.Error(err))
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func openBrowser(url string) {
	time.Sleep(500 * time.Millisecond)
	if err := browser.OpenURL(url); err != nil {
		logger.Log.Warn("Can't open browser", zap.String("url", url), zap.Error(err))
	}
}
