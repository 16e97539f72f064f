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
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path"
	"time"

	"github.com/google/subcommands"

	"github.com/lygwys/cms/auth"
	"github.com/lygwys/cms/logger"
	"github.com/lygwys/cms/store"
)

// TokenCmd issues an API token for an administrator.
type TokenCmd struct {
	configPath string
	userName   string
	ttl        time.Duration
	logLevel   string
	out        io.Writer
}

func (cmd *TokenCmd) Name() string {
	return "token"
}

func (cmd *TokenCmd) Synopsis() string {
	return "issue an API token for an administrator"
}

func (cmd *TokenCmd) Usage() string {
	return fmt.Sprintf(`%v token -user=admin -ttl=12h

Print a bearer token for the named administrator, signed with the configured
JWT secret. The token flags are:
`, path.Base(os.Args[0]))
}

func (cmd *TokenCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&cmd.configPath, "config", defaultConfigPath, "Path of the JSON configuration file")
	f.StringVar(&cmd.userName, "user", "", "User name of the administrator")
	f.DurationVar(&cmd.ttl, "ttl", 12*time.Hour, "Lifetime of the token")
	f.StringVar(&cmd.logLevel, "log-level", "", "Configure the logging level for the command (INFO, DEBUG), overrides the config file")
}

func (cmd *TokenCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var err error
	defer func() {
		if err != nil {
			fmt.Printf("FATAL error: %v\n", err)
		}
	}()
	if cmd.userName == "" || cmd.ttl <= 0 {
		err = fmt.Errorf("a user name and a positive ttl are required")
		return subcommands.ExitUsageError
	}
	cfg, err := loadConfig(cmd.configPath, cmd.logLevel)
	if err != nil {
		return subcommands.ExitUsageError
	}
	if cfg.JWTSecret == "" {
		err = fmt.Errorf("no JWT secret configured, set JWTSecret or CMS_JWT_SECRET")
		return subcommands.ExitUsageError
	}
	if err = logger.InitializeLogger(cfg.LogLevel); err != nil {
		return subcommands.ExitFailure
	}
	defer logger.Log.Sync()

	db, err := openDatabase(ctx, cfg.Database)
	if err != nil {
		return subcommands.ExitFailure
	}
	defer db.Close()
	token, err := issueToken(ctx, store.New(db, cfg.Database.Driver).Administrators, []byte(cfg.JWTSecret), cmd.userName, cmd.ttl)
	if err != nil {
		return subcommands.ExitFailure
	}
	out := cmd.out
	if out == nil {
		out = os.Stdout
	}
	fmt.Fprintln(out, token)
	return subcommands.ExitSuccess
}

func issueToken(ctx context.Context, admins store.AdministratorRepository, secret []byte, userName string, ttl time.Duration) (string, error) {
	admin, err := admins.GetByUserName(ctx, userName)
	if errors.Is(err, store.ErrNotFound) {
		return "", fmt.Errorf("administrator %s does not exist", userName)
	}
	if err != nil {
		return "", err
	}
	return auth.IssueToken(secret, auth.Principal{AdminId: admin.Id, UserName: admin.UserName}, ttl)
}
