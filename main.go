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

// Package main implements cms, the administration backend of a multi-site
// content management system. It serves the administration API and converts
// tables of the legacy schema into the current one.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/lygwys/cms/cmd"
	"github.com/lygwys/cms/common/utils"
)

func main() {
	ctx := context.Background()
	lf, err := utils.SetupLogFile()
	if err != nil {
		fmt.Printf("\nCan't set up log file: %v\n", err)
		os.Exit(int(subcommands.ExitFailure))
	}

	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&cmd.WebCmd{}, "")
	subcommands.Register(&cmd.ConvertCmd{}, "")
	subcommands.Register(&cmd.TablesCmd{}, "")
	subcommands.Register(&cmd.ReportCmd{}, "")
	subcommands.Register(&cmd.SetupCmd{}, "")
	subcommands.Register(&cmd.TokenCmd{}, "")
	flag.Parse()
	status := subcommands.Execute(ctx)
	utils.Close(lf)
	os.Exit(int(status))
}
