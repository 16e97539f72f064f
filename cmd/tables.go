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
	"io"
	"os"
	"path"
	"strings"
	"text/tabwriter"

	"github.com/google/subcommands"

	"github.com/lygwys/cms/schema"
	"github.com/lygwys/cms/updater/tables"
)

// TablesCmd lists the legacy tables the convert command knows about.
type TablesCmd struct {
	columns bool
	out     io.Writer
}

func (cmd *TablesCmd) Name() string {
	return "tables"
}

func (cmd *TablesCmd) Synopsis() string {
	return "list the legacy tables that can be converted"
}

func (cmd *TablesCmd) Usage() string {
	return fmt.Sprintf("%v tables\n\nList every legacy table with the table it converts into.\n", path.Base(os.Args[0]))
}

func (cmd *TablesCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&cmd.columns, "columns", false, "List the column names of every current table instead of counting them")
}

func (cmd *TablesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	out := cmd.out
	if out == nil {
		out = os.Stdout
	}
	registry := tables.Registry()
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "LEGACY TABLE\tCURRENT TABLE\tCOLUMNS")
	for _, name := range tables.Names(registry) {
		info := registry[name]
		if cmd.columns {
			fmt.Fprintf(w, "%s\t%s\t%s\n", name, info.NewTableName, strings.Join(schema.ColumnNames(info.NewColumns), ","))
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%d\n", name, info.NewTableName, len(info.NewColumns))
	}
	if err := w.Flush(); err != nil {
		fmt.Printf("FATAL error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
