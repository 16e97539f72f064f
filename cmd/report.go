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

	"github.com/google/subcommands"

	"github.com/lygwys/cms/conversion"
)

// ReportCmd prints a conversion report written by an earlier convert run.
type ReportCmd struct {
	out io.Writer
}

func (cmd *ReportCmd) Name() string {
	return "report"
}

func (cmd *ReportCmd) Synopsis() string {
	return "print a stored conversion report"
}

func (cmd *ReportCmd) Usage() string {
	return fmt.Sprintf(`%v report <path>

Print the conversion report stored at a local path or a gs://bucket/object path.
`, path.Base(os.Args[0]))
}

func (cmd *ReportCmd) SetFlags(f *flag.FlagSet) {}

func (cmd *ReportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Println("report takes exactly one path")
		return subcommands.ExitUsageError
	}
	out := cmd.out
	if out == nil {
		out = os.Stdout
	}
	report, err := conversion.ReadReport(ctx, f.Arg(0))
	if err != nil {
		fmt.Printf("FATAL error: %v\n", err)
		return subcommands.ExitFailure
	}
	if _, err := io.WriteString(out, report); err != nil {
		fmt.Printf("FATAL error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
