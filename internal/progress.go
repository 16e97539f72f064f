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

// Package internal holds the state and reporting of a legacy table
// conversion run.
package internal

import (
	"fmt"
	"io"
)

// Progress reports what percentage of a table conversion is complete,
// overwriting the previous percentage on the console.
type Progress struct {
	out      io.Writer
	total    int64  // Rows to convert.
	progress int64  // Rows converted so far.
	pct      int    // Percentage done i.e. progress/total * 100
	message  string // Name of task being monitored.
	verbose  bool   // If true, print one line per step.
}

// NewProgressTo creates a Progress writing to out.
func NewProgressTo(out io.Writer, total int64, message string, verbose bool) *Progress {
	p := &Progress{out: out, total: total, message: message, verbose: verbose}
	if total == 0 {
		p.pct = 100
	}
	p.report(true)
	return p
}

// MaybeReport updates the state of p with the new 'progress' measure.
// If this update changes pct (integer part of percentage-done),
// MaybeReport prints the new percentage.
func (p *Progress) MaybeReport(progress int64) {
	if progress <= p.progress {
		return
	}
	p.progress = progress
	pct := 100
	if p.total > 0 {
		pct = min(int((progress*100)/p.total), 100)
	}
	if pct > p.pct {
		p.pct = pct
		p.report(false)
	}
}

// Done signals completion, and will report 100% if it hasn't already
// been reported.
func (p *Progress) Done() {
	if p.pct < 100 {
		p.pct = 100
		p.report(false)
	}
}

func (p *Progress) report(firstCall bool) {
	if p.verbose {
		fmt.Fprintf(p.out, "%s: %2d%%\n", p.message, p.pct)
		return
	}
	if firstCall {
		fmt.Fprintf(p.out, "%s: %2d%%", p.message, p.pct)
	} else {
		fmt.Fprintf(p.out, "\b\b\b%2d%%", p.pct)
	}
	if p.pct == 100 {
		fmt.Fprintf(p.out, "\n")
	}
}
