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

package internal

import (
	"bufio"
	"fmt"
	"sort"
	"strings"
)

// maxSampleBadRows is the number of bad rows printed in a report.
const maxSampleBadRows = 100

// GenerateReport writes a text report of conv to w and returns the summary
// line.
func GenerateReport(conv *Conv, w *bufio.Writer) string {
	summary := GenerateSummary(conv)
	writeHeading(w, "Summary of Conversion")
	fmt.Fprintf(w, "Run id: %s\n", conv.RunId)
	w.WriteString(summary)
	w.WriteString("\n")
	if conv.Duration.Microseconds() != 0 {
		fmt.Fprintf(w, "Conversion duration: %s\n", conv.Duration)
	}
	w.WriteString("\n")
	for _, t := range conv.TableNames() {
		h := fmt.Sprintf("Table %s", t)
		if nt := conv.Tables[t]; nt != t {
			h = h + fmt.Sprintf(" (mapped to %s)", nt)
		}
		writeHeading(w, h)
		if msg, ok := conv.Errors[t]; ok {
			fmt.Fprintf(w, "Conversion failed: %s\n", msg)
		}
		rows, bad := conv.Stats.Rows[t], conv.Stats.BadRows[t]
		fmt.Fprintf(w, "Data conversion: %s.\n\n", rateData(rows, bad))
	}
	writeUnexpectedConditions(conv, w)
	if l := conv.SampleBadRows(maxSampleBadRows); len(l) > 0 {
		writeHeading(w, "Sample of Bad Rows")
		for _, r := range l {
			w.WriteString(r)
		}
		w.WriteString("\n")
	}
	return summary
}

// GenerateSummary rates the run as a whole.
func GenerateSummary(conv *Conv) string {
	failed := len(conv.Errors)
	s := fmt.Sprintf("Converted %d of %d tables. Data conversion: %s.\n",
		len(conv.Tables)-failed, len(conv.Tables), rateData(conv.Rows(), conv.BadRows()))
	return s
}

func rateData(rows int64, badRows int64) string {
	s := fmt.Sprintf(" (%s%% of %d rows written)", pct(rows, badRows), rows)
	switch {
	case rows == 0:
		return "NONE (no data rows found)"
	case badRows == 0:
		return fmt.Sprintf("EXCELLENT (all %d rows written)", rows)
	case good(rows, badRows):
		return "GOOD" + s
	case ok(rows, badRows):
		return "OK" + s
	default:
		return "POOR" + s
	}
}

func good(total, badCount int64) bool {
	return badCount < total/20
}

func ok(total, badCount int64) bool {
	return badCount < total/3
}

func writeUnexpectedConditions(conv *Conv, w *bufio.Writer) {
	writeHeading(w, "Unexpected Conditions")
	if len(conv.Stats.Unexpected) == 0 {
		w.WriteString("There were no unexpected conditions encountered during processing.\n\n")
		return
	}
	w.WriteString("For debugging only. The list details all unexpected conditions\n")
	w.WriteString("encountered while reading legacy rows.\n")
	w.WriteString("  --------------------------------------\n")
	fmt.Fprintf(w, "  %6s  %s\n", "count", "condition")
	w.WriteString("  --------------------------------------\n")
	var l []string
	for s := range conv.Stats.Unexpected {
		l = append(l, s)
	}
	sort.Strings(l)
	for _, s := range l {
		fmt.Fprintf(w, "  %6d  %s\n", conv.Stats.Unexpected[s], s)
	}
	w.WriteString("\n")
}

// pct prints a percentage representation of (total-bad)/total
func pct(total, bad int64) string {
	if bad == 0 || total == 0 {
		return "100"
	}
	pct := 100.0 * float64(total-bad) / float64(total)
	if pct > 99.9 {
		return fmt.Sprintf("%2.5f", pct)
	}
	if pct > 95.0 {
		return fmt.Sprintf("%2.3f", pct)
	}
	return fmt.Sprintf("%2.0f", pct)
}

func writeHeading(w *bufio.Writer, s string) {
	w.WriteString(strings.Join([]string{
		"----------------------------\n",
		s, "\n",
		"----------------------------\n"}, ""))
}
