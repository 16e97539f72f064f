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
	"fmt"
	"sort"
	"time"

	"github.com/lygwys/cms/common/constants"
	"github.com/lygwys/cms/common/utils"
)

// maxUnexpected bounds the number of distinct unexpected conditions kept.
const maxUnexpected = 1000

// Conv contains all state of a legacy table conversion run. A Conv is not
// safe for concurrent use.
type Conv struct {
	RunId         string
	Tables        map[string]string // Legacy table name to current table name.
	Errors        map[string]string // Legacy table name to the error that stopped it.
	Stats         stats
	StartTime     time.Time
	Duration      time.Duration
	sampleBadRows rowSamples
}

type rowSamples struct {
	rows       []*row
	bytes      int64 // Bytes consumed by rows.
	bytesLimit int64 // Limit on bytes consumed by rows.
}

// row is a single legacy data row that could not be converted or written.
type row struct {
	table string
	cols  []string
	vals  []string
}

// A legacy row is either:
// a) successfully mapped and written to the current table (good),
// b) mapped, but the write failed after all retries (bad),
// c) not mappable at all (bad).
type stats struct {
	Rows       map[string]int64 // Rows read, broken down by legacy table.
	GoodRows   map[string]int64 // Rows written (a), broken down by legacy table.
	BadRows    map[string]int64 // Rows that failed (b + c), broken down by legacy table.
	Unexpected map[string]int64 // Count of unexpected conditions, broken down by description.
}

// MakeConv returns a default-configured Conv with a fresh run id.
func MakeConv() *Conv {
	return &Conv{
		RunId:         utils.GenerateName(constants.CONVERSION_RUN_PREFIX),
		Tables:        make(map[string]string),
		Errors:        make(map[string]string),
		StartTime:     time.Now(),
		sampleBadRows: rowSamples{bytesLimit: 10 * 1000 * 1000},
		Stats: stats{
			Rows:       make(map[string]int64),
			GoodRows:   make(map[string]int64),
			BadRows:    make(map[string]int64),
			Unexpected: make(map[string]int64),
		},
	}
}

// AddTable records that oldTable is converted into newTable.
func (conv *Conv) AddTable(oldTable, newTable string) {
	conv.Tables[oldTable] = newTable
}

// SetTableError records the error that stopped the conversion of oldTable.
func (conv *Conv) SetTableError(oldTable string, err error) {
	conv.Errors[oldTable] = err.Error()
}

// TableNames returns the legacy table names seen so far, sorted.
func (conv *Conv) TableNames() []string {
	var l []string
	for t := range conv.Tables {
		l = append(l, t)
	}
	sort.Strings(l)
	return l
}

// StatsAddRow increments the count of rows read from table.
func (conv *Conv) StatsAddRow(table string) {
	conv.Stats.Rows[table]++
}

// StatsAddGoodRow increments the count of rows written for table.
func (conv *Conv) StatsAddGoodRow(table string) {
	conv.Stats.GoodRows[table]++
}

// StatsAddBadRow increments the count of failed rows for table.
func (conv *Conv) StatsAddBadRow(table string) {
	conv.Stats.BadRows[table]++
}

// Unexpected records stats about corner-cases and conditions that were
// not expected. Once maxUnexpected distinct conditions have been seen,
// new ones are dropped but known ones keep counting.
func (conv *Conv) Unexpected(u string) {
	if _, ok := conv.Stats.Unexpected[u]; !ok && len(conv.Stats.Unexpected) >= maxUnexpected {
		return
	}
	conv.Stats.Unexpected[u]++
}

// CollectBadRow updates the list of bad rows, while respecting
// the byte limit for bad rows.
func (conv *Conv) CollectBadRow(table string, cols, vals []string) {
	r := &row{table: table, cols: cols, vals: vals}
	bytes := byteSize(r)
	// Keep at least one bad row.
	if len(conv.sampleBadRows.rows) == 0 || bytes+conv.sampleBadRows.bytes < conv.sampleBadRows.bytesLimit {
		conv.sampleBadRows.rows = append(conv.sampleBadRows.rows, r)
		conv.sampleBadRows.bytes += bytes
	}
}

// SampleBadRows returns a string-formatted list of rows that generated
// errors. Returns at most n rows.
func (conv *Conv) SampleBadRows(n int) []string {
	var l []string
	for _, x := range conv.sampleBadRows.rows {
		if len(l) >= n {
			break
		}
		l = append(l, fmt.Sprintf("table=%s cols=%v data=%v\n", x.table, x.cols, x.vals))
	}
	return l
}

// Rows returns the total count of legacy rows read.
func (conv *Conv) Rows() int64 {
	return sum(conv.Stats.Rows)
}

// GoodRows returns the total count of rows written.
func (conv *Conv) GoodRows() int64 {
	return sum(conv.Stats.GoodRows)
}

// BadRows returns the total count of rows that failed.
func (conv *Conv) BadRows() int64 {
	return sum(conv.Stats.BadRows)
}

// Finish records the duration of the run.
func (conv *Conv) Finish() {
	conv.Duration = time.Since(conv.StartTime)
}

func sum(m map[string]int64) int64 {
	n := int64(0)
	for _, c := range m {
		n += c
	}
	return n
}

func byteSize(r *row) int64 {
	n := int64(len(r.table))
	for _, c := range r.cols {
		n += int64(len(c))
	}
	for _, v := range r.vals {
		n += int64(len(v))
	}
	return n
}
