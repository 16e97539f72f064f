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

// Package conversion copies rows from legacy tables into the current
// tables, as described by updater.ConvertInfo descriptors.
package conversion

import (
	"fmt"
	"sort"

	"github.com/lygwys/cms/schema"
	"github.com/lygwys/cms/updater"
)

// ValidationError reports a descriptor that cannot be executed.
type ValidationError struct {
	Table  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid conversion descriptor for %s: %s", e.Table, e.Reason)
}

// Validate checks that info names a current table with columns, and that
// every renamed column exists in that table.
func Validate(info updater.ConvertInfo) error {
	if info.NewTableName == "" {
		return &ValidationError{Table: info.OldTableName, Reason: "no current table name"}
	}
	if len(info.NewColumns) == 0 {
		return &ValidationError{Table: info.OldTableName, Reason: "no current columns"}
	}
	var olds []string
	for old := range info.ConvertKeyDict {
		olds = append(olds, old)
	}
	sort.Strings(olds)
	for _, old := range olds {
		if nc := info.ConvertKeyDict[old]; !schema.HasColumn(info.NewColumns, nc) {
			return &ValidationError{
				Table:  info.OldTableName,
				Reason: fmt.Sprintf("column %s is renamed to %s, which is not a column of %s", old, nc, info.NewTableName),
			}
		}
	}
	return nil
}
