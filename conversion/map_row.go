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

package conversion

import (
	"fmt"

	"github.com/lygwys/cms/schema"
	"github.com/lygwys/cms/updater"
)

// MapRow renames the columns of one legacy row and translates its values.
// Columns that have no counterpart in info.NewColumns are left out and
// returned in dropped. A column mapped twice keeps its first value.
func MapRow(info updater.ConvertInfo, cols []string, vals []any) (newCols []string, newVals []any, dropped []string) {
	seen := make(map[string]bool, len(cols))
	for i, c := range cols {
		col, ok := schema.FindColumn(info.NewColumns, info.ConvertKey(c))
		if !ok || seen[col.AttributeName] {
			dropped = append(dropped, c)
			continue
		}
		seen[col.AttributeName] = true
		newCols = append(newCols, col.AttributeName)
		newVals = append(newVals, info.ConvertValue(col.AttributeName, vals[i]))
	}
	return newCols, newVals, dropped
}

// valsToStrings renders a row for bad row samples.
func valsToStrings(vals []any) []string {
	l := make([]string, 0, len(vals))
	for _, v := range vals {
		switch t := v.(type) {
		case nil:
			l = append(l, "NULL")
		case []byte:
			l = append(l, string(t))
		default:
			l = append(l, fmt.Sprint(t))
		}
	}
	return l
}
