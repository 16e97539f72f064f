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

// Package updater describes how legacy tables map onto current ones.
//
// A ConvertInfo is plain data: the legacy table name, the current table
// and its columns, and two optional rename dictionaries. A nil or empty
// dictionary means every name or value is carried over unchanged; an
// entry overrides that one name or value only. Nothing here validates a
// descriptor, that is left to the conversion executor.
package updater

import (
	"strings"

	"github.com/lygwys/cms/schema"
)

// valueKeySeparator joins a column and a value into a scoped value key.
const valueKeySeparator = "$"

type ConvertInfo struct {
	OldTableName string
	NewTableName string
	NewColumns   []schema.TableColumn
	// ConvertKeyDict maps a legacy column name to its current name.
	ConvertKeyDict map[string]string
	// ConvertValueDict maps a legacy value to its current value. Keys are
	// either a bare value or a value scoped to one current column, see
	// ValueKey.
	ConvertValueDict map[string]string
}

// ValueKey scopes value to column for use in ConvertValueDict.
func ValueKey(column, value string) string {
	return column + valueKeySeparator + value
}

// ConvertKey returns the current column name for a legacy column.
func (c ConvertInfo) ConvertKey(oldColumn string) string {
	if len(c.ConvertKeyDict) == 0 {
		return oldColumn
	}
	if k, ok := c.ConvertKeyDict[oldColumn]; ok {
		return k
	}
	for old, k := range c.ConvertKeyDict {
		if strings.EqualFold(old, oldColumn) {
			return k
		}
	}
	return oldColumn
}

// ConvertValue returns the current value for a legacy value stored in
// newColumn. Only string values are ever translated.
func (c ConvertInfo) ConvertValue(newColumn string, value any) any {
	if len(c.ConvertValueDict) == 0 {
		return value
	}
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return value
	}
	if nv, ok := c.ConvertValueDict[ValueKey(newColumn, s)]; ok {
		return nv
	}
	if nv, ok := c.ConvertValueDict[s]; ok {
		return nv
	}
	return value
}
