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

// Package schema provides a generic representation of the CMS tables.
// It keeps just enough about each column to create the table on any of
// the supported databases and to map legacy rows onto it.
package schema

import "strings"

// DataType is the portable type of a column.
type DataType string

const (
	Boolean  DataType = "Boolean"
	DateTime DataType = "DateTime"
	Decimal  DataType = "Decimal"
	Integer  DataType = "Integer"
	Text     DataType = "Text"
	VarChar  DataType = "VarChar"
)

// TableColumn represents one column of a current table.
type TableColumn struct {
	AttributeName string
	DataType      DataType
	DataLength    int // Only meaningful for VarChar.
	IsPrimaryKey  bool
	IsIdentity    bool
}

// Table is a named, ordered list of columns.
type Table struct {
	Name    string
	Columns []TableColumn
}

// ColumnNames returns the attribute names of columns in order.
func ColumnNames(columns []TableColumn) []string {
	names := make([]string, 0, len(columns))
	for _, c := range columns {
		names = append(names, c.AttributeName)
	}
	return names
}

// FindColumn looks up a column by name, ignoring case.
func FindColumn(columns []TableColumn, name string) (TableColumn, bool) {
	for _, c := range columns {
		if strings.EqualFold(c.AttributeName, name) {
			return c, true
		}
	}
	return TableColumn{}, false
}

// HasColumn reports whether a column named name exists, ignoring case.
func HasColumn(columns []TableColumn, name string) bool {
	_, ok := FindColumn(columns, name)
	return ok
}
