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

package store

import (
	"fmt"
	"strings"

	"github.com/lygwys/cms/common/constants"
	"github.com/lygwys/cms/schema"
)

// Dialect renders the parts of a statement that differ between drivers.
type Dialect struct {
	Driver string
}

// Placeholder returns the bind parameter for the n-th argument (1-based).
func (d Dialect) Placeholder(n int) string {
	switch d.Driver {
	case constants.POSTGRES:
		return fmt.Sprintf("$%d", n)
	case constants.SQLSERVER:
		return fmt.Sprintf("@p%d", n)
	case constants.ORACLE:
		return fmt.Sprintf(":%d", n)
	default:
		return "?"
	}
}

// Placeholders returns count comma separated bind parameters starting at
// argument number start.
func (d Dialect) Placeholders(start, count int) string {
	ps := make([]string, 0, count)
	for i := 0; i < count; i++ {
		ps = append(ps, d.Placeholder(start+i))
	}
	return strings.Join(ps, ", ")
}

// Quote quotes an identifier.
func (d Dialect) Quote(name string) string {
	return schema.QuoteIdent(d.Driver, name)
}

// QuoteAll quotes every identifier and joins them with commas.
func (d Dialect) QuoteAll(names []string) string {
	quoted := make([]string, 0, len(names))
	for _, n := range names {
		quoted = append(quoted, d.Quote(n))
	}
	return strings.Join(quoted, ", ")
}

// Limit appends a row limit to a SELECT ending in ORDER BY.
func (d Dialect) Limit(query string, n int) string {
	switch d.Driver {
	case constants.SQLSERVER, constants.ORACLE:
		return fmt.Sprintf("%s OFFSET 0 ROWS FETCH NEXT %d ROWS ONLY", query, n)
	default:
		return fmt.Sprintf("%s LIMIT %d", query, n)
	}
}

// Select builds "SELECT cols FROM table" with every identifier quoted.
func (d Dialect) Select(table string, cols []string) string {
	return fmt.Sprintf("SELECT %s FROM %s", d.QuoteAll(cols), d.Quote(table))
}

// Insert builds a parameterised INSERT for cols.
func (d Dialect) Insert(table string, cols []string) string {
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", d.Quote(table), d.QuoteAll(cols), d.Placeholders(1, len(cols)))
}

// In renders "col IN (...)" for count arguments starting at start.
func (d Dialect) In(col string, start, count int) string {
	return fmt.Sprintf("%s IN (%s)", d.Quote(col), d.Placeholders(start, count))
}

// TableExists builds a query counting the tables named by its one argument.
func (d Dialect) TableExists() string {
	if d.Driver == constants.ORACLE {
		return "SELECT COUNT(*) FROM user_tables WHERE UPPER(table_name) = UPPER(:1)"
	}
	return fmt.Sprintf("SELECT COUNT(*) FROM information_schema.tables WHERE LOWER(table_name) = LOWER(%s)", d.Placeholder(1))
}
