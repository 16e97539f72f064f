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

package schema

import (
	"fmt"
	"strings"

	"github.com/lygwys/cms/common/constants"
)

const defaultVarCharLength = 255

// QuoteIdent quotes a table or column name for driver.
func QuoteIdent(driver, name string) string {
	switch driver {
	case constants.MYSQL:
		return "`" + name + "`"
	case constants.SQLSERVER:
		return "[" + name + "]"
	default:
		return `"` + name + `"`
	}
}

// ToDDL returns the CREATE TABLE statement for t on driver.
func ToDDL(driver string, t Table) (string, error) {
	if t.Name == "" {
		return "", fmt.Errorf("bad parameter: table name is empty")
	}
	if len(t.Columns) == 0 {
		return "", fmt.Errorf("table %s has no columns", t.Name)
	}
	var defs, pks []string
	for _, c := range t.Columns {
		colType, err := toType(driver, c)
		if err != nil {
			return "", fmt.Errorf("table %s: %w", t.Name, err)
		}
		defs = append(defs, fmt.Sprintf("%s %s", QuoteIdent(driver, c.AttributeName), colType))
		if c.IsPrimaryKey {
			pks = append(pks, QuoteIdent(driver, c.AttributeName))
		}
	}
	if len(pks) > 0 {
		defs = append(defs, fmt.Sprintf("PRIMARY KEY (%s)", strings.Join(pks, ", ")))
	}
	return fmt.Sprintf("CREATE TABLE %s (\n\t%s\n)", QuoteIdent(driver, t.Name), strings.Join(defs, ",\n\t")), nil
}

func toType(driver string, c TableColumn) (string, error) {
	length := c.DataLength
	if length <= 0 {
		length = defaultVarCharLength
	}
	switch driver {
	case constants.MYSQL:
		switch c.DataType {
		case Integer:
			if c.IsIdentity {
				return "INT NOT NULL AUTO_INCREMENT", nil
			}
			return "INT", nil
		case Boolean:
			return "TINYINT(1)", nil
		case DateTime:
			return "DATETIME", nil
		case Decimal:
			return "DECIMAL(18, 2)", nil
		case Text:
			return "LONGTEXT", nil
		case VarChar:
			return fmt.Sprintf("VARCHAR(%d)", length), nil
		}
	case constants.POSTGRES:
		switch c.DataType {
		case Integer:
			if c.IsIdentity {
				return "SERIAL", nil
			}
			return "INTEGER", nil
		case Boolean:
			return "BOOLEAN", nil
		case DateTime:
			return "TIMESTAMP", nil
		case Decimal:
			return "NUMERIC(18, 2)", nil
		case Text:
			return "TEXT", nil
		case VarChar:
			return fmt.Sprintf("VARCHAR(%d)", length), nil
		}
	case constants.SQLSERVER:
		switch c.DataType {
		case Integer:
			if c.IsIdentity {
				return "INT IDENTITY(1,1)", nil
			}
			return "INT", nil
		case Boolean:
			return "BIT", nil
		case DateTime:
			return "DATETIME", nil
		case Decimal:
			return "DECIMAL(18, 2)", nil
		case Text:
			return "NVARCHAR(MAX)", nil
		case VarChar:
			return fmt.Sprintf("NVARCHAR(%d)", length), nil
		}
	case constants.ORACLE:
		switch c.DataType {
		case Integer:
			if c.IsIdentity {
				return "NUMBER GENERATED BY DEFAULT ON NULL AS IDENTITY", nil
			}
			return "NUMBER", nil
		case Boolean:
			return "NUMBER(1)", nil
		case DateTime:
			return "TIMESTAMP(6) WITH TIME ZONE", nil
		case Decimal:
			return "NUMBER(38, 2)", nil
		case Text:
			return "NCLOB", nil
		case VarChar:
			return fmt.Sprintf("NVARCHAR2(%d)", length), nil
		}
	default:
		return "", fmt.Errorf("driver '%s' is not supported", driver)
	}
	return "", fmt.Errorf("column %s has unknown data type %q", c.AttributeName, c.DataType)
}
