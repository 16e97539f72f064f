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
	"context"
	"database/sql"
	"fmt"

	"github.com/lygwys/cms/store"
)

// Source reads legacy tables.
type Source interface {
	TableExists(ctx context.Context, table string) (bool, error)
	RowCount(ctx context.Context, table string) (int64, error)
	// ReadRows calls each for every row of table. Returning an error from
	// each stops the scan.
	ReadRows(ctx context.Context, table string, each func(cols []string, vals []any) error) error
}

// SQLSource reads legacy tables through database/sql.
type SQLSource struct {
	DB     *sql.DB
	Driver string
}

func (s *SQLSource) dialect() store.Dialect {
	return store.Dialect{Driver: s.Driver}
}

func (s *SQLSource) TableExists(ctx context.Context, table string) (bool, error) {
	return store.TableExists(ctx, s.DB, s.Driver, table)
}

// RowCount with number of rows in table.
func (s *SQLSource) RowCount(ctx context.Context, table string) (int64, error) {
	var count int64
	q := fmt.Sprintf("SELECT COUNT(*) FROM %s", s.dialect().Quote(table))
	if err := s.DB.QueryRowContext(ctx, q).Scan(&count); err != nil {
		return 0, fmt.Errorf("can't count rows of %s: %w", table, err)
	}
	return count, nil
}

func (s *SQLSource) ReadRows(ctx context.Context, table string, each func(cols []string, vals []any) error) error {
	q := fmt.Sprintf("SELECT * FROM %s", s.dialect().Quote(table))
	rows, err := s.DB.QueryContext(ctx, q)
	if err != nil {
		return fmt.Errorf("couldn't get data for table %s: %w", table, err)
	}
	defer rows.Close()
	cols, err := rows.Columns()
	if err != nil {
		return err
	}
	for rows.Next() {
		vals, scanArgs := buildVals(len(cols))
		if err := rows.Scan(scanArgs...); err != nil {
			return fmt.Errorf("couldn't process sql data row of %s: %w", table, err)
		}
		if err := each(cols, vals); err != nil {
			return err
		}
	}
	return rows.Err()
}

// buildVals returns fresh destinations for one row. Scanning into *any
// copies []byte values, so rows can be retained after the next Scan.
func buildVals(n int) ([]any, []any) {
	v := make([]any, n)
	scanArgs := make([]any, n)
	for i := range v {
		scanArgs[i] = &v[i]
	}
	return v, scanArgs
}
