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
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/lygwys/cms/common/constants"
	"github.com/lygwys/cms/common/utils"
	"github.com/lygwys/cms/logger"
	"github.com/lygwys/cms/schema"
	"github.com/lygwys/cms/store"
)

// Errors whose message contains one of these are worth another attempt.
var retryableErrors = []string{
	"deadlock",
	"Deadlock",
	"Lock wait timeout",
	"timeout",
	"connection reset",
	"broken pipe",
	"bad connection",
	"Too many connections",
}

// Sink writes converted rows into the current tables.
type Sink interface {
	TableExists(ctx context.Context, table string) (bool, error)
	CreateTable(ctx context.Context, table schema.Table) error
	Insert(ctx context.Context, table schema.Table, cols []string, vals []any) error
}

// SQLSink writes through database/sql, retrying transient failures with
// exponential backoff.
type SQLSink struct {
	DB              *sql.DB
	Driver          string
	MaxRetries      uint64
	InitialInterval time.Duration
}

func NewSQLSink(db *sql.DB, driver string) *SQLSink {
	return &SQLSink{DB: db, Driver: driver, MaxRetries: 5, InitialInterval: 100 * time.Millisecond}
}

func (s *SQLSink) TableExists(ctx context.Context, table string) (bool, error) {
	return store.TableExists(ctx, s.DB, s.Driver, table)
}

func (s *SQLSink) CreateTable(ctx context.Context, table schema.Table) error {
	ddl, err := schema.ToDDL(s.Driver, table)
	if err != nil {
		return err
	}
	if _, err := s.DB.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("can't create table %s: %w", table.Name, err)
	}
	logger.Log.Info("Created table", zap.String("table", table.Name))
	return nil
}

func (s *SQLSink) Insert(ctx context.Context, table schema.Table, cols []string, vals []any) error {
	q := s.insertStatement(table, cols)
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.InitialInterval
	op := func() error {
		_, err := s.DB.ExecContext(ctx, q, vals...)
		if err == nil {
			return nil
		}
		if !utils.ContainsAny(err.Error(), retryableErrors) {
			return backoff.Permanent(err)
		}
		return err
	}
	notify := func(err error, d time.Duration) {
		logger.Log.Warn("Retrying insert", zap.String("table", table.Name), zap.Duration("after", d), zap.Error(err))
	}
	if err := backoff.RetryNotify(op, backoff.WithContext(backoff.WithMaxRetries(b, s.MaxRetries), ctx), notify); err != nil {
		return fmt.Errorf("can't insert into %s: %w", table.Name, err)
	}
	return nil
}

// insertStatement builds the INSERT for cols. SQL Server refuses explicit
// identity values unless IDENTITY_INSERT is on for the statement batch.
func (s *SQLSink) insertStatement(table schema.Table, cols []string) string {
	d := store.Dialect{Driver: s.Driver}
	q := d.Insert(table.Name, cols)
	if s.Driver != constants.SQLSERVER {
		return q
	}
	for _, c := range cols {
		if col, ok := schema.FindColumn(table.Columns, c); ok && col.IsIdentity {
			name := d.Quote(table.Name)
			return fmt.Sprintf("SET IDENTITY_INSERT %s ON; %s; SET IDENTITY_INSERT %s OFF", name, q, name)
		}
	}
	return q
}
