// Copyright 2024 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package conversion

import (
	"context"

	"github.com/lygwys/cms/schema"
)

type SourceMock struct {
	TableExistsMock func(ctx context.Context, table string) (bool, error)
	RowCountMock    func(ctx context.Context, table string) (int64, error)
	ReadRowsMock    func(ctx context.Context, table string, each func(cols []string, vals []any) error) error
}

func (sm *SourceMock) TableExists(ctx context.Context, table string) (bool, error) {
	return sm.TableExistsMock(ctx, table)
}

func (sm *SourceMock) RowCount(ctx context.Context, table string) (int64, error) {
	return sm.RowCountMock(ctx, table)
}

func (sm *SourceMock) ReadRows(ctx context.Context, table string, each func(cols []string, vals []any) error) error {
	return sm.ReadRowsMock(ctx, table, each)
}

type SinkMock struct {
	TableExistsMock func(ctx context.Context, table string) (bool, error)
	CreateTableMock func(ctx context.Context, table schema.Table) error
	InsertMock      func(ctx context.Context, table schema.Table, cols []string, vals []any) error
}

func (sm *SinkMock) TableExists(ctx context.Context, table string) (bool, error) {
	return sm.TableExistsMock(ctx, table)
}

func (sm *SinkMock) CreateTable(ctx context.Context, table schema.Table) error {
	return sm.CreateTableMock(ctx, table)
}

func (sm *SinkMock) Insert(ctx context.Context, table schema.Table, cols []string, vals []any) error {
	return sm.InsertMock(ctx, table, cols, vals)
}
