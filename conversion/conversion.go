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
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/lygwys/cms/internal"
	"github.com/lygwys/cms/logger"
	"github.com/lygwys/cms/schema"
	"github.com/lygwys/cms/updater"
)

// Executor runs conversion descriptors against a legacy Source and a
// current Sink, collecting statistics in Conv.
type Executor struct {
	Source  Source
	Sink    Sink
	Conv    *internal.Conv
	Out     io.Writer // Progress output.
	Verbose bool
	limiter ratelimit.Limiter
}

// NewExecutor returns an Executor writing at most rowsPerSecond rows per
// second. A rate of zero or less means no limit.
func NewExecutor(src Source, sink Sink, rowsPerSecond int) *Executor {
	limiter := ratelimit.NewUnlimited()
	if rowsPerSecond > 0 {
		limiter = ratelimit.New(rowsPerSecond)
	}
	return &Executor{Source: src, Sink: sink, Conv: internal.MakeConv(), Out: os.Stdout, limiter: limiter}
}

// Run converts the named tables, or every table of registry when names is
// empty, in sorted order. A table that fails does not stop the others;
// all failures are returned joined.
func (e *Executor) Run(ctx context.Context, registry map[string]updater.ConvertInfo, names []string) error {
	if len(names) == 0 {
		for n := range registry {
			names = append(names, n)
		}
	}
	names = append([]string(nil), names...)
	sort.Strings(names)
	var errs []error
	for _, n := range names {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		info, ok := registry[n]
		if !ok {
			err := fmt.Errorf("no conversion descriptor for table %s", n)
			e.Conv.Unexpected(err.Error())
			errs = append(errs, err)
			continue
		}
		if info.OldTableName == "" {
			info.OldTableName = n
		}
		if err := e.ConvertTable(ctx, info); err != nil {
			logger.Log.Error("Table conversion failed", zap.String("table", n), zap.Error(err))
			errs = append(errs, err)
		}
	}
	e.Conv.Finish()
	return errors.Join(errs...)
}

// ConvertTable copies every row of info.OldTableName into
// info.NewTableName, creating the current table when it is missing. Rows
// that cannot be mapped or written are counted as bad and sampled; they do
// not fail the table.
func (e *Executor) ConvertTable(ctx context.Context, info updater.ConvertInfo) error {
	old := info.OldTableName
	if err := e.convertTable(ctx, info); err != nil {
		e.Conv.SetTableError(old, err)
		return err
	}
	return nil
}

func (e *Executor) convertTable(ctx context.Context, info updater.ConvertInfo) error {
	old := info.OldTableName
	e.Conv.AddTable(old, info.NewTableName)
	if err := Validate(info); err != nil {
		return err
	}
	exists, err := e.Source.TableExists(ctx, old)
	if err != nil {
		return err
	}
	if !exists {
		e.Conv.Unexpected(fmt.Sprintf("legacy table %s not found, skipped", old))
		logger.Log.Info("Legacy table not found, skipping", zap.String("table", old))
		return nil
	}
	target := schema.Table{Name: info.NewTableName, Columns: info.NewColumns}
	exists, err = e.Sink.TableExists(ctx, target.Name)
	if err != nil {
		return err
	}
	if !exists {
		if err := e.Sink.CreateTable(ctx, target); err != nil {
			return err
		}
	}
	total, err := e.Source.RowCount(ctx, old)
	if err != nil {
		return err
	}

	out := e.Out
	if out == nil {
		out = io.Discard
	}
	p := internal.NewProgressTo(out, total, fmt.Sprintf("Converting %s", old), e.Verbose)
	var n int64
	err = e.Source.ReadRows(ctx, old, func(cols []string, vals []any) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		n++
		e.Conv.StatsAddRow(old)
		e.writeRow(ctx, info, target, cols, vals)
		p.MaybeReport(n)
		return nil
	})
	if err != nil {
		return err
	}
	p.Done()
	logger.Log.Info("Converted table", zap.String("table", old), zap.String("to", target.Name),
		zap.Int64("rows", e.Conv.Stats.Rows[old]), zap.Int64("badRows", e.Conv.Stats.BadRows[old]))
	return nil
}

func (e *Executor) writeRow(ctx context.Context, info updater.ConvertInfo, target schema.Table, cols []string, vals []any) {
	old := info.OldTableName
	newCols, newVals, dropped := MapRow(info, cols, vals)
	for _, c := range dropped {
		e.Conv.Unexpected(fmt.Sprintf("table %s: column %s has no counterpart in %s", old, c, target.Name))
	}
	if len(newCols) == 0 {
		e.badRow(old, cols, vals)
		return
	}
	e.limiter.Take()
	if err := e.Sink.Insert(ctx, target, newCols, newVals); err != nil {
		logger.Log.Debug("Row write failed", zap.String("table", old), zap.Error(err))
		e.Conv.Unexpected(fmt.Sprintf("table %s: write failed: %s", old, err))
		e.badRow(old, cols, vals)
		return
	}
	e.Conv.StatsAddGoodRow(old)
	rowsConverted.WithLabelValues(old, resultGood).Inc()
}

func (e *Executor) badRow(table string, cols []string, vals []any) {
	e.Conv.StatsAddBadRow(table)
	e.Conv.CollectBadRow(table, cols, valsToStrings(vals))
	rowsConverted.WithLabelValues(table, resultBad).Inc()
}
