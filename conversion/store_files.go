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
	"bufio"
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	storageclient "github.com/lygwys/cms/accessors/clients/storage"
	storageaccessor "github.com/lygwys/cms/accessors/storage"
	"github.com/lygwys/cms/common/utils"
	"github.com/lygwys/cms/internal"
	"github.com/lygwys/cms/logger"
)

// ReportWriter stores conversion reports on the local disk or in Cloud
// Storage.
type ReportWriter struct {
	Accessor storageaccessor.StorageAccessor
	// NewClient is only called for gs:// paths.
	NewClient func(ctx context.Context) (storageclient.StorageClient, error)
}

func NewReportWriter() *ReportWriter {
	return &ReportWriter{
		Accessor: &storageaccessor.StorageAccessorImpl{},
		NewClient: func(ctx context.Context) (storageclient.StorageClient, error) {
			c, err := storageclient.NewStorageClientImpl(ctx)
			if err != nil {
				return nil, err
			}
			return c, nil
		},
	}
}

// ReportPath returns path, or a file named after the run when path is
// empty or names a directory (ends in "/").
func ReportPath(conv *internal.Conv, path string) string {
	name := conv.RunId + ".report.txt"
	if path == "" {
		return name
	}
	if strings.HasSuffix(path, "/") {
		return path + name
	}
	return path
}

// WriteReport renders the report for conv and stores it at
// ReportPath(conv, path). It returns the final location.
func (rw *ReportWriter) WriteReport(ctx context.Context, conv *internal.Conv, path string) (string, error) {
	var sb strings.Builder
	w := bufio.NewWriter(&sb)
	internal.GenerateReport(conv, w)
	if err := w.Flush(); err != nil {
		return "", err
	}
	path = ReportPath(conv, path)
	var sc storageclient.StorageClient
	if utils.IsGCSPath(path) {
		var err error
		if sc, err = rw.NewClient(ctx); err != nil {
			return "", fmt.Errorf("can't write report to %s: %w", path, err)
		}
	}
	if err := rw.Accessor.WriteAnyFile(ctx, sc, path, sb.String()); err != nil {
		return "", fmt.Errorf("can't write report to %s: %w", path, err)
	}
	logger.Log.Info("Wrote conversion report", zap.String("path", path), zap.String("runId", conv.RunId))
	return path, nil
}

// ReadReport returns a report previously stored at path.
func (rw *ReportWriter) ReadReport(ctx context.Context, path string) (string, error) {
	var sc storageclient.StorageClient
	if utils.IsGCSPath(path) {
		var err error
		if sc, err = rw.NewClient(ctx); err != nil {
			return "", fmt.Errorf("can't read report from %s: %w", path, err)
		}
	}
	report, err := rw.Accessor.ReadAnyFile(ctx, sc, path)
	if err != nil {
		return "", fmt.Errorf("can't read report from %s: %w", path, err)
	}
	return report, nil
}

// WriteReport writes the report for conv with the default ReportWriter.
func WriteReport(ctx context.Context, conv *internal.Conv, path string) (string, error) {
	return NewReportWriter().WriteReport(ctx, conv, path)
}

// ReadReport reads a stored report with the default ReportWriter.
func ReadReport(ctx context.Context, path string) (string, error) {
	return NewReportWriter().ReadReport(ctx, path)
}
