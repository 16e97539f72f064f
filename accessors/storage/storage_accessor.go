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
package storageaccessor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"go.uber.org/zap"
	"google.golang.org/api/googleapi"

	storageclient "github.com/lygwys/cms/accessors/clients/storage"
	"github.com/lygwys/cms/common/utils"
	"github.com/lygwys/cms/logger"
)

// StorageAccessor reads and writes report files either on the local disk
// or in Google Cloud Storage.
type StorageAccessor interface {
	WriteDataToGCS(ctx context.Context, sc storageclient.StorageClient, filePath, data string) error
	ReadGcsFile(ctx context.Context, sc storageclient.StorageClient, filePath string) (string, error)
	WriteAnyFile(ctx context.Context, sc storageclient.StorageClient, filePath, data string) error
	ReadAnyFile(ctx context.Context, sc storageclient.StorageClient, filePath string) (string, error)
}

type StorageAccessorImpl struct{}

// WriteDataToGCS writes data to the gs://bucket/object at filePath.
func (sa *StorageAccessorImpl) WriteDataToGCS(ctx context.Context, sc storageclient.StorageClient, filePath, data string) error {
	u, err := utils.ParseGCSFilePath(filePath)
	if err != nil {
		return fmt.Errorf("unable to parse file path: %v", err)
	}
	if u.Path == "" || strings.HasSuffix(u.Path, "/") {
		return fmt.Errorf("gcs path %s does not name an object", filePath)
	}
	w := sc.Bucket(u.Host).Object(u.Path).NewWriter(ctx)
	logger.Log.Info("Writing data to GCS", zap.String("path", filePath))
	n, err := io.WriteString(w, data)
	if err != nil {
		w.Close()
		return fmt.Errorf("failed to write to %s: %w", filePath, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", filePath, err)
	}
	logger.Log.Info("Wrote data to GCS", zap.Int("bytes", n))
	return nil
}

// ReadGcsFile returns the content of the gs://bucket/object at filePath.
// A missing object is reported as fs.ErrNotExist.
func (sa *StorageAccessorImpl) ReadGcsFile(ctx context.Context, sc storageclient.StorageClient, filePath string) (string, error) {
	u, err := utils.ParseGCSFilePath(filePath)
	if err != nil {
		return "", fmt.Errorf("unable to parse file path: %v", err)
	}
	rc, err := sc.Bucket(u.Host).Object(u.Path).NewReader(ctx)
	if err != nil {
		if isNotFound(err) {
			return "", fmt.Errorf("%s: %w", filePath, fs.ErrNotExist)
		}
		return "", err
	}
	defer rc.Close()
	buf := new(strings.Builder)
	n, err := io.Copy(buf, rc)
	if err != nil {
		return "", err
	}
	logger.Log.Info("Read data from GCS", zap.String("path", filePath), zap.Int64("bytes", n))
	return buf.String(), nil
}

// WriteAnyFile writes data to a gs:// path or to the local disk, creating
// missing local directories.
func (sa *StorageAccessorImpl) WriteAnyFile(ctx context.Context, sc storageclient.StorageClient, filePath, data string) error {
	if utils.IsGCSPath(filePath) {
		return sa.WriteDataToGCS(ctx, sc, filePath, data)
	}
	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("can't create directory %s: %w", dir, err)
		}
	}
	return os.WriteFile(filePath, []byte(data), 0644)
}

func (sa *StorageAccessorImpl) ReadAnyFile(ctx context.Context, sc storageclient.StorageClient, filePath string) (string, error) {
	if utils.IsGCSPath(filePath) {
		return sa.ReadGcsFile(ctx, sc, filePath)
	}
	buf, err := os.ReadFile(filePath)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

func isNotFound(err error) bool {
	if errors.Is(err, storage.ErrObjectNotExist) {
		return true
	}
	var e *googleapi.Error
	return errors.As(err, &e) && e.Code == http.StatusNotFound
}
