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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cloud.google.com/go/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"

	storageclient "github.com/lygwys/cms/accessors/clients/storage"
)

// writerClient returns a client whose single object writer records what is
// written into buf.
func writerClient(buf *strings.Builder, writeErr, closeErr error, bucket, object *string) storageclient.StorageClientMock {
	return storageclient.StorageClientMock{
		BucketMock: func(name string) storageclient.BucketHandle {
			*bucket = name
			return &storageclient.BucketHandleMock{
				ObjectMock: func(name string) storageclient.ObjectHandle {
					*object = name
					return &storageclient.ObjectHandleMock{
						NewWriterMock: func(ctx context.Context) io.WriteCloser {
							return &storageclient.WriterMock{
								WriteMock: func(p []byte) (n int, err error) {
									if writeErr != nil {
										return 0, writeErr
									}
									return buf.Write(p)
								},
								CloseMock: func() error { return closeErr },
							}
						},
					}
				},
			}
		},
	}
}

func TestStorageAccessorImpl_WriteDataToGCS(t *testing.T) {
	testCases := []struct {
		name        string
		filePath    string
		writeErr    error
		closeErr    error
		expectError bool
	}{
		{name: "Basic", filePath: "gs://bucket/reports/run.txt"},
		{name: "File parsing error", filePath: "://bucket/path", expectError: true},
		{name: "No object name", filePath: "gs://bucket/reports/", expectError: true},
		{name: "Write error", filePath: "gs://bucket/run.txt", writeErr: fmt.Errorf("test-error"), expectError: true},
		{name: "Close error", filePath: "gs://bucket/run.txt", closeErr: fmt.Errorf("test error"), expectError: true},
	}
	ctx := context.Background()
	sa := StorageAccessorImpl{}
	for _, tc := range testCases {
		var buf strings.Builder
		var bucket, object string
		scm := writerClient(&buf, tc.writeErr, tc.closeErr, &bucket, &object)
		err := sa.WriteDataToGCS(ctx, &scm, tc.filePath, "abcd")
		assert.Equal(t, tc.expectError, err != nil, tc.name)
		if !tc.expectError {
			assert.Equal(t, "bucket", bucket)
			assert.Equal(t, "reports/run.txt", object)
			assert.Equal(t, "abcd", buf.String())
		}
	}
}

func readerClient(content string, readerErr error) storageclient.StorageClientMock {
	return storageclient.StorageClientMock{
		BucketMock: func(name string) storageclient.BucketHandle {
			return &storageclient.BucketHandleMock{
				ObjectMock: func(name string) storageclient.ObjectHandle {
					return &storageclient.ObjectHandleMock{
						NewReaderMock: func(ctx context.Context) (io.ReadCloser, error) {
							if readerErr != nil {
								return nil, readerErr
							}
							return io.NopCloser(strings.NewReader(content)), nil
						},
					}
				},
			}
		},
	}
}

func TestStorageAccessorImpl_ReadGcsFile(t *testing.T) {
	testCases := []struct {
		name        string
		filePath    string
		readerErr   error
		want        string
		notExist    bool
		expectError bool
	}{
		{name: "Basic", filePath: "gs://bucket/run.txt", want: "report"},
		{name: "Invalid path", filePath: "bucket/run.txt", expectError: true},
		{name: "Object missing", filePath: "gs://bucket/run.txt", readerErr: storage.ErrObjectNotExist, notExist: true, expectError: true},
		{name: "Api not found", filePath: "gs://bucket/run.txt", readerErr: &googleapi.Error{Code: 404}, notExist: true, expectError: true},
		{name: "Other api error", filePath: "gs://bucket/run.txt", readerErr: &googleapi.Error{Code: 403}, expectError: true},
	}
	ctx := context.Background()
	sa := StorageAccessorImpl{}
	for _, tc := range testCases {
		scm := readerClient("report", tc.readerErr)
		got, err := sa.ReadGcsFile(ctx, &scm, tc.filePath)
		assert.Equal(t, tc.expectError, err != nil, tc.name)
		assert.Equal(t, tc.notExist, errors.Is(err, fs.ErrNotExist), tc.name)
		assert.Equal(t, tc.want, got, tc.name)
	}
}

func TestStorageAccessorImpl_LocalFiles(t *testing.T) {
	ctx := context.Background()
	sa := StorageAccessorImpl{}
	path := filepath.Join(t.TempDir(), "nested", "run.txt")
	scm := storageclient.StorageClientMock{}

	require.NoError(t, sa.WriteAnyFile(ctx, &scm, path, "local report"))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "local report", string(b))

	got, err := sa.ReadAnyFile(ctx, &scm, path)
	assert.NoError(t, err)
	assert.Equal(t, "local report", got)

	_, err = sa.ReadAnyFile(ctx, &scm, filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestStorageAccessorImpl_AnyFileRoutesGcsPaths(t *testing.T) {
	ctx := context.Background()
	sa := StorageAccessorImpl{}
	var buf strings.Builder
	var bucket, object string
	scm := writerClient(&buf, nil, nil, &bucket, &object)
	assert.NoError(t, sa.WriteAnyFile(ctx, &scm, "gs://reports/cms/run.txt", "abc"))
	assert.Equal(t, "reports", bucket)
	assert.Equal(t, "cms/run.txt", object)

	rc := readerClient("abc", nil)
	got, err := sa.ReadAnyFile(ctx, &rc, "gs://reports/cms/run.txt")
	assert.NoError(t, err)
	assert.Equal(t, "abc", got)
}
