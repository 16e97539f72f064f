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

package utils

import (
	"fmt"
	"io"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/lygwys/cms/common/constants"
)

// SetupLogFile configures the file used for logs written through the
// standard library logger by third-party libraries. By default those logs
// are dropped.
func SetupLogFile() (*os.File, error) {
	logfile := os.Getenv("CMS_STDLIB_LOGFILE")
	if logfile == "" {
		log.SetOutput(io.Discard)
		return nil, nil
	}
	f, err := os.Create(logfile)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	return f, nil
}

// Close closes file.
func Close(f *os.File) {
	if f != nil {
		f.Close()
	}
}

// ParseIntCollection parses a comma separated list of integers such as
// "1,2,3". Blank and non-numeric entries are skipped.
func ParseIntCollection(s string) []int {
	var l []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			continue
		}
		l = append(l, n)
	}
	return l
}

// ParseStringCollection splits a comma separated list, dropping blanks.
func ParseStringCollection(s string) []string {
	var l []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			l = append(l, part)
		}
	}
	return l
}

// ObjectCollectionToString renders every element with fmt and joins them
// with separator.
func ObjectCollectionToString[T any](items []T, separator string) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprint(item))
	}
	return strings.Join(parts, separator)
}

// ContainsInt reports whether n appears in l.
func ContainsInt(l []int, n int) bool {
	for _, x := range l {
		if x == n {
			return true
		}
	}
	return false
}

// ContainsAny returns true if any string in l occurs in s.
func ContainsAny(s string, l []string) bool {
	for _, a := range l {
		if strings.Contains(s, a) {
			return true
		}
	}
	return false
}

// GenerateName returns prefix followed by a fresh uuid.
func GenerateName(prefix string) string {
	return prefix + uuid.New().String()
}

// IsGCSPath returns true if path names a Google Cloud Storage object.
func IsGCSPath(path string) bool {
	return strings.HasPrefix(path, constants.GCS_FILE_PREFIX)
}

// ParseGCSFilePath splits a gs://bucket/path location. The returned URL's
// Host is the bucket and its Path has no leading slash.
func ParseGCSFilePath(filePath string) (*url.URL, error) {
	if len(filePath) == 0 {
		return nil, fmt.Errorf("found empty GCS path")
	}
	u, err := url.Parse(filePath)
	if err != nil {
		return nil, fmt.Errorf("parseFilePath: unable to parse file path %s", filePath)
	}
	if u.Scheme != constants.GCS_SCHEME || u.Host == "" {
		return nil, fmt.Errorf("not a valid GCS path: %s, should start with 'gs://bucket'", filePath)
	}
	u.Path = strings.TrimPrefix(u.Path, "/")
	return u, nil
}
