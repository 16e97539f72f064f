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
	"strconv"
	"strings"
	"time"
)

// The drivers disagree on how they hand back text, numbers and timestamps,
// and legacy rows are full of NULLs. These scanners accept all of it and
// leave the zero value for NULL.

type str struct{ p *string }

func (s str) Scan(v any) error {
	switch t := v.(type) {
	case nil:
		*s.p = ""
	case string:
		*s.p = t
	case []byte:
		*s.p = string(t)
	default:
		*s.p = fmt.Sprint(t)
	}
	return nil
}

type num struct{ p *int }

func (n num) Scan(v any) error {
	switch t := v.(type) {
	case nil:
		*n.p = 0
	case int64:
		*n.p = int(t)
	case int32:
		*n.p = int(t)
	case int:
		*n.p = t
	case float64:
		*n.p = int(t)
	case bool:
		*n.p = 0
		if t {
			*n.p = 1
		}
	case []byte:
		return n.parse(string(t))
	case string:
		return n.parse(t)
	default:
		return fmt.Errorf("can't scan %T into int", v)
	}
	return nil
}

func (n num) parse(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		*n.p = 0
		return nil
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return fmt.Errorf("can't scan %q into int: %w", s, err)
		}
		i = int(f)
	}
	*n.p = i
	return nil
}

type flagValue struct{ p *bool }

func (f flagValue) Scan(v any) error {
	var s string
	if err := (str{&s}).Scan(v); err != nil {
		return err
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1":
		*f.p = true
	default:
		*f.p = false
	}
	return nil
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

type stamp struct{ p *time.Time }

func (s stamp) Scan(v any) error {
	switch t := v.(type) {
	case nil:
		*s.p = time.Time{}
		return nil
	case time.Time:
		*s.p = t
		return nil
	case []byte:
		return s.parse(string(t))
	case string:
		return s.parse(t)
	default:
		return fmt.Errorf("can't scan %T into time", v)
	}
}

func (s stamp) parse(v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		*s.p = time.Time{}
		return nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			*s.p = t
			return nil
		}
	}
	return fmt.Errorf("can't parse time %q", v)
}
