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
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	resultGood = "good"
	resultBad  = "bad"
)

var rowsConverted = registerCounterVec(prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "cms",
	Subsystem: "conversion",
	Name:      "rows_total",
	Help:      "Legacy rows processed, by legacy table and result.",
}, []string{"table", "result"}))

// registerCounterVec registers c, or returns the collector already
// registered under the same name.
func registerCounterVec(c *prometheus.CounterVec) *prometheus.CounterVec {
	if err := prometheus.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			return are.ExistingCollector.(*prometheus.CounterVec)
		}
		panic(err)
	}
	return c
}
