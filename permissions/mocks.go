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
package permissions

import (
	"context"

	"github.com/lygwys/cms/store"
)

type ProviderMock struct {
	ResolveMock func(ctx context.Context, admin store.Administrator) (*Capabilities, error)
}

func (pm *ProviderMock) Resolve(ctx context.Context, admin store.Administrator) (*Capabilities, error) {
	return pm.ResolveMock(ctx, admin)
}

// Granting returns a mock that evaluates every administrator under the
// grants registered for its user name.
func Granting(grants map[string]Grants) *ProviderMock {
	return &ProviderMock{ResolveMock: func(ctx context.Context, admin store.Administrator) (*Capabilities, error) {
		return Evaluate(admin, grants[admin.UserName]), nil
	}}
}
