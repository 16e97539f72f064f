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
package storageclient

import (
	"context"
	"fmt"
	"sync"

	"cloud.google.com/go/storage"

	"github.com/lygwys/cms/accessors/clients"
)

var once sync.Once
var gcsClient *storage.Client
var clientErr error

var newClient = storage.NewClient

// GetOrCreateClient returns the process wide Cloud Storage client.
func GetOrCreateClient(ctx context.Context) (*storage.Client, error) {
	once.Do(func() {
		gcsClient, clientErr = newClient(ctx, clients.FetchStorageClientOptions()...)
	})
	if clientErr != nil {
		return nil, fmt.Errorf("failed to create storage client: %v", clientErr)
	}
	return gcsClient, nil
}
