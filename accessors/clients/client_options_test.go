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

package clients

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFetchStorageClientOptions(t *testing.T) {
	tests := []struct {
		name                 string
		endpoint             string
		gcloudAuthPlugin     string
		gcloudAuthToken      string
		expectedOptionsCount int
	}{
		{
			name:                 "No env vars set",
			expectedOptionsCount: 0,
		},
		{
			name:                 "Only endpoint set",
			endpoint:             "localhost:4443",
			expectedOptionsCount: 1,
		},
		{
			name:                 "Only GCLOUD_AUTH_PLUGIN set to true",
			gcloudAuthPlugin:     "true",
			gcloudAuthToken:      "test-token",
			expectedOptionsCount: 1,
		},
		{
			name:                 "Endpoint and GCLOUD_AUTH_PLUGIN set",
			endpoint:             "localhost:4443",
			gcloudAuthPlugin:     "true",
			gcloudAuthToken:      "test-token",
			expectedOptionsCount: 2,
		},
		{
			name:                 "GCLOUD_AUTH_PLUGIN set to false",
			gcloudAuthPlugin:     "false",
			expectedOptionsCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CMS_STORAGE_ENDPOINT", tt.endpoint)
			t.Setenv("GCLOUD_AUTH_PLUGIN", tt.gcloudAuthPlugin)
			t.Setenv("GCLOUD_AUTH_ACCESS_TOKEN", tt.gcloudAuthToken)
			assert.Len(t, FetchStorageClientOptions(), tt.expectedOptionsCount)
		})
	}
}
