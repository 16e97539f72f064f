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

// Package clients holds options shared by the Google Cloud clients.
package clients

import (
	"os"

	"golang.org/x/oauth2"
	"google.golang.org/api/option"
)

// FetchStorageClientOptions returns the options used to create a Cloud
// Storage client. CMS_STORAGE_ENDPOINT points the client at an emulator.
func FetchStorageClientOptions() []option.ClientOption {
	var clientOptions []option.ClientOption
	if endpoint := os.Getenv("CMS_STORAGE_ENDPOINT"); endpoint != "" {
		clientOptions = append(clientOptions, option.WithEndpoint(endpoint))
	}
	if authOption := fetchAuthClientOptions(); authOption != nil {
		clientOptions = append(clientOptions, authOption)
	}
	return clientOptions
}

func fetchAuthClientOptions() option.ClientOption {
	if os.Getenv("GCLOUD_AUTH_PLUGIN") == "true" {
		return option.WithTokenSource(oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: os.Getenv("GCLOUD_AUTH_ACCESS_TOKEN"),
		}))
	}
	return nil
}
