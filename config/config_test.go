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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesEnvAndDefaults(t *testing.T) {
	t.Setenv("CMS_DB_HOST", "db.local")
	t.Setenv("CMS_DB_USER", "cms")
	t.Setenv("CMS_JWT_SECRET", "s3cret")
	t.Setenv("CMS_PORT", "9090")

	c, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	assert.Equal(t, "db.local", c.Database.Host)
	assert.Equal(t, "cms", c.Database.User)
	assert.Equal(t, "mysql", c.Database.Driver)
	assert.Equal(t, "mysql", c.LegacyDatabase.Driver)
	assert.Equal(t, "s3cret", c.JWTSecret)
	assert.Equal(t, 9090, c.Port)
	assert.Equal(t, "INFO", c.LogLevel)
	assert.Equal(t, 300, c.CacheTTLSeconds)
	assert.Equal(t, 5, c.CreateWorker.PollIntervalSeconds)
}

func TestLoadFileWinsOverEnv(t *testing.T) {
	t.Setenv("CMS_DB_HOST", "env.host")
	path := filepath.Join(t.TempDir(), "cms.json")
	require.NoError(t, Save(path, Config{
		Port:     8181,
		Database: Database{Driver: "postgres", Host: "file.host"},
	}))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "file.host", c.Database.Host)
	assert.Equal(t, "postgres", c.Database.Driver)
	assert.Equal(t, "postgres", c.LegacyDatabase.Driver)
	assert.Equal(t, 8181, c.Port)
}

func TestLoadBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cms.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))
	_, err := Load(path)
	assert.Error(t, err)
}
