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

package constants

const (
	// MYSQL is the driver name for MySQL.
	MYSQL string = "mysql"

	// POSTGRES is the driver name for PostgreSQL.
	POSTGRES string = "postgres"

	// SQLSERVER is the driver name for SQL Server.
	SQLSERVER string = "sqlserver"

	// ORACLE is the driver name for Oracle.
	ORACLE string = "oracle"

	// Website (per-site) permission required to generate pages.
	WebSitePermissionsCreate string = "cms_create"

	// System permission required to view other administrators.
	SettingsPermissionsAdmin string = "settings_admin"

	// Predefined role names.
	RoleConsoleAdministrator string = "ConsoleAdministrator"
	RoleSystemAdministrator  string = "SystemAdministrator"
	RoleAdministrator        string = "Administrator"

	// Display levels returned by GetAdminLevel.
	AdminLevelSuper    string = "Super Administrator"
	AdminLevelSite     string = "Site Administrator"
	AdminLevelOrdinary string = "Ordinary Administrator"

	// Separator used when site names are rendered as one display string.
	SiteNamesSeparator string = "<br />"

	// Time scopes accepted by the bulk create endpoint.
	ScopeOneMonth string = "1month"
	ScopeOneDay   string = "1day"
	ScopeTwoHours string = "2hours"

	// Default file name for the JSON configuration.
	DEFAULT_CONFIG_FILE string = "cms.json"

	// Default HTTP port for the web command.
	DEFAULT_PORT int = 8080

	// Default TTL for cached entities, in seconds.
	DEFAULT_CACHE_TTL_SECONDS int = 300

	// Prefix used for conversion run ids.
	CONVERSION_RUN_PREFIX string = "CV-"

	// Scheme for reports written to Google Cloud Storage.
	GCS_SCHEME string = "gs"

	// Prefix of Google Cloud Storage paths.
	GCS_FILE_PREFIX string = "gs://"
)

// ScopeHours maps a recognized bulk create scope to its lookback window in
// hours. Any other scope disables time filtering.
var ScopeHours = map[string]int{
	ScopeOneMonth: 720,
	ScopeOneDay:   24,
	ScopeTwoHours: 2,
}
