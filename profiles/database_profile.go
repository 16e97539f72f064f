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

package profiles

import (
	"fmt"
	"strconv"

	"github.com/lygwys/cms/common/constants"
	"github.com/lygwys/cms/config"
)

var defaultPorts = map[string]string{
	constants.MYSQL:     "3306",
	constants.POSTGRES:  "5432",
	constants.SQLSERVER: "1433",
	constants.ORACLE:    "1521",
}

// NewDatabaseProfile builds connection parameters from a profile string such
// as "driver=mysql,host=db,user=cms,db_name=cms,password=x". Keys that are
// not given keep the value from fallback, so a profile can override only
// part of the configured connection.
func NewDatabaseProfile(s string, fallback config.Database) (config.Database, error) {
	db := fallback
	params, err := ParseMap(s)
	if err != nil {
		return db, fmt.Errorf("can't parse profile %q: %w", s, err)
	}
	override := func(field *string, key string) {
		if v, ok := params[key]; ok {
			*field = v
		}
	}
	override(&db.Driver, "driver")
	override(&db.Host, "host")
	override(&db.Port, "port")
	override(&db.Database, "db_name")
	override(&db.User, "user")
	override(&db.Password, "password")

	if host, ok := params["ssh_host"]; ok {
		tunnel := config.SSHTunnel{Host: host, User: params["ssh_user"], KeyPath: params["ssh_key"], Port: 22}
		if p, ok := params["ssh_port"]; ok {
			port, err := strconv.Atoi(p)
			if err != nil {
				return db, fmt.Errorf("invalid ssh_port %q: %w", p, err)
			}
			tunnel.Port = port
		}
		db.SSH = &tunnel
	}

	if _, ok := defaultPorts[db.Driver]; !ok {
		return db, fmt.Errorf("driver '%s' is not supported", db.Driver)
	}
	if db.Host == "" || db.User == "" || db.Database == "" {
		return db, fmt.Errorf("found empty string for host/user/db. please specify host, user and db_name in the profile")
	}
	if db.Port == "" {
		db.Port = defaultPorts[db.Driver]
	}
	return db, nil
}
