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
	"testing"

	"github.com/lygwys/cms/config"
	"github.com/stretchr/testify/assert"
)

func TestParseMap(t *testing.T) {
	testCases := []struct {
		name           string
		inputString    string
		expectedParams map[string]string
		errorExpected  bool
	}{
		{
			name:           "empty params",
			inputString:    "",
			expectedParams: map[string]string{},
			errorExpected:  false,
		},
		{
			name:           "valid params",
			inputString:    "host=localhost, user=cms",
			expectedParams: map[string]string{"host": "localhost", "user": "cms"},
			errorExpected:  false,
		},
		{
			name:           "value containing equals sign",
			inputString:    "password=a=b",
			expectedParams: map[string]string{"password": "a=b"},
			errorExpected:  false,
		},
		{
			name:           "invalid params incorrect format",
			inputString:    "uuwy",
			expectedParams: map[string]string{},
			errorExpected:  true,
		},
		{
			name:           "invalid params new line char",
			inputString:    "uuwy\n hjgse",
			expectedParams: map[string]string{},
			errorExpected:  true,
		},
		{
			name:           "invalid params duplicates",
			inputString:    "host=a, host=a",
			expectedParams: map[string]string{"host": "a"},
			errorExpected:  true,
		},
	}
	for _, tc := range testCases {
		params, err := ParseMap(tc.inputString)
		assert.Equal(t, tc.errorExpected, err != nil, tc.name)
		assert.Equal(t, tc.expectedParams, params, tc.name)
	}
}

func TestParseList(t *testing.T) {
	l, err := ParseList("bairong_Area, \"siteserver_Node\"")
	assert.NoError(t, err)
	assert.Equal(t, []string{"bairong_Area", "siteserver_Node"}, l)

	l, err = ParseList("")
	assert.NoError(t, err)
	assert.Nil(t, l)
}

func TestNewDatabaseProfile(t *testing.T) {
	testCases := []struct {
		name          string
		profile       string
		fallback      config.Database
		expected      config.Database
		errorExpected bool
	}{
		{
			name:     "full mysql profile gets default port",
			profile:  "driver=mysql,host=h,user=u,db_name=d,password=p",
			expected: config.Database{Driver: "mysql", Host: "h", Port: "3306", Database: "d", User: "u", Password: "p"},
		},
		{
			name:     "partial profile overrides fallback",
			profile:  "host=other",
			fallback: config.Database{Driver: "postgres", Host: "h", User: "u", Database: "d"},
			expected: config.Database{Driver: "postgres", Host: "other", Port: "5432", Database: "d", User: "u"},
		},
		{
			name:    "ssh tunnel",
			profile: "driver=mysql,host=h,user=u,db_name=d,ssh_host=bastion,ssh_user=ec2,ssh_key=key.pem,ssh_port=2222",
			expected: config.Database{Driver: "mysql", Host: "h", Port: "3306", Database: "d", User: "u",
				SSH: &config.SSHTunnel{Host: "bastion", User: "ec2", KeyPath: "key.pem", Port: 2222}},
		},
		{
			name:          "unsupported driver",
			profile:       "driver=dynamodb,host=h,user=u,db_name=d",
			errorExpected: true,
		},
		{
			name:          "missing db name",
			profile:       "driver=mysql,host=h,user=u",
			errorExpected: true,
		},
		{
			name:          "bad ssh port",
			profile:       "driver=mysql,host=h,user=u,db_name=d,ssh_host=b,ssh_port=x",
			errorExpected: true,
		},
	}
	for _, tc := range testCases {
		db, err := NewDatabaseProfile(tc.profile, tc.fallback)
		assert.Equal(t, tc.errorExpected, err != nil, tc.name)
		if !tc.errorExpected {
			assert.Equal(t, tc.expected, db, tc.name)
		}
	}
}
