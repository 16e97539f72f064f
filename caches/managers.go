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

package caches

import (
	"time"

	"github.com/lygwys/cms/store"
)

// Managers groups one of each manager built over the same repositories.
type Managers struct {
	Sites       SiteManager
	Channels    ChannelManager
	Contents    ContentManager
	Admins      AdminManager
	Departments DepartmentManager
	Areas       AreaManager
}

func New(repos *store.Repositories, ttl time.Duration) (*Managers, error) {
	sites, err := NewSiteManager(repos.Sites, ttl)
	if err != nil {
		return nil, err
	}
	channels, err := NewChannelManager(repos.Channels, ttl)
	if err != nil {
		return nil, err
	}
	contents, err := NewContentManager(repos.Contents, channels, ttl)
	if err != nil {
		return nil, err
	}
	admins, err := NewAdminManager(repos.Administrators, repos.AdministratorsInRoles, ttl)
	if err != nil {
		return nil, err
	}
	departments, err := NewDepartmentManager(repos.Departments, ttl)
	if err != nil {
		return nil, err
	}
	areas, err := NewAreaManager(repos.Areas, ttl)
	if err != nil {
		return nil, err
	}
	return &Managers{
		Sites:       sites,
		Channels:    channels,
		Contents:    contents,
		Admins:      admins,
		Departments: departments,
		Areas:       areas,
	}, nil
}

// Clear drops everything every manager has cached.
func (m *Managers) Clear() {
	m.Sites.Clear()
	m.Channels.Clear()
	m.Contents.Clear()
	m.Admins.Clear()
	m.Departments.Clear()
	m.Areas.Clear()
}
