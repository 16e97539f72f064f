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

// Package permissions answers what an administrator may do. Evaluate is a
// pure function of the administrator and the grants loaded for it; the
// Resolver does the loading.
package permissions

import (
	"slices"

	"github.com/lygwys/cms/common/constants"
	"github.com/lygwys/cms/common/utils"
	"github.com/lygwys/cms/store"
)

// Grants is everything the roles of one administrator give it.
type Grants struct {
	Roles              []string
	GeneralPermissions []string
	SitePermissions    []store.SitePermissions
	// AllSiteIds lists every site that exists.
	AllSiteIds []int
	// OwnedChannels holds the channels granted through SitePermissions
	// together with all of their descendants.
	OwnedChannels []store.Channel
}

// Capabilities is the evaluated permission set of one administrator.
type Capabilities struct {
	admin     store.Administrator
	isConsole bool
	isSystem  bool
	general   map[string]bool
	website   map[int]map[string]bool
	siteIds   []int
	owned     map[int]bool
	ancestors map[int]map[int]bool
}

// Evaluate computes the capabilities admin holds under grants.
func Evaluate(admin store.Administrator, grants Grants) *Capabilities {
	c := &Capabilities{
		admin:     admin,
		general:   map[string]bool{},
		website:   map[int]map[string]bool{},
		owned:     map[int]bool{},
		ancestors: map[int]map[int]bool{},
	}
	c.isConsole = slices.Contains(grants.Roles, constants.RoleConsoleAdministrator)
	c.isSystem = c.isConsole || slices.Contains(grants.Roles, constants.RoleSystemAdministrator)

	for _, p := range grants.GeneralPermissions {
		c.general[p] = true
	}
	for _, sp := range grants.SitePermissions {
		if c.website[sp.SiteId] == nil {
			c.website[sp.SiteId] = map[string]bool{}
		}
		for _, p := range utils.ParseStringCollection(sp.WebsitePermissions) {
			c.website[sp.SiteId][p] = true
		}
	}
	for _, ch := range grants.OwnedChannels {
		c.owned[ch.Id] = true
		if c.ancestors[ch.SiteId] == nil {
			c.ancestors[ch.SiteId] = map[int]bool{}
		}
		for _, parent := range ch.ParentIds() {
			c.ancestors[ch.SiteId][parent] = true
		}
	}

	switch {
	case c.isConsole:
		c.siteIds = slices.Clone(grants.AllSiteIds)
	case c.isSystem:
		for _, id := range admin.SiteIds() {
			if slices.Contains(grants.AllSiteIds, id) && !slices.Contains(c.siteIds, id) {
				c.siteIds = append(c.siteIds, id)
			}
		}
	default:
		for _, sp := range grants.SitePermissions {
			if slices.Contains(grants.AllSiteIds, sp.SiteId) && !slices.Contains(c.siteIds, sp.SiteId) {
				c.siteIds = append(c.siteIds, sp.SiteId)
			}
		}
	}
	return c
}

func (c *Capabilities) IsConsoleAdministrator() bool { return c.isConsole }

// IsSystemAdministrator also holds for console administrators.
func (c *Capabilities) IsSystemAdministrator() bool { return c.isSystem }

// HasSystemPermissions reports whether any of permissions is granted.
func (c *Capabilities) HasSystemPermissions(permissions ...string) bool {
	if c.isConsole {
		return true
	}
	for _, p := range permissions {
		if c.general[p] {
			return true
		}
	}
	return false
}

// HasSitePermissions reports whether any of permissions is granted on
// siteId. System administrators hold every permission on their sites.
func (c *Capabilities) HasSitePermissions(siteId int, permissions ...string) bool {
	if c.isConsole {
		return true
	}
	if c.isSystem {
		return slices.Contains(c.siteIds, siteId)
	}
	granted := c.website[siteId]
	for _, p := range permissions {
		if granted[p] {
			return true
		}
	}
	return false
}

// GetSiteIdList returns the sites the administrator may manage.
func (c *Capabilities) GetSiteIdList() []int {
	return slices.Clone(c.siteIds)
}

func (c *Capabilities) IsOwningChannelId(channelId int) bool {
	return c.isSystem || c.owned[channelId]
}

// IsDescendantOwningChannelId reports whether some channel below
// channelId is owned.
func (c *Capabilities) IsDescendantOwningChannelId(siteId, channelId int) bool {
	return c.isSystem || c.ancestors[siteId][channelId]
}

func (c *Capabilities) GetAdminLevel() string {
	switch {
	case c.isConsole:
		return constants.AdminLevelSuper
	case c.isSystem:
		return constants.AdminLevelSite
	default:
		return constants.AdminLevelOrdinary
	}
}

func (c *Capabilities) Admin() store.Administrator { return c.admin }
