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

package permissions

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/lygwys/cms/caches"
	"github.com/lygwys/cms/common/constants"
	"github.com/lygwys/cms/common/utils"
	"github.com/lygwys/cms/store"
)

// Provider resolves the capabilities of an administrator.
type Provider interface {
	Resolve(ctx context.Context, admin store.Administrator) (*Capabilities, error)
}

type Resolver struct {
	Sites              caches.SiteManager
	Channels           caches.ChannelManager
	Admins             caches.AdminManager
	PermissionsInRoles store.PermissionsInRolesRepository
	SitePermissions    store.SitePermissionsRepository
}

func (r *Resolver) Resolve(ctx context.Context, admin store.Administrator) (*Capabilities, error) {
	grants, err := r.Grants(ctx, admin)
	if err != nil {
		return nil, err
	}
	return Evaluate(admin, grants), nil
}

// Grants loads the grants of admin. Channel ownership is only loaded for
// administrators below the system level, the others own every channel.
func (r *Resolver) Grants(ctx context.Context, admin store.Administrator) (Grants, error) {
	var g Grants
	var err error
	if g.Roles, err = r.Admins.GetRoles(ctx, admin.UserName); err != nil {
		return g, fmt.Errorf("can't load roles of %s: %w", admin.UserName, err)
	}
	if g.AllSiteIds, err = r.Sites.GetSiteIdList(ctx); err != nil {
		return g, fmt.Errorf("can't load sites: %w", err)
	}
	if slices.Contains(g.Roles, constants.RoleConsoleAdministrator) || slices.Contains(g.Roles, constants.RoleSystemAdministrator) {
		return g, nil
	}
	if g.GeneralPermissions, err = r.PermissionsInRoles.GetGeneralPermissions(ctx, g.Roles); err != nil {
		return g, fmt.Errorf("can't load permissions of %s: %w", admin.UserName, err)
	}
	if g.SitePermissions, err = r.SitePermissions.GetByRoles(ctx, g.Roles); err != nil {
		return g, fmt.Errorf("can't load site permissions of %s: %w", admin.UserName, err)
	}
	g.OwnedChannels, err = r.ownedChannels(ctx, g.SitePermissions)
	return g, err
}

func (r *Resolver) ownedChannels(ctx context.Context, sitePermissions []store.SitePermissions) ([]store.Channel, error) {
	var owned []store.Channel
	seen := map[int]bool{}
	add := func(siteId, channelId int) (store.Channel, bool, error) {
		if seen[channelId] {
			return store.Channel{}, false, nil
		}
		ch, err := r.Channels.GetChannelInfo(ctx, siteId, channelId)
		if errors.Is(err, store.ErrNotFound) {
			return ch, false, nil
		}
		if err != nil {
			return ch, false, err
		}
		seen[channelId] = true
		owned = append(owned, ch)
		return ch, true, nil
	}
	for _, sp := range sitePermissions {
		for _, id := range utils.ParseIntCollection(sp.ChannelIdCollection) {
			ch, ok, err := add(sp.SiteId, id)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			descendants, err := r.Channels.GetChannelIdListByScopeOnly(ctx, ch, caches.ScopeDescendant)
			if err != nil {
				return nil, err
			}
			for _, d := range descendants {
				if _, _, err := add(sp.SiteId, d); err != nil {
					return nil, err
				}
			}
		}
	}
	return owned, nil
}
