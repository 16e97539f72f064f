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

// Package settings serves the administrator settings screens.
package settings

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/lygwys/cms/caches"
	"github.com/lygwys/cms/common/constants"
	"github.com/lygwys/cms/common/utils"
	"github.com/lygwys/cms/permissions"
	"github.com/lygwys/cms/store"
	"github.com/lygwys/cms/web/shared"
)

// AdminView is the profile of one administrator as shown on the admin
// view screen.
type AdminView struct {
	Value           store.Administrator `json:"Value"`
	DepartmentName  string              `json:"DepartmentName"`
	AreaName        string              `json:"AreaName"`
	Level           string              `json:"Level"`
	IsSuperAdmin    bool                `json:"IsSuperAdmin"`
	SiteNames       string              `json:"SiteNames"`
	IsOrdinaryAdmin bool                `json:"IsOrdinaryAdmin"`
	RoleNames       string              `json:"RoleNames"`
}

type AdminViewAPIHandler struct {
	Sessions    *shared.Sessions
	Admins      caches.AdminManager
	Departments caches.DepartmentManager
	Areas       caches.AreaManager
	Sites       caches.SiteManager
	// Permissions evaluates the viewed administrator, not the caller.
	Permissions permissions.Provider
}

// Get returns the profile of the administrator named by the userId query
// parameter. Administrators may always view themselves; viewing anyone
// else needs the settings_admin system permission.
func (h *AdminViewAPIHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	s, err := h.Sessions.Get(ctx, r)
	if err != nil {
		shared.SessionError(w, err)
		return
	}
	userId, err := shared.QueryInt(r, "userId")
	if err != nil {
		shared.BadRequest(w, err)
		return
	}
	admin, err := h.Admins.GetAdminInfoByUserId(ctx, userId)
	if errors.Is(err, store.ErrNotFound) {
		shared.NotFound(w, fmt.Errorf("administrator %d", userId))
		return
	}
	if err != nil {
		shared.InternalError(w, err)
		return
	}
	if s.Admin.Id != userId && !s.Permissions.HasSystemPermissions(constants.SettingsPermissionsAdmin) {
		shared.Unauthorized(w)
		return
	}

	view, err := h.view(r, admin)
	if err != nil {
		shared.InternalError(w, err)
		return
	}
	shared.WriteJSON(w, view)
}

func (h *AdminViewAPIHandler) view(r *http.Request, admin store.Administrator) (*AdminView, error) {
	ctx := r.Context()
	v := &AdminView{Value: admin}
	var err error
	if v.DepartmentName, err = h.Departments.GetDepartmentName(ctx, admin.DepartmentId); err != nil {
		return nil, err
	}
	if v.AreaName, err = h.Areas.GetAreaName(ctx, admin.AreaId); err != nil {
		return nil, err
	}

	caps, err := h.Permissions.Resolve(ctx, admin)
	if err != nil {
		return nil, err
	}
	v.Level = caps.GetAdminLevel()
	v.IsSuperAdmin = caps.IsConsoleAdministrator()
	if !v.IsSuperAdmin {
		var names []string
		for _, id := range caps.GetSiteIdList() {
			name, err := h.Sites.GetSiteName(ctx, id)
			if err != nil {
				return nil, err
			}
			names = append(names, name)
		}
		v.SiteNames = utils.ObjectCollectionToString(names, constants.SiteNamesSeparator)
	}
	v.IsOrdinaryAdmin = !caps.IsSystemAdministrator()
	if v.IsOrdinaryAdmin {
		if v.RoleNames, err = h.Admins.GetRoleNames(ctx, admin.UserName); err != nil {
			return nil, err
		}
	}
	return v, nil
}
