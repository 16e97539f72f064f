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

// Package cms serves the page generation screens of the console.
package cms

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/lygwys/cms/caches"
	"github.com/lygwys/cms/common/constants"
	"github.com/lygwys/cms/common/utils"
	"github.com/lygwys/cms/create"
	"github.com/lygwys/cms/logger"
	"github.com/lygwys/cms/store"
	"github.com/lygwys/cms/web/shared"
)

// CreateParameter is the body of a create request.
type CreateParameter struct {
	SiteId        int    `json:"SiteId"`
	ChannelIdList []int  `json:"ChannelIdList"`
	IsAllChecked  bool   `json:"IsAllChecked"`
	IsDescendent  bool   `json:"IsDescendent"`
	IsChannelPage bool   `json:"IsChannelPage"`
	IsContentPage bool   `json:"IsContentPage"`
	Scope         string `json:"Scope"`
}

// CreateAllParameter is the body of a create-all request.
type CreateAllParameter struct {
	SiteId int `json:"SiteId"`
}

// ChannelList is the channel tree level shown on the create screen.
type ChannelList struct {
	Value     []store.Channel `json:"Value"`
	Parent    store.Channel   `json:"Parent"`
	CountDict map[int]int     `json:"CountDict"`
}

type CreateAPIHandler struct {
	Sessions *shared.Sessions
	Sites    caches.SiteManager
	Channels caches.ChannelManager
	Contents caches.ContentManager
	Creator  create.Creator
}

// session returns the caller's session, or writes the error response and
// returns nil.
func (h *CreateAPIHandler) session(w http.ResponseWriter, r *http.Request) *shared.Session {
	s, err := h.Sessions.Get(r.Context(), r)
	if err != nil {
		shared.SessionError(w, err)
		return nil
	}
	return s
}

// GetList returns the children of parentId the caller can reach, with the
// content count of each and of the parent.
func (h *CreateAPIHandler) GetList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	s := h.session(w, r)
	if s == nil {
		return
	}
	siteId, err := shared.QueryInt(r, "siteId")
	if err != nil {
		shared.BadRequest(w, err)
		return
	}
	parentId, err := shared.QueryInt(r, "parentId")
	if err != nil {
		shared.BadRequest(w, err)
		return
	}
	if !s.Permissions.HasSitePermissions(siteId, constants.WebSitePermissionsCreate) {
		shared.Unauthorized(w)
		return
	}

	site, err := h.Sites.GetSiteInfo(ctx, siteId)
	if errors.Is(err, store.ErrNotFound) {
		shared.NotFound(w, fmt.Errorf("site %d", siteId))
		return
	}
	if err != nil {
		shared.InternalError(w, err)
		return
	}
	parent, err := h.Channels.GetChannelInfo(ctx, siteId, parentId)
	if errors.Is(err, store.ErrNotFound) {
		shared.NotFound(w, fmt.Errorf("channel %d", parentId))
		return
	}
	if err != nil {
		shared.InternalError(w, err)
		return
	}

	list := ChannelList{Value: []store.Channel{}, Parent: parent, CountDict: map[int]int{}}
	if list.CountDict[parent.Id], err = h.Contents.GetCount(ctx, site, parent, true); err != nil {
		shared.InternalError(w, err)
		return
	}
	childIds, err := h.Channels.GetChannelIdListByScope(ctx, parent, caches.ScopeChildren, "", "", "")
	if err != nil {
		shared.InternalError(w, err)
		return
	}
	for _, id := range childIds {
		if !s.Permissions.IsOwningChannelId(id) && !s.Permissions.IsDescendantOwningChannelId(siteId, id) {
			continue
		}
		child, err := h.Channels.GetChannelInfo(ctx, siteId, id)
		if err != nil {
			shared.InternalError(w, err)
			return
		}
		count, err := h.Contents.GetCount(ctx, site, child, true)
		if err != nil {
			shared.InternalError(w, err)
			return
		}
		list.Value = append(list.Value, child)
		list.CountDict[id] = count
	}
	shared.WriteJSON(w, list)
}

// Create queues channel and content page generation for the selected
// channels.
func (h *CreateAPIHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	s := h.session(w, r)
	if s == nil {
		return
	}
	var p CreateParameter
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		shared.BadRequest(w, fmt.Errorf("invalid request body: %v", err))
		return
	}
	if p.SiteId <= 0 {
		shared.BadRequest(w, fmt.Errorf("invalid site id %d", p.SiteId))
		return
	}
	if !s.Permissions.HasSitePermissions(p.SiteId, constants.WebSitePermissionsCreate) {
		shared.Unauthorized(w)
		return
	}

	selected, err := h.selectChannels(r, p)
	if err != nil {
		shared.InternalError(w, err)
		return
	}
	for _, id := range selected {
		if p.IsChannelPage {
			if err := h.Creator.CreateChannel(ctx, p.SiteId, id); err != nil {
				shared.InternalError(w, err)
				return
			}
		}
		if p.IsContentPage {
			if err := h.Creator.CreateAllContent(ctx, p.SiteId, id); err != nil {
				shared.InternalError(w, err)
				return
			}
		}
	}
	logger.Log.Info("Queued page generation", zap.Int("siteId", p.SiteId), zap.Int("channels", len(selected)),
		zap.String("scope", p.Scope))
	shared.WriteJSON(w, struct{}{})
}

// selectChannels resolves the channels a create request applies to, in
// order. Listed channels are kept as given; descendants are only added when
// not selected yet.
func (h *CreateAPIHandler) selectChannels(r *http.Request, p CreateParameter) ([]int, error) {
	ctx := r.Context()
	var selected []int
	switch {
	case p.IsAllChecked:
		ids, err := h.Channels.GetChannelIdList(ctx, p.SiteId)
		if err != nil {
			return nil, err
		}
		selected = append(selected, ids...)
	case p.IsDescendent:
		for _, id := range p.ChannelIdList {
			selected = append(selected, id)
			channel, err := h.Channels.GetChannelInfo(ctx, p.SiteId, id)
			if err != nil {
				return nil, fmt.Errorf("channel %d: %w", id, err)
			}
			descendants, err := h.Channels.GetChannelIdListByScopeOnly(ctx, channel, caches.ScopeDescendant)
			if err != nil {
				return nil, err
			}
			for _, d := range descendants {
				if !utils.ContainsInt(selected, d) {
					selected = append(selected, d)
				}
			}
		}
	default:
		selected = append(selected, p.ChannelIdList...)
	}

	hours, ok := constants.ScopeHours[p.Scope]
	if !ok {
		return selected, nil
	}
	site, err := h.Sites.GetSiteInfo(ctx, p.SiteId)
	if err != nil {
		return nil, err
	}
	recent, err := h.Contents.GetChannelIdListCheckedByLastEditDateHour(ctx, site, hours)
	if err != nil {
		return nil, err
	}
	var scoped []int
	for _, id := range recent {
		if utils.ContainsInt(selected, id) && !utils.ContainsInt(scoped, id) {
			scoped = append(scoped, id)
		}
	}
	return scoped, nil
}

// CreateAll regenerates every page of a site.
func (h *CreateAPIHandler) CreateAll(w http.ResponseWriter, r *http.Request) {
	s := h.session(w, r)
	if s == nil {
		return
	}
	var p CreateAllParameter
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		shared.BadRequest(w, fmt.Errorf("invalid request body: %v", err))
		return
	}
	if p.SiteId <= 0 {
		shared.BadRequest(w, fmt.Errorf("invalid site id %d", p.SiteId))
		return
	}
	if !s.Permissions.HasSitePermissions(p.SiteId, constants.WebSitePermissionsCreate) {
		shared.Unauthorized(w)
		return
	}
	if err := h.Creator.CreateByAll(r.Context(), p.SiteId); err != nil {
		shared.InternalError(w, err)
		return
	}
	logger.Log.Info("Queued full site generation", zap.Int("siteId", p.SiteId))
	shared.WriteJSON(w, struct{}{})
}
