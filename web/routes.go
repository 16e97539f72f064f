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

package web

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lygwys/cms/auth"
	"github.com/lygwys/cms/caches"
	"github.com/lygwys/cms/create"
	"github.com/lygwys/cms/permissions"
	"github.com/lygwys/cms/store"
	"github.com/lygwys/cms/web/cms"
	"github.com/lygwys/cms/web/settings"
	"github.com/lygwys/cms/web/shared"
)

// Handlers holds every API handler the router serves.
type Handlers struct {
	Create    *cms.CreateAPIHandler
	AdminView *settings.AdminViewAPIHandler
}

// NewHandlers wires the API handlers to the managers of one database.
func NewHandlers(repos *store.Repositories, managers *caches.Managers, authn auth.Authenticator, creator create.Creator) *Handlers {
	resolver := &permissions.Resolver{
		Sites:              managers.Sites,
		Channels:           managers.Channels,
		Admins:             managers.Admins,
		PermissionsInRoles: repos.PermissionsInRoles,
		SitePermissions:    repos.SitePermissions,
	}
	sessions := &shared.Sessions{Auth: authn, Admins: managers.Admins, Permissions: resolver}
	return &Handlers{
		Create: &cms.CreateAPIHandler{
			Sessions: sessions,
			Sites:    managers.Sites,
			Channels: managers.Channels,
			Contents: managers.Contents,
			Creator:  creator,
		},
		AdminView: &settings.AdminViewAPIHandler{
			Sessions:    sessions,
			Admins:      managers.Admins,
			Departments: managers.Departments,
			Areas:       managers.Areas,
			Sites:       managers.Sites,
			Permissions: resolver,
		},
	}
}

func GetRoutes(h *Handlers) *mux.Router {
	router := mux.NewRouter()
	router.Use(metricsMiddleware)

	router.HandleFunc("/ping", ping).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	router.HandleFunc("/pages/cms/create", h.Create.GetList).Methods("GET")
	router.HandleFunc("/pages/cms/create", h.Create.Create).Methods("POST")
	router.HandleFunc("/pages/cms/create/all", h.Create.CreateAll).Methods("POST")

	router.HandleFunc("/pages/settings/adminView", h.AdminView.Get).Methods("GET")
	return router
}

func ping(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}
