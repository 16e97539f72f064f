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

// Package shared holds the request plumbing common to the API handlers.
package shared

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/lygwys/cms/auth"
	"github.com/lygwys/cms/caches"
	"github.com/lygwys/cms/logger"
	"github.com/lygwys/cms/permissions"
	"github.com/lygwys/cms/store"
)

// Session is the administrator behind a request and what they may do.
type Session struct {
	Principal   auth.Principal
	Admin       store.Administrator
	Permissions *permissions.Capabilities
}

// Sessions turns authenticated requests into Sessions.
type Sessions struct {
	Auth        auth.Authenticator
	Admins      caches.AdminManager
	Permissions permissions.Provider
}

// Get returns the Session of r. It returns an error wrapping
// auth.ErrUnauthenticated when r carries no valid token or the token names
// an administrator that no longer exists.
func (s *Sessions) Get(ctx context.Context, r *http.Request) (*Session, error) {
	p, err := s.Auth.Authenticate(r)
	if err != nil {
		return nil, err
	}
	admin, err := s.Admins.GetAdminInfoByUserId(ctx, p.AdminId)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%w: %v", auth.ErrUnauthenticated, err)
	}
	if err != nil {
		return nil, err
	}
	caps, err := s.Permissions.Resolve(ctx, admin)
	if err != nil {
		return nil, err
	}
	return &Session{Principal: p, Admin: admin, Permissions: caps}, nil
}

// Unauthorized writes a 401 response.
func Unauthorized(w http.ResponseWriter) {
	http.Error(w, "Unauthorized", http.StatusUnauthorized)
}

// SessionError writes 401 for authentication failures and 500 otherwise.
func SessionError(w http.ResponseWriter, err error) {
	if errors.Is(err, auth.ErrUnauthenticated) {
		Unauthorized(w)
		return
	}
	InternalError(w, err)
}

// NotFound writes a 404 response naming what is missing.
func NotFound(w http.ResponseWriter, err error) {
	http.Error(w, fmt.Sprintf("Not found : %v", err), http.StatusNotFound)
}

// BadRequest writes a 400 response.
func BadRequest(w http.ResponseWriter, err error) {
	http.Error(w, fmt.Sprintf("Bad request : %v", err), http.StatusBadRequest)
}

// InternalError logs err and writes a 500 response carrying its message.
func InternalError(w http.ResponseWriter, err error) {
	logger.Log.Error("request failed", zap.Error(err))
	http.Error(w, fmt.Sprintf("Internal error : %v", err), http.StatusInternalServerError)
}

// WriteJSON writes v as a 200 JSON response.
func WriteJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(v)
}

// QueryInt parses the required integer query parameter name.
func QueryInt(r *http.Request, name string) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0, fmt.Errorf("missing query parameter %s", name)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("query parameter %s is not an integer: %q", name, v)
	}
	return n, nil
}
