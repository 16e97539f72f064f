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

// Package auth identifies the administrator behind a request.
package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenCookieName is the cookie the admin console stores its token in.
const TokenCookieName = "SS-ADMIN-TOKEN"

var ErrUnauthenticated = errors.New("administrator is not logged in")

// Principal is an authenticated administrator.
type Principal struct {
	AdminId  int
	UserName string
}

type Authenticator interface {
	// Authenticate returns ErrUnauthenticated, possibly wrapped, when the
	// request does not carry a valid administrator token.
	Authenticate(r *http.Request) (Principal, error)
}

type adminClaims struct {
	jwt.RegisteredClaims
	UserId   int    `json:"userId"`
	UserName string `json:"userName"`
}

// TokenAuthenticator accepts HS256 tokens signed with Secret, sent either
// as a bearer token or in the admin cookie.
type TokenAuthenticator struct {
	Secret []byte
}

func (a *TokenAuthenticator) Authenticate(r *http.Request) (Principal, error) {
	token := bearerToken(r)
	if token == "" {
		return Principal{}, ErrUnauthenticated
	}
	claims := &adminClaims{}
	t, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return a.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || t == nil || !t.Valid {
		return Principal{}, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}
	if claims.UserId <= 0 || claims.UserName == "" {
		return Principal{}, fmt.Errorf("%w: token carries no administrator", ErrUnauthenticated)
	}
	return Principal{AdminId: claims.UserId, UserName: claims.UserName}, nil
}

func bearerToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		if scheme, token, ok := strings.Cut(h, " "); ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
	}
	if c, err := r.Cookie(TokenCookieName); err == nil {
		return c.Value
	}
	return ""
}

// IssueToken signs a token for p that expires after ttl.
func IssueToken(secret []byte, p Principal, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := adminClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.UserName,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserId:   p.AdminId,
		UserName: p.UserName,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}
