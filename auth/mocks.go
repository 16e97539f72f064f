// Copyright 2024 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package auth

import "net/http"

type AuthenticatorMock struct {
	AuthenticateMock func(r *http.Request) (Principal, error)
}

func (am *AuthenticatorMock) Authenticate(r *http.Request) (Principal, error) {
	return am.AuthenticateMock(r)
}

// As returns a mock that authenticates every request as p.
func As(p Principal) *AuthenticatorMock {
	return &AuthenticatorMock{AuthenticateMock: func(r *http.Request) (Principal, error) { return p, nil }}
}

// Anonymous returns a mock that rejects every request.
func Anonymous() *AuthenticatorMock {
	return &AuthenticatorMock{AuthenticateMock: func(r *http.Request) (Principal, error) { return Principal{}, ErrUnauthenticated }}
}
