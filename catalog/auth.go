// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

import (
	"context"
	"crypto/subtle"
	"errors"
)

var ErrUnauthorized = errors.New("unauthorized")

// Authorizer guards catalog and price list writes.
type Authorizer interface {
	Authorize(ctx context.Context, credential string) error
}

type AuthorizerFunc func(ctx context.Context, credential string) error

func (f AuthorizerFunc) Authorize(ctx context.Context, credential string) error {
	return f(ctx, credential)
}

type passwordAuthorizer struct {
	password []byte
}

// PasswordAuthorizer accepts a single shared password. An empty password
// accepts nobody.
func PasswordAuthorizer(password string) Authorizer {
	return passwordAuthorizer{[]byte(password)}
}

func (a passwordAuthorizer) Authorize(_ context.Context, credential string) error {
	if len(a.password) == 0 || subtle.ConstantTimeCompare(a.password, []byte(credential)) != 1 {
		return ErrUnauthorized
	}
	return nil
}
