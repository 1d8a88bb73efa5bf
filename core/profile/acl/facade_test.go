// Copyright 2025 Nhat-Nguyen Nguyen
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package acl_test

import (
	"context"
	"testing"

	"profiles/core/profile/acl"
	"profiles/core/profile/adapters/persistence/memory"
	"profiles/core/profile/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFacade() *acl.Facade {
	store := memory.New()
	return acl.NewFacade(domain.NewApp(store, store))
}

func TestFacadeCreateProfile(t *testing.T) {
	f := newFacade()
	ctx := context.Background()

	id, err := f.CreateProfile(ctx, "Ana", "Lopez", 12345678, "ana@example.com", 30, "Madrid", 7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	// validation errors pass through unchanged
	_, err = f.CreateProfile(ctx, "", "Lopez", 12345678, "eve@example.com", 30, "Madrid", 8)
	assert.ErrorIs(t, err, domain.ErrInvalidData)

	// so do uniqueness violations
	_, err = f.CreateProfile(ctx, "Eve", "Lopez", 11111111, "ana@example.com", 30, "Madrid", 8)
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestFacadeUpdateProfile(t *testing.T) {
	f := newFacade()
	ctx := context.Background()

	id, err := f.CreateProfile(ctx, "Ana", "Lopez", 12345678, "ana@example.com", 30, "Madrid", 7)
	require.NoError(t, err)

	got, err := f.UpdateProfile(ctx, id, "Maria", "Garcia", 87654321, "maria@example.com", 25, "Valencia")
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = f.UpdateProfile(ctx, 99, "Maria", "Garcia", 87654321, "maria@example.com", 25, "Valencia")
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)

	_, err = f.UpdateProfile(ctx, id, "Maria", "Garcia", 87654321, "maria@example.com", 0, "Valencia")
	assert.ErrorIs(t, err, domain.ErrInvalidData)
}
