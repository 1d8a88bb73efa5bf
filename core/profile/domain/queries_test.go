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

package domain_test

import (
	"testing"

	"profiles/core/profile/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetProfileByIDQuery(t *testing.T) {
	q, err := domain.NewGetProfileByIDQuery(1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), q.ProfileID)

	for _, id := range []int64{0, -1} {
		_, err := domain.NewGetProfileByIDQuery(id)
		assert.ErrorIs(t, err, domain.ErrInvalidData)
	}
}

func TestNewGetProfileByDniQuery(t *testing.T) {
	for _, dni := range []int{10000000, 99999999} {
		q, err := domain.NewGetProfileByDniQuery(dni)
		require.NoError(t, err)
		assert.Equal(t, dni, q.Dni)
	}

	for _, dni := range []int{0, 9999999, 100000000} {
		_, err := domain.NewGetProfileByDniQuery(dni)
		assert.ErrorIs(t, err, domain.ErrInvalidData)
	}
}

func TestNewGetProfileByUserIDQuery(t *testing.T) {
	q, err := domain.NewGetProfileByUserIDQuery(42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), q.UserID)

	_, err = domain.NewGetProfileByUserIDQuery(0)
	assert.ErrorIs(t, err, domain.ErrInvalidData)
}
