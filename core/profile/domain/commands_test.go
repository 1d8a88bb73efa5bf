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
	"errors"
	"testing"

	"profiles/core/profile/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateProfileCommand(t *testing.T) {
	cmd, err := domain.NewCreateProfileCommand("Ana", "Lopez", 12345678, "ana@example.com", 30, "Madrid", 7)
	require.NoError(t, err)
	assert.Equal(t, "Ana", cmd.FirstName)
	assert.Equal(t, "Lopez", cmd.LastName)
	assert.Equal(t, 12345678, cmd.Dni)
	assert.Equal(t, "ana@example.com", cmd.Email)
	assert.Equal(t, 30, cmd.Age)
	assert.Equal(t, "Madrid", cmd.Location)
	assert.Equal(t, int64(7), cmd.UserID)
}

func TestNewCreateProfileCommand_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		firstName string
		lastName  string
		dni       int
		email     string
		age       int
		location  string
		wantField string
	}{
		{"empty first name", "", "Lopez", 12345678, "ana@example.com", 30, "Madrid", "firstName"},
		{"whitespace first name", "   ", "Lopez", 12345678, "ana@example.com", 30, "Madrid", "firstName"},
		{"empty last name", "Ana", "", 12345678, "ana@example.com", 30, "Madrid", "lastName"},
		{"dni too short", "Ana", "Lopez", 9999999, "ana@example.com", 30, "Madrid", "dni"},
		{"dni too long", "Ana", "Lopez", 100000000, "ana@example.com", 30, "Madrid", "dni"},
		{"negative dni", "Ana", "Lopez", -12345678, "ana@example.com", 30, "Madrid", "dni"},
		{"empty email", "Ana", "Lopez", 12345678, "", 30, "Madrid", "email"},
		{"zero age", "Ana", "Lopez", 12345678, "ana@example.com", 0, "Madrid", "age"},
		{"negative age", "Ana", "Lopez", 12345678, "ana@example.com", -1, "Madrid", "age"},
		{"age above limit", "Ana", "Lopez", 12345678, "ana@example.com", 121, "Madrid", "age"},
		{"empty location", "Ana", "Lopez", 12345678, "ana@example.com", 30, "", "location"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewCreateProfileCommand(tt.firstName, tt.lastName, tt.dni, tt.email, tt.age, tt.location, 7)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidData)

			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestNewCreateProfileCommand_Boundaries(t *testing.T) {
	tests := []struct {
		name string
		dni  int
		age  int
	}{
		{"smallest dni", 10000000, 30},
		{"largest dni", 99999999, 30},
		{"youngest age", 12345678, 1},
		{"oldest age", 12345678, 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewCreateProfileCommand("Ana", "Lopez", tt.dni, "ana@example.com", tt.age, "Madrid", 7)
			assert.NoError(t, err)
		})
	}
}

func TestNewCreateProfileCommand_UserIDNotRangeChecked(t *testing.T) {
	// The user id is an opaque external reference; the command does not
	// constrain its value.
	for _, userID := range []int64{0, -1, 1} {
		_, err := domain.NewCreateProfileCommand("Ana", "Lopez", 12345678, "ana@example.com", 30, "Madrid", userID)
		assert.NoError(t, err)
	}
}

func TestNewUpdateProfileCommand(t *testing.T) {
	cmd, err := domain.NewUpdateProfileCommand("Maria", "Garcia", 87654321, "maria@example.com", 25, "Valencia")
	require.NoError(t, err)
	assert.Equal(t, "Maria", cmd.FirstName)
	assert.Equal(t, 87654321, cmd.Dni)

	_, err = domain.NewUpdateProfileCommand("", "Garcia", 87654321, "maria@example.com", 25, "Valencia")
	assert.ErrorIs(t, err, domain.ErrInvalidData)

	_, err = domain.NewUpdateProfileCommand("Maria", "Garcia", 87654321, "maria@example.com", 121, "Valencia")
	assert.ErrorIs(t, err, domain.ErrInvalidData)
}
