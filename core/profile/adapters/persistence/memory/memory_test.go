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

package memory_test

import (
	"context"
	"testing"
	"time"

	"profiles/core/profile/adapters/persistence/memory"
	"profiles/core/profile/domain"

	"github.com/stretchr/testify/suite"
)

type MemoryStoreSuite struct {
	suite.Suite
	store *memory.Store
	ctx   context.Context
}

func (s *MemoryStoreSuite) SetupTest() {
	s.store = memory.New()
	s.ctx = context.Background()
}

func (s *MemoryStoreSuite) seed(dni int, email string, userID int64) *domain.Profile {
	p, err := s.store.CreateProfile(s.ctx, &domain.Profile{
		FirstName: "Ana",
		LastName:  "Lopez",
		Dni:       dni,
		Email:     email,
		Age:       30,
		Location:  "Madrid",
		UserID:    userID,
	})
	s.Require().NoError(err)
	return p
}

func (s *MemoryStoreSuite) TestCreateAssignsIDAndVersion() {
	p := s.seed(12345678, "ana@example.com", 7)

	s.Equal(int64(1), p.ID)
	s.Equal(int64(1), p.Version)
	s.WithinDuration(time.Now(), p.CreatedAt, time.Minute)

	p2 := s.seed(87654321, "maria@example.com", 8)
	s.Equal(int64(2), p2.ID)
}

func (s *MemoryStoreSuite) TestCreateEnforcesUniqueKeys() {
	s.seed(12345678, "ana@example.com", 7)

	_, err := s.store.CreateProfile(s.ctx, &domain.Profile{Dni: 11111111, Email: "ana@example.com", UserID: 9})
	s.ErrorIs(err, domain.ErrDuplicateEmail)

	_, err = s.store.CreateProfile(s.ctx, &domain.Profile{Dni: 11111111, Email: "eve@example.com", UserID: 7})
	s.ErrorIs(err, domain.ErrDuplicateUserID)

	_, err = s.store.CreateProfile(s.ctx, &domain.Profile{Dni: 12345678, Email: "eve@example.com", UserID: 9})
	s.ErrorIs(err, domain.ErrDuplicateDni)
}

func (s *MemoryStoreSuite) TestLookups() {
	created := s.seed(12345678, "ana@example.com", 7)

	byID, err := s.store.GetProfileByID(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(created.ID, byID.ID)

	byDni, err := s.store.GetProfileByDni(s.ctx, 12345678)
	s.Require().NoError(err)
	s.Equal(created.ID, byDni.ID)

	byUser, err := s.store.GetProfileByUserID(s.ctx, 7)
	s.Require().NoError(err)
	s.Equal(created.ID, byUser.ID)

	byEmail, err := s.store.GetProfileByEmail(s.ctx, "ana@example.com")
	s.Require().NoError(err)
	s.Equal(created.ID, byEmail.ID)

	_, err = s.store.GetProfileByID(s.ctx, 99)
	s.ErrorIs(err, domain.ErrProfileNotFound)
}

func (s *MemoryStoreSuite) TestExists() {
	s.seed(12345678, "ana@example.com", 7)

	ok, err := s.store.ProfileExistsByUserID(s.ctx, 7)
	s.Require().NoError(err)
	s.True(ok)

	ok, err = s.store.ProfileExistsByUserID(s.ctx, 8)
	s.Require().NoError(err)
	s.False(ok)

	ok, err = s.store.ProfileExistsByDni(s.ctx, 12345678)
	s.Require().NoError(err)
	s.True(ok)

	ok, err = s.store.ProfileExistsByDni(s.ctx, 87654321)
	s.Require().NoError(err)
	s.False(ok)
}

func (s *MemoryStoreSuite) TestUpdateBumpsVersion() {
	created := s.seed(12345678, "ana@example.com", 7)

	created.UpdateInformation("Maria", "Garcia", 87654321, "maria@example.com", 25, "Valencia")
	updated, err := s.store.UpdateProfile(s.ctx, created)
	s.Require().NoError(err)

	s.Equal(created.ID, updated.ID)
	s.Equal("Maria", updated.FirstName)
	s.Equal(int64(2), updated.Version)
	s.Equal(int64(7), updated.UserID)
}

func (s *MemoryStoreSuite) TestUpdateUnknownProfile() {
	_, err := s.store.UpdateProfile(s.ctx, &domain.Profile{ID: 99})
	s.ErrorIs(err, domain.ErrProfileNotFound)
}

func (s *MemoryStoreSuite) TestCreateCollisionsAcrossRecordsReportEmailFirst() {
	// dni collides with the first record, email with the second; the
	// reported key must be email regardless of record order
	s.seed(12345678, "ana@example.com", 7)
	s.seed(87654321, "maria@example.com", 8)

	_, err := s.store.CreateProfile(s.ctx, &domain.Profile{
		FirstName: "Eva",
		LastName:  "Ruiz",
		Dni:       12345678,
		Email:     "maria@example.com",
		Age:       40,
		Location:  "Sevilla",
		UserID:    9,
	})
	s.ErrorIs(err, domain.ErrDuplicateEmail)
}

func (s *MemoryStoreSuite) TestUpdateCollidingKeys() {
	s.seed(12345678, "ana@example.com", 7)
	second := s.seed(87654321, "maria@example.com", 8)

	second.Email = "ana@example.com"
	_, err := s.store.UpdateProfile(s.ctx, second)
	s.ErrorIs(err, domain.ErrDuplicateEmail)

	second.Email = "maria@example.com"
	second.Dni = 12345678
	_, err = s.store.UpdateProfile(s.ctx, second)
	s.ErrorIs(err, domain.ErrDuplicateDni)
}

func (s *MemoryStoreSuite) TestWithTimeoutTx() {
	err := s.store.WithTimeoutTx(s.ctx, time.Second, func(ctx context.Context, tx domain.ProfileWriteTx) error {
		_, err := tx.CreateProfile(ctx, &domain.Profile{
			Dni: 12345678, Email: "ana@example.com", UserID: 7,
		})
		return err
	})
	s.Require().NoError(err)

	_, err = s.store.GetProfileByEmail(s.ctx, "ana@example.com")
	s.NoError(err)
}

func TestMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(MemoryStoreSuite))
}
