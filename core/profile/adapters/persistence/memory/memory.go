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

// Package memory provides an in-memory profile store implementing the same
// ports as the Postgres adapter, including the unique-key enforcement.
// It backs the domain tests and local runs without a database.
package memory

import (
	"context"
	"sync"
	"time"

	"profiles/core/profile/domain"
)

var (
	_ domain.ProfileReadStore  = (*Store)(nil)
	_ domain.ProfileWriteStore = (*Store)(nil)
)

type Store struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]domain.Profile
}

func New() *Store {
	return &Store{
		nextID: 1,
		byID:   make(map[int64]domain.Profile),
	}
}

func (s *Store) GetProfileByID(_ context.Context, id int64) (*domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return &p, nil
}

func (s *Store) GetProfileByDni(_ context.Context, dni int) (*domain.Profile, error) {
	return s.find(func(p domain.Profile) bool { return p.Dni == dni })
}

func (s *Store) GetProfileByUserID(_ context.Context, userID int64) (*domain.Profile, error) {
	return s.find(func(p domain.Profile) bool { return p.UserID == userID })
}

func (s *Store) GetProfileByEmail(_ context.Context, email string) (*domain.Profile, error) {
	return s.find(func(p domain.Profile) bool { return p.Email == email })
}

func (s *Store) ProfileExistsByUserID(ctx context.Context, userID int64) (bool, error) {
	_, err := s.GetProfileByUserID(ctx, userID)
	if err == nil {
		return true, nil
	}
	return false, nil
}

func (s *Store) ProfileExistsByDni(ctx context.Context, dni int) (bool, error) {
	_, err := s.GetProfileByDni(ctx, dni)
	if err == nil {
		return true, nil
	}
	return false, nil
}

// CreateProfile assigns the next id and enforces the unique keys the same
// way the Postgres constraints do. Each key is probed separately so the
// reported duplicate is always the first violated key (email, user id,
// dni) no matter which records hold the collisions.
func (s *Store) CreateProfile(_ context.Context, p *domain.Profile) (*domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkUniqueKeys(p, true); err != nil {
		return nil, err
	}

	created := *p
	created.ID = s.nextID
	created.CreatedAt = time.Now()
	created.Version = 1
	s.nextID++
	s.byID[created.ID] = created

	out := created
	return &out, nil
}

func (s *Store) UpdateProfile(_ context.Context, p *domain.Profile) (*domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.byID[p.ID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}

	if err := s.checkUniqueKeys(p, false); err != nil {
		return nil, err
	}

	current.UpdateInformation(p.FirstName, p.LastName, p.Dni, p.Email, p.Age, p.Location)
	current.Version++
	s.byID[current.ID] = current

	out := current
	return &out, nil
}

// WithTx runs fn against the store directly. The in-memory store has no
// transactions; each operation is already atomic under the mutex.
func (s *Store) WithTx(ctx context.Context, fn func(ctx context.Context, tx domain.ProfileWriteTx) error) error {
	return fn(ctx, s)
}

func (s *Store) WithTimeoutTx(ctx context.Context, timeout time.Duration, fn func(ctx context.Context, tx domain.ProfileWriteTx) error) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return s.WithTx(ctx, fn)
}

// checkUniqueKeys probes one key at a time under the caller's lock.
// The user id key only exists on create; updates never touch it.
func (s *Store) checkUniqueKeys(p *domain.Profile, withUserID bool) error {
	for id, other := range s.byID {
		if id != p.ID && other.Email == p.Email {
			return domain.ErrDuplicateEmail
		}
	}
	if withUserID {
		for id, other := range s.byID {
			if id != p.ID && other.UserID == p.UserID {
				return domain.ErrDuplicateUserID
			}
		}
	}
	for id, other := range s.byID {
		if id != p.ID && other.Dni == p.Dni {
			return domain.ErrDuplicateDni
		}
	}
	return nil
}

func (s *Store) find(match func(domain.Profile) bool) (*domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.byID {
		if match(p) {
			out := p
			return &out, nil
		}
	}
	return nil, domain.ErrProfileNotFound
}
