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

package domain

import (
	"context"
	"time"
)

// ProfileReadStore defines the port for read operations on profiles.
//
// It is separated from ProfileWriteStore so implementations can route reads
// to replica databases and keep read models independent of the write path.
// All methods are read-only and never modify data.
//
// Absence is reported with ErrProfileNotFound for the Get* lookups; the
// Exists* probes report absence as a plain false. Neither is an exceptional
// condition for callers.
type ProfileReadStore interface {
	// GetProfileByID retrieves a single profile by its internal id.
	GetProfileByID(ctx context.Context, id int64) (*Profile, error)

	// GetProfileByDni retrieves the profile holding the given national
	// identity number.
	GetProfileByDni(ctx context.Context, dni int) (*Profile, error)

	// GetProfileByUserID retrieves the profile attached to the given
	// external user identity.
	GetProfileByUserID(ctx context.Context, userID int64) (*Profile, error)

	// GetProfileByEmail retrieves the profile holding the given email.
	GetProfileByEmail(ctx context.Context, email string) (*Profile, error)

	// ProfileExistsByUserID reports whether any profile references the
	// given user identity.
	ProfileExistsByUserID(ctx context.Context, userID int64) (bool, error)

	// ProfileExistsByDni reports whether any profile holds the given
	// national identity number.
	ProfileExistsByDni(ctx context.Context, dni int) (bool, error)
}

// ProfileWriteStore defines the port for write operations on profiles.
//
// The store owns persisted identity and lifetime: CreateProfile assigns the
// id. The unique keys (email, user id, dni) are enforced by the store as
// transactional constraints; a violation surfaces as one of the duplicate
// sentinel errors. This is the backstop behind the handler's pre-checks,
// which are check-then-act and can race under concurrent creates.
type ProfileWriteStore interface {
	// CreateProfile inserts a new profile and returns the persisted form
	// with its assigned id and initial version.
	CreateProfile(ctx context.Context, p *Profile) (*Profile, error)

	// UpdateProfile persists the mutable fields of an existing profile
	// and bumps its version. Returns ErrProfileNotFound when the id does
	// not resolve.
	UpdateProfile(ctx context.Context, p *Profile) (*Profile, error)

	// WithTx executes fn within a database transaction. fn returning an
	// error rolls the transaction back; nil commits. Do not nest WithTx
	// calls: ProfileWriteTx intentionally does not expose it.
	WithTx(ctx context.Context, fn func(ctx context.Context, tx ProfileWriteTx) error) error

	// WithTimeoutTx is WithTx with a context timeout applied before the
	// transaction starts.
	WithTimeoutTx(ctx context.Context, timeout time.Duration, fn func(ctx context.Context, tx ProfileWriteTx) error) error
}

// ProfileWriteTx is a transaction-scoped ProfileWriteStore. It is bound to
// one transaction, is not safe for concurrent use, and must not outlive the
// WithTx callback that produced it.
type ProfileWriteTx interface {
	CreateProfile(ctx context.Context, p *Profile) (*Profile, error)
	UpdateProfile(ctx context.Context, p *Profile) (*Profile, error)
}
