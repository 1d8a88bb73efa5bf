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
	"errors"
	"log/slog"
	"time"
)

// CreateProfile enforces the cross-profile uniqueness invariants and
// persists a new profile, returning its store-assigned id.
//
// The checks run in a fixed order (email, userId, dni) so concurrent-free
// runs report deterministically: the first violated constraint is the one
// surfaced and the remaining checks are skipped. Nothing is written before
// the single persist call, so failures need no rollback. The pre-checks are
// check-then-act; the store's unique constraints are the transactional
// backstop and map to the same duplicate errors.
func (app *Application) CreateProfile(ctx context.Context, cmd CreateProfileCommand) (int64, error) {
	existing, err := app.reader.GetProfileByEmail(ctx, cmd.Email)
	if err != nil && !errors.Is(err, ErrProfileNotFound) {
		slog.ErrorContext(ctx, "email lookup failed", slog.Any("error", err))
		return 0, ErrUnhandled
	}
	if existing != nil {
		slog.DebugContext(ctx, "duplicate email on create", slog.String("email", cmd.Email))
		return 0, ErrDuplicateEmail
	}

	taken, err := app.reader.ProfileExistsByUserID(ctx, cmd.UserID)
	if err != nil {
		slog.ErrorContext(ctx, "user id lookup failed", slog.Any("error", err))
		return 0, ErrUnhandled
	}
	if taken {
		slog.DebugContext(ctx, "duplicate user id on create", slog.Int64("user_id", cmd.UserID))
		return 0, ErrDuplicateUserID
	}

	taken, err = app.reader.ProfileExistsByDni(ctx, cmd.Dni)
	if err != nil {
		slog.ErrorContext(ctx, "dni lookup failed", slog.Any("error", err))
		return 0, ErrUnhandled
	}
	if taken {
		slog.DebugContext(ctx, "duplicate dni on create", slog.Int("dni", cmd.Dni))
		return 0, ErrDuplicateDni
	}

	var created *Profile
	err = app.writer.WithTimeoutTx(ctx, 1*time.Second, func(ctx context.Context, tx ProfileWriteTx) error {
		p, err := tx.CreateProfile(ctx, &Profile{
			FirstName: cmd.FirstName,
			LastName:  cmd.LastName,
			Dni:       cmd.Dni,
			Email:     cmd.Email,
			Age:       cmd.Age,
			Location:  cmd.Location,
			UserID:    cmd.UserID,
		})
		if err != nil {
			return err
		}
		created = p
		return nil
	})
	if err == nil {
		slog.DebugContext(ctx, "created profile", slog.Int64("id", created.ID), slog.Int64("user_id", created.UserID))
		return created.ID, nil
	}
	if errors.Is(err, ErrDuplicateProfile) {
		// Lost the race against a concurrent create; the store reported
		// which key collided.
		slog.DebugContext(ctx, "duplicate entry on persist", slog.Any("error", err))
		return 0, err
	}

	slog.ErrorContext(ctx, "unexpected error", slog.Any("error", err))
	return 0, ErrUnhandled
}
