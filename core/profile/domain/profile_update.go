package domain

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// UpdateProfile overwrites the mutable fields of an existing profile and
// returns its id. The id and user id are never touched.
//
// Unlike create, no uniqueness pre-checks run here; the store's unique
// constraints still apply, so moving a profile onto an email or dni owned
// by another profile fails with the matching duplicate error.
func (app *Application) UpdateProfile(ctx context.Context, profileID int64, cmd UpdateProfileCommand) (int64, error) {
	if profileID < 1 {
		return 0, invalidField("profileId", "must be a positive number")
	}

	existing, err := app.reader.GetProfileByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return 0, ErrProfileNotFound
		}
		slog.ErrorContext(ctx, "profile lookup failed", slog.Any("error", err))
		return 0, ErrUnhandled
	}

	existing.UpdateInformation(cmd.FirstName, cmd.LastName, cmd.Dni, cmd.Email, cmd.Age, cmd.Location)

	var updated *Profile
	err = app.writer.WithTimeoutTx(ctx, 1*time.Second, func(ctx context.Context, tx ProfileWriteTx) error {
		p, err := tx.UpdateProfile(ctx, existing)
		if err != nil {
			return err
		}
		updated = p
		return nil
	})
	if err == nil {
		return updated.ID, nil
	}
	if errors.Is(err, ErrProfileNotFound) {
		return 0, ErrProfileNotFound
	}
	if errors.Is(err, ErrDuplicateProfile) {
		slog.DebugContext(ctx, "duplicate entry on update", slog.Any("error", err))
		return 0, err
	}

	slog.ErrorContext(ctx, "unexpected error", slog.Any("error", err))
	return 0, ErrUnhandled
}
