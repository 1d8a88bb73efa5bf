package domain

import (
	"context"
	"errors"
	"log/slog"
)

// The query handlers are direct pass-throughs to the read store. Absence
// surfaces as ErrProfileNotFound, which callers treat as a normal outcome
// rather than a failure.

func (app *Application) GetProfileByID(ctx context.Context, q GetProfileByIDQuery) (*Profile, error) {
	return app.lookup(ctx, func(ctx context.Context) (*Profile, error) {
		return app.reader.GetProfileByID(ctx, q.ProfileID)
	})
}

func (app *Application) GetProfileByDni(ctx context.Context, q GetProfileByDniQuery) (*Profile, error) {
	return app.lookup(ctx, func(ctx context.Context) (*Profile, error) {
		return app.reader.GetProfileByDni(ctx, q.Dni)
	})
}

func (app *Application) GetProfileByUserID(ctx context.Context, q GetProfileByUserIDQuery) (*Profile, error) {
	return app.lookup(ctx, func(ctx context.Context) (*Profile, error) {
		return app.reader.GetProfileByUserID(ctx, q.UserID)
	})
}

func (app *Application) lookup(ctx context.Context, fn func(context.Context) (*Profile, error)) (*Profile, error) {
	p, err := fn(ctx)
	if err == nil {
		return p, nil
	}
	if errors.Is(err, ErrProfileNotFound) {
		return nil, ErrProfileNotFound
	}
	slog.ErrorContext(ctx, "unexpected error", slog.Any("error", err))
	return nil, ErrUnhandled
}
