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

package pg

import (
	"context"
	"fmt"
	"time"

	"profiles/core/profile/domain"
	"profiles/modules/db"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var _ domain.ProfileWriteStore = (*PostgresProfileWriter)(nil)

type (
	PostgresProfileWriter struct {
		table string
		db    *bob.DB // for prepared statements on primary
		txm   db.TxManager

		createStmt bob.QueryStmt[createProfileArgs, ProfileRow, []ProfileRow]
		updateStmt bob.QueryStmt[updateProfileArgs, ProfileRow, []ProfileRow]
	}

	// Arg types for write operations
	createProfileArgs struct {
		FirstName string `db:"first_name"`
		LastName  string `db:"last_name"`
		Dni       int32  `db:"dni"`
		Email     string `db:"email"`
		Age       int32  `db:"age"`
		Location  string `db:"location"`
		UserID    int64  `db:"user_id"`
	}

	updateProfileArgs struct {
		ID        int64  `db:"id"`
		FirstName string `db:"first_name"`
		LastName  string `db:"last_name"`
		Dni       int32  `db:"dni"`
		Email     string `db:"email"`
		Age       int32  `db:"age"`
		Location  string `db:"location"`
	}
)

// NewPostgresProfileWriter creates a new writer with prepared statements bound to the primary.
func NewPostgresProfileWriter(ctx context.Context, pool db.ConnectionPool, table string) (*PostgresProfileWriter, error) {
	primary := pool.Writer().(bob.DB)

	w := &PostgresProfileWriter{
		table: table,
		db:    &primary,
		txm:   pool,
	}

	// INSERT INTO ... RETURNING ...
	insertQuery := psql.Insert(
		im.Into(table, "first_name", "last_name", "dni", "email", "age", "location", "user_id"),
		im.Values(
			bob.Named("first_name"),
			bob.Named("last_name"),
			bob.Named("dni"),
			bob.Named("email"),
			bob.Named("age"),
			bob.Named("location"),
			bob.Named("user_id"),
		),
		im.Returning(toAnySlice(profileColumns)...),
	)

	createStmt, err := bob.PrepareQuery[createProfileArgs](ctx, primary, insertQuery, scan.StructMapper[ProfileRow]())
	if err != nil {
		return nil, fmt.Errorf("prepare create profile: %w", err)
	}
	w.createStmt = createStmt

	// UPDATE overwrites every mutable field; id and user_id stay fixed.
	// version_number increments so ETags change on every write.
	updateQuery := psql.Update(
		um.Table(table),
		um.SetCol("first_name").To(bob.Named("first_name")),
		um.SetCol("last_name").To(bob.Named("last_name")),
		um.SetCol("dni").To(bob.Named("dni")),
		um.SetCol("email").To(bob.Named("email")),
		um.SetCol("age").To(bob.Named("age")),
		um.SetCol("location").To(bob.Named("location")),
		um.SetCol("version_number").To(psql.Raw("version_number + 1")),
		um.Where(psql.Quote("id").EQ(bob.Named("id"))),
		um.Returning(toAnySlice(profileColumns)...),
	)

	updateStmt, err := bob.PrepareQuery[updateProfileArgs](ctx, primary, updateQuery, scan.StructMapper[ProfileRow]())
	if err != nil {
		return nil, fmt.Errorf("prepare update profile: %w", err)
	}
	w.updateStmt = updateStmt

	return w, nil
}

// CreateProfile implements ProfileWriteStore (non-transactional).
func (w *PostgresProfileWriter) CreateProfile(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	row, err := w.createStmt.One(ctx, createArgs(p))
	if err != nil {
		return nil, wrapProfileError(err)
	}
	created := toProfile(row)
	return &created, nil
}

// UpdateProfile implements ProfileWriteStore (non-transactional).
func (w *PostgresProfileWriter) UpdateProfile(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	row, err := w.updateStmt.One(ctx, updateArgs(p))
	if err != nil {
		return nil, wrapProfileError(err)
	}
	updated := toProfile(row)
	return &updated, nil
}

// WithTx implements ProfileWriteStore transaction support.
func (w *PostgresProfileWriter) WithTx(
	ctx context.Context,
	fn func(ctx context.Context, tx domain.ProfileWriteTx) error,
) error {
	return w.txm.WithTx(ctx, func(ctx context.Context, q db.Querier) error {
		tx, ok := q.(bob.Tx)
		if !ok {
			return fmt.Errorf("querier is not a transaction")
		}

		txRepo := &profileWriterTx{
			parent: w,
			tx:     tx,
		}
		return fn(ctx, txRepo)
	})
}

// WithTimeoutTx implements ProfileWriteStore transaction support with timeout.
func (w *PostgresProfileWriter) WithTimeoutTx(
	ctx context.Context,
	timeout time.Duration,
	fn func(ctx context.Context, tx domain.ProfileWriteTx) error,
) error {
	return w.txm.WithTimeoutTx(ctx, timeout, func(ctx context.Context, q db.Querier) error {
		tx, ok := q.(bob.Tx)
		if !ok {
			return fmt.Errorf("querier is not a transaction")
		}

		txRepo := &profileWriterTx{
			parent: w,
			tx:     tx,
		}
		return fn(ctx, txRepo)
	})
}

// profileWriterTx is a transaction-scoped writer that reuses prepared statements.
type profileWriterTx struct {
	parent *PostgresProfileWriter
	tx     bob.Tx
}

var _ domain.ProfileWriteTx = (*profileWriterTx)(nil)

func (t *profileWriterTx) CreateProfile(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	stmt := inTxQueryStmt(ctx, t.parent.createStmt, t.tx)

	row, err := stmt.One(ctx, createArgs(p))
	if err != nil {
		return nil, wrapProfileError(err)
	}
	created := toProfile(row)
	return &created, nil
}

func (t *profileWriterTx) UpdateProfile(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	stmt := inTxQueryStmt(ctx, t.parent.updateStmt, t.tx)

	row, err := stmt.One(ctx, updateArgs(p))
	if err != nil {
		return nil, wrapProfileError(err)
	}
	updated := toProfile(row)
	return &updated, nil
}

func createArgs(p *domain.Profile) createProfileArgs {
	return createProfileArgs{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Dni:       int32(p.Dni),
		Email:     p.Email,
		Age:       int32(p.Age),
		Location:  p.Location,
		UserID:    p.UserID,
	}
}

func updateArgs(p *domain.Profile) updateProfileArgs {
	return updateProfileArgs{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Dni:       int32(p.Dni),
		Email:     p.Email,
		Age:       int32(p.Age),
		Location:  p.Location,
	}
}
