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
	"database/sql"
	"errors"
	"time"

	"profiles/core/profile/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stephenafamo/bob"
)

// Named unique constraints on the profiles table. wrapProfileError relies
// on these names to report which key collided, so keep them in sync with
// the migration.
const (
	emailUniqueConstraint  = "profiles_email_key"
	userIDUniqueConstraint = "profiles_user_id_key"
	dniUniqueConstraint    = "profiles_dni_key"
)

type (
	// ProfileRow is the persistence entity shape used by storage adapters.
	ProfileRow struct {
		ID        int64         `db:"id"`
		Version   sql.NullInt64 `db:"version_number"`
		FirstName string        `db:"first_name"`
		LastName  string        `db:"last_name"`
		Dni       int32         `db:"dni"`
		Email     string        `db:"email"`
		Age       int32         `db:"age"`
		Location  string        `db:"location"`
		UserID    int64         `db:"user_id"`
		CreatedAt time.Time     `db:"created_at"`
	}
)

var profileColumns = []string{"id", "first_name", "last_name", "dni", "email", "age", "location", "user_id", "created_at", "version_number"}

// toProfile converts a ProfileRow to a domain Profile.
func toProfile(row ProfileRow) domain.Profile {
	return domain.Profile{
		ID:        row.ID,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Dni:       int(row.Dni),
		Email:     row.Email,
		Age:       int(row.Age),
		Location:  row.Location,
		UserID:    row.UserID,
		CreatedAt: row.CreatedAt,
		Version:   row.Version.Int64,
	}
}

// wrapProfileError centralizes mapping of DB errors to domain errors.
//
// Unique violations carry the constraint name, which tells us which of the
// three uniqueness invariants was violated. This is the transactional
// backstop behind the handler's pre-checks.
func wrapProfileError(err error) error {
	if err == nil {
		return nil
	}

	// sql.ErrNoRows is expected in many flows (lookup miss / update on a
	// missing row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrProfileNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" { // unique_violation
			switch pgErr.ConstraintName {
			case emailUniqueConstraint:
				return domain.ErrDuplicateEmail
			case userIDUniqueConstraint:
				return domain.ErrDuplicateUserID
			case dniUniqueConstraint:
				return domain.ErrDuplicateDni
			default:
				return domain.ErrDuplicateProfile
			}
		}
	}

	return err
}

// inTxQueryStmt rebinds a QueryStmt to a transaction.
func inTxQueryStmt[Arg any, T any, Ts ~[]T](
	ctx context.Context,
	stmt bob.QueryStmt[Arg, T, Ts],
	tx bob.Tx,
) bob.QueryStmt[Arg, T, Ts] {
	txStmt := stmt
	txStmt.Stmt = bob.InTx(ctx, stmt.Stmt, tx)
	return txStmt
}
