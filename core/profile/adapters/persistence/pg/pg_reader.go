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
	"log/slog"

	"profiles/core/profile/domain"
	"profiles/modules/db"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var _ domain.ProfileReadStore = (*PostgresProfileReader)(nil)

type PostgresProfileReader struct {
	table string
	pool  db.ReaderConnectionManager // calls Reader() at runtime
}

// NewPostgresProfileReader creates a reader that calls Reader() at runtime
// for replica load balancing.
//
// Reads use dynamic queries instead of prepared statements: slightly slower,
// but they survive replica failover and keep the implementation simple. The
// lookups here are all single-row point queries on indexed columns.
func NewPostgresProfileReader(pool db.ReaderConnectionManager, table string) *PostgresProfileReader {
	return &PostgresProfileReader{
		table: table,
		pool:  pool,
	}
}

func (r *PostgresProfileReader) GetProfileByID(ctx context.Context, id int64) (*domain.Profile, error) {
	return r.getOne(ctx, psql.Quote("id").EQ(psql.Arg(id)))
}

func (r *PostgresProfileReader) GetProfileByDni(ctx context.Context, dni int) (*domain.Profile, error) {
	return r.getOne(ctx, psql.Quote("dni").EQ(psql.Arg(dni)))
}

func (r *PostgresProfileReader) GetProfileByUserID(ctx context.Context, userID int64) (*domain.Profile, error) {
	return r.getOne(ctx, psql.Quote("user_id").EQ(psql.Arg(userID)))
}

func (r *PostgresProfileReader) GetProfileByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	return r.getOne(ctx, psql.Quote("email").EQ(psql.Arg(email)))
}

func (r *PostgresProfileReader) ProfileExistsByUserID(ctx context.Context, userID int64) (bool, error) {
	return r.exists(ctx, "user_id", userID)
}

func (r *PostgresProfileReader) ProfileExistsByDni(ctx context.Context, dni int) (bool, error) {
	return r.exists(ctx, "dni", dni)
}

func (r *PostgresProfileReader) getOne(ctx context.Context, where bob.Expression) (*domain.Profile, error) {
	query := psql.Select(
		sm.Columns(toAnySlice(profileColumns)...),
		sm.From(r.table),
		sm.Where(where),
		sm.Limit(1),
	)

	row, err := bob.One(ctx, r.pool.Reader(), query, scan.StructMapper[ProfileRow]())
	if err != nil {
		return nil, wrapProfileError(err)
	}
	p := toProfile(row)
	return &p, nil
}

func (r *PostgresProfileReader) exists(ctx context.Context, column string, value any) (bool, error) {
	raw := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`, r.table, column)

	q := psql.RawQuery(raw, value)
	found, err := bob.One(ctx, r.pool.Reader(), q, scan.SingleColumnMapper[bool])
	if err != nil {
		slog.ErrorContext(ctx, "existence probe error", slog.String("column", column), slog.Any("err", err))
		return false, wrapProfileError(err)
	}
	return found, nil
}

func toAnySlice(in []string) []any {
	out := make([]any, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}
