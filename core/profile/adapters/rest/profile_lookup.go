// Copyright 2025 Nguyen Nhat Nguyen
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

package rest

import (
	"log/slog"
	"net/http"
	"strconv"

	"profiles/core/profile/domain"
	"profiles/modules/api/serde"
	"profiles/modules/etag"
	"profiles/modules/middleware/problem"
)

// LookupProfile retrieves a single profile by dni or userId query parameter.
// When both are present, dni takes precedence. With neither, the request is
// rejected with 400.
func (p *ProfileAPI) LookupProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	dniParam := r.URL.Query().Get("dni")
	userIDParam := r.URL.Query().Get("userId")

	var (
		prof *domain.Profile
		err  error
	)
	switch {
	case dniParam != "":
		var dni int
		dni, err = strconv.Atoi(dniParam)
		if err != nil {
			prob := problem.BadRequest("invalid dni")
			problem.WithInvalidParam("dni", "must be an integer")(prob)
			writeProblem(ctx, w, prob)
			return
		}
		var q domain.GetProfileByDniQuery
		if q, err = domain.NewGetProfileByDniQuery(dni); err == nil {
			prof, err = p.app.GetProfileByDni(ctx, q)
		}
	case userIDParam != "":
		var userID int64
		userID, err = strconv.ParseInt(userIDParam, 10, 64)
		if err != nil {
			prob := problem.BadRequest("invalid userId")
			problem.WithInvalidParam("userId", "must be an integer")(prob)
			writeProblem(ctx, w, prob)
			return
		}
		var q domain.GetProfileByUserIDQuery
		if q, err = domain.NewGetProfileByUserIDQuery(userID); err == nil {
			prof, err = p.app.GetProfileByUserID(ctx, q)
		}
	default:
		writeProblem(ctx, w, problem.BadRequest("either dni or userId must be provided"))
		return
	}

	if err != nil {
		slog.DebugContext(ctx, "domain error", slog.Any("error", err))
		writeProblem(ctx, w, ProblemFromDomainError(err))
		return
	}

	w.Header().Set("ETag", strconv.Quote(etag.ETag(prof)))
	serde.WriteJSON(w, http.StatusOK, SuccessProfile{Data: mapProfile(prof)})
}
