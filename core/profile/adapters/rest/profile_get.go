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

// GetProfileByID retrieves a single profile by its numeric id.
// Returns 200 with ETag header on success, 404 if not found.
func (p *ProfileAPI) GetProfileByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	profileID, err := strconv.ParseInt(r.PathValue("profileId"), 10, 64)
	if err != nil {
		prob := problem.BadRequest("invalid profile id")
		problem.WithInvalidParam("profileId", "must be an integer")(prob)
		writeProblem(ctx, w, prob)
		return
	}

	q, err := domain.NewGetProfileByIDQuery(profileID)
	if err != nil {
		writeProblem(ctx, w, ProblemFromDomainError(err))
		return
	}

	prof, err := p.app.GetProfileByID(ctx, q)
	if err != nil {
		slog.DebugContext(ctx, "domain error", slog.Any("error", err))
		writeProblem(ctx, w, ProblemFromDomainError(err))
		return
	}

	w.Header().Set("ETag", strconv.Quote(etag.ETag(prof)))
	serde.WriteJSON(w, http.StatusOK, SuccessProfile{Data: mapProfile(prof)})
}
