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

package rest

import (
	"log/slog"
	"net/http"
	"strconv"

	"profiles/core/profile/domain"
	"profiles/modules/api/serde"
	"profiles/modules/middleware/problem"
)

// UpdateProfile replaces the mutable information of an existing profile.
// Returns 200 with the stored representation, 404 when the profile does not
// exist, 422 for validation errors and 409 when the new email or dni would
// collide with another profile.
func (p *ProfileAPI) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	profileID, err := strconv.ParseInt(r.PathValue("profileId"), 10, 64)
	if err != nil {
		prob := problem.BadRequest("invalid profile id")
		problem.WithInvalidParam("profileId", "must be an integer")(prob)
		writeProblem(ctx, w, prob)
		return
	}

	var body UpdateProfileRequest
	if err := serde.ParseJsonBody(r, &body); err != nil {
		writeProblem(ctx, w, problem.BadRequest("invalid request body"))
		return
	}

	cmd, err := domain.NewUpdateProfileCommand(
		body.FirstName, body.LastName, body.Dni, body.Email, body.Age, body.Location,
	)
	if err != nil {
		slog.DebugContext(ctx, "rejected update command", slog.Any("error", err))
		writeProblem(ctx, w, ProblemFromDomainError(err))
		return
	}

	id, err := p.app.UpdateProfile(ctx, profileID, cmd)
	if err != nil {
		slog.DebugContext(ctx, "domain error", slog.Any("error", err))
		writeProblem(ctx, w, ProblemFromDomainError(err))
		return
	}

	q, err := domain.NewGetProfileByIDQuery(id)
	if err != nil {
		writeProblem(ctx, w, problem.Internal("server error"))
		return
	}
	updated, err := p.app.GetProfileByID(ctx, q)
	if err != nil {
		slog.ErrorContext(ctx, "read-back of updated profile failed", slog.Any("error", err))
		writeProblem(ctx, w, problem.Internal("server error"))
		return
	}

	serde.WriteJSON(w, http.StatusOK, SuccessProfile{Data: mapProfile(updated)})
}
