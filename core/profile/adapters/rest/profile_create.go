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
	"fmt"
	"log/slog"
	"net/http"

	"profiles/core/profile/domain"
	"profiles/modules/api/serde"
	"profiles/modules/middleware/problem"
)

// CreateProfile creates a new profile.
// Returns 201 with Location header on success, 422 for validation errors, 409 for duplicates.
func (p *ProfileAPI) CreateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body CreateProfileRequest
	if err := serde.ParseJsonBody(r, &body); err != nil {
		writeProblem(ctx, w, problem.BadRequest("invalid request body"))
		return
	}

	cmd, err := domain.NewCreateProfileCommand(
		body.FirstName, body.LastName, body.Dni, body.Email, body.Age, body.Location, body.UserID,
	)
	if err != nil {
		slog.DebugContext(ctx, "rejected create command", slog.Any("error", err))
		writeProblem(ctx, w, ProblemFromDomainError(err))
		return
	}

	id, err := p.app.CreateProfile(ctx, cmd)
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
	created, err := p.app.GetProfileByID(ctx, q)
	if err != nil {
		slog.ErrorContext(ctx, "read-back of created profile failed", slog.Any("error", err))
		writeProblem(ctx, w, problem.Internal("server error"))
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/v1/profiles/%d", id))
	serde.WriteJSON(w, http.StatusCreated, SuccessProfile{Data: mapProfile(created)})
}
