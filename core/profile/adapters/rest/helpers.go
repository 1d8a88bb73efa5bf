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
	"context"
	"errors"
	"net/http"

	"profiles/core/profile/domain"
	"profiles/modules/middleware"
	"profiles/modules/middleware/problem"
)

// CreateProfileRequest is the JSON body for POST /api/v1/profiles.
type CreateProfileRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Dni       int    `json:"dni"`
	Email     string `json:"email"`
	Age       int    `json:"age"`
	Location  string `json:"location"`
	UserID    int64  `json:"userId"`
}

// UpdateProfileRequest is the JSON body for PUT /api/v1/profiles/{profileId}.
// The owning user cannot be reassigned, so userId is absent here.
type UpdateProfileRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Dni       int    `json:"dni"`
	Email     string `json:"email"`
	Age       int    `json:"age"`
	Location  string `json:"location"`
}

// ProfileResource is the API representation of a profile.
type ProfileResource struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Dni       int    `json:"dni"`
	Email     string `json:"email"`
	Age       int    `json:"age"`
	Location  string `json:"location"`
	UserID    int64  `json:"userId"`
}

// SuccessProfile wraps a single profile response body.
type SuccessProfile struct {
	Data ProfileResource `json:"data"`
}

// mapProfile converts a domain profile to its API representation.
func mapProfile(p *domain.Profile) ProfileResource {
	return ProfileResource{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Dni:       p.Dni,
		Email:     p.Email,
		Age:       p.Age,
		Location:  p.Location,
		UserID:    p.UserID,
	}
}

// ProblemFromDomainError maps domain errors to RFC7807 problems. Validation
// failures carry the offending field as an invalidParams entry.
func ProblemFromDomainError(err error) *problem.Problem {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return problem.New(
			problem.WithTitle("Unprocessable Entity"),
			problem.WithStatus(http.StatusUnprocessableEntity),
			problem.WithDetail("validation failed"),
			problem.WithInvalidParam(verr.Field, verr.Reason),
		)
	case errors.Is(err, domain.ErrInvalidData):
		return problem.New(
			problem.WithTitle("Unprocessable Entity"),
			problem.WithStatus(http.StatusUnprocessableEntity),
			problem.WithDetail("validation failed"),
		)
	case errors.Is(err, domain.ErrDuplicateEmail):
		return conflict("a profile with this email already exists")
	case errors.Is(err, domain.ErrDuplicateUserID):
		return conflict("a profile for this user already exists")
	case errors.Is(err, domain.ErrDuplicateDni):
		return conflict("a profile with this dni already exists")
	case errors.Is(err, domain.ErrDuplicateProfile):
		return conflict("profile already exists")
	case errors.Is(err, domain.ErrProfileNotFound):
		return problem.New(
			problem.WithTitle("Not Found"),
			problem.WithStatus(http.StatusNotFound),
			problem.WithDetail("profile not found"),
		)
	default:
		return problem.Internal("server error")
	}
}

// writeProblem stamps the request id as traceId before emitting the problem.
func writeProblem(ctx context.Context, w http.ResponseWriter, prob *problem.Problem) {
	if id := middleware.RequestIDFromContext(ctx); id != "" {
		problem.WithTraceID(id)(prob)
	}
	problem.Write(w, prob)
}

func conflict(detail string) *problem.Problem {
	return problem.New(
		problem.WithTitle("Conflict"),
		problem.WithStatus(http.StatusConflict),
		problem.WithDetail(detail),
	)
}
