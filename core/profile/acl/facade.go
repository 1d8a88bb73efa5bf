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

// Package acl exposes the profile context to other bounded contexts
// through a primitive-parameter facade, so callers never depend on the
// command and query types directly.
package acl

import (
	"context"

	"profiles/core/profile/domain"
)

type Facade struct {
	app *domain.Application
}

func NewFacade(app *domain.Application) *Facade {
	return &Facade{app: app}
}

// CreateProfile builds a validated create command from primitives and
// delegates to the command handler. Validation and handler failures
// propagate unchanged.
func (f *Facade) CreateProfile(ctx context.Context, firstName, lastName string, dni int, email string, age int, location string, userID int64) (int64, error) {
	cmd, err := domain.NewCreateProfileCommand(firstName, lastName, dni, email, age, location, userID)
	if err != nil {
		return 0, err
	}
	return f.app.CreateProfile(ctx, cmd)
}

// UpdateProfile builds a validated update command from primitives and
// delegates to the command handler.
func (f *Facade) UpdateProfile(ctx context.Context, profileID int64, firstName, lastName string, dni int, email string, age int, location string) (int64, error) {
	cmd, err := domain.NewUpdateProfileCommand(firstName, lastName, dni, email, age, location)
	if err != nil {
		return 0, err
	}
	return f.app.UpdateProfile(ctx, profileID, cmd)
}
