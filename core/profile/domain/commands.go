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

package domain

import "strings"

type (
	// CreateProfileCommand is the validated intent to create a profile.
	// Construct it with NewCreateProfileCommand; a zero value bypasses
	// validation and must not reach a handler.
	CreateProfileCommand struct {
		FirstName string
		LastName  string
		Dni       int
		Email     string
		Age       int
		Location  string
		UserID    int64
	}

	// UpdateProfileCommand carries the same shape minus the user id,
	// which is immutable after creation.
	UpdateProfileCommand struct {
		FirstName string
		LastName  string
		Dni       int
		Email     string
		Age       int
		Location  string
	}
)

// validateProfileFields applies the single-field constraints shared by
// create and update intents. Fail-fast: the first violated field is the one
// reported, independent of storage state.
func validateProfileFields(firstName, lastName string, dni int, email string, age int, location string) error {
	if strings.TrimSpace(firstName) == "" {
		return invalidField("firstName", "must not be blank")
	}
	if strings.TrimSpace(lastName) == "" {
		return invalidField("lastName", "must not be blank")
	}
	if dni < DniMin || dni > DniMax {
		return invalidField("dni", "must be an eight digit number")
	}
	if strings.TrimSpace(email) == "" {
		return invalidField("email", "must not be blank")
	}
	if age <= 0 || age > AgeMax {
		return invalidField("age", "must be between 1 and 120")
	}
	if strings.TrimSpace(location) == "" {
		return invalidField("location", "must not be blank")
	}
	return nil
}

// NewCreateProfileCommand validates the input shape before it reaches the
// command handler. UserID intentionally has no positivity check here; the
// original contract treats it as an opaque required reference.
func NewCreateProfileCommand(firstName, lastName string, dni int, email string, age int, location string, userID int64) (CreateProfileCommand, error) {
	if err := validateProfileFields(firstName, lastName, dni, email, age, location); err != nil {
		return CreateProfileCommand{}, err
	}
	return CreateProfileCommand{
		FirstName: firstName,
		LastName:  lastName,
		Dni:       dni,
		Email:     email,
		Age:       age,
		Location:  location,
		UserID:    userID,
	}, nil
}

func NewUpdateProfileCommand(firstName, lastName string, dni int, email string, age int, location string) (UpdateProfileCommand, error) {
	if err := validateProfileFields(firstName, lastName, dni, email, age, location); err != nil {
		return UpdateProfileCommand{}, err
	}
	return UpdateProfileCommand{
		FirstName: firstName,
		LastName:  lastName,
		Dni:       dni,
		Email:     email,
		Age:       age,
		Location:  location,
	}, nil
}
