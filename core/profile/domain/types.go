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

import (
	"strconv"
	"time"
)

type (
	Application struct {
		reader ProfileReadStore
		writer ProfileWriteStore
	}

	// Profile is the domain model used by the application layer.
	// It holds the personal data linked to exactly one external user
	// identity (UserID). ID and UserID never change after creation.
	Profile struct {
		ID        int64
		FirstName string
		LastName  string
		Dni       int
		Email     string
		Age       int
		Location  string
		UserID    int64
		CreatedAt time.Time

		Version int64
	}
)

// UpdateInformation overwrites every mutable field in place. ID and UserID
// are left untouched. No validation happens here; callers are expected to
// have gone through a validated command first.
func (p *Profile) UpdateInformation(firstName, lastName string, dni int, email string, age int, location string) {
	p.FirstName = firstName
	p.LastName = lastName
	p.Dni = dni
	p.Email = email
	p.Age = age
	p.Location = location
}

func (p *Profile) V() string {
	return strconv.Itoa(int(p.Version))
}

const (
	// DniMin and DniMax bound the national identity number to exactly
	// eight digits.
	DniMin = 10_000_000
	DniMax = 99_999_999

	AgeMax = 120
)
