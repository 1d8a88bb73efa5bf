package domain

type (
	// GetProfileByIDQuery resolves a profile by its internal id.
	GetProfileByIDQuery struct {
		ProfileID int64
	}

	// GetProfileByDniQuery resolves a profile by its national identity
	// number.
	GetProfileByDniQuery struct {
		Dni int
	}

	// GetProfileByUserIDQuery resolves the profile attached to an
	// external user identity.
	GetProfileByUserIDQuery struct {
		UserID int64
	}
)

func NewGetProfileByIDQuery(profileID int64) (GetProfileByIDQuery, error) {
	if profileID < 1 {
		return GetProfileByIDQuery{}, invalidField("profileId", "must be a positive number")
	}
	return GetProfileByIDQuery{ProfileID: profileID}, nil
}

func NewGetProfileByDniQuery(dni int) (GetProfileByDniQuery, error) {
	if dni < DniMin || dni > DniMax {
		return GetProfileByDniQuery{}, invalidField("dni", "must be an eight digit number")
	}
	return GetProfileByDniQuery{Dni: dni}, nil
}

func NewGetProfileByUserIDQuery(userID int64) (GetProfileByUserIDQuery, error) {
	if userID < 1 {
		return GetProfileByUserIDQuery{}, invalidField("userId", "must be a positive number")
	}
	return GetProfileByUserIDQuery{UserID: userID}, nil
}
