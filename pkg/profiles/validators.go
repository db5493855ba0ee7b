package profiles

import "github.com/readshelf/readshelf/pkg/models"

// CreateProfilePayload is the request body for creating a profile.
// oktaUserId is required; everything else is optional.
type CreateProfilePayload struct {
	OktaUserID *string `json:"oktaUserId"`
	Email      *string `json:"email"`
	Name       *string `json:"name"`
	AvatarURL  *string `json:"avatarUrl"`
}

func (p *CreateProfilePayload) toModel() *models.Profile {
	profile := &models.Profile{
		Email:     p.Email,
		Name:      p.Name,
		AvatarURL: p.AvatarURL,
	}
	if p.OktaUserID != nil {
		profile.OktaUserID = *p.OktaUserID
	}
	return profile
}

// UpdateProfilePayload is the request body for updating a profile. Only the
// fields present in the body get written.
type UpdateProfilePayload struct {
	Email     *string `json:"email"`
	Name      *string `json:"name"`
	AvatarURL *string `json:"avatarUrl"`
}

func (p *UpdateProfilePayload) isEmpty() bool {
	return p.Email == nil && p.Name == nil && p.AvatarURL == nil
}
