package shelves

import "github.com/readshelf/readshelf/pkg/models"

// CreateShelfPayload is the request body for creating a shelf. The id is
// optional; when present it participates in the duplicate check and becomes
// the row's id.
type CreateShelfPayload struct {
	ID        *int    `json:"id"`
	Name      *string `json:"name"`
	ProfileID *int    `json:"profileId"`
}

func (p *CreateShelfPayload) toModel() *models.Shelf {
	shelf := &models.Shelf{}
	if p.ID != nil {
		shelf.ID = *p.ID
	}
	if p.Name != nil {
		shelf.Name = *p.Name
	}
	if p.ProfileID != nil {
		shelf.ProfileID = *p.ProfileID
	}
	return shelf
}

// UpdateShelfPayload is the request body for updating a shelf.
type UpdateShelfPayload struct {
	Name      *string `json:"name"`
	ProfileID *int    `json:"profileId"`
}

func (p *UpdateShelfPayload) isEmpty() bool {
	return p.Name == nil && p.ProfileID == nil
}
