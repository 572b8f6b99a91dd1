package models

import "time"

// ContactSubmission is a message left through the public contact form.
type ContactSubmission struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Phone     *string   `json:"phone"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime:false" json:"createdAt"`
}

// ContactInput is the payload of the contact form.
type ContactInput struct {
	Name    string  `json:"name"    validate:"required"`
	Email   string  `json:"email"   validate:"required,email"`
	Phone   *string `json:"phone"`
	Message string  `json:"message" validate:"required"`
}

// ContactSubmission builds the entity to persist. The creation time is
// stamped by the store.
func (in *ContactInput) ContactSubmission() ContactSubmission {
	return ContactSubmission{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   nullable(in.Phone),
		Message: in.Message,
	}
}
