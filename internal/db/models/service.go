package models

// Service is one offering shown on the services page.
type Service struct {
	// ID is assigned by the store on creation.
	ID uint64 `gorm:"primaryKey" json:"id"`
	// Title is the service headline.
	Title string `gorm:"not null" json:"title"`
	// Description is the service body text.
	Description string `gorm:"type:text;not null" json:"description"`
	// Image is the URL of the service illustration.
	Image string `gorm:"not null" json:"image"`
	// Order is the display position, lower first. Neither unique nor contiguous.
	Order int `gorm:"column:display_order;not null;index" json:"order"`
}

// ServiceInput is the payload for creating a service.
type ServiceInput struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
	Image       string `json:"image"       validate:"required"`
	Order       *int   `json:"order"       validate:"required"`
}

// Service builds the entity to persist. The id is left to the store.
func (in *ServiceInput) Service() Service {
	return Service{
		Title:       in.Title,
		Description: in.Description,
		Image:       in.Image,
		Order:       derefInt(in.Order),
	}
}

// ServicePatch is a partial update, nil fields stay untouched.
type ServicePatch struct {
	Title       *string `json:"title"       validate:"omitempty,min=1"`
	Description *string `json:"description" validate:"omitempty,min=1"`
	Image       *string `json:"image"       validate:"omitempty,min=1"`
	Order       *int    `json:"order"`
}

// Apply copies the present fields onto s.
func (p *ServicePatch) Apply(s *Service) {
	setString(&s.Title, p.Title)
	setString(&s.Description, p.Description)
	setString(&s.Image, p.Image)
	setInt(&s.Order, p.Order)
}

// Columns returns the present fields keyed by column name.
func (p *ServicePatch) Columns() map[string]any {
	cols := columns{}
	cols.put("title", p.Title)
	cols.put("description", p.Description)
	cols.put("image", p.Image)
	cols.put("display_order", p.Order)

	return cols
}
