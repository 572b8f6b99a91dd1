package models

// Partner is a technology partner. Inactive partners are still returned by
// the store, the front end hides them.
type Partner struct {
	ID          uint64  `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Logo        string  `gorm:"not null" json:"logo"`
	Order       int     `gorm:"column:display_order;not null;index" json:"order"`
	Description string  `gorm:"type:text;not null" json:"description"`
	Website     *string `json:"website"`
	IsActive    bool    `gorm:"not null" json:"isActive"`
}

// PartnerInput is the payload for creating a partner.
type PartnerInput struct {
	Name        string  `json:"name"        validate:"required"`
	Logo        string  `json:"logo"        validate:"required"`
	Order       *int    `json:"order"       validate:"required"`
	Description string  `json:"description" validate:"required"`
	Website     *string `json:"website"     validate:"omitzero,url"`
	IsActive    *bool   `json:"isActive"`
}

// Partner builds the entity to persist, active by default.
func (in *PartnerInput) Partner() Partner {
	return Partner{
		Name:        in.Name,
		Logo:        in.Logo,
		Order:       derefInt(in.Order),
		Description: in.Description,
		Website:     nullable(in.Website),
		IsActive:    boolOr(in.IsActive, true),
	}
}

// PartnerPatch is a partial update, nil fields stay untouched.
type PartnerPatch struct {
	Name        *string `json:"name"        validate:"omitempty,min=1"`
	Logo        *string `json:"logo"        validate:"omitempty,min=1"`
	Order       *int    `json:"order"`
	Description *string `json:"description" validate:"omitempty,min=1"`
	Website     *string `json:"website"     validate:"omitzero,url"`
	IsActive    *bool   `json:"isActive"`
}

// Apply copies the present fields onto pa.
func (p *PartnerPatch) Apply(pa *Partner) {
	setString(&pa.Name, p.Name)
	setString(&pa.Logo, p.Logo)
	setInt(&pa.Order, p.Order)
	setString(&pa.Description, p.Description)
	setNullable(&pa.Website, p.Website)
	setBool(&pa.IsActive, p.IsActive)
}

// Columns returns the present fields keyed by column name.
func (p *PartnerPatch) Columns() map[string]any {
	cols := columns{}
	cols.put("name", p.Name)
	cols.put("logo", p.Logo)
	cols.put("display_order", p.Order)
	cols.put("description", p.Description)
	cols.putNullable("website", p.Website)
	cols.put("is_active", p.IsActive)

	return cols
}
