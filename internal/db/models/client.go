package models

// Client is a customer logo shown on the home page.
type Client struct {
	ID          uint64  `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Logo        string  `gorm:"not null" json:"logo"`
	Order       int     `gorm:"column:display_order;not null;index" json:"order"`
	Description *string `gorm:"type:text" json:"description"`
	Website     *string `json:"website"`
}

// ClientInput is the payload for creating a client.
type ClientInput struct {
	Name        string  `json:"name"        validate:"required"`
	Logo        string  `json:"logo"        validate:"required"`
	Order       *int    `json:"order"       validate:"required"`
	Description *string `json:"description"`
	Website     *string `json:"website"     validate:"omitzero,url"`
}

// Client builds the entity to persist.
func (in *ClientInput) Client() Client {
	return Client{
		Name:        in.Name,
		Logo:        in.Logo,
		Order:       derefInt(in.Order),
		Description: nullable(in.Description),
		Website:     nullable(in.Website),
	}
}

// ClientPatch is a partial update, nil fields stay untouched.
type ClientPatch struct {
	Name        *string `json:"name"        validate:"omitempty,min=1"`
	Logo        *string `json:"logo"        validate:"omitempty,min=1"`
	Order       *int    `json:"order"`
	Description *string `json:"description"`
	Website     *string `json:"website"     validate:"omitzero,url"`
}

// Apply copies the present fields onto c.
func (p *ClientPatch) Apply(c *Client) {
	setString(&c.Name, p.Name)
	setString(&c.Logo, p.Logo)
	setInt(&c.Order, p.Order)
	setNullable(&c.Description, p.Description)
	setNullable(&c.Website, p.Website)
}

// Columns returns the present fields keyed by column name.
func (p *ClientPatch) Columns() map[string]any {
	cols := columns{}
	cols.put("name", p.Name)
	cols.put("logo", p.Logo)
	cols.put("display_order", p.Order)
	cols.putNullable("description", p.Description)
	cols.putNullable("website", p.Website)

	return cols
}
