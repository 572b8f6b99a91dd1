package models

// Job is an open position on the careers page.
type Job struct {
	ID           uint64 `gorm:"primaryKey" json:"id"`
	Title        string `gorm:"not null" json:"title"`
	Description  string `gorm:"type:text;not null" json:"description"`
	Requirements string `gorm:"type:text;not null" json:"requirements"`
	Location     string `gorm:"not null" json:"location"`
	IsActive     bool   `gorm:"not null;index" json:"isActive"`
}

// JobInput is the payload for creating a job.
type JobInput struct {
	Title        string `json:"title"        validate:"required"`
	Description  string `json:"description"  validate:"required"`
	Requirements string `json:"requirements" validate:"required"`
	Location     string `json:"location"     validate:"required"`
	IsActive     *bool  `json:"isActive"`
}

// Job builds the entity to persist, active by default.
func (in *JobInput) Job() Job {
	return Job{
		Title:        in.Title,
		Description:  in.Description,
		Requirements: in.Requirements,
		Location:     in.Location,
		IsActive:     boolOr(in.IsActive, true),
	}
}

// JobPatch is a partial update, nil fields stay untouched.
type JobPatch struct {
	Title        *string `json:"title"        validate:"omitempty,min=1"`
	Description  *string `json:"description"  validate:"omitempty,min=1"`
	Requirements *string `json:"requirements" validate:"omitempty,min=1"`
	Location     *string `json:"location"     validate:"omitempty,min=1"`
	IsActive     *bool   `json:"isActive"`
}

// Apply copies the present fields onto j.
func (p *JobPatch) Apply(j *Job) {
	setString(&j.Title, p.Title)
	setString(&j.Description, p.Description)
	setString(&j.Requirements, p.Requirements)
	setString(&j.Location, p.Location)
	setBool(&j.IsActive, p.IsActive)
}

// Columns returns the present fields keyed by column name.
func (p *JobPatch) Columns() map[string]any {
	cols := columns{}
	cols.put("title", p.Title)
	cols.put("description", p.Description)
	cols.put("requirements", p.Requirements)
	cols.put("location", p.Location)
	cols.put("is_active", p.IsActive)

	return cols
}
