package models

import "time"

// BlogPost is an article on the blog. Unpublished posts are drafts only
// visible to admins.
type BlogPost struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	Author      string    `gorm:"not null" json:"author"`
	PublishedAt time.Time `gorm:"not null" json:"publishedAt"`
	IsPublished bool      `gorm:"not null;index" json:"isPublished"`
	Thumbnail   *string   `json:"thumbnail"`
	Excerpt     *string   `gorm:"type:text" json:"excerpt"`
	Category    *string   `json:"category"`
}

// BlogPostInput is the payload for creating a blog post. The publish
// timestamp is always set by the store.
type BlogPostInput struct {
	Title       string  `json:"title"       validate:"required"`
	Content     string  `json:"content"     validate:"required"`
	Author      string  `json:"author"      validate:"required"`
	IsPublished *bool   `json:"isPublished"`
	Thumbnail   *string `json:"thumbnail"`
	Excerpt     *string `json:"excerpt"`
	Category    *string `json:"category"`
}

// BlogPost builds the entity to persist, drafts by default.
func (in *BlogPostInput) BlogPost() BlogPost {
	return BlogPost{
		Title:       in.Title,
		Content:     in.Content,
		Author:      in.Author,
		IsPublished: boolOr(in.IsPublished, false),
		Thumbnail:   nullable(in.Thumbnail),
		Excerpt:     nullable(in.Excerpt),
		Category:    nullable(in.Category),
	}
}

// BlogPostPatch is a partial update, nil fields stay untouched.
type BlogPostPatch struct {
	Title       *string `json:"title"       validate:"omitempty,min=1"`
	Content     *string `json:"content"     validate:"omitempty,min=1"`
	Author      *string `json:"author"      validate:"omitempty,min=1"`
	IsPublished *bool   `json:"isPublished"`
	Thumbnail   *string `json:"thumbnail"`
	Excerpt     *string `json:"excerpt"`
	Category    *string `json:"category"`
}

// Apply copies the present fields onto b.
func (p *BlogPostPatch) Apply(b *BlogPost) {
	setString(&b.Title, p.Title)
	setString(&b.Content, p.Content)
	setString(&b.Author, p.Author)
	setBool(&b.IsPublished, p.IsPublished)
	setNullable(&b.Thumbnail, p.Thumbnail)
	setNullable(&b.Excerpt, p.Excerpt)
	setNullable(&b.Category, p.Category)
}

// Columns returns the present fields keyed by column name.
func (p *BlogPostPatch) Columns() map[string]any {
	cols := columns{}
	cols.put("title", p.Title)
	cols.put("content", p.Content)
	cols.put("author", p.Author)
	cols.put("is_published", p.IsPublished)
	cols.putNullable("thumbnail", p.Thumbnail)
	cols.putNullable("excerpt", p.Excerpt)
	cols.putNullable("category", p.Category)

	return cols
}
