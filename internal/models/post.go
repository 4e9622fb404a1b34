package models

import (
	"time"
)

// Blog post lifecycle statuses.
const (
	PostStatusDraft     = "draft"
	PostStatusPublished = "published"
	PostStatusScheduled = "scheduled"
	PostStatusArchived  = "archived"
)

// ValidPostStatuses defines the known blog post statuses. Unknown values are
// stored opaquely for forward compatibility but never interpreted.
var ValidPostStatuses = map[string]bool{
	PostStatusDraft:     true,
	PostStatusPublished: true,
	PostStatusScheduled: true,
	PostStatusArchived:  true,
}

// PostSEO holds optional search-engine metadata for a post.
type PostSEO struct {
	MetaTitle       *string  `json:"metaTitle,omitempty"`
	MetaDescription *string  `json:"metaDescription,omitempty"`
	Keywords        []string `json:"keywords,omitempty"`
}

// BlogPost represents a blog post record
type BlogPost struct {
	ID          int       `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Slug        string    `json:"slug" db:"slug"`
	Excerpt     *string   `json:"excerpt" db:"excerpt"`
	Content     *string   `json:"content" db:"content"`
	Author      string    `json:"author" db:"author"`
	AuthorID    int       `json:"authorId" db:"author_id"`
	PublishedAt time.Time `json:"publishedAt" db:"published_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
	Status      string    `json:"status" db:"status"`
	Category    *string   `json:"category" db:"category"`
	Tags        []string  `json:"tags" db:"tags"`
	ReadTime    *string   `json:"readTime" db:"read_time"`
	Views       int       `json:"views" db:"views"`
	Featured    bool      `json:"featured" db:"featured"`
	Image       *string   `json:"image" db:"image"`
	Seo         *PostSEO  `json:"seo" db:"seo"`
}

// BlogPostInput carries the client-editable fields of a blog post.
// Identity, slug, readTime and the views counter are server-owned.
type BlogPostInput struct {
	Title       string   `json:"title"`
	Excerpt     string   `json:"excerpt"`
	Content     string   `json:"content"`
	Author      string   `json:"author"`
	AuthorID    OptInt   `json:"authorId"`
	PublishedAt string   `json:"publishedAt"`
	Status      string   `json:"status"`
	Category    string   `json:"category"`
	Tags        StringList `json:"tags"`
	Featured    bool       `json:"featured"`
	Image       string     `json:"image"`
	Seo         *PostSEO   `json:"seo"`
}
