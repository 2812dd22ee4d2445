package repository

import "time"

// Contact represents a contact row.
type Contact struct {
	ID         string
	Name       string
	Email      string
	Phone      *string
	Company    *string
	Notes      *string
	Starred    bool
	SourceHash *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Tags       []Tag
}

// Tag represents a tag row.
type Tag struct {
	ID   string
	Name string
}
