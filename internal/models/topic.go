package models

// Topic represents a subject area articles are filed under. Topics are
// seed data and read-only through the API.
type Topic struct {
	Slug        string `json:"slug" db:"slug"`
	Description string `json:"description" db:"description"`
}
