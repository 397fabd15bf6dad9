package models

import "time"

// Post is a blog entry owned by exactly one user.
type Post struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"` // set once on create
	AuthorID  int       `json:"author_id"`  // users.id of the owner
}
