package models

import "time"

type Favorite struct {
	VisitorID string    `db:"visitor_id"`
	AnimeID   string    `db:"anime_id"`
	Title     string    `db:"title"`
	CreatedAt time.Time `db:"created_at"`
}
