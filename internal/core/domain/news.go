package domain

import "time"

// Field limits enforced on news payloads.
const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 1500
	MaxImageURLLength    = 3000
)

// News is a published content item owned by an Author.
type News struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	ImageURL        string    `json:"imageUrl"`
	AuthorID        string    `json:"authorId"`
	PublicationDate time.Time `json:"publicationDate"`
	CreationDate    time.Time `json:"creationDate"`
}

// PublicationDateInWindow reports whether pub falls within [today, today+7d]
// inclusive, at day granularity relative to now.
func PublicationDateInWindow(pub, now time.Time) bool {
	today := dateOnly(now)
	day := dateOnly(pub)
	return !day.Before(today) && !day.After(today.AddDate(0, 0, 7))
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
