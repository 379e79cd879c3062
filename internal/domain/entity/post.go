// Package entity defines the core domain entities and validation logic for
// the portfolio backend. It contains the bilingual content records (Post,
// Podcast, Startup) along with the account and session types and their
// domain-specific errors.
package entity

import "time"

// Post represents a bilingual blog post. The English and Farsi fields are
// independent strings; the system never cross-checks that the two languages
// carry the same content.
type Post struct {
	ID         string
	TitleEn    string
	TitleFa    string
	ExcerptEn  string
	ExcerptFa  string
	ContentEn  string
	ContentFa  string
	CategoryEn string
	CategoryFa string
	ReadTime   int    // minutes, must be positive
	Date       string // display date, free-form (Gregorian or Jalali)
	Thumbnail  string
	ArticleURL *string // لینک به مقاله کامل — absolute URL or absent
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
