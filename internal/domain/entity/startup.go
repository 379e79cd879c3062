package entity

import "time"

// Startup represents a bilingual startup concept shown on the ideas page.
// Status is free-form display text ("In Development", "مرحله ایده").
type Startup struct {
	ID            string
	NameEn        string
	NameFa        string
	DescriptionEn string
	DescriptionFa string
	StatusEn      string
	StatusFa      string
	CategoryEn    string
	CategoryFa    string
	Thumbnail     string
	WebsiteURL    *string
	ArticleURL    *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
