package entity

import "time"

// Podcast represents a bilingual podcast episode.
type Podcast struct {
	ID            string
	TitleEn       string
	TitleFa       string
	DescriptionEn string
	DescriptionFa string
	Duration      string // display duration, free-form ("45:30" or "۴۵:۳۰")
	Date          string
	AudioURL      *string // لینک پادکست صوتی
	YoutubeURL    *string // لینک ویدیو یوتوب
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
