// Package podcast provides HTTP handlers for the podcast episode endpoints.
package podcast

import (
	"time"

	"github.com/siawash1991/my-website/internal/domain/entity"
)

// DTO represents the JSON structure for episode data transfer.
type DTO struct {
	ID            string    `json:"id"`
	TitleEn       string    `json:"titleEn" example:"ChatGPT and the Future of Work"`
	TitleFa       string    `json:"titleFa" example:"ChatGPT و آینده کار"`
	DescriptionEn string    `json:"descriptionEn"`
	DescriptionFa string    `json:"descriptionFa"`
	Duration      string    `json:"duration" example:"45:30"`
	Date          string    `json:"date" example:"2024-10-20"`
	AudioURL      *string   `json:"audioUrl"`
	YoutubeURL    *string   `json:"youtubeUrl"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func fromEntity(p *entity.Podcast) DTO {
	return DTO{
		ID:            p.ID,
		TitleEn:       p.TitleEn,
		TitleFa:       p.TitleFa,
		DescriptionEn: p.DescriptionEn,
		DescriptionFa: p.DescriptionFa,
		Duration:      p.Duration,
		Date:          p.Date,
		AudioURL:      p.AudioURL,
		YoutubeURL:    p.YoutubeURL,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
