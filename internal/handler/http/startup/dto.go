// Package startup provides HTTP handlers for the startup profile endpoints.
package startup

import (
	"time"

	"github.com/siawash1991/my-website/internal/domain/entity"
)

// DTO represents the JSON structure for profile data transfer.
type DTO struct {
	ID            string    `json:"id"`
	NameEn        string    `json:"nameEn" example:"Personalized Children's Story Creator"`
	NameFa        string    `json:"nameFa" example:"داستان‌ساز شخصی کودکان"`
	DescriptionEn string    `json:"descriptionEn"`
	DescriptionFa string    `json:"descriptionFa"`
	StatusEn      string    `json:"statusEn" example:"In Development"`
	StatusFa      string    `json:"statusFa" example:"در حال توسعه"`
	CategoryEn    string    `json:"categoryEn" example:"AI"`
	CategoryFa    string    `json:"categoryFa" example:"هوش مصنوعی"`
	Thumbnail     string    `json:"thumbnail" example:"sparkles"`
	WebsiteURL    *string   `json:"websiteUrl"`
	ArticleURL    *string   `json:"articleUrl"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func fromEntity(s *entity.Startup) DTO {
	return DTO{
		ID:            s.ID,
		NameEn:        s.NameEn,
		NameFa:        s.NameFa,
		DescriptionEn: s.DescriptionEn,
		DescriptionFa: s.DescriptionFa,
		StatusEn:      s.StatusEn,
		StatusFa:      s.StatusFa,
		CategoryEn:    s.CategoryEn,
		CategoryFa:    s.CategoryFa,
		Thumbnail:     s.Thumbnail,
		WebsiteURL:    s.WebsiteURL,
		ArticleURL:    s.ArticleURL,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}
