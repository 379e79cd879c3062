// Package post provides HTTP handlers for the blog post endpoints.
// Reads are public; writes run behind the session gate.
package post

import (
	"time"

	"github.com/siawash1991/my-website/internal/domain/entity"
)

// DTO represents the JSON structure for post data transfer.
type DTO struct {
	ID         string    `json:"id" example:"e7b8f7a0-5c1f-4e0a-9f9d-2f8e4a1b6c3d"`
	TitleEn    string    `json:"titleEn" example:"The Future of AI-Powered Content Creation"`
	TitleFa    string    `json:"titleFa" example:"آینده تولید محتوای مبتنی بر هوش مصنوعی"`
	ExcerptEn  string    `json:"excerptEn"`
	ExcerptFa  string    `json:"excerptFa"`
	ContentEn  string    `json:"contentEn"`
	ContentFa  string    `json:"contentFa"`
	CategoryEn string    `json:"categoryEn" example:"Content AI"`
	CategoryFa string    `json:"categoryFa" example:"هوش مصنوعی محتوا"`
	ReadTime   int       `json:"readTime" example:"8"`
	Date       string    `json:"date" example:"2024-10-15"`
	Thumbnail  string    `json:"thumbnail" example:"ai-content"`
	ArticleURL *string   `json:"articleUrl"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func fromEntity(p *entity.Post) DTO {
	return DTO{
		ID:         p.ID,
		TitleEn:    p.TitleEn,
		TitleFa:    p.TitleFa,
		ExcerptEn:  p.ExcerptEn,
		ExcerptFa:  p.ExcerptFa,
		ContentEn:  p.ContentEn,
		ContentFa:  p.ContentFa,
		CategoryEn: p.CategoryEn,
		CategoryFa: p.CategoryFa,
		ReadTime:   p.ReadTime,
		Date:       p.Date,
		Thumbnail:  p.Thumbnail,
		ArticleURL: p.ArticleURL,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
