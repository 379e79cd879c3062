package post

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/siawash1991/my-website/internal/domain/entity"
	"github.com/siawash1991/my-website/internal/repository"
)

// CreateInput represents the input parameters for creating a new post.
type CreateInput struct {
	TitleEn    string
	TitleFa    string
	ExcerptEn  string
	ExcerptFa  string
	ContentEn  string
	ContentFa  string
	CategoryEn string
	CategoryFa string
	ReadTime   int
	Date       string
	Thumbnail  string
	ArticleURL *string
}

// UpdateInput represents the input parameters for updating an existing post.
// Fields with nil values keep their stored value. A pointer to an empty
// string clears an optional URL.
type UpdateInput struct {
	TitleEn    *string
	TitleFa    *string
	ExcerptEn  *string
	ExcerptFa  *string
	ContentEn  *string
	ContentFa  *string
	CategoryEn *string
	CategoryFa *string
	ReadTime   *int
	Date       *string
	Thumbnail  *string
	ArticleURL *string
}

// Service provides post management use cases.
type Service struct {
	Repo repository.PostRepository
}

// List retrieves all posts ordered by publication date.
func (s *Service) List(ctx context.Context) ([]*entity.Post, error) {
	posts, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

// Count returns the total number of stored posts.
func (s *Service) Count(ctx context.Context) (int64, error) {
	count, err := s.Repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return count, nil
}

// Get retrieves a single post by its ID.
// Returns ErrPostNotFound if the post does not exist.
func (s *Service) Get(ctx context.Context, id string) (*entity.Post, error) {
	p, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	if p == nil {
		return nil, ErrPostNotFound
	}
	return p, nil
}

// Create validates the input and persists a new post.
// Returns a ValidationError if any field is invalid.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Post, error) {
	if err := validateRequiredFields([]requiredField{
		{"titleEn", in.TitleEn}, {"titleFa", in.TitleFa},
		{"excerptEn", in.ExcerptEn}, {"excerptFa", in.ExcerptFa},
		{"contentEn", in.ContentEn}, {"contentFa", in.ContentFa},
		{"categoryEn", in.CategoryEn}, {"categoryFa", in.CategoryFa},
		{"date", in.Date}, {"thumbnail", in.Thumbnail},
	}); err != nil {
		return nil, err
	}
	if in.ReadTime <= 0 {
		return nil, &entity.ValidationError{Field: "readTime", Message: "must be positive"}
	}
	articleURL, err := entity.NormalizeOptionalURL("articleUrl", in.ArticleURL)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	p := &entity.Post{
		ID:         uuid.NewString(),
		TitleEn:    in.TitleEn,
		TitleFa:    in.TitleFa,
		ExcerptEn:  in.ExcerptEn,
		ExcerptFa:  in.ExcerptFa,
		ContentEn:  in.ContentEn,
		ContentFa:  in.ContentFa,
		CategoryEn: in.CategoryEn,
		CategoryFa: in.CategoryFa,
		ReadTime:   in.ReadTime,
		Date:       in.Date,
		Thumbnail:  in.Thumbnail,
		ArticleURL: articleURL,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return p, nil
}

// Update merges the provided fields into the stored post and persists it.
// Updated fields go through the same validation as Create.
// Returns ErrPostNotFound if the post does not exist.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*entity.Post, error) {
	p, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	if p == nil {
		return nil, ErrPostNotFound
	}

	merges := []struct {
		field string
		src   *string
		dst   *string
	}{
		{"titleEn", in.TitleEn, &p.TitleEn},
		{"titleFa", in.TitleFa, &p.TitleFa},
		{"excerptEn", in.ExcerptEn, &p.ExcerptEn},
		{"excerptFa", in.ExcerptFa, &p.ExcerptFa},
		{"contentEn", in.ContentEn, &p.ContentEn},
		{"contentFa", in.ContentFa, &p.ContentFa},
		{"categoryEn", in.CategoryEn, &p.CategoryEn},
		{"categoryFa", in.CategoryFa, &p.CategoryFa},
		{"date", in.Date, &p.Date},
		{"thumbnail", in.Thumbnail, &p.Thumbnail},
	}
	for _, m := range merges {
		if m.src == nil {
			continue
		}
		if err := entity.ValidateRequired(m.field, *m.src); err != nil {
			return nil, err
		}
		*m.dst = *m.src
	}
	if in.ReadTime != nil {
		if *in.ReadTime <= 0 {
			return nil, &entity.ValidationError{Field: "readTime", Message: "must be positive"}
		}
		p.ReadTime = *in.ReadTime
	}
	if in.ArticleURL != nil {
		articleURL, err := entity.NormalizeOptionalURL("articleUrl", in.ArticleURL)
		if err != nil {
			return nil, err
		}
		p.ArticleURL = articleURL
	}
	p.UpdatedAt = time.Now().UTC()

	found, err := s.Repo.Update(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	if !found {
		return nil, ErrPostNotFound
	}
	return p, nil
}

// Delete removes a post by its ID.
// Returns ErrPostNotFound if the post does not exist.
func (s *Service) Delete(ctx context.Context, id string) error {
	existed, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if !existed {
		return ErrPostNotFound
	}
	return nil
}

type requiredField struct {
	field string
	value string
}

func validateRequiredFields(fields []requiredField) error {
	for _, f := range fields {
		if err := entity.ValidateRequired(f.field, f.value); err != nil {
			return err
		}
	}
	return nil
}
