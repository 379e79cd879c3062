package startup

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/siawash1991/my-website/internal/domain/entity"
	"github.com/siawash1991/my-website/internal/repository"
)

// CreateInput represents the input parameters for creating a new profile.
type CreateInput struct {
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
}

// UpdateInput represents the input parameters for updating a profile.
// Fields with nil values keep their stored value. A pointer to an empty
// string clears an optional URL.
type UpdateInput struct {
	NameEn        *string
	NameFa        *string
	DescriptionEn *string
	DescriptionFa *string
	StatusEn      *string
	StatusFa      *string
	CategoryEn    *string
	CategoryFa    *string
	Thumbnail     *string
	WebsiteURL    *string
	ArticleURL    *string
}

// Service provides startup management use cases.
type Service struct {
	Repo repository.StartupRepository
}

// List retrieves all profiles in the order they were added.
func (s *Service) List(ctx context.Context) ([]*entity.Startup, error) {
	startups, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list startups: %w", err)
	}
	return startups, nil
}

// Count returns the total number of stored profiles.
func (s *Service) Count(ctx context.Context) (int64, error) {
	count, err := s.Repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count startups: %w", err)
	}
	return count, nil
}

// Get retrieves a single profile by its ID.
// Returns ErrStartupNotFound if the profile does not exist.
func (s *Service) Get(ctx context.Context, id string) (*entity.Startup, error) {
	st, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get startup: %w", err)
	}
	if st == nil {
		return nil, ErrStartupNotFound
	}
	return st, nil
}

// Create validates the input and persists a new profile.
// Returns a ValidationError if any field is invalid.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Startup, error) {
	if err := validateRequiredFields([]requiredField{
		{"nameEn", in.NameEn}, {"nameFa", in.NameFa},
		{"descriptionEn", in.DescriptionEn}, {"descriptionFa", in.DescriptionFa},
		{"statusEn", in.StatusEn}, {"statusFa", in.StatusFa},
		{"categoryEn", in.CategoryEn}, {"categoryFa", in.CategoryFa},
		{"thumbnail", in.Thumbnail},
	}); err != nil {
		return nil, err
	}
	websiteURL, err := entity.NormalizeOptionalURL("websiteUrl", in.WebsiteURL)
	if err != nil {
		return nil, err
	}
	articleURL, err := entity.NormalizeOptionalURL("articleUrl", in.ArticleURL)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	st := &entity.Startup{
		ID:            uuid.NewString(),
		NameEn:        in.NameEn,
		NameFa:        in.NameFa,
		DescriptionEn: in.DescriptionEn,
		DescriptionFa: in.DescriptionFa,
		StatusEn:      in.StatusEn,
		StatusFa:      in.StatusFa,
		CategoryEn:    in.CategoryEn,
		CategoryFa:    in.CategoryFa,
		Thumbnail:     in.Thumbnail,
		WebsiteURL:    websiteURL,
		ArticleURL:    articleURL,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.Repo.Create(ctx, st); err != nil {
		return nil, fmt.Errorf("create startup: %w", err)
	}
	return st, nil
}

// Update merges the provided fields into the stored profile and persists it.
// Updated fields go through the same validation as Create.
// Returns ErrStartupNotFound if the profile does not exist.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*entity.Startup, error) {
	st, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get startup: %w", err)
	}
	if st == nil {
		return nil, ErrStartupNotFound
	}

	merges := []struct {
		field string
		src   *string
		dst   *string
	}{
		{"nameEn", in.NameEn, &st.NameEn},
		{"nameFa", in.NameFa, &st.NameFa},
		{"descriptionEn", in.DescriptionEn, &st.DescriptionEn},
		{"descriptionFa", in.DescriptionFa, &st.DescriptionFa},
		{"statusEn", in.StatusEn, &st.StatusEn},
		{"statusFa", in.StatusFa, &st.StatusFa},
		{"categoryEn", in.CategoryEn, &st.CategoryEn},
		{"categoryFa", in.CategoryFa, &st.CategoryFa},
		{"thumbnail", in.Thumbnail, &st.Thumbnail},
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
	if in.WebsiteURL != nil {
		websiteURL, err := entity.NormalizeOptionalURL("websiteUrl", in.WebsiteURL)
		if err != nil {
			return nil, err
		}
		st.WebsiteURL = websiteURL
	}
	if in.ArticleURL != nil {
		articleURL, err := entity.NormalizeOptionalURL("articleUrl", in.ArticleURL)
		if err != nil {
			return nil, err
		}
		st.ArticleURL = articleURL
	}
	st.UpdatedAt = time.Now().UTC()

	found, err := s.Repo.Update(ctx, st)
	if err != nil {
		return nil, fmt.Errorf("update startup: %w", err)
	}
	if !found {
		return nil, ErrStartupNotFound
	}
	return st, nil
}

// Delete removes a profile by its ID.
// Returns ErrStartupNotFound if the profile does not exist.
func (s *Service) Delete(ctx context.Context, id string) error {
	existed, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete startup: %w", err)
	}
	if !existed {
		return ErrStartupNotFound
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
