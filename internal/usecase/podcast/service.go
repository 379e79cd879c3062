package podcast

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/siawash1991/my-website/internal/domain/entity"
	"github.com/siawash1991/my-website/internal/repository"
)

// CreateInput represents the input parameters for creating a new episode.
type CreateInput struct {
	TitleEn       string
	TitleFa       string
	DescriptionEn string
	DescriptionFa string
	Duration      string
	Date          string
	AudioURL      *string
	YoutubeURL    *string
}

// UpdateInput represents the input parameters for updating an episode.
// Fields with nil values keep their stored value. A pointer to an empty
// string clears an optional URL.
type UpdateInput struct {
	TitleEn       *string
	TitleFa       *string
	DescriptionEn *string
	DescriptionFa *string
	Duration      *string
	Date          *string
	AudioURL      *string
	YoutubeURL    *string
}

// Service provides podcast management use cases.
type Service struct {
	Repo repository.PodcastRepository
}

// List retrieves all episodes ordered by publication date.
func (s *Service) List(ctx context.Context) ([]*entity.Podcast, error) {
	podcasts, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list podcasts: %w", err)
	}
	return podcasts, nil
}

// Count returns the total number of stored episodes.
func (s *Service) Count(ctx context.Context) (int64, error) {
	count, err := s.Repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count podcasts: %w", err)
	}
	return count, nil
}

// Get retrieves a single episode by its ID.
// Returns ErrPodcastNotFound if the episode does not exist.
func (s *Service) Get(ctx context.Context, id string) (*entity.Podcast, error) {
	p, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get podcast: %w", err)
	}
	if p == nil {
		return nil, ErrPodcastNotFound
	}
	return p, nil
}

// Create validates the input and persists a new episode.
// Returns a ValidationError if any field is invalid.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Podcast, error) {
	if err := validateRequiredFields([]requiredField{
		{"titleEn", in.TitleEn}, {"titleFa", in.TitleFa},
		{"descriptionEn", in.DescriptionEn}, {"descriptionFa", in.DescriptionFa},
		{"duration", in.Duration}, {"date", in.Date},
	}); err != nil {
		return nil, err
	}
	audioURL, err := entity.NormalizeOptionalURL("audioUrl", in.AudioURL)
	if err != nil {
		return nil, err
	}
	youtubeURL, err := entity.NormalizeOptionalURL("youtubeUrl", in.YoutubeURL)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	p := &entity.Podcast{
		ID:            uuid.NewString(),
		TitleEn:       in.TitleEn,
		TitleFa:       in.TitleFa,
		DescriptionEn: in.DescriptionEn,
		DescriptionFa: in.DescriptionFa,
		Duration:      in.Duration,
		Date:          in.Date,
		AudioURL:      audioURL,
		YoutubeURL:    youtubeURL,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create podcast: %w", err)
	}
	return p, nil
}

// Update merges the provided fields into the stored episode and persists it.
// Updated fields go through the same validation as Create.
// Returns ErrPodcastNotFound if the episode does not exist.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*entity.Podcast, error) {
	p, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get podcast: %w", err)
	}
	if p == nil {
		return nil, ErrPodcastNotFound
	}

	merges := []struct {
		field string
		src   *string
		dst   *string
	}{
		{"titleEn", in.TitleEn, &p.TitleEn},
		{"titleFa", in.TitleFa, &p.TitleFa},
		{"descriptionEn", in.DescriptionEn, &p.DescriptionEn},
		{"descriptionFa", in.DescriptionFa, &p.DescriptionFa},
		{"duration", in.Duration, &p.Duration},
		{"date", in.Date, &p.Date},
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
	if in.AudioURL != nil {
		audioURL, err := entity.NormalizeOptionalURL("audioUrl", in.AudioURL)
		if err != nil {
			return nil, err
		}
		p.AudioURL = audioURL
	}
	if in.YoutubeURL != nil {
		youtubeURL, err := entity.NormalizeOptionalURL("youtubeUrl", in.YoutubeURL)
		if err != nil {
			return nil, err
		}
		p.YoutubeURL = youtubeURL
	}
	p.UpdatedAt = time.Now().UTC()

	found, err := s.Repo.Update(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("update podcast: %w", err)
	}
	if !found {
		return nil, ErrPodcastNotFound
	}
	return p, nil
}

// Delete removes an episode by its ID.
// Returns ErrPodcastNotFound if the episode does not exist.
func (s *Service) Delete(ctx context.Context, id string) error {
	existed, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete podcast: %w", err)
	}
	if !existed {
		return ErrPodcastNotFound
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
