package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/siawash1991/my-website/internal/domain/entity"
	"github.com/siawash1991/my-website/internal/repository"
)

type PodcastRepo struct {
	db Querier
}

func NewPodcastRepo(db Querier) repository.PodcastRepository {
	return &PodcastRepo{db: db}
}

const podcastColumns = `id, title_en, title_fa, description_en, description_fa,
duration, date, audio_url, youtube_url, created_at, updated_at`

func scanPodcast(row interface{ Scan(dest ...any) error }) (*entity.Podcast, error) {
	var p entity.Podcast
	err := row.Scan(&p.ID, &p.TitleEn, &p.TitleFa, &p.DescriptionEn, &p.DescriptionFa,
		&p.Duration, &p.Date, &p.AudioURL, &p.YoutubeURL, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (repo *PodcastRepo) List(ctx context.Context) ([]*entity.Podcast, error) {
	const query = `
SELECT ` + podcastColumns + `
FROM podcasts
ORDER BY date ASC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	podcasts := make([]*entity.Podcast, 0, 32)
	for rows.Next() {
		p, err := scanPodcast(rows)
		if err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		podcasts = append(podcasts, p)
	}
	return podcasts, rows.Err()
}

func (repo *PodcastRepo) Get(ctx context.Context, id string) (*entity.Podcast, error) {
	const query = `
SELECT ` + podcastColumns + `
FROM podcasts
WHERE id = $1`
	p, err := scanPodcast(repo.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return p, nil
}

func (repo *PodcastRepo) Create(ctx context.Context, p *entity.Podcast) error {
	const query = `
INSERT INTO podcasts (` + podcastColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := repo.db.ExecContext(ctx, query,
		p.ID, p.TitleEn, p.TitleFa, p.DescriptionEn, p.DescriptionFa,
		p.Duration, p.Date, p.AudioURL, p.YoutubeURL, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *PodcastRepo) Update(ctx context.Context, p *entity.Podcast) (bool, error) {
	const query = `
UPDATE podcasts
SET title_en = $2, title_fa = $3, description_en = $4, description_fa = $5,
    duration = $6, date = $7, audio_url = $8, youtube_url = $9, updated_at = $10
WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query,
		p.ID, p.TitleEn, p.TitleFa, p.DescriptionEn, p.DescriptionFa,
		p.Duration, p.Date, p.AudioURL, p.YoutubeURL, p.UpdatedAt)
	if err != nil {
		return false, fmt.Errorf("Update: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("Update: RowsAffected: %w", err)
	}
	return n > 0, nil
}

func (repo *PodcastRepo) Delete(ctx context.Context, id string) (bool, error) {
	const query = `DELETE FROM podcasts WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("Delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("Delete: RowsAffected: %w", err)
	}
	return n > 0, nil
}

func (repo *PodcastRepo) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM podcasts`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}
