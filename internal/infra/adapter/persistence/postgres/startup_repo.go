package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/siawash1991/my-website/internal/domain/entity"
	"github.com/siawash1991/my-website/internal/repository"
)

type StartupRepo struct {
	db Querier
}

func NewStartupRepo(db Querier) repository.StartupRepository {
	return &StartupRepo{db: db}
}

const startupColumns = `id, name_en, name_fa, description_en, description_fa,
status_en, status_fa, category_en, category_fa, thumbnail, website_url, article_url,
created_at, updated_at`

func scanStartup(row interface{ Scan(dest ...any) error }) (*entity.Startup, error) {
	var s entity.Startup
	err := row.Scan(&s.ID, &s.NameEn, &s.NameFa, &s.DescriptionEn, &s.DescriptionFa,
		&s.StatusEn, &s.StatusFa, &s.CategoryEn, &s.CategoryFa,
		&s.Thumbnail, &s.WebsiteURL, &s.ArticleURL, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (repo *StartupRepo) List(ctx context.Context) ([]*entity.Startup, error) {
	// استارتاپ‌ها به ترتیب ثبت برگردانده می‌شوند
	const query = `
SELECT ` + startupColumns + `
FROM startups
ORDER BY created_at ASC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	startups := make([]*entity.Startup, 0, 32)
	for rows.Next() {
		s, err := scanStartup(rows)
		if err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		startups = append(startups, s)
	}
	return startups, rows.Err()
}

func (repo *StartupRepo) Get(ctx context.Context, id string) (*entity.Startup, error) {
	const query = `
SELECT ` + startupColumns + `
FROM startups
WHERE id = $1`
	s, err := scanStartup(repo.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return s, nil
}

func (repo *StartupRepo) Create(ctx context.Context, s *entity.Startup) error {
	const query = `
INSERT INTO startups (` + startupColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := repo.db.ExecContext(ctx, query,
		s.ID, s.NameEn, s.NameFa, s.DescriptionEn, s.DescriptionFa,
		s.StatusEn, s.StatusFa, s.CategoryEn, s.CategoryFa,
		s.Thumbnail, s.WebsiteURL, s.ArticleURL, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *StartupRepo) Update(ctx context.Context, s *entity.Startup) (bool, error) {
	const query = `
UPDATE startups
SET name_en = $2, name_fa = $3, description_en = $4, description_fa = $5,
    status_en = $6, status_fa = $7, category_en = $8, category_fa = $9,
    thumbnail = $10, website_url = $11, article_url = $12, updated_at = $13
WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query,
		s.ID, s.NameEn, s.NameFa, s.DescriptionEn, s.DescriptionFa,
		s.StatusEn, s.StatusFa, s.CategoryEn, s.CategoryFa,
		s.Thumbnail, s.WebsiteURL, s.ArticleURL, s.UpdatedAt)
	if err != nil {
		return false, fmt.Errorf("Update: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("Update: RowsAffected: %w", err)
	}
	return n > 0, nil
}

func (repo *StartupRepo) Delete(ctx context.Context, id string) (bool, error) {
	const query = `DELETE FROM startups WHERE id = $1`
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

func (repo *StartupRepo) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM startups`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}
