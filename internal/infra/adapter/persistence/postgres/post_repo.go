package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/siawash1991/my-website/internal/domain/entity"
	"github.com/siawash1991/my-website/internal/repository"
)

type PostRepo struct {
	db Querier
}

func NewPostRepo(db Querier) repository.PostRepository {
	return &PostRepo{db: db}
}

const postColumns = `id, title_en, title_fa, excerpt_en, excerpt_fa, content_en, content_fa,
category_en, category_fa, read_time, date, thumbnail, article_url, created_at, updated_at`

func scanPost(row interface{ Scan(dest ...any) error }) (*entity.Post, error) {
	var p entity.Post
	err := row.Scan(&p.ID, &p.TitleEn, &p.TitleFa, &p.ExcerptEn, &p.ExcerptFa,
		&p.ContentEn, &p.ContentFa, &p.CategoryEn, &p.CategoryFa,
		&p.ReadTime, &p.Date, &p.Thumbnail, &p.ArticleURL, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (repo *PostRepo) List(ctx context.Context) ([]*entity.Post, error) {
	const query = `
SELECT ` + postColumns + `
FROM posts
ORDER BY date ASC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	posts := make([]*entity.Post, 0, 32)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (repo *PostRepo) Get(ctx context.Context, id string) (*entity.Post, error) {
	const query = `
SELECT ` + postColumns + `
FROM posts
WHERE id = $1`
	p, err := scanPost(repo.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return p, nil
}

func (repo *PostRepo) Create(ctx context.Context, p *entity.Post) error {
	const query = `
INSERT INTO posts (` + postColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := repo.db.ExecContext(ctx, query,
		p.ID, p.TitleEn, p.TitleFa, p.ExcerptEn, p.ExcerptFa,
		p.ContentEn, p.ContentFa, p.CategoryEn, p.CategoryFa,
		p.ReadTime, p.Date, p.Thumbnail, p.ArticleURL, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *PostRepo) Update(ctx context.Context, p *entity.Post) (bool, error) {
	const query = `
UPDATE posts
SET title_en = $2, title_fa = $3, excerpt_en = $4, excerpt_fa = $5,
    content_en = $6, content_fa = $7, category_en = $8, category_fa = $9,
    read_time = $10, date = $11, thumbnail = $12, article_url = $13, updated_at = $14
WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query,
		p.ID, p.TitleEn, p.TitleFa, p.ExcerptEn, p.ExcerptFa,
		p.ContentEn, p.ContentFa, p.CategoryEn, p.CategoryFa,
		p.ReadTime, p.Date, p.Thumbnail, p.ArticleURL, p.UpdatedAt)
	if err != nil {
		return false, fmt.Errorf("Update: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("Update: RowsAffected: %w", err)
	}
	return n > 0, nil
}

func (repo *PostRepo) Delete(ctx context.Context, id string) (bool, error) {
	const query = `DELETE FROM posts WHERE id = $1`
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

func (repo *PostRepo) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM posts`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}
