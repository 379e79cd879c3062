// Command seed prepares a fresh database: it runs migrations, creates the
// admin account from ADMIN_USER/ADMIN_PASSWORD, and loads the sample
// bilingual content. Collections that already hold rows are left alone, so
// the command is safe to run repeatedly.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"

	"github.com/siawash1991/my-website/internal/domain/entity"
	pgRepo "github.com/siawash1991/my-website/internal/infra/adapter/persistence/postgres"
	"github.com/siawash1991/my-website/internal/infra/db"
	"github.com/siawash1991/my-website/internal/observability/logging"
	"github.com/siawash1991/my-website/internal/repository"
	"github.com/siawash1991/my-website/tests/fixtures"
)

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	database := db.Open()
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := seedAdmin(ctx, pgRepo.NewUserRepo(database), logger); err != nil {
		logger.Error("admin account creation failed", slog.Any("error", err))
		os.Exit(1)
	}

	if err := seedContent(ctx, database, logger); err != nil {
		logger.Error("content seeding failed", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("seeding complete")
}

// seedAdmin creates the admin account. An existing account with the same
// username is not an error.
func seedAdmin(ctx context.Context, users repository.UserRepository, logger *slog.Logger) error {
	username := os.Getenv("ADMIN_USER")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		logger.Warn("ADMIN_USER or ADMIN_PASSWORD not set, skipping admin account")
		return nil
	}
	if len(password) < 8 {
		return errors.New("ADMIN_PASSWORD must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &entity.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := users.Create(ctx, user); err != nil {
		if errors.Is(err, entity.ErrUsernameTaken) {
			logger.Info("admin account already exists", slog.String("username", username))
			return nil
		}
		return err
	}

	logger.Info("admin account created", slog.String("username", username))
	return nil
}

// seedContent loads the fixture content into the three collections in
// parallel. A collection that already has rows is skipped.
func seedContent(ctx context.Context, database pgRepo.Querier, logger *slog.Logger) error {
	posts := pgRepo.NewPostRepo(database)
	podcasts := pgRepo.NewPodcastRepo(database)
	startups := pgRepo.NewStartupRepo(database)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := posts.Count(ctx)
		if err != nil {
			return err
		}
		if count > 0 {
			logger.Info("posts already present, skipping", slog.Int64("count", count))
			return nil
		}
		for _, p := range fixtures.Posts() {
			if err := posts.Create(ctx, p); err != nil {
				return err
			}
		}
		logger.Info("posts seeded", slog.Int("count", len(fixtures.Posts())))
		return nil
	})

	g.Go(func() error {
		count, err := podcasts.Count(ctx)
		if err != nil {
			return err
		}
		if count > 0 {
			logger.Info("podcasts already present, skipping", slog.Int64("count", count))
			return nil
		}
		for _, p := range fixtures.Podcasts() {
			if err := podcasts.Create(ctx, p); err != nil {
				return err
			}
		}
		logger.Info("podcasts seeded", slog.Int("count", len(fixtures.Podcasts())))
		return nil
	})

	g.Go(func() error {
		count, err := startups.Count(ctx)
		if err != nil {
			return err
		}
		if count > 0 {
			logger.Info("startups already present, skipping", slog.Int64("count", count))
			return nil
		}
		for _, s := range fixtures.Startups() {
			if err := startups.Create(ctx, s); err != nil {
				return err
			}
		}
		logger.Info("startups seeded", slog.Int("count", len(fixtures.Startups())))
		return nil
	})

	return g.Wait()
}
