package startup_test

import (
	"context"
	"errors"
	"testing"

	"github.com/siawash1991/my-website/internal/domain/entity"
	startupUC "github.com/siawash1991/my-website/internal/usecase/startup"
)

type stubRepo struct {
	data map[string]*entity.Startup
	err  error
}

func newStub() *stubRepo {
	return &stubRepo{data: map[string]*entity.Startup{}}
}

func (s *stubRepo) List(_ context.Context) ([]*entity.Startup, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]*entity.Startup, 0, len(s.data))
	for _, v := range s.data {
		out = append(out, v)
	}
	return out, nil
}
func (s *stubRepo) Get(_ context.Context, id string) (*entity.Startup, error) {
	return s.data[id], s.err
}
func (s *stubRepo) Create(_ context.Context, st *entity.Startup) error {
	if s.err != nil {
		return s.err
	}
	s.data[st.ID] = st
	return nil
}
func (s *stubRepo) Update(_ context.Context, st *entity.Startup) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	if _, ok := s.data[st.ID]; !ok {
		return false, nil
	}
	s.data[st.ID] = st
	return true, nil
}
func (s *stubRepo) Delete(_ context.Context, id string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	if _, ok := s.data[id]; !ok {
		return false, nil
	}
	delete(s.data, id)
	return true, nil
}
func (s *stubRepo) Count(_ context.Context) (int64, error) {
	return int64(len(s.data)), s.err
}

func validInput() startupUC.CreateInput {
	return startupUC.CreateInput{
		NameEn:        "Personalized Children's Story Creator",
		NameFa:        "داستان‌ساز شخصی کودکان",
		DescriptionEn: "AI-generated bedtime stories",
		DescriptionFa: "قصه‌های شب ساخته هوش مصنوعی",
		StatusEn:      "In Development",
		StatusFa:      "در حال توسعه",
		CategoryEn:    "AI",
		CategoryFa:    "هوش مصنوعی",
		Thumbnail:     "sparkles",
	}
}

func TestCreate_OK(t *testing.T) {
	repo := newStub()
	svc := &startupUC.Service{Repo: repo}

	got, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if got.ID == "" || got.WebsiteURL != nil {
		t.Fatalf("unexpected profile: %+v", got)
	}
}

func TestCreate_MissingStatus(t *testing.T) {
	svc := &startupUC.Service{Repo: newStub()}

	in := validInput()
	in.StatusFa = ""
	_, err := svc.Create(context.Background(), in)

	var ve *entity.ValidationError
	if !errors.As(err, &ve) || ve.Field != "statusFa" {
		t.Fatalf("want ValidationError on statusFa, got %v", err)
	}
}

func TestCreate_InvalidWebsiteURL(t *testing.T) {
	svc := &startupUC.Service{Repo: newStub()}

	in := validInput()
	bad := "javascript:alert(1)"
	in.WebsiteURL = &bad

	_, err := svc.Create(context.Background(), in)
	var ve *entity.ValidationError
	if !errors.As(err, &ve) || ve.Field != "websiteUrl" {
		t.Fatalf("want ValidationError on websiteUrl, got %v", err)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	svc := &startupUC.Service{Repo: newStub()}

	_, err := svc.Update(context.Background(), "missing", startupUC.UpdateInput{})
	if !errors.Is(err, startupUC.ErrStartupNotFound) {
		t.Fatalf("want ErrStartupNotFound, got %v", err)
	}
}

func TestUpdate_MergesStatus(t *testing.T) {
	repo := newStub()
	svc := &startupUC.Service{Repo: repo}

	created, _ := svc.Create(context.Background(), validInput())

	statusEn, statusFa := "Launched", "راه‌اندازی شده"
	got, err := svc.Update(context.Background(), created.ID, startupUC.UpdateInput{
		StatusEn: &statusEn,
		StatusFa: &statusFa,
	})
	if err != nil {
		t.Fatalf("Update err=%v", err)
	}
	if got.StatusEn != statusEn || got.StatusFa != statusFa {
		t.Fatalf("status not merged: %+v", got)
	}
	if got.NameEn != created.NameEn {
		t.Fatalf("name should be untouched, got %q", got.NameEn)
	}
}

func TestDelete_OK(t *testing.T) {
	repo := newStub()
	svc := &startupUC.Service{Repo: repo}

	created, _ := svc.Create(context.Background(), validInput())
	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete err=%v", err)
	}
	if len(repo.data) != 0 {
		t.Fatal("profile not removed")
	}
}
