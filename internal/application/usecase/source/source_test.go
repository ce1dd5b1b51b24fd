// Package source contains the income source management use cases.
package source

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/sideincome-tracker/backend/internal/domain/entity"
	domainerror "github.com/sideincome-tracker/backend/internal/domain/error"
)

type fakeSourceRepo struct {
	sources map[uuid.UUID]*entity.IncomeSource
	deleted []uuid.UUID
}

func newFakeSourceRepo(sources ...*entity.IncomeSource) *fakeSourceRepo {
	repo := &fakeSourceRepo{sources: make(map[uuid.UUID]*entity.IncomeSource)}
	for _, s := range sources {
		repo.sources[s.ID] = s
	}
	return repo
}

func (r *fakeSourceRepo) Create(_ context.Context, source *entity.IncomeSource) error {
	r.sources[source.ID] = source
	return nil
}

func (r *fakeSourceRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.IncomeSource, error) {
	source, ok := r.sources[id]
	if !ok {
		return nil, domainerror.ErrSourceNotFound
	}
	return source, nil
}

func (r *fakeSourceRepo) FindAll(_ context.Context) ([]*entity.IncomeSource, error) {
	all := make([]*entity.IncomeSource, 0, len(r.sources))
	for _, s := range r.sources {
		all = append(all, s)
	}
	return all, nil
}

func (r *fakeSourceRepo) Update(_ context.Context, source *entity.IncomeSource) error {
	r.sources[source.ID] = source
	return nil
}

func (r *fakeSourceRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.sources, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestCreateSourceUseCase(t *testing.T) {
	t.Run("creates an active source", func(t *testing.T) {
		repo := newFakeSourceRepo()
		uc := NewCreateSourceUseCase(repo)

		out, err := uc.Execute(context.Background(), CreateSourceInput{
			Name:        "Freelance Dev",
			Type:        "FREELANCE",
			Description: "contract work",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Source.IsActive {
			t.Error("expected new source to start active")
		}
		if out.Source.Type != entity.IncomeSourceTypeFreelance {
			t.Errorf("unexpected type: %s", out.Source.Type)
		}
		if _, ok := repo.sources[out.Source.ID]; !ok {
			t.Error("expected source persisted")
		}
	})

	t.Run("rejects a blank name", func(t *testing.T) {
		uc := NewCreateSourceUseCase(newFakeSourceRepo())

		_, err := uc.Execute(context.Background(), CreateSourceInput{Name: "   ", Type: "ETC"})
		if !errors.Is(err, domainerror.ErrSourceNameRequired) {
			t.Errorf("expected ErrSourceNameRequired, got %v", err)
		}
	})

	t.Run("rejects an overlong name", func(t *testing.T) {
		uc := NewCreateSourceUseCase(newFakeSourceRepo())

		_, err := uc.Execute(context.Background(), CreateSourceInput{
			Name: strings.Repeat("x", MaxNameLength+1),
			Type: "ETC",
		})
		if !errors.Is(err, domainerror.ErrSourceNameTooLong) {
			t.Errorf("expected ErrSourceNameTooLong, got %v", err)
		}
	})

	t.Run("rejects an unknown type", func(t *testing.T) {
		uc := NewCreateSourceUseCase(newFakeSourceRepo())

		_, err := uc.Execute(context.Background(), CreateSourceInput{Name: "Shop", Type: "RETAIL"})
		if !errors.Is(err, domainerror.ErrInvalidSourceType) {
			t.Errorf("expected ErrInvalidSourceType, got %v", err)
		}
	})
}

func TestGetSourceUseCase(t *testing.T) {
	t.Run("returns the source", func(t *testing.T) {
		source := entity.NewIncomeSource("Blog", entity.IncomeSourceTypePassive, "")
		uc := NewGetSourceUseCase(newFakeSourceRepo(source))

		out, err := uc.Execute(context.Background(), GetSourceInput{ID: source.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Source.ID != source.ID {
			t.Errorf("unexpected source: %v", out.Source.ID)
		}
	})

	t.Run("unknown id yields not-found", func(t *testing.T) {
		uc := NewGetSourceUseCase(newFakeSourceRepo())

		_, err := uc.Execute(context.Background(), GetSourceInput{ID: uuid.New()})
		if !errors.Is(err, domainerror.ErrSourceNotFound) {
			t.Errorf("expected ErrSourceNotFound, got %v", err)
		}
	})
}

func TestUpdateSourceUseCase(t *testing.T) {
	t.Run("applies only the provided fields", func(t *testing.T) {
		source := entity.NewIncomeSource("Blog", entity.IncomeSourceTypePassive, "ads")
		uc := NewUpdateSourceUseCase(newFakeSourceRepo(source))

		out, err := uc.Execute(context.Background(), UpdateSourceInput{
			ID:   source.ID,
			Name: strPtr("Tech Blog"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Source.Name != "Tech Blog" {
			t.Errorf("expected renamed source, got %s", out.Source.Name)
		}
		if out.Source.Description != "ads" || out.Source.Type != entity.IncomeSourceTypePassive {
			t.Error("expected untouched fields to keep their values")
		}
	})

	t.Run("archives via isActive false", func(t *testing.T) {
		source := entity.NewIncomeSource("Blog", entity.IncomeSourceTypePassive, "")
		uc := NewUpdateSourceUseCase(newFakeSourceRepo(source))

		out, err := uc.Execute(context.Background(), UpdateSourceInput{
			ID:       source.ID,
			IsActive: boolPtr(false),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Source.IsActive {
			t.Error("expected archived source")
		}
	})

	t.Run("validates the new name", func(t *testing.T) {
		source := entity.NewIncomeSource("Blog", entity.IncomeSourceTypePassive, "")
		uc := NewUpdateSourceUseCase(newFakeSourceRepo(source))

		_, err := uc.Execute(context.Background(), UpdateSourceInput{
			ID:   source.ID,
			Name: strPtr(""),
		})
		if !errors.Is(err, domainerror.ErrSourceNameRequired) {
			t.Errorf("expected ErrSourceNameRequired, got %v", err)
		}
	})

	t.Run("unknown id yields not-found", func(t *testing.T) {
		uc := NewUpdateSourceUseCase(newFakeSourceRepo())

		_, err := uc.Execute(context.Background(), UpdateSourceInput{ID: uuid.New()})
		if !errors.Is(err, domainerror.ErrSourceNotFound) {
			t.Errorf("expected ErrSourceNotFound, got %v", err)
		}
	})
}

func TestDeleteSourceUseCase(t *testing.T) {
	t.Run("deletes an existing source", func(t *testing.T) {
		source := entity.NewIncomeSource("Blog", entity.IncomeSourceTypePassive, "")
		repo := newFakeSourceRepo(source)
		uc := NewDeleteSourceUseCase(repo)

		if err := uc.Execute(context.Background(), DeleteSourceInput{ID: source.ID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.deleted) != 1 || repo.deleted[0] != source.ID {
			t.Error("expected delete to reach the store")
		}
	})

	t.Run("unknown id yields not-found", func(t *testing.T) {
		uc := NewDeleteSourceUseCase(newFakeSourceRepo())

		err := uc.Execute(context.Background(), DeleteSourceInput{ID: uuid.New()})
		if !errors.Is(err, domainerror.ErrSourceNotFound) {
			t.Errorf("expected ErrSourceNotFound, got %v", err)
		}
	})
}
