package category

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

type fakeRepo struct {
	categories map[uuid.UUID]*Category
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{categories: make(map[uuid.UUID]*Category)}
}

func (f *fakeRepo) Create(_ context.Context, c *Category) error {
	for _, existing := range f.categories {
		if existing.Slug == c.Slug {
			return ErrAlreadyExists
		}
	}
	f.categories[c.ID] = c
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, ErrNotFound
	}
	return c, nil
}

func (f *fakeRepo) GetBySlug(_ context.Context, slug string) (*Category, error) {
	for _, c := range f.categories {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeRepo) List(_ context.Context) ([]*Category, error) {
	var out []*Category
	for _, c := range f.categories {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeRepo) Update(_ context.Context, c *Category) error {
	if _, ok := f.categories[c.ID]; !ok {
		return ErrNotFound
	}
	f.categories[c.ID] = c
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.categories[id]; !ok {
		return ErrNotFound
	}
	delete(f.categories, id)
	return nil
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Banquet Halls", "banquet-halls"},
		{"  Open-Air  Lawns  ", "open-air-lawns"},
		{"Rooftop & Terrace", "rooftop-terrace"},
		{"5 Star Hotels", "5-star-hotels"},
	}
	for _, tt := range tests {
		if got := slugify(tt.in); got != tt.want {
			t.Errorf("slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCreateDerivesSlugAndRejectsDuplicates(t *testing.T) {
	svc := NewService(newFakeRepo())

	c, err := svc.Create(context.Background(), &CreateCategoryRequest{Name: "Banquet Halls"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Slug != "banquet-halls" {
		t.Fatalf("expected slug banquet-halls, got %q", c.Slug)
	}

	_, err = svc.Create(context.Background(), &CreateCategoryRequest{Name: "banquet  halls"})
	if !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists for same slug, got %v", err)
	}
}

func TestUpdateRenamesSlug(t *testing.T) {
	svc := NewService(newFakeRepo())

	c, err := svc.Create(context.Background(), &CreateCategoryRequest{Name: "Lawns"})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}

	name := "Garden Lawns"
	updated, err := svc.Update(context.Background(), c.ID, &UpdateCategoryRequest{Name: &name})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Slug != "garden-lawns" {
		t.Fatalf("expected slug to follow the rename, got %q", updated.Slug)
	}
}
