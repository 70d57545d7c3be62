package category

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service handles category business logic
type Service struct {
	repo Repository
}

// NewService creates category service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create adds a new category; the slug is derived from the name
func (s *Service) Create(ctx context.Context, req *CreateCategoryRequest) (*Category, error) {
	now := time.Now()
	c := &Category{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(req.Name),
		Slug:      slugify(req.Name),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.Icon != "" {
		c.Icon = sql.NullString{String: req.Icon, Valid: true}
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// GetByID returns a single category
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Category, error) {
	return s.repo.GetByID(ctx, id)
}

// GetBySlug returns a single category by its slug
func (s *Service) GetBySlug(ctx context.Context, slug string) (*Category, error) {
	return s.repo.GetBySlug(ctx, slug)
}

// List returns all categories with their active venue counts
func (s *Service) List(ctx context.Context) ([]*Category, error) {
	return s.repo.List(ctx)
}

// Update modifies a category's name and/or icon
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *UpdateCategoryRequest) (*Category, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		c.Name = strings.TrimSpace(*req.Name)
		c.Slug = slugify(*req.Name)
	}
	if req.Icon != nil {
		c.Icon = sql.NullString{String: *req.Icon, Valid: *req.Icon != ""}
	}
	c.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Delete removes a category; fails if venues or events still reference it
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// slugify lowercases and joins the name's alphanumeric runs with hyphens
func slugify(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
