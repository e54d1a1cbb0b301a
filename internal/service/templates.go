package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/knightandthey/knightshade-email-service/internal/store"
)

// TemplateService manages user-saved custom templates.
type TemplateService struct {
	repo TemplateStore
	now  func() time.Time
}

func NewTemplateService(repo TemplateStore) *TemplateService {
	return &TemplateService{repo: repo, now: time.Now}
}

// TemplateInput carries the editable fields of a custom template.
type TemplateInput struct {
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Type        store.TemplateType `json:"type"`
	Content     string             `json:"content"`
	Variables   map[string]string  `json:"variables,omitempty"`
}

func (in TemplateInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidRequest)
	}
	if !store.ValidTemplateType(in.Type) {
		return fmt.Errorf("%w: unknown template type %q", ErrInvalidRequest, in.Type)
	}
	if strings.TrimSpace(in.Content) == "" {
		return fmt.Errorf("%w: content is required", ErrInvalidRequest)
	}
	return nil
}

func (s *TemplateService) Create(ctx context.Context, in TemplateInput) (store.CustomTemplate, error) {
	if err := in.validate(); err != nil {
		return store.CustomTemplate{}, err
	}
	now := s.now().UTC()
	tpl := store.CustomTemplate{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		Type:        in.Type,
		Content:     in.Content,
		Variables:   in.Variables,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Insert(ctx, &tpl); err != nil {
		return store.CustomTemplate{}, err
	}
	return tpl, nil
}

func (s *TemplateService) Get(ctx context.Context, id string) (store.CustomTemplate, error) {
	tpl, err := s.repo.Get(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return store.CustomTemplate{}, fmt.Errorf("%w: %q", ErrTemplateNotFound, id)
	}
	return tpl, err
}

func (s *TemplateService) List(ctx context.Context) ([]store.CustomTemplate, error) {
	return s.repo.List(ctx)
}

// Update replaces the editable fields of an existing template, preserving
// its id and creation time.
func (s *TemplateService) Update(ctx context.Context, id string, in TemplateInput) (store.CustomTemplate, error) {
	if err := in.validate(); err != nil {
		return store.CustomTemplate{}, err
	}
	existing, err := s.repo.Get(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return store.CustomTemplate{}, fmt.Errorf("%w: %q", ErrTemplateNotFound, id)
	}
	if err != nil {
		return store.CustomTemplate{}, err
	}

	existing.Name = in.Name
	existing.Description = in.Description
	existing.Type = in.Type
	existing.Content = in.Content
	existing.Variables = in.Variables
	existing.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, &existing); err != nil {
		return store.CustomTemplate{}, err
	}
	return existing, nil
}

func (s *TemplateService) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%w: %q", ErrTemplateNotFound, id)
	}
	return err
}
