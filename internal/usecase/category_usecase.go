package usecase

import (
	"context"
	"time"

	"github.com/vixus/vixus/internal/domain"
)

// CategoryUseCase handles category business logic.
type CategoryUseCase struct {
	categoryRepo CategoryRepository
	idGen        IDGenerator
}

// NewCategoryUseCase creates a new CategoryUseCase.
func NewCategoryUseCase(categoryRepo CategoryRepository, idGen IDGenerator) *CategoryUseCase {
	return &CategoryUseCase{
		categoryRepo: categoryRepo,
		idGen:        idGen,
	}
}

// CreateCategoryInput represents input for creating a category.
type CreateCategoryInput struct {
	Name     string
	Type     domain.Classification
	Color    string
	ParentID string
}

// CreateCategory creates a new category. Categories nest exactly two
// levels: a subcategory's parent must itself be top-level, and parent and
// child must share the same type.
func (uc *CategoryUseCase) CreateCategory(ctx context.Context, input CreateCategoryInput) (*domain.Category, error) {
	if err := domain.ValidateName(input.Name); err != nil {
		return nil, err
	}

	if !input.Type.Valid() {
		return nil, domain.ErrInvalidClassification
	}

	if err := domain.ValidateColor(input.Color); err != nil {
		return nil, err
	}

	if input.ParentID != "" {
		parent, err := uc.categoryRepo.GetByID(ctx, input.ParentID)
		if err != nil {
			return nil, err
		}
		if !parent.IsTopLevel() {
			return nil, domain.ErrCategoryDepth
		}
		if parent.Type != input.Type {
			return nil, domain.ErrCategoryTypeMismatch
		}
	}

	now := time.Now().UTC()
	category := &domain.Category{
		ID:        uc.idGen.Generate(),
		Name:      input.Name,
		Type:      input.Type,
		Color:     input.Color,
		ParentID:  input.ParentID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// GetCategory retrieves a category by ID.
func (uc *CategoryUseCase) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	return uc.categoryRepo.GetByID(ctx, id)
}

// ListCategories lists categories, optionally filtered by type.
func (uc *CategoryUseCase) ListCategories(ctx context.Context, t domain.Classification) ([]*domain.Category, error) {
	if t == "" {
		return uc.categoryRepo.ListAll(ctx)
	}
	if !t.Valid() {
		return nil, domain.ErrInvalidClassification
	}
	return uc.categoryRepo.ListByType(ctx, t)
}
