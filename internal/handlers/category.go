package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/danielgtaylor/huma/v2"
	"github.com/eventily/eventily-api/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryHandler struct {
	db *gorm.DB
}

func NewCategoryHandler(db *gorm.DB) *CategoryHandler {
	return &CategoryHandler{db: db}
}

type ListCategoriesOutput struct {
	Body []models.Category
}

func (h *CategoryHandler) HandleList(ctx context.Context, input *struct{}) (*ListCategoriesOutput, error) {
	var categories []models.Category
	if err := h.db.WithContext(ctx).Find(&categories).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to list categories: " + err.Error())
	}
	return &ListCategoriesOutput{Body: categories}, nil
}

type CreateCategoryInput struct {
	Body struct {
		Name        string `json:"name" maxLength:"100" minLength:"1" doc:"Unique category name" required:"true"`
		Description string `json:"description,omitempty" doc:"Optional description"`
	}
}

type CategoryOutput struct {
	Body models.Category
}

// HandleCreate relies on the unique index on name: the insert is attempted
// and a duplicated-key error is converted into a conflict, instead of
// pre-querying for the name.
func (h *CategoryHandler) HandleCreate(ctx context.Context, input *CreateCategoryInput) (*CategoryOutput, error) {
	category := models.Category{
		Name:        input.Body.Name,
		Description: input.Body.Description,
	}

	if err := h.db.WithContext(ctx).Create(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, huma.Error409Conflict(fmt.Sprintf("Category '%s' already exists", input.Body.Name))
		}
		return nil, huma.Error500InternalServerError("Failed to create category: " + err.Error())
	}

	return &CategoryOutput{Body: category}, nil
}

type UpdateCategoryInput struct {
	ID   uuid.UUID `path:"id" doc:"Category ID"`
	Body struct {
		Name        *string `json:"name,omitempty" maxLength:"100" minLength:"1"`
		Description *string `json:"description,omitempty"`
	}
}

func (h *CategoryHandler) HandleUpdate(ctx context.Context, input *UpdateCategoryInput) (*CategoryOutput, error) {
	var category models.Category
	if err := h.db.WithContext(ctx).First(&category, "id = ?", input.ID).Error; err != nil {
		return nil, huma.Error404NotFound("Category not found")
	}

	if input.Body.Name != nil {
		category.Name = *input.Body.Name
	}
	if input.Body.Description != nil {
		category.Description = *input.Body.Description
	}

	if err := h.db.WithContext(ctx).Save(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, huma.Error409Conflict(fmt.Sprintf("Category '%s' already exists", category.Name))
		}
		return nil, huma.Error500InternalServerError("Failed to update category: " + err.Error())
	}

	return &CategoryOutput{Body: category}, nil
}

type DeleteCategoryInput struct {
	ID uuid.UUID `path:"id" doc:"Category ID"`
}

// HandleDelete removes the category; the foreign keys cascade the delete to
// its events and, through them, their registrations.
func (h *CategoryHandler) HandleDelete(ctx context.Context, input *DeleteCategoryInput) (*struct{}, error) {
	var category models.Category
	if err := h.db.WithContext(ctx).First(&category, "id = ?", input.ID).Error; err != nil {
		return nil, huma.Error404NotFound("Category not found")
	}

	if err := h.db.WithContext(ctx).Delete(&category).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to delete category: " + err.Error())
	}

	return nil, nil
}
