package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/flightlog/internal/middleware"
	"github.com/mmynk/flightlog/internal/models"
	"github.com/mmynk/flightlog/internal/storage"
	"github.com/mmynk/flightlog/pkg/api"
)

// CategoryService implements the Connect CategoryService.
type CategoryService struct {
	store storage.CategoryStore
}

// NewCategoryService creates a new CategoryService with the given storage backend.
func NewCategoryService(store storage.CategoryStore) *CategoryService {
	return &CategoryService{store: store}
}

// parseCategory validates a wire category.
func parseCategory(c *api.Category) (*models.Category, error) {
	if c == nil {
		return nil, &models.ValidationError{Field: "category", Reason: "is required"}
	}
	categoryType, err := models.ParseCategoryType(c.Type)
	if err != nil {
		return nil, err
	}
	name, err := models.CategoryName(c.Name)
	if err != nil {
		return nil, err
	}
	return &models.Category{Type: categoryType, Name: name}, nil
}

// ListCategories returns the items of one reference list ordered by name.
func (s *CategoryService) ListCategories(ctx context.Context, req *connect.Request[api.ListCategoriesRequest]) (*connect.Response[api.ListCategoriesResponse], error) {
	if err := requireCaller(middleware.GetUserID(ctx)); err != nil {
		return nil, err
	}

	categoryType, err := models.ParseCategoryType(req.Msg.Type)
	if err != nil {
		return nil, connectError(err)
	}

	categories, err := s.store.ListCategories(ctx, categoryType)
	if err != nil {
		slog.Error("ListCategories failed", "type", categoryType, "error", err)
		return nil, connectError(err)
	}

	out := make([]*api.Category, len(categories))
	for i, c := range categories {
		out[i] = api.CategoryFromModel(c)
	}
	return connect.NewResponse(&api.ListCategoriesResponse{Categories: out}), nil
}

func (s *CategoryService) AddCategory(ctx context.Context, req *connect.Request[api.AddCategoryRequest]) (*connect.Response[api.AddCategoryResponse], error) {
	if err := middleware.RequireWriter(ctx); err != nil {
		return nil, err
	}

	category, err := parseCategory(req.Msg.Category)
	if err != nil {
		return nil, connectError(err)
	}

	if err := s.store.AddCategory(ctx, category); err != nil {
		slog.Warn("AddCategory failed", "type", category.Type, "name", category.Name, "error", err)
		return nil, connectError(err)
	}

	slog.Info("Category added", "type", category.Type, "name", category.Name)
	return connect.NewResponse(&api.AddCategoryResponse{}), nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, req *connect.Request[api.DeleteCategoryRequest]) (*connect.Response[api.DeleteCategoryResponse], error) {
	if err := middleware.RequireWriter(ctx); err != nil {
		return nil, err
	}

	category, err := parseCategory(req.Msg.Category)
	if err != nil {
		return nil, connectError(err)
	}

	if err := s.store.DeleteCategory(ctx, category); err != nil {
		slog.Warn("DeleteCategory failed", "type", category.Type, "name", category.Name, "error", err)
		return nil, connectError(err)
	}

	slog.Info("Category deleted", "type", category.Type, "name", category.Name)
	return connect.NewResponse(&api.DeleteCategoryResponse{}), nil
}

// RenameCategory replaces a name atomically. Existing flight entries keep
// the name they were logged with.
func (s *CategoryService) RenameCategory(ctx context.Context, req *connect.Request[api.RenameCategoryRequest]) (*connect.Response[api.RenameCategoryResponse], error) {
	if err := middleware.RequireWriter(ctx); err != nil {
		return nil, err
	}

	categoryType, err := models.ParseCategoryType(req.Msg.Type)
	if err != nil {
		return nil, connectError(err)
	}
	oldName, err := models.CategoryName(req.Msg.OldName)
	if err != nil {
		return nil, connectError(err)
	}
	newName, err := models.CategoryName(req.Msg.NewName)
	if err != nil {
		return nil, connectError(err)
	}

	if err := s.store.RenameCategory(ctx, categoryType, oldName, newName); err != nil {
		slog.Warn("RenameCategory failed", "type", categoryType, "old", oldName, "new", newName, "error", err)
		return nil, connectError(err)
	}

	slog.Info("Category renamed", "type", categoryType, "old", oldName, "new", newName)
	return connect.NewResponse(&api.RenameCategoryResponse{}), nil
}
