package sqlstore

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/mmynk/flightlog/internal/models"
	"github.com/mmynk/flightlog/internal/storage"
)

// ListCategories returns one reference list ordered by name.
func (s *SQLStore) ListCategories(ctx context.Context, categoryType models.CategoryType) ([]*models.Category, error) {
	query, args, err := s.sb.Select("name").
		From("categories").
		Where(sq.Eq{"category_type": string(categoryType)}).
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := []*models.Category{}
	for rows.Next() {
		c := &models.Category{Type: categoryType}
		if err := rows.Scan(&c.Name); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}

	return categories, nil
}

// AddCategory inserts a reference list item.
func (s *SQLStore) AddCategory(ctx context.Context, category *models.Category) error {
	return s.addCategory(ctx, s.db, category.Type, category.Name)
}

// DeleteCategory removes a reference list item.
func (s *SQLStore) DeleteCategory(ctx context.Context, category *models.Category) error {
	return s.deleteCategory(ctx, s.db, category.Type, category.Name)
}

// RenameCategory deletes oldName and inserts newName in one transaction.
// Renaming an item to its own name still requires it to exist.
func (s *SQLStore) RenameCategory(ctx context.Context, categoryType models.CategoryType, oldName, newName string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.deleteCategory(ctx, tx, categoryType, oldName); err != nil {
		return err
	}
	if err := s.addCategory(ctx, tx, categoryType, newName); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (s *SQLStore) addCategory(ctx context.Context, runner sq.ExecerContext, categoryType models.CategoryType, name string) error {
	insert := s.sb.Insert("categories").
		Columns("category_type", "name", "created_at").
		Values(string(categoryType), name, time.Now().Unix()).
		Suffix("ON CONFLICT (category_type, name) DO NOTHING")

	n, err := s.exec(ctx, runner, insert)
	if err != nil {
		return fmt.Errorf("failed to insert category: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s %q: %w", categoryType, name, storage.ErrAlreadyExists)
	}
	return nil
}

func (s *SQLStore) deleteCategory(ctx context.Context, runner sq.ExecerContext, categoryType models.CategoryType, name string) error {
	del := s.sb.Delete("categories").
		Where(sq.Eq{"category_type": string(categoryType), "name": name})

	n, err := s.exec(ctx, runner, del)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s %q: %w", categoryType, name, storage.ErrNotFound)
	}
	return nil
}
