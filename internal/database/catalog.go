package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"ecom-admin-backend/internal/models"
)

const categoryColumns = "id, store_id, billboard_id, name, created_at, updated_at"

func (c *Client) CreateCategory(ctx context.Context, storeID uuid.UUID, name string, billboardID uuid.NullUUID) (*models.Category, error) {
	var cat models.Category
	err := c.db.QueryRowContext(ctx, `
		INSERT INTO categories (store_id, name, billboard_id)
		VALUES ($1, $2, $3)
		RETURNING `+categoryColumns+`
	`, storeID, name, billboardID).Scan(
		&cat.ID, &cat.StoreID, &cat.BillboardID, &cat.Name, &cat.CreatedAt, &cat.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &cat, nil
}

func (c *Client) GetCategory(ctx context.Context, categoryID uuid.UUID) (*models.Category, error) {
	var cat models.Category
	err := c.db.QueryRowContext(ctx, `
		SELECT `+categoryColumns+`
		FROM categories
		WHERE id = $1
	`, categoryID).Scan(
		&cat.ID, &cat.StoreID, &cat.BillboardID, &cat.Name, &cat.CreatedAt, &cat.UpdatedAt,
	)
	if err != nil {
		return nil, notFoundOr(err, "failed to get category")
	}

	return &cat, nil
}

func (c *Client) ListCategories(ctx context.Context, storeID uuid.UUID) ([]models.Category, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT `+categoryColumns+`
		FROM categories
		WHERE store_id = $1
		ORDER BY created_at DESC
	`, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var cat models.Category
		if err := rows.Scan(
			&cat.ID, &cat.StoreID, &cat.BillboardID, &cat.Name, &cat.CreatedAt, &cat.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, cat)
	}

	return categories, rows.Err()
}

func (c *Client) UpdateCategory(ctx context.Context, categoryID uuid.UUID, name string, billboardID uuid.NullUUID) (*models.Category, error) {
	var cat models.Category
	err := c.db.QueryRowContext(ctx, `
		UPDATE categories
		SET name = $1, billboard_id = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING `+categoryColumns+`
	`, name, billboardID, categoryID).Scan(
		&cat.ID, &cat.StoreID, &cat.BillboardID, &cat.Name, &cat.CreatedAt, &cat.UpdatedAt,
	)
	if err != nil {
		return nil, notFoundOr(err, "failed to update category")
	}

	return &cat, nil
}

func (c *Client) DeleteCategory(ctx context.Context, categoryID uuid.UUID) error {
	return c.deleteByID(ctx, "categories", categoryID)
}

const sizeColumns = "id, store_id, name, value, created_at, updated_at"

func (c *Client) CreateSize(ctx context.Context, storeID uuid.UUID, name, value string) (*models.Size, error) {
	var size models.Size
	err := c.db.QueryRowContext(ctx, `
		INSERT INTO sizes (store_id, name, value)
		VALUES ($1, $2, $3)
		RETURNING `+sizeColumns+`
	`, storeID, name, value).Scan(
		&size.ID, &size.StoreID, &size.Name, &size.Value, &size.CreatedAt, &size.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create size: %w", err)
	}

	return &size, nil
}

func (c *Client) GetSize(ctx context.Context, sizeID uuid.UUID) (*models.Size, error) {
	var size models.Size
	err := c.db.QueryRowContext(ctx, `
		SELECT `+sizeColumns+`
		FROM sizes
		WHERE id = $1
	`, sizeID).Scan(
		&size.ID, &size.StoreID, &size.Name, &size.Value, &size.CreatedAt, &size.UpdatedAt,
	)
	if err != nil {
		return nil, notFoundOr(err, "failed to get size")
	}

	return &size, nil
}

func (c *Client) ListSizes(ctx context.Context, storeID uuid.UUID) ([]models.Size, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT `+sizeColumns+`
		FROM sizes
		WHERE store_id = $1
		ORDER BY created_at DESC
	`, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sizes: %w", err)
	}
	defer rows.Close()

	var sizes []models.Size
	for rows.Next() {
		var size models.Size
		if err := rows.Scan(
			&size.ID, &size.StoreID, &size.Name, &size.Value, &size.CreatedAt, &size.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan size: %w", err)
		}
		sizes = append(sizes, size)
	}

	return sizes, rows.Err()
}

func (c *Client) UpdateSize(ctx context.Context, sizeID uuid.UUID, name, value string) (*models.Size, error) {
	var size models.Size
	err := c.db.QueryRowContext(ctx, `
		UPDATE sizes
		SET name = $1, value = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING `+sizeColumns+`
	`, name, value, sizeID).Scan(
		&size.ID, &size.StoreID, &size.Name, &size.Value, &size.CreatedAt, &size.UpdatedAt,
	)
	if err != nil {
		return nil, notFoundOr(err, "failed to update size")
	}

	return &size, nil
}

func (c *Client) DeleteSize(ctx context.Context, sizeID uuid.UUID) error {
	return c.deleteByID(ctx, "sizes", sizeID)
}

const colorColumns = "id, store_id, name, value, created_at, updated_at"

func (c *Client) CreateColor(ctx context.Context, storeID uuid.UUID, name, value string) (*models.Color, error) {
	var color models.Color
	err := c.db.QueryRowContext(ctx, `
		INSERT INTO colors (store_id, name, value)
		VALUES ($1, $2, $3)
		RETURNING `+colorColumns+`
	`, storeID, name, value).Scan(
		&color.ID, &color.StoreID, &color.Name, &color.Value, &color.CreatedAt, &color.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create color: %w", err)
	}

	return &color, nil
}

func (c *Client) GetColor(ctx context.Context, colorID uuid.UUID) (*models.Color, error) {
	var color models.Color
	err := c.db.QueryRowContext(ctx, `
		SELECT `+colorColumns+`
		FROM colors
		WHERE id = $1
	`, colorID).Scan(
		&color.ID, &color.StoreID, &color.Name, &color.Value, &color.CreatedAt, &color.UpdatedAt,
	)
	if err != nil {
		return nil, notFoundOr(err, "failed to get color")
	}

	return &color, nil
}

func (c *Client) ListColors(ctx context.Context, storeID uuid.UUID) ([]models.Color, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT `+colorColumns+`
		FROM colors
		WHERE store_id = $1
		ORDER BY created_at DESC
	`, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list colors: %w", err)
	}
	defer rows.Close()

	var colors []models.Color
	for rows.Next() {
		var color models.Color
		if err := rows.Scan(
			&color.ID, &color.StoreID, &color.Name, &color.Value, &color.CreatedAt, &color.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan color: %w", err)
		}
		colors = append(colors, color)
	}

	return colors, rows.Err()
}

func (c *Client) UpdateColor(ctx context.Context, colorID uuid.UUID, name, value string) (*models.Color, error) {
	var color models.Color
	err := c.db.QueryRowContext(ctx, `
		UPDATE colors
		SET name = $1, value = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING `+colorColumns+`
	`, name, value, colorID).Scan(
		&color.ID, &color.StoreID, &color.Name, &color.Value, &color.CreatedAt, &color.UpdatedAt,
	)
	if err != nil {
		return nil, notFoundOr(err, "failed to update color")
	}

	return &color, nil
}

func (c *Client) DeleteColor(ctx context.Context, colorID uuid.UUID) error {
	return c.deleteByID(ctx, "colors", colorID)
}

func (c *Client) deleteByID(ctx context.Context, table string, id uuid.UUID) error {
	res, err := c.db.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", table), id)
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
