package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"ecom-admin-backend/internal/models"
)

const storeColumns = "id, user_id, name, created_at, updated_at"

func (c *Client) CreateStore(ctx context.Context, userID, name string) (*models.Store, error) {
	var store models.Store
	err := c.db.QueryRowContext(ctx, `
		INSERT INTO stores (user_id, name)
		VALUES ($1, $2)
		RETURNING `+storeColumns+`
	`, userID, name).Scan(
		&store.ID, &store.UserID, &store.Name, &store.CreatedAt, &store.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}

	return &store, nil
}

func (c *Client) GetStore(ctx context.Context, storeID uuid.UUID) (*models.Store, error) {
	var store models.Store
	err := c.db.QueryRowContext(ctx, `
		SELECT `+storeColumns+`
		FROM stores
		WHERE id = $1
	`, storeID).Scan(
		&store.ID, &store.UserID, &store.Name, &store.CreatedAt, &store.UpdatedAt,
	)
	if err != nil {
		return nil, notFoundOr(err, "failed to get store")
	}

	return &store, nil
}

// GetStoreByUser loads a store only when the given user owns it. Services
// call this before every write to re-verify ownership.
func (c *Client) GetStoreByUser(ctx context.Context, storeID uuid.UUID, userID string) (*models.Store, error) {
	var store models.Store
	err := c.db.QueryRowContext(ctx, `
		SELECT `+storeColumns+`
		FROM stores
		WHERE id = $1 AND user_id = $2
	`, storeID, userID).Scan(
		&store.ID, &store.UserID, &store.Name, &store.CreatedAt, &store.UpdatedAt,
	)
	if err != nil {
		return nil, notFoundOr(err, "failed to get store")
	}

	return &store, nil
}

func (c *Client) ListStoresByUser(ctx context.Context, userID string) ([]models.Store, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT `+storeColumns+`
		FROM stores
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}
	defer rows.Close()

	var stores []models.Store
	for rows.Next() {
		var store models.Store
		if err := rows.Scan(
			&store.ID, &store.UserID, &store.Name, &store.CreatedAt, &store.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan store: %w", err)
		}
		stores = append(stores, store)
	}

	return stores, rows.Err()
}

func (c *Client) UpdateStore(ctx context.Context, storeID uuid.UUID, userID, name string) (*models.Store, error) {
	var store models.Store
	err := c.db.QueryRowContext(ctx, `
		UPDATE stores
		SET name = $1, updated_at = NOW()
		WHERE id = $2 AND user_id = $3
		RETURNING `+storeColumns+`
	`, name, storeID, userID).Scan(
		&store.ID, &store.UserID, &store.Name, &store.CreatedAt, &store.UpdatedAt,
	)
	if err != nil {
		return nil, notFoundOr(err, "failed to update store")
	}

	return &store, nil
}

func (c *Client) DeleteStore(ctx context.Context, storeID uuid.UUID, userID string) error {
	res, err := c.db.ExecContext(ctx, `
		DELETE FROM stores
		WHERE id = $1 AND user_id = $2
	`, storeID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete store: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete store: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
