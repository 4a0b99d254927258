package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"ecom-admin-backend/internal/models"
)

const billboardColumns = "id, store_id, label, created_at, updated_at"

// CreateBillboardWithImage inserts the billboard row and its image row in a
// single transaction, then re-reads the billboard with its relation for a
// consistent view.
func (c *Client) CreateBillboardWithImage(ctx context.Context, storeID uuid.UUID, label string, img *models.Image) (*models.Billboard, error) {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var billboardID uuid.UUID
	err = tx.QueryRowContext(ctx, `
		INSERT INTO billboards (store_id, label)
		VALUES ($1, $2)
		RETURNING id
	`, storeID, label).Scan(&billboardID)
	if err != nil {
		return nil, fmt.Errorf("failed to create billboard: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO images (billboard_id, url, public_id, name, format, size)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, billboardID, img.URL, img.PublicID, img.Name, img.Format, img.Size); err != nil {
		return nil, fmt.Errorf("failed to create billboard image: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit billboard: %w", err)
	}

	return c.GetBillboard(ctx, billboardID)
}

func (c *Client) GetBillboard(ctx context.Context, billboardID uuid.UUID) (*models.Billboard, error) {
	var b models.Billboard
	err := c.db.QueryRowContext(ctx, `
		SELECT `+billboardColumns+`
		FROM billboards
		WHERE id = $1
	`, billboardID).Scan(&b.ID, &b.StoreID, &b.Label, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, notFoundOr(err, "failed to get billboard")
	}

	img, err := c.getBillboardImage(ctx, billboardID)
	if err != nil {
		return nil, err
	}
	b.Image = img

	return &b, nil
}

func (c *Client) getBillboardImage(ctx context.Context, billboardID uuid.UUID) (*models.Image, error) {
	var img models.Image
	err := c.db.QueryRowContext(ctx, `
		SELECT id, billboard_id, product_id, url, public_id, name, format, size, created_at
		FROM images
		WHERE billboard_id = $1
	`, billboardID).Scan(
		&img.ID, &img.BillboardID, &img.ProductID, &img.URL,
		&img.PublicID, &img.Name, &img.Format, &img.Size, &img.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get billboard image: %w", err)
	}

	return &img, nil
}

func (c *Client) ListBillboards(ctx context.Context, storeID uuid.UUID) ([]models.Billboard, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT `+billboardColumns+`
		FROM billboards
		WHERE store_id = $1
		ORDER BY created_at DESC
	`, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list billboards: %w", err)
	}
	defer rows.Close()

	var billboards []models.Billboard
	for rows.Next() {
		var b models.Billboard
		if err := rows.Scan(&b.ID, &b.StoreID, &b.Label, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan billboard: %w", err)
		}
		billboards = append(billboards, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range billboards {
		img, err := c.getBillboardImage(ctx, billboards[i].ID)
		if err != nil {
			return nil, err
		}
		billboards[i].Image = img
	}

	return billboards, nil
}

// UpdateBillboardWithImage updates the label and, when img is non-nil,
// replaces the image row in the same transaction. A nil img keeps the
// current image untouched.
func (c *Client) UpdateBillboardWithImage(ctx context.Context, billboardID uuid.UUID, label string, img *models.Image) (*models.Billboard, error) {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE billboards
		SET label = $1, updated_at = NOW()
		WHERE id = $2
	`, label, billboardID)
	if err != nil {
		return nil, fmt.Errorf("failed to update billboard: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to update billboard: %w", err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	if img != nil {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO images (billboard_id, url, public_id, name, format, size)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (billboard_id) DO UPDATE
			SET url = EXCLUDED.url, public_id = EXCLUDED.public_id,
			    name = EXCLUDED.name, format = EXCLUDED.format, size = EXCLUDED.size
		`, billboardID, img.URL, img.PublicID, img.Name, img.Format, img.Size); err != nil {
			return nil, fmt.Errorf("failed to replace billboard image: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit billboard update: %w", err)
	}

	return c.GetBillboard(ctx, billboardID)
}

// DeleteBillboard removes the billboard row; the image row goes with it via
// ON DELETE CASCADE.
func (c *Client) DeleteBillboard(ctx context.Context, billboardID uuid.UUID) error {
	res, err := c.db.ExecContext(ctx, `
		DELETE FROM billboards
		WHERE id = $1
	`, billboardID)
	if err != nil {
		return fmt.Errorf("failed to delete billboard: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete billboard: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
