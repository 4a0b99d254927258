package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"ecom-admin-backend/internal/models"
)

const orderColumns = "id, store_id, is_paid, phone, address, created_at, updated_at"

func (c *Client) GetOrder(ctx context.Context, orderID uuid.UUID) (*models.Order, error) {
	var o models.Order
	err := c.db.QueryRowContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE id = $1
	`, orderID).Scan(
		&o.ID, &o.StoreID, &o.IsPaid, &o.Phone, &o.Address, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, notFoundOr(err, "failed to get order")
	}

	items, err := c.getOrderItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	o.Items = items

	return &o, nil
}

func (c *Client) ListOrders(ctx context.Context, storeID uuid.UUID) ([]models.Order, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE store_id = $1
		ORDER BY created_at DESC
	`, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(
			&o.ID, &o.StoreID, &o.IsPaid, &o.Phone, &o.Address, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := c.getOrderItems(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}

	return orders, nil
}

func (c *Client) getOrderItems(ctx context.Context, orderID uuid.UUID) ([]models.OrderItem, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT oi.id, oi.order_id, oi.product_id, p.name, p.price
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = $1
	`, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order items: %w", err)
	}
	defer rows.Close()

	var items []models.OrderItem
	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(
			&item.ID, &item.OrderID, &item.ProductID, &item.ProductName, &item.ProductPrice,
		); err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// MarkOrderPaid sets the paid flag with the shipping details and archives
// every product referenced by the order's line items, all in one
// transaction.
func (c *Client) MarkOrderPaid(ctx context.Context, orderID uuid.UUID, address, phone string) (*models.Order, error) {
	items, err := c.getOrderItems(ctx, orderID)
	if err != nil {
		return nil, err
	}

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE orders
		SET is_paid = TRUE, address = $1, phone = $2, updated_at = NOW()
		WHERE id = $3
	`, address, phone, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to mark order paid: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to mark order paid: %w", err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	if len(items) > 0 {
		productIDs := make([]uuid.UUID, 0, len(items))
		for _, item := range items {
			productIDs = append(productIDs, item.ProductID)
		}
		if _, err := tx.ExecContext(ctx, `
			UPDATE products
			SET is_archived = TRUE, updated_at = NOW()
			WHERE id = ANY($1)
		`, pq.Array(productIDs)); err != nil {
			return nil, fmt.Errorf("failed to archive ordered products: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit order payment: %w", err)
	}

	return c.GetOrder(ctx, orderID)
}
