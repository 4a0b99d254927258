package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"ecom-admin-backend/internal/models"
)

// ProductFilter holds the optional predicates of a product list query. Only
// set fields contribute WHERE clauses.
type ProductFilter struct {
	CategoryID uuid.NullUUID
	SizeID     uuid.NullUUID
	ColorID    uuid.NullUUID
	IsFeatured *bool
	IsArchived *bool
	Search     string
	Limit      int
}

const productColumns = `p.id, p.store_id, p.category_id, p.size_id, p.color_id,
	p.name, p.price, p.is_featured, p.is_archived, p.created_at, p.updated_at`

func scanProduct(scanner interface{ Scan(...any) error }, p *models.Product) error {
	return scanner.Scan(
		&p.ID, &p.StoreID, &p.CategoryID, &p.SizeID, &p.ColorID,
		&p.Name, &p.Price, &p.IsFeatured, &p.IsArchived, &p.CreatedAt, &p.UpdatedAt,
	)
}

// CreateProductWithImages inserts the product row and all image rows in one
// transaction, then re-reads the product with its relations.
func (c *Client) CreateProductWithImages(ctx context.Context, p *models.Product, images []models.Image) (*models.Product, error) {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var productID uuid.UUID
	err = tx.QueryRowContext(ctx, `
		INSERT INTO products (store_id, category_id, size_id, color_id, name, price, is_featured, is_archived)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, p.StoreID, p.CategoryID, p.SizeID, p.ColorID, p.Name, p.Price, p.IsFeatured, p.IsArchived).Scan(&productID)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	for _, img := range images {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO images (product_id, url, public_id, name, format, size)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, productID, img.URL, img.PublicID, img.Name, img.Format, img.Size); err != nil {
			return nil, fmt.Errorf("failed to create product image: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit product: %w", err)
	}

	return c.GetProduct(ctx, productID)
}

func (c *Client) GetProduct(ctx context.Context, productID uuid.UUID) (*models.Product, error) {
	var p models.Product
	err := scanProduct(c.db.QueryRowContext(ctx, `
		SELECT `+productColumns+`
		FROM products p
		WHERE p.id = $1
	`, productID), &p)
	if err != nil {
		return nil, notFoundOr(err, "failed to get product")
	}

	if err := c.loadProductRelations(ctx, []*models.Product{&p}); err != nil {
		return nil, err
	}

	return &p, nil
}

func (c *Client) ListProducts(ctx context.Context, storeID uuid.UUID, filter ProductFilter) ([]models.Product, error) {
	clauses := []string{"p.store_id = $1"}
	args := []any{storeID}

	addClause := func(condition string, value any) {
		args = append(args, value)
		clauses = append(clauses, fmt.Sprintf(condition, len(args)))
	}

	if filter.CategoryID.Valid {
		addClause("p.category_id = $%d", filter.CategoryID.UUID)
	}
	if filter.SizeID.Valid {
		addClause("p.size_id = $%d", filter.SizeID.UUID)
	}
	if filter.ColorID.Valid {
		addClause("p.color_id = $%d", filter.ColorID.UUID)
	}
	if filter.IsFeatured != nil {
		addClause("p.is_featured = $%d", *filter.IsFeatured)
	}
	if filter.IsArchived != nil {
		addClause("p.is_archived = $%d", *filter.IsArchived)
	}
	if filter.Search != "" {
		addClause("p.name ILIKE $%d", "%"+filter.Search+"%")
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 10
	}
	args = append(args, limit)

	query := fmt.Sprintf(`
		SELECT %s
		FROM products p
		WHERE %s
		ORDER BY p.created_at DESC
		LIMIT $%d
	`, productColumns, strings.Join(clauses, " AND "), len(args))

	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	refs := make([]*models.Product, len(products))
	for i := range products {
		refs[i] = &products[i]
	}
	if err := c.loadProductRelations(ctx, refs); err != nil {
		return nil, err
	}

	return products, nil
}

// UpdateProductWithImages updates the product row and replaces its whole
// image set in one transaction, so the persisted set always equals the set
// the client last submitted.
func (c *Client) UpdateProductWithImages(ctx context.Context, p *models.Product, images []models.Image) (*models.Product, error) {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE products
		SET category_id = $1, size_id = $2, color_id = $3, name = $4, price = $5,
		    is_featured = $6, is_archived = $7, updated_at = NOW()
		WHERE id = $8
	`, p.CategoryID, p.SizeID, p.ColorID, p.Name, p.Price, p.IsFeatured, p.IsArchived, p.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM images WHERE product_id = $1
	`, p.ID); err != nil {
		return nil, fmt.Errorf("failed to clear product images: %w", err)
	}

	for _, img := range images {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO images (product_id, url, public_id, name, format, size)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, p.ID, img.URL, img.PublicID, img.Name, img.Format, img.Size); err != nil {
			return nil, fmt.Errorf("failed to create product image: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit product update: %w", err)
	}

	return c.GetProduct(ctx, p.ID)
}

// DeleteProduct removes the product row; its image rows cascade.
func (c *Client) DeleteProduct(ctx context.Context, productID uuid.UUID) error {
	res, err := c.db.ExecContext(ctx, `
		DELETE FROM products
		WHERE id = $1
	`, productID)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// loadProductRelations fills Images, Category, Size and Color for the given
// products. Images come in one query keyed by product id.
func (c *Client) loadProductRelations(ctx context.Context, products []*models.Product) error {
	if len(products) == 0 {
		return nil
	}

	byID := make(map[uuid.UUID]*models.Product, len(products))
	ids := make([]uuid.UUID, 0, len(products))
	for _, p := range products {
		byID[p.ID] = p
		ids = append(ids, p.ID)
		p.Images = []models.Image{}
	}

	rows, err := c.db.QueryContext(ctx, `
		SELECT id, billboard_id, product_id, url, public_id, name, format, size, created_at
		FROM images
		WHERE product_id = ANY($1)
		ORDER BY created_at ASC
	`, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("failed to load product images: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var img models.Image
		if err := rows.Scan(
			&img.ID, &img.BillboardID, &img.ProductID, &img.URL,
			&img.PublicID, &img.Name, &img.Format, &img.Size, &img.CreatedAt,
		); err != nil {
			return fmt.Errorf("failed to scan product image: %w", err)
		}
		if p, ok := byID[img.ProductID.UUID]; ok {
			p.Images = append(p.Images, img)
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, p := range products {
		cat, err := c.GetCategory(ctx, p.CategoryID)
		if err != nil {
			return fmt.Errorf("failed to load product category: %w", err)
		}
		size, err := c.GetSize(ctx, p.SizeID)
		if err != nil {
			return fmt.Errorf("failed to load product size: %w", err)
		}
		color, err := c.GetColor(ctx, p.ColorID)
		if err != nil {
			return fmt.Errorf("failed to load product color: %w", err)
		}
		p.Category = cat
		p.Size = size
		p.Color = color
	}

	return nil
}
