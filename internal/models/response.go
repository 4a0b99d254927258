package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type StoreResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ImageResponse struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
	Name     string `json:"name"`
	Format   string `json:"format"`
	Size     int64  `json:"size"`
}

type BillboardResponse struct {
	ID        string         `json:"id"`
	StoreID   string         `json:"store_id"`
	Label     string         `json:"label"`
	Image     *ImageResponse `json:"image,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

type CategoryResponse struct {
	ID          string    `json:"id"`
	StoreID     string    `json:"store_id"`
	BillboardID string    `json:"billboard_id,omitempty"`
	Name        string    `json:"name"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type SizeResponse struct {
	ID        string    `json:"id"`
	StoreID   string    `json:"store_id"`
	Name      string    `json:"name"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ColorResponse struct {
	ID        string    `json:"id"`
	StoreID   string    `json:"store_id"`
	Name      string    `json:"name"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ProductResponse struct {
	ID         string            `json:"id"`
	StoreID    string            `json:"store_id"`
	Name       string            `json:"name"`
	Price      decimal.Decimal   `json:"price"`
	IsFeatured bool              `json:"is_featured"`
	IsArchived bool              `json:"is_archived"`
	Images     []ImageResponse   `json:"images"`
	Category   *CategoryResponse `json:"category,omitempty"`
	Size       *SizeResponse     `json:"size,omitempty"`
	Color      *ColorResponse    `json:"color,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

type OrderItemResponse struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	ProductPrice decimal.Decimal `json:"product_price"`
}

type OrderResponse struct {
	ID        string              `json:"id"`
	StoreID   string              `json:"store_id"`
	IsPaid    bool                `json:"is_paid"`
	Phone     string              `json:"phone"`
	Address   string              `json:"address"`
	Items     []OrderItemResponse `json:"items"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

func NewStoreResponse(s *Store) StoreResponse {
	return StoreResponse{
		ID:        s.ID.String(),
		Name:      s.Name,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func NewImageResponse(img *Image) ImageResponse {
	return ImageResponse{
		ID:       img.ID.String(),
		URL:      img.URL,
		PublicID: img.PublicID,
		Name:     img.Name,
		Format:   img.Format,
		Size:     img.Size,
	}
}

func NewBillboardResponse(b *Billboard) BillboardResponse {
	resp := BillboardResponse{
		ID:        b.ID.String(),
		StoreID:   b.StoreID.String(),
		Label:     b.Label,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
	if b.Image != nil {
		img := NewImageResponse(b.Image)
		resp.Image = &img
	}
	return resp
}

func NewCategoryResponse(cat *Category) CategoryResponse {
	resp := CategoryResponse{
		ID:        cat.ID.String(),
		StoreID:   cat.StoreID.String(),
		Name:      cat.Name,
		CreatedAt: cat.CreatedAt,
		UpdatedAt: cat.UpdatedAt,
	}
	if cat.BillboardID.Valid {
		resp.BillboardID = cat.BillboardID.UUID.String()
	}
	return resp
}

func NewSizeResponse(s *Size) SizeResponse {
	return SizeResponse{
		ID:        s.ID.String(),
		StoreID:   s.StoreID.String(),
		Name:      s.Name,
		Value:     s.Value,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func NewColorResponse(c *Color) ColorResponse {
	return ColorResponse{
		ID:        c.ID.String(),
		StoreID:   c.StoreID.String(),
		Name:      c.Name,
		Value:     c.Value,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func NewProductResponse(p *Product) ProductResponse {
	resp := ProductResponse{
		ID:         p.ID.String(),
		StoreID:    p.StoreID.String(),
		Name:       p.Name,
		Price:      p.Price,
		IsFeatured: p.IsFeatured,
		IsArchived: p.IsArchived,
		Images:     make([]ImageResponse, 0, len(p.Images)),
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
	for i := range p.Images {
		resp.Images = append(resp.Images, NewImageResponse(&p.Images[i]))
	}
	if p.Category != nil {
		cat := NewCategoryResponse(p.Category)
		resp.Category = &cat
	}
	if p.Size != nil {
		size := NewSizeResponse(p.Size)
		resp.Size = &size
	}
	if p.Color != nil {
		color := NewColorResponse(p.Color)
		resp.Color = &color
	}
	return resp
}

func NewOrderResponse(o *Order) OrderResponse {
	resp := OrderResponse{
		ID:        o.ID.String(),
		StoreID:   o.StoreID.String(),
		IsPaid:    o.IsPaid,
		Phone:     o.Phone,
		Address:   o.Address,
		Items:     make([]OrderItemResponse, 0, len(o.Items)),
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
	for _, item := range o.Items {
		resp.Items = append(resp.Items, OrderItemResponse{
			ID:           item.ID.String(),
			ProductID:    item.ProductID.String(),
			ProductName:  item.ProductName,
			ProductPrice: item.ProductPrice,
		})
	}
	return resp
}
