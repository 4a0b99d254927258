package models

import "github.com/shopspring/decimal"

type StoreRequest struct {
	Name string `json:"name"`
}

// BillboardRequest carries the billboard label plus a single image reference:
// either a base64 data URI (new upload) or the billboard's current URL (keep).
type BillboardRequest struct {
	Label string `json:"label"`
	Image string `json:"image"`
}

type CategoryRequest struct {
	Name        string `json:"name"`
	BillboardID string `json:"billboardId,omitempty"`
}

type SizeRequest struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type ColorRequest struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ProductRequest carries product fields plus the full image reference set.
// Each entry is a data URI (new) or an http(s) URL of an already-owned image
// (kept); anything else is dropped. The persisted image set always equals the
// set submitted here.
type ProductRequest struct {
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	CategoryID string          `json:"categoryId"`
	SizeID     string          `json:"sizeId"`
	ColorID    string          `json:"colorId"`
	Images     []string        `json:"images"`
	IsFeatured bool            `json:"isFeatured"`
	IsArchived bool            `json:"isArchived"`
}
