package domain

import "time"

type ProductCategory string

const (
	CategoryCabinet    ProductCategory = "cabinet"
	CategoryCountertop ProductCategory = "countertop"
	CategoryFlooring   ProductCategory = "flooring"
	CategoryHardware   ProductCategory = "hardware"
)

type Product struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	Category   ProductCategory `json:"category"`
	Unit       string          `json:"unit"` // "each", "linear_ft", "sq_ft"
	PriceCents int64           `json:"priceCents"`
	IsActive   bool            `json:"isActive"`
	CreatedAt  time.Time       `json:"createdAt"`
	Version    int32           `json:"-"`
}
