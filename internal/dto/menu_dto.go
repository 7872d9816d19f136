package dto

import "github.com/shopspring/decimal"

type CreateMenuItemRequest struct {
	Name         string          `json:"name"        validate:"required,max=100"`
	Description  *string         `json:"description"`
	Price        decimal.Decimal `json:"price"       validate:"gt=0"`
	Category     string          `json:"category"    validate:"required"`
	ImageURL     *string         `json:"image_url"`
	PrepMinutes  int             `json:"prep_minutes" validate:"omitempty,min=1"`
	TrackStock   bool            `json:"track_stock"`
	CurrentStock int             `json:"current_stock" validate:"min=0"`
	MinimumStock int             `json:"minimum_stock" validate:"min=0"`
}

type UpdateMenuItemRequest struct {
	Price     *decimal.Decimal `json:"price"     validate:"omitempty,gt=0"`
	Available *bool            `json:"available"`
	Popular   *bool            `json:"popular"`
}

type MenuItemResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  *string         `json:"description,omitempty"`
	Price        decimal.Decimal `json:"price"`
	Category     string          `json:"category"`
	Available    bool            `json:"available"`
	Popular      bool            `json:"popular"`
	PrepMinutes  int             `json:"prep_minutes"`
	TrackStock   bool            `json:"track_stock"`
	CurrentStock int             `json:"current_stock"`
	LowStock     bool            `json:"low_stock"`
}
