package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MenuItem is a catalog entry. Stock fields only matter when TrackStock
// is set; prepared-to-order dishes leave it false.
type MenuItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"index;not null;size:100"`
	Description *string
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Category    string          `gorm:"index;not null"`
	ImageURL    *string
	Available   bool `gorm:"not null;default:true"`
	Popular     bool `gorm:"not null;default:false"`
	// PrepMinutes feeds the default estimated-ready-time of orders
	PrepMinutes  int  `gorm:"not null;default:15"`
	TrackStock   bool `gorm:"not null;default:false"`
	CurrentStock int  `gorm:"not null;default:0"`
	MinimumStock int  `gorm:"not null;default:5"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsLowStock reports whether the item needs restocking.
func (m *MenuItem) IsLowStock() bool {
	return m.TrackStock && m.CurrentStock <= m.MinimumStock
}
