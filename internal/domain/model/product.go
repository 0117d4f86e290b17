package model

import "github.com/shopspring/decimal"

type Category string

const (
	CategoryDigital Category = "digital"
	CategoryService Category = "service"
)

// digital / service のどちらか
func (c Category) Valid() bool {
	switch c {
	case CategoryDigital, CategoryService:
		return true
	default:
		return false
	}
}

// カタログの商品。読み取り専用で、カートからは変更しない。
type Product struct {
	ID              string          `gorm:"primaryKey;type:varchar(64)" json:"id" yaml:"id"`
	Name            string          `gorm:"type:varchar(255);not null" json:"name" yaml:"name"`
	Description     string          `gorm:"type:text" json:"description" yaml:"description"`
	FullDescription string          `gorm:"type:text;column:full_description" json:"full_description" yaml:"full_description"`
	Price           decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price" yaml:"price"`
	Image           string          `gorm:"type:text" json:"image" yaml:"image"`
	Category        Category        `gorm:"type:varchar(20);not null" json:"category" yaml:"category"`
	SortOrder       int             `gorm:"not null;default:0" json:"-" yaml:"sort_order"`
}
