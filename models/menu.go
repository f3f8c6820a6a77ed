package models

import "github.com/shopspring/decimal"

type MenuItem struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"type:varchar(255);not null" json:"name"`
	Description *string         `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Category    string          `gorm:"type:varchar(100);not null;index" json:"category"`
	ImageURL    *string         `gorm:"column:image_url;type:varchar(500)" json:"image_url"`
	IsAvailable bool            `gorm:"not null" json:"is_available"`
}

// TableName keeps the table name of the existing schema.
func (MenuItem) TableName() string {
	return "menu"
}
