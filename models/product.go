package models

import "github.com/shopspring/decimal"

type Product struct {
	ID         uint            `gorm:"primaryKey;autoIncrement"`
	Name       string          `gorm:"not null"`
	Price      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Brand      string
	CategoryID uint            `gorm:"not null;index"`
	Category   *Category       `gorm:"foreignKey:CategoryID"`
}
