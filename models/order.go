package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID         uint        `gorm:"primaryKey;autoIncrement"`
	CashierID  uint        `gorm:"not null;index"`
	Cashier    *Cashier    `gorm:"foreignKey:CashierID"`
	PaidOnDate *time.Time  `gorm:"index"` // nil while unpaid
	Lines      []OrderLine `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

type OrderLine struct {
	ID        uint     `gorm:"primaryKey;autoIncrement"`
	OrderID   uint     `gorm:"not null;index"`
	ProductID uint     `gorm:"not null;index"`
	Product   *Product `gorm:"foreignKey:ProductID"`
	Quantity  int      `gorm:"not null"`
}

// Subtotal is price x quantity, or zero when the product was not loaded.
func (l OrderLine) Subtotal() decimal.Decimal {
	if l.Product == nil {
		return decimal.Zero
	}
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Total sums line subtotals over whatever lines are loaded. It is never
// persisted.
func (o Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range o.Lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

// IsPaid reports whether a paid-on date has been recorded.
func (o Order) IsPaid() bool {
	return o.PaidOnDate != nil
}

// AllModels lists every table in dependency order for migrations.
func AllModels() []interface{} {
	return []interface{}{
		&Category{},
		&Product{},
		&Cashier{},
		&Order{},
		&OrderLine{},
	}
}
