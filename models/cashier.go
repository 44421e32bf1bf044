package models

type Cashier struct {
	ID        uint    `gorm:"primaryKey;autoIncrement"`
	FirstName string  `gorm:"not null"`
	LastName  string  `gorm:"not null"`
	Orders    []Order `gorm:"foreignKey:CashierID"`
}

// FullName joins first and last name with a single space.
func (c Cashier) FullName() string {
	return c.FirstName + " " + c.LastName
}
