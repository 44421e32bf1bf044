package database

import (
	"fmt"
	"log"
	"time"

	"github.com/junaidrashid-git/cornerstore-api/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SeedData loads the fixed bootstrap rows into empty tables. It is a no-op
// when any cashier already exists.
func SeedData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Cashier{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count cashiers: %w", err)
	}
	if count > 0 {
		log.Println("Database already has data. Skipping seed.")
		return nil
	}

	paid := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	cashiers := []models.Cashier{
		{ID: 1, FirstName: "Rick", LastName: "Flair"},
		{ID: 2, FirstName: "Smooth", LastName: "Kev"},
		{ID: 3, FirstName: "Ricardo", LastName: "Tessitori"},
	}
	categories := []models.Category{
		{ID: 1, Name: "Cooking"},
		{ID: 2, Name: "Snacks"},
		{ID: 3, Name: "Auto"},
	}
	products := []models.Product{
		{ID: 1, Name: "Cheese", Price: decimal.RequireFromString("3.00"), Brand: "Kraft", CategoryID: 1},
		{ID: 2, Name: "Bread", Price: decimal.RequireFromString("2.00"), Brand: "Wonder", CategoryID: 1},
		{ID: 3, Name: "Nacho Cheese Tortilla Chips", Price: decimal.RequireFromString("6.00"), Brand: "Doritos", CategoryID: 2},
		{ID: 4, Name: "Oil Filter", Price: decimal.RequireFromString("4.00"), Brand: "Imperial", CategoryID: 3},
	}
	orders := []models.Order{
		{ID: 1, CashierID: 1, PaidOnDate: &paid},
		{ID: 2, CashierID: 1},
		{ID: 3, CashierID: 2},
	}
	lines := []models.OrderLine{
		{ID: 1, ProductID: 1, OrderID: 1, Quantity: 1},
		{ID: 2, ProductID: 2, OrderID: 1, Quantity: 1},
		{ID: 3, ProductID: 3, OrderID: 2, Quantity: 2},
		{ID: 4, ProductID: 3, OrderID: 3, Quantity: 1},
		{ID: 5, ProductID: 4, OrderID: 3, Quantity: 1},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		steps := []struct {
			table string
			rows  interface{}
		}{
			{"cashiers", &cashiers},
			{"categories", &categories},
			{"products", &products},
			{"orders", &orders},
			{"order_lines", &lines},
		}
		for _, step := range steps {
			if err := tx.Create(step.rows).Error; err != nil {
				return fmt.Errorf("failed to seed %s: %w", step.table, err)
			}
			if err := resetSequence(tx, step.table); err != nil {
				return err
			}
		}
		log.Println("✅ Seed data loaded")
		return nil
	})
}

// resetSequence moves a postgres serial past explicitly inserted ids so the
// next generated id does not collide with seeded rows.
func resetSequence(tx *gorm.DB, table string) error {
	if tx.Dialector.Name() != "postgres" {
		return nil
	}
	sql := fmt.Sprintf("SELECT setval(pg_get_serial_sequence('%s', 'id'), (SELECT MAX(id) FROM %s))", table, table)
	if err := tx.Exec(sql).Error; err != nil {
		return fmt.Errorf("reset %s id sequence: %w", table, err)
	}
	return nil
}
