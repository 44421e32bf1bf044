package repository

import (
	"context"
	"strings"

	"github.com/junaidrashid-git/cornerstore-api/models"
)

// CreateCashier inserts c as given and fills in its id.
func (s *Store) CreateCashier(ctx context.Context, c *models.Cashier) error {
	if strings.TrimSpace(c.FirstName) == "" {
		return invalid("firstName", "is required")
	}
	if strings.TrimSpace(c.LastName) == "" {
		return invalid("lastName", "is required")
	}
	c.ID = 0
	c.Orders = nil
	return translate("create cashier", insert(s.conn(ctx), c))
}

// FindCashier loads a cashier with every order it rang up, each order with
// its lines, products and categories so totals are complete.
func (s *Store) FindCashier(ctx context.Context, id uint) (*models.Cashier, error) {
	cashier, err := findByID[models.Cashier](s.conn(ctx), id,
		preload("Orders", "Orders.Lines", "Orders.Lines.Product", "Orders.Lines.Product.Category"))
	return cashier, translate("find cashier", err)
}
