package repository

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/junaidrashid-git/cornerstore-api/models"
	"gorm.io/gorm"
)

// NewOrder is the trusted input for CreateOrder. Only ids and quantities
// come from the client; prices and names are always read from the store.
type NewOrder struct {
	CashierID  uint
	PaidOnDate *time.Time
	Lines      []NewOrderLine
}

type NewOrderLine struct {
	ProductID uint
	Quantity  int
}

var orderGraph = []string{"Cashier", "Lines", "Lines.Product", "Lines.Product.Category"}

// ListOrders returns orders with cashier, lines and products loaded, ordered
// by id. When paidOn is set only orders paid at exactly that instant match.
func (s *Store) ListOrders(ctx context.Context, paidOn *time.Time) ([]models.Order, error) {
	orders, err := listFiltered[models.Order](s.conn(ctx), paidOnFilter(paidOn), preload(orderGraph...), orderBy("orders.id"))
	return orders, translate("list orders", err)
}

func paidOnFilter(paidOn *time.Time) scope {
	return func(db *gorm.DB) *gorm.DB {
		if paidOn == nil {
			return db
		}
		return db.Where("orders.paid_on_date = ?", paidOn.UTC())
	}
}

// FindOrder loads one order with its full graph.
func (s *Store) FindOrder(ctx context.Context, id uint) (*models.Order, error) {
	order, err := findByID[models.Order](s.conn(ctx), id, preload(orderGraph...))
	return order, translate("find order", err)
}

// CreateOrder checks the cashier and every product reference before writing
// anything, then inserts the order and all of its lines in one transaction.
// Any unresolvable reference rejects the whole order.
func (s *Store) CreateOrder(ctx context.Context, in NewOrder) (*models.Order, error) {
	var created *models.Order
	err := s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		if err := validateOrder(tx, in); err != nil {
			return err
		}

		order := models.Order{CashierID: in.CashierID}
		if in.PaidOnDate != nil {
			paid := in.PaidOnDate.UTC()
			order.PaidOnDate = &paid
		}
		for _, line := range in.Lines {
			order.Lines = append(order.Lines, models.OrderLine{
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
			})
		}
		if err := insert(tx, &order); err != nil {
			return err
		}

		var err error
		created, err = findByID[models.Order](tx, order.ID, preload(orderGraph...))
		return err
	})
	if err != nil {
		return nil, translate("create order", err)
	}
	return created, nil
}

func validateOrder(tx *gorm.DB, in NewOrder) error {
	if in.CashierID == 0 {
		return invalid("cashierId", "is required")
	}
	found, err := exists[models.Cashier](tx, in.CashierID)
	if err != nil {
		return err
	}
	if !found {
		return invalid("cashierId", "cashier %d does not exist", in.CashierID)
	}

	wanted := map[uint]bool{}
	for i, line := range in.Lines {
		if line.ProductID == 0 {
			return invalid(fmt.Sprintf("orderLines[%d].productId", i), "is required")
		}
		if line.Quantity < 1 {
			return invalid(fmt.Sprintf("orderLines[%d].quantity", i), "must be a positive integer")
		}
		wanted[line.ProductID] = true
	}
	if len(wanted) == 0 {
		return nil
	}

	ids := make([]uint, 0, len(wanted))
	for id := range wanted {
		ids = append(ids, id)
	}
	var resolved []uint
	if err := tx.Model(&models.Product{}).Where("id IN ?", ids).Pluck("id", &resolved).Error; err != nil {
		return err
	}
	for _, id := range resolved {
		delete(wanted, id)
	}
	if len(wanted) > 0 {
		missing := make([]uint, 0, len(wanted))
		for id := range wanted {
			missing = append(missing, id)
		}
		sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })
		return invalid("orderLines", "unknown product ids %v", missing)
	}
	return nil
}

// DeleteOrder removes an order and its lines together.
func (s *Store) DeleteOrder(ctx context.Context, id uint) error {
	err := s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := exists[models.Order](tx, id)
		if err != nil {
			return err
		}
		if !found {
			return ErrNotFound
		}
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderLine{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Order{}).Error
	})
	return translate("delete order", err)
}
