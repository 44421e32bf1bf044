// Package dto shapes loaded entities into response payloads. Every view
// points one way only (order -> lines -> product -> category, cashier ->
// orders) so nothing needs cycle breaking at encode time.
package dto

import (
	"time"

	"github.com/junaidrashid-git/cornerstore-api/models"
	"github.com/shopspring/decimal"
)

type CategoryView struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type ProductView struct {
	ID         uint            `json:"id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Brand      string          `json:"brand"`
	CategoryID uint            `json:"categoryId"`
	Category   *CategoryView   `json:"category,omitempty"`
}

type CashierView struct {
	ID        uint         `json:"id"`
	FirstName string       `json:"firstName"`
	LastName  string       `json:"lastName"`
	FullName  string       `json:"fullName"`
	Orders    *[]OrderView `json:"orders,omitempty"`
}

type OrderView struct {
	ID         uint             `json:"id"`
	CashierID  uint             `json:"cashierId"`
	Cashier    *CashierView     `json:"cashier,omitempty"`
	Total      decimal.Decimal  `json:"total"`
	PaidOnDate *time.Time       `json:"paidOnDate"`
	OrderLines *[]OrderLineView `json:"orderLines,omitempty"`
}

type OrderLineView struct {
	ID        uint         `json:"id"`
	OrderID   uint         `json:"orderId"`
	ProductID uint         `json:"productId"`
	Quantity  int          `json:"quantity"`
	Product   *ProductView `json:"product,omitempty"`
}

// OrderViewOptions picks which relations an order view carries. The total is
// always computed from whatever lines the order has loaded, whether or not
// they are shown.
type OrderViewOptions struct {
	WithCashier bool
	WithLines   bool
}

var (
	// OrderSummary is the list form: cashier, no lines.
	OrderSummary = OrderViewOptions{WithCashier: true}
	// OrderDetail is the single-order form with the full nested graph.
	OrderDetail = OrderViewOptions{WithCashier: true, WithLines: true}
	// CashierOrder is an order nested under its cashier.
	CashierOrder = OrderViewOptions{WithLines: true}
)

func ToCategoryView(c models.Category) CategoryView {
	return CategoryView{ID: c.ID, Name: c.Name}
}

func ToCategoryViews(categories []models.Category) []CategoryView {
	views := make([]CategoryView, 0, len(categories))
	for _, c := range categories {
		views = append(views, ToCategoryView(c))
	}
	return views
}

// ToProductView includes the category only when it was loaded.
func ToProductView(p models.Product) ProductView {
	view := ProductView{
		ID:         p.ID,
		Name:       p.Name,
		Price:      p.Price,
		Brand:      p.Brand,
		CategoryID: p.CategoryID,
	}
	if p.Category != nil {
		category := ToCategoryView(*p.Category)
		view.Category = &category
	}
	return view
}

func ToProductViews(products []models.Product) []ProductView {
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, ToProductView(p))
	}
	return views
}

// ToCashierView nests the given orders; a nil slice leaves them out while an
// empty one encodes as [].
func ToCashierView(c models.Cashier, orders []models.Order) CashierView {
	view := CashierView{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		FullName:  c.FullName(),
	}
	if orders != nil {
		nested := make([]OrderView, 0, len(orders))
		for _, o := range orders {
			nested = append(nested, ToOrderView(o, CashierOrder))
		}
		view.Orders = &nested
	}
	return view
}

func ToOrderView(o models.Order, opts OrderViewOptions) OrderView {
	view := OrderView{
		ID:         o.ID,
		CashierID:  o.CashierID,
		Total:      OrderTotal(o.Lines),
		PaidOnDate: o.PaidOnDate,
	}
	if opts.WithCashier && o.Cashier != nil {
		cashier := ToCashierView(*o.Cashier, nil)
		view.Cashier = &cashier
	}
	if opts.WithLines {
		lines := make([]OrderLineView, 0, len(o.Lines))
		for _, line := range o.Lines {
			lines = append(lines, ToOrderLineView(line))
		}
		view.OrderLines = &lines
	}
	return view
}

func ToOrderViews(orders []models.Order, opts OrderViewOptions) []OrderView {
	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, ToOrderView(o, opts))
	}
	return views
}

func ToOrderLineView(l models.OrderLine) OrderLineView {
	view := OrderLineView{
		ID:        l.ID,
		OrderID:   l.OrderID,
		ProductID: l.ProductID,
		Quantity:  l.Quantity,
	}
	if l.Product != nil {
		product := ToProductView(*l.Product)
		view.Product = &product
	}
	return view
}

// OrderTotal is the sum of price x quantity over lines. Lines without a
// loaded product count as zero.
func OrderTotal(lines []models.OrderLine) decimal.Decimal {
	return models.Order{Lines: lines}.Total()
}
