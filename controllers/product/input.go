package productcontroller

import (
	"github.com/junaidrashid-git/cornerstore-api/models"
	"github.com/shopspring/decimal"
)

// ProductInput is the body for both create and full replace.
type ProductInput struct {
	Name       string           `json:"name" binding:"required"`
	Price      *decimal.Decimal `json:"price" binding:"required"`
	Brand      string           `json:"brand"`
	CategoryID uint             `json:"categoryId" binding:"required"`
}

func (in ProductInput) toModel() models.Product {
	p := models.Product{
		Name:       in.Name,
		Brand:      in.Brand,
		CategoryID: in.CategoryID,
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	return p
}
