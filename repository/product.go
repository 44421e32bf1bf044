package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/junaidrashid-git/cornerstore-api/models"
	"gorm.io/gorm"
)

// ListProducts returns products with their category, ordered by id. A
// non-empty search keeps products whose own name or category name contains
// the term, ignoring case. No match yields an empty slice.
func (s *Store) ListProducts(ctx context.Context, search string) ([]models.Product, error) {
	products, err := listFiltered[models.Product](s.conn(ctx), searchProducts(search), preload("Category"), orderBy("products.id"))
	return products, translate("list products", err)
}

// likeEscaper makes LIKE wildcards in a search term match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func searchProducts(search string) scope {
	return func(db *gorm.DB) *gorm.DB {
		if search == "" {
			return db
		}
		pattern := "%" + likeEscaper.Replace(strings.ToLower(search)) + "%"
		return db.
			Select("products.*").
			Joins("JOIN categories ON categories.id = products.category_id").
			Where(`LOWER(products.name) LIKE ? ESCAPE '\' OR LOWER(categories.name) LIKE ? ESCAPE '\'`, pattern, pattern)
	}
}

func orderBy(column string) scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(column)
	}
}

// FindProduct loads one product and its category.
func (s *Store) FindProduct(ctx context.Context, id uint) (*models.Product, error) {
	product, err := findByID[models.Product](s.conn(ctx), id, preload("Category"))
	return product, translate("find product", err)
}

// CreateProduct validates and inserts p, filling in its id and category.
func (s *Store) CreateProduct(ctx context.Context, p *models.Product) error {
	err := s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		category, err := validateProduct(tx, p)
		if err != nil {
			return err
		}
		p.ID = 0
		p.Category = nil
		if err := insert(tx, p); err != nil {
			return err
		}
		p.Category = category
		return nil
	})
	return translate("create product", err)
}

// UpdateProduct overwrites every field of product id with p. There is no
// partial update: zero values in p are written as-is.
func (s *Store) UpdateProduct(ctx context.Context, id uint, p models.Product) error {
	err := s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := exists[models.Product](tx, id)
		if err != nil {
			return err
		}
		if !found {
			return ErrNotFound
		}
		if _, err := validateProduct(tx, &p); err != nil {
			return err
		}
		return tx.Model(&models.Product{}).
			Where("id = ?", id).
			Select("Name", "Price", "Brand", "CategoryID").
			Updates(&models.Product{
				Name:       p.Name,
				Price:      p.Price,
				Brand:      p.Brand,
				CategoryID: p.CategoryID,
			}).Error
	})
	return translate("update product", err)
}

func validateProduct(tx *gorm.DB, p *models.Product) (*models.Category, error) {
	if strings.TrimSpace(p.Name) == "" {
		return nil, invalid("name", "is required")
	}
	if p.Price.IsNegative() {
		return nil, invalid("price", "must not be negative")
	}
	if p.CategoryID == 0 {
		return nil, invalid("categoryId", "is required")
	}
	category, err := findByID[models.Category](tx, p.CategoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, invalid("categoryId", "category %d does not exist", p.CategoryID)
		}
		return nil, err
	}
	return category, nil
}
