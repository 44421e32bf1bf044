package repository

import (
	"context"

	"github.com/junaidrashid-git/cornerstore-api/models"
)

// ListCategories returns every category ordered by id.
func (s *Store) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := listFiltered[models.Category](s.conn(ctx), byID)
	return categories, translate("list categories", err)
}
