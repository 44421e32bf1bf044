package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/cornerstore-api/controllers/respond"
	"github.com/junaidrashid-git/cornerstore-api/dto"
	"github.com/junaidrashid-git/cornerstore-api/repository"
)

// GetAllCategories returns all categories. An empty store yields [].
func GetAllCategories(store *repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := store.ListCategories(c.Request.Context())
		if err != nil {
			respond.StoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.ToCategoryViews(categories))
	}
}
