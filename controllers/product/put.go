package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/cornerstore-api/controllers/respond"
	"github.com/junaidrashid-git/cornerstore-api/repository"
)

// UpdateProduct replaces every field of an existing product by ID. Fields
// missing from the body are overwritten with their zero value.
func UpdateProduct(store *repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := respond.ID(c, "id")
		if !ok {
			return
		}

		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			respond.BadRequest(c, "Invalid input: "+err.Error())
			return
		}

		if err := store.UpdateProduct(c.Request.Context(), id, input.toModel()); err != nil {
			respond.StoreError(c, err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}
