package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/cornerstore-api/controllers/respond"
	"github.com/junaidrashid-git/cornerstore-api/models"
	"github.com/junaidrashid-git/cornerstore-api/repository"
	"github.com/tealeg/xlsx"
)

var exportHeaders = []string{"ID", "Name", "Brand", "Price", "CategoryID", "Category"}

// ExportProductsToExcel streams the product list, filtered by ?search= the
// same way GetProducts is, as an xlsx workbook.
func ExportProductsToExcel(store *repository.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := store.ListProducts(c.Request.Context(), c.Query("search"))
		if err != nil {
			respond.StoreError(c, err)
			return
		}

		file, err := buildProductWorkbook(products)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}

func buildProductWorkbook(products []models.Product) (*xlsx.File, error) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Products")
	if err != nil {
		return nil, err
	}

	headerRow := sheet.AddRow()
	for _, h := range exportHeaders {
		headerRow.AddCell().SetString(h)
	}

	for _, p := range products {
		row := sheet.AddRow()
		row.AddCell().SetInt(int(p.ID))
		row.AddCell().SetString(p.Name)
		row.AddCell().SetString(p.Brand)
		row.AddCell().SetFloat(p.Price.InexactFloat64())
		row.AddCell().SetInt(int(p.CategoryID))

		category := ""
		if p.Category != nil {
			category = p.Category.Name
		}
		row.AddCell().SetString(category)
	}
	return file, nil
}
