package web

import (
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// exportCSV streams all pantry items as a CSV attachment.
func (s *Server) exportCSV(c *gin.Context) {
	items, err := s.storage.ListItems(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load items: %v", err)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="foodsaver_export.csv"`)

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"id", "name", "quantity", "purchase_date", "expiry_date", "notes"})
	for _, item := range items {
		_ = w.Write([]string{
			strconv.FormatInt(item.ID, 10),
			item.Name,
			item.Quantity,
			item.PurchaseDate,
			item.ExpiryDate,
			item.Notes,
		})
	}
	w.Flush()
}
