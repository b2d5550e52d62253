package web

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Veraticus/foodsaver/internal/expiry"
	"github.com/Veraticus/foodsaver/internal/match"
	"github.com/Veraticus/foodsaver/internal/model"
)

// itemForm carries the add/edit form fields.
type itemForm struct {
	Name         string `form:"name" binding:"required"`
	Quantity     string `form:"quantity"`
	PurchaseDate string `form:"purchase_date"`
	ExpiryDate   string `form:"expiry_date"`
	Notes        string `form:"notes"`
}

// itemView is one row of the pantry listing.
type itemView struct {
	ID         int64
	Name       string
	Quantity   string
	ExpiryDate string
	DaysLabel  string
	Category   string
	Notes      string
}

// recipeView is one suggested or listed recipe.
type recipeView struct {
	ID           int64
	Name         string
	Ingredients  string
	Instructions string
}

func logRequest(method, path string, status int, elapsed time.Duration) {
	slog.Debug("http request",
		"method", method,
		"path", path,
		"status", status,
		"elapsed", elapsed)
}

// index renders the pantry listing with recipe suggestions.
func (s *Server) index(c *gin.Context) {
	listing, err := s.pantry.Listing(c.Request.Context(), s.now())
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load pantry: %v", err)
		return
	}

	items := make([]itemView, 0, len(listing.Items))
	for _, item := range listing.Items {
		days := "—"
		if item.HasDays {
			days = strconv.Itoa(item.Days)
		}
		items = append(items, itemView{
			ID:         item.ID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			ExpiryDate: item.ExpiryDate,
			DaysLabel:  days,
			Category:   string(item.Category),
			Notes:      item.Notes,
		})
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Flash":       c.Query("msg"),
		"Items":       items,
		"Suggestions": recipeViews(listing.Suggestions),
	})
}

// addItem creates a pantry item from the add form.
func (s *Server) addItem(c *gin.Context) {
	var form itemForm
	if err := c.ShouldBind(&form); err != nil {
		redirectWithFlash(c, "/", "Name required")
		return
	}
	if msg := validateDates(form); msg != "" {
		redirectWithFlash(c, "/", msg)
		return
	}

	item := &model.PantryItem{
		Name:         form.Name,
		Quantity:     form.Quantity,
		PurchaseDate: form.PurchaseDate,
		ExpiryDate:   form.ExpiryDate,
		Notes:        form.Notes,
	}
	if err := s.storage.SaveItem(c.Request.Context(), item); err != nil {
		redirectWithFlash(c, "/", "Failed to add item")
		return
	}

	redirectWithFlash(c, "/", "Item added")
}

// editItemForm renders the edit form for one item.
func (s *Server) editItemForm(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		redirectWithFlash(c, "/", "Item not found")
		return
	}

	item, err := s.storage.GetItem(c.Request.Context(), id)
	if err != nil {
		redirectWithFlash(c, "/", "Item not found")
		return
	}

	c.HTML(http.StatusOK, "edit.html", gin.H{"Item": item})
}

// editItem applies the edit form as a full-field replace.
func (s *Server) editItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		redirectWithFlash(c, "/", "Item not found")
		return
	}

	var form itemForm
	if err := c.ShouldBind(&form); err != nil {
		redirectWithFlash(c, "/", "Name required")
		return
	}
	if msg := validateDates(form); msg != "" {
		redirectWithFlash(c, "/", msg)
		return
	}

	item := &model.PantryItem{
		ID:           id,
		Name:         form.Name,
		Quantity:     form.Quantity,
		PurchaseDate: form.PurchaseDate,
		ExpiryDate:   form.ExpiryDate,
		Notes:        form.Notes,
	}
	if err := s.storage.UpdateItem(c.Request.Context(), item); err != nil {
		redirectWithFlash(c, "/", "Item not found")
		return
	}

	redirectWithFlash(c, "/", "Saved")
}

// deleteItem removes one item.
func (s *Server) deleteItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		redirectWithFlash(c, "/", "Item not found")
		return
	}

	if err := s.storage.DeleteItem(c.Request.Context(), id); err != nil {
		redirectWithFlash(c, "/", "Item not found")
		return
	}

	redirectWithFlash(c, "/", "Deleted")
}

// seed loads the sample data set.
func (s *Server) seed(c *gin.Context) {
	if err := s.storage.Seed(c.Request.Context()); err != nil {
		redirectWithFlash(c, "/", "Failed to seed sample data")
		return
	}
	redirectWithFlash(c, "/", "Seeded sample data")
}

// sendReminders triggers a one-shot reminder email.
func (s *Server) sendReminders(c *gin.Context) {
	if s.reminders == nil {
		redirectWithFlash(c, "/", "Email not configured. Set email settings to enable reminders.")
		return
	}

	n, err := s.reminders.Send(c.Request.Context(), s.now())
	if err != nil {
		redirectWithFlash(c, "/", "Failed to send reminders")
		return
	}
	if n == 0 {
		redirectWithFlash(c, "/", "No items expiring soon")
		return
	}

	redirectWithFlash(c, "/", "Reminder email sent")
}

// validateDates checks that any provided form dates are YYYY-MM-DD. The
// stored value is the raw string either way; this guard only keeps obvious
// typos out of new input.
func validateDates(form itemForm) string {
	if form.PurchaseDate != "" {
		if _, ok := expiry.ParseDate(form.PurchaseDate); !ok {
			return "Invalid purchase date format; use YYYY-MM-DD"
		}
	}
	if form.ExpiryDate != "" {
		if _, ok := expiry.ParseDate(form.ExpiryDate); !ok {
			return "Invalid expiry date format; use YYYY-MM-DD"
		}
	}
	return ""
}

func recipeViews(recipes []model.Recipe) []recipeView {
	views := make([]recipeView, 0, len(recipes))
	for _, r := range recipes {
		views = append(views, recipeView{
			ID:           r.ID,
			Name:         r.Name,
			Ingredients:  joinIngredients(r.Ingredients),
			Instructions: r.Instructions,
		})
	}
	return views
}

// joinIngredients renders the parsed ingredient set back as display text.
func joinIngredients(raw string) string {
	return strings.Join(match.ParseIngredients(raw), ", ")
}
