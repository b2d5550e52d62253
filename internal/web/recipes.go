package web

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Veraticus/foodsaver/internal/model"
)

// recipeForm carries the add-recipe form fields.
type recipeForm struct {
	Name         string `form:"name" binding:"required"`
	Ingredients  string `form:"ingredients" binding:"required"`
	Instructions string `form:"instructions"`
}

// recipesPage renders the recipe management page.
func (s *Server) recipesPage(c *gin.Context) {
	recipes, err := s.storage.ListRecipes(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load recipes: %v", err)
		return
	}

	views := make([]recipeView, 0, len(recipes))
	for _, r := range recipes {
		// Show the raw ingredient text here; it is what gets edited.
		views = append(views, recipeView{
			ID:           r.ID,
			Name:         r.Name,
			Ingredients:  r.Ingredients,
			Instructions: r.Instructions,
		})
	}

	c.HTML(http.StatusOK, "recipes.html", gin.H{
		"Flash":   c.Query("msg"),
		"Recipes": views,
	})
}

// addRecipe creates a recipe from the form.
func (s *Server) addRecipe(c *gin.Context) {
	var form recipeForm
	if err := c.ShouldBind(&form); err != nil {
		redirectWithFlash(c, "/recipes", "Name and ingredients required")
		return
	}

	recipe := &model.Recipe{
		Name:         form.Name,
		Ingredients:  form.Ingredients,
		Instructions: form.Instructions,
	}
	if err := s.storage.SaveRecipe(c.Request.Context(), recipe); err != nil {
		redirectWithFlash(c, "/recipes", "Failed to add recipe")
		return
	}

	redirectWithFlash(c, "/recipes", "Recipe added")
}

// deleteRecipe removes a recipe.
func (s *Server) deleteRecipe(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		redirectWithFlash(c, "/recipes", "Recipe not found")
		return
	}

	if err := s.storage.DeleteRecipe(c.Request.Context(), id); err != nil {
		redirectWithFlash(c, "/recipes", "Recipe not found")
		return
	}

	redirectWithFlash(c, "/recipes", "Recipe deleted")
}
