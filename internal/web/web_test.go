package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/foodsaver/internal/model"
	"github.com/Veraticus/foodsaver/internal/service"
	"github.com/Veraticus/foodsaver/internal/storage"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestServer builds a Server over a migrated in-memory database with a
// pinned clock.
func newTestServer(t *testing.T) (*Server, *storage.SQLiteStorage) {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.Migrate(context.Background()))

	srv := NewServer(service.NewPantry(store), store, nil)
	srv.now = func() time.Time {
		return time.Date(2025, 8, 27, 12, 0, 0, 0, time.Local)
	}
	return srv, store
}

func postForm(t *testing.T, router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestIndex(t *testing.T) {
	srv, store := newTestServer(t)
	router := srv.Router()
	ctx := context.Background()

	require.NoError(t, store.SaveItem(ctx, &model.PantryItem{Name: "Milk", Quantity: "1 L", ExpiryDate: "2025-08-29"}))
	require.NoError(t, store.SaveItem(ctx, &model.PantryItem{Name: "Mystery jar"}))
	require.NoError(t, store.SaveRecipe(ctx, &model.Recipe{Name: "Warm Milk", Ingredients: "milk"}))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Milk")
	assert.Contains(t, body, `class="badge urgent"`)
	assert.Contains(t, body, `class="badge unknown"`)
	assert.Contains(t, body, "Warm Milk")
}

func TestIndexToleratesBadDates(t *testing.T) {
	srv, store := newTestServer(t)
	router := srv.Router()

	require.NoError(t, store.SaveItem(context.Background(), &model.PantryItem{Name: "Leftovers", ExpiryDate: "next week"}))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	// A bad record must not break the listing.
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Leftovers")
}

func TestAddItem(t *testing.T) {
	srv, store := newTestServer(t)
	router := srv.Router()

	t.Run("valid form", func(t *testing.T) {
		w := postForm(t, router, "/add", url.Values{
			"name":        {"Bread"},
			"quantity":    {"1 loaf"},
			"expiry_date": {"2025-09-01"},
		})
		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Contains(t, w.Header().Get("Location"), "Item")

		items, err := store.ListItems(context.Background())
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Bread", items[0].Name)
	})

	t.Run("missing name rejected", func(t *testing.T) {
		w := postForm(t, router, "/add", url.Values{"quantity": {"2"}})
		require.Equal(t, http.StatusSeeOther, w.Code)

		items, err := store.ListItems(context.Background())
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})

	t.Run("bad expiry date rejected at the form", func(t *testing.T) {
		w := postForm(t, router, "/add", url.Values{
			"name":        {"Cheese"},
			"expiry_date": {"01/09/2025"},
		})
		require.Equal(t, http.StatusSeeOther, w.Code)
		assert.Contains(t, w.Header().Get("Location"), "Invalid")
	})
}

func TestEditAndDeleteItem(t *testing.T) {
	srv, store := newTestServer(t)
	router := srv.Router()
	ctx := context.Background()

	item := &model.PantryItem{Name: "Yogurt", Quantity: "4"}
	require.NoError(t, store.SaveItem(ctx, item))

	w := postForm(t, router, "/edit/1", url.Values{
		"name":     {"Yogurt"},
		"quantity": {"2"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)

	got, err := store.GetItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "2", got.Quantity)

	w = postForm(t, router, "/delete/1", nil)
	require.Equal(t, http.StatusSeeOther, w.Code)

	items, err := store.ListItems(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRecipesPage(t *testing.T) {
	srv, store := newTestServer(t)
	router := srv.Router()

	w := postForm(t, router, "/recipes/add", url.Values{
		"name":        {"French Toast"},
		"ingredients": {"bread,eggs,milk,cinnamon,butter"},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/recipes", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "French Toast")

	recipes, err := store.ListRecipes(context.Background())
	require.NoError(t, err)
	require.Len(t, recipes, 1)

	w = postForm(t, router, "/recipes/delete/1", nil)
	require.Equal(t, http.StatusSeeOther, w.Code)

	recipes, err = store.ListRecipes(context.Background())
	require.NoError(t, err)
	assert.Empty(t, recipes)
}

func TestExportCSV(t *testing.T) {
	srv, store := newTestServer(t)
	router := srv.Router()

	require.NoError(t, store.SaveItem(context.Background(), &model.PantryItem{
		Name: "Milk", Quantity: "1 L", ExpiryDate: "2025-09-02",
	}))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/export", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "foodsaver_export.csv")

	body := w.Body.String()
	assert.Contains(t, body, "id,name,quantity,purchase_date,expiry_date,notes")
	assert.Contains(t, body, "Milk,1 L,,2025-09-02")
}

func TestSeedEndpoint(t *testing.T) {
	srv, store := newTestServer(t)
	router := srv.Router()

	w := postForm(t, router, "/seed", nil)
	require.Equal(t, http.StatusSeeOther, w.Code)

	items, err := store.ListItems(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, items)
}

func TestSendRemindersUnconfigured(t *testing.T) {
	srv, _ := newTestServer(t)
	router := srv.Router()

	w := postForm(t, router, "/send-reminders", nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "Email")
}
