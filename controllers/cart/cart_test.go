package cartControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/asaskevich/EventBus"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trendora/storefront-api/apiclient"
	"github.com/trendora/storefront-api/cart"
	"github.com/trendora/storefront-api/checkout"
	"github.com/trendora/storefront-api/localstore"
	"github.com/trendora/storefront-api/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeSessions struct {
	current *models.Session
}

func (f *fakeSessions) Current() *models.Session { return f.current }

func fakeBackend(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/products/p1":
			_, _ = w.Write([]byte(`{"_id":"p1","name":"Slim Tee","regularPrice":500,"discountPrice":400,"sizes":["S","M"]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"Product not found"}`))
		}
	}))
	t.Cleanup(ts.Close)
	return ts
}

func cartRouter(t *testing.T, sessions cart.SessionSource) (*gin.Engine, *cart.Store) {
	t.Helper()
	local, err := localstore.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { local.Close() })

	store := cart.New(sessions, local, EventBus.New())
	api := apiclient.New(fakeBackend(t).URL)
	builder := checkout.NewBuilder("9048376099")

	r := gin.New()
	r.GET("/cart", GetCart(store))
	r.POST("/cart", AddCartItem(store, api))
	r.DELETE("/cart/:product_id", DeleteCartItem(store))
	r.DELETE("/cart", ClearCart(store))
	r.POST("/cart/checkout", Checkout(store, builder))
	return r, store
}

func addItem(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/cart", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddCartItemAnonymous(t *testing.T) {
	r, _ := cartRouter(t, &fakeSessions{})

	w := addItem(t, r, `{"product_id":"p1","selected_size":"M"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Please login to add to cart")
	assert.Contains(t, w.Body.String(), `"redirect":"/login"`)
}

func TestAddCartItemTwiceIncrements(t *testing.T) {
	r, store := cartRouter(t, &fakeSessions{current: &models.Session{UID: "u1"}})

	w := addItem(t, r, `{"product_id":"p1","selected_size":"M"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	w = addItem(t, r, `{"product_id":"p1","selected_size":"L"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	entries := store.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, 2, entries[0].Quantity)
	assert.Equal(t, "M", entries[0].SelectedSize)

	var resp struct {
		Total float64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 800.0, resp.Total)
}

func TestAddCartItemUnknownProduct(t *testing.T) {
	r, _ := cartRouter(t, &fakeSessions{current: &models.Session{UID: "u1"}})

	w := addItem(t, r, `{"product_id":"ghost"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Product does not exist")
}

func TestAddCartItemMissingProductID(t *testing.T) {
	r, _ := cartRouter(t, &fakeSessions{current: &models.Session{UID: "u1"}})

	w := addItem(t, r, `{"selected_size":"M"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteAndClear(t *testing.T) {
	r, store := cartRouter(t, &fakeSessions{current: &models.Session{UID: "u1"}})
	require.Equal(t, http.StatusCreated, addItem(t, r, `{"product_id":"p1"}`).Code)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/cart/p1", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, store.Entries())

	require.Equal(t, http.StatusCreated, addItem(t, r, `{"product_id":"p1"}`).Code)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/cart", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, store.Entries())
}

func TestCheckoutEmptyCart(t *testing.T) {
	r, _ := cartRouter(t, &fakeSessions{current: &models.Session{UID: "u1"}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/cart/checkout", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Cart is empty")
}

func TestCheckout(t *testing.T) {
	r, _ := cartRouter(t, &fakeSessions{current: &models.Session{UID: "u1"}})
	require.Equal(t, http.StatusCreated, addItem(t, r, `{"product_id":"p1","selected_size":"M"}`).Code)
	require.Equal(t, http.StatusCreated, addItem(t, r, `{"product_id":"p1"}`).Code)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/cart/checkout", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Link    string `json:"link"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.True(t, strings.HasPrefix(resp.Link, "https://wa.me/9048376099?text="))
	assert.Contains(t, resp.Message, "*Qty:* 2")
	assert.Contains(t, resp.Message, "*Total:* ₹800")
}
