package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trendora/storefront-api/models"
)

func TestProductsDecodesMixedRefShapes(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/products", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"_id":"p1","name":"Slim Tee","regularPrice":500,"discountPrice":400,
			 "category":{"_id":"shirts","name":"Shirts"},"fit":"slim","sizes":["S","M"]},
			{"_id":"p2","name":"Cap","price":150,"category":"accessories"}
		]`))
	}))
	defer ts.Close()

	products, err := New(ts.URL).Products(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, "shirts", products[0].Category.Key())
	category, ok := products[0].Category.Populated()
	require.True(t, ok)
	assert.Equal(t, "Shirts", category.Name)
	assert.Equal(t, "slim", products[0].Fit.Key())
	assert.Equal(t, 400.0, products[0].EffectivePrice())

	assert.Equal(t, "accessories", products[1].Category.Key())
	assert.Equal(t, 150.0, products[1].EffectivePrice())
}

func TestProductNotFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Product not found"}`))
	}))
	defer ts.Close()

	_, err := New(ts.URL).Product(context.Background(), "nope")
	require.ErrorIs(t, err, models.ErrNotFound)
	assert.Contains(t, err.Error(), "Product not found")
}

func TestSyncUserBlocked(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/sync", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":"Your account has been blocked."}`))
	}))
	defer ts.Close()

	err := New(ts.URL).SyncUser(context.Background(), "Asha", "asha@example.com", "u1")
	assert.ErrorIs(t, err, models.ErrAccountBlocked)
}

func TestSyncUserNameFallback(t *testing.T) {
	var got map[string]string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	require.NoError(t, New(ts.URL).SyncUser(context.Background(), "", "asha@example.com", "u1"))
	assert.Equal(t, "User", got["name"])
	assert.Equal(t, "asha@example.com", got["email"])
	assert.Equal(t, "u1", got["firebaseUid"])
}

func TestUsersSendsBearerToken(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer admin-token", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[{"_id":"u1","name":"Asha","email":"asha@example.com","isBlocked":false}]`))
	}))
	defer ts.Close()

	users, err := New(ts.URL).Users(context.Background(), "admin-token")
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Asha", users[0].Name)
	assert.False(t, users[0].IsBlocked)
}

func TestBlockUser(t *testing.T) {
	var gotPath, gotMethod string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotMethod = r.URL.Path, r.Method
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	c := New(ts.URL)
	require.NoError(t, c.BlockUser(context.Background(), "admin-token", "u1"))
	assert.Equal(t, "/users/u1/block", gotPath)
	assert.Equal(t, http.MethodPut, gotMethod)

	assert.Error(t, c.BlockUser(context.Background(), "admin-token", ""))
}

func TestAdminLogin(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/admin/login", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "admin", body["username"])
		require.Equal(t, "secret", body["password"])
		_, _ = w.Write([]byte(`{"token":"admin-token"}`))
	}))
	defer ts.Close()

	sess, err := New(ts.URL).AdminLogin(context.Background(), "admin", "secret")
	require.NoError(t, err)
	assert.Equal(t, "admin-token", sess.Token)
	assert.Equal(t, "admin", sess.Username, "username falls back to the credential when the response omits it")
}

func TestAdminLoginRejected(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Invalid credentials"}`))
	}))
	defer ts.Close()

	_, err := New(ts.URL).AdminLogin(context.Background(), "admin", "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid credentials")
}

func TestCreateProductMultipartEncoding(t *testing.T) {
	type received struct {
		fields map[string]string
		images []string
	}
	var got received
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/products", r.URL.Path)
		require.Equal(t, "Bearer admin-token", r.Header.Get("Authorization"))
		require.NoError(t, r.ParseMultipartForm(32<<20))

		got.fields = map[string]string{}
		for key, values := range r.MultipartForm.Value {
			got.fields[key] = values[0]
		}
		for _, fh := range r.MultipartForm.File["images"] {
			got.images = append(got.images, fh.Filename)
		}
		_, _ = w.Write([]byte(`{"_id":"p-new","name":"Slim Tee"}`))
	}))
	defer ts.Close()

	product, err := New(ts.URL).CreateProduct(context.Background(), "admin-token", ProductForm{
		Name:          "Slim Tee",
		Description:   "A tee",
		RegularPrice:  "500",
		DiscountPrice: "400",
		CategoryID:    "shirts",
		SubcategoryID: "tees",
		FitID:         "slim",
		Sizes:         []string{"S", "M"},
		Images: []ImageFile{
			{Name: "front.jpg", Data: []byte("jpegdata")},
			{Name: "back.jpg", Data: []byte("jpegdata")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "p-new", product.ID)

	assert.Equal(t, "Slim Tee", got.fields["name"])
	assert.Equal(t, "500", got.fields["regularPrice"])
	assert.Equal(t, "400", got.fields["discountPrice"])
	assert.Equal(t, "shirts", got.fields["category"])
	assert.Equal(t, "tees", got.fields["subcategory"])
	assert.Equal(t, "slim", got.fields["fit"])
	assert.JSONEq(t, `["S","M"]`, got.fields["sizes"])
	assert.Equal(t, []string{"front.jpg", "back.jpg"}, got.images)
}

func TestProductFormRejectsTooManyImages(t *testing.T) {
	form := ProductForm{Name: "Tee", Images: make([]ImageFile, 4)}
	_, _, err := form.encode()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at most 3 images")
}

func TestProductFormOmitsEmptyOptionalFields(t *testing.T) {
	body, contentType, err := ProductForm{Name: "Tee", RegularPrice: "500"}.encode()
	require.NoError(t, err)
	require.NotEmpty(t, contentType)

	content := body.String()
	assert.NotContains(t, content, `name="discountPrice"`)
	assert.NotContains(t, content, `name="fit"`)
	assert.Contains(t, content, `name="sizes"`)
}
