package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sneakersdealer/ds-admin-backend/internal/app/model"
	"github.com/sneakersdealer/ds-admin-backend/internal/app/repository"
	"github.com/sneakersdealer/ds-admin-backend/internal/app/service"
	"github.com/sneakersdealer/ds-admin-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type productControllerFixture struct {
	controller  *ProductController
	productRepo repository.ProductRepository
	testDB      *gorm.DB
	owner       *model.User
	store       *model.Store
}

func setupProductControllerTest(t *testing.T) *productControllerFixture {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	owner := &model.User{
		Email:        "owner@example.com",
		PasswordHash: "hashed-password",
		Name:         "Store Owner",
	}
	require.NoError(t, testDB.Create(owner).Error)

	store := &model.Store{
		Name:   "Sneaker Shop",
		UserID: owner.ID,
	}
	require.NoError(t, testDB.Create(store).Error)

	productRepo := repository.NewProductRepository(testDB)
	storeService := service.NewStoreService(repository.NewStoreRepository(testDB))
	productService := service.NewProductService(productRepo, storeService)

	return &productControllerFixture{
		controller:  NewProductController(productService),
		productRepo: productRepo,
		testDB:      testDB,
		owner:       owner,
		store:       store,
	}
}

// newCatalogRouter builds a router with the product routes mounted the
// way the real route table lays them out. userID, when set, plays the
// part of the auth middleware.
func (f *productControllerFixture) newCatalogRouter(userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	if userID != "" {
		router.Use(func(c *gin.Context) {
			c.Set("user_id", userID)
			c.Next()
		})
	}

	store := router.Group("/api/:storeId")
	store.GET("/products", f.controller.GetProducts)
	store.GET("/products/:productId", f.controller.GetProductByID)
	store.GET("/fav_products/*productIds", f.controller.GetFavoriteProducts)
	store.GET("/products_amount", f.controller.GetProductsAmount)
	store.POST("/products", f.controller.CreateProduct)
	store.PATCH("/products/:productId", f.controller.UpdateProduct)
	store.DELETE("/products/:productId", f.controller.DeleteProduct)
	store.DELETE("/products", f.controller.DeleteAllProducts)

	return router
}

func (f *productControllerFixture) seedSneaker(t *testing.T, name string) *model.Product {
	product := &model.Product{
		Name:       name,
		PictureURL: "https://example.com/" + name + ".png",
		Price:      180,
		Brand:      "Nike",
		StoreID:    f.store.ID,
		Sizes: []model.Size{
			{Value: "9", Price: "180", InStock: true, Quantity: "2"},
		},
		Images: []model.Image{
			{URL: "https://example.com/" + name + "-1.png"},
		},
	}
	require.NoError(t, f.productRepo.Create(product))
	return product
}

func validProductBody(name string) map[string]interface{} {
	return map[string]interface{}{
		"name":       name,
		"pictureUrl": "https://example.com/" + name + ".png",
		"price":      180,
		"brand":      "Nike",
		"sizes": []map[string]interface{}{
			{"value": "9", "price": "180", "inStock": true, "quantity": "2"},
		},
		"images": []map[string]interface{}{
			{"url": "https://example.com/" + name + "-1.png"},
		},
	}
}

func doJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf *bytes.Buffer
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		buf = bytes.NewBuffer(jsonBody)
	} else {
		buf = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestProductController_GetProducts_Pagination(t *testing.T) {
	f := setupProductControllerTest(t)
	router := f.newCatalogRouter("")

	for i := 0; i < 35; i++ {
		f.seedSneaker(t, fmt.Sprintf("sneaker-%02d", i))
	}

	w := doJSON(router, http.MethodGet, "/api/"+f.store.ID+"/products?page=2", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var products []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	assert.Len(t, products, 5)

	// Without a page the whole catalog comes back.
	w = doJSON(router, http.MethodGet, "/api/"+f.store.ID+"/products", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	assert.Len(t, products, 35)
}

func TestProductController_GetProducts_Filters(t *testing.T) {
	f := setupProductControllerTest(t)
	router := f.newCatalogRouter("")

	f.seedSneaker(t, "Dunk Low Panda")

	jordan := &model.Product{
		Name:       "Air Jordan 1",
		PictureURL: "https://example.com/jordan.png",
		Price:      250,
		Brand:      "Jordan",
		IsFeatured: true,
		StoreID:    f.store.ID,
	}
	require.NoError(t, f.productRepo.Create(jordan))

	var products []map[string]interface{}

	w := doJSON(router, http.MethodGet, "/api/"+f.store.ID+"/products?searchQuery=Panda", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, "Dunk Low Panda", products[0]["name"])

	w = doJSON(router, http.MethodGet, "/api/"+f.store.ID+"/products?brand=Jordan", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, "Air Jordan 1", products[0]["name"])

	// Any non-empty isFeatured value filters to featured.
	w = doJSON(router, http.MethodGet, "/api/"+f.store.ID+"/products?isFeatured=yes", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, "Air Jordan 1", products[0]["name"])
}

func TestProductController_GetProductByID_NullWhenMissing(t *testing.T) {
	f := setupProductControllerTest(t)
	router := f.newCatalogRouter("")

	w := doJSON(router, http.MethodGet, "/api/"+f.store.ID+"/products/missing-id", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())
}

func TestProductController_GetFavoriteProducts(t *testing.T) {
	f := setupProductControllerTest(t)
	router := f.newCatalogRouter("")

	first := f.seedSneaker(t, "first")
	second := f.seedSneaker(t, "second")

	path := fmt.Sprintf("/api/%s/fav_products/%s/%s/missing-id", f.store.ID, first.ID, second.ID)
	w := doJSON(router, http.MethodGet, path, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var products []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	assert.Len(t, products, 2)
}

func TestProductController_GetProductsAmount(t *testing.T) {
	f := setupProductControllerTest(t)
	router := f.newCatalogRouter("")

	f.seedSneaker(t, "one")
	f.seedSneaker(t, "two")

	w := doJSON(router, http.MethodGet, "/api/"+f.store.ID+"/products_amount?getAmount=true", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2", w.Body.String())

	// The flag counts even without a value.
	w = doJSON(router, http.MethodGet, "/api/"+f.store.ID+"/products_amount?getAmount", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2", w.Body.String())

	// Without getAmount the endpoint answers null.
	w = doJSON(router, http.MethodGet, "/api/"+f.store.ID+"/products_amount", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())
}

func TestProductController_CreateProduct_Success(t *testing.T) {
	f := setupProductControllerTest(t)
	router := f.newCatalogRouter(f.owner.ID)

	w := doJSON(router, http.MethodPost, "/api/"+f.store.ID+"/products", validProductBody("Dunk Low"))

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Dunk Low", response["name"])
	assert.NotEmpty(t, response["id"])
	assert.Len(t, response["sizes"].([]interface{}), 1)
}

func TestProductController_CreateProduct_ValidationOrder(t *testing.T) {
	f := setupProductControllerTest(t)
	router := f.newCatalogRouter(f.owner.ID)

	tests := []struct {
		name        string
		mutate      func(body map[string]interface{})
		wantMessage string
	}{
		{
			name: "Missing sizes",
			mutate: func(body map[string]interface{}) {
				delete(body, "sizes")
			},
			wantMessage: "sizes is required",
		},
		{
			name: "Missing picture url",
			mutate: func(body map[string]interface{}) {
				delete(body, "pictureUrl")
			},
			wantMessage: "PictureUrl is required",
		},
		{
			name: "Missing sizes takes precedence",
			mutate: func(body map[string]interface{}) {
				delete(body, "sizes")
				delete(body, "pictureUrl")
			},
			wantMessage: "sizes is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := validProductBody("Dunk Low")
			tt.mutate(body)

			w := doJSON(router, http.MethodPost, "/api/"+f.store.ID+"/products", body)

			assert.Equal(t, http.StatusBadRequest, w.Code)

			var response map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.wantMessage, response["message"])
		})
	}
}

func TestProductController_CreateProduct_EmptySizesAllowed(t *testing.T) {
	f := setupProductControllerTest(t)
	router := f.newCatalogRouter(f.owner.ID)

	// An empty sizes array is not the same as a missing one.
	body := validProductBody("Sizeless")
	body["sizes"] = []map[string]interface{}{}

	w := doJSON(router, http.MethodPost, "/api/"+f.store.ID+"/products", body)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProductController_CreateProduct_Unauthenticated(t *testing.T) {
	f := setupProductControllerTest(t)
	router := f.newCatalogRouter("")

	w := doJSON(router, http.MethodPost, "/api/"+f.store.ID+"/products", validProductBody("Dunk Low"))

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Unauthenticated", response["message"])
}

func TestProductController_CreateProduct_WrongOwner(t *testing.T) {
	f := setupProductControllerTest(t)

	intruder := &model.User{
		Email:        "intruder@example.com",
		PasswordHash: "hashed-password",
		Name:         "Intruder",
	}
	require.NoError(t, f.testDB.Create(intruder).Error)

	router := f.newCatalogRouter(intruder.ID)

	w := doJSON(router, http.MethodPost, "/api/"+f.store.ID+"/products", validProductBody("Dunk Low"))

	assert.Equal(t, http.StatusForbidden, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Unauthorized", response["message"])
}

func TestProductController_UpdateProduct_ValidationOrder(t *testing.T) {
	f := setupProductControllerTest(t)
	router := f.newCatalogRouter(f.owner.ID)

	product := f.seedSneaker(t, "target")

	tests := []struct {
		name        string
		mutate      func(body map[string]interface{})
		wantMessage string
	}{
		{
			name: "Missing picture url",
			mutate: func(body map[string]interface{}) {
				delete(body, "pictureUrl")
			},
			wantMessage: "PictureUrl is required",
		},
		{
			name: "Missing name",
			mutate: func(body map[string]interface{}) {
				delete(body, "name")
			},
			wantMessage: "Name is required",
		},
		{
			name: "Missing images",
			mutate: func(body map[string]interface{}) {
				body["images"] = []map[string]interface{}{}
			},
			wantMessage: "Images is required",
		},
		{
			name: "Missing price",
			mutate: func(body map[string]interface{}) {
				delete(body, "price")
			},
			wantMessage: "Price is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := validProductBody("target")
			tt.mutate(body)

			w := doJSON(router, http.MethodPatch, "/api/"+f.store.ID+"/products/"+product.ID, body)

			assert.Equal(t, http.StatusBadRequest, w.Code)

			var response map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.wantMessage, response["message"])
		})
	}
}

func TestProductController_UpdateProduct_ReplacesChildren(t *testing.T) {
	f := setupProductControllerTest(t)
	router := f.newCatalogRouter(f.owner.ID)

	product := f.seedSneaker(t, "target")
	oldSizeID := product.Sizes[0].ID

	body := validProductBody("target renamed")
	body["sizes"] = []map[string]interface{}{
		{"value": "10", "price": "200", "inStock": false, "quantity": "0"},
		{"value": "11", "price": "205", "inStock": true, "quantity": "1"},
	}

	w := doJSON(router, http.MethodPatch, "/api/"+f.store.ID+"/products/"+product.ID, body)
	assert.Equal(t, http.StatusOK, w.Code)

	updated, err := f.productRepo.FindByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, "target renamed", updated.Name)
	require.Len(t, updated.Sizes, 2)
	for _, s := range updated.Sizes {
		assert.NotEqual(t, oldSizeID, s.ID)
	}
}

func TestProductController_DeleteProduct_Success(t *testing.T) {
	f := setupProductControllerTest(t)
	router := f.newCatalogRouter(f.owner.ID)

	product := f.seedSneaker(t, "doomed")

	w := doJSON(router, http.MethodDelete, "/api/"+f.store.ID+"/products/"+product.ID, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Product deleted successfully", response["message"])

	_, err := f.productRepo.FindByID(product.ID)
	assert.Error(t, err)
}

// The catalog wipe route carries no session at all and still succeeds.
func TestProductController_DeleteAllProducts_NoAuthRequired(t *testing.T) {
	f := setupProductControllerTest(t)
	router := f.newCatalogRouter("")

	f.seedSneaker(t, "one")
	f.seedSneaker(t, "two")

	w := doJSON(router, http.MethodDelete, "/api/"+f.store.ID+"/products", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "All products deleted successfully", response["message"])

	remaining, err := f.productRepo.FindWithFilter(repository.ProductFilter{StoreID: f.store.ID})
	require.NoError(t, err)
	assert.Len(t, remaining, 0)
}
