package handlers

import (
	"net/http"

	"github.com/Lixing-Zhang/storefront-api/internal/models"
	"github.com/Lixing-Zhang/storefront-api/internal/service"
	"github.com/go-chi/chi/v5"
)

type productListResponse struct {
	Success    bool                  `json:"success"`
	Products   []models.Product      `json:"products"`
	Pagination models.PaginationInfo `json:"pagination"`
}

type productResponse struct {
	Success bool          `json:"success"`
	Product productDetail `json:"product"`
}

// productDetail always carries the reviews array, even when it is empty.
type productDetail struct {
	*models.Product
	Reviews []models.Review `json:"reviews"`
}

type categoryListResponse struct {
	Success    bool              `json:"success"`
	Categories []models.Category `json:"categories"`
}

// ProductHandler handles product and category HTTP requests
type ProductHandler struct {
	service *service.ProductService
	Responder
}

// NewProductHandler creates a new product handler
func NewProductHandler(service *service.ProductService, rs Responder) *ProductHandler {
	return &ProductHandler{
		service:   service,
		Responder: rs,
	}
}

// ListProducts handles GET /api/products
// Query: category, search, brand, minPrice, maxPrice, sortBy, sortOrder, page, limit
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := service.ListProductsParams{
		Category:  q.Get("category"),
		Search:    q.Get("search"),
		Brand:     q.Get("brand"),
		MinPrice:  q.Get("minPrice"),
		MaxPrice:  q.Get("maxPrice"),
		SortBy:    q.Get("sortBy"),
		SortOrder: q.Get("sortOrder"),
		Page:      q.Get("page"),
		Limit:     q.Get("limit"),
	}

	page, err := h.service.ListProducts(r.Context(), params)
	if err != nil {
		h.Fail(w, r, err, "Failed to fetch products")
		return
	}

	h.JSON(w, http.StatusOK, productListResponse{
		Success:    true,
		Products:   page.Products,
		Pagination: page.Pagination,
	})
}

// GetProduct handles GET /api/products/{id}
// - 200: product with category and recent reviews
// - 404: unknown or inactive product
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")

	product, err := h.service.GetProduct(r.Context(), productID)
	if err != nil {
		h.Fail(w, r, err, "Failed to fetch product")
		return
	}

	h.JSON(w, http.StatusOK, productResponse{
		Success: true,
		Product: productDetail{Product: product, Reviews: product.Reviews},
	})
}

// ListCategories handles GET /api/categories
func (h *ProductHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		h.Fail(w, r, err, "Failed to fetch categories")
		return
	}

	h.JSON(w, http.StatusOK, categoryListResponse{Success: true, Categories: categories})
}
