package handlers

import (
	"net/http"

	"github.com/avc/plantstore/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CatalogHandler обрабатывает запросы каталога и отзывов
type CatalogHandler struct {
	catalog domain.CatalogService
	reviews domain.ReviewService
	logger  *zap.Logger
}

func NewCatalogHandler(catalog domain.CatalogService, reviews domain.ReviewService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		reviews: reviews,
		logger:  logger,
	}
}

func (h *CatalogHandler) list(w http.ResponseWriter, r *http.Request, onlyActive bool) {
	pg, limit, err := pageParams(r)
	if err != nil {
		writeError(w, r, h.logger, err, "list products")
		return
	}
	q := r.URL.Query()

	products, total, err := h.catalog.ListProducts(r.Context(), domain.ProductFilter{
		Page:       pg,
		Limit:      limit,
		Category:   q.Get("category"),
		Search:     q.Get("search"),
		OnlyActive: onlyActive,
	})
	if err != nil {
		writeError(w, r, h.logger, err, "list products")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, page[*domain.Product]{Items: products, Total: total})
}

// ListProducts витрина: только активные товары
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, true)
}

// ListAllProducts список для администратора, включая скрытые товары
func (h *CatalogHandler) ListAllProducts(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, false)
}

type productResponse struct {
	*domain.Product
	Reviews []*domain.Review `json:"reviews"`
}

// GetProduct возвращает товар вместе с отзывами. Скрытый товар на витрине не показывается.
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, h.logger, "id")
	if !ok {
		return
	}

	product, err := h.catalog.GetProduct(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err, "get product")
		return
	}
	if !product.IsActive {
		writeError(w, r, h.logger, domain.ErrProductNotFound, "get product")
		return
	}

	reviews, err := h.reviews.ListProductReviews(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err, "get product")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, productResponse{Product: product, Reviews: reviews})
}

func (h *CatalogHandler) ListProductReviews(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, h.logger, "id")
	if !ok {
		return
	}

	reviews, err := h.reviews.ListProductReviews(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err, "list reviews")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, reviews)
}

type reviewRequest struct {
	Rating int    `json:"rating"`
	Text   string `json:"text"`
}

func (h *CatalogHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r, h.logger)
	if !ok {
		return
	}
	productID, ok := pathID(w, r, h.logger, "id")
	if !ok {
		return
	}

	var req reviewRequest
	if !decodeJSON(w, r, h.logger, &req) {
		return
	}

	review, err := h.reviews.CreateReview(r.Context(), userID, productID, req.Rating, req.Text)
	if err != nil {
		writeError(w, r, h.logger, err, "create review")
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, review)
}

type productRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	ImageURL    string          `json:"image_url"`
	IsActive    *bool           `json:"is_active"`
	// Announce рассылает уведомление о новинке при создании
	Announce bool `json:"announce"`
}

func (req productRequest) product() *domain.Product {
	p := &domain.Product{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Stock:       req.Stock,
		ImageURL:    req.ImageURL,
		IsActive:    true,
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
	return p
}

func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if !decodeJSON(w, r, h.logger, &req) {
		return
	}

	product, err := h.catalog.CreateProduct(r.Context(), req.product(), req.Announce)
	if err != nil {
		writeError(w, r, h.logger, err, "create product")
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, product)
}

func (h *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, h.logger, "id")
	if !ok {
		return
	}

	var req productRequest
	if !decodeJSON(w, r, h.logger, &req) {
		return
	}
	p := req.product()
	p.ID = id

	product, err := h.catalog.UpdateProduct(r.Context(), p)
	if err != nil {
		writeError(w, r, h.logger, err, "update product")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, product)
}

func (h *CatalogHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, h.logger, "id")
	if !ok {
		return
	}

	if err := h.catalog.DeleteProduct(r.Context(), id); err != nil {
		writeError(w, r, h.logger, err, "delete product")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListReviews список отзывов для модерации
func (h *CatalogHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	pg, limit, err := pageParams(r)
	if err != nil {
		writeError(w, r, h.logger, err, "list reviews")
		return
	}

	reviews, total, err := h.reviews.ListReviews(r.Context(), pg, limit)
	if err != nil {
		writeError(w, r, h.logger, err, "list reviews")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, page[*domain.Review]{Items: reviews, Total: total})
}

func (h *CatalogHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, h.logger, "id")
	if !ok {
		return
	}

	if err := h.reviews.DeleteReview(r.Context(), id); err != nil {
		writeError(w, r, h.logger, err, "delete review")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
