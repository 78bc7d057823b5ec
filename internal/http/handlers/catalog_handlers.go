package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Nakulpanchal-gamer/KubereshwarBackend/domain"
)

// CatalogHandlers serves the public product and category listings.
type CatalogHandlers struct {
	productRepo  domain.ProductRepository
	categoryRepo domain.CategoryRepository
}

func NewCatalogHandlers(productRepo domain.ProductRepository, categoryRepo domain.CategoryRepository) *CatalogHandlers {
	return &CatalogHandlers{productRepo: productRepo, categoryRepo: categoryRepo}
}

type productResponse struct {
	ID         string    `json:"_id"`
	Name       string    `json:"name"`
	CategoryID string    `json:"categoryId,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type categoryResponse struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ListProducts handles GET /api/products
func (h *CatalogHandlers) ListProducts(c *gin.Context) {
	products, err := h.productRepo.FindAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list products"})
		return
	}

	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, productResponse{
			ID:         p.ID,
			Name:       p.Name,
			CategoryID: p.CategoryID,
			CreatedAt:  p.CreatedAt,
			UpdatedAt:  p.UpdatedAt,
		})
	}
	c.JSON(http.StatusOK, out)
}

// ListCategories handles GET /api/categories
func (h *CatalogHandlers) ListCategories(c *gin.Context) {
	categories, err := h.categoryRepo.FindAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list categories"})
		return
	}

	out := make([]categoryResponse, 0, len(categories))
	for _, cat := range categories {
		out = append(out, categoryResponse{
			ID:        cat.ID,
			Name:      cat.Name,
			CreatedAt: cat.CreatedAt,
			UpdatedAt: cat.UpdatedAt,
		})
	}
	c.JSON(http.StatusOK, out)
}
