package handler

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/demianRod/alexshop-tienda/internal/apierror"
	"github.com/demianRod/alexshop-tienda/internal/dto"
	"github.com/demianRod/alexshop-tienda/internal/model"
	"github.com/demianRod/alexshop-tienda/internal/service"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the public storefront endpoints.
// No authentication required — no side effects whatsoever.
type CatalogHandler struct {
	catalog        service.CatalogService
	sellerWhatsApp string
}

func NewCatalogHandler(catalog service.CatalogService, sellerWhatsApp string) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, sellerWhatsApp: sellerWhatsApp}
}

// List godoc
// @Summary Public catalog with optional search (no authentication)
// @Tags catalog
// @Produce json
// @Param search query string false "Search term (matches name, description, category)"
// @Success 200 {object} dto.CatalogResponse
// @Failure 500 {object} apierror.APIError
// @Router /v1/catalog [get]
func (h *CatalogHandler) List(c *gin.Context) {
	products, err := h.catalog.Load(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to load products"))
		return
	}
	visible := service.Filter(products, c.Query("search"), "all")

	resp := dto.CatalogResponse{
		Data:  make([]dto.CatalogItemResponse, len(visible)),
		Total: len(visible),
	}
	for i := range visible {
		resp.Data[i] = h.toCatalogItem(&visible[i])
	}
	c.JSON(http.StatusOK, resp)
}

// Categories returns the label set offered by the admin form.
func (h *CatalogHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": model.Categories})
}

// toCatalogItem decorates a product for the public view. Only available
// products get the WhatsApp contact link; reserved and sold ones still appear
// but carry a status notice instead.
func (h *CatalogHandler) toCatalogItem(p *model.Product) dto.CatalogItemResponse {
	item := dto.CatalogItemResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Stock:       p.Stock,
		Status:      p.Status.String(),
		ImageURL:    p.ImageURL,
	}

	switch p.Status {
	case model.StatusAvailable:
		item.ContactURL = h.contactURL(p)
	case model.StatusReserved:
		item.StatusNotice = "This product is currently reserved."
	case model.StatusSold:
		item.StatusNotice = "This product has been sold."
	}
	return item
}

func (h *CatalogHandler) contactURL(p *model.Product) string {
	msg := fmt.Sprintf(
		"Hi! I saw %q on AlexShop for $%s. Is it still available? I'm interested.",
		p.Name, p.Price.StringFixed(2),
	)
	return "https://wa.me/" + h.sellerWhatsApp + "?text=" + url.QueryEscape(msg)
}
