package handler

import (
	"errors"
	"net/http"

	"github.com/demianRod/alexshop-tienda/internal/apierror"
	"github.com/demianRod/alexshop-tienda/internal/dto"
	"github.com/demianRod/alexshop-tienda/internal/model"
	"github.com/demianRod/alexshop-tienda/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProductsHandler struct{ svc service.ProductService }

func NewProductsHandler(svc service.ProductService) *ProductsHandler {
	return &ProductsHandler{svc: svc}
}

func (h *ProductsHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to create product"))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ProductsHandler) List(c *gin.Context) {
	var filter dto.ProductFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	if err := validate.Struct(filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("status must be available, reserved, sold or all"))
		return
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to load products"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Stats aggregates over the full catalog, not the filtered view.
func (h *ProductsHandler) Stats(c *gin.Context) {
	resp, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to load products"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductsHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	resp, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("product not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("failed to load product"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductsHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	var req dto.UpdateProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("product not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("failed to update product"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ChangeStatus is the dashboard's one-field transition. All six directed
// transitions are accepted; values outside the closed set never get here.
func (h *ProductsHandler) ChangeStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	var req dto.ChangeStatusRequest
	if !bindAndValidate(c, &req) {
		return
	}
	status, err := model.ParseStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.ChangeStatus(c.Request.Context(), id, status)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("product not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("failed to update status"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete permanently removes a product. The destructive step is gated behind
// an explicit confirm=true query parameter; without it nothing happens.
func (h *ProductsHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	if c.Query("confirm") != "true" {
		c.JSON(http.StatusBadRequest, apierror.New("delete requires confirm=true"))
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("product not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("failed to delete product"))
		return
	}
	c.Status(http.StatusNoContent)
}
