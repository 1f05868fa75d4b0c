package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/demianRod/alexshop-tienda/internal/dto"
	"github.com/demianRod/alexshop-tienda/internal/model"
	"github.com/demianRod/alexshop-tienda/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProductService records what the handler asked it to do.
type stubProductService struct {
	deleted      []uuid.UUID
	deleteErr    error
	getErr       error
	lastStatus   model.Status
	createdNames []string
}

func (s *stubProductService) List(context.Context, dto.ProductFilter) (*dto.ProductListResponse, error) {
	return &dto.ProductListResponse{Data: []dto.ProductResponse{}}, nil
}

func (s *stubProductService) Stats(context.Context) (*dto.ProductStatsResponse, error) {
	return &dto.ProductStatsResponse{}, nil
}

func (s *stubProductService) GetByID(_ context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return &dto.ProductResponse{ID: id.String()}, nil
}

func (s *stubProductService) Create(_ context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	s.createdNames = append(s.createdNames, req.Name)
	return &dto.ProductResponse{ID: uuid.NewString(), Name: req.Name, Status: "available"}, nil
}

func (s *stubProductService) Update(_ context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	return &dto.ProductResponse{ID: id.String(), Name: req.Name, Status: req.Status}, nil
}

func (s *stubProductService) ChangeStatus(_ context.Context, id uuid.UUID, status model.Status) (*dto.ProductResponse, error) {
	s.lastStatus = status
	return &dto.ProductResponse{ID: id.String(), Status: status.String()}, nil
}

func (s *stubProductService) Delete(_ context.Context, id uuid.UUID) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deleted = append(s.deleted, id)
	return nil
}

func productsRouter(svc *stubProductService) *gin.Engine {
	h := NewProductsHandler(svc)
	r := gin.New()
	r.POST("/v1/products", h.Create)
	r.GET("/v1/products", h.List)
	r.GET("/v1/products/:id", h.GetByID)
	r.PATCH("/v1/products/:id/status", h.ChangeStatus)
	r.DELETE("/v1/products/:id", h.Delete)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	svc := &stubProductService{}
	r := productsRouter(svc)
	id := uuid.NewString()

	w := do(t, r, http.MethodDelete, "/v1/products/"+id, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"detail":"delete requires confirm=true"}`, w.Body.String())
	assert.Empty(t, svc.deleted, "nothing may be deleted without confirmation")

	w = do(t, r, http.MethodDelete, "/v1/products/"+id+"?confirm=false", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, svc.deleted)

	w = do(t, r, http.MethodDelete, "/v1/products/"+id+"?confirm=true", "")
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Len(t, svc.deleted, 1)
	assert.Equal(t, id, svc.deleted[0].String())
}

func TestDeleteNotFound(t *testing.T) {
	r := productsRouter(&stubProductService{deleteErr: service.ErrProductNotFound})

	w := do(t, r, http.MethodDelete, "/v1/products/"+uuid.NewString()+"?confirm=true", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail":"product not found"}`, w.Body.String())
}

func TestListRejectsUnknownStatusTab(t *testing.T) {
	r := productsRouter(&stubProductService{})

	w := do(t, r, http.MethodGet, "/v1/products?status=archived", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"detail":"status must be available, reserved, sold or all"}`, w.Body.String())

	for _, tab := range []string{"all", "available", "reserved", "sold", ""} {
		w = do(t, r, http.MethodGet, "/v1/products?status="+tab, "")
		assert.Equal(t, http.StatusOK, w.Code, "tab %q", tab)
	}
}

func TestChangeStatusValidation(t *testing.T) {
	svc := &stubProductService{}
	r := productsRouter(svc)
	path := "/v1/products/" + uuid.NewString() + "/status"

	w := do(t, r, http.MethodPatch, path, `{"status":"archived"}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = do(t, r, http.MethodPatch, path, `{"status":"sold"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, model.StatusSold, svc.lastStatus)
}

func TestGetByIDErrorMapping(t *testing.T) {
	r := productsRouter(&stubProductService{getErr: service.ErrProductNotFound})

	w := do(t, r, http.MethodGet, "/v1/products/"+uuid.NewString(), "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail":"product not found"}`, w.Body.String())

	// a backend failure is a server error, never reported as a missing product
	r = productsRouter(&stubProductService{getErr: errors.New("db down")})
	w = do(t, r, http.MethodGet, "/v1/products/"+uuid.NewString(), "")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"detail":"failed to load product"}`, w.Body.String())
}

func TestCreateRejectsNonNumericPriceAndStock(t *testing.T) {
	svc := &stubProductService{}
	r := productsRouter(svc)

	w := do(t, r, http.MethodPost, "/v1/products",
		`{"name":"Lamp","description":"Warm","price":"abc","category":"Home","stock":2}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid JSON")

	w = do(t, r, http.MethodPost, "/v1/products",
		`{"name":"Lamp","description":"Warm","price":"45.00","category":"Home","stock":1.5}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	assert.Empty(t, svc.createdNames, "malformed input must never reach the backend")
}

func TestCreateRequiresPriceAndStockKeys(t *testing.T) {
	svc := &stubProductService{}
	r := productsRouter(svc)

	w := do(t, r, http.MethodPost, "/v1/products",
		`{"name":"Lamp","description":"Warm","category":"Home","stock":2}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Price")

	w = do(t, r, http.MethodPost, "/v1/products",
		`{"name":"Lamp","description":"Warm","price":"45.00","category":"Home"}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Empty(t, svc.createdNames)

	// an explicit zero stays legal for both fields
	w = do(t, r, http.MethodPost, "/v1/products",
		`{"name":"Freebie","description":"Giveaway","price":0,"category":"Other","stock":0}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, svc.createdNames, 1)
}

func TestCreateValidation(t *testing.T) {
	svc := &stubProductService{}
	r := productsRouter(svc)

	// missing required fields
	w := do(t, r, http.MethodPost, "/v1/products", `{"name":""}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "fields")
	assert.Empty(t, svc.createdNames)

	w = do(t, r, http.MethodPost, "/v1/products",
		`{"name":"Vintage Lamp","description":"Warm light","price":"45.00","category":"Home","stock":2}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, svc.createdNames, 1)
	assert.Equal(t, "Vintage Lamp", svc.createdNames[0])
}
