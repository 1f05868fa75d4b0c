package service

import (
	"context"
	"errors"
	"time"

	"github.com/demianRod/alexshop-tienda/internal/dto"
	"github.com/demianRod/alexshop-tienda/internal/model"
	"github.com/demianRod/alexshop-tienda/internal/repository"
	"github.com/demianRod/alexshop-tienda/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var ErrProductNotFound = errors.New("product not found")

// JobDispatcher is the slice of worker.Dispatcher the product service needs.
// Kept as an interface so unit tests can record enqueued jobs without Redis.
type JobDispatcher interface {
	EnqueueImageCleanup(ctx context.Context, payload worker.ImageCleanupPayload) error
	EnqueueSoldNotification(ctx context.Context, payload worker.SoldNotificationPayload) error
}

// ProductService defines the business logic contract for admin product
// management. Every mutation invalidates the catalog cache before returning —
// callers re-load, nothing is patched locally.
type ProductService interface {
	List(ctx context.Context, filter dto.ProductFilter) (*dto.ProductListResponse, error)
	Stats(ctx context.Context) (*dto.ProductStatsResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error)
	Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	ChangeStatus(ctx context.Context, id uuid.UUID, status model.Status) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type productService struct {
	repo        repository.ProductRepository
	catalog     CatalogService
	dispatcher  JobDispatcher
	sellerEmail string
}

func NewProductService(repo repository.ProductRepository, catalog CatalogService, dispatcher JobDispatcher, sellerEmail string) ProductService {
	return &productService{repo: repo, catalog: catalog, dispatcher: dispatcher, sellerEmail: sellerEmail}
}

func (s *productService) List(ctx context.Context, filter dto.ProductFilter) (*dto.ProductListResponse, error) {
	products, err := s.catalog.Load(ctx)
	if err != nil {
		return nil, err
	}
	visible := Filter(products, filter.Search, filter.Status)

	resp := &dto.ProductListResponse{
		Data:  make([]dto.ProductResponse, len(visible)),
		Total: len(visible),
	}
	for i := range visible {
		resp.Data[i] = toProductResponse(&visible[i])
	}
	return resp, nil
}

func (s *productService) Stats(ctx context.Context) (*dto.ProductStatsResponse, error) {
	products, err := s.catalog.Load(ctx)
	if err != nil {
		return nil, err
	}
	stats := ComputeStats(products)
	return &stats, nil
}

func (s *productService) GetByID(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	resp := toProductResponse(p)
	return &resp, nil
}

// Create persists a new product. Status is forced to available: creation can
// never originate a reserved or sold product, whatever the client sent.
func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	p := &model.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Category:    req.Category,
		Stock:       *req.Stock,
		Status:      model.StatusAvailable,
		ImageURL:    req.ImageURL,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	s.catalog.Invalidate(ctx)

	resp := toProductResponse(p)
	return &resp, nil
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	status, err := model.ParseStatus(req.Status)
	if err != nil {
		return nil, err
	}

	prevStatus := p.Status
	prevImage := p.ImageURL

	p.Name = req.Name
	p.Description = req.Description
	p.Price = *req.Price
	p.Category = req.Category
	p.Stock = *req.Stock
	p.Status = status
	p.ImageURL = req.ImageURL

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	s.catalog.Invalidate(ctx)

	// The old image is orphaned once it was cleared or replaced.
	if prevImage != nil && (req.ImageURL == nil || *req.ImageURL != *prevImage) {
		s.enqueueImageCleanup(ctx, *prevImage)
	}
	if prevStatus != model.StatusSold && status == model.StatusSold {
		s.notifySold(ctx, p)
	}

	resp := toProductResponse(p)
	return &resp, nil
}

// ChangeStatus is the dashboard's one-field transition: no other column is
// touched, stock included. All six transitions are allowed.
func (s *productService) ChangeStatus(ctx context.Context, id uuid.UUID, status model.Status) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	s.catalog.Invalidate(ctx)

	newlySold := p.Status != model.StatusSold && status == model.StatusSold
	p.Status = status
	if newlySold {
		s.notifySold(ctx, p)
	}

	resp := toProductResponse(p)
	return &resp, nil
}

// Delete removes the product permanently. The caller (handler) has already
// enforced the explicit confirmation step.
func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}
	s.catalog.Invalidate(ctx)

	if p.ImageURL != nil {
		s.enqueueImageCleanup(ctx, *p.ImageURL)
	}
	return nil
}

// ─── Async side effects ──────────────────────────────────────────────────────
// Enqueue failures are logged and swallowed: a lost cleanup or notification
// must never fail the mutation that already succeeded.

func (s *productService) enqueueImageCleanup(ctx context.Context, imageURL string) {
	err := s.dispatcher.EnqueueImageCleanup(ctx, worker.ImageCleanupPayload{ImageURL: imageURL})
	if err != nil {
		log.Warn().Err(err).Str("url", imageURL).Msg("failed to enqueue image cleanup")
	}
}

func (s *productService) notifySold(ctx context.Context, p *model.Product) {
	if s.sellerEmail == "" {
		return
	}
	err := s.dispatcher.EnqueueSoldNotification(ctx, worker.SoldNotificationPayload{
		To:          s.sellerEmail,
		ProductID:   p.ID.String(),
		ProductName: p.Name,
		Price:       p.Price.StringFixed(2),
	})
	if err != nil {
		log.Warn().Err(err).Str("product_id", p.ID.String()).Msg("failed to enqueue sold notification")
	}
}

func toProductResponse(p *model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Stock:       p.Stock,
		Status:      p.Status.String(),
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt.UTC().Format(time.RFC3339),
	}
}
