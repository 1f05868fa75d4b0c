package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/demianRod/alexshop-tienda/internal/dto"
	"github.com/demianRod/alexshop-tienda/internal/model"
	"github.com/demianRod/alexshop-tienda/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const catalogCacheKey = "catalog:products"

// CatalogService loads the full product list, newest first. Reads go through a
// Redis cache; every mutation elsewhere invalidates it, so a load after any
// write always re-derives the list from Postgres. Filtering never re-fetches —
// it is a pure computation over the most recently loaded list.
type CatalogService interface {
	Load(ctx context.Context) ([]model.Product, error)
	Invalidate(ctx context.Context)
}

type catalogService struct {
	repo repository.ProductRepository
	rdb  *redis.Client
	ttl  time.Duration
}

func NewCatalogService(repo repository.ProductRepository, rdb *redis.Client, ttl time.Duration) CatalogService {
	return &catalogService{repo: repo, rdb: rdb, ttl: ttl}
}

func (s *catalogService) Load(ctx context.Context) ([]model.Product, error) {
	// 1. Try Redis cache
	if cached, err := s.rdb.Get(ctx, catalogCacheKey).Bytes(); err == nil {
		var products []model.Product
		if jsonErr := json.Unmarshal(cached, &products); jsonErr == nil {
			return products, nil
		}
	}

	// 2. Cache miss — query DB. A failed load touches nothing: the previous
	// cached list (if still live) stays as-is and the error goes to the caller.
	products, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	// 3. Populate cache — best effort, ignore errors
	if b, jsonErr := json.Marshal(products); jsonErr == nil {
		_ = s.rdb.Set(context.Background(), catalogCacheKey, b, s.ttl).Err()
	}

	return products, nil
}

// Invalidate drops the cached list so the next Load hits Postgres.
// Called after every successful mutation — the list is replaced wholesale,
// never patched in place.
func (s *catalogService) Invalidate(ctx context.Context) {
	if err := s.rdb.Del(ctx, catalogCacheKey).Err(); err != nil {
		log.Warn().Err(err).Msg("catalog: cache invalidation failed")
	}
}

// ─── Pure filter & stats ─────────────────────────────────────────────────────

// Filter derives the visible subset of list for a search term and a status
// tab. Pure function of its three inputs: case-insensitive substring match on
// name, description and category (empty or whitespace-only term matches
// everything), intersected with the status tab ("all" or "" is the identity).
func Filter(list []model.Product, search, status string) []model.Product {
	term := strings.ToLower(strings.TrimSpace(search))

	out := make([]model.Product, 0, len(list))
	for _, p := range list {
		if term != "" && !matchesSearch(p, term) {
			continue
		}
		if status != "" && status != "all" && p.Status.String() != status {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesSearch(p model.Product, term string) bool {
	return strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Description), term) ||
		strings.Contains(strings.ToLower(p.Category), term)
}

// ComputeStats aggregates over the FULL list, regardless of any active filter:
// per-status counts, total count, and total inventory value Σ(price × stock)
// over every product whatever its status.
func ComputeStats(list []model.Product) dto.ProductStatsResponse {
	stats := dto.ProductStatsResponse{
		Total:      len(list),
		TotalValue: decimal.Zero,
	}
	for _, p := range list {
		switch p.Status {
		case model.StatusAvailable:
			stats.Available++
		case model.StatusReserved:
			stats.Reserved++
		case model.StatusSold:
			stats.Sold++
		}
		stats.TotalValue = stats.TotalValue.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Stock))))
	}
	return stats
}
