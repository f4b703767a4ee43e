package cache

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/freightworks/freight-backend/internal/metrics"
	"github.com/freightworks/freight-backend/internal/repository"
)

type VendorRepository interface {
	GetActive(ctx context.Context, companyID int64) ([]*repository.Vendor, error)
}

// VendorCache is a read-through cache of a company's active vendor list.
// The quote fan-out hits it on every calculation; vendor writes invalidate.
type VendorCache struct {
	mu     sync.RWMutex
	cache  map[int64][]*repository.Vendor
	repo   VendorRepository
	logger *zap.Logger
}

func NewVendorCache(repo VendorRepository, logger *zap.Logger) *VendorCache {
	return &VendorCache{
		cache:  make(map[int64][]*repository.Vendor),
		repo:   repo,
		logger: logger,
	}
}

// ActiveVendors returns the cached list, loading it from the repository on
// a miss. Returned slices are copies; callers may reorder them freely.
func (c *VendorCache) ActiveVendors(ctx context.Context, companyID int64) ([]*repository.Vendor, error) {
	c.mu.RLock()
	vendors, found := c.cache[companyID]
	c.mu.RUnlock()

	if !found {
		loaded, err := c.repo.GetActive(ctx, companyID)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.cache[companyID] = loaded
		c.mu.Unlock()

		c.logger.Debug("vendor cache loaded",
			zap.Int64("company_id", companyID),
			zap.Int("vendors", len(loaded)))
		metrics.VendorCacheItems.Add(float64(len(loaded)))
		vendors = loaded
	}

	out := make([]*repository.Vendor, len(vendors))
	for i, v := range vendors {
		vendorCopy := *v
		out[i] = &vendorCopy
	}
	return out, nil
}

// Invalidate drops a company's cached list after a vendor write.
func (c *VendorCache) Invalidate(companyID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if vendors, found := c.cache[companyID]; found {
		metrics.VendorCacheItems.Sub(float64(len(vendors)))
		delete(c.cache, companyID)
	}
}
