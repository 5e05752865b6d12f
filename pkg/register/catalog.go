package register

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// Product is one entry of the catalog snapshot.
type Product struct {
	ID        int64   `json:"id"`
	NameEn    string  `json:"name_en"`
	NameLocal string  `json:"name_local"`
	UnitPrice float64 `json:"unit_price"`
}

// CatalogSource is the external catalog store, seen only through its
// read side. The product repository implements it.
type CatalogSource interface {
	ListAll(ctx context.Context) ([]Product, error)
}

// Catalog is a read-only, refreshable in-memory snapshot of the product
// list, shared by every register. Refresh swaps the whole snapshot at
// once; there is no partial update.
type Catalog struct {
	mu       sync.RWMutex
	products []Product
}

func NewCatalog() *Catalog {
	return &Catalog{}
}

// Replace installs a new snapshot, sorted by English name ascending.
func (c *Catalog) Replace(products []Product) {
	next := make([]Product, len(products))
	copy(next, products)
	sort.SliceStable(next, func(i, j int) bool {
		return next[i].NameEn < next[j].NameEn
	})

	c.mu.Lock()
	c.products = next
	c.mu.Unlock()
}

// Refresh reloads the snapshot from the catalog store.
func (c *Catalog) Refresh(ctx context.Context, src CatalogSource) error {
	products, err := src.ListAll(ctx)
	if err != nil {
		return err
	}
	c.Replace(products)
	return nil
}

// All returns the full snapshot in sorted order.
func (c *Catalog) All() []Product {
	return c.Search("")
}

// Search returns every product whose English name contains query,
// case-insensitively. An empty query returns the full sorted set.
func (c *Catalog) Search(query string) []Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if query == "" {
		out := make([]Product, len(c.products))
		copy(out, c.products)
		return out
	}

	needle := strings.ToLower(query)
	out := make([]Product, 0)
	for _, p := range c.products {
		if strings.Contains(strings.ToLower(p.NameEn), needle) {
			out = append(out, p)
		}
	}
	return out
}

// FindExact looks a product up by exact, case-insensitive English name.
func (c *Catalog) FindExact(nameEn string) (Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(nameEn))
	for _, p := range c.products {
		if strings.ToLower(p.NameEn) == needle {
			return p, true
		}
	}
	return Product{}, false
}

// Len reports the snapshot size.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.products)
}
