package memory

import (
	"sync"

	"cash-trader-be/pkg/register"

	"github.com/patrickmn/go-cache"
)

// RegisterRepository holds the live register of every station. Entries
// never expire: a ledger is created once per station and survives until
// the process exits, cleared only by explicit user action.
type RegisterRepository struct {
	mu      sync.Mutex
	cache   *cache.Cache
	catalog *register.Catalog
}

func NewRegisterRepository(catalog *register.Catalog) *RegisterRepository {
	return &RegisterRepository{
		cache:   cache.New(cache.NoExpiration, 0),
		catalog: catalog,
	}
}

// Get returns the station's register, creating it on first use.
func (r *RegisterRepository) Get(station string) *register.Register {
	if x, found := r.cache.Get(station); found {
		return x.(*register.Register)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if x, found := r.cache.Get(station); found {
		return x.(*register.Register)
	}
	reg := register.NewRegister(r.catalog)
	r.cache.Set(station, reg, cache.NoExpiration)
	return reg
}

// Stations lists every station that has a live register.
func (r *RegisterRepository) Stations() []string {
	items := r.cache.Items()
	out := make([]string, 0, len(items))
	for station := range items {
		out = append(out, station)
	}
	return out
}
