package containers

import (
	"strings"
	"sync"
)

// ListFilters narrow the container listing. Search matches container number
// or client name case-insensitively; the remaining filters are exact.
type ListFilters struct {
	Search          string
	LogisticsStatus string
	DeliverType     string
	Terminal        string
}

// Repository holds the read-mostly container collection, keyed by container
// number and kept in insertion order. Records are provisioned externally
// (seeding or a future ingestion feed); this core never mutates them.
type Repository struct {
	mu         sync.RWMutex
	containers []*Container
}

func NewRepository() *Repository {
	return &Repository{}
}

func (r *Repository) Add(c *Container) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.containers = append(r.containers, c)
}

func (r *Repository) All() []*Container {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Container, len(r.containers))
	copy(out, r.containers)
	return out
}

func (r *Repository) FindByNumber(ctnNumber string) (*Container, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.containers {
		if c.CtnNumber == ctnNumber {
			return c, true
		}
	}
	return nil, false
}

func (r *Repository) List(filters ListFilters) []*Container {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []*Container{}
	needle := strings.ToLower(strings.TrimSpace(filters.Search))
	for _, c := range r.containers {
		if needle != "" &&
			!strings.Contains(strings.ToLower(c.CtnNumber), needle) &&
			!strings.Contains(strings.ToLower(c.FullClientName), needle) {
			continue
		}
		if filters.LogisticsStatus != "" && c.LogisticsStatus != filters.LogisticsStatus {
			continue
		}
		if filters.DeliverType != "" && c.DeliverType != filters.DeliverType {
			continue
		}
		if filters.Terminal != "" && c.Terminal != filters.Terminal {
			continue
		}
		out = append(out, c)
	}
	return out
}
