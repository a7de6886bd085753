package booking

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"labdesk/models"
	"labdesk/utils"
)

// Paginator incrementally loads the branch-scoped test catalog. The cached
// sequence is append-only within one branch context and holds no duplicate
// ids; switching branch discards it entirely and refetches from page 1.
//
// hasMore is a heuristic: true iff the last fetch returned a full page. A
// branch whose catalog size is an exact multiple of the page size will issue
// one extra empty fetch at the boundary before hasMore flips false.
type Paginator struct {
	api      CatalogAPI
	pageSize int
	logger   *zap.Logger

	mu          sync.Mutex
	items       []models.Test
	seen        map[int]struct{}
	branchID    *int
	page        int
	hasMore     bool
	loadingMore bool

	// generation tags each Reset so a slow page-1 response issued for a
	// previous branch cannot overwrite a newer selection.
	generation int
}

func NewPaginator(api CatalogAPI, pageSize int) *Paginator {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &Paginator{
		api:      api,
		pageSize: pageSize,
		seen:     make(map[int]struct{}),
		hasMore:  true,
		logger:   utils.GetLogger(),
	}
}

// Reset discards the cached catalog and loads page 1 for the given branch
// context. A response belonging to a superseded reset is dropped.
func (p *Paginator) Reset(ctx context.Context, branchID *int) error {
	p.mu.Lock()
	p.generation++
	gen := p.generation
	p.branchID = branchID
	p.items = nil
	p.seen = make(map[int]struct{})
	p.page = 1
	p.hasMore = true
	p.loadingMore = false
	p.mu.Unlock()

	tests, err := p.api.ListTests(ctx, 1, p.pageSize, branchID)

	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.generation {
		p.logger.Debug("dropping stale catalog page", zap.Int("generation", gen))
		return nil
	}
	if err != nil {
		// Catalog stays empty with the cursor at page 1; recovery is another
		// Reset, not LoadMore, which would fetch page 2 over the missing page.
		return err
	}
	for _, t := range tests {
		if _, dup := p.seen[t.ID]; dup {
			continue
		}
		p.seen[t.ID] = struct{}{}
		p.items = append(p.items, t)
	}
	p.hasMore = len(tests) == p.pageSize
	return nil
}

// LoadMore fetches the next page and appends it, deduplicated against the
// cached ids in case the backend returns overlapping items across pages.
// While a load is in flight further calls are ignored. A failed load leaves
// the cursor untouched and clears the in-flight flag, so a later call
// retries the same page.
func (p *Paginator) LoadMore(ctx context.Context) error {
	p.mu.Lock()
	if p.loadingMore || !p.hasMore {
		p.mu.Unlock()
		return nil
	}
	p.loadingMore = true
	gen := p.generation
	nextPage := p.page + 1
	branchID := p.branchID
	p.mu.Unlock()

	tests, err := p.api.ListTests(ctx, nextPage, p.pageSize, branchID)

	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.generation {
		// The branch context changed while this page was in flight.
		return nil
	}
	p.loadingMore = false
	if err != nil {
		p.logger.Warn("failed to load more tests", zap.Int("page", nextPage), zap.Error(err))
		return err
	}
	for _, t := range tests {
		if _, dup := p.seen[t.ID]; dup {
			continue
		}
		p.seen[t.ID] = struct{}{}
		p.items = append(p.items, t)
	}
	p.page = nextPage
	p.hasMore = len(tests) == p.pageSize
	return nil
}

// Items returns a copy of the cached catalog sequence.
func (p *Paginator) Items() []models.Test {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]models.Test, len(p.items))
	copy(out, p.items)
	return out
}

// PriceOf looks a cached test's list price up by id.
func (p *Paginator) PriceOf(id int) (float64, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.seen[id]; !ok {
		return 0, false
	}
	for _, t := range p.items {
		if t.ID == id {
			return t.Price.Float64(), true
		}
	}
	return 0, false
}

// Page returns the current cursor page.
func (p *Paginator) Page() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.page
}

// HasMore reports whether another page is (heuristically) expected.
func (p *Paginator) HasMore() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hasMore
}

// LoadingMore reports whether an append fetch is in flight.
func (p *Paginator) LoadingMore() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loadingMore
}
