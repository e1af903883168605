// internal/client/listing/pipeline.go

// Package listing accumulates catalog pages into the client-side product
// set the filter engine runs over. Pages arrive in order, merge with
// de-duplication by id, and a refresh supersedes any in-flight fetch.
package listing

import (
	"context"
	"sync"

	"github.com/kccr/storefront/internal/client/catalog"
	"github.com/kccr/storefront/internal/client/remote"
)

// ProductSource is the slice of the remote API the pipeline needs.
type ProductSource interface {
	ListPage(ctx context.Context, page, pageSize int) (remote.Page, error)
}

type State int

const (
	StateIdle State = iota
	StateLoadingFirst
	StateLoadingMore
	StateReady
	StateFailed
)

const defaultPageSize = 50

// Pipeline is safe for concurrent use. Fetches run outside the mutex; a
// generation counter discards results that a newer refresh superseded.
type Pipeline struct {
	source   ProductSource
	pageSize int

	mu         sync.Mutex
	state      State
	products   []catalog.Product
	ids        map[string]struct{}
	total      int
	page       int
	generation int
	lastErr    error
}

func New(source ProductSource, pageSize int) *Pipeline {
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	return &Pipeline{
		source:   source,
		pageSize: pageSize,
		state:    StateIdle,
		ids:      make(map[string]struct{}),
	}
}

// LoadFirst fetches page one and replaces the accumulated state on success.
// Previously loaded products stay visible while the fetch is in flight, so
// a refresh never flashes an empty list. Starting a new first page bumps
// the generation, which invalidates any in-flight LoadMore.
func (p *Pipeline) LoadFirst(ctx context.Context) error {
	p.mu.Lock()
	p.generation++
	gen := p.generation
	p.state = StateLoadingFirst
	pageSize := p.pageSize
	p.mu.Unlock()

	res, err := p.source.ListPage(ctx, 1, pageSize)

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.generation != gen {
		// A newer refresh superseded this fetch; drop the result.
		return nil
	}

	if err != nil {
		p.lastErr = err
		if len(p.products) == 0 {
			p.state = StateFailed
		} else {
			p.state = StateReady
		}
		return err
	}

	p.products = nil
	p.ids = make(map[string]struct{})
	p.appendNew(res.Items)
	p.total = res.Total
	p.page = res.PageNum
	p.state = StateReady
	p.lastErr = nil
	return nil
}

// Refresh is a manual reload: same semantics as LoadFirst.
func (p *Pipeline) Refresh(ctx context.Context) error {
	return p.LoadFirst(ctx)
}

// LoadMore fetches the next page and merges it. It is a no-op while a fetch
// is in flight, before the first page has loaded, or once every page is
// accumulated.
func (p *Pipeline) LoadMore(ctx context.Context) error {
	p.mu.Lock()
	if p.state != StateReady || !p.hasMoreLocked() {
		p.mu.Unlock()
		return nil
	}
	gen := p.generation
	next := p.page + 1
	pageSize := p.pageSize
	p.state = StateLoadingMore
	p.mu.Unlock()

	res, err := p.source.ListPage(ctx, next, pageSize)

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.generation != gen {
		// A refresh happened while this page was in flight; discard it.
		return nil
	}

	p.state = StateReady
	if err != nil {
		p.lastErr = err
		return err
	}

	p.appendNew(res.Items)
	p.total = res.Total
	p.page = res.PageNum
	p.lastErr = nil
	return nil
}

// appendNew merges items, dropping any id already accumulated so existing
// entries keep their position.
func (p *Pipeline) appendNew(items []catalog.Product) {
	for _, item := range items {
		if _, ok := p.ids[item.ID]; ok {
			continue
		}
		p.ids[item.ID] = struct{}{}
		p.products = append(p.products, item)
	}
}

// Products returns a copy of the accumulated product set in load order.
func (p *Pipeline) Products() []catalog.Product {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]catalog.Product, len(p.products))
	copy(out, p.products)
	return out
}

// HasMore reports whether the server holds pages beyond the accumulated
// set.
func (p *Pipeline) HasMore() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hasMoreLocked()
}

func (p *Pipeline) hasMoreLocked() bool {
	return len(p.products) < p.total
}

func (p *Pipeline) Total() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.total
}

func (p *Pipeline) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Err returns the error from the most recent failed fetch, cleared by the
// next success.
func (p *Pipeline) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastErr
}
