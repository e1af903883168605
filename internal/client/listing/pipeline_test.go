// internal/client/listing/pipeline_test.go
package listing

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kccr/storefront/internal/client/catalog"
	"github.com/kccr/storefront/internal/client/remote"
)

// fakeSource serves pages out of a fixed product list and records which
// pages were requested.
type fakeSource struct {
	mu       sync.Mutex
	products []catalog.Product
	err      error
	pages    []int
	gate     chan struct{} // when set, ListPage blocks until closed
}

func (f *fakeSource) ListPage(ctx context.Context, page, pageSize int) (remote.Page, error) {
	f.mu.Lock()
	f.pages = append(f.pages, page)
	err := f.err
	products := f.products
	gate := f.gate
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}

	if err != nil {
		return remote.Page{}, err
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(products) {
		start = len(products)
	}
	if end > len(products) {
		end = len(products)
	}

	items := make([]catalog.Product, end-start)
	copy(items, products[start:end])

	return remote.Page{
		Items:    items,
		Total:    len(products),
		PageNum:  page,
		PageSize: pageSize,
	}, nil
}

func (f *fakeSource) requestedPages() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]int, len(f.pages))
	copy(out, f.pages)
	return out
}

func makeProducts(n int) []catalog.Product {
	products := make([]catalog.Product, 0, n)
	for i := 0; i < n; i++ {
		products = append(products, catalog.Product{
			ID:    fmt.Sprintf("p%d", i),
			Brand: fmt.Sprintf("brand%d", i%7),
		})
	}
	return products
}

func TestPaginationScenario(t *testing.T) {
	// total=120, pageSize=50: first page 50, then 100, then 120, then
	// no-op.
	source := &fakeSource{products: makeProducts(120)}
	p := New(source, 50)
	ctx := context.Background()

	require.NoError(t, p.LoadFirst(ctx))
	assert.Len(t, p.Products(), 50)
	assert.True(t, p.HasMore())
	assert.Equal(t, StateReady, p.State())

	require.NoError(t, p.LoadMore(ctx))
	assert.Len(t, p.Products(), 100)
	assert.True(t, p.HasMore())

	require.NoError(t, p.LoadMore(ctx))
	assert.Len(t, p.Products(), 120)
	assert.False(t, p.HasMore())

	// Fourth call must not hit the source.
	require.NoError(t, p.LoadMore(ctx))
	assert.Len(t, p.Products(), 120)
	assert.Equal(t, []int{1, 2, 3}, source.requestedPages())
}

func TestLoadMoreBeforeFirstPageIsNoOp(t *testing.T) {
	source := &fakeSource{products: makeProducts(10)}
	p := New(source, 5)

	require.NoError(t, p.LoadMore(context.Background()))
	assert.Empty(t, source.requestedPages())
	assert.Equal(t, StateIdle, p.State())
}

func TestMergeDropsDuplicateIDs(t *testing.T) {
	source := &fakeSource{products: makeProducts(10)}
	p := New(source, 5)
	ctx := context.Background()

	require.NoError(t, p.LoadFirst(ctx))
	before := p.Products()

	// Grow the catalog at the front so page 2 re-serves some already
	// accumulated ids.
	source.mu.Lock()
	source.products = append(
		[]catalog.Product{{ID: "p3"}, {ID: "p4"}},
		source.products...,
	)
	source.mu.Unlock()

	require.NoError(t, p.LoadMore(ctx))
	after := p.Products()

	// Previously loaded entries keep their position.
	assert.Equal(t, before, after[:len(before)])

	// No id appears twice.
	seen := map[string]int{}
	for _, item := range after {
		seen[item.ID]++
	}
	for id, count := range seen {
		assert.Equal(t, 1, count, "id %s duplicated", id)
	}
}

func TestFirstPageFailureWithNothingLoaded(t *testing.T) {
	source := &fakeSource{err: errors.New("boom")}
	p := New(source, 50)

	err := p.LoadFirst(context.Background())
	require.Error(t, err)
	assert.Equal(t, StateFailed, p.State())
	assert.Error(t, p.Err())
	assert.Empty(t, p.Products())
}

func TestRefreshFailureKeepsAccumulatedState(t *testing.T) {
	source := &fakeSource{products: makeProducts(10)}
	p := New(source, 5)
	ctx := context.Background()

	require.NoError(t, p.LoadFirst(ctx))
	require.Len(t, p.Products(), 5)

	source.mu.Lock()
	source.err = errors.New("boom")
	source.mu.Unlock()

	err := p.Refresh(ctx)
	require.Error(t, err)
	assert.Equal(t, StateReady, p.State())
	assert.Len(t, p.Products(), 5)
}

func TestLoadMoreFailureKeepsAccumulatedState(t *testing.T) {
	source := &fakeSource{products: makeProducts(10)}
	p := New(source, 5)
	ctx := context.Background()

	require.NoError(t, p.LoadFirst(ctx))

	source.mu.Lock()
	source.err = errors.New("boom")
	source.mu.Unlock()

	err := p.LoadMore(ctx)
	require.Error(t, err)
	assert.Len(t, p.Products(), 5)
	assert.Equal(t, StateReady, p.State())

	// Recovery: clearing the fault lets the next LoadMore proceed.
	source.mu.Lock()
	source.err = nil
	source.mu.Unlock()

	require.NoError(t, p.LoadMore(ctx))
	assert.Len(t, p.Products(), 10)
	assert.NoError(t, p.Err())
}

func TestStaleLoadMoreIsDiscardedAfterRefresh(t *testing.T) {
	source := &fakeSource{products: makeProducts(20)}
	p := New(source, 5)
	ctx := context.Background()

	require.NoError(t, p.LoadFirst(ctx))

	// Block the next fetch so a refresh can overtake it.
	gate := make(chan struct{})
	source.mu.Lock()
	source.gate = gate
	source.mu.Unlock()

	done := make(chan error, 1)
	go func() {
		done <- p.LoadMore(ctx)
	}()

	// Wait for the in-flight LoadMore to reach the source.
	for len(source.requestedPages()) < 2 {
	}

	// The refresh must not be blocked and must supersede the in-flight
	// page.
	source.mu.Lock()
	source.gate = nil
	source.mu.Unlock()
	require.NoError(t, p.LoadFirst(ctx))
	require.Len(t, p.Products(), 5)

	close(gate)
	require.NoError(t, <-done)

	// The stale page-2 result was dropped.
	assert.Len(t, p.Products(), 5)
	assert.Equal(t, StateReady, p.State())
}

func TestRefreshReplacesAccumulatedState(t *testing.T) {
	source := &fakeSource{products: makeProducts(10)}
	p := New(source, 5)
	ctx := context.Background()

	require.NoError(t, p.LoadFirst(ctx))
	require.NoError(t, p.LoadMore(ctx))
	require.Len(t, p.Products(), 10)

	require.NoError(t, p.Refresh(ctx))
	assert.Len(t, p.Products(), 5)
	assert.True(t, p.HasMore())
}
