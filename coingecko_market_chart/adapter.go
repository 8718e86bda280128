package coingecko_market_chart

import (
	"context"
	"sync"

	"github.com/pkg/errors"
)

// Fetcher loads chart points for a coin
type Fetcher interface {
	Fetch(ctx context.Context, id string) ([]ChartPoint, error)
}

// State is the adapter's committed view of one coin's chart
type State struct {
	CoinID  string
	Points  []ChartPoint
	Err     error
	Loading bool
}

// Adapter keeps chart state for the most recently requested coin.
// Starting a load cancels the previous one, and a result is committed only
// while its token is still the latest, so stale responses are dropped.
type Adapter struct {
	fetcher Fetcher

	mu     sync.Mutex
	token  uint64
	cancel context.CancelFunc
	state  State
	closed bool
}

func NewAdapter(fetcher Fetcher) *Adapter {
	return &Adapter{fetcher: fetcher}
}

// Load starts fetching id. The returned channel is closed once the load
// has committed, been dropped as stale, or been cancelled.
func (a *Adapter) Load(ctx context.Context, id string) <-chan struct{} {
	done := make(chan struct{})

	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		close(done)
		return done
	}
	if a.cancel != nil {
		a.cancel()
	}
	a.token++
	token := a.token
	loadCtx, cancel := context.WithCancel(ctx)
	a.cancel = cancel
	a.state = State{CoinID: id, Loading: true}
	a.mu.Unlock()

	go func() {
		defer close(done)
		defer cancel()

		points, err := a.fetcher.Fetch(loadCtx, id)
		a.commit(loadCtx, token, id, points, err)
	}()

	return done
}

// LoadAndWait runs Load and blocks until it finishes or ctx is done.
func (a *Adapter) LoadAndWait(ctx context.Context, id string) State {
	select {
	case <-a.Load(ctx, id):
	case <-ctx.Done():
	}
	return a.State()
}

func (a *Adapter) commit(ctx context.Context, token uint64, id string, points []ChartPoint, err error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if token != a.token || ctx.Err() != nil {
		return
	}
	if err != nil && errors.Is(err, context.Canceled) {
		return
	}

	a.state = State{CoinID: id, Points: points, Err: err}
	a.cancel = nil
}

func (a *Adapter) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Close cancels any in-flight load; later loads are ignored.
func (a *Adapter) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.closed = true
	a.token++
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
}
