package listview

import (
	"context"
	"fmt"
	"sync"

	"customer-datatable/internal/domain/customer"
	xerrors "customer-datatable/internal/pkg/errors"

	"go.uber.org/zap"
)

// Source supplies the full customer snapshot.
type Source interface {
	FetchAll(ctx context.Context) ([]customer.Customer, error)
}

// View owns a State and routes every change through the State transitions.
// Load runs at most once. After Close, late fetch results and further
// transitions are dropped.
type View struct {
	mu    sync.Mutex
	state State

	source Source
	logger *zap.Logger

	ctx     context.Context
	cancel  context.CancelFunc
	started bool
	closed  bool
}

// NewView creates a view in the Idle phase. Cancelling parent has the same
// effect on an in-flight fetch as Close.
func NewView(parent context.Context, source Source, logger *zap.Logger) *View {
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(parent)

	return &View{
		state:  NewState(),
		source: source,
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Load fetches the snapshot. It blocks until the source answers.
// A second call returns ErrAlreadyLoaded; a call on a closed view, or a
// fetch that finishes after Close, returns ErrViewClosed and changes nothing.
func (v *View) Load() error {
	v.mu.Lock()
	switch {
	case v.closed:
		v.mu.Unlock()
		return xerrors.ErrViewClosed
	case v.started:
		v.mu.Unlock()
		return xerrors.ErrAlreadyLoaded
	}
	v.started = true
	v.state = v.state.Loading()
	ctx := v.ctx
	v.mu.Unlock()

	records, err := v.source.FetchAll(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		v.logger.Debug("view closed before fetch finished, dropping result")
		return xerrors.ErrViewClosed
	}

	if err != nil {
		v.logger.Error("error fetching customer data", zap.Error(err))
		v.state = v.state.Failed()
		return fmt.Errorf("load customers: %w", err)
	}

	v.state = v.state.Loaded(records)
	v.logger.Info("customers loaded", zap.Int("count", len(records)))
	return nil
}

// Close tears the view down and cancels an in-flight fetch. Safe to call twice.
func (v *View) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return
	}
	v.closed = true
	v.cancel()
}

// Closed reports whether Close has been called.
func (v *View) Closed() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.closed
}

// State returns a copy of the current state.
func (v *View) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Page derives the rows for the current page.
func (v *View) Page() Page {
	return v.State().Page()
}

func (v *View) Search(term string) State {
	return v.apply(func(s State) State { return s.Search(term) })
}

func (v *View) SetSortField(field customer.SortField) State {
	return v.apply(func(s State) State { return s.SetSortField(field) })
}

func (v *View) CycleSortField() State {
	return v.apply(State.CycleSortField)
}

func (v *View) ToggleSortOrder() State {
	return v.apply(State.ToggleSortOrder)
}

func (v *View) NextPage() State {
	return v.apply(State.NextPage)
}

func (v *View) PrevPage() State {
	return v.apply(State.PrevPage)
}

func (v *View) apply(fn func(State) State) State {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.closed {
		v.state = fn(v.state)
	}
	return v.state
}
