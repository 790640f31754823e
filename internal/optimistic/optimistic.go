// ABOUTME: Optimistic local transactions: apply now, commit in the background, reconcile on failure
// ABOUTME: Reconciliation is a full authoritative refetch, not a targeted undo

package optimistic

import (
	"context"
	"errors"
	"fmt"
	"sync"

	pilog "github.com/mauromedda/overlaycast/internal/log"
	"github.com/mauromedda/overlaycast/internal/store"
)

// Op names the kind of mutation a transaction carries.
type Op string

const (
	OpMove   Op = "move"
	OpResize Op = "resize"
	OpDelete Op = "delete"
)

// Reconciler restores authoritative state after a failed commit.
type Reconciler interface {
	Reconcile(ctx context.Context) error
}

// ReconcileFunc adapts a function to Reconciler.
type ReconcileFunc func(ctx context.Context) error

// Reconcile calls f.
func (f ReconcileFunc) Reconcile(ctx context.Context) error { return f(ctx) }

// Mutation is a pending local change and the network call that confirms it.
type Mutation struct {
	Target ID
	// Apply changes local state. It reports whether anything changed.
	Apply func(s *store.Store) bool
	// Commit performs the backend call.
	Commit func(ctx context.Context) error
}

// ID is an Op bound to the overlay it targets.
type ID struct {
	Op        Op
	OverlayID string
}

func (id ID) String() string {
	return fmt.Sprintf("%s %s", id.Op, id.OverlayID)
}

// State is the lifecycle stage of a transaction.
type State int

const (
	StatePending State = iota
	StateApplied
	StateCommitting
	StateCommitted
	StateRolledBack
)

// Result describes how a commit ended.
type Result struct {
	// Err is the commit failure, nil on success.
	Err error
	// Reconciled is true when a failure triggered a refetch.
	Reconciled bool
	// ReconcileErr is the refetch failure, if any.
	ReconcileErr error
	// Stale is true when the commit succeeded after the store had already been
	// reset by a refetch that started after this transaction was applied. The
	// backend may now hold geometry newer than what the store shows.
	Stale bool
}

// ErrNotApplied is returned when Commit is called before Begin applied the change.
var ErrNotApplied = errors.New("transaction was not applied")

// Txn is one optimistic mutation.
type Txn struct {
	m          Mutation
	store      *store.Store
	reconciler Reconciler

	mu         sync.Mutex
	state      State
	appliedRev uint64
	changed    bool
}

// Begin applies the mutation to the store immediately and returns the
// transaction, ready for Commit.
func Begin(s *store.Store, r Reconciler, m Mutation) *Txn {
	t := &Txn{m: m, store: s, reconciler: r}
	t.appliedRev = s.Revision()
	t.changed = m.Apply(s)
	t.state = StateApplied
	return t
}

// ID returns the transaction's target.
func (t *Txn) ID() ID { return t.m.Target }

// State returns the current lifecycle stage.
func (t *Txn) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Changed reports whether the local apply found the overlay.
func (t *Txn) Changed() bool { return t.changed }

// Commit runs the backend call. On failure it logs and reconciles.
func (t *Txn) Commit(ctx context.Context) Result {
	t.mu.Lock()
	if t.state != StateApplied {
		t.mu.Unlock()
		return Result{Err: ErrNotApplied}
	}
	t.state = StateCommitting
	t.mu.Unlock()

	err := t.m.Commit(ctx)
	if err == nil {
		res := Result{}
		if t.store.Revision() != t.appliedRev {
			res.Stale = true
			pilog.Warn("optimistic: %s committed after a reconcile; store may lag the backend", t.m.Target)
		}
		t.setState(StateCommitted)
		return res
	}

	pilog.Error("optimistic: %s failed: %s", t.m.Target, detail(err))
	res := Result{Err: err}
	if t.reconciler != nil {
		res.Reconciled = true
		if rerr := t.reconciler.Reconcile(ctx); rerr != nil {
			res.ReconcileErr = rerr
			pilog.Error("optimistic: reconcile after %s failed: %s", t.m.Target, detail(rerr))
		}
	}
	t.setState(StateRolledBack)
	return res
}

func (t *Txn) setState(s State) {
	t.mu.Lock()
	t.state = s
	t.mu.Unlock()
}

// detail prefers an error's Detail() rendering when it has one.
func detail(err error) string {
	var d interface{ Detail() string }
	if errors.As(err, &d) {
		return d.Detail()
	}
	return err.Error()
}
