// ABOUTME: Tests for optimistic transactions in isolation from any UI or network
// ABOUTME: Verifies apply-before-commit ordering, rollback by refetch, and stale flagging

package optimistic

import (
	"context"
	"errors"
	"testing"

	"github.com/mauromedda/overlaycast/internal/store"
	"github.com/mauromedda/overlaycast/pkg/overlay"
)

func seeded() *store.Store {
	s := store.New()
	s.Replace([]overlay.Overlay{{
		ID:       "a",
		Type:     overlay.TypeText,
		Content:  "hi",
		Position: overlay.Position{X: 5, Y: 5},
		Size:     overlay.Size{Width: 100, Height: 40},
	}})
	return s
}

func moveTo(pos overlay.Position, commit func(context.Context) error) Mutation {
	return Mutation{
		Target: ID{Op: OpMove, OverlayID: "a"},
		Apply:  func(s *store.Store) bool { return s.UpdatePosition("a", pos) },
		Commit: commit,
	}
}

func TestTxn_ApplyIsVisibleBeforeCommit(t *testing.T) {
	t.Parallel()

	s := seeded()
	var seenAtCommit overlay.Position
	txn := Begin(s, nil, moveTo(overlay.Position{X: 70, Y: 80}, func(context.Context) error {
		o, _ := s.Get("a")
		seenAtCommit = o.Position
		return nil
	}))

	if txn.State() != StateApplied || !txn.Changed() {
		t.Fatalf("state = %v changed = %v", txn.State(), txn.Changed())
	}
	o, _ := s.Get("a")
	if o.Position != (overlay.Position{X: 70, Y: 80}) {
		t.Errorf("position before commit = %+v", o.Position)
	}

	res := txn.Commit(context.Background())
	if res.Err != nil || res.Reconciled || res.Stale {
		t.Errorf("Result = %+v", res)
	}
	if seenAtCommit != (overlay.Position{X: 70, Y: 80}) {
		t.Errorf("commit saw %+v, want the optimistic value", seenAtCommit)
	}
	if txn.State() != StateCommitted {
		t.Errorf("state = %v, want committed", txn.State())
	}
}

func TestTxn_FailureReconcilesToAuthoritativeState(t *testing.T) {
	t.Parallel()

	s := seeded()
	authoritative := []overlay.Overlay{{
		ID:       "a",
		Position: overlay.Position{X: 5, Y: 5},
		Size:     overlay.Size{Width: 100, Height: 40},
	}}
	reconciles := 0
	rec := ReconcileFunc(func(context.Context) error {
		reconciles++
		s.Replace(authoritative)
		return nil
	})
	boom := errors.New("update failed")

	txn := Begin(s, rec, moveTo(overlay.Position{X: 300, Y: 300}, func(context.Context) error { return boom }))
	res := txn.Commit(context.Background())

	if !errors.Is(res.Err, boom) || !res.Reconciled || res.ReconcileErr != nil {
		t.Errorf("Result = %+v", res)
	}
	if reconciles != 1 {
		t.Errorf("reconciles = %d, want 1", reconciles)
	}
	o, _ := s.Get("a")
	if o.Position != (overlay.Position{X: 5, Y: 5}) {
		t.Errorf("position after rollback = %+v, want server value", o.Position)
	}
	if txn.State() != StateRolledBack {
		t.Errorf("state = %v, want rolled back", txn.State())
	}
}

func TestTxn_ReconcileFailureIsReported(t *testing.T) {
	t.Parallel()

	s := seeded()
	refetchErr := errors.New("backend down")
	rec := ReconcileFunc(func(context.Context) error { return refetchErr })
	txn := Begin(s, rec, moveTo(overlay.Position{X: 1}, func(context.Context) error { return errors.New("x") }))

	res := txn.Commit(context.Background())
	if !errors.Is(res.ReconcileErr, refetchErr) {
		t.Errorf("ReconcileErr = %v", res.ReconcileErr)
	}
}

func TestTxn_StaleCommitIsFlagged(t *testing.T) {
	t.Parallel()

	s := seeded()
	txn := Begin(s, nil, moveTo(overlay.Position{X: 9}, func(context.Context) error {
		// Another failed transaction refetched while this call was in flight.
		s.Replace(s.Snapshot())
		return nil
	}))

	res := txn.Commit(context.Background())
	if res.Err != nil || !res.Stale {
		t.Errorf("Result = %+v, want stale success", res)
	}
}

func TestTxn_CommitTwiceFails(t *testing.T) {
	t.Parallel()

	s := seeded()
	calls := 0
	txn := Begin(s, nil, moveTo(overlay.Position{X: 2}, func(context.Context) error {
		calls++
		return nil
	}))
	_ = txn.Commit(context.Background())
	res := txn.Commit(context.Background())
	if !errors.Is(res.Err, ErrNotApplied) {
		t.Errorf("second commit err = %v", res.Err)
	}
	if calls != 1 {
		t.Errorf("commit ran %d times", calls)
	}
}

func TestTxn_UnknownOverlayStillCommits(t *testing.T) {
	t.Parallel()

	s := seeded()
	committed := false
	txn := Begin(s, nil, Mutation{
		Target: ID{Op: OpDelete, OverlayID: "gone"},
		Apply:  func(s *store.Store) bool { return s.Remove("gone") },
		Commit: func(context.Context) error { committed = true; return nil },
	})
	if txn.Changed() {
		t.Error("Changed() = true for unknown id")
	}
	txn.Commit(context.Background())
	if !committed {
		t.Error("commit skipped")
	}
	if got := txn.ID().String(); got != "delete gone" {
		t.Errorf("ID = %q", got)
	}
}
