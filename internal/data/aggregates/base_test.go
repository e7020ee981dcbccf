package aggregates

import (
	"context"
	"errors"
	"testing"
	"time"

	domainagg "github.com/mpac-commercial/course-design-assessment/internal/domain/aggregates"
	"github.com/mpac-commercial/course-design-assessment/internal/platform/dbctx"
)

func TestExecuteWriteObservesSuccessStatus(t *testing.T) {
	hooks := &spyHooks{}

	err := executeWrite(context.Background(), BaseDeps{
		Runner: spyTxRunner{},
		Hooks:  hooks,
	}, "aggregate.test.success", func(_ dbctx.Context) error { return nil })
	if err != nil {
		t.Fatalf("executeWrite success: %v", err)
	}
	if len(hooks.Operations) != 1 {
		t.Fatalf("operations count: want=1 got=%d", len(hooks.Operations))
	}
	if hooks.Operations[0].Status != "success" {
		t.Fatalf("operation status: want=success got=%s", hooks.Operations[0].Status)
	}
}

func TestExecuteWriteObservesCodeStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code domainagg.ErrorCode
	}{
		{"not_found", NotFoundError("course not found with ID 1."), domainagg.CodeNotFound},
		{"invalid_length", InvalidLengthError("too long"), domainagg.CodeInvalidLength},
		{"out_of_range", OutOfRangeError("grade 110"), domainagg.CodeOutOfRange},
		{"internal", errors.New("disk on fire"), domainagg.CodeInternal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			hooks := &spyHooks{}
			err := executeWrite(context.Background(), BaseDeps{
				Runner: spyTxRunner{},
				Hooks:  hooks,
			}, "aggregate.test."+tc.name, func(_ dbctx.Context) error { return tc.err })
			if !domainagg.IsCode(err, tc.code) {
				t.Fatalf("expected %s code, got=%v", tc.code, err)
			}
			if len(hooks.Operations) != 1 || hooks.Operations[0].Status != string(tc.code) {
				t.Fatalf("unexpected op status: %+v", hooks.Operations)
			}
			if len(hooks.Conflicts) != 0 {
				t.Fatalf("conflict hooks should be empty, got=%+v", hooks.Conflicts)
			}
		})
	}
}

func TestExecuteWriteTracksConflicts(t *testing.T) {
	hooks := &spyHooks{}
	err := executeWrite(context.Background(), BaseDeps{
		Runner: spyTxRunner{},
		Hooks:  hooks,
	}, "aggregate.test.conflict", func(_ dbctx.Context) error {
		return ConflictError("duplicate")
	})
	if !domainagg.IsCode(err, domainagg.CodeConflict) {
		t.Fatalf("expected conflict code, got=%v", err)
	}
	if domainagg.MessageOf(err) != "duplicate" {
		t.Fatalf("message: want=duplicate got=%q", domainagg.MessageOf(err))
	}
	if len(hooks.Conflicts) != 1 || hooks.Conflicts[0] != "aggregate.test.conflict" {
		t.Fatalf("conflict hooks: %+v", hooks.Conflicts)
	}
}

func TestExecuteReadUsesRunner(t *testing.T) {
	runner := &countingRunner{}
	err := executeRead(context.Background(), BaseDeps{Runner: runner}, "", func(_ dbctx.Context) error { return nil })
	if err != nil {
		t.Fatalf("executeRead: %v", err)
	}
	if runner.calls != 1 {
		t.Fatalf("runner calls: want=1 got=%d", runner.calls)
	}
}

func TestAggregateErrorStatus(t *testing.T) {
	if got := aggregateErrorStatus(nil); got != "success" {
		t.Fatalf("nil status: want=success got=%s", got)
	}
	if got := aggregateErrorStatus(errors.New("x")); got != "failure" {
		t.Fatalf("plain status: want=failure got=%s", got)
	}
	if got := aggregateErrorStatus(MapError("op", ConflictError("x"))); got != string(domainagg.CodeConflict) {
		t.Fatalf("conflict status: got=%s", got)
	}
}

type spyTxRunner struct{}

func (spyTxRunner) InTx(ctx context.Context, fn func(dbc dbctx.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(dbctx.Context{Ctx: ctx})
}

type countingRunner struct {
	calls int
}

func (r *countingRunner) InTx(ctx context.Context, fn func(dbc dbctx.Context) error) error {
	r.calls++
	return fn(dbctx.Context{Ctx: ctx})
}

type spyHooks struct {
	Operations []spyOperation
	Conflicts  []string
}

type spyOperation struct {
	Name   string
	Status string
}

func (h *spyHooks) ObserveOperation(name, status string, _ time.Duration) {
	h.Operations = append(h.Operations, spyOperation{Name: name, Status: status})
}

func (h *spyHooks) IncConflict(name string) {
	h.Conflicts = append(h.Conflicts, name)
}
