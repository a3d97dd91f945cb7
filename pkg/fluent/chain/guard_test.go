package chain

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/fluent/pkg/fluent"
)

var errCrash = errors.New("crash")

type holder struct {
	text string
}

func TestGuard_RunsOnceAtConstruction(t *testing.T) {
	t.Parallel()

	calls := 0
	g := Let(1).Guard(func(int) error { calls++; return nil })
	assert.Equal(t, 1, calls)

	g.OnErrorReturnItem(2)
	g.OnError(func(error) {})
	assert.Equal(t, 1, calls)
}

func TestGuard_SideEffectVisible(t *testing.T) {
	t.Parallel()

	h := &holder{}
	out := Let(h).Guard(func(h *holder) error { h.text = "!"; return nil }).
		OnErrorReturnItem(&holder{text: "!!"}).
		Call()

	assert.Equal(t, "!", out.text)
}

func TestGuard_ErrorAndPanicCaptured(t *testing.T) {
	t.Parallel()

	returned := Let(0).Guard(func(int) error { return errCrash })
	assert.ErrorIs(t, returned.Err(), errCrash)

	panicked := Let(0).Guard(func(int) error { panic(errCrash) })
	assert.ErrorIs(t, panicked.Err(), errCrash)

	panickedValue := Let(0).Guard(func(int) error { panic("plain value") })
	var f *fluent.Failure
	require.ErrorAs(t, panickedValue.Err(), &f)
	assert.Equal(t, "plain value", f.Error())
}

func TestGuard_OnErrorReturnItem(t *testing.T) {
	t.Parallel()

	ok := Try(func() (int, error) { return 5, nil })
	assert.Equal(t, 5, ok.OnErrorReturnItem(-1).Call())

	failed := Try(func() (int, error) { return 0, errCrash })
	assert.Equal(t, -1, failed.OnErrorReturnItem(-1).Call())
}

func TestGuard_OnErrorReturn(t *testing.T) {
	t.Parallel()

	var got error
	out := Let(0).Guard(func(int) error { return errCrash }).
		OnErrorReturn(func(err error) int { got = err; return 10 }).
		Call()

	assert.Equal(t, 10, out)
	assert.ErrorIs(t, got, errCrash)

	called := false
	assert.Equal(t, 3, Let(3).Guard(func(int) error { return nil }).
		OnErrorReturn(func(error) int { called = true; return 10 }).
		Call())
	assert.False(t, called)
}

func TestGuard_OnErrorReturnFailingFunctionPropagates(t *testing.T) {
	t.Parallel()

	f := failureOf(func() {
		Let(0).Guard(func(int) error { return errCrash }).
			OnErrorReturn(func(error) int { panic("fallback failed") })
	})
	require.NotNil(t, f)
	assert.EqualError(t, f, "fallback failed")
}

func TestGuard_OnError(t *testing.T) {
	t.Parallel()

	var got error
	Let(0).Guard(func(int) error { return nil }).OnError(func(err error) { got = err })
	assert.NoError(t, got)

	Let(0).Guard(func(int) error { return errCrash }).OnError(func(err error) { got = err })
	assert.ErrorIs(t, got, errCrash)

	f := failureOf(func() {
		Let(0).Guard(func(int) error { return errCrash }).OnError(func(error) { panic("handler failed") })
	})
	assert.NotNil(t, f)
}

func TestGuard_OnErrorMap(t *testing.T) {
	t.Parallel()

	failed := Let(0).Guard(func(int) error { return errCrash }).
		OnErrorMap(func(err error) int { return -1 })
	assert.True(t, failed.IsPresent())
	assert.Equal(t, -1, failed.Call())

	succeeded := Let(4).Guard(func(int) error { return nil }).
		OnErrorMap(func(err error) int { return -1 })
	assert.True(t, succeeded.IsEmpty())
	assert.Equal(t, 4, succeeded.DefaultIfEmpty(4).Call())
}

func TestGuard_OnErrorMapItem_OnErrorMapTo(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 9, Try(func() (int, error) { return 0, errCrash }).OnErrorMapItem(9).Call())
	assert.True(t, Try(func() (int, error) { return 1, nil }).OnErrorMapItem(9).IsEmpty())

	msg := OnErrorMapTo(Try(func() (int, error) { return 0, errCrash }), error.Error)
	assert.Equal(t, "crash", msg.Call())
}

func TestGuardMap_AndTryMap(t *testing.T) {
	t.Parallel()

	doubled := Let(2).GuardMap(func(v int) (int, error) { return v * 2, nil }).OnErrorReturnItem(0)
	assert.Equal(t, 4, doubled.Call())

	parsed := TryMap(Let("12"), strconv.Atoi).OnErrorReturnItem(-1)
	assert.Equal(t, 12, parsed.Call())

	broken := TryMap(Let("x"), strconv.Atoi)
	assert.Error(t, broken.Err())
	assert.Equal(t, -1, broken.OnErrorReturnItem(-1).Call())
}

func TestTryMap_KeepsConfiguration(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	out := TryMap(LetWith(cfg, "1"), strconv.Atoi).OnErrorReturnItem(0)
	assert.Same(t, cfg, out.cfg)
}

func TestGuard_Result(t *testing.T) {
	t.Parallel()

	r := Try(func() (string, error) { return "v", nil }).Result()
	assert.True(t, r.IsSuccess())
	assert.Equal(t, "v", r.Result())
	assert.NotEmpty(t, r.Id())
}

func TestGuard_ReportsCapturedFailure(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	var tags []any
	var errs []error
	cfg.SetExceptionLogger(func(tag any, err error) {
		tags = append(tags, tag)
		errs = append(errs, err)
	})

	LetWith(cfg, 0).Guard(func(int) error { return errCrash })
	assert.Empty(t, errs, "nothing reported while logging is off")

	cfg.SetLogging(true)
	LetWith(cfg, 0).Guard(func(int) error { return errCrash })
	LetWith(cfg, 0).Guard(func(int) error { return nil })

	require.Len(t, errs, 1)
	assert.Equal(t, GuardTag, tags[0])
	assert.ErrorIs(t, errs[0], errCrash)
}
