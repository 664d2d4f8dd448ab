package paginator

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func items(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("item-%d", i+1)
	}
	return out
}

// loadOnce runs one full LoadMore cycle synchronously. It returns false when
// LoadMore was a no-op.
func loadOnce(t *testing.T, p *Paginator[string]) bool {
	t.Helper()
	cmd := p.LoadMore(context.Background())
	if cmd == nil {
		return false
	}
	msg, ok := cmd().(LoadedMsg)
	require.True(t, ok, "expected LoadedMsg")
	require.True(t, p.Apply(msg))
	return true
}

func newInstant(t *testing.T, full []string, pageSize int) *Paginator[string] {
	t.Helper()
	p, err := New(full, pageSize, WithDelay(0))
	require.NoError(t, err)
	t.Cleanup(p.Close)
	return p
}

func TestNew_RejectsNonPositivePageSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		_, err := New(items(3), size)
		assert.ErrorIs(t, err, ErrInvalidPageSize)
	}
}

func TestNew_HundredItemsPageTwenty(t *testing.T) {
	full := items(100)
	p := newInstant(t, full, 20)

	assert.Equal(t, 20, p.Len())
	assert.False(t, p.Exhausted())
	assert.False(t, p.Loading())

	for i := 0; i < 4; i++ {
		require.True(t, loadOnce(t, p), "load %d", i+1)
	}
	assert.Equal(t, 100, p.Len())
	assert.True(t, p.Exhausted())
	if diff := cmp.Diff(full, p.Visible()); diff != "" {
		t.Errorf("visible mismatch (-want +got):\n%s", diff)
	}

	// A fifth call leaves state unchanged.
	before := p.Snapshot()
	assert.False(t, loadOnce(t, p))
	assert.Equal(t, before, p.Snapshot())
}

func TestNew_FewerItemsThanPage(t *testing.T) {
	p := newInstant(t, items(15), 20)
	assert.Equal(t, 15, p.Len())
	assert.True(t, p.Exhausted())
	assert.Nil(t, p.LoadMore(context.Background()))
}

func TestNew_ExactlyOnePage(t *testing.T) {
	p := newInstant(t, items(20), 20)
	assert.True(t, p.Exhausted())
	assert.Equal(t, 20, p.Len())
}

func TestNew_Empty(t *testing.T) {
	p := newInstant(t, nil, 5)
	assert.Equal(t, 0, p.Len())
	assert.True(t, p.Exhausted())
	assert.Empty(t, p.Visible())
}

func TestLoadMore_AllSizesReachFullList(t *testing.T) {
	for n := 0; n <= 23; n++ {
		for size := 1; size <= 7; size++ {
			full := items(n)
			p := newInstant(t, full, size)

			pages := (n + size - 1) / size
			for i := 1; i < pages; i++ {
				require.True(t, loadOnce(t, p), "n=%d size=%d load %d", n, size, i)
				assertPrefix(t, full, p.Visible())
				assert.False(t, p.Loading() && p.Exhausted())
			}
			assert.Equal(t, n, p.Len(), "n=%d size=%d", n, size)
			assert.True(t, p.Exhausted(), "n=%d size=%d", n, size)
			assert.False(t, loadOnce(t, p), "n=%d size=%d extra load", n, size)
		}
	}
}

func TestLoadMore_NoOpWhileLoading(t *testing.T) {
	p := newInstant(t, items(50), 10)

	cmd := p.LoadMore(context.Background())
	require.NotNil(t, cmd)
	assert.True(t, p.Loading())
	assert.False(t, p.Exhausted())

	for i := 0; i < 5; i++ {
		assert.Nil(t, p.LoadMore(context.Background()))
	}
	assert.Equal(t, 10, p.Len())

	require.True(t, p.Apply(cmd().(LoadedMsg)))
	assert.Equal(t, 20, p.Len())
	assert.False(t, p.Loading())
}

func TestLoadMore_NoOpAfterExhausted(t *testing.T) {
	p := newInstant(t, items(25), 10)
	for loadOnce(t, p) {
	}
	assert.True(t, p.Exhausted())
	visible := p.Visible()
	assert.Nil(t, p.LoadMore(context.Background()))
	assert.Equal(t, visible, p.Visible())
	assert.True(t, p.Exhausted(), "exhausted never reverts")
}

func TestLoadMore_ConcurrentTriggersAppendOnce(t *testing.T) {
	p := newInstant(t, items(40), 10)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		cmds int
	)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if cmd := p.LoadMore(context.Background()); cmd != nil {
				msg := cmd().(LoadedMsg)
				mu.Lock()
				cmds++
				mu.Unlock()
				p.Apply(msg)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, cmds)
	assert.Equal(t, 20, p.Len())
}

func TestApply_IgnoresForeignAndDuplicateMessages(t *testing.T) {
	a := newInstant(t, items(30), 10)
	b := newInstant(t, items(30), 10)

	msgA := a.LoadMore(context.Background())().(LoadedMsg)
	assert.False(t, b.Apply(msgA), "message from another paginator")
	assert.True(t, a.Apply(msgA))
	assert.False(t, a.Apply(msgA), "duplicate delivery")
	assert.Equal(t, 20, a.Len())
	assert.Equal(t, 10, b.Len())
}

func TestClose_CancelsInFlightLoad(t *testing.T) {
	p, err := New(items(30), 10, WithDelay(time.Hour))
	require.NoError(t, err)

	cmd := p.LoadMore(context.Background())
	require.NotNil(t, cmd)

	done := make(chan LoadedMsg, 1)
	go func() { done <- cmd().(LoadedMsg) }()

	p.Close()
	select {
	case msg := <-done:
		assert.True(t, msg.Canceled)
		assert.False(t, p.Apply(msg), "late completion after close is dropped")
	case <-time.After(5 * time.Second):
		t.Fatal("load did not observe Close")
	}
	assert.Equal(t, 10, p.Len())
	assert.True(t, p.Closed())
	assert.Nil(t, p.LoadMore(context.Background()))
}

func TestClose_DropsCompletionThatRacedIt(t *testing.T) {
	p := newInstant(t, items(30), 10)
	msg := p.LoadMore(context.Background())().(LoadedMsg)
	p.Close()
	assert.False(t, p.Apply(msg))
	assert.Equal(t, 10, p.Len())
}

func TestLoadMore_ContextCancelResetsLoading(t *testing.T) {
	p, err := New(items(30), 10, WithDelay(time.Hour))
	require.NoError(t, err)
	t.Cleanup(p.Close)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cmd := p.LoadMore(ctx)
	require.NotNil(t, cmd)
	msg := cmd().(LoadedMsg)
	assert.True(t, msg.Canceled)
	assert.True(t, p.Apply(msg))
	assert.False(t, p.Loading())
	assert.Equal(t, 10, p.Len())

	// The next trigger may try again.
	assert.NotNil(t, p.LoadMore(context.Background()))
}

func TestVisible_CannotGrowIntoHiddenItems(t *testing.T) {
	full := items(30)
	p := newInstant(t, full, 10)
	v := p.Visible()
	_ = append(v, "intruder")
	assert.Equal(t, "item-11", full[10])
}

func assertPrefix(t *testing.T, full, visible []string) {
	t.Helper()
	require.LessOrEqual(t, len(visible), len(full))
	if diff := cmp.Diff(full[:len(visible)], visible); diff != "" {
		t.Errorf("visible is not a prefix (-want +got):\n%s", diff)
	}
}

func TestLoadMore_RecordsSpan(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec)))
	t.Cleanup(func() { otel.SetTracerProvider(noop.NewTracerProvider()) })

	p, err := New(items(30), 20, WithDelay(0), WithName("leads"))
	require.NoError(t, err)
	t.Cleanup(p.Close)
	require.True(t, loadOnce(t, p))

	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "paginator.load_more", spans[0].Name())
	assert.ElementsMatch(t, []attribute.KeyValue{
		attribute.String("linkbird.list", "leads"),
		attribute.Int("linkbird.offset", 20),
		attribute.Int("linkbird.page_size", 20),
	}, spans[0].Attributes())
}
