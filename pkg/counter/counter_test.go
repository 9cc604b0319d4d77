package counter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	"pgregory.net/rapid"
)

type recordingSink struct {
	mu    sync.Mutex
	snaps []Snapshot
	err   error
}

func (s *recordingSink) Publish(_ context.Context, snap Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snaps = append(s.snaps, snap)
	return s.err
}

func (s *recordingSink) published() []Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Snapshot(nil), s.snaps...)
}

func TestTable_GetOrCreateSameHandle(t *testing.T) {
	tbl := New()

	a := tbl.GetOrCreate("x")
	b := tbl.GetOrCreate("x")

	assert.Same(t, a, b)
	assert.Equal(t, "x", a.Name())
	assert.Zero(t, a.Get())
	assert.Equal(t, 1, tbl.Len())
}

func TestCounter_Increment(t *testing.T) {
	c := New().GetOrCreate("x")

	c.Increment()
	assert.Equal(t, int64(1), c.Get())

	c.IncrementBy(5)
	assert.Equal(t, int64(6), c.Get())

	c.IncrementBy(0)
	assert.Equal(t, int64(6), c.Get())

	c.IncrementBy(-2)
	assert.Equal(t, int64(4), c.Get())
}

func TestTable_PublishResetsAndReportsOnce(t *testing.T) {
	sink := &recordingSink{}
	tbl := New(WithSink(sink))

	x := tbl.GetOrCreate("x")
	y := tbl.GetOrCreate("y")
	x.IncrementBy(3)
	y.Increment()

	require.NoError(t, tbl.Publish(context.Background()))

	assert.Zero(t, x.Get())
	assert.Zero(t, y.Get())

	snaps := sink.published()
	require.Len(t, snaps, 1)
	assert.Equal(t, map[string]int64{"x": 3, "y": 1}, snaps[0].Values)
	assert.Equal(t, []string{"x", "y"}, snaps[0].Names())
	assert.NotEmpty(t, snaps[0].ID.String())
	assert.False(t, snaps[0].Time.IsZero())

	x.Increment()
	require.NoError(t, tbl.Publish(context.Background()))

	snaps = sink.published()
	require.Len(t, snaps, 2)
	assert.Equal(t, map[string]int64{"x": 1, "y": 0}, snaps[1].Values)
	assert.NotEqual(t, snaps[0].ID, snaps[1].ID)
}

func TestTable_PublishSinkError(t *testing.T) {
	boom := errors.New("sink down")
	tbl := New(WithSink(&recordingSink{err: boom}))
	c := tbl.GetOrCreate("x")
	c.Increment()

	err := tbl.Publish(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, c.Get(), "values are reset even when the sink fails")
}

func TestTable_ClosePublishes(t *testing.T) {
	sink := &recordingSink{}
	tbl := New(WithSink(sink))
	tbl.GetOrCreate("x").IncrementBy(7)

	require.NoError(t, tbl.Close())

	snaps := sink.published()
	require.Len(t, snaps, 1)
	assert.Equal(t, int64(7), snaps[0].Values["x"])
}

func TestTable_PrintEmpty(t *testing.T) {
	var buf bytes.Buffer
	New(WithOutput(&buf)).Print()
	assert.Zero(t, buf.Len())
}

func TestTable_Print(t *testing.T) {
	var buf bytes.Buffer
	tbl := New(WithOutput(&buf))
	tbl.GetOrCreate("b").IncrementBy(2)
	tbl.GetOrCreate("a").Increment()

	tbl.Print()

	assert.Equal(t, "a: 1\nb: 2\n", buf.String())
	assert.Equal(t, int64(2), tbl.GetOrCreate("b").Get(), "print must not modify state")
}

func TestTable_Snapshot(t *testing.T) {
	tbl := New()
	tbl.GetOrCreate("x").IncrementBy(4)

	snap := tbl.Snapshot()
	snap["x"] = 100

	assert.Equal(t, int64(4), tbl.GetOrCreate("x").Get())
}

func TestDefault(t *testing.T) {
	assert.Same(t, Default(), Default())
}

func TestTable_ConcurrentIncrementsPublishedExactlyOnce(t *testing.T) {
	sink := &recordingSink{}
	tbl := New(WithSink(sink))
	const workers = 8
	const perWorker = 500

	var g errgroup.Group
	for w := range workers {
		g.Go(func() error {
			c := tbl.GetOrCreate(fmt.Sprintf("w%d", w%2))
			for i := range perWorker {
				c.Increment()
				if i%100 == 0 {
					if err := tbl.Publish(context.Background()); err != nil {
						return err
					}
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	require.NoError(t, tbl.Publish(context.Background()))

	var total int64
	for _, snap := range sink.published() {
		for _, v := range snap.Values {
			total += v
		}
	}
	assert.Equal(t, int64(workers*perWorker), total)
}

func TestProperty_PublishedSumMatchesIncrements(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		sink := &recordingSink{}
		tbl := New(WithSink(sink))
		c := tbl.GetOrCreate("x")

		ops := rapid.SliceOf(rapid.Int64Range(-10, 100)).Draw(rt, "ops")
		var want int64
		for i, amount := range ops {
			c.IncrementBy(amount)
			want += amount
			if i%3 == 2 {
				if err := tbl.Publish(context.Background()); err != nil {
					rt.Fatal(err)
				}
			}
		}
		if err := tbl.Publish(context.Background()); err != nil {
			rt.Fatal(err)
		}

		var got int64
		for _, snap := range sink.published() {
			got += snap.Values["x"]
		}
		if got != want {
			rt.Fatalf("published sum %d, want %d", got, want)
		}
		if c.Get() != 0 {
			rt.Fatalf("Get() after Publish = %d, want 0", c.Get())
		}
	})
}
