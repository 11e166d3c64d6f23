package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointUnloadIsFIFO(t *testing.T) {
	c1 := &Cargo{ID: 1}
	c2 := &Cargo{ID: 2}
	p := NewPoint("FACTORY", c1, c2)

	require.NoError(t, p.Accept(&Cargo{ID: 3}, 0))
	require.Equal(t, 3, p.Size())

	for _, want := range []int{1, 2, 3} {
		got, err := p.Unload()
		require.NoError(t, err)
		assert.Equal(t, want, got.ID)
	}
	assert.Equal(t, 0, p.Size())
}

func TestPointUnloadEmpty(t *testing.T) {
	p := NewPoint("A")

	c, err := p.Unload()
	if !errors.Is(err, ErrEmptyQueue) {
		t.Fatalf("err = %v, want ErrEmptyQueue", err)
	}
	if c != nil {
		t.Fatalf("cargo = %v, want nil", c)
	}
}

func TestPortNotifiesAfterEnqueue(t *testing.T) {
	port := NewPort("PORT")

	var seen []int
	port.OnArrival(func(p *Point, now int) error {
		seen = append(seen, p.Size())
		c, err := p.Unload()
		if err != nil {
			return err
		}
		assert.Equal(t, 7, now)
		assert.Equal(t, 42, c.ID)
		return nil
	})

	require.NoError(t, port.Accept(&Cargo{ID: 42}, 7))

	assert.Equal(t, []int{1}, seen, "observer must run once and see the queued unit")
	assert.Equal(t, 0, port.Size())
}

func TestPortObserverErrorIsReturned(t *testing.T) {
	port := NewPort("PORT")
	boom := errors.New("boom")
	port.OnArrival(func(*Point, int) error { return boom })

	err := port.Accept(&Cargo{}, 1)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, port.Size())
}

func TestPlainPointIgnoresObservers(t *testing.T) {
	p := NewPoint("B")
	called := false
	p.OnArrival(func(*Point, int) error {
		called = true
		return nil
	})

	require.NoError(t, p.Accept(&Cargo{}, 1))
	assert.False(t, called)
	assert.False(t, p.Reactive())
}

func TestPointCargoIsSnapshot(t *testing.T) {
	p := NewPoint("A", &Cargo{ID: 1})

	snap := p.Cargo()
	snap[0] = &Cargo{ID: 99}

	got, err := p.Unload()
	require.NoError(t, err)
	assert.Equal(t, 1, got.ID)
}
