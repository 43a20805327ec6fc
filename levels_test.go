package h2

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleLevels() Levels {
	return Levels{
		{V: 1, J: 0, Energy: 4161.14, ColDens: 1e12},
		{V: 0, J: 2, Energy: 354.35, ColDens: 1e18},
		{V: 0, J: 0, Energy: 0, ColDens: 1e20},
		{V: 0, J: 1, Energy: 118.5, ColDens: 1e19},
		{V: 2, J: 1, Energy: 8086.93, ColDens: 1e10},
		{V: 0, J: 3, Energy: 705.54, ColDens: 1e17},
		{V: 4, J: 1, Energy: 15650.0, ColDens: 1e8},
	}
}

func TestStatWeight(t *testing.T) {
	assert.Equal(t, 1.0, StatWeight(0))
	assert.Equal(t, 9.0, StatWeight(1))
	assert.Equal(t, 5.0, StatWeight(2))
	assert.Equal(t, 21.0, StatWeight(3))
	assert.True(t, IsOrtho(7))
	assert.False(t, IsOrtho(8))
}

func TestLevelsSortAndSelect(t *testing.T) {
	L := sampleLevels().Sort()
	require.Len(t, L, 7)
	assert.Equal(t, Level{V: 0, J: 0, Energy: 0, ColDens: 1e20}, L[0])
	assert.Equal(t, 4, L[len(L)-1].V)

	g := L.Ground()
	require.Len(t, g, 4)
	for i, l := range g {
		assert.Equal(t, 0, l.V)
		assert.Equal(t, i, l.J)
	}
	r := g.Range(1, 2)
	require.Len(t, r, 2)
	assert.Equal(t, []float64{118.5, 354.35}, r.Energies())
	assert.Equal(t, []float64{1e19, 1e18}, r.ColDens())

	l, ok := L.Find(2, 1)
	assert.True(t, ok)
	assert.Equal(t, 8086.93, l.Energy)
	_, ok = L.Find(3, 3)
	assert.False(t, ok)
}

func TestRangeBounds(t *testing.T) {
	L := sampleLevels()
	assert.Empty(t, L.Range(5, 2))
	assert.Empty(t, Levels{}.Range(5, 2))
	assert.Len(t, L.Range(0, 1<<62), len(L))
}

func TestVibDoesNotAlias(t *testing.T) {
	L := sampleLevels()
	g := L.Ground()
	g[0].ColDens = -1
	assert.Equal(t, 1e18, L[1].ColDens)
}

func TestDiagramSet(t *testing.T) {
	set := DiagramSet(sampleLevels(), 3)
	require.Len(t, set, 4)
	//J=0 and J=1 of v=0 are left out.
	require.Len(t, set[0], 2)
	assert.Equal(t, 2, set[0][0].J)
	assert.Equal(t, 3, set[0][1].J)
	assert.Len(t, set[1], 1)
	assert.Len(t, set[2], 1)
	assert.Len(t, set[3], 0)
}

func TestErrorKinds(t *testing.T) {
	err := Errorf(InsufficientData, "Estimate", "only %d levels", 2)
	assert.True(t, errors.Is(err, ErrInsufficientData))
	assert.False(t, errors.Is(err, ErrInvalidParameter))

	wrapped := fmt.Errorf("run shock_30: %w", err)
	assert.True(t, errors.Is(wrapped, ErrInsufficientData))

	ErrDecorate(wrapped, "runset.Estimate")
	var e *Error
	require.True(t, errors.As(wrapped, &e))
	assert.Equal(t, []string{"Estimate", "runset.Estimate"}, e.Decorate(""))
	assert.Equal(t, "insufficient data: only 2 levels (runset.Estimate < Estimate)", e.Error())
	assert.Equal(t, InsufficientData, e.Kind())

	plain := errors.New("plain")
	assert.Equal(t, plain, ErrDecorate(plain, "x"))
}
