package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pair struct {
	key   int
	value string
}

func TestMergeJoin(t *testing.T) {
	left := []*pair{{1, "a"}, {3, "c"}, {4, "d"}}
	right := []*pair{{2, "B"}, {3, "C"}, {5, "E"}}

	var got []string
	err := mergeJoin(left, right, func(p *pair) int { return p.key }, func(l, r *pair) error {
		switch {
		case l == nil:
			got = append(got, "right:"+r.value)
		case r == nil:
			got = append(got, "left:"+l.value)
		default:
			got = append(got, "both:"+l.value+r.value)
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"left:a", "right:B", "both:cC", "left:d", "right:E"}, got)
}

func TestMergeJoin_Empty(t *testing.T) {
	calls := 0
	err := mergeJoin([]*pair{}, nil, func(p *pair) int { return p.key }, func(l, r *pair) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Zero(t, calls)
}

func TestMergeJoin_StopsOnError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	err := mergeJoin([]*pair{{1, "a"}, {2, "b"}}, nil, func(p *pair) int { return p.key }, func(l, r *pair) error {
		calls++
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}
