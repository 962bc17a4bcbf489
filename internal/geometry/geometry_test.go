package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_Contains(t *testing.T) {
	r := Rect{Left: 10, Top: 10, Right: 20, Bottom: 20}

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"center", Point{15, 15}, true},
		{"just inside top-left", Point{11, 11}, true},
		{"just inside bottom-right", Point{19, 19}, true},
		{"left edge", Point{10, 15}, false},
		{"top edge", Point{15, 10}, false},
		{"right edge", Point{20, 15}, false},
		{"bottom edge", Point{15, 20}, false},
		{"corner", Point{10, 10}, false},
		{"outside", Point{25, 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Contains(tt.p))
		})
	}
}

func TestRectFromSize(t *testing.T) {
	r := RectFromSize(5, 6, 30, 40)
	assert.Equal(t, Rect{Left: 5, Top: 6, Right: 35, Bottom: 46}, r)
	assert.Equal(t, int32(30), r.Width())
	assert.Equal(t, int32(40), r.Height())
	assert.Equal(t, Point{X: 5, Y: 6}, r.Origin())
	assert.False(t, r.Empty())
}

func TestRect_Empty(t *testing.T) {
	assert.True(t, Rect{}.Empty())
	assert.True(t, Rect{Left: 5, Top: 0, Right: 5, Bottom: 10}.Empty())
}
