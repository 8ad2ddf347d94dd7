package assoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPair(t *testing.T) {
	t.Parallel()

	p := NewPair("hello", 42)

	assert.Equal(t, "hello", p.Key())
	assert.Equal(t, 42, p.Value())
	assert.Equal(t, "hello:42", p.String())
}

func TestPair_WithValue(t *testing.T) {
	t.Parallel()

	p := NewPair("k", 1)
	q := p.WithValue(2)

	assert.Equal(t, 1, p.Value())
	assert.Equal(t, 2, q.Value())
	assert.Equal(t, "k", q.Key())
}

func TestPair_StringWithComplexTypes(t *testing.T) {
	t.Parallel()

	type point struct{ X, Y int }

	assert.Equal(t, "{1 2}:[a b]", NewPair(point{1, 2}, []string{"a", "b"}).String())
	assert.Equal(t, "<nil>:<nil>", NewPair[*int, *int](nil, nil).String())
}

func TestCheckArguments(t *testing.T) {
	t.Parallel()

	var (
		nilPtr   *int
		nilMap   map[string]int
		nilSlice []int
		nilFunc  func()
		nilChan  chan int
		value    = 1
	)

	tests := []struct {
		name    string
		key     any
		value   any
		wantErr bool
	}{
		{name: "plain values", key: "a", value: 1},
		{name: "zero values", key: "", value: 0},
		{name: "pointer value", key: "a", value: &value},
		{name: "nil key", key: nil, value: 1, wantErr: true},
		{name: "nil value", key: "a", value: nil, wantErr: true},
		{name: "both nil", key: nil, value: nil, wantErr: true},
		{name: "typed nil pointer", key: "a", value: nilPtr, wantErr: true},
		{name: "nil map", key: "a", value: nilMap, wantErr: true},
		{name: "nil slice", key: nilSlice, value: 1, wantErr: true},
		{name: "nil func", key: "a", value: nilFunc, wantErr: true},
		{name: "nil chan", key: "a", value: nilChan, wantErr: true},
		{name: "empty slice", key: "a", value: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := checkArguments(tt.key, tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
