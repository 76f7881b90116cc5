package objects

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumberDisplay(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{3, "3"},
		{-3, "-3"},
		{0, "0"},
		{3.5, "3.5"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	}
	for _, c := range cases {
		got := (&Number{Value: c.in}).Display()
		assert.Equal(t, c.want, got)
	}
}

func TestArrayAndObjectDisplay(t *testing.T) {
	arr := &Array{Elements: []Value{&Number{Value: 1}, &String{Value: "x"}}}
	assert.Equal(t, `[1, x]`, arr.Display())

	obj := NewObject()
	obj.Set("a", &Number{Value: 1})
	obj.Set("b", &Bool{Value: true})
	assert.Equal(t, "{a: 1, b: true}", obj.Display())
}

func TestObjectPreservesInsertionOrderOnOverwrite(t *testing.T) {
	obj := NewObject()
	obj.Set("a", &Number{Value: 1})
	obj.Set("b", &Number{Value: 2})
	obj.Set("a", &Number{Value: 99})
	assert.Equal(t, []string{"a", "b"}, obj.Keys)
	assert.Equal(t, "{a: 99, b: 2}", obj.Display())
}

func TestToNumber(t *testing.T) {
	assert.Equal(t, float64(1), ToNumber(&Bool{Value: true}))
	assert.Equal(t, float64(0), ToNumber(&Bool{Value: false}))
	assert.Equal(t, float64(0), ToNumber(&Null{}))
	assert.True(t, math.IsNaN(ToNumber(&Undefined{})))
	assert.Equal(t, float64(0), ToNumber(&String{Value: ""}))
	assert.Equal(t, float64(42), ToNumber(&String{Value: "42"}))
	assert.True(t, math.IsNaN(ToNumber(&String{Value: "nope"})))
}

func TestTruthy(t *testing.T) {
	falsy := []Value{
		&Bool{Value: false}, &Null{}, &Undefined{},
		&Number{Value: 0}, &Number{Value: math.NaN()}, &String{Value: ""},
	}
	for _, v := range falsy {
		assert.False(t, Truthy(v), "expected %v to be falsy", v.Display())
	}

	truthy := []Value{
		&Bool{Value: true}, &Number{Value: 1}, &Number{Value: -1},
		&String{Value: "x"}, &Array{}, NewObject(),
	}
	for _, v := range truthy {
		assert.True(t, Truthy(v), "expected %T to be truthy", v)
	}
}
