package scope

import (
	"testing"

	"github.com/mewisme/mew/objects"
	"github.com/stretchr/testify/assert"
)

func TestDeclareHereRejectsRedeclaration(t *testing.T) {
	s := New(nil)
	assert.True(t, s.DeclareHere("a", &objects.Number{Value: 1}, false))
	assert.False(t, s.DeclareHere("a", &objects.Number{Value: 2}, false))
}

func TestLookupWalksParentChain(t *testing.T) {
	parent := New(nil)
	parent.DeclareHere("a", &objects.Number{Value: 1}, false)
	child := New(parent)

	v, ok := child.Lookup("a")
	assert.True(t, ok)
	assert.Equal(t, float64(1), v.(*objects.Number).Value)

	_, ok = child.Lookup("missing")
	assert.False(t, ok)
}

func TestAssignRejectsConstAndUndeclared(t *testing.T) {
	s := New(nil)
	s.DeclareHere("c", &objects.Number{Value: 1}, true)

	ok, wasConst := s.Assign("c", &objects.Number{Value: 2})
	assert.False(t, ok)
	assert.True(t, wasConst)

	ok, wasConst = s.Assign("missing", &objects.Number{Value: 2})
	assert.False(t, ok)
	assert.False(t, wasConst)
}

func TestAssignUpdatesInParentScope(t *testing.T) {
	parent := New(nil)
	parent.DeclareHere("x", &objects.Number{Value: 1}, false)
	child := New(parent)

	ok, wasConst := child.Assign("x", &objects.Number{Value: 2})
	assert.True(t, ok)
	assert.False(t, wasConst)

	v, _ := parent.Lookup("x")
	assert.Equal(t, float64(2), v.(*objects.Number).Value)
}

func TestDeclareVarTargetsNearestFunctionScope(t *testing.T) {
	fnScope := NewFunctionScope(nil)
	block := New(fnScope)

	assert.True(t, block.DeclareVar("v", &objects.Number{Value: 1}))

	// the binding lives in fnScope, not block, so a sibling block sees it
	sibling := New(fnScope)
	v, ok := sibling.Lookup("v")
	assert.True(t, ok)
	assert.Equal(t, float64(1), v.(*objects.Number).Value)
}

func TestIsConst(t *testing.T) {
	s := New(nil)
	s.DeclareHere("c", &objects.Number{Value: 1}, true)
	s.DeclareHere("l", &objects.Number{Value: 1}, false)
	assert.True(t, s.IsConst("c"))
	assert.False(t, s.IsConst("l"))
	assert.False(t, s.IsConst("missing"))
}
