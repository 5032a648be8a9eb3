package nset

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestEmptySet(t *testing.T) {
	var s Set
	if !s.IsEmpty() || s.Size() != 0 {
		t.Errorf("expected zero set to be empty, has size %d", s.Size())
	}
	if s.String() != "{}" {
		t.Errorf("expected zero set to render as {}, is %q", s.String())
	}
	var nilset *Set
	if !nilset.IsEmpty() || nilset.String() != "{}" || !nilset.Equals(&s) {
		t.Error("expected nil set to behave like the empty set")
	}
}

func TestInsertIsIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nset")
	defer teardown()
	//
	s := New()
	if !s.Insert(Int(1)) {
		t.Error("expected first insert to change the set")
	}
	if s.Insert(Int(1)) {
		t.Error("expected second insert of equal element to be rejected")
	}
	if s.Size() != 1 || !s.Contains(Int(1)) {
		t.Errorf("expected {1}, have %s", s)
	}
	s.Insert(Nested(New(Int(1), Int(2))))
	if s.Insert(Nested(New(Int(2), Int(1)))) {
		t.Error("expected structurally equal nested set to be rejected")
	}
	if s.Size() != 2 {
		t.Errorf("expected size 2, have %s", s)
	}
}

func TestInsertKeepsCanonicalOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nset")
	defer teardown()
	//
	a := New(Text("b"), Int(3), Nested(New()), Int(-1), Text("a"))
	b := New(Int(-1), Nested(New()), Text("a"), Int(3), Text("b"))
	if a.String() != `{-1, 3, "a", "b", {}}` {
		t.Errorf("unexpected canonical order %s", a)
	}
	if a.String() != b.String() || !a.Equals(b) {
		t.Logf("a = %s", a)
		t.Logf("b = %s", b)
		t.Error("expected sets built in different order to be identical")
	}
}

func TestRemove(t *testing.T) {
	s := New(Int(1), Text("x"), Nested(New(Int(1))))
	if !s.Remove(Nested(New(Int(1)))) {
		t.Error("expected removal of nested set to succeed")
	}
	if s.Remove(Int(2)) {
		t.Error("expected removal of absent element to report no change")
	}
	if s.String() != `{1, "x"}` {
		t.Errorf("expected {1, \"x\"}, have %s", s)
	}
}

func TestCopySharesNestedSets(t *testing.T) {
	inner := New(Int(1))
	s := New(Nested(inner), Int(2))
	cp := s.Copy()
	cp.Insert(Int(3))
	if s.Size() != 2 || cp.Size() != 3 {
		t.Errorf("expected copy to be independent: s = %s, copy = %s", s, cp)
	}
	nested, _ := cp.At(2).AsSet() // {2, 3, {1}}
	if nested != inner {
		t.Error("expected nested set to be shared between original and copy")
	}
	if cp.IsFrozen() {
		t.Error("expected copy to be modifiable")
	}
}

func TestNestedSetIsFrozen(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nset")
	defer teardown()
	//
	inner := New(Int(1))
	outer := New(Nested(inner))
	assert.True(t, inner.IsFrozen())
	assert.False(t, outer.IsFrozen())
	assert.Panics(t, func() { inner.Insert(Int(2)) })
	assert.Panics(t, func() { inner.Remove(Int(1)) })
	assert.Panics(t, func() { inner.UnionWith(New(Int(5))) })
	assert.Equal(t, "{1}", inner.String(), "frozen set must not change")
	m := inner.Copy()
	assert.True(t, m.Insert(Int(2)))
}

func TestSetCannotContainItself(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nset")
	defer teardown()
	//
	s := New(Int(1))
	assert.Panics(t, func() { s.Insert(Nested(s)) }, "direct self-containment")
	t2 := New()
	u := New(Nested(t2))
	assert.Panics(t, func() { t2.Insert(Nested(u)) }, "transitive self-containment")
	assert.Equal(t, 1, s.Size())
}

func TestAtAndValues(t *testing.T) {
	s := MustParse(`{3, 1, "z"}`)
	if s.At(0).String() != "1" || s.At(2).String() != `"z"` {
		t.Errorf("unexpected elements at 0 and 2: %s", s)
	}
	vals := s.Values()
	vals[0] = Int(100)
	if !s.Contains(Int(1)) {
		t.Error("expected Values() to return a copy")
	}
	count := 0
	s.Each(func(Value) bool {
		count++
		return count < 2
	})
	if count != 2 {
		t.Errorf("expected Each to stop after 2 elements, visited %d", count)
	}
}

func TestDepthAndWalk(t *testing.T) {
	s := MustParse("{1, {2, {}}, {}}")
	if d := s.Depth(); d != 3 {
		t.Errorf("expected depth 3, is %d", d)
	}
	if d := New().Depth(); d != 1 {
		t.Errorf("expected depth of {} to be 1, is %d", d)
	}
	var visited []string
	s.Walk(func(set *Set, level int) bool {
		visited = append(visited, set.String())
		return level < 2
	})
	// level-2 sets are visited, but not descended into
	if len(visited) != 3 {
		t.Errorf("expected 3 visited sets, have %v", visited)
	}
}

func TestTextMarshaling(t *testing.T) {
	s := MustParse(`{"b", 2, {1}}`)
	text, err := s.MarshalText()
	assert.NoError(t, err)
	var back Set
	assert.NoError(t, back.UnmarshalText(text))
	assert.True(t, back.Equals(s))
	assert.Error(t, back.UnmarshalText([]byte("{1,")))
}
