package nset

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestValueKinds(t *testing.T) {
	if !Int(7).IsNumber() || Int(7).IsText() || Int(7).IsSet() {
		t.Error("expected Int(7) to be a number only")
	}
	if !Text("x").IsText() || Text("x").IsNumber() {
		t.Error("expected Text(x) to be a text only")
	}
	if !Nested(New()).IsSet() || Nested(New()).IsText() {
		t.Error("expected Nested({}) to be a set only")
	}
	var zero Value
	if n, ok := zero.AsInt(); !ok || n != 0 {
		t.Errorf("expected zero value to be integer 0, is %v", zero)
	}
	if Nested(nil).String() != "{}" {
		t.Errorf("expected Nested(nil) to be the empty set, is %s", Nested(nil))
	}
}

func TestValueEquals(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nset")
	defer teardown()
	//
	if !Int(-3).Equals(Int(-3)) || Int(3).Equals(Int(-3)) {
		t.Error("integer equality broken")
	}
	if !Text("a").Equals(Text("a")) || Text("a").Equals(Text("b")) {
		t.Error("text equality broken")
	}
	if Int(1).Equals(Text("1")) {
		t.Error("expected values of different kinds to be unequal")
	}
	a := Nested(New(Int(1), Text("x")))
	b := Nested(New(Text("x"), Int(1)))
	if !a.Equals(b) {
		t.Logf("a = %s, b = %s", a, b)
		t.Error("expected nested sets to be equal regardless of insertion order")
	}
	if a.Equals(Nested(New(Int(1)))) {
		t.Error("expected nested sets of different size to be unequal")
	}
}

func TestValueRender(t *testing.T) {
	for _, c := range []struct {
		v    Value
		text string
	}{
		{Int(42), "42"},
		{Int(-17), "-17"},
		{Text("hello"), `"hello"`},
		{Text(""), `""`},
		{Nested(New()), "{}"},
		{Nested(New(Int(2), Nested(New()))), "{2, {}}"},
	} {
		if c.v.String() != c.text {
			t.Errorf("expected %q, rendered %q", c.text, c.v.String())
		}
	}
}

func TestValueMatch(t *testing.T) {
	var n int64
	var s string
	var set *Set
	values := []Value{Int(5), Text("five"), Nested(New(Int(5)))}
	kinds := make([]string, 0, 3)
	for _, v := range values {
		switch m := v.Match(); m {
		case m.Int(&n):
			kinds = append(kinds, "int")
		case m.Text(&s):
			kinds = append(kinds, "text")
		case m.Set(&set):
			kinds = append(kinds, "set")
		default:
			t.Errorf("no case matched for %v", v)
		}
	}
	if len(kinds) != 3 || kinds[0] != "int" || kinds[1] != "text" || kinds[2] != "set" {
		t.Errorf("expected int, text, set; matched %v", kinds)
	}
	if n != 5 || s != "five" || set == nil || set.Size() != 1 {
		t.Errorf("payloads not extracted: n=%d, s=%q, set=%v", n, s, set)
	}
}

func TestKindOrder(t *testing.T) {
	if !(IntegerKind < TextKind && TextKind < SetKind) {
		t.Error("expected kinds ordered integer < text < set")
	}
	if SetKind.String() != "set" {
		t.Errorf("unexpected kind name %q", SetKind)
	}
}
