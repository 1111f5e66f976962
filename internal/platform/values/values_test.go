package values

import (
	"math"
	"testing"
)

func TestIsEmpty(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  bool
	}{
		{name: "null", value: Null(), want: true},
		{name: "zero value", value: Value{}, want: true},
		{name: "empty string", value: String(""), want: true},
		{name: "string", value: String("irc"), want: false},
		{name: "zero number", value: Int(0), want: false},
		{name: "empty sequence", value: Sequence(), want: true},
		{name: "sequence", value: Sequence(Int(1)), want: false},
		{name: "empty mapping", value: Mapping(nil), want: true},
		{name: "mapping", value: Mapping(map[string]Value{"nick": String("textual")}), want: false},
		{name: "empty set", value: Set(), want: true},
		{name: "set", value: Set(String("#textual")), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsEmpty(tt.value); got != tt.want {
				t.Fatalf("IsEmpty() = %v, want %v", got, tt.want)
			}
			if got := IsNotEmpty(tt.value); got == tt.want {
				t.Fatalf("IsNotEmpty() = %v, want %v", got, !tt.want)
			}
		})
	}
}

func TestIsEmptyMatchesStringLength(t *testing.T) {
	for _, s := range []string{"", " ", "a", "héllo", "\x00"} {
		if got, want := IsEmpty(String(s)), len(s) == 0; got != want {
			t.Fatalf("IsEmpty(%q) = %v, want %v", s, got, want)
		}
	}
}

func TestAreEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{name: "both null", a: Null(), b: Null(), want: true},
		{name: "left null", a: Null(), b: String(""), want: false},
		{name: "right null", a: Int(0), b: Null(), want: false},
		{name: "strings", a: String("nick"), b: String("nick"), want: true},
		{name: "strings differ", a: String("nick"), b: String("Nick"), want: false},
		{name: "int and float", a: Int(2), b: Float(2.0), want: true},
		{name: "numbers differ", a: Int(2), b: Float(2.5), want: false},
		{name: "string vs number", a: String("2"), b: Int(2), want: false},
		{name: "sequences", a: Sequence(Int(1), String("a")), b: Sequence(Int(1), String("a")), want: true},
		{name: "sequence order", a: Sequence(Int(1), Int(2)), b: Sequence(Int(2), Int(1)), want: false},
		{
			name: "mappings",
			a:    Mapping(map[string]Value{"a": Int(1), "b": Sequence(String("x"))}),
			b:    Mapping(map[string]Value{"b": Sequence(String("x")), "a": Float(1)}),
			want: true,
		},
		{
			name: "mapping keys differ",
			a:    Mapping(map[string]Value{"a": Int(1)}),
			b:    Mapping(map[string]Value{"b": Int(1)}),
			want: false,
		},
		{name: "sets ignore order", a: Set(Int(1), Int(2)), b: Set(Int(2), Int(1)), want: true},
		{name: "sets differ", a: Set(Int(1), Int(2)), b: Set(Int(1), Int(3)), want: false},
		{name: "sequence vs set", a: Sequence(Int(1)), b: Set(Int(1)), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AreEqual(tt.a, tt.b); got != tt.want {
				t.Fatalf("AreEqual() = %v, want %v", got, tt.want)
			}
			if got := AreEqual(tt.b, tt.a); got != tt.want {
				t.Fatalf("AreEqual() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSetDeduplicatesMembers(t *testing.T) {
	set := Set(Int(1), Float(1), String("a"), String("a"))
	if set.Len() != 2 {
		t.Fatalf("set len = %d, want 2", set.Len())
	}
}

func TestOf(t *testing.T) {
	if !Of(nil).IsNull() {
		t.Fatal("expected nil to convert to null")
	}
	if got := Of(42); !AreEqual(got, Int(42)) {
		t.Fatalf("Of(42) kind = %s", got.Kind())
	}
	if got := Of(uint64(7)); !AreEqual(got, Int(7)) {
		t.Fatalf("Of(uint64) kind = %s", got.Kind())
	}
	nested := Of(map[string]any{
		"channels": []string{"#a", "#b"},
		"away":     nil,
	})
	if nested.Kind() != KindMapping || nested.Len() != 2 {
		t.Fatalf("unexpected nested conversion: kind=%s len=%d", nested.Kind(), nested.Len())
	}
	channels, ok := nested.Lookup("channels")
	if !ok || !AreEqual(channels, Sequence(String("#a"), String("#b"))) {
		t.Fatal("expected channels sequence")
	}
	away, ok := nested.Lookup("away")
	if !ok || !IsEmpty(away) {
		t.Fatal("expected away to be null")
	}
	if got := Of(struct{ N int }{3}); got.Kind() != KindString {
		t.Fatalf("expected unknown type to render as string, got %s", got.Kind())
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want Ordering
	}{
		{name: "numbers", a: Int(1), b: Float(1.5), want: Less},
		{name: "numbers equal", a: Float(3), b: Int(3), want: Equal},
		{name: "large int above float", a: Int(1<<53 + 1), b: Float(1 << 53), want: Greater},
		{name: "large int equals float", a: Int(1 << 53), b: Float(1 << 53), want: Equal},
		{name: "max int below 2^63", a: Int(math.MaxInt64), b: Float(1 << 63), want: Less},
		{name: "negative fraction", a: Int(-3), b: Float(-2.5), want: Less},
		{name: "negative truncation", a: Int(-2), b: Float(-2.5), want: Greater},
		{name: "strings", a: String("beta"), b: String("alpha"), want: Greater},
		{name: "null first", a: Null(), b: Int(-100), want: Less},
		{name: "number before string", a: Int(9), b: String("1"), want: Less},
		{name: "sequence prefix", a: Sequence(Int(1)), b: Sequence(Int(1), Int(0)), want: Less},
		{name: "sequence element", a: Sequence(Int(2)), b: Sequence(Int(1), Int(5)), want: Greater},
		{name: "sets unordered", a: Set(Int(2), Int(1)), b: Set(Int(1), Int(2)), want: Equal},
		{
			name: "mapping keys",
			a:    Mapping(map[string]Value{"a": Int(9)}),
			b:    Mapping(map[string]Value{"b": Int(0)}),
			want: Less,
		},
		{
			name: "mapping values",
			a:    Mapping(map[string]Value{"a": Int(2)}),
			b:    Mapping(map[string]Value{"a": Int(1)}),
			want: Greater,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.want {
				t.Fatalf("Compare() = %d, want %d", got, tt.want)
			}
			if got := DefaultComparator(tt.b, tt.a); got != -tt.want {
				t.Fatalf("DefaultComparator() reversed = %d, want %d", got, -tt.want)
			}
		})
	}
}

func TestLargeNumbersAgreeAcrossEqualityAndOrder(t *testing.T) {
	float := Float(1 << 53)
	below, above := Int(1<<53), Int(1<<53+1)

	if !AreEqual(below, float) {
		t.Fatal("expected 2^53 to equal its float")
	}
	if AreEqual(above, float) {
		t.Fatal("expected 2^53+1 to differ from float 2^53")
	}
	if Compare(below, above) != Less || Compare(float, above) != Less {
		t.Fatal("expected 2^53+1 to order after both representations of 2^53")
	}
}

func TestSortUsesDefaultComparator(t *testing.T) {
	items := []Value{String("b"), Int(3), Null(), String("a"), Float(0.5)}
	Sort(items, nil)

	want := []Value{Null(), Float(0.5), Int(3), String("a"), String("b")}
	for i := range want {
		if !AreEqual(items[i], want[i]) {
			t.Fatalf("items[%d] kind=%s, want kind=%s", i, items[i].Kind(), want[i].Kind())
		}
	}
}
