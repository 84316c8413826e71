package field

import "testing"

func TestExtensionArithmetic(t *testing.T) {
	a := Degree2{New(3), New(5)}
	b := Degree2{New(11), New(13)}

	t.Run("add_sub_identity", func(t *testing.T) {
		if got := a.Add(b).Sub(b); !got.Equal(a) {
			t.Fatalf("(a+b)-b = %v, want %v", got, a)
		}
	})

	t.Run("mul_by_one", func(t *testing.T) {
		if got := a.Mul(OneExt); !got.Equal(a) {
			t.Fatalf("a*1 = %v, want %v", got, a)
		}
	})

	t.Run("square_matches_mul", func(t *testing.T) {
		if got, want := a.Square(), a.Mul(a); !got.Equal(want) {
			t.Fatalf("a.Square() = %v, want %v", got, want)
		}
	})

	t.Run("embed_base", func(t *testing.T) {
		x := FromBase(New(99))
		if !x[0].Equal(New(99)) || !x[1].Equal(Zero) {
			t.Fatalf("FromBase(99) = %v", x)
		}
	})
}

func TestFlattenUnflattenRoundTrip(t *testing.T) {
	xs := []Degree2{{New(1), New(2)}, {New(3), New(4)}, {New(5), New(6)}}
	flat := Flatten(xs)
	if len(flat) != len(xs)*2 {
		t.Fatalf("len(flat) = %d, want %d", len(flat), len(xs)*2)
	}
	back := Unflatten(flat)
	if len(back) != len(xs) {
		t.Fatalf("len(back) = %d, want %d", len(back), len(xs))
	}
	for i := range xs {
		if !back[i].Equal(xs[i]) {
			t.Fatalf("back[%d] = %v, want %v", i, back[i], xs[i])
		}
	}
}
