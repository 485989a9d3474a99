package vec

import (
	"fmt"
	"testing"
)

func ExampleVec_Norm() {
	fmt.Println(Vec{1, 2, 3, 4}.Norm(2))
	fmt.Println(Vec{-1, 2, -3, 4}.Norm(1))
	fmt.Println(Vec{-1, 2, -3, 4}.Norm(3))

	// Output:
	// 5.477225575051661
	// 10
	// 4.641588833612779
}

func ExampleVec_Sub() {
	pos := Vec{0.9, 0.4}
	best := Vec{0.2, 0.1}
	fmt.Println(pos.Sub(best))

	// Output:
	// [0.7 0.30000000000000004]
}

func TestAddBy(t *testing.T) {
	v := Vec{1, 2, 3}
	v.AddBy(Vec{1, 1, 1})
	want := Vec{2, 3, 4}
	for i := range want {
		if v[i] != want[i] {
			t.Errorf("AddBy = %v, want %v", v, want)
			break
		}
	}
}

func TestCopy_DoesNotAliasSource(t *testing.T) {
	v := Vec{1, 2, 3}
	c := v.Copy()
	c[0] = 99
	if v[0] == 99 {
		t.Error("Copy aliases the source vector's backing array")
	}
}

func TestAssertSameLen_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on mismatched lengths")
		}
	}()
	Vec{1, 2}.AddBy(Vec{1, 2, 3})
}
