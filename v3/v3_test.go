package v3

import (
	"errors"
	"math"
	"testing"
)

func TestNewMatrix(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9}
	A, err := NewMatrix(a)
	if err != nil {
		Te.Fatal(err)
	}
	if A.NVecs() != 3 || A.Len() != 3 {
		Te.Errorf("expected 3 vectors, got %d", A.NVecs())
	}
	View := A.VecView(1)
	View.Set(0, 0, 100)
	if A.At(1, 0) != 100 {
		Te.Errorf("changes in a view should be seen in the matrix: %v", A)
	}
	if _, err := NewMatrix([]float64{1, 2}); err == nil {
		Te.Error("a slice not divisible by 3 should give an error")
	}
	if _, err := NewMatrix(nil); err == nil {
		Te.Error("an empty slice should give an error")
	}
}

func TestSomeVecs(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18}
	A, err := NewMatrix(a)
	if err != nil {
		Te.Fatal(err)
	}
	B := Zeros(3)
	cind := []int{1, 3, 5}
	if err = B.SomeVecsSafe(A, cind); err != nil {
		Te.Fatal(err)
	}
	for i, v := range cind {
		if B.At(i, 0) != A.At(v, 0) {
			Te.Errorf("vector %d of the selection should be vector %d of the original", i, v)
		}
	}
	C := Zeros(2)
	err = C.SomeVecsSafe(A, cind)
	var e Error
	if !errors.As(err, &e) {
		Te.Errorf("expected a v3.Error for mismatched shapes, got %v", err)
	}
	err = B.SomeVecsSafe(A, []int{0, 1, 6})
	if err == nil {
		Te.Error("out of range index should give an error")
	}
}

func TestDistanceAndBounds(Te *testing.T) {
	A, err := NewMatrix([]float64{0, 0, 0, 3, 4, 0, -1, 2, 7})
	if err != nil {
		Te.Fatal(err)
	}
	if d := A.Distance(0, 1); d != 5 {
		Te.Errorf("distance should be 5, got %f", d)
	}
	if A.Distance(0, 1) != A.Distance(1, 0) {
		Te.Error("distance should be symmetric")
	}
	min, max := A.Bounds([]int{0, 1, 2})
	if min != [3]float64{-1, 0, 0} || max != [3]float64{3, 4, 7} {
		Te.Errorf("wrong bounds %v %v", min, max)
	}
	min, max = A.Bounds([]int{1})
	if min != max {
		Te.Errorf("bounds of a single vector should be the vector itself %v %v", min, max)
	}
}

func TestFinite(Te *testing.T) {
	A, err := NewMatrix([]float64{0, 0, 0, math.NaN(), 4, 0})
	if err != nil {
		Te.Fatal(err)
	}
	if err := A.Finite([]int{0}); err != nil {
		Te.Error(err)
	}
	if err := A.Finite(nil); err == nil {
		Te.Error("NaN coordinates should be reported")
	}
	if err := A.Finite([]int{2}); err == nil {
		Te.Error("out of range indexes should be reported")
	}
}
