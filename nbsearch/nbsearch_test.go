package nbsearch

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	v3 "github.com/rmera/polarcontacts/v3"
)

func bruteForce(coords *v3.Matrix, cutoff float64) []Pair {
	var ret []Pair
	n := coords.NVecs()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if d := distance(coords.Vec(i), coords.Vec(j)); d <= cutoff {
				ret = append(ret, Pair{i, j, d})
			}
		}
	}
	return ret
}

func randomCloud(n int, side float64, seed int64) *v3.Matrix {
	r := rand.New(rand.NewSource(seed))
	data := make([]float64, 3*n)
	for i := range data {
		data[i] = r.Float64()*side - side/2
	}
	m, _ := v3.NewMatrix(data)
	return m
}

func samePairs(Te *testing.T, name string, got, want []Pair) {
	Te.Helper()
	if len(got) != len(want) {
		Te.Fatalf("%s: got %d pairs, expected %d", name, len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			Te.Fatalf("%s: pair %d is %v, expected %v", name, i, got[i], want[i])
		}
	}
}

func TestBackendsAgree(Te *testing.T) {
	for seed, n := range []int{2, 10, 300, 1200} {
		coords := randomCloud(n, 25, int64(seed))
		want := bruteForce(coords, 3.5)
		for _, opts := range map[string][]Option{
			"grid":      nil,
			"kdtree":    {WithBackend(KDTree)},
			"grid-4":    {Workers(4)},
			"grid-1000": {Workers(1000)},
		} {
			got, err := Search(coords, nil, 3.5, opts...)
			if err != nil {
				Te.Fatal(err)
			}
			samePairs(Te, "random cloud", got, want)
		}
	}
}

func TestSubset(Te *testing.T) {
	coords := randomCloud(200, 15, 7)
	idx := []int{5, 17, 3, 120, 64, 99, 150, 151, 152, 0}
	sub := v3.Zeros(len(idx))
	sub.SomeVecs(coords, idx)
	want := bruteForce(sub, 4)
	for _, b := range []Backend{Grid, KDTree} {
		got, err := Search(coords, idx, 4, WithBackend(b))
		if err != nil {
			Te.Fatal(err)
		}
		samePairs(Te, b.String(), got, want)
	}
}

func TestCutoffBoundary(Te *testing.T) {
	coords, _ := v3.NewMatrix([]float64{0, 0, 0, 3.5, 0, 0})
	for _, b := range []Backend{Grid, KDTree} {
		got, err := Search(coords, nil, 3.5, WithBackend(b))
		if err != nil {
			Te.Fatal(err)
		}
		if len(got) != 1 || got[0].Dist != 3.5 {
			Te.Errorf("%v: the pair at exactly the cutoff should be found, got %v", b, got)
		}
	}
	far, _ := v3.NewMatrix([]float64{0, 0, 0, 3.500001, 0, 0})
	for _, b := range []Backend{Grid, KDTree} {
		got, err := Search(far, nil, 3.5, WithBackend(b))
		if err != nil {
			Te.Fatal(err)
		}
		if len(got) != 0 {
			Te.Errorf("%v: pair beyond the cutoff found: %v", b, got)
		}
	}
}

// Points read from a PDB file, 3.5 A apart along each axis, so every
// neighbor pair is at the cutoff and on a cell boundary.
func pdbLattice(a float64, n int) *v3.Matrix {
	round := func(x float64) float64 { return math.Round(x*1000) / 1000 }
	var data []float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				data = append(data, round(a+3.5*float64(i)), round(2*a+3.5*float64(j)), round(3*a+3.5*float64(k)))
			}
		}
	}
	m, _ := v3.NewMatrix(data)
	return m
}

func TestCellBoundaries(Te *testing.T) {
	row, _ := v3.NewMatrix([]float64{0.504, 0, 0, 4.004, 0, 0, 7.504, 0, 0})
	got, err := Search(row, nil, 3.5)
	if err != nil {
		Te.Fatal(err)
	}
	samePairs(Te, "row", got, bruteForce(row, 3.5))
	if len(got) == 0 || got[0].I != 0 || got[0].J != 1 {
		Te.Errorf("The pair 0-1 at %v A should be found, got %v", distance(row.Vec(0), row.Vec(1)), got)
	}
	for _, a := range []float64{0.504, 0.507, 0.515, 1.333, 12.345, -7.777} {
		coords := pdbLattice(a, 5)
		want := bruteForce(coords, 3.5)
		for _, w := range []int{1, 3} {
			got, err := Search(coords, nil, 3.5, Workers(w))
			if err != nil {
				Te.Fatal(err)
			}
			samePairs(Te, fmt.Sprintf("lattice at %v, %d workers", a, w), got, want)
		}
	}
}

func TestSearchErrors(Te *testing.T) {
	coords := randomCloud(5, 5, 1)
	for _, c := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if _, err := Search(coords, nil, c); err == nil {
			Te.Errorf("cutoff %v should be rejected", c)
		}
	}
	if _, err := Search(coords, []int{0, 9}, 3); err == nil {
		Te.Error("out of range index should be rejected")
	}
	coords.Set(2, 1, math.NaN())
	if _, err := Search(coords, nil, 3); err == nil {
		Te.Error("non-finite coordinates should be rejected")
	}
	if _, err := Search(coords, []int{0, 1}, 3); err != nil {
		Te.Errorf("the non-finite point is not in the list: %v", err)
	}
	if _, err := ParseBackend("octree"); err == nil {
		Te.Error("unknown backend should be rejected")
	}
}

func TestFewPoints(Te *testing.T) {
	coords := randomCloud(3, 1, 2)
	got, err := Search(coords, []int{1}, 3)
	if err != nil || len(got) != 0 {
		Te.Errorf("a single point has no pairs: %v %v", got, err)
	}
	got, err = Search(coords, []int{}, 3)
	if err != nil || len(got) != 0 {
		Te.Errorf("an empty list has no pairs: %v %v", got, err)
	}
}
