package histo

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestHisto(Te *testing.T) {
	raw := []float64{1, 6, 3, 2, 4, 5, 7, 6, 3.5, 3, 5, 1, 1, 0, 0, 5, 8, 1, 2, 3, 44, 3, 7, 3, 1, 3, 5, 32, 1}
	d := NewData([]float64{0, 1, 2, 3, 4, 8}, raw)
	want := []float64{2, 6, 2, 7, 9}
	for i, v := range d.View() {
		if v != want[i] {
			Te.Errorf("Bin %d: got %v, expected %v", i, v, want[i])
		}
	}
	//8, 44 and 32 are off limits
	if d.total != 26 {
		Te.Errorf("Wrong total %d", d.total)
	}
	if raw[0] != 1 || raw[1] != 6 {
		Te.Error("Raw data modified")
	}
	d.Normalize()
	d.Normalize()
	sum := 0.0
	for _, v := range d.View() {
		sum += v
	}
	if sum < 1-1e-12 || sum > 1+1e-12 || !d.normalized {
		Te.Errorf("Normalized histogram sums %v", sum)
	}
	if v := d.View()[4]; v < 9.0/26-1e-12 || v > 9.0/26+1e-12 {
		Te.Errorf("Wrong normalized bin %v", v)
	}
	j, err := json.Marshal(d)
	if err != nil || !strings.Contains(string(j), `"normalized":true,"total":26`) {
		Te.Errorf("Bad JSON %s: %v", j, err)
	}
	empty := NewData([]float64{0, 1}, nil)
	empty.Normalize()
	if empty.normalized || empty.View()[0] != 0 {
		Te.Errorf("An empty histogram can't be normalized %v", empty.View())
	}
}

func TestUniform(Te *testing.T) {
	d := Uniform(2.8, 3.0, 0.25)
	if len(d) != 3 || d[0] != 2.75 || d[2] != 3.25 {
		Te.Errorf("Wrong dividers %v", d)
	}
	d = Uniform(3, 3, 0.5)
	if len(d) != 2 || d[0] != 3 || d[1] != 3.5 {
		Te.Errorf("Wrong dividers for a single value %v", d)
	}
	h := NewData(Uniform(2.8, 3.0, 0.25), []float64{2.8, 3.0})
	if h.View()[0] != 1 || h.View()[1] != 1 {
		Te.Errorf("Wrong bins %v", h.View())
	}
}
