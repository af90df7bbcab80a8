/*
 * histo.go, part of polarcontacts.
 *
 * Copyright 2025 Raul Mera A. (rmeraaatacademicosdotutadotcl)
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// Package histo implements simple 1D histograms with arbitrary bin dividers.
package histo

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Data is a histogram. Bin i counts the values v with
// dividers[i] <= v < dividers[i+1]. Values outside the dividers are not counted.
type Data struct {
	normalized bool
	total      int
	dividers   []float64
	histo      []float64
}

// Uniform returns dividers for bins of the given width covering
// [lo, hi]. The last divider is strictly larger than hi.
func Uniform(lo, hi, width float64) []float64 {
	if width <= 0 || hi < lo {
		panic(fmt.Sprintf("histo.Uniform: Bad range [%v,%v] or width %v", lo, hi, width))
	}
	start := math.Floor(lo/width) * width
	ret := []float64{start}
	for i := 1; ret[len(ret)-1] <= hi; i++ {
		ret = append(ret, start+float64(i)*width)
	}
	if len(ret) < 2 {
		ret = append(ret, start+width)
	}
	return ret
}

// NewData returns a new histogram from the dividers and rawdata given.
// rawdata can be nil. In that case, an empty histogram is created.
// Neither slice is modified or kept.
func NewData(dividers []float64, rawdata []float64) *Data {
	if len(dividers) < 2 || !sort.Float64sAreSorted(dividers) {
		panic("histo.NewData: At least 2 dividers in increasing order are needed")
	}
	d := new(Data)
	d.dividers = make([]float64, len(dividers))
	copy(d.dividers, dividers)
	d.histo = make([]float64, len(dividers)-1)
	if rawdata != nil {
		d.ReHisto(rawdata)
	}
	return d
}

// MarshalJSON encodes the histogram.
func (D *Data) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Normalized bool      `json:"normalized"`
		Total      int       `json:"total"`
		Dividers   []float64 `json:"dividers"`
		Histo      []float64 `json:"histo"`
	}{
		Normalized: D.normalized,
		Total:      D.total,
		Dividers:   D.dividers,
		Histo:      D.histo,
	})
}

// Normalize divides each bin by the number of values counted, so the bins
// add up to 1. It does nothing on an empty or already normalized histogram.
func (D *Data) Normalize() {
	if D.total <= 0 || D.normalized {
		return
	}
	D.normalized = true
	floats.Scale(1/float64(D.total), D.histo)
}

// Dividers returns a copy of the dividers of the histogram
func (D *Data) Dividers() []float64 {
	return append([]float64(nil), D.dividers...)
}

// View returns the bins. Changing them changes the histogram.
func (D *Data) View() []float64 {
	return D.histo
}

// ReHisto replaces the content of the histogram with that of rawdata.
// The histogram is left un-normalized.
func (D *Data) ReHisto(rawdata []float64) {
	data := append([]float64(nil), rawdata...)
	sort.Float64s(data)
	//stat.Histogram just panics instead of omitting the values that are off limits
	//so we remove them here before the call.
	maxi := sort.SearchFloat64s(data, D.dividers[len(D.dividers)-1])
	mini := sort.SearchFloat64s(data, D.dividers[0])
	data = data[mini:maxi]
	D.total = len(data)
	D.normalized = false
	D.histo = stat.Histogram(D.histo, D.dividers, data, nil)
}
