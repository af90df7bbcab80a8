/*
 * plot.go, part of polarcontacts.
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

package report

import (
	"fmt"
	"image/color"
	"io"

	chem "github.com/rmera/polarcontacts"
	"github.com/rmera/polarcontacts/polar"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func energyPlot(mol *chem.Molecule, res *polar.Result) (*plot.Plot, error) {
	if len(res.Pairs) == 0 {
		return nil, fmt.Errorf("report: no residue pairs to plot")
	}
	p := plot.New()
	p.Title.Text = "Residue interactions"
	p.Title.Padding = 3 * vg.Millimeter
	p.Y.Label.Text = "Energy (kcal/mol)"
	elec := make(plotter.Values, len(res.Pairs))
	vdw := make(plotter.Values, len(res.Pairs))
	names := make([]string, len(res.Pairs))
	for i, v := range res.Pairs {
		elec[i], vdw[i] = v.Elec, v.VdW
		names[i] = mol.Residue(v.Res1).ID() + "-" + mol.Residue(v.Res2).ID()
	}
	w := vg.Points(8)
	be, err := plotter.NewBarChart(elec, w)
	if err != nil {
		return nil, err
	}
	be.Color = color.RGBA{R: 200, G: 40, B: 40, A: 255}
	be.Offset = -w / 2
	bv, err := plotter.NewBarChart(vdw, w)
	if err != nil {
		return nil, err
	}
	bv.Color = color.RGBA{R: 40, G: 80, B: 200, A: 255}
	bv.Offset = w / 2
	p.Add(plotter.NewGrid(), be, bv)
	p.Legend.Add("Electrostatic", be)
	p.Legend.Add("van der Waals", bv)
	p.Legend.Top = true
	p.NominalX(names...)
	p.X.Tick.Label.Rotation = 1.2
	p.X.Tick.Label.XAlign = -1
	return p, nil
}

func plotWidth(n int) vg.Length {
	w := vg.Length(n) * vg.Points(24)
	if w < 4*vg.Inch {
		w = 4 * vg.Inch
	}
	return w
}

// Plot writes a PNG bar chart with the electrostatic and van der Waals energies of each residue pair.
func Plot(w io.Writer, mol *chem.Molecule, res *polar.Result) error {
	p, err := energyPlot(mol, res)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(plotWidth(len(res.Pairs)), 4*vg.Inch, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// PlotFile is like Plot but saves to the file filename. The format is
// taken from the extension.
func PlotFile(filename string, mol *chem.Molecule, res *polar.Result) error {
	p, err := energyPlot(mol, res)
	if err != nil {
		return err
	}
	return p.Save(plotWidth(len(res.Pairs)), 4*vg.Inch, filename)
}
