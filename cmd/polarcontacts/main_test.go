package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func atomLine(serial int, name, res, chain string, resseq int, x, y, z float64) string {
	return fmt.Sprintf("%-6s%5d %-4s %3s %1s%4d    %8.3f%8.3f%8.3f%6.2f%6.2f\n",
		"ATOM", serial, name, res, chain, resseq, x, y, z, 1.0, 0.0)
}

type files struct {
	pdb, vdw, rlib, dir string
}

func fixtures(Te *testing.T) files {
	Te.Helper()
	dir := Te.TempDir()
	f := files{
		pdb:  filepath.Join(dir, "test.pdb"),
		vdw:  filepath.Join(dir, "vdwprm"),
		rlib: filepath.Join(dir, "aaLib.lib"),
		dir:  dir,
	}
	pdb := atomLine(1, "N", "SER", "A", 10, 0, 0, 0) +
		atomLine(2, "OG", "SER", "A", 10, 0, 4, 0) +
		atomLine(3, "O", "GLY", "A", 20, 2.8, 0, 0) +
		atomLine(4, "O", "HOH", "W", 30, 0, 7, 0) + "END\n"
	content := map[string]string{
		f.pdb:  pdb,
		f.vdw:  "# type eps sigma\nN 0.17 1.824\nO 0.21 1.6612\n",
		f.rlib: "SER N N -0.4157\nSER OG O -0.6546\nGLY O O -0.5679\nHOH O O -0.834\n",
	}
	for name, c := range content {
		if err := os.WriteFile(name, []byte(c), 0o644); err != nil {
			Te.Fatal(err)
		}
	}
	return f
}

func runArgs(args ...string) (int, string, string) {
	var out, errout bytes.Buffer
	code := run(args, &out, &errout)
	return code, out.String(), errout.String()
}

func TestRun(Te *testing.T) {
	f := fixtures(Te)
	code, out, logs := runArgs("-vdw", f.vdw, "-rlib", f.rlib, f.pdb)
	if code != 0 {
		Te.Fatalf("Exit code %d, log:\n%s", code, logs)
	}
	if !strings.HasPrefix(out, "Settings\n--------\npdb_path  : "+f.pdb+"\n") {
		Te.Errorf("Wrong settings block:\n%s", out)
	}
	for _, want := range []string{
		"SER A10.N      GLY A20.O       2.800 \n",
		"SER A10.OG     HOH W30.O       3.000 \n",
		"Residue interactions\n",
	} {
		if !strings.Contains(out, want) {
			Te.Errorf("Missing %q in output:\n%s", want, out)
		}
	}
	if !strings.Contains(logs, "2 atom types loaded") || !strings.Contains(logs, "4 amino acid atoms loaded") {
		Te.Errorf("Parameter counts not logged:\n%s", logs)
	}
	code, out, _ = runArgs("-vdw", f.vdw, "-rlib", f.rlib, "-nowats", "-summary", f.pdb)
	if code != 0 || strings.Contains(out, "HOH") || !strings.Contains(out, "Strongest pair:") {
		Te.Errorf("Wrong output with -nowats -summary (code %d):\n%s", code, out)
	}
}

func TestRunJSONAndPlot(Te *testing.T) {
	f := fixtures(Te)
	plot := filepath.Join(f.dir, "energies.png")
	code, out, logs := runArgs("-vdw", f.vdw, "-rlib", f.rlib, "-json", "-plot", plot, "-search", "kdtree", f.pdb)
	if code != 0 {
		Te.Fatalf("Exit code %d, log:\n%s", code, logs)
	}
	var rep map[string]any
	if err := json.Unmarshal([]byte(out), &rep); err != nil {
		Te.Fatalf("Output is not JSON: %v\n%s", err, out)
	}
	if c, ok := rep["contacts"].([]any); !ok || len(c) != 2 {
		Te.Errorf("Wrong contacts in %v", rep)
	}
	if fi, err := os.Stat(plot); err != nil || fi.Size() == 0 {
		Te.Errorf("Plot not written: %v", err)
	}
}

func TestConfigPrecedence(Te *testing.T) {
	f := fixtures(Te)
	cfg := filepath.Join(f.dir, "run.yaml")
	content := fmt.Sprintf("vdw: %s\nrlib: %s\nnowats: true\ncutoff: 2.9\n", f.vdw, f.rlib)
	if err := os.WriteFile(cfg, []byte(content), 0o644); err != nil {
		Te.Fatal(err)
	}
	code, out, logs := runArgs("-config", cfg, f.pdb)
	if code != 0 {
		Te.Fatalf("Exit code %d, log:\n%s", code, logs)
	}
	if !strings.Contains(out, "cutoff    : 2.9\n") || !strings.Contains(out, "nowats    : true\n") || strings.Contains(out, "HOH") {
		Te.Errorf("Run file not applied:\n%s", out)
	}
	code, out, _ = runArgs("-config", cfg, "-cutoff", "3.5", "-nowats=false", f.pdb)
	if code != 0 || !strings.Contains(out, "cutoff    : 3.5\n") || !strings.Contains(out, "HOH W30.O") {
		Te.Errorf("Flags did not override the run file (code %d):\n%s", code, out)
	}
}

func TestExitCodes(Te *testing.T) {
	f := fixtures(Te)
	missing := filepath.Join(f.dir, "nothere.pdb")
	badres := filepath.Join(f.dir, "bad.lib")
	if err := os.WriteFile(badres, []byte("SER N N\n"), 0o644); err != nil {
		Te.Fatal(err)
	}
	norlib := filepath.Join(f.dir, "short.lib")
	if err := os.WriteFile(norlib, []byte("SER N N -0.4157\n"), 0o644); err != nil {
		Te.Fatal(err)
	}
	tests := []struct {
		name string
		args []string
		code int
	}{
		{"no structure", []string{"-vdw", f.vdw, "-rlib", f.rlib}, 2},
		{"no vdw", []string{"-rlib", f.rlib, f.pdb}, 2},
		{"missing structure", []string{"-vdw", f.vdw, "-rlib", f.rlib, missing}, 2},
		{"bad library", []string{"-vdw", f.vdw, "-rlib", badres, f.pdb}, 2},
		{"bad flag", []string{"-nosuchflag", f.pdb}, 2},
		{"bad run file", []string{"-config", filepath.Join(f.dir, "none.toml"), f.pdb}, 2},
		{"bad option", []string{"-vdw", f.vdw, "-rlib", f.rlib, "-combine", "lorentz", f.pdb}, 1},
		{"bad cutoff", []string{"-vdw", f.vdw, "-rlib", f.rlib, "-cutoff", "1.5", f.pdb}, 1},
		{"missing parameters", []string{"-vdw", f.vdw, "-rlib", norlib, f.pdb}, 1},
		{"skip missing", []string{"-vdw", f.vdw, "-rlib", norlib, "-missing", "skip", f.pdb}, 0},
	}
	for _, t := range tests {
		code, _, logs := runArgs(t.args...)
		if code != t.code {
			Te.Errorf("%s: exit code %d, expected %d. Log:\n%s", t.name, code, t.code, logs)
		}
	}
}
