// Package tikz loads CircuitikZ diagram sources and hands them to the
// external LaTeX toolchain. A .tikz asset contains only the \draw commands
// for the circuit; the fixed prologue and epilogue importing tikz and
// circuitikz are added here. Asset problems are fatal: a missing or
// uncompilable diagram aborts the render, there is no retry.
package tikz

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrLoad wraps any failure to read a diagram asset.
var ErrLoad = errors.New("tikz: diagram load failed")

const prologue = `\documentclass[crop,tikz]{standalone}
\usepackage{tikz}
\usepackage[american]{circuitikz}
\begin{document}
\begin{circuitikz}
`

const epilogue = `\end{circuitikz}
\end{document}
`

// Diagram is a loaded CircuitikZ source ready for compilation.
type Diagram struct {
	Path   string
	Source string
}

// FromFile reads a .tikz file containing the circuit's draw commands. The
// file must not include the circuitikz environment; that is added by
// Document.
func FromFile(path string) (*Diagram, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoad, path, err)
	}
	src := strings.TrimSpace(string(data))
	if src == "" {
		return nil, fmt.Errorf("%w: %s: empty diagram", ErrLoad, path)
	}
	return &Diagram{Path: path, Source: src}, nil
}

// Document returns the complete standalone LaTeX document for the diagram.
func (d *Diagram) Document() string {
	return prologue + d.Source + "\n" + epilogue
}

// Compile writes the document and runs the external latex + dvisvgm
// toolchain, returning the path of the produced SVG. Any toolchain failure
// is fatal to the caller.
func (d *Diagram) Compile(ctx context.Context, outDir string) (string, error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", fmt.Errorf("tikz: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(d.Path), filepath.Ext(d.Path))
	texPath := filepath.Join(outDir, base+".tex")
	if err := os.WriteFile(texPath, []byte(d.Document()), 0644); err != nil {
		return "", fmt.Errorf("tikz: %w", err)
	}

	latex := exec.CommandContext(ctx, "latex",
		"-interaction=nonstopmode", "-halt-on-error",
		"-output-directory", outDir, texPath)
	if out, err := latex.CombinedOutput(); err != nil {
		return "", fmt.Errorf("tikz: latex failed for %s: %v\n%s", d.Path, err, tail(out))
	}

	dviPath := filepath.Join(outDir, base+".dvi")
	svgPath := filepath.Join(outDir, base+".svg")
	dvisvgm := exec.CommandContext(ctx, "dvisvgm", "--no-fonts", "-o", svgPath, dviPath)
	if out, err := dvisvgm.CombinedOutput(); err != nil {
		return "", fmt.Errorf("tikz: dvisvgm failed for %s: %v\n%s", d.Path, err, tail(out))
	}
	return svgPath, nil
}

// tail keeps the last few lines of toolchain output for the error message.
func tail(out []byte) string {
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) > 10 {
		lines = lines[len(lines)-10:]
	}
	return strings.Join(lines, "\n")
}
