package render

import (
	"bytes"
	"os/exec"
	"strconv"
	"strings"

	errs "github.com/matzehuels/gridlock/pkg/errors"
)

// PDFConverter is the external program that turns SVG into PDF. It reads the
// document on stdin and writes the result to stdout.
var PDFConverter = "rsvg-convert"

// HasPDFConverter reports whether PDFConverter is on PATH.
func HasPDFConverter() bool {
	_, err := exec.LookPath(PDFConverter)
	return err == nil
}

// ToPDF converts an SVG document of width x height pixels to a single-page PDF
// of the same size.
func ToPDF(svg []byte, width, height int) ([]byte, error) {
	if !HasPDFConverter() {
		return nil, errs.New(errs.ErrCodeUnsupported,
			"pdf export needs %s (brew install librsvg, apt install librsvg2-bin)", PDFConverter)
	}

	cmd := exec.Command(PDFConverter,
		"-f", "pdf",
		"-w", strconv.Itoa(width),
		"-h", strconv.Itoa(height),
	)
	cmd.Stdin = bytes.NewReader(svg)

	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "%s: %s", PDFConverter, strings.TrimSpace(stderr.String()))
	}
	return out.Bytes(), nil
}
