package sink

import (
	"bytes"

	"github.com/matzehuels/gridlock/pkg/core/render"
	pkgio "github.com/matzehuels/gridlock/pkg/io"
)

// RenderJSON writes the pattern description of f. The description is in
// preview coordinates regardless of the frame scale.
func RenderJSON(f render.Frame) ([]byte, error) {
	var buf bytes.Buffer
	if err := pkgio.WriteJSON(f.Snapshot, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
