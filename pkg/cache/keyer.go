package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// TTLArtifact is the default lifetime of a rendered artifact.
const TTLArtifact = 7 * 24 * time.Hour

// ArtifactKeyOpts are the output options that change an artifact's bytes.
type ArtifactKeyOpts struct {
	Format string
	Width  int
	Height int
	Style  string // hash of the presentation style
	Mode   string // hash of the mode's family, lattice and drawing properties
}

// Keyer derives cache keys.
type Keyer interface {
	// ArtifactKey returns the key for an artwork rendered with opts.
	// docHash identifies the artwork description.
	ArtifactKey(docHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer produces "artifact:<format>:<sha256>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(docHash string, opts ArtifactKeyOpts) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%dx%d|%s|%s", docHash, opts.Width, opts.Height, opts.Style, opts.Mode)
	return "artifact:" + opts.Format + ":" + hex.EncodeToString(h.Sum(nil))
}

// Hash returns the hex SHA-256 digest of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
