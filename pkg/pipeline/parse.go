package pipeline

import (
	"reflect"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gridlock/pkg/core/artwork"
	pkgio "github.com/matzehuels/gridlock/pkg/io"
)

// Build generates the snapshot described by settings.
func Build(settings artwork.Settings, logger *log.Logger) (artwork.Snapshot, error) {
	art, err := artwork.New(settings, logger)
	if err != nil {
		return artwork.Snapshot{}, err
	}
	return art.Current(), nil
}

// Replay regenerates the artwork recorded in the JSON description at path.
// Registry, themes and source come from base. A warning is logged when the
// regenerated shapes differ from the recorded ones, which happens when the
// description was written by a build with different modes or themes.
func Replay(path string, base artwork.Settings, logger *log.Logger) (artwork.Snapshot, error) {
	doc, err := pkgio.ImportJSON(path)
	if err != nil {
		return artwork.Snapshot{}, err
	}

	settings := doc.Settings()
	settings.Registry = base.Registry
	settings.Themes = base.Themes
	settings.Source = base.Source

	snap, err := Build(settings, logger)
	if err != nil {
		return artwork.Snapshot{}, err
	}
	if c := doc.Signature.Color; c >= 0 && c < len(snap.Colors) {
		snap.SignatureColor = c
	}

	same := reflect.DeepEqual(snap.Pattern.Shapes, doc.Shapes) &&
		reflect.DeepEqual(snap.Colors.Hexes(), doc.Colors)
	if !same && logger != nil {
		logger.Warn("replayed artwork differs from description", "path", path, "seed", doc.Seed)
	}
	return snap, nil
}
