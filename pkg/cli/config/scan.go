package config

import (
	"os"

	"github.com/m-mizutani/farrier/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// Scan holds file scanning configuration
type Scan struct {
	MarkersPath string
}

// Flags returns CLI flags for scan configuration
func (c *Scan) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "markers",
			Usage:       "TOML file with additional ecosystem marker sets",
			Destination: &c.MarkersPath,
			Sources:     cli.EnvVars("FARRIER_MARKERS"),
		},
	}
}

// MarkerSets loads the additional marker sets. Returns nil when no marker
// file is configured.
func (c *Scan) MarkerSets() ([]model.MarkerSet, error) {
	if c.MarkersPath == "" {
		return nil, nil
	}

	raw, err := os.ReadFile(c.MarkersPath)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read marker file", goerr.V("path", c.MarkersPath))
	}

	var doc struct {
		Markers []model.MarkerSet `toml:"markers"`
	}
	if err := toml.Unmarshal(raw, &doc); err != nil {
		return nil, goerr.Wrap(err, "failed to parse marker file", goerr.V("path", c.MarkersPath))
	}

	for _, set := range doc.Markers {
		if set.Ecosystem == "" || len(set.Markers) == 0 {
			return nil, goerr.New("marker set needs an ecosystem name and at least one marker",
				goerr.V("path", c.MarkersPath),
			)
		}
	}
	return doc.Markers, nil
}
