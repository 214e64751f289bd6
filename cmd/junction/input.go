package main

import (
	"io"
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/junction/point"
)

// readPoints parses the file named by args[0], or stdin when there is no
// argument or it is "-".
func readPoints(cmd *cobra.Command, fs afero.Fs, args []string) ([]point.Point, error) {
	var (
		r    io.Reader
		name = "-"
	)
	if len(args) > 0 {
		name = args[0]
	}
	if name == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := fs.Open(name)
		if err != nil {
			return nil, errors.Wrapf(err, "open %s", name)
		}
		defer f.Close()
		r = f
	}

	pts, err := point.Parse(r)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", name)
	}
	slog.Debug("points loaded", "source", name, "count", len(pts))

	return pts, nil
}
