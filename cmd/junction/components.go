package main

import (
	"sort"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/junction/cluster"
	"github.com/katalvlaran/junction/point"
)

func NewComponentsCmd(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "components [file]"
	cmd.Aliases = []string{"circuit-list"}
	cmd.Short = "List every circuit left after the bounded merge"
	cmd.Args = cobra.MaximumNArgs(1)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runComponents(cmd, v, fs, args)
	}

	setBoundedFlags(cmd)
	cmd.Flags().Bool("singletons", false, "Also list circuits of a single box")
	cmd.Flags().String("format", "table", formatUsage)

	return cmd
}

type componentDoc struct {
	Size    int      `json:"size" yaml:"size"`
	Members []string `json:"members" yaml:"members"`
}

func runComponents(cmd *cobra.Command, v *viper.Viper, fs afero.Fs, args []string) error {
	format := v.GetString("format")
	if err := checkFormat(format); err != nil {
		return err
	}
	opts, err := boundedOptionsFromViper(v)
	if err != nil {
		return err
	}
	pts, err := readPoints(cmd, fs, args)
	if err != nil {
		return err
	}

	// The listing is useful even when too few circuits remain for a
	// product, so TopK is relaxed to 1.
	res, err := cluster.Bounded(pts, append(opts, cluster.WithTopK(1))...)
	if err != nil {
		return err
	}

	singletons := v.GetBool("singletons")
	docs := make([]componentDoc, 0, len(res.Groups))
	rows := make([]table.Row, 0, len(res.Groups))
	lines := make([]string, 0, len(res.Groups))
	for i, g := range res.Groups {
		if g.Cardinality() == 1 && !singletons {
			continue
		}
		members := describe(pts, g.ToSlice())
		docs = append(docs, componentDoc{Size: len(members), Members: members})
		rows = append(rows, table.Row{i + 1, len(members), strings.Join(members, " ")})
		lines = append(lines, strconv.Itoa(len(members))+" "+strings.Join(members, " "))
	}

	return render(cmd.OutOrStdout(), format, report{
		answer: strings.Join(lines, "\n"),
		doc:    docs,
		header: table.Row{"#", "Size", "Members"},
		rows:   rows,
	})
}

// describe sorts member indices and renders each as its coordinates.
func describe(pts []point.Point, idx []int) []string {
	sort.Ints(idx)
	out := make([]string, len(idx))
	for i, x := range idx {
		out[i] = pts[x].String()
	}
	return out
}
