package main

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/junction/cluster"
)

func NewBoundedCmd(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "bounded [file]"
	cmd.Aliases = []string{"part1", "circuits"}
	cmd.Short = "Merge the closest pairs under a budget and multiply the largest circuit sizes"
	cmd.Args = cobra.MaximumNArgs(1)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runBounded(cmd, v, fs, args)
	}

	setBoundedFlags(cmd)
	cmd.Flags().String("format", "plain", formatUsage)

	return cmd
}

// setBoundedFlags is shared with the components command.
func setBoundedFlags(cmd *cobra.Command) {
	cmd.Flags().Int("budget", cluster.DefaultBudget, "The merge `budget` (use 10 for the puzzle sample)")
	cmd.Flags().String("count", cluster.CountMerges.String(), "What the budget counts {merges|pairs}")
	cmd.Flags().Int("top", cluster.DefaultTopK, "How many of the largest circuits to multiply")
}

func boundedOptionsFromViper(v *viper.Viper) ([]cluster.Option, error) {
	mode, err := cluster.ParseBudgetMode(v.GetString("count"))
	if err != nil {
		return nil, err
	}
	return []cluster.Option{
		cluster.WithBudget(v.GetInt("budget")),
		cluster.WithBudgetMode(mode),
		cluster.WithTopK(v.GetInt("top")),
		cluster.WithLogger(slog.Default()),
	}, nil
}

type boundedDoc struct {
	Policy   cluster.Policy `json:"policy" yaml:"policy"`
	Budget   int            `json:"budget" yaml:"budget"`
	Count    string         `json:"count" yaml:"count"`
	Top      int            `json:"top" yaml:"top"`
	Product  uint64         `json:"product" yaml:"product"`
	Sizes    []int          `json:"sizes" yaml:"sizes"`
	Merges   int            `json:"merges" yaml:"merges"`
	Consumed int            `json:"consumed" yaml:"consumed"`
}

func runBounded(cmd *cobra.Command, v *viper.Viper, fs afero.Fs, args []string) error {
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

	res, err := cluster.Bounded(pts, opts...)
	if err != nil {
		return err
	}

	top := v.GetInt("top")
	doc := boundedDoc{
		Policy:   cluster.PolicyBounded,
		Budget:   v.GetInt("budget"),
		Count:    v.GetString("count"),
		Top:      top,
		Product:  res.Product,
		Sizes:    res.Sizes,
		Merges:   res.Merges,
		Consumed: res.Consumed,
	}
	topSizes := make([]string, 0, top)
	for _, s := range res.Sizes[:top] {
		topSizes = append(topSizes, strconv.Itoa(s))
	}

	return render(cmd.OutOrStdout(), format, report{
		answer: strconv.FormatUint(res.Product, 10),
		doc:    doc,
		header: table.Row{"Product", "Largest", "Circuits", "Merges", "Consumed"},
		rows:   []table.Row{{res.Product, strings.Join(topSizes, "×"), len(res.Sizes), res.Merges, res.Consumed}},
	})
}
