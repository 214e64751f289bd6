package main

import (
	"log/slog"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/junction/cluster"
)

func NewCriticalCmd(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "critical [file]"
	cmd.Aliases = []string{"part2", "connect"}
	cmd.Short = "Find the connection that joins every junction box into one circuit"
	cmd.Args = cobra.MaximumNArgs(1)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCritical(cmd, v, fs, args)
	}

	cmd.Flags().String("format", "plain", formatUsage)

	return cmd
}

type criticalDoc struct {
	Policy   cluster.Policy `json:"policy" yaml:"policy"`
	Answer   uint64         `json:"answer" yaml:"answer"`
	From     string         `json:"from" yaml:"from"`
	To       string         `json:"to" yaml:"to"`
	Distance uint64         `json:"distance" yaml:"distance"`
	Merges   int            `json:"merges" yaml:"merges"`
	Consumed int            `json:"consumed" yaml:"consumed"`
}

func runCritical(cmd *cobra.Command, v *viper.Viper, fs afero.Fs, args []string) error {
	format := v.GetString("format")
	if err := checkFormat(format); err != nil {
		return err
	}
	pts, err := readPoints(cmd, fs, args)
	if err != nil {
		return err
	}

	res, err := cluster.Critical(pts, cluster.WithLogger(slog.Default()))
	if err != nil {
		return err
	}

	e := res.Edge
	return render(cmd.OutOrStdout(), format, report{
		answer: strconv.FormatUint(res.Answer, 10),
		doc: criticalDoc{
			Policy:   cluster.PolicyCritical,
			Answer:   res.Answer,
			From:     e.A.String(),
			To:       e.B.String(),
			Distance: e.Distance,
			Merges:   res.Merges,
			Consumed: res.Consumed,
		},
		header: table.Row{"Answer", "From", "To", "Distance", "Merges", "Consumed"},
		rows:   []table.Row{{res.Answer, e.A.String(), e.B.String(), e.Distance, res.Merges, res.Consumed}},
	})
}
