package main

import (
	"github.com/haijima/cobrax"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewRootCmd(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := cobrax.NewRoot(v)
	cmd.Use = "junction"
	cmd.Short = "junction clusters 3-D junction boxes into circuits"
	cmd.Version = cobrax.VersionFunc("", "", "")
	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := cobrax.RootPersistentPreRunE(cmd, v, fs, args); err != nil {
			return err
		}
		return v.BindPFlags(cmd.Flags())
	}

	cmd.AddCommand(NewBoundedCmd(v, fs))
	cmd.AddCommand(NewCriticalCmd(v, fs))
	cmd.AddCommand(NewComponentsCmd(v, fs))

	cmd.SetGlobalNormalizationFunc(cobrax.SnakeToKebab)

	return cmd
}
