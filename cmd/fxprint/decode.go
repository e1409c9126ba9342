package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calebcase/fxprint/fixed"
	"github.com/calebcase/fxprint/integer"
)

var exponent int

var decodeCmd = &cobra.Command{
	Use:   "decode RAW...",
	Short: "Scale raw stored integers by 2^exponent",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadConfig()
		if err != nil {
			return err
		}

		f, err := fixed.ParseFormat(c.Format)
		if err != nil {
			return err
		}

		for _, arg := range args {
			raw, err := integer.Parse(arg)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), fixed.Render(raw, exponent, f))
		}

		return nil
	},
}

func init() {
	decodeCmd.Flags().IntVarP(&exponent, "exponent", "e", 0, "power of two exponent")
}
