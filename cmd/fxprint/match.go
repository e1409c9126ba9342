package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calebcase/fxprint/pattern"
	"github.com/calebcase/fxprint/typeinfo"
)

var matchCmd = &cobra.Command{
	Use:   "match NAME...",
	Short: "Print the exponent of each type name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := loadRegistry()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()

		failed := 0
		for _, arg := range args {
			name := typeinfo.Unqualified(arg)

			var matched bool
			for _, e := range r.Entries() {
				exponent, ok, err := e.Pattern.Match(name)
				if !ok {
					continue
				}
				matched = true

				if err != nil {
					failed++
					fmt.Fprintf(out, "%s: parse failure: %v\n", arg, err)
				} else {
					fmt.Fprintf(out, "%s: exponent %d\n", arg, exponent)
				}

				break
			}

			if !matched {
				fmt.Fprintf(out, "%s: no match\n", arg)
			}
		}

		if failed > 0 {
			return pattern.ParseError.New("%d of %d names failed to parse", failed, len(args))
		}

		return nil
	},
}
