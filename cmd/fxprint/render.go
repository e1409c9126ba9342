package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zeebo/errs"
	"go.uber.org/zap"

	"github.com/calebcase/fxprint"
	"github.com/calebcase/fxprint/snapshot"
)

var renderCmd = &cobra.Command{
	Use:   "render SNAPSHOT",
	Short: "Print every variable of a snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, v, err := openSnapshot(args[0])
		if err != nil {
			return err
		}

		var group errs.Group
		for _, variable := range s.Variables {
			text, err := v.Display(variable.Value)
			if err != nil {
				group.Add(fmt.Errorf("%s: %w", variable.Name, err))
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", variable.Name, text)
		}

		return group.Err()
	},
}

// openSnapshot loads a snapshot and a viewer with the printer installed.
func openSnapshot(path string) (*snapshot.Snapshot, *snapshot.Viewer, error) {
	r, err := loadRegistry()
	if err != nil {
		return nil, nil, err
	}

	s, err := snapshot.Load(path)
	if err != nil {
		return nil, nil, err
	}

	logger.Debug("loaded snapshot",
		zap.String("path", path),
		zap.String("program", s.Program),
		zap.Int("variables", len(s.Variables)),
	)

	v := snapshot.NewViewer(logger)
	fxprint.Install(v, r)

	return s, v, nil
}
