package main

import (
	"fmt"

	"github.com/spf13/cobra"

	popover "github.com/grindlemire/go-popover"
	"github.com/grindlemire/go-popover/dom"
)

func newPlaceCmd(a *app) *cobra.Command {
	var (
		anchor         []float64
		panel          []float64
		placement      string
		viewportHeight float64
	)

	cmd := &cobra.Command{
		Use:   "place",
		Short: "Compute where a panel opens next to an anchor",
		Example: `  popover place --anchor 100,50,80,20 --panel 120,40 --viewport-height 800
  left=80 top=80`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(anchor) != 4 {
				return fmt.Errorf("--anchor wants left,top,width,height; got %d values", len(anchor))
			}
			if len(panel) != 2 {
				return fmt.Errorf("--panel wants width,height; got %d values", len(panel))
			}

			side, err := a.cfg.PlacementValue()
			if cmd.Flags().Changed("placement") {
				side, err = popover.ParsePlacement(placement)
			}
			if err != nil {
				return err
			}
			vh := a.cfg.Viewport.Height
			if cmd.Flags().Changed("viewport-height") {
				vh = viewportHeight
			}

			c := popover.Place(
				dom.NewRect(anchor[0], anchor[1], anchor[2], anchor[3]),
				dom.NewRect(0, 0, panel[0], panel[1]),
				side,
				vh,
			)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "left=%g top=%g\n", c.Left, c.Top)
			return err
		},
	}

	cmd.Flags().Float64SliceVar(&anchor, "anchor", nil, "anchor rect: left,top,width,height")
	cmd.Flags().Float64SliceVar(&panel, "panel", nil, "panel size: width,height")
	cmd.Flags().StringVar(&placement, "placement", "", "bottom-center, bottom-left or bottom-right (default from config)")
	cmd.Flags().Float64Var(&viewportHeight, "viewport-height", 0, "viewport height in pixels (default from config)")
	_ = cmd.MarkFlagRequired("anchor")
	_ = cmd.MarkFlagRequired("panel")
	return cmd
}
