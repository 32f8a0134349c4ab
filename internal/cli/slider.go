package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dwrenn/ctlkit/slider"
	"github.com/dwrenn/ctlkit/status"
)

var (
	sliderResolution int
	sliderMin        float64
	sliderMax        float64
)

// mapping is the JSON shape shared by the slider subcommands.
type mapping struct {
	Resolution int     `json:"resolution"`
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
	Pos        int     `json:"pos"`
	Value      float64 `json:"value"`
	Proportion float64 `json:"proportion"`
}

var sliderCmd = &cobra.Command{
	Use:   "slider",
	Short: "Convert between raw positions and range values",
	Long: `Convert between a fixed-resolution raw slider position and a
caller-defined value range, the same mapping the library applies.`,
}

var sliderValueCmd = &cobra.Command{
	Use:   "value <position>",
	Short: "Map a raw position to its value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pos, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid position: %w", err)
		}

		s, err := newFlagSlider()
		if err != nil {
			return err
		}
		s.SetPos(pos)

		if jsonFlag {
			return printJSON(snapshot(s))
		}

		fmt.Printf("Position:   %d / %d\n", s.Pos(), s.Resolution())
		fmt.Printf("Value:      %g\n", s.Value())
		fmt.Printf("Proportion: %.4f\n", s.Proportion())
		return nil
	},
}

var sliderPositionCmd = &cobra.Command{
	Use:   "position <value>",
	Short: "Map a value to its closest raw position",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid value: %w", err)
		}

		s, err := newFlagSlider()
		if err != nil {
			return err
		}
		if err := s.SetValue(v); err != nil {
			return err
		}

		if jsonFlag {
			return printJSON(snapshot(s))
		}

		fmt.Printf("Position:   %d / %d\n", s.Pos(), s.Resolution())
		fmt.Printf("Quantized:  %g (requested %g)\n", s.Value(), v)
		return nil
	},
}

var sliderProportionCmd = &cobra.Command{
	Use:   "proportion <position>",
	Short: "Map a raw position to its range proportion",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pos, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid position: %w", err)
		}

		s, err := newFlagSlider()
		if err != nil {
			return err
		}
		s.SetPos(pos)

		if jsonFlag {
			return printJSON(snapshot(s))
		}

		fmt.Printf("Proportion: %.4f\n", s.Proportion())
		return nil
	},
}

var sliderRescaleCmd = &cobra.Command{
	Use:   "rescale <value> <new-min> <new-max>",
	Short: "Show how a value survives a range change",
	Long: `Set a value under the current range, replace the range, and report
the re-quantized position. The value is preserved across the change to
within one quantization step; the raw position is not.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid value: %w", err)
		}
		newMin, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid new-min: %w", err)
		}
		newMax, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("invalid new-max: %w", err)
		}

		s, err := newFlagSlider()
		if err != nil {
			return err
		}
		if err := s.SetValue(v); err != nil {
			return err
		}
		before := snapshot(s)

		if res := applyRange(s, newMin, newMax); res.Failed() {
			return errors.New(res.Message)
		}
		after := snapshot(s)

		if jsonFlag {
			return printJSON(map[string]mapping{"before": before, "after": after})
		}

		fmt.Printf("Before: range [%g, %g]  pos %d  value %g\n", before.Min, before.Max, before.Pos, before.Value)
		fmt.Printf("After:  range [%g, %g]  pos %d  value %g\n", after.Min, after.Max, after.Pos, after.Value)
		return nil
	},
}

var sliderSweepSteps int

var sliderSweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Tabulate the mapping across the whole range",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newFlagSlider()
		if err != nil {
			return err
		}
		if sliderSweepSteps < 1 {
			return fmt.Errorf("steps must be at least 1, got %d", sliderSweepSteps)
		}

		var rows []mapping
		for i := 0; i <= sliderSweepSteps; i++ {
			s.SetPos(i * s.Resolution() / sliderSweepSteps)
			rows = append(rows, snapshot(s))
		}

		if jsonFlag {
			return printJSON(rows)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "POS\tVALUE\tPROPORTION")
		for _, r := range rows {
			fmt.Fprintf(w, "%d\t%g\t%.4f\n", r.Pos, r.Value, r.Proportion)
		}
		w.Flush()
		return nil
	},
}

// newFlagSlider builds a slider from the command-line flags.
func newFlagSlider() (*slider.Slider, error) {
	s, err := slider.NewWithResolution(sliderResolution)
	if err != nil {
		return nil, err
	}
	if res := applyRange(s, sliderMin, sliderMax); res.Failed() {
		return nil, errors.New(res.Message)
	}
	return s, nil
}

// applyRange installs a new range, reporting the outcome as a status.Result
// and logging the diagnostic on failure.
func applyRange(s *slider.Slider, min, max float64) status.Result {
	if err := s.SetRange(min, max); err != nil {
		res := status.Failuref("cannot apply range [%g, %g]: %v", min, max, err)
		log.Error(res.Message)
		return res
	}
	return status.Success("")
}

func snapshot(s *slider.Slider) mapping {
	return mapping{
		Resolution: s.Resolution(),
		Min:        s.Min(),
		Max:        s.Max(),
		Pos:        s.Pos(),
		Value:      s.Value(),
		Proportion: s.Proportion(),
	}
}

func init() {
	sliderCmd.PersistentFlags().IntVar(&sliderResolution, "resolution", slider.DefaultResolution, "Number of discrete raw steps")
	sliderCmd.PersistentFlags().Float64Var(&sliderMin, "min", 0, "Lower bound of the value range")
	sliderCmd.PersistentFlags().Float64Var(&sliderMax, "max", 100, "Upper bound of the value range")
	sliderSweepCmd.Flags().IntVar(&sliderSweepSteps, "steps", 10, "Number of sweep intervals")

	sliderCmd.AddCommand(sliderValueCmd)
	sliderCmd.AddCommand(sliderPositionCmd)
	sliderCmd.AddCommand(sliderProportionCmd)
	sliderCmd.AddCommand(sliderRescaleCmd)
	sliderCmd.AddCommand(sliderSweepCmd)
	rootCmd.AddCommand(sliderCmd)
}
