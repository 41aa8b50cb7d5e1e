package system

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ADITYATHUNGAK/Ai-For-Healthcare/internal/risk"
)

// NewScoreCommand scores a single report from flags. Useful for sanity checks
// against recorded assessments without touching the database.
func NewScoreCommand() *cobra.Command {
	var (
		steps    int
		pain     int
		medicine bool
		sleep    float64
		mood     string
	)

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Compute a risk assessment from raw report signals",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := risk.Input{
				Steps:         steps,
				PainLevel:     pain,
				MedicineTaken: medicine,
				Mood:          mood,
			}
			if cmd.Flags().Changed("sleep") {
				in.SleepHours = &sleep
			}

			out, err := json.MarshalIndent(risk.Score(in), "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode assessment: %w", err)
			}
			fmt.Fprintln(os.Stdout, string(out))
			return nil
		},
	}

	cmd.Flags().IntVar(&steps, "steps", 0, "steps walked today")
	cmd.Flags().IntVar(&pain, "pain", 0, "pain level 0-10")
	cmd.Flags().BoolVar(&medicine, "medicine", false, "medicine taken today")
	cmd.Flags().Float64Var(&sleep, "sleep", 0, "hours slept (omit if unknown)")
	cmd.Flags().StringVar(&mood, "mood", "", "reported mood")

	return cmd
}
