package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/healthtech/healthtech/cli/internal/client"
	"github.com/healthtech/healthtech/cli/internal/render"
	"github.com/healthtech/healthtech/pkg/types"
	"github.com/healthtech/healthtech/pkg/vitals"
)

func newCheckCmd(opts *globalOpts) *cobra.Command {
	var r types.Reading
	var offline bool
	var barWidth int

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Score a vitals reading",
		Long: "Score a vitals reading. By default the reading is submitted to the server and\n" +
			"added to its session log; --offline scores it locally without recording it.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				res *client.Submission
				err error
			)
			if offline {
				res, err = scoreOffline(r, time.Now())
			} else {
				res, err = client.New(opts.server, opts.timeout).Submit(cmd.Context(), r)
			}
			if err != nil {
				return err
			}
			printSubmission(cmd.OutOrStdout(), res, barWidth)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&r.Name, "name", "", "patient name")
	f.IntVar(&r.Age, "age", 25, "age in years (1-120)")
	f.StringVar(&r.Gender, "gender", types.GenderMale, "gender: "+strings.Join(types.Genders, "|"))
	f.Float64Var(&r.WeightKg, "weight", 70, "weight in kg")
	f.Float64Var(&r.HeightCm, "height", 170, "height in cm")
	f.IntVar(&r.HeartRate, "heart-rate", 72, "heart rate in bpm")
	f.IntVar(&r.BloodPressure, "blood-pressure", 120, "systolic blood pressure in mmHg")
	f.IntVar(&r.Sugar, "sugar", 90, "blood sugar in mg/dL")
	f.Float64Var(&r.TemperatureC, "temperature", 36.8, "body temperature in °C")
	f.IntVar(&r.Pulse, "pulse", 75, "pulse rate in bpm")
	f.BoolVar(&offline, "offline", false, "score locally without contacting the server")
	f.IntVar(&barWidth, "bar-width", render.DefaultBarWidth, "width of the longest chart bar")
	return cmd
}

// scoreOffline evaluates r locally with the same rules the server applies.
func scoreOffline(r types.Reading, now time.Time) (*client.Submission, error) {
	if err := vitals.NewValidator().Validate(r); err != nil {
		return nil, err
	}
	a, err := vitals.Assess(r)
	if err != nil {
		return nil, err
	}
	rec := vitals.NewRecord(r, a, now)
	return &client.Submission{
		Record:     rec,
		Assessment: a,
		Insights:   vitals.Insights(r, a),
		Chart:      vitals.AssessmentChart(rec, a),
	}, nil
}

func printSubmission(w io.Writer, res *client.Submission, barWidth int) {
	_, _ = fmt.Fprintln(w, render.Insights(res.Insights, res.Assessment.Remark))
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, render.BarChart(res.Chart, barWidth))
}
