package main

import (
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ai4health/triage-api/schema"
	"github.com/ai4health/triage-api/score"
)

type scoreFlags struct {
	file   string
	mode   string
	format string
}

type scoreOutput struct {
	schema.SeverityResult `yaml:",inline"`
	Priority              int `json:"priority" yaml:"priority"`
}

func newScoreCmd() *cobra.Command {
	f := &scoreFlags{}

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a symptom report written in yaml or json",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScore(cmd.OutOrStdout(), f)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.file, "file", "f", "", "Report file, - reads stdin")
	flags.StringVar(&f.mode, "mode", "additive", "Table lookup: additive or highest-tier")
	flags.StringVar(&f.format, "format", "text", "Output format: text, json or yaml")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func parseMode(mode string) (score.Mode, error) {
	switch mode {
	case "additive":
		return score.ModeAdditive, nil
	case "highest-tier":
		return score.ModeHighestTier, nil
	default:
		return 0, fmt.Errorf("unknown mode %q", mode)
	}
}

// readReport accepts yaml, and json as a subset of it
func readReport(r io.Reader) (schema.SymptomReport, error) {
	var report schema.SymptomReport

	data, err := ioutil.ReadAll(r)
	if err != nil {
		return report, err
	}
	if err := yaml.Unmarshal(data, &report); err != nil {
		return report, fmt.Errorf("parse report: %w", err)
	}
	return report, nil
}

func runScore(w io.Writer, f *scoreFlags) error {
	mode, err := parseMode(f.mode)
	if err != nil {
		return err
	}

	var in io.Reader = os.Stdin
	if f.file != "-" {
		file, err := os.Open(f.file)
		if err != nil {
			return err
		}
		defer file.Close()
		in = file
	}

	report, err := readReport(in)
	if err != nil {
		return err
	}

	result := score.SeverityWithMode(report, mode)
	out := scoreOutput{
		SeverityResult: result,
		Priority:       score.Priority(result),
	}

	switch f.format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]interface{}{
			"severity_score": out.Score,
			"severity_level": out.Level,
			"priority":       out.Priority,
		})
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(out)
	case "text":
		_, err := fmt.Fprintf(w, "severity score: %d\nseverity level: %s\npriority: %d\n", out.Score, out.Level, out.Priority)
		return err
	default:
		return fmt.Errorf("unknown format %q", f.format)
	}
}
