package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

type output string

const (
	outputTable output = "table"
	outputJSON  output = "json"
	outputYAML  output = "yaml"
)

func parseOutput(s string) (output, error) {
	switch o := output(s); o {
	case outputTable, outputJSON, outputYAML:
		return o, nil
	}
	return "", fmt.Errorf("unknown output format %q (want table, json or yaml)", s)
}

// render writes v as JSON or YAML, or calls table for the table format.
func (o output) render(w io.Writer, v any, table func(tw *tabwriter.Writer)) error {
	switch o {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	table(tw)
	return tw.Flush()
}

func money(v float64) string {
	if v == 0 {
		return "-"
	}
	return fmt.Sprintf("%.2f", v)
}
