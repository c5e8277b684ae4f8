// Package report renders prerequisite check reports for operators and tooling.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v2"

	"github.com/openshift/managed-upgrade-prechecks/pkg/prereq"
)

// Format is an output format of Render.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// Formats lists the supported formats.
var Formats = []Format{FormatTable, FormatJSON, FormatYAML}

// ParseFormat returns the Format named by s.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == strings.ToLower(s) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported output format %q", s)
}

// Render writes r to w in the given format.
func Render(w io.Writer, r *prereq.Report, format Format) error {
	switch format {
	case FormatTable:
		return renderTable(w, r)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		out, err := yaml.Marshal(r)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

func renderTable(w io.Writer, r *prereq.Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CHECK\tTYPE\tSTATUS\tFAILED ON\tREASON")
	for _, c := range r.Checks {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", c.ID, c.Type, c.Status, orDash(strings.Join(c.FailedOn, ",")), orDash(c.FailReason))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\nCluster %s: %s (run %s)\n", r.ClusterName, r.Status, r.RunID)
	return err
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// Checks writes the descriptions of the registered checks as a table.
func Checks(w io.Writer, descriptions []prereq.CheckDescription) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CHECK\tTYPE\tDESCRIPTION")
	for _, d := range descriptions {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", d.ID, d.Type, d.Description)
	}
	return tw.Flush()
}
