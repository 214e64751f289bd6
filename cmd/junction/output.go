package main

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"
)

var formats = []string{"plain", "table", "md", "csv", "tsv", "html", "simple", "json", "yaml"}

const formatUsage = "The output format {plain|table|md|csv|tsv|html|simple|json|yaml}"

func checkFormat(format string) error {
	if !slices.Contains(formats, format) {
		return errors.Newf("unknown format: %s", format)
	}
	return nil
}

// report is what every subcommand prints: a bare answer for "plain", a
// document for json/yaml, and header plus rows for the table formats.
type report struct {
	answer string
	doc    any
	header table.Row
	rows   []table.Row
}

func render(w io.Writer, format string, rep report) error {
	switch format {
	case "plain":
		_, err := fmt.Fprintln(w, rep.answer)
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep.doc)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep.doc); err != nil {
			return err
		}
		return enc.Close()
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(rep.header)
	t.AppendRows(rep.rows)

	switch format {
	case "table":
		t.Render()
	case "md":
		t.RenderMarkdown()
	case "csv":
		t.RenderCSV()
	case "tsv":
		t.RenderTSV()
	case "html":
		t.RenderHTML()
	case "simple":
		t.Style().Options.DrawBorder = false
		t.Style().Options.SeparateHeader = false
		t.Style().Options.SeparateRows = false
		t.Style().Box.MiddleVertical = " "
		t.Render()
	default:
		return errors.Newf("unknown format: %s", format)
	}
	return nil
}
