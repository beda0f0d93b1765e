package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"github.com/firefly-engineering/vlsm-ctl/internal/vlsm"
)

// Format selects how a result is written.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q (must be table, json, or yaml)", s)
}

// Columns are the table headers, in display order.
var Columns = []string{
	"Requested",
	"Net IP + prefix",
	"Mask",
	"First host",
	"Last host",
	"Broadcast",
	"Usable IP",
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().Padding(0, 1)

	numberStyle = cellStyle.Align(lipgloss.Right)

	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Document is the machine-readable form of a result.
type Document struct {
	Network string        `json:"network" yaml:"network"`
	Records []vlsm.Record `json:"records" yaml:"records"`
	Summary vlsm.Summary  `json:"summary" yaml:"summary"`
}

// NewDocument builds the Document for a result.
func NewDocument(res *vlsm.Result) Document {
	return Document{
		Network: res.Parent.String(),
		Records: res.Records,
		Summary: res.Summary(),
	}
}

// Write renders res to w in the given format.
func Write(w io.Writer, res *vlsm.Result, f Format) error {
	switch f {
	case FormatJSON:
		return JSON(w, res)
	case FormatYAML:
		return YAML(w, res)
	case FormatTable, "":
		_, err := fmt.Fprintln(w, Table(res))
		return err
	}
	return fmt.Errorf("unknown output format %q", f)
}

// Title is the heading shown above the table.
func Title(res *vlsm.Result) string {
	return "VLSM subnetting for the initial network: " + res.Parent.String()
}

// Table renders the title, the record table and the summary line.
func Table(res *vlsm.Result) string {
	rows := make([][]string, len(res.Records))
	for i, r := range res.Records {
		rows[i] = []string{
			strconv.Itoa(r.Requested),
			r.SubnetCIDR,
			r.Mask,
			r.FirstHost,
			r.LastHost,
			r.Broadcast,
			strconv.Itoa(r.UsableCount),
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(Columns...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0 || col == len(Columns)-1:
				return numberStyle
			}
			return cellStyle
		})

	var b strings.Builder
	b.WriteString(titleStyle.Render(Title(res)))
	b.WriteString("\n")
	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(SummaryLine(res.Summary())))
	return b.String()
}

// SummaryLine describes how much of the parent was used.
func SummaryLine(s vlsm.Summary) string {
	line := fmt.Sprintf("%d of %d addresses allocated, %d free (%.1f%% used)",
		s.AllocatedAddresses, s.TotalAddresses, s.FreeAddresses, s.Utilization()*100)
	if s.AlignmentGap > 0 {
		line += fmt.Sprintf(", %d skipped for alignment", s.AlignmentGap)
	}
	return line
}

// JSON writes the result as an indented JSON document.
func JSON(w io.Writer, res *vlsm.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewDocument(res)); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// YAML writes the result as a YAML document.
func YAML(w io.Writer, res *vlsm.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewDocument(res)); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}

// SizeRow is one line of the sizing table.
type SizeRow struct {
	Hosts     int    `json:"hosts" yaml:"hosts"`
	Prefix    int    `json:"prefix" yaml:"prefix"`
	Mask      string `json:"mask" yaml:"mask"`
	BlockSize uint64 `json:"blockSize" yaml:"blockSize"`
	Usable    uint64 `json:"usable" yaml:"usable"`
}

// Sizes computes the block each host count needs. Counts too large for
// IPv4 get a negative prefix and an empty mask.
func Sizes(hosts []int) []SizeRow {
	rows := make([]SizeRow, len(hosts))
	for i, h := range hosts {
		p := vlsm.RequiredPrefixLength(h)
		rows[i] = SizeRow{
			Hosts:     h,
			Prefix:    p,
			Mask:      vlsm.Mask(p),
			BlockSize: vlsm.BlockSize(p),
			Usable:    vlsm.UsableHosts(p),
		}
	}
	return rows
}

// WriteSizes renders sizing rows to w in the given format.
func WriteSizes(w io.Writer, rows []SizeRow, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			return err
		}
		return enc.Close()
	case FormatTable, "":
		_, err := fmt.Fprintln(w, SizeTable(rows))
		return err
	}
	return fmt.Errorf("unknown output format %q", f)
}

// SizeTable renders sizing rows as a table.
func SizeTable(rows []SizeRow) string {
	cells := make([][]string, len(rows))
	for i, r := range rows {
		prefix, mask := "/"+strconv.Itoa(r.Prefix), r.Mask
		if r.Mask == "" {
			prefix, mask = "too large", vlsm.NotApplicable
		}
		cells[i] = []string{
			strconv.Itoa(r.Hosts),
			prefix,
			mask,
			strconv.FormatUint(r.BlockSize, 10),
			strconv.FormatUint(r.Usable, 10),
		}
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers("Hosts", "Prefix", "Mask", "Block size", "Usable").
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Render()
}
