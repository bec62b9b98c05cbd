package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"sigs.k8s.io/yaml"

	"github.com/renato0307/kswitch/internal/query"
)

// Output formats accepted by -o
const (
	FormatTable = "table"
	FormatName  = "name"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// ItemView is the printable form of a query item
type ItemView struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Detail   string `json:"detail,omitempty"`
	Context  string `json:"context,omitempty"`
	Current  bool   `json:"current"`
	Score    int    `json:"score"`
	Action   string `json:"action"`
}

// ContextRow is one line of `kswitch list`
type ContextRow struct {
	Name      string `json:"name"`
	Current   bool   `json:"current"`
	Cluster   string `json:"cluster,omitempty"`
	Namespace string `json:"namespace,omitempty"`
}

// Formatter prints command results in the selected format
type Formatter struct {
	out    io.Writer
	format string
}

// NewFormatter validates format and returns a formatter writing to out
func NewFormatter(out io.Writer, format string) (*Formatter, error) {
	if format == "" {
		format = FormatTable
	}
	switch format {
	case FormatTable, FormatName, FormatJSON, FormatYAML:
	default:
		return nil, fmt.Errorf("unsupported output format: %s (use table, name, json or yaml)", format)
	}
	return &Formatter{out: out, format: format}, nil
}

// PrintItems prints query items in descending score order
func (f *Formatter) PrintItems(items []query.Item) error {
	sorted := query.SortByScore(items)
	views := make([]ItemView, 0, len(sorted))
	for _, item := range sorted {
		views = append(views, newItemView(item))
	}

	switch f.format {
	case FormatJSON:
		return f.printJSON(views)
	case FormatYAML:
		return f.printYAML(views)
	case FormatName:
		for _, v := range views {
			if v.Context != "" {
				fmt.Fprintln(f.out, v.Context)
			}
		}
		return nil
	default:
		table := f.newTable([]string{"TITLE", "SUBTITLE", "SCORE", "DETAIL"})
		for _, v := range views {
			table.Append([]string{v.Title, v.Subtitle, strconv.Itoa(v.Score), v.Detail})
		}
		table.Render()
		return nil
	}
}

// PrintContexts prints the rows of `kswitch list`
func (f *Formatter) PrintContexts(rows []ContextRow) error {
	switch f.format {
	case FormatJSON:
		return f.printJSON(rows)
	case FormatYAML:
		return f.printYAML(rows)
	case FormatName:
		for _, r := range rows {
			fmt.Fprintln(f.out, r.Name)
		}
		return nil
	default:
		table := f.newTable([]string{"CURRENT", "NAME", "CLUSTER", "NAMESPACE"})
		for _, r := range rows {
			marker := ""
			if r.Current {
				marker = "*"
			}
			table.Append([]string{marker, r.Name, r.Cluster, r.Namespace})
		}
		table.Render()
		return nil
	}
}

// newTable returns a borderless, left-aligned table in the kubectl style
func (f *Formatter) newTable(headers []string) *tablewriter.Table {
	table := tablewriter.NewWriter(f.out)
	table.SetHeader(headers)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("   ")
	table.SetNoWhiteSpace(true)
	return table
}

func (f *Formatter) printJSON(data any) error {
	encoder := json.NewEncoder(f.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func (f *Formatter) printYAML(data any) error {
	out, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal yaml: %w", err)
	}
	_, err = f.out.Write(out)
	return err
}

func newItemView(item query.Item) ItemView {
	action := "none"
	if item.Action.Kind == query.ActionSwitch {
		action = "switch"
	}
	return ItemView{
		Title:    item.Title,
		Subtitle: item.Subtitle,
		Detail:   item.Detail,
		Context:  item.Context,
		Current:  item.Current,
		Score:    item.Score,
		Action:   action,
	}
}
