package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/kr/pretty"
	"gopkg.in/yaml.v3"
)

// printer writes command output, either as aligned text or as a
// YAML document. Text is written as it is produced, YAML is
// assembled and written by Flush.
type printer struct {
	w    io.Writer
	yaml bool

	tw     *tabwriter.Writer
	header []string
	doc    []*yaml.Node
}

func newPrinter(w io.Writer, format string) (*printer, error) {
	switch format {
	case "text", "":
		return &printer{w: w, tw: tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)}, nil
	case "yaml":
		return &printer{w: w, yaml: true}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q, want text or yaml", format)
	}
}

// Table starts a table with the given column names.
func (p *printer) Table(header ...string) {
	p.header = header
	if !p.yaml {
		fmt.Fprintln(p.tw, strings.Join(header, "\t"))
	}
}

// Row adds a row to the current table.
func (p *printer) Row(vals ...any) {
	if !p.yaml {
		strs := make([]string, len(vals))
		for i, v := range vals {
			strs[i] = fmt.Sprint(v)
		}
		fmt.Fprintln(p.tw, strings.Join(strs, "\t"))
		return
	}
	m := &yaml.Node{Kind: yaml.MappingNode}
	for i, v := range vals {
		key := strings.ToLower(strings.ReplaceAll(p.header[i], " ", "-"))
		m.Content = append(m.Content, scalar(key), valueNode(v))
	}
	p.doc = append(p.doc, m)
}

// Field is one line of a record.
type Field struct {
	Name  string
	Value any
}

// Record writes a set of named values describing one object.
func (p *printer) Record(fields ...Field) {
	if !p.yaml {
		for _, f := range fields {
			fmt.Fprintf(p.tw, "%s:\t%v\n", f.Name, f.Value)
		}
		fmt.Fprintln(p.tw)
		return
	}
	m := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range fields {
		m.Content = append(m.Content, scalar(f.Name), valueNode(f.Value))
	}
	p.doc = append(p.doc, m)
}

// Value writes an arbitrary value.
func (p *printer) Value(v any) {
	if !p.yaml {
		p.tw.Flush()
		fmt.Fprintf(p.w, "%# v\n", pretty.Formatter(v))
		return
	}
	p.doc = append(p.doc, valueNode(v))
}

// Flush writes out buffered output.
func (p *printer) Flush() error {
	if !p.yaml {
		return p.tw.Flush()
	}
	if len(p.doc) == 0 {
		return nil
	}
	root := &yaml.Node{Kind: yaml.SequenceNode, Content: p.doc}
	if len(p.doc) == 1 {
		root = p.doc[0]
	}
	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	p.doc = nil
	return enc.Close()
}

func scalar(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

// valueNode encodes v for YAML output. Values with a String method
// are written as that string.
func valueNode(v any) *yaml.Node {
	if s, ok := v.(fmt.Stringer); ok {
		return scalar(s.String())
	}
	var n yaml.Node
	if err := n.Encode(v); err != nil {
		return scalar(fmt.Sprint(v))
	}
	return &n
}
