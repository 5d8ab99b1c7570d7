package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"wireweave/internal/registry"
)

var registryCmd = &cobra.Command{
	Use:   "registry [components|attributes|component <name>|attribute <name>]",
	Short: "Inspect the component and attribute registry",
	Long: `Print the built-in registry used by the validator, completion and hover.
Without arguments all components are listed.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runRegistry,
}

func init() {
	registryCmd.Flags().String("format", "pretty", "output format (pretty|json|yaml)")
	registryCmd.Flags().String("category", "", "only list components of this category")
}

func runRegistry(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	categoryFlag, err := cmd.Flags().GetString("category")
	if err != nil {
		return fmt.Errorf("failed to get category flag: %w", err)
	}
	switch format {
	case "pretty", "json", "yaml":
	default:
		return fmt.Errorf("unsupported format %q (must be pretty, json or yaml)", format)
	}

	reg := registry.Default()
	out := cmd.OutOrStdout()

	what := "components"
	if len(args) > 0 {
		what = strings.ToLower(args[0])
	}
	switch what {
	case "components":
		comps := reg.Components()
		if categoryFlag != "" {
			cat, err := registry.ParseCategory(categoryFlag)
			if err != nil {
				return err
			}
			comps = reg.ComponentsByCategory(cat)
		}
		if format == "pretty" {
			return renderComponentTable(out, comps)
		}
		return encodeRegistry(out, format, comps)
	case "attributes":
		attrs := reg.Attributes()
		if format == "pretty" {
			return renderAttributeTable(out, attrs)
		}
		return encodeRegistry(out, format, attrs)
	case "component":
		if len(args) < 2 {
			return fmt.Errorf("component name required")
		}
		comp, ok := reg.LookupComponent(args[1])
		if !ok {
			return fmt.Errorf("unknown component %q", args[1])
		}
		if format == "pretty" {
			return renderComponentDetail(out, reg, comp)
		}
		return encodeRegistry(out, format, comp)
	case "attribute":
		if len(args) < 2 {
			return fmt.Errorf("attribute name required")
		}
		attr, ok := reg.LookupAttribute(args[1])
		if !ok {
			return fmt.Errorf("unknown attribute %q", args[1])
		}
		if format == "pretty" {
			return renderAttributeDetail(out, reg, attr)
		}
		return encodeRegistry(out, format, attr)
	default:
		return fmt.Errorf("unknown registry section %q (expected components, attributes, component or attribute)", args[0])
	}
}

func encodeRegistry(out io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unsupported format %q", format)
}

func renderComponentTable(out io.Writer, comps []*registry.Component) error {
	rows := make([][]string, 0, len(comps))
	for _, c := range comps {
		children := "-"
		if c.HasChildren {
			children = "any"
			if len(c.ValidChildren) > 0 {
				children = strings.Join(c.ValidChildren, ", ")
			}
		}
		rows = append(rows, []string{c.Name, registry.CategoryLabel(c.Category), children, strings.Join(c.Attributes, ", ")})
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("COMPONENT", "CATEGORY", "CHILDREN", "ATTRIBUTES").
		Rows(rows...)
	_, err := fmt.Fprintln(out, t.String())
	return err
}

func renderAttributeTable(out io.Writer, attrs []*registry.Attribute) error {
	rows := make([][]string, 0, len(attrs))
	for _, a := range attrs {
		rows = append(rows, []string{a.Name, registry.AttributeTypeLabel(a), a.Description})
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ATTRIBUTE", "TYPE", "DESCRIPTION").
		Rows(rows...)
	_, err := fmt.Fprintln(out, t.String())
	return err
}

var detailLabel = lipgloss.NewStyle().Bold(true)

func renderComponentDetail(out io.Writer, reg *registry.Registry, c *registry.Component) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n", detailLabel.Render(c.Name), registry.CategoryLabel(c.Category))
	if c.Description != "" {
		fmt.Fprintf(&b, "  %s\n", c.Description)
	}
	if len(c.Attributes) > 0 {
		fmt.Fprintf(&b, "  attributes: %s\n", strings.Join(c.Attributes, ", "))
	}
	if c.HasChildren {
		names := make([]string, 0)
		for _, child := range reg.ValidChildrenOf(c.Name) {
			names = append(names, child.Name)
		}
		fmt.Fprintf(&b, "  children:   %s\n", strings.Join(names, ", "))
	}
	if c.Example != "" {
		fmt.Fprintf(&b, "  example:\n")
		for _, line := range strings.Split(c.Example, "\n") {
			fmt.Fprintf(&b, "    %s\n", line)
		}
	}
	_, err := io.WriteString(out, b.String())
	return err
}

func renderAttributeDetail(out io.Writer, reg *registry.Registry, a *registry.Attribute) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (attribute)\n", detailLabel.Render(a.Name))
	if a.Description != "" {
		fmt.Fprintf(&b, "  %s\n", a.Description)
	}
	fmt.Fprintf(&b, "  %s\n", registry.FormatAttributeValues(a))
	if a.Example != "" {
		fmt.Fprintf(&b, "  example: %s\n", a.Example)
	}
	users := make([]string, 0)
	for _, c := range reg.Components() {
		if c.HasAttribute(a.Name) {
			users = append(users, c.Name)
		}
	}
	if len(users) > 0 {
		fmt.Fprintf(&b, "  used by: %s\n", strings.Join(users, ", "))
	}
	_, err := io.WriteString(out, b.String())
	return err
}
