package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	domain "github.com/dmitrymomot/catalog/core/catalog"
	"github.com/dmitrymomot/catalog/core/health"
	"github.com/dmitrymomot/catalog/core/store"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

func checkFormat(format string) error {
	switch format {
	case formatTable, formatJSON, formatYAML:
		return nil
	}
	return fmt.Errorf("unknown output format %q (want table, json or yaml)", format)
}

type pageInfo struct {
	Page        int  `json:"page" yaml:"page"`
	HasNext     bool `json:"hasNext" yaml:"hasNext"`
	HasPrevious bool `json:"hasPrevious" yaml:"hasPrevious"`
}

type printer struct {
	w      io.Writer
	format string
	local  *message.Printer
}

func newPrinter(w io.Writer, format string) *printer {
	return &printer{w: w, format: format, local: message.NewPrinter(language.English)}
}

// encode writes v as JSON or YAML. It reports false for the table format.
func (p *printer) encode(v any) (bool, error) {
	switch p.format {
	case formatJSON:
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return true, enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return true, err
		}
		return true, enc.Close()
	}
	return false, nil
}

func (p *printer) price(v float64) string {
	return p.local.Sprintf("$%.2f", v)
}

func (p *printer) products(list []domain.Product) error {
	if ok, err := p.encode(list); ok {
		return err
	}
	if len(list) == 0 {
		_, err := fmt.Fprintln(p.w, "No products found")
		return err
	}

	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tPRICE")
	for _, prod := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", prod.ID, prod.Name, prod.Category.Name, p.price(prod.Price))
	}
	return tw.Flush()
}

func (p *printer) page(list []domain.Product, info pageInfo) error {
	if ok, err := p.encode(struct {
		Products []domain.Product `json:"products" yaml:"products"`
		pageInfo `yaml:",inline"`
	}{list, info}); ok {
		return err
	}
	if err := p.products(list); err != nil {
		return err
	}

	nav := []string{fmt.Sprintf("Page %d", info.Page)}
	if info.HasPrevious {
		nav = append(nav, fmt.Sprintf("previous: --page %d", info.Page-1))
	}
	if info.HasNext {
		nav = append(nav, fmt.Sprintf("next: --page %d", info.Page+1))
	}
	_, err := fmt.Fprintln(p.w, strings.Join(nav, "  "))
	return err
}

func (p *printer) product(prod domain.Product) error {
	if ok, err := p.encode(prod); ok {
		return err
	}

	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", prod.ID)
	fmt.Fprintf(tw, "Name:\t%s\n", prod.Name)
	fmt.Fprintf(tw, "Price:\t%s\n", p.price(prod.Price))
	fmt.Fprintf(tw, "Category:\t%s\n", prod.Category.Name)
	fmt.Fprintf(tw, "Description:\t%s\n", prod.Description)
	for i, img := range prod.Images {
		label := ""
		if i == 0 {
			label = "Images:"
		}
		fmt.Fprintf(tw, "%s\t%s\n", label, img)
	}
	fmt.Fprintf(tw, "Created:\t%s\n", formatDate(prod.CreatedAt))
	fmt.Fprintf(tw, "Updated:\t%s\n", formatDate(prod.UpdatedAt))
	return tw.Flush()
}

func (p *printer) categories(list []domain.Category) error {
	if ok, err := p.encode(list); ok {
		return err
	}

	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME")
	for _, c := range list {
		fmt.Fprintf(tw, "%s\t%s\n", c.ID, c.Name)
	}
	return tw.Flush()
}

func (p *printer) session(s store.Session) error {
	if ok, err := p.encode(struct {
		Email string `json:"email" yaml:"email"`
	}{s.Email}); ok {
		return err
	}
	_, err := fmt.Fprintf(p.w, "Logged in as %s\n", s.Email)
	return err
}

func (p *printer) health(r health.Report) error {
	if ok, err := p.encode(r); ok {
		return err
	}

	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CHECK\tSTATUS\tLATENCY\tERROR")
	for _, c := range r.Checks {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", c.Name, c.Status, c.Latency.Round(time.Millisecond), c.Error)
	}
	fmt.Fprintf(tw, "\n%s\n", r.Status)
	return tw.Flush()
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Format("January 2, 2006")
}
