// Package documents renders the customer-facing quote document.
package documents

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"vacate_quote/internal/domain/entities"
	"vacate_quote/internal/domain/quoting"
	"vacate_quote/internal/usecase/interfaces"
)

// Config says where documents are written and how they are served.
type Config struct {
	OutputDir   string
	PublicURL   string
	CompanyName string
	OfficePhone string
}

// HTMLRenderer writes one HTML file per quote under OutputDir.
type HTMLRenderer struct {
	cfg  Config
	tmpl *template.Template
}

var _ interfaces.IQuoteDocumentRenderer = (*HTMLRenderer)(nil)

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9_-]`)

func NewHTMLRenderer(cfg Config) (*HTMLRenderer, error) {
	if cfg.OutputDir == "" {
		return nil, eris.New("documents: output dir is required")
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, eris.Wrapf(err, "documents: create %s", cfg.OutputDir)
	}
	tmpl, err := template.New("quote").Funcs(template.FuncMap{
		"money": func(v float64) string { return fmt.Sprintf("$%.2f", v) },
	}).Parse(quoteTemplate)
	if err != nil {
		return nil, eris.Wrap(err, "documents: parse template")
	}
	return &HTMLRenderer{cfg: cfg, tmpl: tmpl}, nil
}

type quoteView struct {
	Company     string
	OfficePhone string
	QuoteID     string
	IssuedAt    string
	ValidUntil  string
	Customer    string
	Email       string
	Phone       string
	Address     string
	Agency      string
	Suburb      string
	Bedrooms    int
	Bathrooms   int
	Furnished   string
	Services    []string
	Special     string
	Note        string
	Cleaners    int
	HoursEach   int
	Sessions    int
	BookingURL  string
	entities.PriceBreakdown
}

// Render writes the document and returns its public URL.
func (r *HTMLRenderer) Render(ctx context.Context, rec entities.QuoteRecord) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if rec.QuoteID == "" {
		return "", eris.New("documents: quote id is required")
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, r.view(rec)); err != nil {
		return "", eris.Wrapf(err, "documents: render %s", rec.QuoteID)
	}

	name := unsafeFileChars.ReplaceAllString(rec.QuoteID, "_") + ".html"
	path := filepath.Join(r.cfg.OutputDir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", eris.Wrapf(err, "documents: write %s", path)
	}

	zap.L().Debug("quote document written", zap.String("quote_id", rec.QuoteID), zap.String("path", path))
	return strings.TrimRight(r.cfg.PublicURL, "/") + "/" + name, nil
}

func (r *HTMLRenderer) view(rec entities.QuoteRecord) quoteView {
	issued := rec.UpdatedAt
	if issued.IsZero() {
		issued = time.Now()
	}
	issued = issued.In(quoting.Perth)
	cleaners, hours := quoting.Crew(rec.EstimatedTimeMins)

	sessions := entities.IntValue(rec.NumberOfSessions)
	if sessions < 1 {
		sessions = 1
	}

	return quoteView{
		Company:        r.cfg.CompanyName,
		OfficePhone:    r.cfg.OfficePhone,
		QuoteID:        rec.QuoteID,
		IssuedAt:       issued.Format("2 January 2006"),
		ValidUntil:     issued.AddDate(0, 0, 7).Format("2 January 2006"),
		Customer:       entities.StringValue(rec.CustomerName),
		Email:          entities.StringValue(rec.CustomerEmail),
		Phone:          entities.StringValue(rec.CustomerPhone),
		Address:        entities.StringValue(rec.PropertyAddress),
		Agency:         entities.StringValue(rec.RealEstateName),
		Suburb:         entities.StringValue(rec.Suburb),
		Bedrooms:       entities.IntValue(rec.Bedrooms),
		Bathrooms:      entities.IntValue(rec.Bathrooms),
		Furnished:      entities.StringValue(rec.Furnished),
		Services:       quoting.SelectedServices(rec.QuoteAttributes),
		Special:        entities.StringValue(rec.SpecialRequests),
		Note:           rec.QuoteNote,
		Cleaners:       cleaners,
		HoursEach:      hours,
		Sessions:       sessions,
		BookingURL:     rec.BookingURL,
		PriceBreakdown: rec.PriceBreakdown,
	}
}
