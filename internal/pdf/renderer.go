package pdf

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/archemics/salessnap/internal/models"
)

// Issuer is the company contact block printed on every document.
type Issuer struct {
	Name     string
	Address1 string
	Address2 string
	Phone    string
	Email    string
}

// DefaultIssuer is the static letterhead for generated documents.
var DefaultIssuer = Issuer{
	Name:     "SalesSnap, Inc.",
	Address1: "123 Business Avenue",
	Address2: "Business City, 12345",
	Phone:    "(123) 456-7890",
	Email:    "sales@salessnap.com",
}

// Renderer turns quotations and delivery notes into PDF bytes. The VAT rate
// is fixed at construction so every document rendered by one instance uses
// the same tax profile.
type Renderer struct {
	issuer  Issuer
	vatRate float64
	log     *logrus.Logger
}

func NewRenderer(vatRate float64, log *logrus.Logger) *Renderer {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Renderer{issuer: DefaultIssuer, vatRate: vatRate, log: log}
}

var (
	grey     = &props.Color{Red: 100, Green: 100, Blue: 100}
	headerBg = &props.Color{Red: 66, Green: 66, Blue: 66}
	white    = &props.Color{Red: 255, Green: 255, Blue: 255}
)

func newDocument() core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()
	return maroto.New(cfg)
}

func labelText(s string, size float64) core.Col {
	return col.New(12).Add(text.New(s, props.Text{Size: size, Align: align.Left}))
}

// titleRow renders the centered document title.
func titleRow(title string) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New(title, props.Text{Size: 18, Style: fontstyle.Bold, Align: align.Center}),
		),
	)
}

// issuerRows renders the letterhead on the left and the reference block on
// the right: reference number, date, status and issuer name.
func (r *Renderer) issuerRows(ref, date, status, issuedBy string) []core.Row {
	left := []string{
		r.issuer.Address1,
		r.issuer.Address2,
		"Phone: " + r.issuer.Phone,
		"Email: " + r.issuer.Email,
	}
	right := []string{
		"Date: " + date,
		"Status: " + strings.ToUpper(status),
		"Issued by: " + issuedBy,
		"",
	}
	rows := []core.Row{
		row.New(7).Add(
			col.New(6).Add(text.New(r.issuer.Name, props.Text{Size: 11, Style: fontstyle.Bold})),
			col.New(6).Add(text.New(ref, props.Text{Size: 11, Style: fontstyle.Bold, Align: align.Right})),
		),
	}
	for i := range left {
		rows = append(rows, row.New(5).Add(
			col.New(6).Add(text.New(left[i], props.Text{Size: 9, Color: grey})),
			col.New(6).Add(text.New(right[i], props.Text{Size: 9, Color: grey, Align: align.Right})),
		))
	}
	return rows
}

// clientRows renders the recipient block. A deleted client degrades to the
// placeholder label rather than failing the render.
func clientRows(heading string, client *models.Client) []core.Row {
	rows := []core.Row{
		row.New(6),
		row.New(7).Add(col.New(12).Add(
			text.New(heading, props.Text{Size: 11, Style: fontstyle.Bold}),
		)),
	}
	if client == nil {
		rows = append(rows, row.New(5).Add(labelText(models.UnknownClientLabel, 9)))
		return rows
	}
	lines := []string{
		strings.TrimSpace(client.Name + " " + client.Surname),
		client.Company,
		"Phone: " + client.Phone,
		"Email: " + client.Email,
	}
	for _, l := range lines {
		if strings.TrimSpace(l) == "" || l == "Phone: " || l == "Email: " {
			continue
		}
		rows = append(rows, row.New(5).Add(labelText(l, 9)))
	}
	return rows
}

func headerCell(size int, label string, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Size: 9, Style: fontstyle.Bold, Align: a, Color: white,
	}))
}

func bodyCell(size int, value string, a align.Type) core.Col {
	return col.New(size).Add(text.New(value, props.Text{Size: 9, Align: a, Top: 1}))
}

// productByID resolves a catalog product; missing products are reported as
// nil so rows can fall back to the placeholder label.
func productByID(catalog []models.Product, id string) *models.Product {
	for i := range catalog {
		if catalog[i].ID == id {
			return &catalog[i]
		}
	}
	return nil
}

// thumbnail loads a product image from disk. Any failure is logged and the
// row renders without the image.
func (r *Renderer) thumbnail(p *models.Product) (core.Col, bool) {
	if p == nil || p.ImageURL == "" {
		return nil, false
	}
	data, err := os.ReadFile(p.ImageURL)
	if err != nil {
		r.log.WithError(err).WithField("product", p.ID).Warn("skipping product thumbnail")
		return nil, false
	}
	ext := extension.Jpg
	if strings.HasSuffix(strings.ToLower(p.ImageURL), ".png") {
		ext = extension.Png
	}
	return image.NewFromBytesCol(1, data, ext, props.Rect{Center: true, Percent: 85}), true
}

// footerRows renders the validity disclaimer and generation stamp.
func (r *Renderer) footerRows(disclaimer string) []core.Row {
	stamp := fmt.Sprintf("Generated on %s by %s", time.Now().Format("January 2, 2006"), r.issuer.Name)
	rows := []core.Row{row.New(8)}
	if disclaimer != "" {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(disclaimer, props.Text{Size: 8, Style: fontstyle.Italic, Color: grey}),
		)))
	}
	rows = append(rows, row.New(5).Add(col.New(12).Add(
		text.New(stamp, props.Text{Size: 8, Color: grey}),
	)))
	return rows
}

// emit assembles the planned pages and generates the PDF bytes.
func emit(headerRows []core.Row, tableRows []core.Row, plan TablePlan, trailerRows []core.Row) ([]byte, error) {
	m := newDocument()
	pages := make([]core.Page, 0, plan.PageCount())
	for i, idxs := range plan.Pages {
		p := page.New()
		if i == 0 {
			p.Add(headerRows...)
		}
		for _, idx := range idxs {
			p.Add(tableRows[idx])
		}
		if i == plan.PageCount()-1 {
			p.Add(trailerRows...)
		}
		pages = append(pages, p)
	}
	m.AddPages(pages...)

	doc, err := m.Generate()
	if err != nil {
		return nil, errors.Wrap(err, "generating pdf")
	}
	return doc.GetBytes(), nil
}

func formatDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

func discountLabel(d float64) string {
	if d <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.0f%%", d)
}
