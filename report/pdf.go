// Package report renders quotations into printable PDF documents.
//
// The layout is fixed: title block, issuing company on the left, billed
// client on the right, metadata line, itemized table, summary block, and
// optional terms. All monetary values go through the shared pricing
// formatter with the quotation's currency, so the document can never
// disagree with the API about a rendered amount.
package report

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/quotedesk/quotedesk/internal/pricing"
	"github.com/quotedesk/quotedesk/internal/quotations"
)

// ErrIncomplete indicates the quotation is missing the attached company
// or client required by the layout.
var ErrIncomplete = errors.New("quotation is missing company or client")

const (
	margin    = 20.0
	summaryW  = 60.0
	lineStep  = 5.0
	rowStep   = 7.0
	tableTopY = 110.0
)

var (
	headerFill = [3]int{59, 130, 246}
	stripeFill = [3]int{245, 245, 245}
	ruleGray   = [3]int{200, 200, 200}
	footerGray = 100
)

// Generator lays out quotations with gofpdf core fonts.
type Generator struct{}

func NewGenerator() *Generator { return &Generator{} }

// Filename returns the download name for a rendered quotation.
func Filename(q *quotations.Quotation) string {
	return q.QuoteNumber + ".pdf"
}

// Generate renders the quotation to PDF bytes. The quotation must have
// its company, client, and items attached; a currency formatting failure
// aborts the whole render rather than emitting a partial document.
func (g *Generator) Generate(q *quotations.Quotation) ([]byte, error) {
	if q.Company == nil || q.Client == nil {
		return nil, fmt.Errorf("%w: quotation %s", ErrIncomplete, q.QuoteNumber)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Quotation "+q.QuoteNumber, false)
	pdf.SetAutoPageBreak(true, margin)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, pageH := pdf.GetPageSize()
	textW := pageW - 2*margin

	line := func(y float64, align, text string) {
		pdf.SetXY(margin, y)
		pdf.CellFormat(textW, lineStep, tr(text), "", 0, align, false, 0, "")
	}

	// Title block
	pdf.SetFont("Helvetica", "B", 24)
	line(17, "C", "QUOTATION")
	pdf.SetFont("Helvetica", "", 10)
	line(25, "C", q.QuoteNumber)

	// Issuing company, left column
	pdf.SetFont("Helvetica", "B", 12)
	line(43, "L", q.Company.Name)
	pdf.SetFont("Helvetica", "", 9)
	y := 50.0
	for _, field := range partyLines(q.Company.Address, q.Company.City, q.Company.State, q.Company.PostalCode) {
		line(y, "L", field)
		y += lineStep
	}
	if q.Company.Email != nil && *q.Company.Email != "" {
		line(y, "L", "Email: "+*q.Company.Email)
		y += lineStep
	}
	if q.Company.Phone != nil && *q.Company.Phone != "" {
		line(y, "L", "Phone: "+*q.Company.Phone)
	}

	// Billed client, right column
	pdf.SetFont("Helvetica", "B", 10)
	line(43, "R", "BILL TO:")
	pdf.SetFont("Helvetica", "", 9)
	y = 50.0
	line(y, "R", q.Client.Name)
	y += lineStep
	for _, field := range partyLines(q.Client.Address, q.Client.City, q.Client.State, q.Client.PostalCode) {
		line(y, "R", field)
		y += lineStep
	}
	if q.Client.Email != nil && *q.Client.Email != "" {
		line(y, "R", *q.Client.Email)
	}

	// Divider and dates
	pdf.SetDrawColor(ruleGray[0], ruleGray[1], ruleGray[2])
	pdf.Line(margin, 85, pageW-margin, 85)

	pdf.SetFont("Helvetica", "", 9)
	line(90, "L", "Issue Date: "+pricing.FormatDate(q.IssueDate))
	if q.ValidUntil != nil {
		line(96, "L", "Valid Until: "+pricing.FormatDate(*q.ValidUntil))
	}

	// Item table
	endY, err := g.drawItemTable(pdf, tr, q)
	if err != nil {
		return nil, err
	}

	// Summary block, right-aligned
	summaryY, err := g.drawSummary(pdf, tr, q, pageW, endY+10)
	if err != nil {
		return nil, err
	}

	// Terms
	if q.Terms != nil && strings.TrimSpace(*q.Terms) != "" {
		termsY := summaryY + 20
		pdf.SetFont("Helvetica", "B", 10)
		line(termsY, "L", "Terms & Conditions:")
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetXY(margin, termsY+7)
		pdf.MultiCell(textW, 4, tr(*q.Terms), "", "L", false)
	}

	// Footer
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(footerGray, footerGray, footerGray)
	line(pageH-15, "C", "Thank you for your business!")
	pdf.SetTextColor(0, 0, 0)

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// drawItemTable renders the header and one striped row per item in stored
// sort order, returning the y position after the last row.
func (g *Generator) drawItemTable(pdf *gofpdf.Fpdf, tr func(string) string, q *quotations.Quotation) (float64, error) {
	colW := []float64{80, 30, 30, 30}
	colAlign := []string{"L", "C", "R", "R"}
	headers := []string{"Description", "Quantity", "Unit Price", "Total"}

	pdf.SetXY(margin, tableTopY)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(headerFill[0], headerFill[1], headerFill[2])
	pdf.SetTextColor(255, 255, 255)
	for i, h := range headers {
		pdf.CellFormat(colW[i], 8, tr(h), "", 0, colAlign[i], true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	for i, item := range q.Items {
		unitPrice, err := pricing.FormatCurrency(item.UnitPrice, q.Currency)
		if err != nil {
			return 0, err
		}
		total, err := pricing.FormatCurrency(item.Total, q.Currency)
		if err != nil {
			return 0, err
		}

		fill := i%2 == 1
		pdf.SetFillColor(stripeFill[0], stripeFill[1], stripeFill[2])
		pdf.SetX(margin)
		cells := []string{
			item.Description,
			strconv.FormatFloat(item.Quantity, 'f', -1, 64),
			unitPrice,
			total,
		}
		for c, cell := range cells {
			pdf.CellFormat(colW[c], 7, tr(cell), "", 0, colAlign[c], fill, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf.GetY(), nil
}

// drawSummary renders the totals block: Subtotal always, Tax only when
// the rate is positive, Discount only when the value is positive, then
// the emphasized grand total. Returns the y position of the total row.
func (g *Generator) drawSummary(pdf *gofpdf.Fpdf, tr func(string) string, q *quotations.Quotation, pageW, startY float64) (float64, error) {
	labelX := pageW - margin - summaryW
	row := func(y float64, label, value string) {
		pdf.SetXY(labelX, y)
		pdf.CellFormat(summaryW/2, lineStep, tr(label), "", 0, "L", false, 0, "")
		pdf.CellFormat(summaryW/2, lineStep, tr(value), "", 0, "R", false, 0, "")
	}

	subtotal, err := pricing.FormatCurrency(q.Subtotal, q.Currency)
	if err != nil {
		return 0, err
	}

	y := startY
	pdf.SetFont("Helvetica", "", 9)
	row(y, "Subtotal:", subtotal)
	y += rowStep

	if q.TaxRate > 0 {
		tax, err := pricing.FormatCurrency(q.TaxAmount, q.Currency)
		if err != nil {
			return 0, err
		}
		row(y, fmt.Sprintf("Tax (%s%%):", formatRate(q.TaxRate)), tax)
		y += rowStep
	}

	if q.DiscountValue > 0 {
		discount, err := pricing.FormatCurrency(q.DiscountAmount, q.Currency)
		if err != nil {
			return 0, err
		}
		label := "Discount:"
		if q.DiscountType == pricing.DiscountPercentage {
			label = fmt.Sprintf("Discount (%s%%):", formatRate(q.DiscountValue))
		}
		row(y, label, "-"+discount)
		y += rowStep
	}

	pdf.SetDrawColor(headerFill[0], headerFill[1], headerFill[2])
	pdf.SetLineWidth(0.5)
	pdf.Line(labelX, y, pageW-margin, y)
	y += 8

	total, err := pricing.FormatCurrency(q.Total, q.Currency)
	if err != nil {
		return 0, err
	}
	pdf.SetFont("Helvetica", "B", 12)
	row(y, "TOTAL:", total)

	return y, nil
}

// partyLines builds the address block: the street address, then the
// city/state/postal line comma-joined with empty segments omitted.
func partyLines(address, city, state, postalCode *string) []string {
	var lines []string
	if address != nil && *address != "" {
		lines = append(lines, *address)
	}
	var segments []string
	for _, s := range []*string{city, state, postalCode} {
		if s != nil && *s != "" {
			segments = append(segments, *s)
		}
	}
	if len(segments) > 0 {
		lines = append(lines, strings.Join(segments, ", "))
	}
	return lines
}

// formatRate renders a percentage without trailing zeros (8.25, 10).
func formatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', -1, 64)
}
