package render

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

const (
	pageHeight   = 297.0
	bottomMargin = 15.0
	leftMargin   = 10.0
)

// page wraps one fpdf document: headers and table blocks are appended, then finalize emits the bytes.
type page struct {
	pdf    *fpdf.Fpdf
	family string
	text   func(string) string
}

func newPage(font *Font, title string) *page {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, bottomMargin)
	pdf.SetCreator("examdocs", true)

	p := &page{pdf: pdf, family: fallbackFamily, text: asciiText}
	if font != nil {
		pdf.AddUTF8FontFromBytes(font.Family, "", font.Regular)
		pdf.AddUTF8FontFromBytes(font.Family, "B", font.Bold)
		p.family = font.Family
		p.text = identity
	}
	pdf.SetTitle(p.text(title), font != nil)
	return p
}

func (p *page) addPage() {
	p.pdf.AddPage()
}

func (p *page) font(style string, size float64) {
	p.pdf.SetFont(p.family, style, size)
}

// cell writes one bordered or borderless cell. ln follows fpdf: 0 right, 1 next line.
func (p *page) cell(w, h float64, txt, border string, ln int, align string) {
	p.pdf.CellFormat(w, h, p.text(txt), border, ln, align, false, 0, "")
}

func (p *page) ln(h float64) {
	p.pdf.Ln(h)
}

// fits reports whether a block of height h still fits above the bottom margin.
func (p *page) fits(h float64) bool {
	return p.pdf.GetY()+h <= pageHeight-bottomMargin
}

func (p *page) pages() int {
	return p.pdf.PageNo()
}

func (p *page) finalize() ([]byte, error) {
	if err := p.pdf.Error(); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	var buf bytes.Buffer
	if err := p.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}
