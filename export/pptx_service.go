package export

import (
	"bytes"
	"fmt"

	ppt "github.com/VantageDataChat/GoPPT"

	"qadeck/deck"
)

// PPTXService renders a deck.Deck to PowerPoint format using GoPPT
// (pure Go, zero dependencies).
type PPTXService struct{}

// NewPPTXService creates a new PPTX render service.
func NewPPTXService() *PPTXService {
	return &PPTXService{}
}

const (
	emuPerInch = 914400

	// Accent bar heights in page inches.
	titleBarHeight   = 0.15
	contentBarHeight = 0.08
)

// Palette (ARGB).
const (
	hexAccent  = "FF3B82F6"
	hexHeading = "FF1E40AF"
	hexBody    = "FF334155"
	hexMuted   = "FF64748B"
)

// emu converts page inches to EMU.
func emu(inches float64) int64 {
	return int64(inches * emuPerInch)
}

// helper: create a solid fill
func solidFill(argb string) *ppt.Fill {
	return ppt.NewFill().SetSolid(ppt.NewColor(argb))
}

// helper: set paragraph alignment to center
func alignCenter(p *ppt.Paragraph) {
	p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalCenter))
}

// RenderDeck renders the deck to .pptx bytes.
func (s *PPTXService) RenderDeck(d *deck.Deck) ([]byte, error) {
	p := ppt.New()
	p.GetDocumentProperties().Title = d.Title
	p.GetDocumentProperties().Creator = d.Author

	// 13.333 x 7.5in widescreen page (12192000 x 6858000 EMU).
	p.GetLayout().SetLayout(ppt.LayoutScreen16x9)

	for i, sl := range d.Slides {
		var target *ppt.Slide
		if i == 0 {
			target = p.GetActiveSlide()
		} else {
			target = p.CreateSlide()
		}
		switch sl.Layout {
		case deck.LayoutTitle:
			s.renderTitleSlide(target, d, sl)
		default:
			s.renderContentSlide(target, d, sl)
		}
	}

	w, err := ppt.NewWriter(p, ppt.WriterPowerPoint2007)
	if err != nil {
		return nil, fmt.Errorf("failed to create PPTX writer: %w", err)
	}

	var buf bytes.Buffer
	if err := w.(*ppt.PPTXWriter).WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write PPTX: %w", err)
	}
	return buf.Bytes(), nil
}

// renderTitleSlide renders the title layout: centered title plus subtitle
// lines, framed by accent bars.
func (s *PPTXService) renderTitleSlide(slide *ppt.Slide, d *deck.Deck, sl deck.Slide) {
	topBar := slide.CreateRichTextShape()
	topBar.SetOffsetX(0).SetOffsetY(0)
	topBar.SetWidth(emu(d.PageWidth)).SetHeight(emu(titleBarHeight))
	topBar.SetFill(solidFill(hexAccent))

	titleShape := slide.CreateRichTextShape()
	titleShape.SetOffsetX(emu(0.7)).SetOffsetY(emu(2.3))
	titleShape.SetWidth(emu(11.9)).SetHeight(emu(1.3))
	tr := titleShape.CreateTextRun(sl.Title)
	tr.GetFont().SetSize(deck.FontTitle).SetBold(true).SetColor(ppt.NewColor(hexHeading))
	alignCenter(titleShape.GetActiveParagraph())

	if len(sl.Subtitle) > 0 {
		subShape := slide.CreateRichTextShape()
		subShape.SetOffsetX(emu(0.7)).SetOffsetY(emu(4.0))
		subShape.SetWidth(emu(11.9)).SetHeight(emu(1.2))
		for i, line := range sl.Subtitle {
			if i > 0 {
				subShape.CreateParagraph()
			}
			str := subShape.CreateTextRun(line)
			str.GetFont().SetSize(deck.FontSubtitle).SetColor(ppt.NewColor(hexMuted))
			alignCenter(subShape.GetActiveParagraph())
		}
	}

	bottomBar := slide.CreateRichTextShape()
	bottomBar.SetOffsetX(0).SetOffsetY(emu(d.PageHeight - titleBarHeight))
	bottomBar.SetWidth(emu(d.PageWidth)).SetHeight(emu(titleBarHeight))
	bottomBar.SetFill(solidFill(hexAccent))
}

// renderContentSlide renders the content layout: heading plus one body
// shape holding all paragraphs, each carrying its indentation level.
func (s *PPTXService) renderContentSlide(slide *ppt.Slide, d *deck.Deck, sl deck.Slide) {
	topBar := slide.CreateRichTextShape()
	topBar.SetOffsetX(0).SetOffsetY(0)
	topBar.SetWidth(emu(d.PageWidth)).SetHeight(emu(contentBarHeight))
	topBar.SetFill(solidFill(hexAccent))

	headShape := slide.CreateRichTextShape()
	headShape.SetOffsetX(emu(0.55)).SetOffsetY(emu(0.35))
	headShape.SetWidth(emu(12.2)).SetHeight(emu(0.9))
	hr := headShape.CreateTextRun(sl.Title)
	hr.GetFont().SetSize(deck.FontHeading).SetBold(true).SetColor(ppt.NewColor(hexHeading))

	if len(sl.Body) == 0 {
		return
	}

	body := slide.CreateRichTextShape()
	body.SetOffsetX(emu(0.55)).SetOffsetY(emu(1.45))
	body.SetWidth(emu(12.2)).SetHeight(emu(5.7))
	for i, para := range sl.Body {
		if i > 0 {
			body.CreateParagraph()
		}
		run := body.CreateTextRun(para.Text)
		font := run.GetFont()
		font.SetSize(para.Size)
		if para.Bold {
			font.SetBold(true).SetColor(ppt.NewColor(hexHeading))
		} else {
			font.SetColor(ppt.NewColor(hexBody))
		}
		if para.Level > 0 {
			align := ppt.NewAlignment()
			align.Level = para.Level
			body.GetActiveParagraph().SetAlignment(align)
		}
	}
}
