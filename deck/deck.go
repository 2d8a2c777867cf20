package deck

// Layout selects which placeholders a slide renders.
type Layout int

const (
	// LayoutTitle is the opening layout: centered title plus subtitle lines.
	LayoutTitle Layout = iota
	// LayoutContent is the standard layout: heading plus a bulleted body.
	LayoutContent
)

// Page dimensions of the generated deck in inches, 16:9 widescreen.
const (
	PageWidthInches  = 13.333
	PageHeightInches = 7.5
)

// Font sizes in points.
const (
	FontTitle    = 44
	FontSubtitle = 20
	FontHeading  = 28
)

// Paragraph is one rendered line of a slide body.
type Paragraph struct {
	Text  string
	Level int // 0, 1 or 2
	Bold  bool
	Size  int // points
}

// Slide is a single page of the deck. Builders return Slide values;
// a Slide is never mutated after its builder returns.
type Slide struct {
	Layout   Layout
	Title    string
	Subtitle []string // title layout only, one entry per line
	Body     []Paragraph
}

// Deck is the in-memory document model: page geometry, document
// properties and the ordered slide sequence.
type Deck struct {
	Title      string
	Author     string
	PageWidth  float64 // inches
	PageHeight float64 // inches
	Slides     []Slide
}

// New creates an empty widescreen deck with the given document properties.
func New(title, author string) *Deck {
	return &Deck{
		Title:      title,
		Author:     author,
		PageWidth:  PageWidthInches,
		PageHeight: PageHeightInches,
	}
}

// Append adds a slide to the end of the deck. All appends are performed
// by the orchestrator; slide builders never touch the deck.
func (d *Deck) Append(s Slide) {
	d.Slides = append(d.Slides, s)
}

// RenderBody converts a lead paragraph and a list of tagged lines into the
// slide's paragraph sequence. Headers render bold at level 0, bullets at
// level 1, sub-bullets at level 2; every body paragraph uses defaultSize.
// The lead keeps its own size when set, otherwise it also gets defaultSize.
func RenderBody(lead Paragraph, lines []Line, defaultSize int) []Paragraph {
	if lead.Size == 0 {
		lead.Size = defaultSize
	}
	out := make([]Paragraph, 0, len(lines)+1)
	out = append(out, lead)
	for _, ln := range lines {
		p := Paragraph{Text: ln.Text, Size: defaultSize}
		switch ln.Kind {
		case KindHeader:
			p.Level = 0
			p.Bold = true
		case KindSubBullet:
			p.Level = 2
		default:
			p.Level = 1
		}
		out = append(out, p)
	}
	return out
}
