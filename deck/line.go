package deck

// LineKind classifies a body line of a content slide. Keeping the
// classification in a tag rather than in lexical markers on the text means
// empty or space-sensitive lines cannot be misclassified.
type LineKind int

const (
	// KindBullet is a first-level body bullet.
	KindBullet LineKind = iota
	// KindHeader is a bold, unindented section header inside a slide body.
	KindHeader
	// KindSubBullet is a second-level bullet nested under the preceding bullet.
	KindSubBullet
)

// Line is one body line of a content slide.
type Line struct {
	Kind LineKind
	Text string
}

// Header tags text as a bold section header (level 0).
func Header(text string) Line { return Line{Kind: KindHeader, Text: text} }

// Bullet tags text as a first-level bullet (level 1).
func Bullet(text string) Line { return Line{Kind: KindBullet, Text: text} }

// SubBullet tags text as a second-level bullet (level 2).
func SubBullet(text string) Line { return Line{Kind: KindSubBullet, Text: text} }
