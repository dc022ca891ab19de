// Package transform implements the text transformation proxy: it validates a
// request, builds the instruction for the requested mode, forwards it to the
// completion provider once and returns the extracted text.
package transform

// Mode selects which transformation the caller requested.
type Mode string

const (
	ModeSummarize Mode = "summarize"
	ModeRewrite   Mode = "rewrite"
	// ModeChat forwards the text verbatim.
	ModeChat Mode = "chat"
)

func (m Mode) Valid() bool {
	switch m {
	case ModeSummarize, ModeRewrite, ModeChat:
		return true
	}
	return false
}

// Style is the closed set of rewrite styles.
type Style string

const (
	StyleFormal   Style = "formal"
	StyleCasual   Style = "casual"
	StyleCreative Style = "creative"
)

// Styles lists the accepted rewrite styles in display order.
var Styles = []Style{StyleFormal, StyleCasual, StyleCreative}

func (s Style) Valid() bool {
	for _, v := range Styles {
		if s == v {
			return true
		}
	}
	return false
}

// Request is a single transformation request. Style is required iff Mode is ModeRewrite.
type Request struct {
	Mode  Mode   `json:"mode" validate:"required"`
	Text  string `json:"text" validate:"required,notblank"`
	Style Style  `json:"style,omitempty"`
}
