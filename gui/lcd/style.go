package lcd

import (
	"errors"

	"edgelcd/gui/fonts"
)

// Style is the text style word. Its bit positions are a fixed contract shared
// with screen scripts and stored layouts; do not renumber.
type Style uint16

const (
	Blink      Style = 0x01
	Inverse    Style = 0x02
	Right      Style = 0x04
	Condensed  Style = 0x08
	FixedWidth Style = 0x10
	Centered   Style = 0x20
	Bold       Style = 0x40

	SizeMask Style = 0x0700
	StdSize  Style = 0x0000
	TinSize  Style = 0x0100
	SmlSize  Style = 0x0200
	MidSize  Style = 0x0300
	DblSize  Style = 0x0400
	XXLSize  Style = 0x0500

	// Vertical stacks characters top to bottom instead of left to right.
	Vertical Style = 0x0800
	EraseBG  Style = 0x8000

	// Left is the default alignment and has no bit.
	Left Style = 0
)

// Align is the horizontal anchoring of a text run.
type Align uint8

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

// ErrAlignConflict is reported by Validate when Right and Centered are both set.
var ErrAlignConflict = errors.New("lcd: both right and centered alignment set")

// Class returns the size class selected by the style.
func (s Style) Class() fonts.Class { return fonts.Class((s & SizeMask) >> 8) }

// WithSize replaces the size class.
func (s Style) WithSize(size Style) Style { return s&^SizeMask | size&SizeMask }

// Align returns the alignment. Right takes precedence over Centered.
func (s Style) Align() Align {
	switch {
	case s&Right != 0:
		return AlignRight
	case s&Centered != 0:
		return AlignCenter
	}
	return AlignLeft
}

// Validate reports style combinations that a text call cannot honour.
func (s Style) Validate() error {
	if s&Right != 0 && s&Centered != 0 {
		return ErrAlignConflict
	}
	return nil
}

// NumberMode selects how a number is laid out. The modes are exclusive.
type NumberMode uint8

const (
	Plain NumberMode = iota
	Leading0
	Prec1
	Prec2
)

// Precision is the number of decimals the mode inserts.
func (m NumberMode) Precision() int {
	switch m {
	case Prec1:
		return 1
	case Prec2:
		return 2
	}
	return 0
}

// NumberFormat is the numeric counterpart of Style.
//
// Len is the minimum number of digit glyphs, sign and decimal point excluded.
// Plain ignores it; Leading0 and the precision modes zero-pad up to it.
type NumberFormat struct {
	Mode NumberMode
	Len  int
}

// Legacy flag word bits that alias the FixedWidth/Centered positions inside
// number calls.
const (
	FlagLeading0 uint16 = 0x10
	FlagPrec1    uint16 = 0x20
	FlagPrec2    uint16 = 0x30

	numberModeMask uint16 = 0x30
)

// TextFlags reads a legacy flag word in a text call context.
func TextFlags(word uint16) Style { return Style(word) }

// SplitNumberFlags reads a legacy flag word in a number call context: the bits
// shared with FixedWidth and Centered become the number mode.
func SplitNumberFlags(word uint16) (Style, NumberFormat) {
	var f NumberFormat
	switch word & numberModeMask {
	case FlagLeading0:
		f.Mode = Leading0
	case FlagPrec1:
		f.Mode = Prec1
	case FlagPrec2:
		f.Mode = Prec2
	}
	return Style(word &^ numberModeMask), f
}

// Extent is the horizontal span covered by the last text or number draw.
// Callers chain placements from it instead of measuring again.
type Extent struct {
	Left  int
	Right int
	Next  int
}

// Width is Right - Left.
func (e Extent) Width() int { return e.Right - e.Left }
