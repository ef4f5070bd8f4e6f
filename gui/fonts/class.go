package fonts

// Class is a text size class.
type Class uint8

const (
	ClassStd Class = iota
	ClassTiny
	ClassSmall
	ClassMid
	ClassDouble
	ClassXXL

	NumClasses
)

var classNames = [NumClasses]string{"std", "tiny", "small", "mid", "double", "xxl"}

func (c Class) String() string {
	if c >= NumClasses {
		return "unknown"
	}
	return classNames[c]
}

// Face is a table plus the integer pixel duplication applied when drawing it.
//
// Classes above the standard size never re-rasterize: each glyph column is
// repeated ScaleX times and each row ScaleY times.
type Face struct {
	Table  *Table
	ScaleX int
	ScaleY int
}

// Height is the scaled glyph height in pixels.
func (f Face) Height() int { return f.Table.Height * f.ScaleY }

// CellHeight is the scaled height of a character cell including the gap row.
func (f Face) CellHeight() int { return f.Table.CellHeight() * f.ScaleY }

// Pitch is the scaled fixed advance.
func (f Face) Pitch() int { return f.Table.Pitch() * f.ScaleX }

// Set maps every size class to a face.
type Set [NumClasses]Face

// Default returns the standard strategy per class:
//
//	std    5x7, no scaling
//	tiny   3x5, no scaling
//	small  4x6, no scaling
//	mid    5x7, rows doubled
//	double 5x7, columns and rows doubled
//	xxl    5x7, columns tripled, rows quadrupled
func Default() Set {
	return Set{
		ClassStd:    {Table: Std, ScaleX: 1, ScaleY: 1},
		ClassTiny:   {Table: Tiny, ScaleX: 1, ScaleY: 1},
		ClassSmall:  {Table: Small, ScaleX: 1, ScaleY: 1},
		ClassMid:    {Table: Std, ScaleX: 1, ScaleY: 2},
		ClassDouble: {Table: Std, ScaleX: 2, ScaleY: 2},
		ClassXXL:    {Table: Std, ScaleX: 3, ScaleY: 4},
	}
}

// Face returns the face for c, falling back to the standard class.
func (s Set) Face(c Class) Face {
	if c >= NumClasses || s[c].Table == nil {
		return s[ClassStd]
	}
	return s[c]
}
