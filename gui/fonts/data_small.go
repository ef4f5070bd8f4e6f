package fonts

// smallData holds the 4x6 glyphs: four column bytes per glyph, bit 0 is the top row.
var smallData = [...]byte{
	0x00, 0x00, 0x00, 0x00, // ' '
	0x00, 0x2f, 0x00, 0x00, // '!'
	0x03, 0x00, 0x03, 0x00, // '"'
	0x0a, 0x1f, 0x0a, 0x1f, // '#'
	0x12, 0x17, 0x1d, 0x09, // '$'
	0x33, 0x0b, 0x34, 0x33, // '%'
	0x1a, 0x25, 0x2a, 0x10, // '&'
	0x00, 0x03, 0x00, 0x00, // '\''
	0x00, 0x1e, 0x21, 0x00, // '('
	0x00, 0x21, 0x1e, 0x00, // ')'
	0x0a, 0x04, 0x0a, 0x00, // '*'
	0x04, 0x0e, 0x04, 0x00, // '+'
	0x20, 0x10, 0x00, 0x00, // ','
	0x04, 0x04, 0x04, 0x00, // '-'
	0x00, 0x20, 0x00, 0x00, // '.'
	0x20, 0x18, 0x06, 0x01, // '/'
	0x1e, 0x21, 0x21, 0x1e, // '0'
	0x22, 0x3f, 0x20, 0x00, // '1'
	0x32, 0x29, 0x25, 0x22, // '2'
	0x21, 0x25, 0x25, 0x1a, // '3'
	0x0f, 0x08, 0x3f, 0x08, // '4'
	0x27, 0x25, 0x25, 0x19, // '5'
	0x1e, 0x25, 0x25, 0x18, // '6'
	0x01, 0x39, 0x05, 0x03, // '7'
	0x1a, 0x25, 0x25, 0x1a, // '8'
	0x06, 0x29, 0x29, 0x1e, // '9'
	0x00, 0x12, 0x00, 0x00, // ':'
	0x20, 0x12, 0x00, 0x00, // ';'
	0x04, 0x0a, 0x11, 0x00, // '<'
	0x0a, 0x0a, 0x0a, 0x00, // '='
	0x11, 0x0a, 0x04, 0x00, // '>'
	0x02, 0x29, 0x05, 0x02, // '?'
	0x1e, 0x21, 0x2d, 0x0e, // '@'
	0x3e, 0x09, 0x09, 0x3e, // 'A'
	0x3f, 0x25, 0x25, 0x1a, // 'B'
	0x1e, 0x21, 0x21, 0x12, // 'C'
	0x3f, 0x21, 0x21, 0x1e, // 'D'
	0x3f, 0x25, 0x25, 0x21, // 'E'
	0x3f, 0x05, 0x05, 0x01, // 'F'
	0x1e, 0x21, 0x25, 0x3c, // 'G'
	0x3f, 0x04, 0x04, 0x3f, // 'H'
	0x21, 0x3f, 0x21, 0x00, // 'I'
	0x10, 0x20, 0x21, 0x1f, // 'J'
	0x3f, 0x04, 0x0a, 0x31, // 'K'
	0x3f, 0x20, 0x20, 0x20, // 'L'
	0x3f, 0x06, 0x06, 0x3f, // 'M'
	0x3f, 0x02, 0x04, 0x3f, // 'N'
	0x1e, 0x21, 0x21, 0x1e, // 'O'
	0x3f, 0x09, 0x09, 0x06, // 'P'
	0x1e, 0x21, 0x11, 0x2e, // 'Q'
	0x3f, 0x09, 0x19, 0x26, // 'R'
	0x22, 0x25, 0x25, 0x19, // 'S'
	0x01, 0x3f, 0x01, 0x00, // 'T'
	0x1f, 0x20, 0x20, 0x1f, // 'U'
	0x0f, 0x30, 0x30, 0x0f, // 'V'
	0x3f, 0x18, 0x18, 0x3f, // 'W'
	0x33, 0x0c, 0x0c, 0x33, // 'X'
	0x07, 0x38, 0x07, 0x00, // 'Y'
	0x31, 0x29, 0x25, 0x23, // 'Z'
	0x3f, 0x21, 0x00, 0x00, // '['
	0x01, 0x06, 0x18, 0x20, // '\\'
	0x00, 0x21, 0x3f, 0x00, // ']'
	0x02, 0x01, 0x02, 0x00, // '^'
	0x20, 0x20, 0x20, 0x20, // '_'
	0x01, 0x02, 0x00, 0x00, // '`'
	0x3e, 0x09, 0x09, 0x3e, // 'a'
	0x3f, 0x25, 0x25, 0x1a, // 'b'
	0x1e, 0x21, 0x21, 0x12, // 'c'
	0x3f, 0x21, 0x21, 0x1e, // 'd'
	0x3f, 0x25, 0x25, 0x21, // 'e'
	0x3f, 0x05, 0x05, 0x01, // 'f'
	0x1e, 0x21, 0x25, 0x3c, // 'g'
	0x3f, 0x04, 0x04, 0x3f, // 'h'
	0x21, 0x3f, 0x21, 0x00, // 'i'
	0x10, 0x20, 0x21, 0x1f, // 'j'
	0x3f, 0x04, 0x0a, 0x31, // 'k'
	0x3f, 0x20, 0x20, 0x20, // 'l'
	0x3f, 0x06, 0x06, 0x3f, // 'm'
	0x3f, 0x02, 0x04, 0x3f, // 'n'
	0x1e, 0x21, 0x21, 0x1e, // 'o'
	0x3f, 0x09, 0x09, 0x06, // 'p'
	0x1e, 0x21, 0x11, 0x2e, // 'q'
	0x3f, 0x09, 0x19, 0x26, // 'r'
	0x22, 0x25, 0x25, 0x19, // 's'
	0x01, 0x3f, 0x01, 0x00, // 't'
	0x1f, 0x20, 0x20, 0x1f, // 'u'
	0x0f, 0x30, 0x30, 0x0f, // 'v'
	0x3f, 0x18, 0x18, 0x3f, // 'w'
	0x33, 0x0c, 0x0c, 0x33, // 'x'
	0x07, 0x38, 0x07, 0x00, // 'y'
	0x31, 0x29, 0x25, 0x23, // 'z'
	0x04, 0x1e, 0x21, 0x00, // '{'
	0x00, 0x3f, 0x00, 0x00, // '|'
	0x00, 0x21, 0x1e, 0x04, // '}'
	0x04, 0x02, 0x04, 0x02, // '~'
	0x02, 0x05, 0x02, 0x00, // '°'
	0x02, 0x1f, 0x02, 0x00, // '↑'
	0x08, 0x1f, 0x08, 0x00, // '↓'
	0x04, 0x0e, 0x1f, 0x04, // '←'
	0x04, 0x1f, 0x0e, 0x04, // '→'
	0x38, 0x26, 0x38, 0x00, // 'Δ'
}
