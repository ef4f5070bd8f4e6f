package fonts

// tinyData holds the 3x5 glyphs: three column bytes per glyph, bit 0 is the top row.
var tinyData = [...]byte{
	0x00, 0x00, 0x00, // ' '
	0x00, 0x17, 0x00, // '!'
	0x03, 0x00, 0x03, // '"'
	0x1f, 0x0a, 0x1f, // '#'
	0x12, 0x1f, 0x09, // '$'
	0x09, 0x04, 0x12, // '%'
	0x0a, 0x15, 0x1a, // '&'
	0x00, 0x03, 0x00, // '\''
	0x00, 0x0e, 0x11, // '('
	0x11, 0x0e, 0x00, // ')'
	0x0a, 0x04, 0x0a, // '*'
	0x04, 0x0e, 0x04, // '+'
	0x10, 0x08, 0x00, // ','
	0x04, 0x04, 0x04, // '-'
	0x00, 0x10, 0x00, // '.'
	0x18, 0x04, 0x03, // '/'
	0x1f, 0x11, 0x1f, // '0'
	0x12, 0x1f, 0x10, // '1'
	0x1d, 0x15, 0x17, // '2'
	0x15, 0x15, 0x1f, // '3'
	0x07, 0x04, 0x1f, // '4'
	0x17, 0x15, 0x1d, // '5'
	0x1f, 0x15, 0x1d, // '6'
	0x01, 0x19, 0x07, // '7'
	0x1f, 0x15, 0x1f, // '8'
	0x17, 0x15, 0x1f, // '9'
	0x00, 0x0a, 0x00, // ':'
	0x10, 0x0a, 0x00, // ';'
	0x04, 0x0a, 0x11, // '<'
	0x0a, 0x0a, 0x0a, // '='
	0x11, 0x0a, 0x04, // '>'
	0x01, 0x15, 0x02, // '?'
	0x0e, 0x15, 0x16, // '@'
	0x1e, 0x05, 0x1e, // 'A'
	0x1f, 0x15, 0x0a, // 'B'
	0x0e, 0x11, 0x11, // 'C'
	0x1f, 0x11, 0x0e, // 'D'
	0x1f, 0x15, 0x11, // 'E'
	0x1f, 0x05, 0x01, // 'F'
	0x0e, 0x11, 0x1d, // 'G'
	0x1f, 0x04, 0x1f, // 'H'
	0x11, 0x1f, 0x11, // 'I'
	0x08, 0x10, 0x0f, // 'J'
	0x1f, 0x04, 0x1b, // 'K'
	0x1f, 0x10, 0x10, // 'L'
	0x1f, 0x06, 0x1f, // 'M'
	0x1f, 0x01, 0x1e, // 'N'
	0x0e, 0x11, 0x0e, // 'O'
	0x1f, 0x05, 0x02, // 'P'
	0x0e, 0x19, 0x16, // 'Q'
	0x1f, 0x05, 0x1a, // 'R'
	0x12, 0x15, 0x09, // 'S'
	0x01, 0x1f, 0x01, // 'T'
	0x1f, 0x10, 0x1f, // 'U'
	0x0f, 0x10, 0x0f, // 'V'
	0x1f, 0x0c, 0x1f, // 'W'
	0x1b, 0x04, 0x1b, // 'X'
	0x03, 0x1c, 0x03, // 'Y'
	0x19, 0x15, 0x13, // 'Z'
	0x1f, 0x11, 0x00, // '['
	0x03, 0x04, 0x18, // '\\'
	0x00, 0x11, 0x1f, // ']'
	0x02, 0x01, 0x02, // '^'
	0x10, 0x10, 0x10, // '_'
	0x01, 0x02, 0x00, // '`'
	0x1e, 0x05, 0x1e, // 'a'
	0x1f, 0x15, 0x0a, // 'b'
	0x0e, 0x11, 0x11, // 'c'
	0x1f, 0x11, 0x0e, // 'd'
	0x1f, 0x15, 0x11, // 'e'
	0x1f, 0x05, 0x01, // 'f'
	0x0e, 0x11, 0x1d, // 'g'
	0x1f, 0x04, 0x1f, // 'h'
	0x11, 0x1f, 0x11, // 'i'
	0x08, 0x10, 0x0f, // 'j'
	0x1f, 0x04, 0x1b, // 'k'
	0x1f, 0x10, 0x10, // 'l'
	0x1f, 0x06, 0x1f, // 'm'
	0x1f, 0x01, 0x1e, // 'n'
	0x0e, 0x11, 0x0e, // 'o'
	0x1f, 0x05, 0x02, // 'p'
	0x0e, 0x19, 0x16, // 'q'
	0x1f, 0x05, 0x1a, // 'r'
	0x12, 0x15, 0x09, // 's'
	0x01, 0x1f, 0x01, // 't'
	0x1f, 0x10, 0x1f, // 'u'
	0x0f, 0x10, 0x0f, // 'v'
	0x1f, 0x0c, 0x1f, // 'w'
	0x1b, 0x04, 0x1b, // 'x'
	0x03, 0x1c, 0x03, // 'y'
	0x19, 0x15, 0x13, // 'z'
	0x04, 0x1f, 0x11, // '{'
	0x00, 0x1f, 0x00, // '|'
	0x11, 0x1f, 0x04, // '}'
	0x04, 0x06, 0x02, // '~'
	0x02, 0x05, 0x02, // '°'
	0x02, 0x1f, 0x02, // '↑'
	0x08, 0x1f, 0x08, // '↓'
	0x04, 0x0e, 0x1f, // '←'
	0x1f, 0x0e, 0x04, // '→'
	0x1c, 0x13, 0x1c, // 'Δ'
}
