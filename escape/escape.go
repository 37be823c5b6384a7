// Package escape converts between raw bytes and the escaped form used inside
// quoted strings.
package escape

var decodeTable = map[byte]byte{
	'0': 0,
	'a': '\a',
	'b': '\b',
	'f': '\f',
	'n': '\n',
	'r': '\r',
	't': '\t',
	'v': '\v',
	'?': '?',
}

var encodeTable = map[byte]string{
	0:    `\0`,
	'\a': `\a`,
	'\b': `\b`,
	'\f': `\f`,
	'\n': `\n`,
	'\r': `\r`,
	'\t': `\t`,
	'\v': `\v`,
	'?':  `\?`,
	'"':  `\"`,
	'\'': `\'`,
	'\\': `\\`,
}

// UnescapedLen returns the number of bytes src decodes to. Every escape pair
// and every ordinary byte count as one.
func UnescapedLen(src []byte) int {
	n := 0
	for p := 0; p < len(src); p++ {
		if src[p] == '\\' {
			p++
		}
		n++
	}
	return n
}

// Unescape decodes src into a newly allocated slice of exactly
// UnescapedLen(src) bytes.
func Unescape(src []byte) []byte {
	dst := make([]byte, UnescapedLen(src))
	UnescapeTo(dst, src)
	return dst
}

// UnescapeTo decodes src into dst and returns the number of bytes written. dst
// must hold at least UnescapedLen(src) bytes.
//
// A backslash followed by a byte outside the known escapes yields that byte,
// a trailing lone backslash yields a backslash.
func UnescapeTo(dst, src []byte) int {
	n := 0
	for p := 0; p < len(src); p++ {
		c := src[p]
		if c == '\\' {
			p++
			if p == len(src) {
				dst[n] = '\\'
				n++
				break
			}
			c = src[p]
			if d, ok := decodeTable[c]; ok {
				c = d
			}
		}
		dst[n] = c
		n++
	}
	return n
}

// EscapeByte returns the two-character escape for c, and false if c is written
// as is.
func EscapeByte(c byte) (string, bool) {
	s, ok := encodeTable[c]
	return s, ok
}

// AppendEscaped appends the escaped form of src to dst and returns the
// extended slice.
func AppendEscaped(dst, src []byte) []byte {
	for _, c := range src {
		if s, ok := encodeTable[c]; ok {
			dst = append(dst, s...)
			continue
		}
		dst = append(dst, c)
	}
	return dst
}
