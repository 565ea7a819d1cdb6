package swiftdemangle

import (
	"strconv"
	"strings"
)

const upperHexDigits = "0123456789ABCDEF"

// printBuffer accumulates the rendered text of one print call.
type printBuffer struct {
	sb strings.Builder
}

func (b *printBuffer) Len() int {
	return b.sb.Len()
}

func (b *printBuffer) String() string {
	return b.sb.String()
}

func (b *printBuffer) Reset() {
	b.sb.Reset()
}

func (b *printBuffer) WriteString(s string) {
	b.sb.WriteString(s)
}

func (b *printBuffer) writeByte(c byte) {
	b.sb.WriteByte(c)
}

func (b *printBuffer) WriteUint(n uint64) {
	b.sb.WriteString(strconv.FormatUint(n, 10))
}

func (b *printBuffer) WriteInt(n int64) {
	b.sb.WriteString(strconv.FormatInt(n, 10))
}

// WriteHex writes n in uppercase hexadecimal without a "0x" prefix.
func (b *printBuffer) WriteHex(n uint64) {
	b.sb.WriteString(strings.ToUpper(strconv.FormatUint(n, 16)))
}

// WriteQuoted writes s surrounded by double quotes, escaping it byte by byte.
func (b *printBuffer) WriteQuoted(s string) {
	b.sb.WriteString(Quote(s))
}

// Quote wraps the raw bytes of s in double quotes. Backslash, tab, newline,
// carriage return, double quote and NUL use two-character escapes; any other
// byte outside printable ASCII is written as \xHH. Invalid UTF-8 is fine:
// the input is never decoded.
func Quote(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\\':
			sb.WriteString(`\\`)
		case '\t':
			sb.WriteString(`\t`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '"':
			sb.WriteString(`\"`)
		case 0:
			sb.WriteString(`\0`)
		default:
			if c < 0x20 || c >= 0x7F {
				sb.WriteString(`\x`)
				sb.WriteByte(upperHexDigits[c>>4])
				sb.WriteByte(upperHexDigits[c&0xF])
			} else {
				sb.WriteByte(c)
			}
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
