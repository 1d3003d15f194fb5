package platform

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// CodePageUTF8 is the Windows identifier for UTF-8.
const CodePageUTF8 uint32 = 65001

var codePages = map[uint32]encoding.Encoding{
	437:   charmap.CodePage437,
	850:   charmap.CodePage850,
	852:   charmap.CodePage852,
	855:   charmap.CodePage855,
	858:   charmap.CodePage858,
	860:   charmap.CodePage860,
	862:   charmap.CodePage862,
	863:   charmap.CodePage863,
	865:   charmap.CodePage865,
	866:   charmap.CodePage866,
	874:   charmap.Windows874,
	932:   japanese.ShiftJIS,
	936:   simplifiedchinese.GBK,
	949:   korean.EUCKR,
	950:   traditionalchinese.Big5,
	1250:  charmap.Windows1250,
	1251:  charmap.Windows1251,
	1252:  charmap.Windows1252,
	1253:  charmap.Windows1253,
	1254:  charmap.Windows1254,
	1255:  charmap.Windows1255,
	1256:  charmap.Windows1256,
	1257:  charmap.Windows1257,
	1258:  charmap.Windows1258,
	20866: charmap.KOI8R,
	28591: charmap.ISO8859_1,
	54936: simplifiedchinese.GB18030,
}

// DecodeConsole converts output written in code page cp to a UTF-8 string.
// Unknown code pages and undecodable input fall back to UTF-8 with invalid
// sequences replaced.
func DecodeConsole(cp uint32, b []byte) string {
	if enc, ok := codePages[cp]; ok {
		if out, err := enc.NewDecoder().Bytes(b); err == nil {
			return string(out)
		}
	}
	if utf8.Valid(b) {
		return string(b)
	}
	return strings.ToValidUTF8(string(b), "�")
}

// ConsoleDecoder returns a decoder bound to the platform's console code page.
func ConsoleDecoder(p Platform) func([]byte) string {
	cp := p.ConsoleCodePage()
	return func(b []byte) string {
		return DecodeConsole(cp, b)
	}
}
