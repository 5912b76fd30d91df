package engine

// punctuation maps ASCII punctuation to its full-width form. Quotes are
// handled separately so opening and closing forms alternate.
var punctuation = map[byte]string{
	',':  "，",
	'.':  "。",
	'?':  "？",
	'!':  "！",
	':':  "：",
	';':  "；",
	'(':  "（",
	')':  "）",
	'[':  "「",
	']':  "」",
	'{':  "『",
	'}':  "』",
	'<':  "《",
	'>':  "》",
	'~':  "～",
	'@':  "＠",
	'#':  "＃",
	'$':  "￥",
	'%':  "％",
	'^':  "……",
	'&':  "＆",
	'*':  "×",
	'-':  "—",
	'_':  "——",
	'+':  "＋",
	'=':  "＝",
	'/':  "、",
	'\\': "＼",
	'|':  "｜",
}

// quoteState tracks whether the next double/single quote opens or
// closes a pair.
type quoteState struct {
	doubleOpen bool
	singleOpen bool
}

// convert returns the full-width form of an ASCII punctuation key, or
// ok=false when the key has none.
func (q *quoteState) convert(c byte) (string, bool) {
	switch c {
	case '"':
		q.doubleOpen = !q.doubleOpen
		if q.doubleOpen {
			return "“", true
		}
		return "”", true
	case '\'':
		q.singleOpen = !q.singleOpen
		if q.singleOpen {
			return "‘", true
		}
		return "’", true
	}
	if s, ok := punctuation[c]; ok {
		return s, true
	}
	return "", false
}
