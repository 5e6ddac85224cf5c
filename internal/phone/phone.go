package phone

import "strings"

// CountryPrefix is prepended to every parsed number.
const CountryPrefix = "+1"

// ValidLength is the length of a usable number: "+1" plus ten digits.
const ValidLength = 12

var digitWords = map[string]byte{
	"zero":  '0',
	"one":   '1',
	"two":   '2',
	"three": '3',
	"four":  '4',
	"five":  '5',
	"six":   '6',
	"seven": '7',
	"eight": '8',
	"nine":  '9',
}

// Parse converts a space-separated sequence of spoken digit words into a
// +1-prefixed number. Tokens that are not digit words are skipped, not
// errors; transcription noise ("uh", punctuation) is routine. No length
// check happens here — callers must verify the result is ValidLength
// before using it as a destination.
func Parse(spoken string) string {
	var b strings.Builder
	b.WriteString(CountryPrefix)

	for _, word := range strings.Fields(spoken) {
		if digit, ok := digitWords[word]; ok {
			b.WriteByte(digit)
		}
	}

	return b.String()
}

// Valid reports whether a parsed number has exactly ten digits.
func Valid(number string) bool {
	return len(number) == ValidLength
}
