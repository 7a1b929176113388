package grades

import "strings"

// Grade labels are free text and the school records them in a mix of numeral
// scripts: ASCII digits, Arabic-Indic digits (U+0660-0669), Extended
// Arabic-Indic digits (U+06F0-06F9, used for Dari), or spelled-out ordinal
// words. Advancing a grade must not corrupt the script, so each matcher
// re-renders the incremented number in the block it was found in.

const (
	arabicIndicZero         = '٠' // ٠
	extendedArabicIndicZero = '۰' // ۰
	asciiZero               = '0'
)

// ordinalWords is the Dari ordinal table, first through twelfth. The last
// entry has no successor: a student in the final grade is not promoted.
var ordinalWords = []string{
	"اول",
	"دوم",
	"سوم",
	"چهارم",
	"پنجم",
	"ششم",
	"هفتم",
	"هشتم",
	"نهم",
	"دهم",
	"یازدهم",
	"دوازدهم",
}

// strategy attempts to advance the numeral or ordinal embedded in a grade
// label, returning the transformed label and whether it matched.
type strategy func(grade string) (string, bool)

var strategies = []strategy{
	advanceDigitRun(arabicIndicZero),
	advanceDigitRun(extendedArabicIndicZero),
	advanceDigitRun(asciiZero),
	advanceOrdinalWord,
}

// AdvanceGrade computes the next grade label, preserving surrounding text and
// numeral script. It reports false when the label contains no recognizable
// numeral or ordinal, or when the ordinal is the last of the table; such
// grades are left unchanged.
func AdvanceGrade(grade string) (string, bool) {
	for _, s := range strategies {
		if next, ok := s(grade); ok {
			return next, next != grade
		}
	}
	return grade, false
}

// advanceDigitRun builds a strategy that increments the last run of digits
// from the numeral block starting at zero.
func advanceDigitRun(zero rune) strategy {
	isDigit := func(r rune) bool { return r >= zero && r <= zero+9 }
	return func(grade string) (string, bool) {
		runes := []rune(grade)
		end := -1
		for i := len(runes) - 1; i >= 0; i-- {
			if isDigit(runes[i]) {
				end = i + 1
				break
			}
		}
		if end == -1 {
			return grade, false
		}
		start := end - 1
		for start > 0 && isDigit(runes[start-1]) {
			start--
		}

		n := 0
		for _, r := range runes[start:end] {
			n = n*10 + int(r-zero)
		}

		return string(runes[:start]) + renderDigits(n+1, zero) + string(runes[end:]), true
	}
}

// renderDigits renders n in the numeral block starting at zero.
func renderDigits(n int, zero rune) string {
	if n == 0 {
		return string(zero)
	}
	var out []rune
	for n > 0 {
		out = append([]rune{zero + rune(n%10)}, out...)
		n /= 10
	}
	return string(out)
}

// advanceOrdinalWord replaces an ordinal word with its successor in the table.
// Longer ordinals are checked first because the tenth ("دهم") is a suffix of
// the eleventh and twelfth.
func advanceOrdinalWord(grade string) (string, bool) {
	for i := len(ordinalWords) - 1; i >= 0; i-- {
		word := ordinalWords[i]
		at := strings.LastIndex(grade, word)
		if at < 0 {
			continue
		}
		if i == len(ordinalWords)-1 {
			// Final grade: matched, but there is nowhere to promote to.
			return grade, true
		}
		return grade[:at] + ordinalWords[i+1] + grade[at+len(word):], true
	}
	return grade, false
}
