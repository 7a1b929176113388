package grades_test

import (
	"testing"

	"github.com/schoolfin/school_finance_app/internal/utils/grades"
	"github.com/stretchr/testify/assert"
)

func TestAdvanceGrade_ASCIIDigits(t *testing.T) {
	tests := []struct {
		name     string
		grade    string
		want     string
		promoted bool
	}{
		{"bare number", "7", "8", true},
		{"with prefix", "Grade 9", "Grade 10", true},
		{"with suffix", "9th grade", "10th grade", true},
		{"multi digit", "Grade 11", "Grade 12", true},
		{"last digit run only", "Section 2 Grade 5", "Section 2 Grade 6", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := grades.AdvanceGrade(tt.grade)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.promoted, ok)
		})
	}
}

func TestAdvanceGrade_ArabicIndicDigits(t *testing.T) {
	got, ok := grades.AdvanceGrade("صنف ٣")
	assert.True(t, ok)
	assert.Equal(t, "صنف ٤", got)

	// Carry into a second digit must stay in the same numeral block.
	got, ok = grades.AdvanceGrade("٩")
	assert.True(t, ok)
	assert.Equal(t, "١٠", got)
}

func TestAdvanceGrade_ExtendedArabicIndicDigits(t *testing.T) {
	got, ok := grades.AdvanceGrade("صنف ۴")
	assert.True(t, ok)
	assert.Equal(t, "صنف ۵", got)

	got, ok = grades.AdvanceGrade("۹")
	assert.True(t, ok)
	assert.Equal(t, "۱۰", got)
}

func TestAdvanceGrade_OrdinalWords(t *testing.T) {
	got, ok := grades.AdvanceGrade("صنف اول")
	assert.True(t, ok)
	assert.Equal(t, "صنف دوم", got)

	got, ok = grades.AdvanceGrade("صنف نهم")
	assert.True(t, ok)
	assert.Equal(t, "صنف دهم", got)

	// The tenth is a suffix of the eleventh; the eleventh must win.
	got, ok = grades.AdvanceGrade("صنف یازدهم")
	assert.True(t, ok)
	assert.Equal(t, "صنف دوازدهم", got)
}

func TestAdvanceGrade_FinalOrdinalNotPromoted(t *testing.T) {
	got, ok := grades.AdvanceGrade("صنف دوازدهم")
	assert.False(t, ok)
	assert.Equal(t, "صنف دوازدهم", got)
}

func TestAdvanceGrade_Unparsable(t *testing.T) {
	for _, grade := range []string{"", "Kindergarten", "آمادگی"} {
		got, ok := grades.AdvanceGrade(grade)
		assert.False(t, ok, "grade %q should not be promotable", grade)
		assert.Equal(t, grade, got)
	}
}
