package academic_test

import (
	"testing"
	"time"

	"github.com/schoolfin/school_finance_app/internal/utils/academic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidYearLabel(t *testing.T) {
	assert.True(t, academic.ValidYearLabel("2024-2025"))
	assert.True(t, academic.ValidYearLabel("1999-2000"))

	assert.False(t, academic.ValidYearLabel("2024-2026"), "years must be consecutive")
	assert.False(t, academic.ValidYearLabel("2025-2024"))
	assert.False(t, academic.ValidYearLabel("2024/2025"))
	assert.False(t, academic.ValidYearLabel("24-25"))
	assert.False(t, academic.ValidYearLabel(""))
}

func TestSuccessorOf(t *testing.T) {
	label, start, end, err := academic.SuccessorOf("2024-2025")
	require.NoError(t, err)

	assert.Equal(t, "2025-2026", label)
	assert.Equal(t, time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC), end)
}

func TestSuccessorOf_Malformed(t *testing.T) {
	_, _, _, err := academic.SuccessorOf("not-a-year")
	assert.Error(t, err)
}
