package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDocNumber(t *testing.T) {
	date := time.Date(2026, 8, 30, 14, 30, 0, 0, time.Local)

	assert.Equal(t, "POS-20260830-0001", FormatDocNumber("POS", date, 1))
	assert.Equal(t, "WO-20260830-0042", FormatDocNumber("WO", date, 42))
	assert.Equal(t, "WT-20260830-1234", FormatDocNumber("WT", date, 1234))

	// Sequences beyond four digits keep growing instead of wrapping.
	assert.Equal(t, "POS-20260830-10000", FormatDocNumber("POS", date, 10000))
}
