package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate_FormatosAceptados(t *testing.T) {
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local), parseDate("2025-06-15"))
	assert.Equal(t, time.Date(2025, 6, 15, 14, 30, 0, 0, time.Local), parseDate("2025-06-15 14:30"))

	rfc := parseDate("2025-06-15T14:30:00Z")
	assert.True(t, rfc.Equal(time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)))
}

func TestParseDate_InvalidaOVaciaEsCero(t *testing.T) {
	assert.True(t, parseDate("").IsZero())
	assert.True(t, parseDate("ayer a la tarde").IsZero())
	assert.True(t, parseDate("15/06/2025").IsZero())
}
