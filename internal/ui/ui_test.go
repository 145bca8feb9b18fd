package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatRow(t *testing.T) {
	widths := []int{6, 4}

	assert.Equal(t, "down   │ X   ", FormatRow(widths, "down", "X"))
	assert.Equal(t, "can... │ RY  ", FormatRow(widths, "cancelled", "RY"))
	assert.Equal(t, "up    ", FormatRow(widths, "up"))
	assert.Equal(t, "a      │ b   ", FormatRow(widths, "a", "b", "dropped"))
}
