package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Empty(t, s.DefaultUsername)
	assert.Empty(t, s.OutputDir)
	assert.True(t, s.HistoryEnabled)
}
