package config

import (
	"testing"

	"github.com/retroenv/c02disasm/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestCreateLogger(t *testing.T) {
	tests := []options.Flags{
		{},
		{Debug: true},
		{Quiet: true},
		{Debug: true, Quiet: true},
	}

	for _, flags := range tests {
		logger := CreateLogger(flags)
		assert.True(t, logger != nil)
	}
}
