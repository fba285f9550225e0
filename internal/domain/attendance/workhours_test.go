package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseWorkHours(t *testing.T) {
	tests := []struct {
		input   string
		minutes int
		ok      bool
	}{
		{"9h 30m", 570, true},
		{"9h", 540, true},
		{"0h 45m", 45, true},
		{"0h", 0, true},
		{"12h 5m", 725, true},
		{"  9h 30m  ", 570, true},
		{"9h30m", 0, false},
		{"9:30", 0, false},
		{"nine hours", 0, false},
		{"", 0, false},
		{"30m", 0, false},
		{"9h 30", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			minutes, ok := ParseWorkHours(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.minutes, minutes)
		})
	}
}
