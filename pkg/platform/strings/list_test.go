package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty", "", nil},
		{"blank", "  ", nil},
		{"single", "kafka:9092", []string{"kafka:9092"}},
		{"trims and drops empties", " a , ,b,", []string{"a", "b"}},
		{"drops repeats keeping order", "b,a,b,a", []string{"b", "a"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitList(tt.raw, ","))
		})
	}
}
