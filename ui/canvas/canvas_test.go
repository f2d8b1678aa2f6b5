package canvas

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFitZoom(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		viewW, viewH float64
		want         float64
	}{
		{name: "small image stays 1:1", w: 400, h: 300, viewW: 900, viewH: 1200, want: 1.0},
		{name: "tall image", w: 1200, h: 2400, viewW: 900, viewH: 1200, want: 0.5},
		{name: "wide image", w: 1800, h: 600, viewW: 900, viewH: 1200, want: 0.5},
		{name: "empty image", w: 0, h: 0, viewW: 900, viewH: 1200, want: 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, FitZoom(tt.w, tt.h, tt.viewW, tt.viewH), 1e-9)
		})
	}
}
