package predictor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfidence(t *testing.T) {
	tests := []struct {
		name   string
		spread float64
		want   int
	}{
		{"pick'em floors at coin flip", 0, 50},
		{"narrow edge", 1.7, 54},
		{"moderate favorite", 2.0, 55},
		{"negative spread uses magnitude", -4.0, 60},
		{"blowout caps at ceiling", 18.0, 95},
		{"absurd spread still capped", 100.0, 95},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Confidence(tt.spread))
		})
	}
}

func TestConfidenceMonotonicInSpreadMagnitude(t *testing.T) {
	prev := 0
	for spread := 0.0; spread <= 25; spread += 0.5 {
		conf := Confidence(spread)
		assert.GreaterOrEqual(t, conf, prev, "spread %.1f", spread)
		assert.GreaterOrEqual(t, conf, 50)
		assert.LessOrEqual(t, conf, 95)
		prev = conf
	}
}
