package geometry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeDurationRoundTrip(t *testing.T) {
	d := 10*time.Second + 250*time.Millisecond

	tm := NewTimeFromDuration(d)
	back := tm.Duration()

	assert.Equal(t, d, back)
}

func TestTimeDurationRoundTrip_Zero(t *testing.T) {
	tm := NewTimeFromDuration(0)
	assert.Equal(t, Time{}, tm)
	assert.Equal(t, time.Duration(0), tm.Duration())
}
