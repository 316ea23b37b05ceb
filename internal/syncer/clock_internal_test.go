package syncer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUnitSystemClockNow(t *testing.T) {
	clock := systemClock{}

	now := clock.Now()

	assert.WithinDuration(t, time.Now().UTC(), *now, time.Second, "should return current UTC time")
	assert.Equal(t, time.UTC, now.Location(), "should use UTC location")
}
