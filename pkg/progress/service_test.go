package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/timeleft/timeleft/internal/utils"
)

func TestCurrentSnapshotUsesInjectedClock(t *testing.T) {
	clock := &utils.MockClock{FixedNow: time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)}
	service := NewService(clock)

	snapshot := service.CurrentSnapshot()

	assert.Equal(t, "2025-06-15T12:00:00Z", snapshot.Timestamp)
	assert.Equal(t, 50.0, snapshot.Day.Elapsed)

	clock.SetNow(time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC))
	snapshot = service.CurrentSnapshot()

	assert.Equal(t, 0.0, snapshot.Week.Elapsed)
}
