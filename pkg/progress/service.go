package progress

import (
	"github.com/timeleft/timeleft/internal/utils"
)

type Service interface {
	CurrentSnapshot() Snapshot
}

type ServiceImpl struct {
	clock utils.Clock
}

func NewService(clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{clock: clock}
}

// CurrentSnapshot computes window progress for the clock's current instant.
func (s *ServiceImpl) CurrentSnapshot() Snapshot {
	return ComputeSnapshot(s.clock.Now())
}
