package port

import (
	"stoik.com/emailscore/internal/core/domain"
)

// MetricsRecorder receives engine-level observations. The engine treats it
// as optional: a nil recorder disables instrumentation.
type MetricsRecorder interface {
	RecordVerification(status domain.Status, score int)
	RecordBulk(size int)
}
