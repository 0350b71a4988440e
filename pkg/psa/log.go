package psa

import (
	"sync/atomic"

	"github.com/psacrypto/psa-crypto-go/pkg/psa/logging"
)

type loggerBox struct {
	logger logging.Logger
}

var diagnostics atomic.Pointer[loggerBox]

func init() {
	diagnostics.Store(&loggerBox{logger: logging.New(nil)})
}

// SetLogger installs the process-wide diagnostic sink. Passing nil restores
// the slog.Default() backed logger.
func SetLogger(l logging.Logger) {
	if l == nil {
		l = logging.New(nil)
	}
	diagnostics.Store(&loggerBox{logger: l})
}

// CurrentLogger returns the diagnostic sink installed with SetLogger.
func CurrentLogger() logging.Logger {
	return diagnostics.Load().logger
}
