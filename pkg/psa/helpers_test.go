package psa

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/psacrypto/psa-crypto-go/pkg/psa/logging"
)

// observeDiagnostics routes the diagnostic sink to an in-memory zap core for
// the duration of the test.
func observeDiagnostics(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	prev := CurrentLogger()
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(logging.NewZap(zap.New(core)))
	t.Cleanup(func() { SetLogger(prev) })
	return logs
}

// useContract swaps the default contract for the duration of the test.
func useContract(t *testing.T, c *Contract) {
	t.Helper()
	prev := DefaultContract()
	SetDefaultContract(c)
	t.Cleanup(func() { SetDefaultContract(prev) })
}
