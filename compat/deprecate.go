// Package compat keeps old API surfaces callable while they are phased out.
//
// Renamed functions stay available under their old names through the Wrap
// family: each wrapper forwards to the replacement unchanged and emits a
// structured deprecation advisory on every call. The advisory is an event on
// the caller's logger, never an error — deprecated calls always complete.
package compat

import (
	"fmt"

	"go.uber.org/zap"
)

// Notice describes a deprecated API surface: the name being retired, its
// replacement, and the release that removes the old name.
type Notice struct {
	OldName   string
	NewName   string
	RemovedIn string
}

// Message renders the advisory text.
func (n Notice) Message() string {
	return fmt.Sprintf("%s is deprecated as of %s, please use %s instead",
		n.OldName, n.RemovedIn, n.NewName)
}

func (n Notice) fields() []zap.Field {
	return []zap.Field{
		zap.String("old", n.OldName),
		zap.String("new", n.NewName),
		zap.String("removed_in", n.RemovedIn),
	}
}

func advisor(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

// WrapI0O0 returns a callable that emits the deprecation advisory for n and
// then invokes api.
func WrapI0O0(logger *zap.Logger, n Notice, api func()) func() {
	logger = advisor(logger)
	return func() {
		logger.Warn(n.Message(), n.fields()...)
		api()
	}
}

// WrapI0O1 is WrapI0O0 for a nullary callable with one result.
func WrapI0O1[O1 any](logger *zap.Logger, n Notice, api func() O1) func() O1 {
	logger = advisor(logger)
	return func() O1 {
		logger.Warn(n.Message(), n.fields()...)
		return api()
	}
}

// WrapI1O1 returns a callable that emits the deprecation advisory for n,
// forwards its argument to api, and returns api's result unchanged.
func WrapI1O1[I1, O1 any](logger *zap.Logger, n Notice, api func(I1) O1) func(I1) O1 {
	logger = advisor(logger)
	return func(i1 I1) O1 {
		logger.Warn(n.Message(), n.fields()...)
		return api(i1)
	}
}

// WrapI1O2 is WrapI1O1 for a callable with two results.
func WrapI1O2[I1, O1, O2 any](logger *zap.Logger, n Notice, api func(I1) (O1, O2)) func(I1) (O1, O2) {
	logger = advisor(logger)
	return func(i1 I1) (O1, O2) {
		logger.Warn(n.Message(), n.fields()...)
		return api(i1)
	}
}

// WrapI2O1 is WrapI1O1 for a callable with two arguments.
func WrapI2O1[I1, I2, O1 any](logger *zap.Logger, n Notice, api func(I1, I2) O1) func(I1, I2) O1 {
	logger = advisor(logger)
	return func(i1 I1, i2 I2) O1 {
		logger.Warn(n.Message(), n.fields()...)
		return api(i1, i2)
	}
}

// WrapI2O2 is WrapI1O1 for a callable with two arguments and two results.
func WrapI2O2[I1, I2, O1, O2 any](logger *zap.Logger, n Notice, api func(I1, I2) (O1, O2)) func(I1, I2) (O1, O2) {
	logger = advisor(logger)
	return func(i1 I1, i2 I2) (O1, O2) {
		logger.Warn(n.Message(), n.fields()...)
		return api(i1, i2)
	}
}
