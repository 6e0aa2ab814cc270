// Package logging provides implementations of the ports.Logger interface:
// a NopLogger for disabled logging and a ConsoleLogger for text or JSON
// lines on a writer.
package logging

import (
	"context"

	"github.com/felixgeelhaar/customtab/internal/ports"
)

// NopLogger discards all messages. It is the default logger of the parser.
type NopLogger struct{}

// NewNopLogger creates a new no-op logger.
func NewNopLogger() *NopLogger {
	return &NopLogger{}
}

func (NopLogger) Debug(context.Context, string, ...ports.Field) {}
func (NopLogger) Info(context.Context, string, ...ports.Field)  {}
func (NopLogger) Warn(context.Context, string, ...ports.Field)  {}

var _ ports.Logger = (*NopLogger)(nil)
