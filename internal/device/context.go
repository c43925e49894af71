package device

import (
	"github.com/radio-control/sdrhal/internal/telemetry"
)

// Context is the narrow bridge through which components emit telemetry
// without holding a direct reference to the message sink. A component
// receives one via AttachContext and must not emit before then.
type Context struct {
	sink func(telemetry.Message)
}

// NewContext wraps a message sink.
func NewContext(sink func(telemetry.Message)) *Context {
	if sink == nil {
		panic("device: NewContext requires a sink")
	}
	return &Context{sink: sink}
}

// OutputMessage forwards a telemetry message to the sink. Nil messages are
// rejected by dropping them; the sink only ever sees well-formed messages.
func (c *Context) OutputMessage(msg telemetry.Message) {
	if msg == nil {
		return
	}
	c.sink(msg)
}
