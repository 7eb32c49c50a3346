package benchmark

import (
	"time"

	"github.com/hushlog/hush/core"
	"github.com/hushlog/hush/handler"
)

type noopHandler struct{}

func newNoopHandler() handler.Handler {
	return &noopHandler{}
}

func (h *noopHandler) Handle(e *core.Entry) error {
	_ = len(e.Message)
	core.PutEntry(e)
	return nil
}

func (h *noopHandler) HandleLog(_ time.Time, _ core.Level, module, msg string, _, _ []core.Field, _ core.CallerInfo) error {
	_ = len(module)
	_ = len(msg)
	return nil
}

func (h *noopHandler) Close() error {
	return nil
}
