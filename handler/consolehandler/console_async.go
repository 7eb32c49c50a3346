package consolehandler

import (
	"fmt"
	"sync"
	"time"

	"github.com/hushlog/hush/core"
	"github.com/hushlog/hush/formatter"
	"github.com/hushlog/hush/handler"
)

// AsyncConsoleHandler decouples log producers from console I/O. Handle only
// appends to an unbounded queue, so callers never block on a slow terminal;
// a single worker goroutine drains the queue and performs all writes, which
// also guarantees records are printed whole and in queue order.
//
// Close drains everything that was queued before it was called, then stops
// the worker. A panic in the worker is captured and surfaced by Close.
type AsyncConsoleHandler struct {
	consoleBase
	queue      *handler.Queue
	done       chan struct{}
	closeOnce  sync.Once
	closeErr   error
	workerErr  error
	parBufPool sync.Pool // pool of *parallelBuf for write-path fallbacks
}

// newAsyncConsoleHandler creates a new asynchronous console handler and
// starts its worker goroutine.
func newAsyncConsoleHandler(cfg ConsoleConfig) *AsyncConsoleHandler {
	h := &AsyncConsoleHandler{
		queue: handler.NewQueue(),
		done:  make(chan struct{}),
	}
	h.writer = cfg.Writer
	h.formatter = cfg.Formatter
	h.concurrentSafe = cfg.ConcurrentWriter || isConcurrentSafeWriter(cfg.Writer)
	h.stats = handler.NewStats()

	// Cache WriterFormatter for zero-alloc path
	h.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)

	// Cache BufferFormatter for the worker's handler-owned buffer path
	h.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)

	// Pre-allocate lockedWriter for lock-minimal write path
	h.lw = lockedWriter{mu: &h.mu, w: h.writer}

	if h.bufferFormatter != nil {
		h.syncBuf.Grow(256)
		h.parBufPool = sync.Pool{
			New: func() interface{} {
				pb := &parallelBuf{}
				pb.buf.Grow(256)
				pb.entry.Fields = make([]core.Field, 0, 16)
				return pb
			},
		}
	}

	go h.process()

	return h
}

// HandleLog processes log data by creating a pooled Entry and sending it
// to the queue.
func (h *AsyncConsoleHandler) HandleLog(t time.Time, level core.Level, module, msg string, loggerFields, callFields []core.Field, caller core.CallerInfo) error {
	entry := core.GetEntry()
	entry.Time = t
	entry.Level = level
	entry.Module = module
	entry.Message = msg
	entry.Caller = caller
	if len(loggerFields) > 0 {
		entry.Fields = append(entry.Fields, loggerFields...)
	}
	if len(callFields) > 0 {
		entry.Fields = append(entry.Fields, callFields...)
	}
	return h.Handle(entry)
}

// Handle enqueues a log entry for the worker. It never blocks: the queue
// grows as needed. After Close has begun, the entry is silently dropped
// and counted in stats.
func (h *AsyncConsoleHandler) Handle(entry *core.Entry) error {
	if err := h.queue.Send(entry); err != nil {
		h.stats.IncrementDropped(entry.Level)
		core.PutEntry(entry)
	}
	return nil
}

// CanRecycleEntry returns false because the worker recycles entries itself
// after writing them.
func (h *AsyncConsoleHandler) CanRecycleEntry() bool {
	return false
}

// process is the worker goroutine. It runs until it receives the nil
// shutdown sentinel, drains whatever raced in behind the sentinel, and
// exits. done is closed last so Close observes any captured panic.
func (h *AsyncConsoleHandler) process() {
	defer close(h.done)
	defer func() {
		if r := recover(); r != nil {
			h.workerErr = fmt.Errorf("console worker panicked: %v", r)
		}
	}()

	for {
		entry, ok := h.queue.Recv()
		if !ok {
			return
		}
		if entry == nil {
			h.drain()
			return
		}
		h.emit(entry)
	}
}

// drain empties the queue without blocking, then returns.
func (h *AsyncConsoleHandler) drain() {
	for {
		entry, ok := h.queue.TryRecv()
		if !ok {
			return
		}
		if entry == nil {
			continue
		}
		h.emit(entry)
	}
}

// emit writes one entry and recycles it. A failed write is counted and
// skipped; one broken line must not take the worker down.
func (h *AsyncConsoleHandler) emit(entry *core.Entry) {
	if err := h.processWrite(entry, &h.parBufPool); err != nil {
		h.stats.IncrementWriteError()
	}
	core.PutEntry(entry)
}

// Close shuts the handler down: it stops accepting new entries, waits for
// the worker to drain and print everything enqueued before this call, and
// returns any error the worker died with. Close is idempotent; concurrent
// and repeated calls all block until shutdown completes and return the
// same result.
func (h *AsyncConsoleHandler) Close() error {
	h.closeOnce.Do(func() {
		// Sentinel first so the worker sees it after all prior entries,
		// then close the queue to fail further sends.
		_ = h.queue.Send(nil)
		h.queue.Close()
		<-h.done
		h.closeErr = h.workerErr
	})
	<-h.done
	return h.closeErr
}
