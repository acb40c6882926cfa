package logging

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// TraceSink receives evaluation traces. It decouples the engine from any
// specific output, so callers can log, buffer, or fan out traces as they
// see fit.
type TraceSink interface {
	Trace(trace string)
}

// Func adapts a sink to the plain callback shape the engine settings take.
func Func(s TraceSink) func(trace string) {
	if s == nil {
		return nil
	}
	return s.Trace
}

var _ TraceSink = (*ZSink)(nil)

// ZSink writes each trace line as a zerolog debug event.
type ZSink struct {
	ZLog zerolog.Logger
}

func NewZSink(zlog zerolog.Logger) ZSink {
	return ZSink{ZLog: zlog}
}

func (s ZSink) Trace(trace string) {
	for _, line := range strings.Split(strings.TrimRight(trace, "\n"), "\n") {
		s.ZLog.Debug().Msg(line)
	}
}

var _ TraceSink = (*WriterSink)(nil)

// WriterSink writes traces verbatim to a writer.
type WriterSink struct {
	W io.Writer
}

func (s WriterSink) Trace(trace string) {
	fmt.Fprint(s.W, trace)
}

var _ TraceSink = (*BufferSink)(nil)

// BufferSink keeps the most recent trace for later inspection.
// Safe for concurrent use.
type BufferSink struct {
	mu   sync.Mutex
	last string
}

func (s *BufferSink) Trace(trace string) {
	s.mu.Lock()
	s.last = trace
	s.mu.Unlock()
}

func (s *BufferSink) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

var _ TraceSink = (*MultiSink)(nil)

// MultiSink fans a trace out to several sinks.
type MultiSink struct {
	Sinks []TraceSink
}

func NewMultiSink(sinks ...TraceSink) MultiSink {
	return MultiSink{Sinks: sinks}
}

func (s MultiSink) Trace(trace string) {
	for _, sink := range s.Sinks {
		sink.Trace(trace)
	}
}
