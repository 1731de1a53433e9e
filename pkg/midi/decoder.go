package midi

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Garik-/nibbler/pkg/nibble"
)

var (
	// ErrInvalidLimit is returned for a negative pending buffer limit.
	ErrInvalidLimit = errors.New("invalid pending limit")
	// ErrBufferOverflow reports that the pending limit was exceeded and the
	// decoder dropped its buffer to resynchronize.
	ErrBufferOverflow = errors.New("pending buffer limit exceeded")
)

// Report is the outcome of one Process call. Messages and Kinds run in
// parallel. Processed and Rejected hold the nibbles of this call in the
// order they were met.
type Report struct {
	Messages  []Message
	Kinds     []Kind
	Processed []nibble.Nibble
	Rejected  []nibble.Nibble

	// Desync is set when the pending limit was exceeded.
	Desync bool
}

// Err returns ErrBufferOverflow when the report is Desync.
func (r *Report) Err() error {
	if r.Desync {
		return ErrBufferOverflow
	}
	return nil
}

// Result is one decoded message and the nibbles it used. Rest is what the
// window held after the message.
type Result struct {
	Kind      Kind
	Message   Message
	Processed []nibble.Nibble
	Rest      []nibble.Nibble
}

// runningStatus remembers the last channel message so a following message
// may leave out its status byte.
type runningStatus struct {
	kind      Kind
	dataBytes int
	channel   nibble.Nibble
}

// Decoder turns a stream of nibbles into MIDI messages. Input may be cut
// anywhere; incomplete messages stay buffered until the rest arrives.
// A Decoder must not be used from more than one goroutine at a time.
type Decoder struct {
	buf        nibble.Buffer
	running    *runningStatus
	backend    Backend
	maxPending int
	log        *zap.Logger
}

// Process feeds ns and extracts every message the buffer now holds.
func (d *Decoder) Process(ns []nibble.Nibble) *Report {
	r := new(Report)
	d.buf.Feed(ns...)

	cursor := 0
	for cursor < d.buf.Len() {
		res, ok := d.Decode(d.buf.Window(cursor))
		if !ok {
			d.running = nil
			cursor++
			continue
		}

		if rejected := d.buf.Reject(cursor); len(rejected) > 0 {
			d.log.Debug("rejected", zap.String("nibbles", nibble.Join(rejected)))
			r.Rejected = append(r.Rejected, rejected...)
		}
		d.buf.Replace(res.Rest)
		cursor = 0

		d.log.Debug("message",
			zap.Stringer("kind", res.Kind),
			zap.String("nibbles", nibble.Join(res.Processed)),
		)
		r.Messages = append(r.Messages, res.Message)
		r.Kinds = append(r.Kinds, res.Kind)
		r.Processed = append(r.Processed, res.Processed...)
	}

	if d.maxPending > 0 && d.buf.Len() > d.maxPending {
		dropped := d.buf.Reset()
		d.running = nil
		r.Rejected = append(r.Rejected, dropped...)
		r.Desync = true
		d.log.Warn("pending limit exceeded, buffer dropped",
			zap.Int("dropped", len(dropped)),
			zap.Int("limit", d.maxPending),
		)
	}

	return r
}

// ProcessValues normalizes values with nibble.Parse and processes them.
func (d *Decoder) ProcessValues(values ...interface{}) (*Report, error) {
	ns, err := nibble.Parse(values...)
	if err != nil {
		return nil, err
	}
	return d.Process(ns), nil
}

// Decode tries to read one message from the start of current. It reports
// false when current does not start a message that is complete yet.
// Decode updates running status but never touches the buffer.
func (d *Decoder) Decode(current []nibble.Nibble) (Result, bool) {
	if len(current) < 2 {
		return Result{}, false
	}
	hi, lo := current[0], current[1]

	if !isStatusNibble(hi) {
		if d.running == nil {
			return Result{}, false
		}
		rs := d.running
		return d.lookahead(rs.kind, rs.dataBytes*2, current, rs.channel, true)
	}

	info, ok := classify(hi, lo)
	if !ok {
		return Result{}, false
	}

	switch info.shape {
	case fixed:
		return d.lookahead(info.kind, info.size*2, current, lo, false)
	case shrinking:
		return d.lookaheadShrinking(info, current, lo)
	case terminated:
		return d.lookaheadSysex(current)
	}
	return Result{}, false
}

// Buffered returns a copy of the nibbles waiting for more input.
func (d *Decoder) Buffered() []nibble.Nibble {
	return d.buf.Nibbles()
}

// Pending is the number of buffered nibbles.
func (d *Decoder) Pending() int {
	return d.buf.Len()
}

// NewDecoder returns a decoder with an empty buffer. It fails when the
// backend name is unknown.
func NewDecoder(opts ...Option) (*Decoder, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.maxPending < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, o.maxPending)
	}

	backend, err := NewBackend(o.backend)
	if err != nil {
		return nil, err
	}

	return &Decoder{
		backend:    backend,
		maxPending: o.maxPending,
		log:        o.logger.Named("decoder"),
	}, nil
}
