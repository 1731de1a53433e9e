package midi

import (
	"bytes"

	"github.com/Garik-/nibbler/pkg/nibble"
)

// lookahead consumes num nibbles from current if it has that many. With
// running set the nibbles are data bytes only and channel comes from the
// remembered status.
func (d *Decoder) lookahead(kind Kind, num int, current []nibble.Nibble, channel nibble.Nibble, running bool) (Result, bool) {
	if num <= 0 || len(current) < num {
		return Result{}, false
	}

	consumed := current[:num]
	data := nibble.ToBytes(consumed)
	if !running {
		data = data[1:]
	}

	msg := d.build(kind, uint8(channel), data)

	switch {
	case kind.IsChannel():
		d.running = &runningStatus{kind: kind, dataBytes: len(data), channel: channel}
	case kind == KindSystemCommon:
		d.running = nil
	}

	return Result{
		Kind:      kind,
		Message:   msg,
		Processed: append([]nibble.Nibble(nil), consumed...),
		Rest:      current[num:],
	}, true
}

// lookaheadShrinking tries the longest form first and one byte less on each
// retry, down to the status byte alone.
func (d *Decoder) lookaheadShrinking(info kindInfo, current []nibble.Nibble, status nibble.Nibble) (Result, bool) {
	for size := info.size; size >= 1; size-- {
		if res, ok := d.lookahead(info.kind, size*2, current, status, false); ok {
			return res, true
		}
	}
	return Result{}, false
}

// lookaheadSysex consumes through the first 0xF7. Sysex always ends running
// status, whether or not the terminator is there yet.
func (d *Decoder) lookaheadSysex(current []nibble.Nibble) (Result, bool) {
	d.running = nil

	bs := nibble.ToBytes(current)
	end := bytes.IndexByte(bs, sysexEnd)
	if end < 0 {
		return Result{}, false
	}

	num := (end + 1) * 2
	return Result{
		Kind:      KindSystemExclusive,
		Message:   d.backend.SystemExclusive(bs[:end+1]...),
		Processed: append([]nibble.Nibble(nil), current[:num]...),
		Rest:      current[num:],
	}, true
}

func (d *Decoder) build(kind Kind, status uint8, data []byte) Message {
	b := d.backend
	switch kind {
	case KindNoteOff:
		return b.NoteOff(status, data[0], data[1])
	case KindNoteOn:
		return b.NoteOn(status, data[0], data[1])
	case KindPolyphonicAftertouch:
		return b.PolyphonicAftertouch(status, data[0], data[1])
	case KindControlChange:
		return b.ControlChange(status, data[0], data[1])
	case KindProgramChange:
		return b.ProgramChange(status, data[0])
	case KindChannelAftertouch:
		return b.ChannelAftertouch(status, data[0])
	case KindPitchBend:
		return b.PitchBend(status, data[0], data[1])
	case KindSystemCommon:
		return b.SystemCommon(status, data...)
	case KindSystemRealtime:
		return b.SystemRealtime(status)
	}
	return nil
}
