package midi

import "github.com/Garik-/nibbler/pkg/nibble"

// Kind is the class of a MIDI message, as told by its status byte.
type Kind int

const (
	KindInvalid Kind = iota
	KindNoteOff
	KindNoteOn
	KindPolyphonicAftertouch
	KindControlChange
	KindProgramChange
	KindChannelAftertouch
	KindPitchBend
	KindSystemExclusive
	KindSystemCommon
	KindSystemRealtime
)

var kindNames = [...]string{
	KindInvalid:              "invalid",
	KindNoteOff:              "note_off",
	KindNoteOn:               "note_on",
	KindPolyphonicAftertouch: "polyphonic_aftertouch",
	KindControlChange:        "control_change",
	KindProgramChange:        "program_change",
	KindChannelAftertouch:    "channel_aftertouch",
	KindPitchBend:            "pitch_bend",
	KindSystemExclusive:      "system_exclusive",
	KindSystemCommon:         "system_common",
	KindSystemRealtime:       "system_realtime",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return kindNames[KindInvalid]
	}
	return kindNames[k]
}

// IsChannel reports whether k is a channel voice message, the only kinds
// that take part in running status.
func (k Kind) IsChannel() bool {
	return KindNoteOff <= k && k <= KindPitchBend
}

type shape int

const (
	// fixed messages are exactly size bytes.
	fixed shape = iota + 1
	// shrinking messages are at most size bytes; shorter ones are accepted
	// when the longer ones are not available yet.
	shrinking
	// terminated messages run up to and including sysexEnd.
	terminated
)

const sysexEnd = 0xF7

type kindInfo struct {
	kind  Kind
	size  int // bytes, status included
	shape shape
}

// channelKinds is keyed by the high nibble of the status byte.
var channelKinds = map[nibble.Nibble]kindInfo{
	0x8: {KindNoteOff, 3, fixed},
	0x9: {KindNoteOn, 3, fixed},
	0xA: {KindPolyphonicAftertouch, 3, fixed},
	0xB: {KindControlChange, 3, fixed},
	0xC: {KindProgramChange, 2, fixed},
	0xD: {KindChannelAftertouch, 2, fixed},
	0xE: {KindPitchBend, 3, fixed},
}

// systemKinds is keyed by the low nibble of a 0xF_ status byte.
var systemKinds = [16]kindInfo{
	0x0: {KindSystemExclusive, 0, terminated},
	0x1: {KindSystemCommon, 3, shrinking},
	0x2: {KindSystemCommon, 3, shrinking},
	0x3: {KindSystemCommon, 3, shrinking},
	0x4: {KindSystemCommon, 3, shrinking},
	0x5: {KindSystemCommon, 3, shrinking},
	0x6: {KindSystemCommon, 3, shrinking},
	0x8: {KindSystemRealtime, 1, fixed},
	0x9: {KindSystemRealtime, 1, fixed},
	0xA: {KindSystemRealtime, 1, fixed},
	0xB: {KindSystemRealtime, 1, fixed},
	0xC: {KindSystemRealtime, 1, fixed},
	0xD: {KindSystemRealtime, 1, fixed},
	0xE: {KindSystemRealtime, 1, fixed},
	0xF: {KindSystemRealtime, 1, fixed},
}

// classify maps the two nibbles of a candidate status byte to its kind.
// 0xF7 and high nibbles below 0x8 are not status bytes.
func classify(hi, lo nibble.Nibble) (kindInfo, bool) {
	if hi != 0xF {
		info, ok := channelKinds[hi]
		return info, ok
	}
	info := systemKinds[lo&0x0F]
	return info, info.kind != KindInvalid
}

func isStatusNibble(n nibble.Nibble) bool {
	return n >= 0x8
}
