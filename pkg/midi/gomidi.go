package midi

import (
	gm "gitlab.com/gomidi/midi/v2"
)

// gomidiBackend builds gitlab.com/gomidi/midi/v2 messages, so decoded
// input can be sent straight to a gomidi driver port.
type gomidiBackend struct{}

func (gomidiBackend) NoteOff(channel, key, velocity uint8) Message {
	return gm.Message{MIDIStatusNoteOff | channel&MIDIChannelMask, key, velocity}
}

func (gomidiBackend) NoteOn(channel, key, velocity uint8) Message {
	return gm.NoteOn(channel, key, velocity)
}

func (gomidiBackend) PolyphonicAftertouch(channel, key, pressure uint8) Message {
	return gm.PolyAfterTouch(channel, key, pressure)
}

func (gomidiBackend) ControlChange(channel, controller, value uint8) Message {
	return gm.ControlChange(channel, controller, value)
}

func (gomidiBackend) ProgramChange(channel, program uint8) Message {
	return gm.ProgramChange(channel, program)
}

func (gomidiBackend) ChannelAftertouch(channel, pressure uint8) Message {
	return gm.AfterTouch(channel, pressure)
}

func (gomidiBackend) PitchBend(channel, lsb, msb uint8) Message {
	return gm.Message{MIDIStatusPitchBend | channel&MIDIChannelMask, lsb, msb}
}

func (gomidiBackend) SystemExclusive(data ...uint8) Message {
	return gm.Message(append([]byte(nil), data...))
}

func (gomidiBackend) SystemCommon(status uint8, data ...uint8) Message {
	return gm.Message(append([]byte{MIDIStatusSystem | status&MIDIChannelMask}, data...))
}

func (gomidiBackend) SystemRealtime(status uint8) Message {
	return gm.Message{MIDIStatusSystem | status&MIDIChannelMask}
}
