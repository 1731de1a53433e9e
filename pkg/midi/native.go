package midi

import (
	"fmt"
)

const (
	MIDIStatusNoteOff              = 0x80
	MIDIStatusNoteOn               = 0x90
	MIDIStatusPolyphonicAftertouch = 0xA0
	MIDIStatusControlChange        = 0xB0
	MIDIStatusProgramChange        = 0xC0
	MIDIStatusChannelAftertouch    = 0xD0
	MIDIStatusPitchBend            = 0xE0
	MIDIStatusSystem               = 0xF0
	MIDIStatusCodeMask             = 0xF0
	MIDIChannelMask                = 0x0F
)

// Event is implemented by every message of the native backend.
type Event interface {
	Kind() Kind
	Bytes() []byte
	String() string
}

type NoteOff struct {
	Channel  uint8
	Key      uint8
	Velocity uint8
}

func (NoteOff) Kind() Kind { return KindNoteOff }

func (m NoteOff) Bytes() []byte {
	return []byte{MIDIStatusNoteOff | m.Channel&MIDIChannelMask, m.Key, m.Velocity}
}

func (m NoteOff) String() string {
	return fmt.Sprintf("NoteOff channel=%d key=%d velocity=%d", m.Channel, m.Key, m.Velocity)
}

type NoteOn struct {
	Channel  uint8
	Key      uint8
	Velocity uint8
}

func (NoteOn) Kind() Kind { return KindNoteOn }

func (m NoteOn) Bytes() []byte {
	return []byte{MIDIStatusNoteOn | m.Channel&MIDIChannelMask, m.Key, m.Velocity}
}

func (m NoteOn) String() string {
	return fmt.Sprintf("NoteOn channel=%d key=%d velocity=%d", m.Channel, m.Key, m.Velocity)
}

type PolyphonicAftertouch struct {
	Channel  uint8
	Key      uint8
	Pressure uint8
}

func (PolyphonicAftertouch) Kind() Kind { return KindPolyphonicAftertouch }

func (m PolyphonicAftertouch) Bytes() []byte {
	return []byte{MIDIStatusPolyphonicAftertouch | m.Channel&MIDIChannelMask, m.Key, m.Pressure}
}

func (m PolyphonicAftertouch) String() string {
	return fmt.Sprintf("PolyphonicAftertouch channel=%d key=%d pressure=%d", m.Channel, m.Key, m.Pressure)
}

type ControlChange struct {
	Channel    uint8
	Controller uint8
	Value      uint8
}

func (ControlChange) Kind() Kind { return KindControlChange }

func (m ControlChange) Bytes() []byte {
	return []byte{MIDIStatusControlChange | m.Channel&MIDIChannelMask, m.Controller, m.Value}
}

func (m ControlChange) String() string {
	return fmt.Sprintf("ControlChange channel=%d controller=%d value=%d", m.Channel, m.Controller, m.Value)
}

type ProgramChange struct {
	Channel uint8
	Program uint8
}

func (ProgramChange) Kind() Kind { return KindProgramChange }

func (m ProgramChange) Bytes() []byte {
	return []byte{MIDIStatusProgramChange | m.Channel&MIDIChannelMask, m.Program}
}

func (m ProgramChange) String() string {
	return fmt.Sprintf("ProgramChange channel=%d program=%d", m.Channel, m.Program)
}

type ChannelAftertouch struct {
	Channel  uint8
	Pressure uint8
}

func (ChannelAftertouch) Kind() Kind { return KindChannelAftertouch }

func (m ChannelAftertouch) Bytes() []byte {
	return []byte{MIDIStatusChannelAftertouch | m.Channel&MIDIChannelMask, m.Pressure}
}

func (m ChannelAftertouch) String() string {
	return fmt.Sprintf("ChannelAftertouch channel=%d pressure=%d", m.Channel, m.Pressure)
}

type PitchBend struct {
	Channel uint8
	LSB     uint8
	MSB     uint8
}

func (PitchBend) Kind() Kind { return KindPitchBend }

// Value is the 14 bit bend amount, 0x2000 being the center.
func (m PitchBend) Value() uint16 {
	return uint16(m.MSB&0x7F)<<7 | uint16(m.LSB&0x7F)
}

func (m PitchBend) Bytes() []byte {
	return []byte{MIDIStatusPitchBend | m.Channel&MIDIChannelMask, m.LSB, m.MSB}
}

func (m PitchBend) String() string {
	return fmt.Sprintf("PitchBend channel=%d value=%d", m.Channel, m.Value())
}

// SystemExclusive holds the whole message, 0xF0 and 0xF7 included.
type SystemExclusive struct {
	Data []byte
}

func (SystemExclusive) Kind() Kind { return KindSystemExclusive }

func (m SystemExclusive) Bytes() []byte {
	out := make([]byte, len(m.Data))
	copy(out, m.Data)
	return out
}

// Manufacturer is the first ID byte after 0xF0, 0 if there is none.
func (m SystemExclusive) Manufacturer() uint8 {
	if len(m.Data) < 2 {
		return 0
	}
	return m.Data[1]
}

func (m SystemExclusive) String() string {
	return fmt.Sprintf("SystemExclusive % X", m.Data)
}

type SystemCommon struct {
	Status uint8 // low nibble
	Data   []byte
}

func (SystemCommon) Kind() Kind { return KindSystemCommon }

func (m SystemCommon) Bytes() []byte {
	return append([]byte{MIDIStatusSystem | m.Status&MIDIChannelMask}, m.Data...)
}

func (m SystemCommon) String() string {
	return fmt.Sprintf("SystemCommon status=%#x data=% X", MIDIStatusSystem|m.Status, m.Data)
}

type SystemRealtime struct {
	Status uint8 // low nibble
}

func (SystemRealtime) Kind() Kind { return KindSystemRealtime }

func (m SystemRealtime) Bytes() []byte {
	return []byte{MIDIStatusSystem | m.Status&MIDIChannelMask}
}

func (m SystemRealtime) String() string {
	return fmt.Sprintf("SystemRealtime status=%#x", MIDIStatusSystem|m.Status)
}

type nativeBackend struct{}

func (nativeBackend) NoteOff(channel, key, velocity uint8) Message {
	return NoteOff{Channel: channel, Key: key, Velocity: velocity}
}

func (nativeBackend) NoteOn(channel, key, velocity uint8) Message {
	return NoteOn{Channel: channel, Key: key, Velocity: velocity}
}

func (nativeBackend) PolyphonicAftertouch(channel, key, pressure uint8) Message {
	return PolyphonicAftertouch{Channel: channel, Key: key, Pressure: pressure}
}

func (nativeBackend) ControlChange(channel, controller, value uint8) Message {
	return ControlChange{Channel: channel, Controller: controller, Value: value}
}

func (nativeBackend) ProgramChange(channel, program uint8) Message {
	return ProgramChange{Channel: channel, Program: program}
}

func (nativeBackend) ChannelAftertouch(channel, pressure uint8) Message {
	return ChannelAftertouch{Channel: channel, Pressure: pressure}
}

func (nativeBackend) PitchBend(channel, lsb, msb uint8) Message {
	return PitchBend{Channel: channel, LSB: lsb, MSB: msb}
}

func (nativeBackend) SystemExclusive(data ...uint8) Message {
	return SystemExclusive{Data: append([]byte(nil), data...)}
}

func (nativeBackend) SystemCommon(status uint8, data ...uint8) Message {
	return SystemCommon{Status: status, Data: append([]byte(nil), data...)}
}

func (nativeBackend) SystemRealtime(status uint8) Message {
	return SystemRealtime{Status: status}
}
