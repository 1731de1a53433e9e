package midi

import (
	"errors"
	"fmt"
	"sort"
)

// Message is whatever a Backend builds. The decoder only passes it along.
type Message interface{}

// Backend builds messages from decoded bytes. Channel kinds receive the
// channel (the low nibble of the status byte) and their data bytes.
type Backend interface {
	NoteOff(channel, key, velocity uint8) Message
	NoteOn(channel, key, velocity uint8) Message
	PolyphonicAftertouch(channel, key, pressure uint8) Message
	ControlChange(channel, controller, value uint8) Message
	ProgramChange(channel, program uint8) Message
	ChannelAftertouch(channel, pressure uint8) Message
	PitchBend(channel, lsb, msb uint8) Message

	// SystemExclusive receives every byte from 0xF0 through 0xF7.
	SystemExclusive(data ...uint8) Message
	// SystemCommon receives the low status nibble and 0 to 2 data bytes.
	SystemCommon(status uint8, data ...uint8) Message
	SystemRealtime(status uint8) Message
}

const (
	BackendNative = "native"
	BackendGomidi = "gomidi"
)

// ErrUnknownBackend is returned when a backend name is not registered.
var ErrUnknownBackend = errors.New("unknown message backend")

var backends = map[string]func() Backend{
	BackendNative: func() Backend { return nativeBackend{} },
	BackendGomidi: func() Backend { return gomidiBackend{} },
}

// NewBackend returns the backend registered under name.
func NewBackend(name string) (Backend, error) {
	newFn, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
	return newFn(), nil
}

// Backends lists the registered backend names.
func Backends() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
