package nibble

// Buffer holds the nibbles that were neither consumed into a message nor
// rejected yet. It lives as long as its decoder and is not safe for
// concurrent use.
type Buffer struct {
	ns []Nibble
}

// Feed appends ns to the tail.
func (b *Buffer) Feed(ns ...Nibble) {
	b.ns = append(b.ns, ns...)
}

// Window returns the nibbles from offset through the end. The result shares
// storage with the buffer and must not be modified.
func (b *Buffer) Window(offset int) []Nibble {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(b.ns) {
		return nil
	}
	return b.ns[offset:len(b.ns):len(b.ns)]
}

// Reject removes count nibbles from the front and returns them.
func (b *Buffer) Reject(count int) []Nibble {
	if count <= 0 {
		return nil
	}
	if count > len(b.ns) {
		count = len(b.ns)
	}
	out := make([]Nibble, count)
	copy(out, b.ns[:count])
	b.ns = b.ns[count:]
	return out
}

// Replace swaps the contents for rest, the part of a window a decode left
// unconsumed.
func (b *Buffer) Replace(rest []Nibble) {
	ns := make([]Nibble, len(rest))
	copy(ns, rest)
	b.ns = ns
}

// Reset drains the buffer and returns what it held.
func (b *Buffer) Reset() []Nibble {
	out := b.ns
	b.ns = nil
	return out
}

func (b *Buffer) Len() int {
	return len(b.ns)
}

// Nibbles returns a copy of the buffered nibbles.
func (b *Buffer) Nibbles() []Nibble {
	out := make([]Nibble, len(b.ns))
	copy(out, b.ns)
	return out
}
