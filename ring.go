package circls

import "sync/atomic"

// HeaderPattern and TrailerPattern delimit packets inside the
// continuous multi-frame symbol stream FindPacket scans: the
// alternating Dark/Light run ("0 1 0 1 0") can never occur inside a
// data symbol run (data symbols are always one of the four colors), so
// the header is unambiguous regardless of payload content, and the
// short "0 1 0" trailer is enough to bound the packet once the header
// has anchored the scan. These are distinct from SyncPattern, which
// the demodulator searches for once FindPacket has handed it a
// packet's worth of symbols.
var (
	HeaderPattern  = [9]Symbol{Dark, Light, Dark, Light, Dark, Red, Green, Blue, Yellow}
	TrailerPattern = [3]Symbol{Dark, Light, Dark}
)

// SymbolRing is a single-producer/single-consumer circular buffer of
// Symbols sized to a power of two so index wrapping is a mask rather
// than a modulo. The producer (camera reader) calls Push; the consumer
// (packet parser) calls FindPacket to pull out complete packets framed
// by HeaderPattern/TrailerPattern.
type SymbolRing struct {
	buf     []Symbol
	mask    uint64
	head    atomic.Uint64 // next write index, producer-owned
	tail    atomic.Uint64 // next read index, consumer-owned
	overrun atomic.Uint64
}

// NewSymbolRing allocates a ring of the given capacity, which must be a
// power of two.
func NewSymbolRing(capacity int) (*SymbolRing, error) {
	if capacity <= 0 || capacity&(capacity-1) != 0 {
		return nil, newErr(BadLength, "ring capacity %d is not a positive power of two", capacity)
	}
	return &SymbolRing{
		buf:  make([]Symbol, capacity),
		mask: uint64(capacity - 1),
	}, nil
}

// Push appends a symbol produced by the camera pipeline. If the ring is
// full, the symbol is dropped and the overrun counter is incremented;
// the caller keeps going rather than blocking the producer.
func (r *SymbolRing) Push(s Symbol) {
	head := r.head.Load()
	tail := r.tail.Load()
	if head-tail >= uint64(len(r.buf)) {
		r.overrun.Add(1)
		return
	}
	r.buf[head&r.mask] = s
	r.head.Store(head + 1)
}

// Overrun reports how many symbols have been dropped for lack of room.
func (r *SymbolRing) Overrun() uint64 {
	return r.overrun.Load()
}

// Available reports how many unconsumed symbols are currently buffered.
func (r *SymbolRing) Available() int {
	return int(r.head.Load() - r.tail.Load())
}

// peek returns a snapshot slice of the n unconsumed symbols starting at
// offset from the tail, without advancing the tail.
func (r *SymbolRing) peek(offset, n int) []Symbol {
	tail := r.tail.Load()
	out := make([]Symbol, n)
	for i := 0; i < n; i++ {
		out[i] = r.buf[(tail+uint64(offset+i))&r.mask]
	}
	return out
}

// FindPacket scans the unconsumed symbols for a HeaderPattern/
// TrailerPattern-delimited packet. On success it advances the tail past
// the consumed header, body, and trailer and returns the body. It
// returns (nil, false) if no complete packet is currently buffered;
// the caller should retry once more data has been pushed.
func (r *SymbolRing) FindPacket() ([]Symbol, bool) {
	avail := r.Available()
	hdrLen, trlLen := len(HeaderPattern), len(TrailerPattern)
	if avail < hdrLen+trlLen {
		return nil, false
	}
	window := r.peek(0, avail)

	start, ok := findPatternSymbols(window, HeaderPattern[:], 0)
	if !ok {
		// No header anywhere in the buffered window: drop everything
		// but the last hdrLen-1 symbols, which might be a partial
		// header waiting on more data.
		keep := hdrLen - 1
		if keep > avail {
			keep = avail
		}
		r.tail.Store(r.tail.Load() + uint64(avail-keep))
		return nil, false
	}

	bodyStart := start + hdrLen
	end, ok := findPatternSymbols(window, TrailerPattern[:], bodyStart)
	if !ok {
		// Header found but no trailer yet; drop any noise before the
		// header and wait for more data.
		r.tail.Store(r.tail.Load() + uint64(start))
		return nil, false
	}

	body := make([]Symbol, end-bodyStart)
	copy(body, window[bodyStart:end])
	r.tail.Store(r.tail.Load() + uint64(end+trlLen))
	return body, true
}

func findPatternSymbols(symbols []Symbol, pattern []Symbol, from int) (int, bool) {
	for i := from; i+len(pattern) <= len(symbols); i++ {
		match := true
		for j, want := range pattern {
			if symbols[i+j] != want {
				match = false
				break
			}
		}
		if match {
			return i, true
		}
	}
	return 0, false
}
