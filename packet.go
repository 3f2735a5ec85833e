package circls

import "encoding/binary"

// Header is the bit-exact, little-endian packet header, grounded on
// the original circls_tx_hdr_t struct:
//
//	struct circls_tx_hdr_t {
//	  uint16_t length; // full [unencoded] size of packet; header+data+FCS
//	  uint8_t  seq;    // sequence number
//	} __attribute__((packed));
const HeaderSize = 3 // length:u16 + seq:u8
const FCSSize = 2    // crc:u16

// Header carries the packet length and sequence number fields.
type Header struct {
	Length uint16 // header + payload + fcs, in bytes
	Seq    uint8  // sequence number, wraps at 256
}

func (h Header) marshal() []byte {
	buf := make([]byte, HeaderSize)
	binary.LittleEndian.PutUint16(buf[0:2], h.Length)
	buf[2] = h.Seq
	return buf
}

func unmarshalHeader(buf []byte) Header {
	return Header{
		Length: binary.LittleEndian.Uint16(buf[0:2]),
		Seq:    buf[2],
	}
}

// Frame builds header‖payload‖fcs for the given payload and sequence
// number, scrambles the whole buffer with scr, and Reed-Solomon encodes
// it in MaxData-byte chunks. The returned buffer is ready to hand to the
// symbol modulator.
func Frame(scr *Scrambler, seq uint8, payload []byte) []byte {
	length := HeaderSize + len(payload) + FCSSize
	hdr := Header{Length: uint16(length), Seq: seq}

	plain := make([]byte, 0, length)
	plain = append(plain, hdr.marshal()...)
	plain = append(plain, payload...)
	fcs := CRC16CCITT(plain)
	plain = append(plain, byte(fcs), byte(fcs>>8))

	scrambled := scr.Scramble(plain)
	return RSEncode(scrambled)
}

// Parse is the inverse of Frame: it Reed-Solomon decodes buf in place,
// descrambles the recovered bytes with scr, validates the header length
// and the FCS, and returns the sequence number and payload.
func Parse(scr *Scrambler, buf []byte) (seq uint8, payload []byte, err error) {
	scrambled, err := RSDecode(buf)
	if err != nil {
		return 0, nil, err
	}
	if len(scrambled) < HeaderSize+FCSSize {
		return 0, nil, newErr(Truncated, "decoded packet shorter than header+fcs")
	}

	plain := scr.Descramble(scrambled)
	hdr := unmarshalHeader(plain[:HeaderSize])

	if int(hdr.Length) != len(plain) {
		return 0, nil, newErr(LengthMismatch, "header length %d, decoded %d", hdr.Length, len(plain))
	}

	body := plain[:len(plain)-FCSSize]
	wantFCS := uint16(plain[len(plain)-FCSSize]) | uint16(plain[len(plain)-FCSSize+1])<<8
	gotFCS := CRC16CCITT(body)
	if wantFCS != gotFCS {
		return 0, nil, newErr(FcsMismatch, "fcs %04x, computed %04x", wantFCS, gotFCS)
	}

	return hdr.Seq, plain[HeaderSize : len(plain)-FCSSize], nil
}

// FrameBufferLen returns the minimum buffer size Frame needs to encode a
// payload of payloadLen bytes: RSEncodedLen(header + payload + fcs).
func FrameBufferLen(payloadLen int) int {
	return RSEncodedLen(HeaderSize + payloadLen + FCSSize)
}
