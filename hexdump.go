package circls

import (
	"fmt"
	"io"
)

// HexDump writes data to w in the traditional offset/hex/ASCII layout,
// sixteen bytes per line. It is a diagnostic helper only, never called
// from the hot encode/decode path; circls-rxsim uses it to print the
// recovered payload and to write its capture files.
func HexDump(w io.Writer, data []byte) {
	offset := 0
	for len(data) > 0 {
		n := len(data)
		if n > 16 {
			n = 16
		}
		fmt.Fprintf(w, "  %04x: ", offset)
		for i := 0; i < n; i++ {
			fmt.Fprintf(w, "%02x ", data[i])
		}
		for i := n; i < 16; i++ {
			fmt.Fprint(w, "   ")
		}
		fmt.Fprint(w, " ")
		for i := 0; i < n; i++ {
			c := data[i]
			if c >= 0x20 && c <= 0x7e {
				fmt.Fprintf(w, "%c", c)
			} else {
				fmt.Fprint(w, ".")
			}
		}
		fmt.Fprintln(w)
		data = data[n:]
		offset += n
	}
}
