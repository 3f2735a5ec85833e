// circls-rstool is a standalone Reed-Solomon encode/corrupt/decode
// tester, grounded on cmd/tnctest's role as a protocol-layer correctness
// harness separate from the live transmit/receive path.
package main

import (
	"encoding/hex"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/spf13/pflag"

	"github.com/fritzr/circls"
)

func main() {
	size := pflag.IntP("size", "n", circls.MaxData, "data payload size in bytes")
	corrupt := pflag.IntP("corrupt", "c", 0, "number of random byte corruptions to inject before decoding")
	help := pflag.BoolP("help", "h", false, "display help text")
	pflag.Parse()

	if *help {
		fmt.Fprintln(os.Stderr, "circls-rstool - round trip a random payload through the Reed-Solomon codec")
		pflag.PrintDefaults()
		os.Exit(0)
	}

	data := make([]byte, *size)
	for i := range data {
		data[i] = byte(rand.IntN(256))
	}

	encoded := circls.RSEncode(data)
	fmt.Printf("encoded %d data bytes into %d codeword bytes\n", len(data), len(encoded))

	for i := 0; i < *corrupt; i++ {
		idx := rand.IntN(len(encoded))
		encoded[idx] ^= byte(1 + rand.IntN(255))
		fmt.Printf("corrupted byte %d\n", idx)
	}

	decoded, err := circls.RSDecode(encoded)
	if err != nil {
		circls.Log.Error("decode failed", "err", err)
		os.Exit(1)
	}

	if hex.EncodeToString(decoded) != hex.EncodeToString(data) {
		fmt.Println("MISMATCH: decoded payload does not match original")
		os.Exit(1)
	}
	fmt.Println("OK: decoded payload matches original")
}
