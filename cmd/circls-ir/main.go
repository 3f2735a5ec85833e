// circls-ir encodes and decodes IR feedback frames, grounded on
// bbb/src/irtest.cpp's role as a standalone IR-channel test tool.
package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/fritzr/circls"
)

func main() {
	fc := pflag.IntP("fc", "f", 0, "frame control nibble (0-15)")
	data := pflag.IntP("data", "d", 0, "data byte (0-255)")
	decodeHex := pflag.StringP("decode", "D", "", "hex-encoded 64-byte pulse buffer to decode instead of encoding")
	help := pflag.BoolP("help", "h", false, "display help text")
	pflag.Parse()

	if *help {
		fmt.Fprintln(os.Stderr, "circls-ir - encode or decode an IR feedback frame")
		pflag.PrintDefaults()
		os.Exit(0)
	}

	if *decodeHex != "" {
		buf, err := hex.DecodeString(*decodeHex)
		if err != nil {
			circls.Log.Error("parsing hex pulse buffer", "err", err)
			os.Exit(1)
		}
		frame, err := circls.DecodeIr(buf)
		if err != nil {
			circls.Log.Error("decoding ir frame", "err", err)
			os.Exit(1)
		}
		fmt.Printf("fc=%#x data=%#02x\n", frame.FC, frame.Data)
		return
	}

	frame := circls.IrFrame{FC: byte(*fc), Data: byte(*data)}
	buf := circls.EncodeIr(frame)
	fmt.Println(hex.EncodeToString(buf))
}
