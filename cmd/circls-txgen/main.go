// circls-txgen is a transmit test harness, grounded on cmd/fxsend: it
// builds one packet from a payload read on stdin, scrambles and
// Reed-Solomon encodes it, modulates it to a symbol stream, and
// writes the stream out as one symbol name per line for a downstream
// simulator or camera test rig to replay.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/fritzr/circls"
)

func main() {
	seq := pflag.IntP("seq", "n", 0, "packet sequence number (0-255)")
	seedLen := pflag.IntP("seed-len", "l", circls.DefaultSeedLen, "scrambler seed length in bits")
	seed := pflag.Uint32P("seed", "s", circls.DefaultSeed, "scrambler seed")
	outPath := pflag.StringP("output", "o", "-", "output path for the symbol stream, or - for stdout")
	help := pflag.BoolP("help", "h", false, "display help text")
	pflag.Parse()

	if *help {
		fmt.Fprintln(os.Stderr, "circls-txgen - build a symbol stream from a payload read on stdin")
		pflag.PrintDefaults()
		os.Exit(0)
	}

	payload, err := io.ReadAll(os.Stdin)
	if err != nil {
		circls.Log.Error("reading payload", "err", err)
		os.Exit(1)
	}

	scr, err := circls.NewScrambler(*seed, *seedLen, 0)
	if err != nil {
		circls.Log.Error("building scrambler", "err", err)
		os.Exit(1)
	}

	encoded := circls.Frame(scr, byte(*seq), payload)
	symbols := circls.Modulate(encoded)

	out := os.Stdout
	if *outPath != "-" {
		f, err := os.Create(*outPath)
		if err != nil {
			circls.Log.Error("creating output file", "path", *outPath, "err", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	w := bufio.NewWriter(out)
	defer w.Flush()
	for _, s := range symbols {
		fmt.Fprintln(w, s)
	}
}
