// circls-rxsim is a receive test harness, grounded on cmd/fxrec: it reads
// a symbol-name-per-line stream (as produced by circls-txgen or a camera
// simulator), run-length compresses it, demodulates and descrambles it,
// and prints the recovered payload. With -capture-dir set, it also saves
// a timestamped hex dump of every successfully parsed packet, mirroring
// kissutil's -timestamp-format convention.
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lestrrat-go/strftime"
	"github.com/spf13/pflag"

	"github.com/fritzr/circls"
)

func parseSymbol(tok string) (circls.Symbol, bool) {
	switch strings.ToLower(strings.TrimSpace(tok)) {
	case "dark":
		return circls.Dark, true
	case "light":
		return circls.Light, true
	case "red":
		return circls.Red, true
	case "green":
		return circls.Green, true
	case "blue":
		return circls.Blue, true
	case "yellow":
		return circls.Yellow, true
	default:
		return 0, false
	}
}

func main() {
	seedLen := pflag.IntP("seed-len", "l", circls.DefaultSeedLen, "scrambler seed length in bits")
	seed := pflag.Uint32P("seed", "s", circls.DefaultSeed, "scrambler seed")
	captureDir := pflag.StringP("capture-dir", "c", "", "if set, save a timestamped hex dump of every parsed packet here")
	timestampFormat := pflag.StringP("timestamp-format", "T", "%Y%m%d-%H%M%S", "strftime format for capture file names")
	help := pflag.BoolP("help", "h", false, "display help text")
	pflag.Parse()

	if *help {
		fmt.Fprintln(os.Stderr, "circls-rxsim - recover a payload from a symbol-name stream on stdin")
		pflag.PrintDefaults()
		os.Exit(0)
	}

	scr, err := circls.NewScrambler(*seed, *seedLen, 0)
	if err != nil {
		circls.Log.Error("building scrambler", "err", err)
		os.Exit(1)
	}

	var symbols []circls.Symbol
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		sym, ok := parseSymbol(line)
		if !ok {
			circls.Log.Warn("skipping unrecognised symbol token", "token", line)
			continue
		}
		symbols = append(symbols, sym)
	}
	if err := sc.Err(); err != nil {
		circls.Log.Error("reading symbol stream", "err", err)
		os.Exit(1)
	}

	runs := make([]circls.Run, 0, len(symbols))
	for _, s := range symbols {
		if n := len(runs); n > 0 && runs[n-1].Tag == s {
			runs[n-1].Width++
		} else {
			runs = append(runs, circls.Run{Tag: s, Width: 1})
		}
	}

	encoded, err := circls.Demodulate(runs)
	if err != nil {
		circls.Log.Error("demodulating symbol stream", "err", err)
		os.Exit(1)
	}

	seq, payload, err := circls.Parse(scr, encoded)
	if err != nil {
		circls.Log.Error("parsing packet", "err", err)
		os.Exit(1)
	}

	fmt.Printf("seq=%d len=%d\n", seq, len(payload))
	circls.HexDump(os.Stdout, payload)

	if *captureDir != "" {
		stamp, ferr := strftime.Format(*timestampFormat, time.Now())
		if ferr != nil {
			circls.Log.Error("formatting capture timestamp", "err", ferr)
			os.Exit(1)
		}
		path := filepath.Join(*captureDir, fmt.Sprintf("circls-%s-seq%d.hex", stamp, seq))
		f, cerr := os.Create(path)
		if cerr != nil {
			circls.Log.Error("creating capture file", "path", path, "err", cerr)
			os.Exit(1)
		}
		defer f.Close()
		circls.HexDump(f, payload)
	}
}
