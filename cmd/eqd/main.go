// Command eqd runs a live-updatable FIR equalizer for a virtual audio
// device.
//
// It listens on a datagram configuration socket for textual
// "<frequency> <gain>" breakpoint specifications, synthesizes a linear-phase
// windowed FIR filter from each one and installs the taps on every output
// channel of the device. A malformed specification leaves the previously
// active filter in force.
//
// Usage:
//
//	eqd [flags]
//
// Examples:
//
//	eqd -device /dev/vdsp.ctl -rate 48000 -block 2048 -channels 2
//	eqd -background -config /tmp/equalizer.socket
//
// Reconfigure a running instance with e.g.:
//
//	echo "100 1.0 1000 2.0 8000 0.5" | nc -uU /tmp/equalizer.socket
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/cwbudde/algo-eq/dsp/eq"
	"github.com/cwbudde/algo-eq/internal/delivery"
)

// Datagram specifications beyond this size are truncated by the socket.
const maxSpecSize = 64 * 1024

func main() {
	device := flag.String("device", "/dev/vdsp.ctl", "audio device control socket")
	rate := flag.Float64("rate", 48000, "sampling rate in Hz")
	block := flag.Int("block", 2048, "filter length in samples (must be even)")
	channels := flag.Int("channels", 2, "number of output channels")
	background := flag.Bool("background", false, "suppress diagnostic output")
	cfgSocket := flag.String("config", "/tmp/equalizer.socket", "configuration socket path")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: eqd [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Serves live-updatable FIR equalizer filters to a virtual audio device.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *rate <= 0 {
		fatalf("invalid rate %g", *rate)
	}
	if *block <= 0 || *block%2 != 0 {
		fatalf("invalid block size %d (must be even and positive)", *block)
	}
	if *channels <= 0 {
		fatalf("invalid channel count %d", *channels)
	}

	diag := io.Writer(os.Stderr)
	if *background {
		diag = io.Discard
	}

	equalizer, err := eq.New(*rate, *block, eq.WithDiagnostics(diag))
	if err != nil {
		fatalf("cannot initialize equalizer: %v", err)
	}
	defer equalizer.Close()

	// Start from a flat response before accepting reconfigurations.
	if err := equalizer.Load(""); err != nil {
		fatalf("cannot load flat response: %v", err)
	}

	os.Remove(*cfgSocket)
	conn, err := net.ListenPacket("unixgram", *cfgSocket)
	if err != nil {
		fatalf("cannot bind configuration socket %s: %v", *cfgSocket, err)
	}
	defer os.Remove(*cfgSocket)
	defer conn.Close()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigs
		// Unblocks the read loop; cleanup runs through the deferred calls.
		conn.Close()
	}()

	sink := delivery.NewDevice(*device)
	serve(conn, equalizer, sink, *channels, diag)
}

// serve handles reconfiguration requests one at a time until the socket is
// closed. Each datagram is processed to completion before the next is read.
func serve(conn net.PacketConn, equalizer *eq.Equalizer, sink eq.Sink, channels int, diag io.Writer) {
	buf := make([]byte, maxSpecSize)
	for {
		n, _, err := conn.ReadFrom(buf)
		if err != nil {
			if !errors.Is(err, net.ErrClosed) {
				fmt.Fprintf(diag, "configuration socket read failed: %v\n", err)
			}
			return
		}

		if err := equalizer.Load(string(buf[:n])); err != nil {
			// Reported by the equalizer; the previous filter stays active.
			continue
		}

		// Per-channel failures are reported and non-fatal.
		_ = equalizer.Deliver(sink, channels)
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "eqd: "+format+"\n", args...)
	os.Exit(1)
}
