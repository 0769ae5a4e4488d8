// Package delivery hands finished FIR tap sets to the audio-channel
// collaborator.
//
// The wire format is deliberately narrow: one frame per tap set, consisting
// of a little-endian header (magic, channel index, filter number, tap count)
// followed by the taps as float64 values. Each delivery dials the device
// control socket afresh and closes it afterwards, mirroring the
// open/install/close cycle of the virtual audio device it targets.
package delivery

import (
	"encoding/binary"
	"fmt"
	"net"
)

// Magic identifies a tap-set frame ("FIR1").
const Magic uint32 = 0x46495231

// Header precedes the tap values in every frame.
type Header struct {
	Magic    uint32
	Channel  uint32
	Number   uint32
	TapCount uint32
}

// Device installs tap sets on a virtual audio device via its control socket.
type Device struct {
	path string
}

// NewDevice returns a Device that dials the unix socket at path on every
// delivery.
func NewDevice(path string) *Device {
	return &Device{path: path}
}

// Path returns the control socket path.
func (d *Device) Path() string { return d.path }

// SetFilter writes one framed tap set for the given channel.
func (d *Device) SetFilter(channel, filterNo int, taps []float64) error {
	conn, err := net.Dial("unix", d.path)
	if err != nil {
		return fmt.Errorf("delivery: cannot open device %s: %w", d.path, err)
	}
	defer conn.Close()

	hdr := Header{
		Magic:    Magic,
		Channel:  uint32(channel),
		Number:   uint32(filterNo),
		TapCount: uint32(len(taps)),
	}
	if err := binary.Write(conn, binary.LittleEndian, hdr); err != nil {
		return fmt.Errorf("delivery: cannot write filter header: %w", err)
	}
	if err := binary.Write(conn, binary.LittleEndian, taps); err != nil {
		return fmt.Errorf("delivery: cannot write filter taps: %w", err)
	}

	return nil
}

// Discard accepts and drops tap sets. It stands in for the device during
// tests and dry runs.
type Discard struct{}

// SetFilter discards the tap set.
func (Discard) SetFilter(channel, filterNo int, taps []float64) error { return nil }
