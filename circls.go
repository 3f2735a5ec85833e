// Package circls implements the physical- and link-layer of the Circls
// short-range bidirectional optical link: symbol encoding for the RGB
// transmitter, frame-to-symbol detection and demodulation for the
// receive camera, Reed-Solomon forward error correction, packet framing
// with a CRC frame-check sequence, a self-synchronous bit scrambler, and
// the infrared feedback frame codec.
//
// The camera capture pipeline, the LED/IR driver backends, and any
// host-side GPIO/PWM wrappers are external collaborators; this package
// only describes the data that crosses those boundaries.
package circls

// Version identifies this build of the link-layer core. It has no effect
// on wire compatibility, which is fixed by the constants in this package.
const Version = "0.1.0"
