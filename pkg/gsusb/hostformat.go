package gsusb

import "encoding/binary"

// HostFormatLittleEndian is the byte order magic sent during the session
// handshake. Encoded little-endian it reads EF BE 00 00 on the wire.
const HostFormatLittleEndian uint32 = 0x0000beef

const hostConfigLen = 4

// HostConfig declares the host byte order to the device.
type HostConfig struct {
	ByteOrder uint32
}

func (p *HostConfig) Marshal() ([]byte, error) {
	buf := make([]byte, hostConfigLen)
	binary.LittleEndian.PutUint32(buf, p.ByteOrder)
	return buf, nil
}

func (p *HostConfig) Unmarshal(buf []byte) error {
	if len(buf) != hostConfigLen {
		return malformed(RequestHostFormat, 0, hostConfigLen, len(buf))
	}
	p.ByteOrder = binary.LittleEndian.Uint32(buf)
	return nil
}
