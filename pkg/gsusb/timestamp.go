package gsusb

import "encoding/binary"

const timestampLen = 4

// Timestamp is the free-running device hardware timestamp in microseconds.
type Timestamp struct {
	Microseconds uint32
}

func (p *Timestamp) Marshal() ([]byte, error) {
	buf := make([]byte, timestampLen)
	binary.LittleEndian.PutUint32(buf, p.Microseconds)
	return buf, nil
}

func (p *Timestamp) Unmarshal(buf []byte) error {
	if len(buf) != timestampLen {
		return malformed(RequestTimestamp, 0, timestampLen, len(buf))
	}
	p.Microseconds = binary.LittleEndian.Uint32(buf)
	return nil
}

// Timestamp queries the current device hardware timestamp.
func (s *Session) Timestamp() (uint32, error) {
	var ts Timestamp
	if err := s.in(RequestTimestamp, 0, &ts); err != nil {
		return 0, err
	}
	return ts.Microseconds, nil
}
