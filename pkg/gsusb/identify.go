package gsusb

import "encoding/binary"

const (
	IdentifyOff uint32 = 0
	IdentifyOn  uint32 = 1
)

const identifyModeLen = 4

// IdentifyMode turns visual identification of one channel on or off.
type IdentifyMode struct {
	Mode uint32
}

func (p *IdentifyMode) Marshal() ([]byte, error) {
	buf := make([]byte, identifyModeLen)
	binary.LittleEndian.PutUint32(buf, p.Mode)
	return buf, nil
}

func (p *IdentifyMode) Unmarshal(buf []byte) error {
	if len(buf) != identifyModeLen {
		return malformed(RequestIdentify, 0, identifyModeLen, len(buf))
	}
	p.Mode = binary.LittleEndian.Uint32(buf)
	return nil
}

// Identify switches visual identification of channel ch on or off. The
// channel must report FeatureIdentify.
func (s *Session) Identify(ch uint16, on bool) error {
	mode := IdentifyMode{Mode: IdentifyOff}
	if on {
		mode.Mode = IdentifyOn
	}
	return s.out(RequestIdentify, ch, &mode)
}
