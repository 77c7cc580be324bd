package gsusb

import "encoding/binary"

const bittimingLen = 20

// Bittiming holds the bit timing parameters of one CAN channel. All values
// except BRP are in time quanta. The same record carries the data phase
// timing of CAN FD channels.
type Bittiming struct {
	PropSeg   uint32
	PhaseSeg1 uint32
	PhaseSeg2 uint32
	SJW       uint32
	BRP       uint32
}

func (p *Bittiming) Marshal() ([]byte, error) {
	buf := make([]byte, bittimingLen)
	binary.LittleEndian.PutUint32(buf[0:], p.PropSeg)
	binary.LittleEndian.PutUint32(buf[4:], p.PhaseSeg1)
	binary.LittleEndian.PutUint32(buf[8:], p.PhaseSeg2)
	binary.LittleEndian.PutUint32(buf[12:], p.SJW)
	binary.LittleEndian.PutUint32(buf[16:], p.BRP)
	return buf, nil
}

func (p *Bittiming) Unmarshal(buf []byte) error {
	if len(buf) != bittimingLen {
		return malformed(RequestBittiming, 0, bittimingLen, len(buf))
	}
	p.PropSeg = binary.LittleEndian.Uint32(buf[0:])
	p.PhaseSeg1 = binary.LittleEndian.Uint32(buf[4:])
	p.PhaseSeg2 = binary.LittleEndian.Uint32(buf[8:])
	p.SJW = binary.LittleEndian.Uint32(buf[12:])
	p.BRP = binary.LittleEndian.Uint32(buf[16:])
	return nil
}

// SetBittiming configures the classic CAN bit timing of channel ch.
func (s *Session) SetBittiming(ch uint16, timing Bittiming) error {
	return s.out(RequestBittiming, ch, &timing)
}

// SetDataBittiming configures the CAN FD data phase bit timing of channel
// ch. The channel must report FeatureFD.
func (s *Session) SetDataBittiming(ch uint16, timing Bittiming) error {
	return s.out(RequestDataBittiming, ch, &timing)
}
