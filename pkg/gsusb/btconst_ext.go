package gsusb

import "encoding/binary"

const btConstExtLen = 72

// BTConstExt is the BTConst record extended with the CAN FD data phase
// limits. Only channels reporting FeatureBTConstExt answer this request.
type BTConstExt struct {
	Feature   Feature
	FclkCAN   uint32
	TSeg1Min  uint32
	TSeg1Max  uint32
	TSeg2Min  uint32
	TSeg2Max  uint32
	SJWMax    uint32
	BRPMin    uint32
	BRPMax    uint32
	BRPInc    uint32
	DTSeg1Min uint32
	DTSeg1Max uint32
	DTSeg2Min uint32
	DTSeg2Max uint32
	DSJWMax   uint32
	DBRPMin   uint32
	DBRPMax   uint32
	DBRPInc   uint32
}

func (p *BTConstExt) fields() []*uint32 {
	return []*uint32{
		(*uint32)(&p.Feature), &p.FclkCAN,
		&p.TSeg1Min, &p.TSeg1Max, &p.TSeg2Min, &p.TSeg2Max,
		&p.SJWMax, &p.BRPMin, &p.BRPMax, &p.BRPInc,
		&p.DTSeg1Min, &p.DTSeg1Max, &p.DTSeg2Min, &p.DTSeg2Max,
		&p.DSJWMax, &p.DBRPMin, &p.DBRPMax, &p.DBRPInc,
	}
}

func (p *BTConstExt) Marshal() ([]byte, error) {
	buf := make([]byte, btConstExtLen)
	for i, f := range p.fields() {
		binary.LittleEndian.PutUint32(buf[4*i:], *f)
	}
	return buf, nil
}

func (p *BTConstExt) Unmarshal(buf []byte) error {
	if len(buf) != btConstExtLen {
		return malformed(RequestBTConstExt, 0, btConstExtLen, len(buf))
	}
	for i, f := range p.fields() {
		*f = binary.LittleEndian.Uint32(buf[4*i:])
	}
	return nil
}

// BTConstExt queries the extended bit timing limits of channel ch.
func (s *Session) BTConstExt(ch uint16) (BTConstExt, error) {
	var bt BTConstExt
	if err := s.in(RequestBTConstExt, ch, &bt); err != nil {
		return BTConstExt{}, err
	}
	return bt, nil
}
