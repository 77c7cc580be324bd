package gsusb

import (
	"encoding/binary"
	"strings"
)

// Feature is the capability bitfield one CAN channel reports. Bits above
// the defined width are preserved verbatim so future protocol extensions
// survive a round trip.
type Feature uint32

const (
	FeatureListenOnly    Feature = 1 << 0
	FeatureLoopBack      Feature = 1 << 1
	FeatureTripleSample  Feature = 1 << 2
	FeatureOneShot       Feature = 1 << 3
	FeatureHWTimestamp   Feature = 1 << 4
	FeatureIdentify      Feature = 1 << 5
	FeatureUserID        Feature = 1 << 6 // unsupported
	FeaturePadPackets    Feature = 1 << 7 // unsupported
	FeatureFD            Feature = 1 << 8
	FeatureQuirkLPC546xx Feature = 1 << 9 // unused
	FeatureBTConstExt    Feature = 1 << 10
	FeatureTermination   Feature = 1 << 11
	FeatureBerrReporting Feature = 1 << 12 // unsupported, always enabled
	FeatureGetState      Feature = 1 << 13
)

// Supports reports whether every bit of want is present in f. A channel
// must not be sent a request whose feature bit it does not report.
func (f Feature) Supports(want Feature) bool {
	return f&want == want
}

var featureNames = []struct {
	bit  Feature
	name string
}{
	{FeatureListenOnly, "listen-only"},
	{FeatureLoopBack, "loop-back"},
	{FeatureTripleSample, "triple-sample"},
	{FeatureOneShot, "one-shot"},
	{FeatureHWTimestamp, "hw-timestamp"},
	{FeatureIdentify, "identify"},
	{FeatureUserID, "user-id"},
	{FeaturePadPackets, "pad-packets"},
	{FeatureFD, "fd"},
	{FeatureQuirkLPC546xx, "quirk-lpc546xx"},
	{FeatureBTConstExt, "bt-const-ext"},
	{FeatureTermination, "termination"},
	{FeatureBerrReporting, "berr-reporting"},
	{FeatureGetState, "get-state"},
}

func (f Feature) String() string {
	var names []string
	for _, fn := range featureNames {
		if f&fn.bit != 0 {
			names = append(names, fn.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

const btConstLen = 40

// BTConst reports the classic CAN bit timing limits of one channel along
// with its feature set and CAN core clock frequency. Segment limits are in
// time quanta.
type BTConst struct {
	Feature  Feature
	FclkCAN  uint32
	TSeg1Min uint32
	TSeg1Max uint32
	TSeg2Min uint32
	TSeg2Max uint32
	SJWMax   uint32
	BRPMin   uint32
	BRPMax   uint32
	BRPInc   uint32
}

func (p *BTConst) fields() []*uint32 {
	return []*uint32{
		(*uint32)(&p.Feature), &p.FclkCAN,
		&p.TSeg1Min, &p.TSeg1Max, &p.TSeg2Min, &p.TSeg2Max,
		&p.SJWMax, &p.BRPMin, &p.BRPMax, &p.BRPInc,
	}
}

func (p *BTConst) Marshal() ([]byte, error) {
	buf := make([]byte, btConstLen)
	for i, f := range p.fields() {
		binary.LittleEndian.PutUint32(buf[4*i:], *f)
	}
	return buf, nil
}

func (p *BTConst) Unmarshal(buf []byte) error {
	if len(buf) != btConstLen {
		return malformed(RequestBTConst, 0, btConstLen, len(buf))
	}
	for i, f := range p.fields() {
		*f = binary.LittleEndian.Uint32(buf[4*i:])
	}
	return nil
}

// BTConst queries the classic CAN bit timing limits of channel ch.
func (s *Session) BTConst(ch uint16) (BTConst, error) {
	var bt BTConst
	if err := s.in(RequestBTConst, ch, &bt); err != nil {
		return BTConst{}, err
	}
	return bt, nil
}
