package gsusb

import "encoding/binary"

type Mode uint32

const (
	ModeReset Mode = 0
	ModeStart Mode = 1
)

// ChannelFlag bits match the corresponding Feature bit positions.
type ChannelFlag uint32

const (
	ChannelFlagNormal        ChannelFlag = 0
	ChannelFlagListenOnly    ChannelFlag = 1 << 0
	ChannelFlagLoopBack      ChannelFlag = 1 << 1
	ChannelFlagTripleSample  ChannelFlag = 1 << 2
	ChannelFlagOneShot       ChannelFlag = 1 << 3
	ChannelFlagHWTimestamp   ChannelFlag = 1 << 4
	ChannelFlagPadPackets    ChannelFlag = 1 << 7 // unsupported
	ChannelFlagFD            ChannelFlag = 1 << 8
	ChannelFlagBerrReporting ChannelFlag = 1 << 12 // unsupported, always enabled
)

const deviceModeLen = 8

// DeviceMode starts or resets one CAN channel together with its
// operational flags.
type DeviceMode struct {
	Mode  Mode
	Flags ChannelFlag
}

func (p *DeviceMode) Marshal() ([]byte, error) {
	buf := make([]byte, deviceModeLen)
	binary.LittleEndian.PutUint32(buf[0:], uint32(p.Mode))
	binary.LittleEndian.PutUint32(buf[4:], uint32(p.Flags))
	return buf, nil
}

func (p *DeviceMode) Unmarshal(buf []byte) error {
	if len(buf) != deviceModeLen {
		return malformed(RequestMode, 0, deviceModeLen, len(buf))
	}
	p.Mode = Mode(binary.LittleEndian.Uint32(buf[0:]))
	p.Flags = ChannelFlag(binary.LittleEndian.Uint32(buf[4:]))
	return nil
}

// SetMode starts or resets channel ch.
func (s *Session) SetMode(ch uint16, mode DeviceMode) error {
	return s.out(RequestMode, ch, &mode)
}
