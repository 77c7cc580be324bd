package gsusb

import (
	"encoding/binary"
	"fmt"
)

type State uint32

const (
	StateErrorActive  State = 0 // RX/TX error count < 96
	StateErrorWarning State = 1 // RX/TX error count < 128
	StateErrorPassive State = 2 // RX/TX error count < 256
	StateBusOff       State = 3 // RX/TX error count >= 256
	StateStopped      State = 4
	StateSleeping     State = 5 // unused
)

func (s State) String() string {
	switch s {
	case StateErrorActive:
		return "error-active"
	case StateErrorWarning:
		return "error-warning"
	case StateErrorPassive:
		return "error-passive"
	case StateBusOff:
		return "bus-off"
	case StateStopped:
		return "stopped"
	case StateSleeping:
		return "sleeping"
	}
	return fmt.Sprintf("state(%d)", uint32(s))
}

const deviceStateLen = 12

// DeviceState reports the bus state and error counters of one channel.
type DeviceState struct {
	State State
	RxErr uint32
	TxErr uint32
}

func (p *DeviceState) Marshal() ([]byte, error) {
	buf := make([]byte, deviceStateLen)
	binary.LittleEndian.PutUint32(buf[0:], uint32(p.State))
	binary.LittleEndian.PutUint32(buf[4:], p.RxErr)
	binary.LittleEndian.PutUint32(buf[8:], p.TxErr)
	return buf, nil
}

func (p *DeviceState) Unmarshal(buf []byte) error {
	if len(buf) != deviceStateLen {
		return malformed(RequestGetState, 0, deviceStateLen, len(buf))
	}
	p.State = State(binary.LittleEndian.Uint32(buf[0:]))
	p.RxErr = binary.LittleEndian.Uint32(buf[4:])
	p.TxErr = binary.LittleEndian.Uint32(buf[8:])
	return nil
}

// State queries the bus state of channel ch. The channel must report
// FeatureGetState.
func (s *Session) State(ch uint16) (DeviceState, error) {
	var state DeviceState
	if err := s.in(RequestGetState, ch, &state); err != nil {
		return DeviceState{}, err
	}
	return state, nil
}
