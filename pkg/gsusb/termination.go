package gsusb

import "encoding/binary"

const (
	TerminationOff uint32 = 0
	TerminationOn  uint32 = 1
)

const terminationStateLen = 4

// TerminationState reports or switches the bus termination resistor of one
// channel.
type TerminationState struct {
	State uint32
}

func (p *TerminationState) Marshal() ([]byte, error) {
	buf := make([]byte, terminationStateLen)
	binary.LittleEndian.PutUint32(buf, p.State)
	return buf, nil
}

func (p *TerminationState) Unmarshal(buf []byte) error {
	if len(buf) != terminationStateLen {
		return malformed(RequestGetTermination, 0, terminationStateLen, len(buf))
	}
	p.State = binary.LittleEndian.Uint32(buf)
	return nil
}

// SetTermination switches the bus termination resistor of channel ch. The
// channel must report FeatureTermination.
func (s *Session) SetTermination(ch uint16, on bool) error {
	state := TerminationState{State: TerminationOff}
	if on {
		state.State = TerminationOn
	}
	return s.out(RequestSetTermination, ch, &state)
}

// GetTermination reports whether the bus termination resistor of channel
// ch is switched on.
func (s *Session) GetTermination(ch uint16) (bool, error) {
	var state TerminationState
	if err := s.in(RequestGetTermination, ch, &state); err != nil {
		return false, err
	}
	return state.State != TerminationOff, nil
}
