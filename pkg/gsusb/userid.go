package gsusb

import "encoding/binary"

const userIDLen = 4

// UserID is the persistent device user id record. The get/set user id
// requests are catalogued for wire compatibility only; gs_usb devices
// reject them and their semantics are undefined.
type UserID struct {
	ID uint32
}

func (p *UserID) Marshal() ([]byte, error) {
	buf := make([]byte, userIDLen)
	binary.LittleEndian.PutUint32(buf, p.ID)
	return buf, nil
}

func (p *UserID) Unmarshal(buf []byte) error {
	if len(buf) != userIDLen {
		return malformed(RequestGetUserID, 0, userIDLen, len(buf))
	}
	p.ID = binary.LittleEndian.Uint32(buf)
	return nil
}
