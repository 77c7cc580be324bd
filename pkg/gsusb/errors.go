package gsusb

import (
	"errors"
	"fmt"
)

var (
	// ErrDeviceNotFound is returned by Open when discovery yields no
	// device matching the vendor/product id and serial number.
	ErrDeviceNotFound = errors.New("gsusb: device not found")
	// ErrSetupFailed is returned by Open when the host format handshake
	// sends fewer bytes than encoded.
	ErrSetupFailed = errors.New("gsusb: host format handshake failed")
	// ErrTransferIncomplete is returned when a host-to-device transfer
	// sends fewer bytes than encoded.
	ErrTransferIncomplete = errors.New("gsusb: incomplete control transfer")
	// ErrMalformedResponse is returned when a device-to-host transfer
	// returns a length other than the record's fixed size.
	ErrMalformedResponse = errors.New("gsusb: malformed response")
)

// TransferError reports a control transfer that moved a different number of
// bytes than the catalog prescribes. It matches one of the sentinel errors
// above through errors.Is.
type TransferError struct {
	Request  Request
	Channel  uint16
	Expected int
	Actual   int

	kind error
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("%v: %s channel %d: expected %d bytes, got %d",
		e.kind, e.Request, e.Channel, e.Expected, e.Actual)
}

func (e *TransferError) Unwrap() error {
	return e.kind
}

func malformed(req Request, channel uint16, expected, actual int) error {
	return &TransferError{
		Request:  req,
		Channel:  channel,
		Expected: expected,
		Actual:   actual,
		kind:     ErrMalformedResponse,
	}
}
