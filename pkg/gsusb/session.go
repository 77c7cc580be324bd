package gsusb

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Session owns one gs_usb device handle for its lifetime. Every method is
// one synchronous request/response transaction; there is no state between
// calls. The protocol has no transaction ids and cannot tell interleaved
// responses apart, so all calls are serialized through one session lock.
type Session struct {
	mu        sync.Mutex
	transport Transport
	id        string
}

// Open enumerates vendor:product candidates through d, selects one by
// serial number (empty selects the first found) and performs the
// little-endian host format handshake.
func Open(d Discovery, vendor, product uint16, serial string) (*Session, error) {
	devices, err := d.List(vendor, product)
	if err != nil {
		return nil, err
	}
	dev := Select(devices, serial)
	if dev == nil {
		return nil, fmt.Errorf("%w: %04x:%04x serial %q", ErrDeviceNotFound, vendor, product, serial)
	}
	transport, err := dev.Open()
	if err != nil {
		return nil, err
	}
	s := &Session{transport: transport, id: uuid.NewString()}
	if err := s.handshake(); err != nil {
		transport.Close()
		return nil, err
	}
	zap.L().Debug("gsusb session open",
		zap.String("session", s.id),
		zap.String("serial", dev.SerialNumber()))
	return s, nil
}

// handshake declares the host byte order. Transport failures propagate
// unchanged; a short write is fatal to session creation.
func (s *Session) handshake() error {
	config := HostConfig{ByteOrder: HostFormatLittleEndian}
	buf, err := config.Marshal()
	if err != nil {
		return err
	}
	n, err := s.transport.Out(RequestHostFormat, 0, buf)
	if err != nil {
		return err
	}
	if n != len(buf) {
		return fmt.Errorf("%w: sent %d of %d bytes", ErrSetupFailed, n, len(buf))
	}
	return nil
}

// Close releases the device handle. The session must not be used after.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	zap.L().Debug("gsusb session close", zap.String("session", s.id))
	return s.transport.Close()
}

// out encodes rec and performs one host-to-device transfer, verifying the
// device accepted every encoded byte.
func (s *Session) out(req Request, ch uint16, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	buf, err := rec.Marshal()
	if err != nil {
		return err
	}
	n, err := s.transport.Out(req, ch, buf)
	if err != nil {
		return err
	}
	if n != len(buf) {
		return &TransferError{
			Request:  req,
			Channel:  ch,
			Expected: len(buf),
			Actual:   n,
			kind:     ErrTransferIncomplete,
		}
	}
	return nil
}

// in performs one device-to-host transfer of the catalog length for req
// and decodes the response into rec.
func (s *Session) in(req Request, ch uint16, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	info, ok := Info(req)
	if !ok {
		return fmt.Errorf("gsusb: unknown request %d", req)
	}
	buf, err := s.transport.In(req, ch, info.Length)
	if err != nil {
		return err
	}
	if len(buf) != info.Length {
		return malformed(req, ch, info.Length, len(buf))
	}
	return rec.Unmarshal(buf)
}
