package usbfs

import (
	"fmt"
	"sync"
	"unsafe"

	"go.uber.org/zap"
	"golang.org/x/sys/unix"

	"github.com/muxable/gsusb/pkg/gsusb"
)

const (
	// bmRequestType vendor | interface recipient, per direction.
	requestTypeVendorOut = 0x41
	requestTypeVendorIn  = 0xC1

	// gs_usb exposes its vendor requests on interface 0.
	interfaceNumber = 0

	defaultTimeoutMS = 1000
)

// Handle is an open usbfs device node implementing gsusb.Transport.
type Handle struct {
	mu sync.Mutex
	fd int
}

func open(path string) (*Handle, error) {
	fd, err := unix.Open(path, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("usbfs: open %s: %w", path, err)
	}
	if err := ioctlSetUint32(fd, usbdevfsSetConfiguration, 1); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("usbfs: set configuration: %w", err)
	}
	if err := ioctlSetUint32(fd, usbdevfsClaimInterface, interfaceNumber); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("usbfs: claim interface: %w", err)
	}
	return &Handle{fd: fd}, nil
}

func (h *Handle) control(reqType uint8, req gsusb.Request, value uint16, data []byte) (int, error) {
	ctrl := ctrlTransfer{
		requestType: reqType,
		request:     uint8(req),
		value:       value,
		index:       interfaceNumber,
		length:      uint16(len(data)),
		timeout:     defaultTimeoutMS,
	}
	if len(data) > 0 {
		ctrl.data = unsafe.Pointer(&data[0])
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return ioctlRetval(h.fd, usbdevfsControl, uintptr(unsafe.Pointer(&ctrl)))
}

func (h *Handle) Out(req gsusb.Request, channel uint16, data []byte) (int, error) {
	n, err := h.control(requestTypeVendorOut, req, channel, data)
	if err != nil {
		return 0, err
	}
	zap.L().Debug("usbfs control out",
		zap.Stringer("request", req),
		zap.Uint16("channel", channel),
		zap.String("data", fmt.Sprintf("%x", data)))
	return n, nil
}

func (h *Handle) In(req gsusb.Request, channel uint16, length int) ([]byte, error) {
	buf := make([]byte, length)
	n, err := h.control(requestTypeVendorIn, req, channel, buf)
	if err != nil {
		return nil, err
	}
	zap.L().Debug("usbfs control in",
		zap.Stringer("request", req),
		zap.Uint16("channel", channel),
		zap.String("data", fmt.Sprintf("%x", buf[:n])))
	return buf[:n], nil
}

func (h *Handle) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	ioctlSetUint32(h.fd, usbdevfsReleaseInterface, interfaceNumber)
	return unix.Close(h.fd)
}
