// Package usbfs implements the gsusb transport and discovery collaborators
// on top of the Linux usbfs character devices, without libusb.
package usbfs

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

func ioR(t, nr, size uintptr) uintptr {
	return (2 << 30) | (t << 8) | nr | (size << 16)
}

func ioWR(t, nr, size uintptr) uintptr {
	return (3 << 30) | (t << 8) | nr | (size << 16)
}

const typUSB = 85 // 'U'

// USBDEVFS_CONTROL, USBDEVFS_SETCONFIGURATION, USBDEVFS_CLAIMINTERFACE,
// USBDEVFS_RELEASEINTERFACE
var (
	usbdevfsControl          = ioWR(typUSB, 0, unsafe.Sizeof(ctrlTransfer{}))
	usbdevfsSetConfiguration = ioR(typUSB, 5, unsafe.Sizeof(uint32(0)))
	usbdevfsClaimInterface   = ioR(typUSB, 15, unsafe.Sizeof(uint32(0)))
	usbdevfsReleaseInterface = ioR(typUSB, 16, unsafe.Sizeof(uint32(0)))
)

// ctrlTransfer matches the kernel's struct usbdevfs_ctrltransfer layout.
type ctrlTransfer struct {
	requestType uint8
	request     uint8
	value       uint16
	index       uint16
	length      uint16
	timeout     uint32 // milliseconds
	data        unsafe.Pointer
}

func ioctlRetval(fd int, op, arg uintptr) (int, error) {
	r, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), op, arg)
	if errno != 0 {
		return 0, errno
	}
	return int(r), nil
}

func ioctlSetUint32(fd int, op uintptr, val uint32) error {
	_, err := ioctlRetval(fd, op, uintptr(unsafe.Pointer(&val)))
	return err
}
