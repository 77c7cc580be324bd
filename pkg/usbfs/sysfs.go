package usbfs

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/muxable/gsusb/pkg/gsusb"
)

const sysfsUSBPath = "/sys/bus/usb/devices"

// Discovery enumerates USB devices through sysfs. The zero value scans the
// host's /sys/bus/usb/devices; Root overrides the scan directory.
type Discovery struct {
	Root string
}

type device struct {
	node   string // /dev/bus/usb/BBB/DDD
	serial string
}

func (d device) SerialNumber() string {
	return d.serial
}

func (d device) Open() (gsusb.Transport, error) {
	return open(d.node)
}

func (d Discovery) List(vendor, product uint16) ([]gsusb.Device, error) {
	root := d.Root
	if root == "" {
		root = sysfsUSBPath
	}
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}
	var devices []gsusb.Device
	for _, entry := range entries {
		name := entry.Name()
		// skip root hubs (usbN) and interface entries (N-M:C.I)
		if strings.HasPrefix(name, "usb") || strings.Contains(name, ":") {
			continue
		}
		base := filepath.Join(root, name)
		vid, err := readHexUint16(filepath.Join(base, "idVendor"))
		if err != nil || vid != vendor {
			continue
		}
		pid, err := readHexUint16(filepath.Join(base, "idProduct"))
		if err != nil || pid != product {
			continue
		}
		busnum, err := readUint(filepath.Join(base, "busnum"))
		if err != nil {
			continue
		}
		devnum, err := readUint(filepath.Join(base, "devnum"))
		if err != nil {
			continue
		}
		// devices without a serial number descriptor have no serial file
		serial, _ := readString(filepath.Join(base, "serial"))
		devices = append(devices, device{
			node:   fmt.Sprintf("/dev/bus/usb/%03d/%03d", busnum, devnum),
			serial: serial,
		})
	}
	return devices, nil
}

func readString(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

func readUint(path string) (uint64, error) {
	s, err := readString(path)
	if err != nil {
		return 0, err
	}
	return strconv.ParseUint(s, 10, 16)
}

func readHexUint16(path string) (uint16, error) {
	s, err := readString(path)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, err
	}
	return uint16(v), nil
}
