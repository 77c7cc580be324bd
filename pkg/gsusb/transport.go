package gsusb

// Record is a fixed-size protocol record. Marshal always yields the
// record's fixed byte length; Unmarshal rejects any other length with
// ErrMalformedResponse. All multi-byte fields are little-endian.
type Record interface {
	Marshal() ([]byte, error)
	Unmarshal([]byte) error
}

// Transport performs vendor control transfers against one open device.
// Timeouts, if any, belong to the transport; this layer has none.
type Transport interface {
	// Out performs a host-to-device transfer and returns the number of
	// bytes the device accepted.
	Out(req Request, channel uint16, data []byte) (int, error)
	// In performs a device-to-host transfer of up to length bytes.
	In(req Request, channel uint16, length int) ([]byte, error)
	Close() error
}

// Device is one enumerated candidate exposed by a Discovery.
type Device interface {
	SerialNumber() string
	// Open activates the device's sole configuration and returns a
	// transport bound to it.
	Open() (Transport, error)
}

// Discovery enumerates devices matching a vendor/product id pair.
type Discovery interface {
	List(vendor, product uint16) ([]Device, error)
}

// Select picks the device to bind a session to. With a serial number the
// first candidate whose serial matches exactly wins; with an empty serial
// the first candidate wins. Returns nil when nothing matches.
func Select(devices []Device, serial string) Device {
	for _, d := range devices {
		if serial == "" || d.SerialNumber() == serial {
			return d
		}
	}
	return nil
}
