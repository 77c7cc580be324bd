package gsusb

import "encoding/binary"

const deviceConfigLen = 12

// DeviceConfig is the device-global configuration record.
type DeviceConfig struct {
	// NChannels is the number of CAN channels on the device minus one.
	NChannels uint8
	SWVersion uint32
	HWVersion uint32
}

func (p *DeviceConfig) Marshal() ([]byte, error) {
	buf := make([]byte, deviceConfigLen)
	// three reserved bytes precede nchannels
	buf[3] = p.NChannels
	binary.LittleEndian.PutUint32(buf[4:], p.SWVersion)
	binary.LittleEndian.PutUint32(buf[8:], p.HWVersion)
	return buf, nil
}

func (p *DeviceConfig) Unmarshal(buf []byte) error {
	if len(buf) != deviceConfigLen {
		return malformed(RequestDeviceConfig, 0, deviceConfigLen, len(buf))
	}
	p.NChannels = buf[3]
	p.SWVersion = binary.LittleEndian.Uint32(buf[4:])
	p.HWVersion = binary.LittleEndian.Uint32(buf[8:])
	return nil
}

// Channels returns the physical channel count.
func (p *DeviceConfig) Channels() int {
	return int(p.NChannels) + 1
}

// DeviceConfig queries the device-global configuration.
func (s *Session) DeviceConfig() (DeviceConfig, error) {
	var config DeviceConfig
	if err := s.in(RequestDeviceConfig, 0, &config); err != nil {
		return DeviceConfig{}, err
	}
	return config, nil
}
