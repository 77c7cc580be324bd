package gsusb

// https://github.com/CANnectivity/cannectivity/blob/main/include/cannectivity/usb/class/gs_usb.h

import "fmt"

type Request uint8

const (
	RequestHostFormat     Request = 0
	RequestBittiming      Request = 1
	RequestMode           Request = 2
	RequestBerr           Request = 3 // unsupported
	RequestBTConst        Request = 4
	RequestDeviceConfig   Request = 5
	RequestTimestamp      Request = 6
	RequestIdentify       Request = 7
	RequestGetUserID      Request = 8 // unsupported
	RequestSetUserID      Request = 9 // unsupported
	RequestDataBittiming  Request = 10
	RequestBTConstExt     Request = 11
	RequestSetTermination Request = 12
	RequestGetTermination Request = 13
	RequestGetState       Request = 14
)

type Direction uint8

const (
	DirectionOut Direction = iota // host to device
	DirectionIn                   // device to host
)

// RequestInfo describes one catalog entry: the transfer direction, whether
// the request carries a channel index in wValue, and the fixed payload
// length in bytes.
type RequestInfo struct {
	Name      string
	Direction Direction
	Channel   bool
	Length    int
}

// The catalog is the protocol. It is closed and never inferred from peer
// responses. The berr layout is undefined on real devices, so its entry
// carries no payload length.
var catalog = map[Request]RequestInfo{
	RequestHostFormat:     {"host_format", DirectionOut, false, hostConfigLen},
	RequestBittiming:      {"bittiming", DirectionOut, true, bittimingLen},
	RequestMode:           {"mode", DirectionOut, true, deviceModeLen},
	RequestBerr:           {"berr", DirectionIn, true, 0},
	RequestBTConst:        {"bt_const", DirectionIn, true, btConstLen},
	RequestDeviceConfig:   {"device_config", DirectionIn, false, deviceConfigLen},
	RequestTimestamp:      {"timestamp", DirectionIn, false, timestampLen},
	RequestIdentify:       {"identify", DirectionOut, true, identifyModeLen},
	RequestGetUserID:      {"get_user_id", DirectionIn, true, userIDLen},
	RequestSetUserID:      {"set_user_id", DirectionOut, true, userIDLen},
	RequestDataBittiming:  {"data_bittiming", DirectionOut, true, bittimingLen},
	RequestBTConstExt:     {"bt_const_ext", DirectionIn, true, btConstExtLen},
	RequestSetTermination: {"set_termination", DirectionOut, true, terminationStateLen},
	RequestGetTermination: {"get_termination", DirectionIn, true, terminationStateLen},
	RequestGetState:       {"get_state", DirectionIn, true, deviceStateLen},
}

// Info returns the catalog entry for req.
func Info(req Request) (RequestInfo, bool) {
	info, ok := catalog[req]
	return info, ok
}

func (r Request) String() string {
	if info, ok := catalog[r]; ok {
		return info.Name
	}
	return fmt.Sprintf("request(%d)", uint8(r))
}
