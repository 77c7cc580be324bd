package gsusb

import (
	"bytes"
	"errors"
	"reflect"
	"testing"
)

func TestRecordRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		record Record
		fresh  func() Record
	}{
		{
			name:   "host_config",
			record: &HostConfig{ByteOrder: HostFormatLittleEndian},
			fresh:  func() Record { return &HostConfig{} },
		},
		{
			name:   "bittiming",
			record: &Bittiming{PropSeg: 1, PhaseSeg1: 13, PhaseSeg2: 2, SJW: 1, BRP: 6},
			fresh:  func() Record { return &Bittiming{} },
		},
		{
			name:   "mode",
			record: &DeviceMode{Mode: ModeStart, Flags: ChannelFlagListenOnly | ChannelFlagFD},
			fresh:  func() Record { return &DeviceMode{} },
		},
		{
			name: "bt_const",
			record: &BTConst{
				Feature:  FeatureFD | FeatureTermination | FeatureGetState,
				FclkCAN:  80000000,
				TSeg1Min: 1, TSeg1Max: 255,
				TSeg2Min: 1, TSeg2Max: 127,
				SJWMax: 127,
				BRPMin: 1, BRPMax: 511, BRPInc: 1,
			},
			fresh: func() Record { return &BTConst{} },
		},
		{
			name: "bt_const_ext",
			record: &BTConstExt{
				Feature:  FeatureFD | FeatureBTConstExt,
				FclkCAN:  80000000,
				TSeg1Min: 1, TSeg1Max: 255,
				TSeg2Min: 1, TSeg2Max: 127,
				SJWMax: 127,
				BRPMin: 1, BRPMax: 511, BRPInc: 1,
				DTSeg1Min: 1, DTSeg1Max: 31,
				DTSeg2Min: 1, DTSeg2Max: 15,
				DSJWMax: 15,
				DBRPMin: 1, DBRPMax: 31, DBRPInc: 1,
			},
			fresh: func() Record { return &BTConstExt{} },
		},
		{
			name:   "device_config",
			record: &DeviceConfig{NChannels: 1, SWVersion: 2, HWVersion: 1},
			fresh:  func() Record { return &DeviceConfig{} },
		},
		{
			name:   "timestamp",
			record: &Timestamp{Microseconds: 0xDEADBEEF},
			fresh:  func() Record { return &Timestamp{} },
		},
		{
			name:   "identify_mode",
			record: &IdentifyMode{Mode: IdentifyOn},
			fresh:  func() Record { return &IdentifyMode{} },
		},
		{
			name:   "termination_state",
			record: &TerminationState{State: TerminationOn},
			fresh:  func() Record { return &TerminationState{} },
		},
		{
			name:   "device_state",
			record: &DeviceState{State: StateErrorWarning, RxErr: 97, TxErr: 112},
			fresh:  func() Record { return &DeviceState{} },
		},
		{
			name:   "user_id",
			record: &UserID{ID: 0x12345678},
			fresh:  func() Record { return &UserID{} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := tt.record.Marshal()
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			got := tt.fresh()
			if err := got.Unmarshal(buf); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if !reflect.DeepEqual(got, tt.record) {
				t.Fatalf("round trip mismatch: got %+v want %+v", got, tt.record)
			}
		})
	}
}

func TestRecordFixedLength(t *testing.T) {
	tests := []struct {
		record Record
		want   int
	}{
		{&HostConfig{}, 4},
		{&Bittiming{}, 20},
		{&DeviceMode{}, 8},
		{&BTConst{}, 40},
		{&BTConstExt{}, 72},
		{&DeviceConfig{}, 12},
		{&Timestamp{}, 4},
		{&IdentifyMode{}, 4},
		{&TerminationState{}, 4},
		{&DeviceState{}, 12},
		{&UserID{}, 4},
	}

	for _, tt := range tests {
		buf, err := tt.record.Marshal()
		if err != nil {
			t.Fatalf("%T: marshal: %v", tt.record, err)
		}
		if len(buf) != tt.want {
			t.Errorf("%T: encoded length %d, want %d", tt.record, len(buf), tt.want)
		}
	}
}

func TestHostFormatByteOrder(t *testing.T) {
	config := HostConfig{ByteOrder: HostFormatLittleEndian}
	buf, err := config.Marshal()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if want := []byte{0xEF, 0xBE, 0x00, 0x00}; !bytes.Equal(buf, want) {
		t.Fatalf("encoded %x, want %x", buf, want)
	}
}

func TestFeatureComposition(t *testing.T) {
	feature := FeatureFD | FeatureTermination
	if uint32(feature) != 2304 {
		t.Fatalf("FD|termination = %d, want 2304", uint32(feature))
	}

	in := BTConst{Feature: feature}
	buf, err := in.Marshal()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out BTConst
	if err := out.Unmarshal(buf); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Feature != feature {
		t.Fatalf("feature %#x does not round trip, got %#x", feature, out.Feature)
	}
}

func TestFeatureUnknownBitsPreserved(t *testing.T) {
	// bits above the defined width must survive a round trip
	feature := FeatureGetState | Feature(1<<20)
	in := BTConst{Feature: feature}
	buf, err := in.Marshal()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out BTConst
	if err := out.Unmarshal(buf); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Feature != feature {
		t.Fatalf("unknown bits dropped: got %#x want %#x", out.Feature, feature)
	}
}

func TestFeatureSupports(t *testing.T) {
	feature := FeatureFD | FeatureBTConstExt | FeatureTermination
	if !feature.Supports(FeatureFD | FeatureTermination) {
		t.Error("expected fd|termination supported")
	}
	if feature.Supports(FeatureIdentify) {
		t.Error("identify must not be reported as supported")
	}
}

func TestDeviceConfigChannels(t *testing.T) {
	config := DeviceConfig{NChannels: 3}
	if got := config.Channels(); got != 4 {
		t.Fatalf("nchannels=3 implies %d channels, want 4", got)
	}
}

func TestDeviceConfigReservedBytes(t *testing.T) {
	config := DeviceConfig{NChannels: 2, SWVersion: 2, HWVersion: 1}
	buf, err := config.Marshal()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := []byte{
		0x00, 0x00, 0x00, 0x02,
		0x02, 0x00, 0x00, 0x00,
		0x01, 0x00, 0x00, 0x00,
	}
	if !bytes.Equal(buf, want) {
		t.Fatalf("encoded %x, want %x", buf, want)
	}
}

func TestDeviceStateStopped(t *testing.T) {
	in := DeviceState{State: StateStopped, RxErr: 0, TxErr: 0}
	buf, err := in.Marshal()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out DeviceState
	if err := out.Unmarshal(buf); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out != in {
		t.Fatalf("got %+v, want %+v", out, in)
	}
	again, err := out.Marshal()
	if err != nil {
		t.Fatalf("re-marshal: %v", err)
	}
	if !bytes.Equal(again, buf) {
		t.Fatalf("re-encoded %x, want %x", again, buf)
	}
}

func TestUnmarshalShortBuffer(t *testing.T) {
	records := []Record{
		&HostConfig{},
		&Bittiming{},
		&DeviceMode{},
		&BTConst{},
		&BTConstExt{},
		&DeviceConfig{},
		&Timestamp{},
		&IdentifyMode{},
		&TerminationState{},
		&DeviceState{},
		&UserID{},
	}

	for _, rec := range records {
		err := rec.Unmarshal([]byte{0x00, 0x01})
		if !errors.Is(err, ErrMalformedResponse) {
			t.Errorf("%T: got %v, want ErrMalformedResponse", rec, err)
		}
		var terr *TransferError
		if !errors.As(err, &terr) {
			t.Errorf("%T: error carries no transfer detail", rec)
			continue
		}
		if terr.Actual != 2 {
			t.Errorf("%T: actual = %d, want 2", rec, terr.Actual)
		}
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateErrorActive, "error-active"},
		{StateErrorWarning, "error-warning"},
		{StateErrorPassive, "error-passive"},
		{StateBusOff, "bus-off"},
		{StateStopped, "stopped"},
		{StateSleeping, "sleeping"},
		{State(42), "state(42)"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", uint32(tt.state), got, tt.want)
		}
	}
}
