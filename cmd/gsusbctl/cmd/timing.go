package cmd

import (
	"github.com/spf13/cobra"

	"github.com/muxable/gsusb/pkg/gsusb"
)

const (
	flagPropSeg   = "prop-seg"
	flagPhaseSeg1 = "phase-seg1"
	flagPhaseSeg2 = "phase-seg2"
	flagSJW       = "sjw"
	flagBRP       = "brp"
	flagDataPhase = "data"
)

var timingCmd = &cobra.Command{
	Use:   "timing [channel]",
	Short: "Set the bit timing of a channel",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ch, err := parseChannel(args[0])
		if err != nil {
			return err
		}
		var timing gsusb.Bittiming
		for name, field := range map[string]*uint32{
			flagPropSeg:   &timing.PropSeg,
			flagPhaseSeg1: &timing.PhaseSeg1,
			flagPhaseSeg2: &timing.PhaseSeg2,
			flagSJW:       &timing.SJW,
			flagBRP:       &timing.BRP,
		} {
			v, err := cmd.Flags().GetUint32(name)
			if err != nil {
				return err
			}
			*field = v
		}
		dataPhase, err := cmd.Flags().GetBool(flagDataPhase)
		if err != nil {
			return err
		}
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()
		if dataPhase {
			return s.SetDataBittiming(ch, timing)
		}
		return s.SetBittiming(ch, timing)
	},
}

func init() {
	f := timingCmd.Flags()
	f.Uint32(flagPropSeg, 0, "propagation segment (tq)")
	f.Uint32(flagPhaseSeg1, 0, "phase segment 1 (tq)")
	f.Uint32(flagPhaseSeg2, 0, "phase segment 2 (tq)")
	f.Uint32(flagSJW, 0, "synchronisation jump width (tq)")
	f.Uint32(flagBRP, 0, "bitrate prescaler")
	f.Bool(flagDataPhase, false, "set the CAN FD data phase timing")
	rootCmd.AddCommand(timingCmd)
}
