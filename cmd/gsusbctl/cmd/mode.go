package cmd

import (
	"github.com/spf13/cobra"

	"github.com/muxable/gsusb/pkg/gsusb"
)

const (
	flagListenOnly   = "listen-only"
	flagLoopBack     = "loop-back"
	flagTripleSample = "triple-sample"
	flagOneShot      = "one-shot"
	flagHWTimestamp  = "hw-timestamp"
	flagFD           = "fd"
)

var startCmd = &cobra.Command{
	Use:   "start [channel]",
	Short: "Start a channel",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ch, err := parseChannel(args[0])
		if err != nil {
			return err
		}
		flags, err := modeFlags(cmd)
		if err != nil {
			return err
		}
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()
		return s.SetMode(ch, gsusb.DeviceMode{Mode: gsusb.ModeStart, Flags: flags})
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset [channel]",
	Short: "Reset a channel",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ch, err := parseChannel(args[0])
		if err != nil {
			return err
		}
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()
		return s.SetMode(ch, gsusb.DeviceMode{Mode: gsusb.ModeReset, Flags: gsusb.ChannelFlagNormal})
	},
}

func modeFlags(cmd *cobra.Command) (gsusb.ChannelFlag, error) {
	flags := gsusb.ChannelFlagNormal
	for name, bit := range map[string]gsusb.ChannelFlag{
		flagListenOnly:   gsusb.ChannelFlagListenOnly,
		flagLoopBack:     gsusb.ChannelFlagLoopBack,
		flagTripleSample: gsusb.ChannelFlagTripleSample,
		flagOneShot:      gsusb.ChannelFlagOneShot,
		flagHWTimestamp:  gsusb.ChannelFlagHWTimestamp,
		flagFD:           gsusb.ChannelFlagFD,
	} {
		on, err := cmd.Flags().GetBool(name)
		if err != nil {
			return 0, err
		}
		if on {
			flags |= bit
		}
	}
	return flags, nil
}

func init() {
	f := startCmd.Flags()
	f.Bool(flagListenOnly, false, "do not send dominant bits")
	f.Bool(flagLoopBack, false, "receive own frames")
	f.Bool(flagTripleSample, false, "use triple sampling")
	f.Bool(flagOneShot, false, "do not retransmit")
	f.Bool(flagHWTimestamp, false, "timestamp frames in hardware")
	f.Bool(flagFD, false, "enable CAN FD")
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(resetCmd)
}
