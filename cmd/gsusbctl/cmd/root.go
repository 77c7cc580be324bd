package cmd

import (
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muxable/gsusb/pkg/gsusb"
	"github.com/muxable/gsusb/pkg/usbfs"
)

const (
	flagVID    = "vid"
	flagPID    = "pid"
	flagSerial = "serial"
	flagDebug  = "debug"
)

var rootCmd = &cobra.Command{
	Use:          "gsusbctl",
	Short:        "Configure and query gs_usb CAN adapters",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		debug, err := cmd.Flags().GetBool(flagDebug)
		if err != nil {
			return err
		}
		if debug {
			logger, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			zap.ReplaceGlobals(logger)
		}
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.Uint16P(flagVID, "v", 0x1209, "USB vendor id")
	pf.Uint16P(flagPID, "p", 0xca01, "USB product id")
	pf.StringP(flagSerial, "s", "", "USB serial number, empty = first match")
	pf.BoolP(flagDebug, "d", false, "log raw control transfers")
}

func openSession(cmd *cobra.Command) (*gsusb.Session, error) {
	vid, err := cmd.Flags().GetUint16(flagVID)
	if err != nil {
		return nil, err
	}
	pid, err := cmd.Flags().GetUint16(flagPID)
	if err != nil {
		return nil, err
	}
	serial, err := cmd.Flags().GetString(flagSerial)
	if err != nil {
		return nil, err
	}
	return gsusb.Open(usbfs.Discovery{}, vid, pid, serial)
}

func parseChannel(arg string) (uint16, error) {
	ch, err := strconv.ParseUint(arg, 10, 16)
	if err != nil {
		return 0, err
	}
	return uint16(ch), nil
}
