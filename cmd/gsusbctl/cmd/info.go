package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/muxable/gsusb/pkg/gsusb"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print device configuration and per-channel capabilities",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		config, err := s.DeviceConfig()
		if err != nil {
			return err
		}
		fmt.Printf("channels: %d  sw version: %d  hw version: %d\n",
			config.Channels(), config.SWVersion, config.HWVersion)

		for ch := uint16(0); int(ch) < config.Channels(); ch++ {
			bt, err := s.BTConst(ch)
			if err != nil {
				return err
			}
			fmt.Printf("channel %d:\n", ch)
			fmt.Printf("  fclk_can: %d Hz\n", bt.FclkCAN)
			fmt.Printf("  features: %s\n", color.GreenString(bt.Feature.String()))
			fmt.Printf("  tseg1: %d..%d  tseg2: %d..%d  sjw max: %d  brp: %d..%d/%d\n",
				bt.TSeg1Min, bt.TSeg1Max, bt.TSeg2Min, bt.TSeg2Max,
				bt.SJWMax, bt.BRPMin, bt.BRPMax, bt.BRPInc)
			if bt.Feature.Supports(gsusb.FeatureBTConstExt) {
				ext, err := s.BTConstExt(ch)
				if err != nil {
					return err
				}
				fmt.Printf("  dtseg1: %d..%d  dtseg2: %d..%d  dsjw max: %d  dbrp: %d..%d/%d\n",
					ext.DTSeg1Min, ext.DTSeg1Max, ext.DTSeg2Min, ext.DTSeg2Max,
					ext.DSJWMax, ext.DBRPMin, ext.DBRPMax, ext.DBRPInc)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
