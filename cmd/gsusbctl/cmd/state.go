package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/muxable/gsusb/pkg/gsusb"
)

var stateCmd = &cobra.Command{
	Use:   "state [channel]",
	Short: "Print the bus state and error counters of a channel",
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

		state, err := s.State(ch)
		if err != nil {
			return err
		}
		fmt.Printf("channel %d: %s  rxerr: %d  txerr: %d\n",
			ch, colorState(state.State), state.RxErr, state.TxErr)
		return nil
	},
}

func colorState(s gsusb.State) string {
	switch s {
	case gsusb.StateErrorActive:
		return color.GreenString(s.String())
	case gsusb.StateErrorWarning:
		return color.YellowString(s.String())
	case gsusb.StateErrorPassive, gsusb.StateBusOff:
		return color.RedString(s.String())
	}
	return s.String()
}

func init() {
	rootCmd.AddCommand(stateCmd)
}
