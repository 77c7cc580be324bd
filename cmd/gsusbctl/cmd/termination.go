package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var terminationCmd = &cobra.Command{
	Use:   "termination [channel] [on|off]",
	Short: "Query or switch the bus termination resistor of a channel",
	Args:  cobra.RangeArgs(1, 2),
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

		if len(args) == 2 {
			on, err := parseOnOff(args[1])
			if err != nil {
				return err
			}
			return s.SetTermination(ch, on)
		}

		on, err := s.GetTermination(ch)
		if err != nil {
			return err
		}
		if on {
			fmt.Printf("channel %d: termination on\n", ch)
		} else {
			fmt.Printf("channel %d: termination off\n", ch)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(terminationCmd)
}
