package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var identifyCmd = &cobra.Command{
	Use:   "identify [channel] on|off",
	Short: "Switch visual identification of a channel on or off",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ch, err := parseChannel(args[0])
		if err != nil {
			return err
		}
		on, err := parseOnOff(args[1])
		if err != nil {
			return err
		}
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()
		return s.Identify(ch, on)
	},
}

func parseOnOff(arg string) (bool, error) {
	switch arg {
	case "on":
		return true, nil
	case "off":
		return false, nil
	}
	return false, fmt.Errorf("expected on or off, got %q", arg)
}

func init() {
	rootCmd.AddCommand(identifyCmd)
}
