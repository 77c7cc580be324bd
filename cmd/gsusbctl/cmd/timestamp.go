package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var timestampCmd = &cobra.Command{
	Use:   "timestamp",
	Short: "Print the device hardware timestamp",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ts, err := s.Timestamp()
		if err != nil {
			return err
		}
		fmt.Printf("%d us\n", ts)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(timestampCmd)
}
