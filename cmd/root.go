package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yuriiter/flightbook/pkg/booking"
	"github.com/yuriiter/flightbook/pkg/utils"
)

var debugFlag bool

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "flightbook",
		Short:         "Book a flight from the terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			utils.SetDebug(debugFlag)
			defer utils.SyncLog()

			p := booking.NewPrompt(booking.NewLineReader(cmd.InOrStdin()), cmd.OutOrStdout())
			err := p.Run()
			if errors.Is(err, booking.ErrInputRead) || errors.Is(err, utils.ErrInvalidPassengerCount) {
				// already reported on stdout; the run still ends normally
				return nil
			}
			return err
		},
	}
	cmd.Flags().BoolVarP(&debugFlag, "debug", "v", false, "Enable debug logs")
	return cmd
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
