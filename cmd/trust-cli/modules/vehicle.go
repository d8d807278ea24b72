package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vanet-dev/trust-node/pkg/services/trust"
)

var (
	initialTrust float64

	reportSubject string
	reportFalse   bool

	recomputeEpoch uint64
)

var vehicleInitCmd = &cobra.Command{
	Use:   "init ID",
	Short: "Initialize a vehicle trust record",
	Long:  "Initialize a vehicle trust record with the given starting trust value.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var id trust.PeerID
		if err := id.DecodeString(args[0]); err != nil {
			return fmt.Errorf("invalid vehicle ID: %w", err)
		}

		if v := trust.Value(initialTrust); !v.Valid() {
			return fmt.Errorf("initial trust %v is out of [0, 1]", initialTrust)
		}

		w, err := connectWriter()
		if err != nil {
			return err
		}

		if err := w.SendInit(id, trust.Value(initialTrust)); err != nil {
			return fmt.Errorf("could not publish init request: %w", err)
		}

		cmd.Printf("init request for %s published\n", id)

		return nil
	},
}

var reportCmd = &cobra.Command{
	Use:   "report REPORTER",
	Short: "Report a message outcome",
	Long:  "Report the outcome of a message received from another vehicle.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var reporter, subject trust.PeerID

		if err := reporter.DecodeString(args[0]); err != nil {
			return fmt.Errorf("invalid reporter ID: %w", err)
		}

		if err := subject.DecodeString(reportSubject); err != nil {
			return fmt.Errorf("invalid subject ID: %w", err)
		}

		var report trust.Report

		report.SetReporter(reporter)
		report.SetSubject(subject)
		report.SetTruthful(!reportFalse)

		w, err := connectWriter()
		if err != nil {
			return err
		}

		if err := w.SendReport(report); err != nil {
			return fmt.Errorf("could not publish outcome report: %w", err)
		}

		cmd.Printf("outcome report %s -> %s published\n", reporter, subject)

		return nil
	},
}

var recomputeCmd = &cobra.Command{
	Use:   "recompute",
	Short: "Trigger a global trust recompute",
	RunE: func(cmd *cobra.Command, _ []string) error {
		w, err := connectWriter()
		if err != nil {
			return err
		}

		if err := w.SendRecompute(recomputeEpoch); err != nil {
			return fmt.Errorf("could not publish recompute trigger: %w", err)
		}

		cmd.Println("recompute trigger published")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(vehicleInitCmd, reportCmd, recomputeCmd)

	vehicleInitCmd.Flags().Float64Var(&initialTrust, "initial-trust", 0.5, "starting trust value of the vehicle")

	reportCmd.Flags().StringVar(&reportSubject, "subject", "", "ID of the vehicle being reported on")
	reportCmd.Flags().BoolVar(&reportFalse, "false", false, "mark the reported message as false")
	_ = reportCmd.MarkFlagRequired("subject")

	recomputeCmd.Flags().Uint64Var(&recomputeEpoch, "epoch", 0, "number of the recompute round")
}
