package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/vanet-dev/trust-node/pkg/services/trust"
	"github.com/vanet-dev/trust-node/pkg/services/trust/storage/persistent"
)

var dbPath string

var getCmd = &cobra.Command{
	Use:   "get ID",
	Short: "Print the stored trust record of a vehicle",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var id trust.PeerID
		if err := id.DecodeString(args[0]); err != nil {
			return fmt.Errorf("invalid vehicle ID: %w", err)
		}

		s, err := persistent.New(dbPath)
		if err != nil {
			return err
		}
		defer s.Close()

		rec, err := s.Get(id)
		if err != nil {
			return err
		}

		printRecords([]trust.PeerRecord{{ID: id, Record: rec}})

		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print all stored trust records",
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, err := persistent.New(dbPath)
		if err != nil {
			return err
		}
		defer s.Close()

		var recs []trust.PeerRecord

		err = s.Iterate(func(rec trust.PeerRecord) error {
			recs = append(recs, rec)
			return nil
		})
		if err != nil {
			return err
		}

		printRecords(recs)

		return nil
	},
}

func printRecords(recs []trust.PeerRecord) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Vehicle", "Trust", "Updated"})

	for i := range recs {
		table.Append([]string{
			recs[i].ID.String(),
			fmt.Sprintf("%.4f", recs[i].Record.Value().Float64()),
			time.Unix(recs[i].Record.Updated(), 0).UTC().Format(time.RFC3339),
		})
	}

	table.Render()
}

func init() {
	rootCmd.AddCommand(getCmd, listCmd)

	for _, c := range []*cobra.Command{getCmd, listCmd} {
		c.Flags().StringVar(&dbPath, "db", "trust.db", "path to the record database file")
	}
}
