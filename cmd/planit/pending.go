package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Jinash-Rouniyar/plan-it-ahead/internal/planner"
	"github.com/Jinash-Rouniyar/plan-it-ahead/internal/record"
)

var (
	pendingType string
	pendingData string
)

var pendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "Inspect and edit the staged items",
}

var pendingListCmd = &cobra.Command{
	Use:   "list",
	Short: "List staged items in the order they were added",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		items := cur.pending.List(cmd.Context())
		return cur.out.render(cmd.OutOrStdout(), items, func(tw *tabwriter.Writer) {
			fmt.Fprintln(tw, "#\tTYPE\tNAME\tPRICE\tADDED")
			for i, it := range items {
				name := record.String(it.Data, record.NameKeys...)
				if it.Type == planner.ItemFlight {
					name = record.String(it.Data, "flight_number", "airline", "id")
				}
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", i, it.Type, name,
					money(record.NumberOr(it.Data, 0, record.PriceKeys...)), it.AddedAt.Local().Format("2006-01-02 15:04"))
			}
		})
	},
}

var pendingAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Stage a raw record, e.g. a flight picked elsewhere",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		item, err := parsePendingItem(pendingType, pendingData)
		if err != nil {
			return err
		}
		if err := cur.pending.Add(cmd.Context(), item); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "%d pending.\n", cur.pending.Len(cmd.Context()))
		return nil
	},
}

var pendingRemoveCmd = &cobra.Command{
	Use:   "remove <index>",
	Short: "Remove the staged item at a position",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		i, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid index %q", args[0])
		}
		return cur.pending.RemoveAt(cmd.Context(), i)
	},
}

var pendingClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every staged item",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cur.pending.Clear(cmd.Context())
	},
}

// parsePendingItem builds an item from the --type and --data flags.
func parsePendingItem(typ, data string) (planner.PendingItem, error) {
	t := planner.ItemType(typ)
	switch t {
	case planner.ItemFlight, planner.ItemHotel, planner.ItemAttraction:
	default:
		return planner.PendingItem{}, fmt.Errorf("unknown item type %q (want flight, hotel or attraction)", typ)
	}
	var rec record.Record
	if err := json.Unmarshal([]byte(data), &rec); err != nil || rec == nil {
		return planner.PendingItem{}, fmt.Errorf("--data must be a JSON object")
	}
	return planner.PendingItem{Type: t, Data: rec}, nil
}

func init() {
	rootCmd.AddCommand(pendingCmd)
	pendingCmd.AddCommand(pendingListCmd, pendingAddCmd, pendingRemoveCmd, pendingClearCmd)

	pendingAddCmd.Flags().StringVar(&pendingType, "type", string(planner.ItemFlight), "Item type: flight, hotel or attraction")
	pendingAddCmd.Flags().StringVar(&pendingData, "data", "", "The record as a JSON object")
	_ = pendingAddCmd.MarkFlagRequired("data")
}
