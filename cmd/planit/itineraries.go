package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Jinash-Rouniyar/plan-it-ahead/internal/planner"
)

var (
	listPage        int
	listLimit       int
	saveItineraryID int64
	exportFormat    string
)

var itinerariesCmd = &cobra.Command{
	Use:   "itineraries",
	Short: "List server itineraries",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		page, err := cur.api.ListItineraries(cmd.Context(), listPage, listLimit)
		if err != nil {
			return err
		}
		return cur.out.render(cmd.OutOrStdout(), page, func(tw *tabwriter.Writer) {
			fmt.Fprintln(tw, "ID\tTITLE\tDEPARTURE\tRETURN")
			for _, it := range page.Data {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", it.ID, it.Title, it.DepartureDate, it.ReturnDate)
			}
			fmt.Fprintf(tw, "\npage %d, %d total\n", page.Pagination.Page, page.Pagination.Total)
		})
	},
}

var budgetCmd = &cobra.Command{
	Use:   "budget <itinerary-id>",
	Short: "Show the estimated budget of an itinerary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var id int64
		if _, err := fmt.Sscan(args[0], &id); err != nil {
			return fmt.Errorf("invalid itinerary id %q", args[0])
		}
		b, err := cur.api.ItineraryBudget(cmd.Context(), id)
		if err != nil {
			return err
		}
		return cur.out.render(cmd.OutOrStdout(), b, func(tw *tabwriter.Writer) {
			for _, k := range []string{"items_total", "flights_total", "estimated_budget"} {
				fmt.Fprintf(tw, "%s\t%v\n", k, b[k])
			}
		})
	},
}

var exportCmd = &cobra.Command{
	Use:   "export <itinerary-id>",
	Short: "Write an itinerary as CSV or JSON to stdout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var id int64
		if _, err := fmt.Sscan(args[0], &id); err != nil {
			return fmt.Errorf("invalid itinerary id %q", args[0])
		}
		if exportFormat != "csv" && exportFormat != "json" {
			return fmt.Errorf("unknown export format %q (want csv or json)", exportFormat)
		}
		b, err := cur.api.ExportItinerary(cmd.Context(), id, exportFormat)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(b)
		return err
	},
}

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save every staged item into an itinerary",
	Long: `Save every staged item into the itinerary given by --itinerary, or the one
selected in the draft trip. Without either, a new itinerary is created: from
the draft's flight dates when both are set, otherwise an empty one.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		var flagID *int64
		if cmd.Flags().Changed("itinerary") {
			flagID = &saveItineraryID
		}
		draft, ok := cur.drafts.Get(ctx)
		selected, draftPtr := saveTarget(flagID, draft, ok)

		out, err := cur.reconciler.SaveAll(ctx, selected, draftPtr)
		if err != nil {
			return err
		}
		return cur.out.render(cmd.OutOrStdout(), out, func(tw *tabwriter.Writer) {
			fmt.Fprintf(tw, "ITINERARY\t%d\n", out.ItineraryID)
			fmt.Fprintf(tw, "CREATED\t%t\n", out.Created)
			fmt.Fprintf(tw, "VIEW\t%s\n", out.NavigateTo)
			for _, k := range []string{"items_saved", "flights_saved", "total_cost"} {
				if v, ok := out.Response[k]; ok {
					fmt.Fprintf(tw, "%s\t%v\n", k, v)
				}
			}
		})
	},
}

var lastSavedCmd = &cobra.Command{
	Use:   "last-saved",
	Short: "Show the result of the most recent save",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ls, ok := cur.drafts.LastSaved(cmd.Context())
		if !ok {
			fmt.Fprintln(cmd.ErrOrStderr(), "Nothing saved yet.")
			return nil
		}
		return cur.out.render(cmd.OutOrStdout(), ls, func(tw *tabwriter.Writer) {
			for k, v := range ls {
				fmt.Fprintf(tw, "%s\t%v\n", k, v)
			}
		})
	},
}

// saveTarget picks the itinerary a save goes into: the --itinerary flag, else
// the id already recorded in the draft (so retrying a failed save reuses the
// itinerary it created), else nil to create one. The draft is passed on only
// when one exists.
func saveTarget(flagID *int64, draft planner.CurrentItinerary, hasDraft bool) (*int64, *planner.CurrentItinerary) {
	if !hasDraft {
		return flagID, nil
	}
	if flagID != nil {
		return flagID, &draft
	}
	return draft.ItineraryID, &draft
}

func init() {
	rootCmd.AddCommand(itinerariesCmd, budgetCmd, exportCmd, saveCmd, lastSavedCmd)

	itinerariesCmd.Flags().IntVar(&listPage, "page", 1, "Page number")
	itinerariesCmd.Flags().IntVar(&listLimit, "limit", 20, "Page size")
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "Export format: csv or json")
	saveCmd.Flags().Int64Var(&saveItineraryID, "itinerary", 0, "Save into this itinerary")
}
