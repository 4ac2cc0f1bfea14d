package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/Jinash-Rouniyar/plan-it-ahead/internal/planner"
)

var draftFlags struct {
	title       string
	origin      string
	destination string
	departure   string
	ret         string
	itinerary   int64
}

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Manage the draft trip context",
}

var draftSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update fields of the draft trip",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, _ := cur.drafts.Get(cmd.Context())
		f := cmd.Flags()
		if f.Changed("title") {
			d.Title = draftFlags.title
		}
		if f.Changed("origin") {
			d.Origin = draftFlags.origin
		}
		if f.Changed("destination") {
			d.Destination = draftFlags.destination
		}
		if f.Changed("departure") {
			if err := checkDate("departure", draftFlags.departure); err != nil {
				return err
			}
			d.DepartureDate = draftFlags.departure
		}
		if f.Changed("return") {
			if err := checkDate("return", draftFlags.ret); err != nil {
				return err
			}
			d.ReturnDate = draftFlags.ret
		}
		if f.Changed("itinerary") {
			id := draftFlags.itinerary
			d.ItineraryID = &id
		}
		if err := cur.drafts.Set(cmd.Context(), d); err != nil {
			return err
		}
		return renderDraft(cmd, d)
	},
}

var draftShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the draft trip",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, ok := cur.drafts.Get(cmd.Context())
		if !ok {
			fmt.Fprintln(cmd.ErrOrStderr(), "No draft trip.")
			return nil
		}
		return renderDraft(cmd, d)
	},
}

var draftClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget the draft trip",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cur.drafts.Clear(cmd.Context())
	},
}

func renderDraft(cmd *cobra.Command, d planner.CurrentItinerary) error {
	return cur.out.render(cmd.OutOrStdout(), d, func(tw *tabwriter.Writer) {
		id := "-"
		if d.ItineraryID != nil {
			id = fmt.Sprint(*d.ItineraryID)
		}
		fmt.Fprintf(tw, "ITINERARY\t%s\n", id)
		fmt.Fprintf(tw, "TITLE\t%s\n", d.Title)
		fmt.Fprintf(tw, "ORIGIN\t%s\n", d.Origin)
		fmt.Fprintf(tw, "DESTINATION\t%s\n", d.Destination)
		fmt.Fprintf(tw, "DEPARTURE\t%s\n", d.DepartureDate)
		fmt.Fprintf(tw, "RETURN\t%s\n", d.ReturnDate)
	})
}

// checkDate accepts "" (to unset) or a YYYY-MM-DD date.
func checkDate(name, v string) error {
	if v == "" {
		return nil
	}
	if _, err := time.Parse(time.DateOnly, v); err != nil {
		return fmt.Errorf("--%s must be YYYY-MM-DD, got %q", name, v)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(draftCmd)
	draftCmd.AddCommand(draftSetCmd, draftShowCmd, draftClearCmd)

	f := draftSetCmd.Flags()
	f.StringVar(&draftFlags.title, "title", "", "Trip title")
	f.StringVar(&draftFlags.origin, "origin", "", "Origin")
	f.StringVar(&draftFlags.destination, "destination", "", "Destination")
	f.StringVar(&draftFlags.departure, "departure", "", "Departure date (YYYY-MM-DD)")
	f.StringVar(&draftFlags.ret, "return", "", "Return date (YYYY-MM-DD)")
	f.Int64Var(&draftFlags.itinerary, "itinerary", 0, "Select an existing itinerary")
}
