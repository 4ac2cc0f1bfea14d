package main

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Jinash-Rouniyar/plan-it-ahead/internal/planner"
	"github.com/Jinash-Rouniyar/plan-it-ahead/internal/record"
)

var (
	addIndexes []int
	addAll     bool

	checkIn  string
	checkOut string

	activityRadius int

	pricingGuests   int
	pricingRooms    int
	pricingCurrency string
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search destinations, attractions, hotels and activities",
}

var searchAttractionsCmd = &cobra.Command{
	Use:   "attractions <location>",
	Short: "Search attractions near a location",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		res, err := cur.searcher.Attractions(ctx, strings.Join(args, " "))
		if err != nil {
			return err
		}
		if err := cur.out.render(cmd.OutOrStdout(), res, func(tw *tabwriter.Writer) {
			fmt.Fprintln(tw, "#\tID\tNAME\tCATEGORY\tRATE")
			for i, a := range res.Attractions {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%g\n", i, a.ID, a.Name, a.Category, a.Rate)
			}
		}); err != nil {
			return err
		}
		if res.Notice != planner.NoticeNone {
			fmt.Fprintln(cmd.ErrOrStderr(), res.Notice)
		}

		raws := make([]record.Record, len(res.Attractions))
		for i, a := range res.Attractions {
			raws[i] = a.Raw
		}
		return stage(cmd, planner.ItemAttraction, raws)
	},
}

var searchHotelsCmd = &cobra.Command{
	Use:   "hotels <location>",
	Short: "Search hotels for a stay",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := cur.searcher.Hotels(cmd.Context(), planner.HotelQuery{
			Location: strings.Join(args, " "),
			CheckIn:  checkIn,
			CheckOut: checkOut,
		})
		if err != nil {
			return err
		}
		if err := cur.out.render(cmd.OutOrStdout(), res, func(tw *tabwriter.Writer) {
			fmt.Fprintln(tw, "#\tID\tNAME\tPER NIGHT\tRATING")
			for i, h := range res.Hotels {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%g\n", i, h.ID, h.Name, money(h.PricePerNight), h.Rating)
			}
		}); err != nil {
			return err
		}
		if res.Notice != planner.NoticeNone {
			fmt.Fprintln(cmd.ErrOrStderr(), res.Notice)
		}

		raws := make([]record.Record, len(res.Hotels))
		for i, h := range res.Hotels {
			raws[i] = h.Raw
		}
		return stage(cmd, planner.ItemHotel, raws)
	},
}

var searchDetailCmd = &cobra.Command{
	Use:   "detail <attraction-id>",
	Short: "Show one attraction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := cur.searcher.AttractionDetail(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if err := cur.out.render(cmd.OutOrStdout(), a, func(tw *tabwriter.Writer) {
			fmt.Fprintf(tw, "ID\t%s\n", a.ID)
			fmt.Fprintf(tw, "NAME\t%s\n", a.Name)
			fmt.Fprintf(tw, "CATEGORY\t%s\n", a.Category)
			fmt.Fprintf(tw, "DESCRIPTION\t%s\n", a.Description)
			fmt.Fprintf(tw, "IMAGE\t%s\n", a.ImageURL)
		}); err != nil {
			return err
		}
		return stage(cmd, planner.ItemAttraction, []record.Record{a.Raw})
	},
}

var searchActivitiesCmd = &cobra.Command{
	Use:   "activities <lat> <lon>",
	Short: "List activities near a point",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		lat, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid latitude %q", args[0])
		}
		lon, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid longitude %q", args[1])
		}
		recs, err := cur.searcher.NearbyActivities(cmd.Context(), lat, lon, activityRadius)
		if err != nil {
			return err
		}
		return cur.out.render(cmd.OutOrStdout(), recs, func(tw *tabwriter.Writer) {
			fmt.Fprintln(tw, "ID\tNAME\tPRICE\tCURRENCY")
			for _, r := range recs {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
					record.String(r, "id"), record.String(r, record.NameKeys...),
					money(record.NumberOr(r, 0, "price")), record.String(r, "currency"))
			}
		})
	},
}

var searchDestinationsCmd = &cobra.Command{
	Use:   "destinations <name>",
	Short: "Resolve a place name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		recs, err := cur.searcher.Destinations(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		if len(recs) == 0 {
			fmt.Fprintln(cmd.ErrOrStderr(), planner.NoticeNoResults)
		}
		return cur.out.render(cmd.OutOrStdout(), recs, func(tw *tabwriter.Writer) {
			fmt.Fprintln(tw, "NAME\tCOUNTRY\tTYPE\tLAT\tLON")
			for _, r := range recs {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%g\t%g\n",
					record.String(r, "name"), record.String(r, "country"), record.String(r, "type"),
					record.NumberOr(r, 0, record.LatKeys...), record.NumberOr(r, 0, record.LonKeys...))
			}
		})
	},
}

var searchHotelCmd = &cobra.Command{
	Use:   "hotel <hotel-id>",
	Short: "Show one hotel",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := cur.searcher.HotelDetail(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if err := cur.out.render(cmd.OutOrStdout(), h, func(tw *tabwriter.Writer) {
			fmt.Fprintf(tw, "ID\t%s\n", h.ID)
			fmt.Fprintf(tw, "NAME\t%s\n", h.Name)
			fmt.Fprintf(tw, "PER NIGHT\t%s\n", money(h.PricePerNight))
			fmt.Fprintf(tw, "RATING\t%g\n", h.Rating)
			fmt.Fprintf(tw, "IMAGE\t%s\n", h.ImageURL)
		}); err != nil {
			return err
		}
		return stage(cmd, planner.ItemHotel, []record.Record{h.Raw})
	},
}

var searchPricingCmd = &cobra.Command{
	Use:   "pricing <hotel-id>",
	Short: "Show live rates for a stay at one hotel",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := cur.searcher.HotelPricing(cmd.Context(), planner.PricingQuery{
			HotelKey: args[0],
			CheckIn:  checkIn,
			CheckOut: checkOut,
			Guests:   pricingGuests,
			Rooms:    pricingRooms,
			Currency: pricingCurrency,
		})
		if err != nil {
			return err
		}
		return cur.out.render(cmd.OutOrStdout(), rec, func(tw *tabwriter.Writer) {
			currency := record.String(rec, "currency")
			fmt.Fprintln(tw, "SITE\tRATE")
			rates, _ := rec["rates"].([]any)
			for _, r := range rates {
				if m, ok := r.(map[string]any); ok {
					fmt.Fprintf(tw, "%s\t%g %s\n", record.String(m, "name", "code"), record.NumberOr(m, 0, "rate"), currency)
				}
			}
			if best, ok := rec["best_rate"].(map[string]any); ok {
				fmt.Fprintf(tw, "BEST\t%s %g %s\n", record.String(best, "name", "code"), record.NumberOr(best, 0, "rate"), currency)
			}
		})
	},
}

// stage adds the results picked with --add/--add-all to the pending stage.
func stage(cmd *cobra.Command, typ planner.ItemType, raws []record.Record) error {
	if !addAll && !cmd.Flags().Changed("add") {
		return nil
	}
	picked, err := pickIndexes(addIndexes, addAll, len(raws))
	if err != nil {
		return err
	}
	for _, i := range picked {
		if err := cur.pending.Add(cmd.Context(), planner.PendingItem{Type: typ, Data: raws[i]}); err != nil {
			return err
		}
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Added %d %s item(s); %d pending.\n", len(picked), typ, cur.pending.Len(cmd.Context()))
	return nil
}

// pickIndexes returns the result positions to stage: every one of n when all
// is set, otherwise indexes, all of which must be in range.
func pickIndexes(indexes []int, all bool, n int) ([]int, error) {
	if all {
		picked := make([]int, n)
		for i := range picked {
			picked[i] = i
		}
		return picked, nil
	}
	for _, i := range indexes {
		if i < 0 || i >= n {
			return nil, fmt.Errorf("no result #%d (have %d)", i, n)
		}
	}
	return indexes, nil
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.AddCommand(searchDestinationsCmd, searchAttractionsCmd, searchHotelsCmd, searchDetailCmd,
		searchHotelCmd, searchPricingCmd, searchActivitiesCmd)

	for _, c := range []*cobra.Command{searchAttractionsCmd, searchHotelsCmd} {
		c.Flags().IntSliceVar(&addIndexes, "add", nil, "Stage the results at these positions")
		c.Flags().BoolVar(&addAll, "add-all", false, "Stage every result")
	}
	searchDetailCmd.Flags().BoolVar(&addAll, "add", false, "Stage this attraction")
	searchHotelCmd.Flags().BoolVar(&addAll, "add", false, "Stage this hotel")

	searchHotelsCmd.Flags().StringVar(&checkIn, "check-in", "", "Check-in date (YYYY-MM-DD)")
	searchHotelsCmd.Flags().StringVar(&checkOut, "check-out", "", "Check-out date (YYYY-MM-DD)")
	_ = searchHotelsCmd.MarkFlagRequired("check-in")
	_ = searchHotelsCmd.MarkFlagRequired("check-out")

	searchPricingCmd.Flags().StringVar(&checkIn, "check-in", "", "Check-in date (YYYY-MM-DD)")
	searchPricingCmd.Flags().StringVar(&checkOut, "check-out", "", "Check-out date (YYYY-MM-DD)")
	searchPricingCmd.Flags().IntVar(&pricingGuests, "guests", 0, "Adults (server default when 0)")
	searchPricingCmd.Flags().IntVar(&pricingRooms, "rooms", 0, "Rooms (server default when 0)")
	searchPricingCmd.Flags().StringVar(&pricingCurrency, "currency", "", "Currency code (server default when empty)")
	_ = searchPricingCmd.MarkFlagRequired("check-in")
	_ = searchPricingCmd.MarkFlagRequired("check-out")

	searchActivitiesCmd.Flags().IntVar(&activityRadius, "radius", 0, "Radius in km (server default when 0)")
}
