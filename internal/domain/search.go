package domain

// Attraction is a point of interest returned by the attractions search.
type Attraction struct {
	XID         string
	Name        string
	Category    string
	Description string
	Lat         *float64
	Lon         *float64
	Distance    float64
	Rate        float64
	ImageURL    string
}

// AttractionDetail is the expanded view of a single attraction.
type AttractionDetail struct {
	Attraction
	Address    string
	Categories []string
	URL        string
	Wikipedia  string
}

// Hotel is a single accommodation returned by the hotel search.
// PricePerNight is the midpoint of the provider's price range.
type Hotel struct {
	HotelID           string
	Name              string
	Location          string
	Rating            float64
	ReviewCount       int
	PricePerNight     float64
	PriceMin          float64
	PriceMax          float64
	ImageURL          string
	URL               string
	AccommodationType string
	Lat               *float64
	Lon               *float64
}

// Activity is a bookable tour or activity near a coordinate.
type Activity struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Currency    string
	ImageURL    string
	BookingLink string
	Lat         *float64
	Lon         *float64
}

// AttractionQuery selects attractions either by location name or by
// coordinate. Radius is in metres.
type AttractionQuery struct {
	Location string
	Lat      *float64
	Lon      *float64
	Radius   int
	Limit    int
	Category string
}

// HotelQuery selects hotels for a stay. CheckIn and CheckOut are
// "2006-01-02" formatted dates.
type HotelQuery struct {
	Location string
	CheckIn  string
	CheckOut string
	Guests   int
	MinPrice *float64
	MaxPrice *float64
	Limit    int
}

// ActivityQuery selects activities around a coordinate. Radius is in km.
type ActivityQuery struct {
	Lat    float64
	Lon    float64
	Radius int
}

// Destination is a resolved place name. Type is "city" for populated places
// and "location" for anything else.
type Destination struct {
	Name    string
	Country string
	Lat     *float64
	Lon     *float64
	Type    string
}

// HotelRateQuery selects live rates for one hotel and stay.
type HotelRateQuery struct {
	HotelKey string
	CheckIn  string
	CheckOut string
	Guests   int
	Rooms    int
	Currency string
}

// HotelRate is one booking site's price for the stay.
type HotelRate struct {
	Code string
	Name string
	Rate float64
}

// HotelPricing holds every rate offered for a stay. Best is the lowest.
type HotelPricing struct {
	HotelRateQuery
	Rates     []HotelRate
	Best      HotelRate
	Timestamp *int64
}
