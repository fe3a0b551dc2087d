package model

type SlabInput struct {
	MinTrips     int     `json:"minTrips" validate:"gte=0"`
	MaxTrips     int     `json:"maxTrips" validate:"gtefield=MinTrips"`
	PayoutAmount float64 `json:"payoutAmount" validate:"gte=0"`
}

type ReplaceSlabsRequest struct {
	OwnerID string      `json:"-" validate:"required"`
	Slabs   []SlabInput `json:"slabs" validate:"required,min=1,dive"`
}

type PayoutSummaryRequest struct {
	OwnerID  string `json:"-" validate:"required"`
	DriverID string `json:"-" validate:"required"`
	Month    string `json:"-" validate:"required,len=7"`
}

type SlabResponse struct {
	MinTrips     int     `json:"minTrips"`
	MaxTrips     int     `json:"maxTrips"`
	PayoutAmount float64 `json:"payoutAmount"`
}

type DayCountResponse struct {
	Delivery int `json:"delivery"`
	Supply   int `json:"supply"`
	Other    int `json:"other"`
}

type PayoutSummaryResponse struct {
	DriverID        string                      `json:"driverId"`
	Month           string                      `json:"month"`
	TotalTrips      int                         `json:"totalTrips"`
	EstimatedPayout float64                     `json:"estimatedPayout"`
	CurrentSlab     *SlabResponse               `json:"currentSlab"`
	NextSlab        *SlabResponse               `json:"nextSlab"`
	TripsNeeded     *int                        `json:"tripsNeeded"`
	ProgressPercent float64                     `json:"progressPercent"`
	PerDay          map[string]DayCountResponse `json:"perDay"`
}

type GenerateInsightsRequest struct {
	OwnerID  string `json:"-" validate:"required"`
	DriverID string `json:"driverId" validate:"required"`
	Month    string `json:"month" validate:"required,len=7"`
}

type GetInsightsRequest struct {
	OwnerID  string `json:"-" validate:"required"`
	DriverID string `json:"-" validate:"required"`
	Month    string `json:"-" validate:"required,len=7"`
}

type InsightsResponse struct {
	DriverID    string   `json:"driverId"`
	Month       string   `json:"month"`
	Suggestions []string `json:"suggestions"`
}

// MonthSummary is one historical month handed to the insight collaborator.
type MonthSummary struct {
	Month      string  `json:"month"`
	TotalTrips int     `json:"totalTrips"`
	Payout     float64 `json:"payout"`
}

// InsightPayload is the exact shape the generative collaborator receives.
type InsightPayload struct {
	DriverID                string         `json:"driverId"`
	CurrentMonthTotalTrips  int            `json:"currentMonthTotalTrips"`
	CurrentSlabDescription  string         `json:"currentSlabDescription"`
	EstimatedPayout         float64        `json:"estimatedPayout"`
	NextSlabDescription     string         `json:"nextSlabDescription"`
	TripsNeededForNextSlab  *int           `json:"tripsNeededForNextSlab"`
	CurrentMonthTripEntries []TripResponse `json:"currentMonthTripEntries"`
	PastMonthSummaries      []MonthSummary `json:"pastMonthSummaries"`
}
