package model

// AppState is the whole per-account document. Collections are never nil once
// built through EmptyState or the adapter's load path.
type AppState struct {
	Rooms           []Room               `json:"rooms"`
	Bookings        []Booking            `json:"bookings"`
	CostCatalog     []CostCatalogItem    `json:"costCatalog"`
	HotelCosts      []HotelCost          `json:"hotelCosts"`
	Partners        []Partner            `json:"partners"`
	ManualReferrals []ManualReferral     `json:"manualReferrals"`
	MonthLocks      map[string]MonthLock `json:"monthLocks"`
	Forecasts       []Forecast           `json:"forecasts"`
	Expenses        []Expense            `json:"expenses"`
}

func EmptyState() AppState {
	return AppState{
		Rooms:           []Room{},
		Bookings:        []Booking{},
		CostCatalog:     []CostCatalogItem{},
		HotelCosts:      []HotelCost{},
		Partners:        []Partner{},
		ManualReferrals: []ManualReferral{},
		MonthLocks:      map[string]MonthLock{},
		Forecasts:       []Forecast{},
		Expenses:        []Expense{},
	}
}

// Defaulted fills any nil collection so a partially decoded state (e.g. from
// cache) is still well formed.
func (s AppState) Defaulted() AppState {
	if s.Rooms == nil {
		s.Rooms = []Room{}
	}

	if s.Bookings == nil {
		s.Bookings = []Booking{}
	}

	if s.CostCatalog == nil {
		s.CostCatalog = []CostCatalogItem{}
	}

	if s.HotelCosts == nil {
		s.HotelCosts = []HotelCost{}
	}

	if s.Partners == nil {
		s.Partners = []Partner{}
	}

	if s.ManualReferrals == nil {
		s.ManualReferrals = []ManualReferral{}
	}

	if s.MonthLocks == nil {
		s.MonthLocks = map[string]MonthLock{}
	}

	if s.Forecasts == nil {
		s.Forecasts = []Forecast{}
	}

	if s.Expenses == nil {
		s.Expenses = []Expense{}
	}

	return s
}

func (s AppState) RoomByID(id string) (Room, bool) {
	for _, room := range s.Rooms {
		if room.ID == id {
			return room, true
		}
	}

	return Room{}, false
}

func (s AppState) BookingByID(id string) (Booking, bool) {
	for _, booking := range s.Bookings {
		if booking.ID == id {
			return booking, true
		}
	}

	return Booking{}, false
}

func (s AppState) PartnerByID(id string) (Partner, bool) {
	for _, partner := range s.Partners {
		if partner.ID == id {
			return partner, true
		}
	}

	return Partner{}, false
}

func (s AppState) CatalogItemByID(id string) (CostCatalogItem, bool) {
	for _, item := range s.CostCatalog {
		if item.ID == id {
			return item, true
		}
	}

	return CostCatalogItem{}, false
}

func (s AppState) IsMonthLocked(monthKey string) bool {
	lock, ok := s.MonthLocks[monthKey]

	return ok && lock.IsLocked
}

type UIState struct {
	SelectedMonthKey string  `json:"selectedMonthKey"`
	SelectedRoomID   *string `json:"selectedRoomId,omitempty"`
	IsHydrated       bool    `json:"isHydrated"`
}

// MonthSummary is the dashboard view of a single month.
type MonthSummary struct {
	MonthKey            string  `json:"monthKey"`
	BookingCount        int     `json:"bookingCount"`
	TotalNights         int     `json:"totalNights"`
	TotalIncome         float64 `json:"totalIncome"`
	TotalRoomCosts      float64 `json:"totalRoomCosts"`
	TotalHotelCosts     float64 `json:"totalHotelCosts"`
	TotalExtraExpenses  float64 `json:"totalExtraExpenses"`
	StandaloneExpenses  float64 `json:"standaloneExpenses"`
	RecurringHotelCosts float64 `json:"recurringHotelCosts"`
	PartnerRevenue      float64 `json:"partnerRevenue"`
	TotalExpenses       float64 `json:"totalExpenses"`
	NetProfit           float64 `json:"netProfit"`
	ProfitMargin        float64 `json:"profitMargin"`
	IsLocked            bool    `json:"isLocked"`

	PreviousMonthKey  string  `json:"previousMonthKey"`
	PreviousIncome    float64 `json:"previousIncome"`
	PreviousNetProfit float64 `json:"previousNetProfit"`
	IncomeChange      float64 `json:"incomeChange"`
	NetProfitChange   float64 `json:"netProfitChange"`
}
