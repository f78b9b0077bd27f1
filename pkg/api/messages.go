package api

// User is the public view of an account.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt int64  `json:"createdAt"`
}

type UserProfile struct {
	Name string `json:"name"`
}

type Category struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

// FlightEntry is one logged flight. DateEpoch is encoded as a string since
// nanosecond values exceed the integer range of JSON numbers in browsers.
type FlightEntry struct {
	ID              string `json:"id,omitempty"`
	Date            string `json:"date"`
	DateEpoch       int64  `json:"dateEpoch,string"`
	Student         string `json:"student"`
	Instructor      string `json:"instructor"`
	Aircraft        string `json:"aircraft"`
	Exercise        string `json:"exercise"`
	FlightType      string `json:"flightType"`
	TakeoffTime     string `json:"takeoffTime"`
	LandingTime     string `json:"landingTime"`
	TotalFlightTime string `json:"totalFlightTime"`
	LandingType     string `json:"landingType"`
	LandingCount    int64  `json:"landingCount"`
	CreatedBy       string `json:"createdBy,omitempty"`
	CreatedAt       int64  `json:"createdAt,omitempty"`
	UpdatedAt       int64  `json:"updatedAt,omitempty"`
}

type AircraftSummary struct {
	Aircraft   string  `json:"aircraft"`
	TotalHours float64 `json:"totalHours"`
}

type StudentTotalHours struct {
	Student    string  `json:"student"`
	TotalHours float64 `json:"totalHours"`
}

// AuthService

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
	// ExpiresAt is the token expiry as a Unix timestamp.
	ExpiresAt int64 `json:"expiresAt"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
	// ExpiresAt is the token expiry as a Unix timestamp.
	ExpiresAt int64 `json:"expiresAt"`
}

type LogoutRequest struct{}

type LogoutResponse struct{}

type GetCurrentUserRequest struct{}

type GetCurrentUserResponse struct {
	User *User `json:"user"`
}

// ProfileService

type SaveCallerUserProfileRequest struct {
	Profile *UserProfile `json:"profile"`
}

type SaveCallerUserProfileResponse struct{}

type GetCallerUserProfileRequest struct{}

// GetCallerUserProfileResponse carries a nil Profile when the caller has
// not set a name yet.
type GetCallerUserProfileResponse struct {
	Profile *UserProfile `json:"profile"`
}

type GetUserProfileRequest struct {
	UserID string `json:"userId"`
}

type GetUserProfileResponse struct {
	Profile *UserProfile `json:"profile"`
}

type GetCallerUserRoleRequest struct{}

type GetCallerUserRoleResponse struct {
	Role string `json:"role"`
}

type IsCallerAdminRequest struct{}

type IsCallerAdminResponse struct {
	IsAdmin bool `json:"isAdmin"`
}

type AssignCallerUserRoleRequest struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
}

type AssignCallerUserRoleResponse struct{}

// CategoryService

type ListCategoriesRequest struct {
	Type string `json:"type"`
}

type ListCategoriesResponse struct {
	Categories []*Category `json:"categories"`
}

type AddCategoryRequest struct {
	Category *Category `json:"category"`
}

type AddCategoryResponse struct{}

type DeleteCategoryRequest struct {
	Category *Category `json:"category"`
}

type DeleteCategoryResponse struct{}

type RenameCategoryRequest struct {
	Type    string `json:"type"`
	OldName string `json:"oldName"`
	NewName string `json:"newName"`
}

type RenameCategoryResponse struct{}

// FlightService

type AddFlightEntryRequest struct {
	Entry *FlightEntry `json:"entry"`
}

type AddFlightEntryResponse struct {
	Entry *FlightEntry `json:"entry"`
}

// GetFlightEntriesRequest filters are optional; empty means no filter.
type GetFlightEntriesRequest struct {
	FilterMonth   string `json:"filterMonth,omitempty"`
	FilterStudent string `json:"filterStudent,omitempty"`
}

type GetFlightEntriesResponse struct {
	Entries []*FlightEntry `json:"entries"`
}

type GetFlightEntryRequest struct {
	ID string `json:"id"`
}

type GetFlightEntryResponse struct {
	Entry *FlightEntry `json:"entry"`
}

type UpdateFlightEntryRequest struct {
	ID    string       `json:"id"`
	Entry *FlightEntry `json:"entry"`
}

type UpdateFlightEntryResponse struct {
	Entry *FlightEntry `json:"entry"`
}

type DeleteFlightEntryRequest struct {
	ID string `json:"id"`
}

type DeleteFlightEntryResponse struct{}

type GetTotalHoursByAircraftRequest struct{}

type GetTotalHoursByAircraftResponse struct {
	Summaries []*AircraftSummary `json:"summaries"`
}

type GetTotalHoursByStudentRequest struct{}

type GetTotalHoursByStudentResponse struct {
	Totals []*StudentTotalHours `json:"totals"`
}

type GetDailyHoursRequest struct {
	Day string `json:"day"`
}

type GetDailyHoursResponse struct {
	Hours float64 `json:"hours"`
}

type GetMonthlyHoursRequest struct {
	Month string `json:"month"`
}

type GetMonthlyHoursResponse struct {
	Hours float64 `json:"hours"`
}

// ExportService

// ExportFlightLogRequest exports every entry when Month is empty.
type ExportFlightLogRequest struct {
	Month string `json:"month,omitempty"`
}

type ExportFlightLogResponse struct {
	Filename string `json:"filename"`
	Content  []byte `json:"content"`
	// URL is a presigned download link, set only when archiving is enabled.
	URL string `json:"url,omitempty"`
}
