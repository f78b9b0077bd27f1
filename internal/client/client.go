// Package client is the typed access layer to a flightlog server. It caches
// query results, invalidates them on every successful write and validates
// flight entries before they are sent.
package client

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/flightlog/internal/models"
	"github.com/mmynk/flightlog/pkg/api"
)

// Client talks to the flightlog Connect services. It is safe for
// concurrent use.
type Client struct {
	auth     *api.AuthServiceClient
	profile  *api.ProfileServiceClient
	category *api.CategoryServiceClient
	flight   *api.FlightServiceClient
	export   *api.ExportServiceClient

	mu    sync.RWMutex
	token string

	cache      *queryCache
	retryDelay time.Duration
	logger     *slog.Logger
}

type options struct {
	httpClient connect.HTTPClient
	token      string
	cacheSize  int
	cacheTTL   time.Duration
	retryDelay time.Duration
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*options)

func WithHTTPClient(c connect.HTTPClient) Option {
	return func(o *options) { o.httpClient = c }
}

// WithToken starts the client with a previously issued session token.
func WithToken(token string) Option {
	return func(o *options) { o.token = token }
}

// WithCache sets the query cache capacity and entry lifetime.
func WithCache(size int, ttl time.Duration) Option {
	return func(o *options) { o.cacheSize, o.cacheTTL = size, ttl }
}

// WithRetryDelay sets the pause before a query is retried.
func WithRetryDelay(d time.Duration) Option {
	return func(o *options) { o.retryDelay = d }
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// New creates a client for the server at baseURL.
func New(baseURL string, opts ...Option) *Client {
	o := options{
		httpClient: http.DefaultClient,
		cacheSize:  256,
		cacheTTL:   5 * time.Minute,
		retryDelay: 200 * time.Millisecond,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Client{
		token:      o.token,
		cache:      newQueryCache(o.cacheSize, o.cacheTTL),
		retryDelay: o.retryDelay,
		logger:     o.logger,
	}

	copts := connect.WithInterceptors(c.authInterceptor())
	c.auth = api.NewAuthServiceClient(o.httpClient, baseURL, copts)
	c.profile = api.NewProfileServiceClient(o.httpClient, baseURL, copts)
	c.category = api.NewCategoryServiceClient(o.httpClient, baseURL, copts)
	c.flight = api.NewFlightServiceClient(o.httpClient, baseURL, copts)
	c.export = api.NewExportServiceClient(o.httpClient, baseURL, copts)
	return c
}

// authInterceptor attaches the current session token to every call.
func (c *Client) authInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if token := c.Token(); token != "" {
				req.Header().Set("Authorization", "Bearer "+token)
			}
			return next(ctx, req)
		}
	}
}

// Token returns the current session token, or "" when logged out.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// setToken replaces the session and drops everything cached for the old one.
func (c *Client) setToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
	c.cache.invalidate()
}

// Auth

func (c *Client) Register(ctx context.Context, email, password string) (*api.User, error) {
	resp, err := c.auth.Register(ctx, connect.NewRequest(&api.RegisterRequest{Email: email, Password: password}))
	if err != nil {
		return nil, err
	}
	c.setToken(resp.Msg.Token)
	return resp.Msg.User, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*api.User, error) {
	resp, err := c.auth.Login(ctx, connect.NewRequest(&api.LoginRequest{Email: email, Password: password}))
	if err != nil {
		return nil, err
	}
	c.setToken(resp.Msg.Token)
	return resp.Msg.User, nil
}

// Logout discards the session token and the whole query cache. The local
// session is cleared even when the server cannot be reached.
func (c *Client) Logout(ctx context.Context) error {
	if c.Token() != "" {
		if _, err := c.auth.Logout(ctx, connect.NewRequest(&api.LogoutRequest{})); err != nil {
			c.logger.Warn("Server logout failed", "error", err)
		}
	}
	c.setToken("")
	return nil
}

func (c *Client) CurrentUser(ctx context.Context) (*api.User, error) {
	resp, err := c.auth.GetCurrentUser(ctx, connect.NewRequest(&api.GetCurrentUserRequest{}))
	if err != nil {
		return nil, err
	}
	return resp.Msg.User, nil
}

// Profile

// Profile returns the caller's profile, or nil if it has not been set up.
func (c *Client) Profile(ctx context.Context) (*models.UserProfile, error) {
	p, err := query(ctx, c, keyProfile, func(ctx context.Context) (*api.UserProfile, error) {
		resp, err := c.profile.GetCallerUserProfile(ctx, connect.NewRequest(&api.GetCallerUserProfileRequest{}))
		if err != nil {
			return nil, err
		}
		return resp.Msg.Profile, nil
	})
	if err != nil || p == nil {
		return nil, err
	}
	return &models.UserProfile{Name: p.Name}, nil
}

// UserProfile returns another user's profile, or nil if unset.
func (c *Client) UserProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	p, err := query(ctx, c, fmt.Sprintf(keyUserProfileFmt, userID), func(ctx context.Context) (*api.UserProfile, error) {
		resp, err := c.profile.GetUserProfile(ctx, connect.NewRequest(&api.GetUserProfileRequest{UserID: userID}))
		if err != nil {
			return nil, err
		}
		return resp.Msg.Profile, nil
	})
	if err != nil || p == nil {
		return nil, err
	}
	return &models.UserProfile{Name: p.Name}, nil
}

func (c *Client) SaveProfile(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return &models.ValidationError{Field: "name", Reason: "is required"}
	}
	_, err := c.profile.SaveCallerUserProfile(ctx, connect.NewRequest(&api.SaveCallerUserProfileRequest{
		Profile: &api.UserProfile{Name: name},
	}))
	return c.invalidateOn(err)
}

func (c *Client) Role(ctx context.Context) (models.Role, error) {
	return query(ctx, c, keyRole, func(ctx context.Context) (models.Role, error) {
		resp, err := c.profile.GetCallerUserRole(ctx, connect.NewRequest(&api.GetCallerUserRoleRequest{}))
		if err != nil {
			return "", err
		}
		return models.Role(resp.Msg.Role), nil
	})
}

func (c *Client) IsAdmin(ctx context.Context) (bool, error) {
	role, err := c.Role(ctx)
	return role == models.RoleAdmin, err
}

// AssignRole changes another user's role. The caller must be an admin.
func (c *Client) AssignRole(ctx context.Context, userID string, role models.Role) error {
	if !role.Valid() {
		return &models.ValidationError{Field: "role", Reason: "must be admin, user or guest"}
	}
	_, err := c.profile.AssignCallerUserRole(ctx, connect.NewRequest(&api.AssignCallerUserRoleRequest{
		UserID: userID,
		Role:   string(role),
	}))
	return c.invalidateOn(err)
}

// Categories

// Categories returns the names in one reference list, sorted.
func (c *Client) Categories(ctx context.Context, categoryType models.CategoryType) ([]string, error) {
	list, err := query(ctx, c, fmt.Sprintf(keyCategoriesFmt, categoryType), func(ctx context.Context) ([]*api.Category, error) {
		resp, err := c.category.ListCategories(ctx, connect.NewRequest(&api.ListCategoriesRequest{Type: string(categoryType)}))
		if err != nil {
			return nil, err
		}
		return resp.Msg.Categories, nil
	})
	if err != nil {
		return nil, err
	}
	names := make([]string, len(list))
	for i, cat := range list {
		names[i] = cat.Name
	}
	return names, nil
}

func (c *Client) AddCategory(ctx context.Context, categoryType models.CategoryType, name string) error {
	name, err := models.CategoryName(name)
	if err != nil {
		return err
	}
	_, err = c.category.AddCategory(ctx, connect.NewRequest(&api.AddCategoryRequest{
		Category: &api.Category{Type: string(categoryType), Name: name},
	}))
	return c.invalidateOn(err)
}

func (c *Client) DeleteCategory(ctx context.Context, categoryType models.CategoryType, name string) error {
	_, err := c.category.DeleteCategory(ctx, connect.NewRequest(&api.DeleteCategoryRequest{
		Category: &api.Category{Type: string(categoryType), Name: name},
	}))
	return c.invalidateOn(err)
}

// RenameCategory replaces oldName with newName in one server-side transaction.
func (c *Client) RenameCategory(ctx context.Context, categoryType models.CategoryType, oldName, newName string) error {
	newName, err := models.CategoryName(newName)
	if err != nil {
		return err
	}
	_, err = c.category.RenameCategory(ctx, connect.NewRequest(&api.RenameCategoryRequest{
		Type:    string(categoryType),
		OldName: oldName,
		NewName: newName,
	}))
	return c.invalidateOn(err)
}

// Flight entries

// Entries lists flight entries, newest first. Only Month and Student of
// filter are applied.
func (c *Client) Entries(ctx context.Context, filter models.FlightFilter) ([]*models.FlightEntry, error) {
	key := fmt.Sprintf(keyEntriesFmt, filter.Month, filter.Student)
	list, err := query(ctx, c, key, func(ctx context.Context) ([]*api.FlightEntry, error) {
		resp, err := c.flight.GetFlightEntries(ctx, connect.NewRequest(&api.GetFlightEntriesRequest{
			FilterMonth:   filter.Month,
			FilterStudent: filter.Student,
		}))
		if err != nil {
			return nil, err
		}
		return resp.Msg.Entries, nil
	})
	if err != nil {
		return nil, err
	}
	return api.FlightEntryModels(list), nil
}

func (c *Client) Entry(ctx context.Context, id string) (*models.FlightEntry, error) {
	e, err := query(ctx, c, fmt.Sprintf(keyEntryFmt, id), func(ctx context.Context) (*api.FlightEntry, error) {
		resp, err := c.flight.GetFlightEntry(ctx, connect.NewRequest(&api.GetFlightEntryRequest{ID: id}))
		if err != nil {
			return nil, err
		}
		return resp.Msg.Entry, nil
	})
	if err != nil {
		return nil, err
	}
	return e.Model(), nil
}

// prepare recomputes the derived fields of entry in place and validates it.
func prepare(entry *models.FlightEntry) error {
	if entry == nil {
		return &models.ValidationError{Field: "entry", Reason: "is required"}
	}
	entry.Normalize()
	return entry.Validate()
}

// AddEntry validates entry and logs it. The stored entry, with its ID, is
// returned.
func (c *Client) AddEntry(ctx context.Context, entry *models.FlightEntry) (*models.FlightEntry, error) {
	if err := prepare(entry); err != nil {
		return nil, err
	}
	resp, err := c.flight.AddFlightEntry(ctx, connect.NewRequest(&api.AddFlightEntryRequest{
		Entry: api.FlightEntryFromModel(entry),
	}))
	if err := c.invalidateOn(err); err != nil {
		return nil, err
	}
	return resp.Msg.Entry.Model(), nil
}

// UpdateEntry replaces the entry with the given ID.
func (c *Client) UpdateEntry(ctx context.Context, id string, entry *models.FlightEntry) (*models.FlightEntry, error) {
	if err := prepare(entry); err != nil {
		return nil, err
	}
	resp, err := c.flight.UpdateFlightEntry(ctx, connect.NewRequest(&api.UpdateFlightEntryRequest{
		ID:    id,
		Entry: api.FlightEntryFromModel(entry),
	}))
	if err := c.invalidateOn(err); err != nil {
		return nil, err
	}
	return resp.Msg.Entry.Model(), nil
}

func (c *Client) DeleteEntry(ctx context.Context, id string) error {
	_, err := c.flight.DeleteFlightEntry(ctx, connect.NewRequest(&api.DeleteFlightEntryRequest{ID: id}))
	return c.invalidateOn(err)
}

// Reports

func (c *Client) HoursByAircraft(ctx context.Context) ([]models.AircraftSummary, error) {
	list, err := query(ctx, c, keyTotalsAircraft, func(ctx context.Context) ([]*api.AircraftSummary, error) {
		resp, err := c.flight.GetTotalHoursByAircraft(ctx, connect.NewRequest(&api.GetTotalHoursByAircraftRequest{}))
		if err != nil {
			return nil, err
		}
		return resp.Msg.Summaries, nil
	})
	if err != nil {
		return nil, err
	}
	out := make([]models.AircraftSummary, len(list))
	for i, s := range list {
		out[i] = models.AircraftSummary{Aircraft: s.Aircraft, TotalHours: s.TotalHours}
	}
	return out, nil
}

func (c *Client) HoursByStudent(ctx context.Context) ([]models.StudentTotalHours, error) {
	list, err := query(ctx, c, keyTotalsStudent, func(ctx context.Context) ([]*api.StudentTotalHours, error) {
		resp, err := c.flight.GetTotalHoursByStudent(ctx, connect.NewRequest(&api.GetTotalHoursByStudentRequest{}))
		if err != nil {
			return nil, err
		}
		return resp.Msg.Totals, nil
	})
	if err != nil {
		return nil, err
	}
	out := make([]models.StudentTotalHours, len(list))
	for i, s := range list {
		out[i] = models.StudentTotalHours{Student: s.Student, TotalHours: s.TotalHours}
	}
	return out, nil
}

// DailyHours returns the decimal hours flown on day (YYYY-MM-DD).
func (c *Client) DailyHours(ctx context.Context, day string) (float64, error) {
	return query(ctx, c, fmt.Sprintf(keyDailyHoursFmt, day), func(ctx context.Context) (float64, error) {
		resp, err := c.flight.GetDailyHours(ctx, connect.NewRequest(&api.GetDailyHoursRequest{Day: day}))
		if err != nil {
			return 0, err
		}
		return resp.Msg.Hours, nil
	})
}

// MonthlyHours returns the decimal hours flown in month (YYYY-MM).
func (c *Client) MonthlyHours(ctx context.Context, month string) (float64, error) {
	return query(ctx, c, fmt.Sprintf(keyMonthlyHoursFmt, month), func(ctx context.Context) (float64, error) {
		resp, err := c.flight.GetMonthlyHours(ctx, connect.NewRequest(&api.GetMonthlyHoursRequest{Month: month}))
		if err != nil {
			return 0, err
		}
		return resp.Msg.Hours, nil
	})
}
