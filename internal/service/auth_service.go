package service

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/flightlog/internal/auth"
	"github.com/mmynk/flightlog/internal/middleware"
	"github.com/mmynk/flightlog/internal/models"
	"github.com/mmynk/flightlog/internal/storage"
	"github.com/mmynk/flightlog/pkg/api"
)

// AuthService issues sessions for registered accounts.
type AuthService struct {
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	users         storage.UserStore
	logger        *slog.Logger
}

func NewAuthService(authenticator auth.Authenticator, jwtManager *auth.JWTManager, users storage.UserStore, logger *slog.Logger) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		jwtManager:    jwtManager,
		users:         users,
		logger:        logger,
	}
}

// session is the user and signed token returned by Register and Login.
type session struct {
	user      *api.User
	token     string
	expiresAt int64
}

func (s *AuthService) startSession(user *models.User) (*session, error) {
	token, expires, err := s.jwtManager.Issue(user)
	if err != nil {
		s.logger.Error("Failed to issue session", "user_id", user.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	return &session{user: api.UserFromModel(user), token: token, expiresAt: expires.Unix()}, nil
}

// Register creates an account and logs it in. The first account becomes admin.
func (s *AuthService) Register(ctx context.Context, req *connect.Request[api.RegisterRequest]) (*connect.Response[api.RegisterResponse], error) {
	email := strings.TrimSpace(req.Msg.Email)
	s.logger.Info("Register request", "email", email)
	if email == "" {
		return nil, connectError(&models.ValidationError{Field: "email", Reason: "is required"})
	}

	user, err := s.authenticator.Register(ctx, email, req.Msg.Password)
	if err != nil {
		s.logger.Warn("Registration failed", "email", email, "error", err)
		return nil, connectError(err)
	}
	sess, err := s.startSession(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Account registered", "user_id", user.ID, "role", user.Role)
	return connect.NewResponse(&api.RegisterResponse{User: sess.user, Token: sess.token, ExpiresAt: sess.expiresAt}), nil
}

func (s *AuthService) Login(ctx context.Context, req *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error) {
	email := strings.TrimSpace(req.Msg.Email)
	s.logger.Info("Login request", "email", email)
	if email == "" || req.Msg.Password == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, auth.ErrInvalidCredentials)
	}

	user, err := s.authenticator.Authenticate(ctx, email, req.Msg.Password)
	if err != nil {
		// Unknown email and wrong password look the same to the caller.
		s.logger.Warn("Login failed", "email", email, "error", err)
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidCredentials)
	}
	sess, err := s.startSession(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Logged in", "user_id", user.ID)
	return connect.NewResponse(&api.LoginResponse{User: sess.user, Token: sess.token, ExpiresAt: sess.expiresAt}), nil
}

// Logout only records the event. Sessions are stateless tokens, so the
// client ends the session by discarding its copy.
func (s *AuthService) Logout(ctx context.Context, req *connect.Request[api.LogoutRequest]) (*connect.Response[api.LogoutResponse], error) {
	s.logger.Info("Logout request", "user_id", middleware.GetUserID(ctx))
	return connect.NewResponse(&api.LogoutResponse{}), nil
}

// GetCurrentUser reads the caller's account from the store, so the role is
// current even when the token predates a role change.
func (s *AuthService) GetCurrentUser(ctx context.Context, req *connect.Request[api.GetCurrentUserRequest]) (*connect.Response[api.GetCurrentUserResponse], error) {
	userID := middleware.GetUserID(ctx)
	if err := requireCaller(userID); err != nil {
		return nil, err
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		s.logger.Warn("GetCurrentUser failed", "user_id", userID, "error", err)
		return nil, connectError(err)
	}
	return connect.NewResponse(&api.GetCurrentUserResponse{User: api.UserFromModel(user)}), nil
}
