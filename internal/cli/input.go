package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"connectrpc.com/connect"
	"golang.org/x/term"

	"github.com/mmynk/flightlog/internal/models"
)

// readPassword is replaced in tests.
var readPassword = term.ReadPassword

// password returns flagValue, or prompts on the terminal without echo.
func password(w io.Writer, flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return "", err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimSpace(string(pw)), nil
}

// describe turns client errors into a single human-readable line.
func describe(err error) string {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		return verr.Error()
	}
	var cerr *connect.Error
	if errors.As(err, &cerr) {
		switch cerr.Code() {
		case connect.CodeUnauthenticated:
			return "not logged in or session expired: " + cerr.Message()
		case connect.CodePermissionDenied:
			return "permission denied: " + cerr.Message()
		case connect.CodeNotFound:
			return "not found: " + cerr.Message()
		case connect.CodeUnavailable:
			return "server unavailable: " + cerr.Message()
		}
		return cerr.Message()
	}
	return err.Error()
}
