package web

import (
	"errors"
	"net/http"
	"net/mail"
	"net/url"
	"strings"
	"time"

	"github.com/skanda-m/estatedesk/internal/auth"
)

const (
	minPasswordLen = 8
	minUsernameLen = 2
)

type authPageData struct {
	Title       string
	Description string
	Email       string
	Username    string
	Errors      map[string]string
	Notice      string
	Error       string
}

func (s *Server) handleSignInPage(w http.ResponseWriter, r *http.Request) {
	data := &authPageData{
		Title:       "Sign In",
		Description: "Enter your credentials to sign in.",
		Notice:      r.URL.Query().Get("notice"),
		Error:       r.URL.Query().Get("error"),
	}
	if err := s.renderPage(w, data, "templates/base.html", "templates/pages/sign_in.html"); err != nil {
		s.logger.Error("render sign-in page failed", "error", err)
	}
}

func (s *Server) handleSignIn(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	data := &authPageData{
		Title:       "Sign In",
		Description: "Enter your credentials to sign in.",
		Email:       email,
		Errors:      map[string]string{},
	}
	if _, err := mail.ParseAddress(email); err != nil {
		data.Errors["email"] = "Please enter a valid email address"
	}
	if len(password) < minPasswordLen {
		data.Errors["password"] = "Password must be at least 8 characters"
	}
	// Validation failures never reach the auth service.
	if len(data.Errors) > 0 {
		s.renderAuthPage(w, data, "templates/pages/sign_in.html")
		return
	}

	sess, err := s.auth.SignIn(r.Context(), email, password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrEmailNotVerified):
			data.Error = err.Error()
		default:
			s.logger.Error("sign-in failed", "error", err)
			data.Error = "Something went wrong."
		}
		s.renderAuthPage(w, data, "templates/pages/sign_in.html")
		return
	}

	s.setSessionCookie(w, sess.Token, int(time.Until(sess.ExpiresAt).Seconds()))
	http.Redirect(w, r, "/dashboard?notice="+url.QueryEscape("Signed in successfully!"), http.StatusSeeOther)
}

func (s *Server) handleSignUpPage(w http.ResponseWriter, r *http.Request) {
	data := &authPageData{
		Title:       "Sign Up",
		Description: "Create an account to get started.",
		Notice:      r.URL.Query().Get("notice"),
	}
	if err := s.renderPage(w, data, "templates/base.html", "templates/pages/sign_up.html"); err != nil {
		s.logger.Error("render sign-up page failed", "error", err)
	}
}

func (s *Server) handleSignUp(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.FormValue("email"))
	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")

	data := &authPageData{
		Title:       "Sign Up",
		Description: "Create an account to get started.",
		Email:       email,
		Username:    username,
		Errors:      map[string]string{},
	}
	if _, err := mail.ParseAddress(email); err != nil {
		data.Errors["email"] = "Please enter a valid email address"
	}
	if len(username) < minUsernameLen {
		data.Errors["username"] = "Username must be at least 2 characters"
	}
	if len(password) < minPasswordLen {
		data.Errors["password"] = "Password must be at least 8 characters"
	}
	if len(data.Errors) > 0 {
		s.renderAuthPage(w, data, "templates/pages/sign_up.html")
		return
	}

	if _, err := s.auth.SignUp(r.Context(), username, email, password); err != nil {
		if errors.Is(err, auth.ErrEmailTaken) {
			data.Error = err.Error()
		} else {
			s.logger.Error("sign-up failed", "error", err)
			data.Error = "Something went wrong."
		}
		s.renderAuthPage(w, data, "templates/pages/sign_up.html")
		return
	}

	// Verification-gated: no auto-login, the user must follow the email link.
	http.Redirect(w, r,
		"/sign-in?notice="+url.QueryEscape("Check your email to verify your account."),
		http.StatusSeeOther)
}

func (s *Server) handleEmailVerified(w http.ResponseWriter, r *http.Request) {
	data := &authPageData{
		Title:       "Email Verified",
		Description: "Your email has been verified!",
	}
	if err := s.renderPage(w, data, "templates/base.html", "templates/pages/email_verified.html"); err != nil {
		s.logger.Error("render email-verified page failed", "error", err)
	}
}

// handleVerifyEmail consumes the emailed token, signs the user in, and sends
// them to the callback page. Exempt from the session guard so the link works
// from a fresh browser.
func (s *Server) handleVerifyEmail(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	callback := r.URL.Query().Get("callbackURL")
	if callback == "" || !strings.HasPrefix(callback, "/") {
		callback = "/email-verified"
	}

	sess, err := s.auth.VerifyEmail(r.Context(), token)
	if err != nil {
		if errors.Is(err, auth.ErrTokenInvalid) {
			http.Redirect(w, r, "/sign-in?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
			return
		}
		s.logger.Error("email verification failed", "error", err)
		http.Redirect(w, r, "/sign-in?error="+url.QueryEscape("Something went wrong."), http.StatusSeeOther)
		return
	}

	s.setSessionCookie(w, sess.Token, int(time.Until(sess.ExpiresAt).Seconds()))
	http.Redirect(w, r, callback, http.StatusSeeOther)
}

func (s *Server) handleSignOut(w http.ResponseWriter, r *http.Request) {
	if err := s.auth.SignOut(r.Context(), cookieToken(r)); err != nil {
		s.logger.Error("sign-out failed", "error", err)
	}
	s.setSessionCookie(w, "", -1)
	http.Redirect(w, r, "/sign-in", http.StatusSeeOther)
}

func (s *Server) renderAuthPage(w http.ResponseWriter, data *authPageData, page string) {
	if err := s.renderPage(w, data, "templates/base.html", page); err != nil {
		s.logger.Error("render auth page failed", "error", err)
	}
}
