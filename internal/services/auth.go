// Package services contains the application services of the campuspark
// client core: authentication (session lifecycle and the signed-in state
// machine) and account queries (profile, history, top-up) with their
// fallback discipline.
package services

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/levietphu/campuspark/internal/api"
	"github.com/levietphu/campuspark/internal/common"
	"github.com/levietphu/campuspark/internal/fallback"
	"github.com/levietphu/campuspark/internal/logging"
	"github.com/levietphu/campuspark/internal/models"
	"github.com/levietphu/campuspark/internal/session"
)

// State is the auth controller's observable lifecycle state.
type State string

const (
	StateRestoring       State = "restoring"
	StateUnauthenticated State = "unauthenticated"
	StateAuthenticating  State = "authenticating"
	StateAuthenticated   State = "authenticated"
	StateLoggingOut      State = "logging_out"
)

// ErrNoSession is returned by operations that need a signed-in user.
var ErrNoSession = errors.New("no active session")

// AuthService orchestrates login, logout and restoration of a prior
// session.
//
// Contract:
//   - Restore: load a saved session on process start; storage failures mean
//     "no session", never an error.
//   - Login: online first; the offline demo affordance applies only when
//     the backend is unreachable AND the credentials match a demo account
//     exactly. Everything else fails closed.
//   - Logout: clears the saved session; the observable state always ends
//     up signed out, even if the clear itself errors.
//   - UpdateLocalProfile: merges a partial change into the cached profile
//     and persists it; never flips the signed-in state.
type AuthService interface {
	Restore(ctx context.Context)
	Login(ctx context.Context, studentID, password string) error
	Logout(ctx context.Context) error
	IsSignedIn() bool
	CurrentUser() *models.UserProfile
	UpdateLocalProfile(ctx context.Context, update models.ProfileUpdate) error
	State() State
}

type authService struct {
	client   api.Client
	sessions *session.Store
	demo     *fallback.Dataset
	log      logging.Logger

	// mu serializes state transitions. An overlapping Login queues behind
	// the in-flight one; last writer wins on the session store.
	mu         sync.Mutex
	state      State
	credential string
	profile    *models.UserProfile
}

// NewAuthService builds the controller in the Restoring state; call Restore
// before anything else.
func NewAuthService(client api.Client, sessions *session.Store, demo *fallback.Dataset, log logging.Logger) AuthService {
	return &authService{
		client:   client,
		sessions: sessions,
		demo:     demo,
		log:      log.With("component", "auth"),
		state:    StateRestoring,
	}
}

// Restore loads the saved session, if any. The restored session is trusted
// as-is: no revalidation against the backend, so the app stays usable
// offline even if the server has since invalidated the credential.
func (a *authService) Restore(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	sess, err := a.sessions.Load(ctx)
	if err != nil || sess == nil {
		if err != nil {
			a.log.Warn(ctx, "session restore failed, starting signed out", "error", err.Error())
		}
		a.toSignedOut()
		return
	}

	a.credential = sess.Credential
	profile := sess.Profile
	a.profile = &profile
	a.state = StateAuthenticated
	a.log.Info(ctx, "session restored", "student_id", profile.StudentID)
}

func (a *authService) Login(ctx context.Context, studentID, password string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.state = StateAuthenticating

	profile, err := a.client.Login(ctx, studentID, password)
	if err != nil {
		if common.IsKind(err, common.KindConnectivity) {
			return a.offlineLogin(ctx, studentID, password, err)
		}
		a.toSignedOut()
		return err
	}

	return a.establishSession(ctx, *profile)
}

// offlineLogin is the explicit affordance for backend outages: it succeeds
// only on an exact student id + password match against the demo dataset.
// Any mismatch surfaces the original connectivity error, not a credentials
// one, so the caller knows the server was never consulted.
func (a *authService) offlineLogin(ctx context.Context, studentID, password string, connErr error) error {
	acc := a.demo.FindByStudentID(studentID)
	if acc == nil || acc.Password != password {
		a.toSignedOut()
		return connErr
	}

	a.log.Info(ctx, "backend unreachable, demo credentials accepted", "student_id", studentID)
	return a.establishSession(ctx, acc.Profile())
}

// establishSession synthesizes a local opaque credential (the backend does
// not issue one), persists credential and profile together, and moves to
// Authenticated.
func (a *authService) establishSession(ctx context.Context, profile models.UserProfile) error {
	sess := &models.Session{
		Credential: "demo_token_" + uuid.NewString(),
		Profile:    profile,
	}

	if err := a.sessions.Save(ctx, sess); err != nil {
		a.log.Error(ctx, "failed to persist session", "error", err.Error())
		a.toSignedOut()
		return err
	}

	a.credential = sess.Credential
	a.profile = &profile
	a.state = StateAuthenticated
	return nil
}

// Logout clears the saved session. A failing clear is logged and the state
// still ends up signed out; calling Logout while already signed out is a
// no-op success.
func (a *authService) Logout(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.state = StateLoggingOut

	if err := a.sessions.Clear(ctx); err != nil {
		a.log.Warn(ctx, "session clear failed during logout", "error", err.Error())
	}

	a.toSignedOut()
	return nil
}

func (a *authService) toSignedOut() {
	a.credential = ""
	a.profile = nil
	a.state = StateUnauthenticated
}

func (a *authService) IsSignedIn() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state == StateAuthenticated && a.profile != nil
}

// CurrentUser returns a copy of the cached profile, or nil when signed out.
func (a *authService) CurrentUser() *models.UserProfile {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.profile == nil {
		return nil
	}
	profile := *a.profile
	return &profile
}

func (a *authService) UpdateLocalProfile(ctx context.Context, update models.ProfileUpdate) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state != StateAuthenticated || a.profile == nil {
		return ErrNoSession
	}

	merged := a.profile.Apply(update)
	if err := a.sessions.Save(ctx, &models.Session{Credential: a.credential, Profile: merged}); err != nil {
		return err
	}

	a.profile = &merged
	return nil
}

func (a *authService) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}
