package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	sharedauth "companion-backend/internal/shared/auth"
	"companion-backend/internal/shared/server/respond"
)

const (
	defaultUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"
	loginStateTTL      = 5 * time.Minute
)

// GoogleService implements founder sign-in with Google. The wizard works for
// guests too; signing in lets a founder keep sessions and generated guides
// across devices via a stable google:<sub> user ID.
type GoogleService struct {
	oauthConfig *oauth2.Config
	userInfoURL string
	uiRedirect  string
	states      *loginStates
}

// NewGoogleService builds the sign-in service. uiRedirect is the frontend
// page that receives the issued token after the callback.
func NewGoogleService(clientID, clientSecret, redirectURL, uiRedirect string) *GoogleService {
	return &GoogleService{
		oauthConfig: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
		userInfoURL: defaultUserInfoURL,
		uiRedirect:  uiRedirect,
		states:      newLoginStates(loginStateTTL),
	}
}

// RegisterRoutes attaches the sign-in routes.
func (s *GoogleService) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/auth/google/start", s.start)
	rg.GET("/auth/google/callback", s.callback)
}

func (s *GoogleService) start(c *gin.Context) {
	if s.oauthConfig.ClientID == "" || s.oauthConfig.ClientSecret == "" || s.oauthConfig.RedirectURL == "" {
		respond.Error(c, http.StatusInternalServerError, "auth_not_configured", "Google sign-in is not configured", nil)
		return
	}

	state := uuid.NewString()
	s.states.issue(state)

	c.Redirect(http.StatusFound, s.oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOffline))
}

func (s *GoogleService) callback(c *gin.Context) {
	state := c.Query("state")
	code := c.Query("code")
	if state == "" || code == "" {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "missing state or code", nil)
		return
	}
	if !s.states.consume(state) {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "invalid or expired state", nil)
		return
	}

	ctx := c.Request.Context()
	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "failed to exchange code", nil)
		return
	}

	founder, err := s.fetchFounder(ctx, token)
	if err != nil {
		respond.Error(c, http.StatusBadGateway, "auth_failed", "failed to fetch Google profile", nil)
		return
	}
	if founder.Sub == "" {
		respond.Error(c, http.StatusBadGateway, "auth_failed", "Google profile has no subject", nil)
		return
	}

	jwt, err := sharedauth.SignJWT(sharedauth.Claims{
		Sub:     "google:" + founder.Sub,
		Email:   founder.Email,
		Name:    founder.Name,
		Picture: founder.Picture,
	})
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to issue token", nil)
		return
	}

	redirectURL, err := tokenRedirect(s.uiRedirect, jwt)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to redirect", nil)
		return
	}
	c.Redirect(http.StatusFound, redirectURL)
}

// founderProfile is the slice of the Google userinfo response we keep.
// Older responses carry "id" where newer ones carry "sub".
type founderProfile struct {
	Sub     string `json:"sub"`
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

func (s *GoogleService) fetchFounder(ctx context.Context, token *oauth2.Token) (founderProfile, error) {
	client := s.oauthConfig.Client(ctx, token)
	resp, err := client.Get(s.userInfoURL)
	if err != nil {
		return founderProfile{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return founderProfile{}, fmt.Errorf("userinfo status %d", resp.StatusCode)
	}

	var p founderProfile
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return founderProfile{}, err
	}
	if p.Sub == "" {
		p.Sub = p.ID
	}
	return p, nil
}

// loginStates tracks single-use OAuth states. Expired entries are pruned on
// every issue so an abandoned sign-in never leaks memory.
type loginStates struct {
	ttl   time.Duration
	mu    sync.Mutex
	items map[string]time.Time
}

func newLoginStates(ttl time.Duration) *loginStates {
	return &loginStates{ttl: ttl, items: make(map[string]time.Time)}
}

func (ls *loginStates) issue(state string) {
	now := time.Now()
	ls.mu.Lock()
	for s, exp := range ls.items {
		if now.After(exp) {
			delete(ls.items, s)
		}
	}
	ls.items[state] = now.Add(ls.ttl)
	ls.mu.Unlock()
}

func (ls *loginStates) consume(state string) bool {
	ls.mu.Lock()
	exp, ok := ls.items[state]
	if ok {
		delete(ls.items, state)
	}
	ls.mu.Unlock()
	return ok && time.Now().Before(exp)
}

func tokenRedirect(rawURL, token string) (string, error) {
	if rawURL == "" {
		return "", errors.New("redirect url required")
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
