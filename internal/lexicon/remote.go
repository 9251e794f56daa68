// internal/lexicon/remote.go
//
// HTTP client Source for cmd/lexicon-server.
//
// Routes used:
//   GET /health                          availability check (Ping)
//   GET /words/random?min=&max=&pos=...  {"word": "..."}; 404 when exhausted
//   GET /senses/{token}                  {"senses": [...]}
//
// When a secret is configured every request carries a short-lived HS256
// bearer token.

package lexicon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenIssuer is the issuer claim shared by client and server tokens.
const TokenIssuer = "hangman"

const tokenTTL = time.Minute

// RandomWordResponse is the body of GET /words/random.
type RandomWordResponse struct {
	Word string `json:"word"`
}

// SensesResponse is the body of GET /senses/{token}.
type SensesResponse struct {
	Senses []Sense `json:"senses"`
}

// StatusError is a non-200 reply from the lexicon server.
type StatusError struct {
	Path string
	Code int
	Msg  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: status %d: %s", e.Path, e.Code, e.Msg)
}

// Remote is a Source served over HTTP.
type Remote struct {
	base   string
	secret []byte
	hc     *http.Client
}

// NewRemote returns a client for the lexicon server at baseURL. A nil hc
// means a client with a 10s timeout.
func NewRemote(baseURL, secret string, hc *http.Client) *Remote {
	if hc == nil {
		hc = &http.Client{Timeout: 10 * time.Second}
	}
	r := &Remote{base: baseURL, hc: hc}
	if secret != "" {
		r.secret = []byte(secret)
	}
	return r
}

// SignToken issues a bearer token for the lexicon server.
func SignToken(secret []byte, now time.Time) (string, error) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    TokenIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	})
	return tok.SignedString(secret)
}

// Ping checks that the server is reachable and healthy.
func (r *Remote) Ping(ctx context.Context) error {
	if err := r.get(ctx, "/health", nil); err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return nil
}

func (r *Remote) RandomWord(ctx context.Context, minLen, maxLen int, pos []PartOfSpeech) (string, error) {
	q := url.Values{}
	q.Set("min", strconv.Itoa(minLen))
	q.Set("max", strconv.Itoa(maxLen))
	for _, p := range pos {
		q.Add("pos", string(p))
	}

	var res RandomWordResponse
	if err := r.get(ctx, "/words/random?"+q.Encode(), &res); err != nil {
		var se *StatusError
		if errors.As(err, &se) && se.Code == http.StatusNotFound {
			return "", ErrNoCandidates
		}
		return "", err
	}
	return res.Word, nil
}

func (r *Remote) Senses(ctx context.Context, token string) ([]Sense, error) {
	var res SensesResponse
	if err := r.get(ctx, "/senses/"+url.PathEscape(token), &res); err != nil {
		return nil, err
	}
	if res.Senses == nil {
		res.Senses = []Sense{}
	}
	return res.Senses, nil
}

func (r *Remote) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.base+path, nil)
	if err != nil {
		return err
	}
	if r.secret != nil {
		tok, err := SignToken(r.secret, time.Now())
		if err != nil {
			return fmt.Errorf("sign token: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := r.hc.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var body struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return &StatusError{Path: path, Code: resp.StatusCode, Msg: body.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
