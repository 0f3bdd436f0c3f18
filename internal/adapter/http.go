package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/go-resty/resty/v2"
)

const (
	userPath      = "/api/user"
	userLoginPath = "/api/user/login"
	notesPath     = "/api/note"
	notePath      = "/api/note/{id}"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the resty implementation of [ServerAdapter].
// A zero adapterCfg.RequestTimeout leaves requests without a deadline.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)
	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		logger.Debug().
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Int("status", resp.StatusCode()).
			Dur("duration", resp.Time()).
			Msg("note api response")
		return nil
	})

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Signup implements [ServerAdapter]. POST /api/user.
func (h *httpServerAdapter) Signup(ctx context.Context, creds models.Credentials) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(creds).
		Post(userPath)
	if err != nil {
		return fmt.Errorf("signup request: %w", err)
	}

	return mapHTTPError(resp)
}

// Login implements [ServerAdapter]. POST /api/user/login with email and
// password only; the token is read from the JSON body.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (string, error) {
	body := models.Credentials{Email: creds.Email, Password: creds.Password}

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(body).
		Post(userLoginPath)
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var lr models.LoginResponse
	if len(resp.Body()) > 0 {
		if err = json.Unmarshal(resp.Body(), &lr); err != nil {
			return "", fmt.Errorf("decode login response: %w", err)
		}
	}

	return strings.TrimSpace(lr.Token), nil
}

// ListNotes implements [ServerAdapter]. GET /api/note.
func (h *httpServerAdapter) ListNotes(ctx context.Context, token string) ([]models.Note, error) {
	resp, err := h.authedRequest(ctx, token).Get(notesPath)
	if err != nil {
		return nil, fmt.Errorf("list notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var nr models.NotesResponse
	if err = json.Unmarshal(resp.Body(), &nr); err != nil {
		return nil, fmt.Errorf("decode notes response: %w", err)
	}
	if nr.Notes == nil {
		nr.Notes = []models.Note{}
	}

	return nr.Notes, nil
}

// CreateNote implements [ServerAdapter]. POST /api/note.
func (h *httpServerAdapter) CreateNote(ctx context.Context, token string, draft models.NoteDraft) error {
	resp, err := h.authedRequest(ctx, token).
		SetBody(draft).
		Post(notesPath)
	if err != nil {
		return fmt.Errorf("create note request: %w", err)
	}

	return mapHTTPError(resp)
}

// UpdateNote implements [ServerAdapter]. PUT /api/note/{id}.
func (h *httpServerAdapter) UpdateNote(ctx context.Context, token, id string, draft models.NoteDraft) error {
	resp, err := h.authedRequest(ctx, token).
		SetPathParam("id", id).
		SetBody(draft).
		Put(notePath)
	if err != nil {
		return fmt.Errorf("update note request: %w", err)
	}

	return mapHTTPError(resp)
}

// DeleteNote implements [ServerAdapter]. DELETE /api/note/{id}.
func (h *httpServerAdapter) DeleteNote(ctx context.Context, token, id string) error {
	resp, err := h.authedRequest(ctx, token).
		SetPathParam("id", id).
		Delete(notePath)
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context, token string) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetAuthToken(token)
}
