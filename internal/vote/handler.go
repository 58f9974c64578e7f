package vote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/bees/mediahub/internal/response"
)

// Longest key S3 accepts.
const maxKeyLen = 1024

// Handler holds HTTP handlers for vote endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new vote Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type voteRequest struct {
	Key string `json:"key" example:"music/溜冰场/one.mp3"`
}

// GetVotes godoc
//
//	@Summary		Get votes
//	@Description	Returns the like and dislike counts for an item. Items never voted on return zeros.
//	@Tags			votes
//	@Produce		json
//	@Param			key	query		string	true	"Item storage key"
//	@Success		200	{object}	response.Envelope{data=Votes}
//	@Failure		400	{object}	response.Envelope
//	@Failure		503	{object}	response.Envelope
//	@Router			/votes [get]
func (h *Handler) GetVotes(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if !validKey(key) {
		response.BadRequest(w, "key is required")
		return
	}
	h.respond(w, r, key, h.svc.Get)
}

// Like godoc
//
//	@Summary		Like an item
//	@Description	Adds one like and returns the updated counts.
//	@Tags			votes
//	@Accept			json
//	@Produce		json
//	@Param			request	body		voteRequest	true	"Item storage key"
//	@Success		200		{object}	response.Envelope{data=Votes}
//	@Failure		400		{object}	response.Envelope
//	@Failure		429		{object}	response.Envelope
//	@Failure		503		{object}	response.Envelope
//	@Router			/votes/like [post]
func (h *Handler) Like(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.svc.Like)
}

// Dislike godoc
//
//	@Summary		Dislike an item
//	@Description	Adds one dislike and returns the updated counts.
//	@Tags			votes
//	@Accept			json
//	@Produce		json
//	@Param			request	body		voteRequest	true	"Item storage key"
//	@Success		200		{object}	response.Envelope{data=Votes}
//	@Failure		400		{object}	response.Envelope
//	@Failure		429		{object}	response.Envelope
//	@Failure		503		{object}	response.Envelope
//	@Router			/votes/dislike [post]
func (h *Handler) Dislike(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.svc.Dislike)
}

type voteFunc func(ctx context.Context, itemKey string) (Votes, error)

func (h *Handler) mutate(w http.ResponseWriter, r *http.Request, fn voteFunc) {
	var req voteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if !validKey(req.Key) {
		response.BadRequest(w, "key is required")
		return
	}
	h.respond(w, r, req.Key, fn)
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, key string, fn voteFunc) {
	votes, err := fn(r.Context(), key)
	if errors.Is(err, ErrStoreUnavailable) {
		response.ServiceUnavailable(w, "vote store unavailable")
		return
	}
	if err != nil {
		response.InternalError(w)
		return
	}
	response.OK(w, votes)
}

func validKey(key string) bool {
	return strings.TrimSpace(key) != "" && len(key) <= maxKeyLen
}
