package catalog

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bees/mediahub/internal/response"
)

// Handler holds HTTP handlers for the song and video catalogs.
type Handler struct {
	songs  *Service
	videos *Service
}

// NewHandler creates a new catalog Handler.
func NewHandler(songs, videos *Service) *Handler {
	return &Handler{songs: songs, videos: videos}
}

type setFolderRequest struct {
	Folder string `json:"folder" example:"da_si_ma"`
}

type currentFolderData struct {
	Current string `json:"current" example:"da_si_ma"`
}

type foldersData struct {
	Current string   `json:"current" example:"dian_gun"`
	Folders []Folder `json:"folders"`
}

// ListSongs godoc
//
//	@Summary		List songs
//	@Description	Lists .mp3 objects in the current music folder, each with a freshly signed URL.
//	@Tags			catalog
//	@Produce		json
//	@Success		200	{object}	response.Envelope{data=[]Item}
//	@Failure		503	{object}	response.Envelope
//	@Router			/songs [get]
func (h *Handler) ListSongs(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.songs)
}

// ListVideos godoc
//
//	@Summary		List videos
//	@Description	Lists .mp4 objects under the video prefix, each with a freshly signed URL.
//	@Tags			catalog
//	@Produce		json
//	@Success		200	{object}	response.Envelope{data=[]Item}
//	@Failure		503	{object}	response.Envelope
//	@Router			/videos [get]
func (h *Handler) ListVideos(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.videos)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request, svc *Service) {
	items, err := svc.List(r.Context())
	if errors.Is(err, ErrStoreUnavailable) {
		response.ServiceUnavailable(w, "object store unavailable")
		return
	}
	if err != nil {
		response.InternalError(w)
		return
	}
	response.OK(w, items)
}

// ListFolders godoc
//
//	@Summary		List music folders
//	@Description	Returns the configured folder set and the currently selected key.
//	@Tags			catalog
//	@Produce		json
//	@Success		200	{object}	response.Envelope{data=foldersData}
//	@Router			/folders [get]
func (h *Handler) ListFolders(w http.ResponseWriter, r *http.Request) {
	current, folders := h.songs.Folders()
	response.OK(w, foldersData{Current: current, Folders: folders})
}

// SetFolder godoc
//
//	@Summary		Switch music folder
//	@Description	Selects which folder the song list is built from. Unknown keys leave the selection unchanged.
//	@Tags			catalog
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		setFolderRequest	true	"Folder key"
//	@Success		200		{object}	response.Envelope{data=currentFolderData}
//	@Failure		400		{object}	response.Envelope
//	@Failure		401		{object}	response.Envelope
//	@Router			/set-folder [post]
func (h *Handler) SetFolder(w http.ResponseWriter, r *http.Request) {
	var req setFolderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	current, err := h.songs.SetFolder(req.Folder)
	if errors.Is(err, ErrInvalidFolder) {
		response.BadRequest(w, ErrInvalidFolder.Error())
		return
	}
	if err != nil {
		response.InternalError(w)
		return
	}

	response.OK(w, currentFolderData{Current: current})
}
