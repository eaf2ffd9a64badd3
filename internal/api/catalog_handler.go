package api

import (
	"alcyxob/workout-tracker/internal/catalog"
	"alcyxob/workout-tracker/internal/domain"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the built-in exercise catalog and the per-session
// pickers layered on top of it.
type CatalogHandler struct {
	sessions *catalog.Sessions
}

func NewCatalogHandler(sessions *catalog.Sessions) *CatalogHandler {
	return &CatalogHandler{sessions: sessions}
}

type PickerEntryRequest struct {
	Category string `json:"category" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

type CatalogResponse struct {
	Categories []string              `json:"categories"`
	Exercises  []domain.ExerciseInfo `json:"exercises"`
}

func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, CatalogResponse{
		Categories: catalog.Categories(),
		Exercises:  catalog.Builtins(),
	})
}

func (h *CatalogHandler) OpenPicker(c *gin.Context) {
	id, picker := h.sessions.Open()
	options, _ := picker.Options("")
	c.JSON(http.StatusCreated, gin.H{"sessionId": id, "exercises": options})
}

// GetPicker lists the session's options, narrowed by ?category= or ?q=.
func (h *CatalogHandler) GetPicker(c *gin.Context) {
	picker, ok := h.picker(c)
	if !ok {
		return
	}
	if q := c.Query("q"); q != "" {
		c.JSON(http.StatusOK, picker.Search(q))
		return
	}
	options, err := picker.Options(c.Query("category"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, options)
}

func (h *CatalogHandler) AddCustom(c *gin.Context) {
	h.change(c, http.StatusCreated, (*catalog.Picker).AddCustom)
}

func (h *CatalogHandler) Hide(c *gin.Context) {
	h.change(c, http.StatusOK, (*catalog.Picker).Remove)
}

func (h *CatalogHandler) Unhide(c *gin.Context) {
	h.change(c, http.StatusOK, (*catalog.Picker).Restore)
}

func (h *CatalogHandler) ClosePicker(c *gin.Context) {
	h.sessions.Close(c.Param("sid"))
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) change(c *gin.Context, status int, op func(p *catalog.Picker, category, name string) error) {
	picker, ok := h.picker(c)
	if !ok {
		return
	}
	var req PickerEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	if err := op(picker, req.Category, req.Name); err != nil {
		h.fail(c, err)
		return
	}
	options, _ := picker.Options(req.Category)
	c.JSON(status, options)
}

func (h *CatalogHandler) picker(c *gin.Context) (*catalog.Picker, bool) {
	picker, ok := h.sessions.Get(c.Param("sid"))
	if !ok {
		abortWithError(c, http.StatusNotFound, "Picker session not found or expired.")
		return nil, false
	}
	return picker, true
}

func (h *CatalogHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalog.ErrUnknownCategory), errors.Is(err, catalog.ErrEmptyName):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, catalog.ErrUnknownExercise):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, catalog.ErrDuplicateExercise):
		abortWithError(c, http.StatusConflict, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "Catalog operation failed.")
	}
}
