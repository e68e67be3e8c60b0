package handlers

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"roam/internal/models"
	"roam/internal/services"
	"roam/internal/utils/logger"
)

// maxTourFiles caps the file count of a saveTour/updateTour request.
const maxTourFiles = 20

type TourHandler struct {
	store    services.TourStore
	uploader services.Uploader
	log      *logger.Logger
}

func NewTourHandler(store services.TourStore, uploader services.Uploader) *TourHandler {
	return &TourHandler{
		store:    store,
		uploader: uploader,
		log:      logger.New("tour_handler"),
	}
}

// parseTourForm reads the multipart body into a Tour with its images and
// member photos uploaded and attached. statusErr carries the response
// status to use when err != nil.
func (h *TourHandler) parseTourForm(c echo.Context) (*models.Tour, int, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, http.StatusBadRequest, errors.New("invalid multipart body")
	}

	if countFiles(form) > maxTourFiles {
		return nil, http.StatusBadRequest, errors.New("too many files")
	}

	tour, err := parseTourFields(form)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}

	uploads := classifyTourFiles(form)

	ctx := c.Request().Context()
	images, err := h.uploadAll(ctx, uploads.Gallery)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	photos, err := h.uploadAll(ctx, uploads.MemberPhotos)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}

	tour.Images = images
	zipMemberPhotos(tour.TeamMembers, photos)

	return tour, http.StatusOK, nil
}

// uploadAll stores files in order and returns their URLs. On failure the
// already-stored objects are left in place.
func (h *TourHandler) uploadAll(ctx context.Context, files []*multipart.FileHeader) ([]string, error) {
	urls := []string{}
	for _, file := range files {
		url, err := h.uploader.UploadFile(ctx, file)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

// SaveTour creates a new tour from the multipart form. The store assigns
// the tourId.
func (h *TourHandler) SaveTour(c echo.Context) error {
	tour, status, err := h.parseTourForm(c)
	if err != nil {
		h.log.Error("Failed to parse tour form", err)
		return c.JSON(status, map[string]string{"error": err.Error()})
	}

	if err := h.store.Create(c.Request().Context(), tour); err != nil {
		h.log.Error("Failed to save tour", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save tour"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Tour saved successfully"})
}

// UpdateTour fully replaces the tour matched by :tourId with the
// submitted form. Fields omitted from the form are overwritten with
// empty values.
func (h *TourHandler) UpdateTour(c echo.Context) error {
	tourID, err := strconv.Atoi(c.Param("tourId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid tourId"})
	}

	tour, status, err := h.parseTourForm(c)
	if err != nil {
		h.log.Error("Failed to parse tour form", err)
		return c.JSON(status, map[string]string{"error": err.Error()})
	}

	updated, err := h.store.Replace(c.Request().Context(), tourID, tour)
	if errors.Is(err, services.ErrTourNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Tour not found"})
	}
	if err != nil {
		h.log.Error("Failed to update tour", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update tour"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":     "Tour updated successfully",
		"updatedTour": updated,
	})
}

// GetRatings lists every tour as a full document.
func (h *TourHandler) GetRatings(c echo.Context) error {
	tours, err := h.store.GetAll(c.Request().Context())
	if err != nil {
		h.log.Error("Failed to list tours", err)
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Failed to fetch tours"})
	}
	return c.JSON(http.StatusOK, tours)
}

// GetTourTitles lists only the title field of every tour.
func (h *TourHandler) GetTourTitles(c echo.Context) error {
	titles, err := h.store.GetTitles(c.Request().Context())
	if err != nil {
		h.log.Error("Failed to list tour titles", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch tour titles"})
	}
	return c.JSON(http.StatusOK, titles)
}

// GetTourDetails returns one tour by its tourId.
func (h *TourHandler) GetTourDetails(c echo.Context) error {
	tourID, err := strconv.Atoi(c.Param("tourId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid tourId"})
	}

	tour, err := h.store.GetByID(c.Request().Context(), tourID)
	if errors.Is(err, services.ErrTourNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Tour not found"})
	}
	if err != nil {
		h.log.Error("Failed to fetch tour", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch tour"})
	}

	return c.JSON(http.StatusOK, tour)
}
