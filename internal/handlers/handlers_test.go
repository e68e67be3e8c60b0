package handlers

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"roam/internal/models"
	"roam/internal/services"
)

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	return e
}

// fakeUploader records the filenames it was asked to store and returns
// deterministic URLs.
type fakeUploader struct {
	uploaded []string
	err      error
}

func (f *fakeUploader) UploadFile(ctx context.Context, file *multipart.FileHeader) (string, error) {
	return f.UploadStream(ctx, file.Filename, file.Header.Get("Content-Type"), nil)
}

func (f *fakeUploader) UploadStream(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if body != nil {
		io.Copy(io.Discard, body)
	}
	f.uploaded = append(f.uploaded, filename)
	return "https://cdn.test/tour/" + filename, nil
}

// fakeTourStore is an in-memory TourStore with counter semantics.
type fakeTourStore struct {
	tours  map[int]models.Tour
	nextID int
	err    error
}

func newFakeTourStore() *fakeTourStore {
	return &fakeTourStore{tours: map[int]models.Tour{}, nextID: 1}
}

func (f *fakeTourStore) Create(ctx context.Context, tour *models.Tour) error {
	if f.err != nil {
		return f.err
	}
	tour.TourID = f.nextID
	f.nextID++
	f.tours[tour.TourID] = *tour
	return nil
}

func (f *fakeTourStore) GetAll(ctx context.Context) ([]models.Tour, error) {
	if f.err != nil {
		return nil, f.err
	}
	tours := []models.Tour{}
	for id := 1; id < f.nextID; id++ {
		if tour, ok := f.tours[id]; ok {
			tours = append(tours, tour)
		}
	}
	return tours, nil
}

func (f *fakeTourStore) GetTitles(ctx context.Context) ([]models.TourTitle, error) {
	if f.err != nil {
		return nil, f.err
	}
	titles := []models.TourTitle{}
	for id := 1; id < f.nextID; id++ {
		if tour, ok := f.tours[id]; ok {
			titles = append(titles, models.TourTitle{Title: tour.Title})
		}
	}
	return titles, nil
}

func (f *fakeTourStore) GetByID(ctx context.Context, tourID int) (*models.Tour, error) {
	if f.err != nil {
		return nil, f.err
	}
	tour, ok := f.tours[tourID]
	if !ok {
		return nil, services.ErrTourNotFound
	}
	return &tour, nil
}

func (f *fakeTourStore) Replace(ctx context.Context, tourID int, tour *models.Tour) (*models.Tour, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, ok := f.tours[tourID]; !ok {
		return nil, services.ErrTourNotFound
	}
	tour.TourID = tourID
	f.tours[tourID] = *tour
	return tour, nil
}

// buildMultipart assembles a multipart body with the given value fields
// and file parts. Files under the same field keep their slice order.
func buildMultipart(t *testing.T, fields map[string]string, files map[string][]string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, value := range fields {
		require.NoError(t, w.WriteField(name, value))
	}
	for field, names := range files {
		for _, name := range names {
			fw, err := w.CreateFormFile(field, name)
			require.NoError(t, err)
			_, err = fw.Write([]byte("fake image bytes"))
			require.NoError(t, err)
		}
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func newMultipartContext(e *echo.Echo, target string, body *bytes.Buffer, contentType string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, target, body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}
