package handlers_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"favorites-backend/internal/handlers"
	"favorites-backend/internal/models"
	"favorites-backend/internal/routes"
	"favorites-backend/internal/services"
	"favorites-backend/internal/utils"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockFavoritesService struct {
	CreateListFunc  func(ctx context.Context, listName string, filmIDs []int) (*models.List, error)
	SearchListsFunc func(ctx context.Context, search string, page, limit int) (*services.ListPage, error)
	GetListFunc     func(ctx context.Context, id uint) (*models.List, error)
}

func (m *mockFavoritesService) CreateList(ctx context.Context, listName string, filmIDs []int) (*models.List, error) {
	return m.CreateListFunc(ctx, listName, filmIDs)
}

func (m *mockFavoritesService) SearchLists(ctx context.Context, search string, page, limit int) (*services.ListPage, error) {
	return m.SearchListsFunc(ctx, search, page, limit)
}

func (m *mockFavoritesService) GetList(ctx context.Context, id uint) (*models.List, error) {
	return m.GetListFunc(ctx, id)
}

type mockExportService struct {
	ExportListFunc func(ctx context.Context, id uint) (*services.ListExport, error)
}

func (m *mockExportService) ExportList(ctx context.Context, id uint) (*services.ListExport, error) {
	return m.ExportListFunc(ctx, id)
}

func setupApp(favorites services.FavoritesService, exports services.ExportService) *fiber.App {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	app := fiber.New(fiber.Config{
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}
			return utils.ErrorResponse(c, code, err.Error())
		},
	})
	routes.Setup(app, handlers.NewFavoritesHandler(favorites, exports, logger))
	return app
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, []byte) {
	t.Helper()

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func decodeError(t *testing.T, body []byte) utils.ErrorBody {
	t.Helper()

	var errBody utils.ErrorBody
	require.NoError(t, json.Unmarshal(body, &errBody))
	return errBody
}

func sampleList() *models.List {
	return &models.List{
		ID:       1,
		ListName: "My List",
		Films: []models.Film{
			{
				ID:          1,
				Title:       "A New Hope",
				ReleaseDate: "1977-05-25",
				Characters:  []models.Character{{ID: 1, Name: "Luke Skywalker"}},
			},
		},
	}
}

func TestCreateList(t *testing.T) {
	var gotName string
	var gotFilms []int
	favorites := &mockFavoritesService{
		CreateListFunc: func(_ context.Context, listName string, filmIDs []int) (*models.List, error) {
			gotName, gotFilms = listName, filmIDs
			return sampleList(), nil
		},
	}
	app := setupApp(favorites, &mockExportService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/favorites", strings.NewReader(`{"listName":"My List","films":[1]}`))
	req.Header.Set("Content-Type", "application/json")
	resp, body := doRequest(t, app, req)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "My List", gotName)
	assert.Equal(t, []int{1}, gotFilms)

	var got handlers.ListResponse
	require.NoError(t, json.Unmarshal(body, &got))
	require.NotNil(t, got.List)
	assert.Equal(t, uint(1), got.List.ID)
	assert.Equal(t, "My List", got.List.ListName)
	require.Len(t, got.List.Films, 1)
	assert.Equal(t, "A New Hope", got.List.Films[0].Title)
	assert.Equal(t, "Luke Skywalker", got.List.Films[0].Characters[0].Name)
	assert.Contains(t, string(body), `"listName":"My List"`)
	assert.Contains(t, string(body), `"releaseDate":"1977-05-25"`)
}

func TestCreateList_FilmNotFound(t *testing.T) {
	favorites := &mockFavoritesService{
		CreateListFunc: func(context.Context, string, []int) (*models.List, error) {
			return nil, services.ErrFilmNotFound
		},
	}
	app := setupApp(favorites, &mockExportService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/favorites", strings.NewReader(`{"listName":"Bad","films":[99]}`))
	req.Header.Set("Content-Type", "application/json")
	resp, body := doRequest(t, app, req)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, utils.ErrorBody{Status: "error", Code: 404, Message: "film not found"}, decodeError(t, body))
}

func TestCreateList_StoreFailure(t *testing.T) {
	favorites := &mockFavoritesService{
		CreateListFunc: func(context.Context, string, []int) (*models.List, error) {
			return nil, errors.New("connection reset")
		},
	}
	app := setupApp(favorites, &mockExportService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/favorites", strings.NewReader(`{"listName":"x","films":[1]}`))
	req.Header.Set("Content-Type", "application/json")
	resp, body := doRequest(t, app, req)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, utils.ErrorBody{Status: "fail", Code: 500, Message: "connection reset"}, decodeError(t, body))
}

func TestCreateList_MalformedBody(t *testing.T) {
	called := false
	favorites := &mockFavoritesService{
		CreateListFunc: func(context.Context, string, []int) (*models.List, error) {
			called = true
			return sampleList(), nil
		},
	}
	app := setupApp(favorites, &mockExportService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/favorites", strings.NewReader(`{"listName":`))
	req.Header.Set("Content-Type", "application/json")
	resp, _ := doRequest(t, app, req)

	assert.GreaterOrEqual(t, resp.StatusCode, http.StatusBadRequest)
	assert.False(t, called)
}

func TestSearchLists(t *testing.T) {
	var gotSearch string
	var gotPage, gotLimit int
	favorites := &mockFavoritesService{
		SearchListsFunc: func(_ context.Context, search string, page, limit int) (*services.ListPage, error) {
			gotSearch, gotPage, gotLimit = search, page, limit
			return &services.ListPage{
				Lists: []models.ListSummary{{ID: 3, Name: "Star list"}, {ID: 4, Name: "Stars"}},
				Total: 5,
				Page:  2,
				Limit: 2,
			}, nil
		},
	}
	app := setupApp(favorites, &mockExportService{})

	resp, body := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/favorites?search=Star&page=2&limit=2", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Star", gotSearch)
	assert.Equal(t, 2, gotPage)
	assert.Equal(t, 2, gotLimit)

	var got handlers.ListsResponse
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, []models.ListSummary{{ID: 3, Name: "Star list"}, {ID: 4, Name: "Stars"}}, got.Lists)
	assert.Equal(t, utils.PaginationMeta{
		Page:        2,
		Limit:       2,
		Total:       5,
		TotalPages:  3,
		HasNext:     true,
		HasPrevious: true,
	}, got.Meta)
}

func TestSearchLists_InvalidPagingFallsBack(t *testing.T) {
	var gotPage, gotLimit int
	favorites := &mockFavoritesService{
		SearchListsFunc: func(_ context.Context, _ string, page, limit int) (*services.ListPage, error) {
			gotPage, gotLimit = page, limit
			return &services.ListPage{Lists: []models.ListSummary{}, Page: 1, Limit: 10}, nil
		},
	}
	app := setupApp(favorites, &mockExportService{})

	resp, body := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/favorites?page=abc&limit=", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Zero(t, gotPage)
	assert.Zero(t, gotLimit)
	assert.Contains(t, string(body), `"lists":[]`)
}

func TestGetList(t *testing.T) {
	var gotID uint
	favorites := &mockFavoritesService{
		GetListFunc: func(_ context.Context, id uint) (*models.List, error) {
			gotID = id
			return sampleList(), nil
		},
	}
	app := setupApp(favorites, &mockExportService{})

	resp, body := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/favorites/1", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, uint(1), gotID)

	var got handlers.ListResponse
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "My List", got.List.ListName)
}

func TestGetList_NotFound(t *testing.T) {
	favorites := &mockFavoritesService{
		GetListFunc: func(context.Context, uint) (*models.List, error) {
			return nil, services.ErrListNotFound
		},
	}
	app := setupApp(favorites, &mockExportService{})

	resp, body := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/favorites/42", nil))

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, utils.ErrorBody{Status: "error", Code: 404, Message: "list with selected id not found"}, decodeError(t, body))
}

func TestGetList_InvalidID(t *testing.T) {
	called := false
	favorites := &mockFavoritesService{
		GetListFunc: func(context.Context, uint) (*models.List, error) {
			called = true
			return sampleList(), nil
		},
	}
	app := setupApp(favorites, &mockExportService{})

	for _, id := range []string{"abc", "0", "-1"} {
		resp, body := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/favorites/"+id, nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode, id)
		assert.Equal(t, "list with selected id not found", decodeError(t, body).Message, id)
	}
	assert.False(t, called)
}

func TestExportList(t *testing.T) {
	data := []byte("PK\x03\x04 workbook")
	exports := &mockExportService{
		ExportListFunc: func(_ context.Context, id uint) (*services.ListExport, error) {
			assert.Equal(t, uint(7), id)
			return &services.ListExport{
				Filename:    "1700000000123data.xlsx",
				ContentType: services.ExportContentType,
				Data:        data,
			}, nil
		},
	}
	app := setupApp(&mockFavoritesService{}, exports)

	resp, body := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/favorites/7/file", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, services.ExportContentType, resp.Header.Get("Content-Type"))
	assert.Equal(t, "attachment; filename=1700000000123data.xlsx", resp.Header.Get("Content-Disposition"))
	assert.Empty(t, resp.Header.Get("X-Export-URL"))
	assert.Equal(t, data, body)
}

func TestExportList_ArchiveURL(t *testing.T) {
	exports := &mockExportService{
		ExportListFunc: func(context.Context, uint) (*services.ListExport, error) {
			return &services.ListExport{
				Filename:    "1data.xlsx",
				ContentType: services.ExportContentType,
				Data:        []byte("x"),
				ArchiveURL:  "http://localhost:9000/favorites/exports/1/abc_1data.xlsx",
			}, nil
		},
	}
	app := setupApp(&mockFavoritesService{}, exports)

	resp, _ := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/favorites/1/file", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "http://localhost:9000/favorites/exports/1/abc_1data.xlsx", resp.Header.Get("X-Export-URL"))
}

func TestExportList_NotFound(t *testing.T) {
	exports := &mockExportService{
		ExportListFunc: func(context.Context, uint) (*services.ListExport, error) {
			return nil, services.ErrListNotFound
		},
	}
	app := setupApp(&mockFavoritesService{}, exports)

	resp, body := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/v1/favorites/9/file", nil))

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "list with selected id not found", decodeError(t, body).Message)
}
