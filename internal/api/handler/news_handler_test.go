package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/newsdesk/news-api/internal/core/domain"
	"github.com/newsdesk/news-api/internal/core/ports"
)

type stubNewsService struct {
	createFn func(ctx context.Context, input ports.CreateNewsInput) (*ports.NewsResult, error)
	getFn    func(ctx context.Context, id int64) (*ports.NewsResult, error)
	updateFn func(ctx context.Context, id int64, input ports.UpdateNewsInput) (*ports.NewsResult, error)
	deleteFn func(ctx context.Context, id int64) (*ports.NewsResult, error)
	listFn   func(ctx context.Context, params ports.ListParams) ([]ports.NewsResult, error)
	countFn  func(ctx context.Context, search string) (int, error)
}

func (s *stubNewsService) Create(ctx context.Context, input ports.CreateNewsInput) (*ports.NewsResult, error) {
	return s.createFn(ctx, input)
}

func (s *stubNewsService) GetByID(ctx context.Context, id int64) (*ports.NewsResult, error) {
	return s.getFn(ctx, id)
}

func (s *stubNewsService) Update(ctx context.Context, id int64, input ports.UpdateNewsInput) (*ports.NewsResult, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubNewsService) Delete(ctx context.Context, id int64) (*ports.NewsResult, error) {
	return s.deleteFn(ctx, id)
}

func (s *stubNewsService) List(ctx context.Context, params ports.ListParams) ([]ports.NewsResult, error) {
	return s.listFn(ctx, params)
}

func (s *stubNewsService) Count(ctx context.Context, search string) (int, error) {
	return s.countFn(ctx, search)
}

// multipartBody builds a multipart form from text fields plus an optional
// image part, returning the body and its content type.
func multipartBody(t *testing.T, fields map[string]string, imageName string, imageData []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	if imageName != "" {
		fw, err := w.CreateFormFile("image", imageName)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write(imageData); err != nil {
			t.Fatalf("write image: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}

func newMultipartContext(t *testing.T, method, target string, body *bytes.Buffer, contentType string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func sampleNewsResult() *ports.NewsResult {
	return &ports.NewsResult{
		News: domain.News{
			ID:              1,
			Title:           "breaking",
			Description:     "something happened",
			ImageURL:        "http://images/news/abc.jpg",
			AuthorID:        "author-1",
			PublicationDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			CreationDate:    time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		},
		Author: ports.AuthorSummary{
			ID:        "author-1",
			FirstName: "Alice",
			LastName:  "Smith",
			UserName:  "alice",
			Email:     "alice@example.com",
		},
	}
}

func newsFields() map[string]string {
	return map[string]string{
		"title":           "breaking",
		"description":     "something happened",
		"authorId":        "author-1",
		"publicationDate": "2026-09-01",
	}
}

func TestNewsHandler_Create_Success(t *testing.T) {
	stub := &stubNewsService{
		createFn: func(ctx context.Context, input ports.CreateNewsInput) (*ports.NewsResult, error) {
			if input.Title != "breaking" || input.AuthorID != "author-1" {
				t.Fatalf("unexpected input: %+v", input)
			}
			want := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
			if !input.PublicationDate.Equal(want) {
				t.Fatalf("unexpected date: %v", input.PublicationDate)
			}
			if input.Image.Filename != "cover.jpg" {
				t.Fatalf("unexpected image name: %s", input.Image.Filename)
			}
			data, err := io.ReadAll(input.Image.Content)
			if err != nil || string(data) != "fake-image-bytes" {
				t.Fatalf("image content not readable: %v", err)
			}
			return sampleNewsResult(), nil
		},
	}
	h := NewNewsHandler(stub)

	body, ct := multipartBody(t, newsFields(), "cover.jpg", []byte("fake-image-bytes"))
	c, rec := newMultipartContext(t, http.MethodPost, "/news", body, ct)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["title"] != "breaking" || resp["imageUrl"] != "http://images/news/abc.jpg" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	author, ok := resp["author"].(map[string]any)
	if !ok || author["userName"] != "alice" {
		t.Fatalf("expected embedded author, got %+v", resp["author"])
	}
}

func TestNewsHandler_Create_MissingImage(t *testing.T) {
	stub := &stubNewsService{
		createFn: func(ctx context.Context, input ports.CreateNewsInput) (*ports.NewsResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewNewsHandler(stub)

	body, ct := multipartBody(t, newsFields(), "", nil)
	c, _ := newMultipartContext(t, http.MethodPost, "/news", body, ct)

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestNewsHandler_Create_BadDate(t *testing.T) {
	stub := &stubNewsService{
		createFn: func(ctx context.Context, input ports.CreateNewsInput) (*ports.NewsResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewNewsHandler(stub)

	fields := newsFields()
	fields["publicationDate"] = "tomorrow-ish"
	body, ct := multipartBody(t, fields, "cover.jpg", []byte("x"))
	c, _ := newMultipartContext(t, http.MethodPost, "/news", body, ct)

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestNewsHandler_Create_RFC3339Date(t *testing.T) {
	stub := &stubNewsService{
		createFn: func(ctx context.Context, input ports.CreateNewsInput) (*ports.NewsResult, error) {
			want := time.Date(2026, 9, 1, 15, 30, 0, 0, time.UTC)
			if !input.PublicationDate.Equal(want) {
				t.Fatalf("unexpected date: %v", input.PublicationDate)
			}
			return sampleNewsResult(), nil
		},
	}
	h := NewNewsHandler(stub)

	fields := newsFields()
	fields["publicationDate"] = "2026-09-01T15:30:00Z"
	body, ct := multipartBody(t, fields, "cover.jpg", []byte("x"))
	c, rec := newMultipartContext(t, http.MethodPost, "/news", body, ct)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestNewsHandler_Update_ImageOptional(t *testing.T) {
	stub := &stubNewsService{
		updateFn: func(ctx context.Context, id int64, input ports.UpdateNewsInput) (*ports.NewsResult, error) {
			if id != 1 {
				t.Fatalf("unexpected id: %d", id)
			}
			if input.Image != nil {
				t.Fatalf("expected no image on this update")
			}
			return sampleNewsResult(), nil
		},
	}
	h := NewNewsHandler(stub)

	body, ct := multipartBody(t, newsFields(), "", nil)
	c, rec := newMultipartContext(t, http.MethodPut, "/news/1", body, ct)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestNewsHandler_Update_WithImage(t *testing.T) {
	stub := &stubNewsService{
		updateFn: func(ctx context.Context, id int64, input ports.UpdateNewsInput) (*ports.NewsResult, error) {
			if input.Image == nil || input.Image.Filename != "new.png" {
				t.Fatalf("expected replacement image, got %+v", input.Image)
			}
			return sampleNewsResult(), nil
		},
	}
	h := NewNewsHandler(stub)

	body, ct := multipartBody(t, newsFields(), "new.png", []byte("png-bytes"))
	c, rec := newMultipartContext(t, http.MethodPut, "/news/1", body, ct)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestNewsHandler_Get_NonNumericID(t *testing.T) {
	stub := &stubNewsService{
		getFn: func(ctx context.Context, id int64) (*ports.NewsResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewNewsHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/news/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.Get(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
	if he.Message != "Invalid News Id" {
		t.Fatalf("unexpected message: %v", he.Message)
	}
}

func TestNewsHandler_Get_Unknown(t *testing.T) {
	stub := &stubNewsService{
		getFn: func(ctx context.Context, id int64) (*ports.NewsResult, error) {
			return nil, domain.ErrNewsNotFound
		},
	}
	h := NewNewsHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/news/42", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("42")

	if err := h.Get(c); !errors.Is(err, domain.ErrNewsNotFound) {
		t.Fatalf("expected ErrNewsNotFound passthrough, got %v", err)
	}
}

func TestNewsHandler_List_PassesParams(t *testing.T) {
	stub := &stubNewsService{
		listFn: func(ctx context.Context, params ports.ListParams) ([]ports.NewsResult, error) {
			if params.Search != "author-1" || params.SortType != "Title" {
				t.Fatalf("unexpected params: %+v", params)
			}
			return []ports.NewsResult{*sampleNewsResult()}, nil
		},
	}
	h := NewNewsHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/news?search=author-1&sortType=Title", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 {
		t.Fatalf("expected 1 item, got %d", len(resp))
	}
}

func TestNewsHandler_Count_StoreFailure(t *testing.T) {
	stub := &stubNewsService{
		countFn: func(ctx context.Context, search string) (int, error) {
			return 0, errors.New("store down")
		},
	}
	h := NewNewsHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/news/count", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Count(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %v", err)
	}
}

func TestNewsHandler_Delete_ReturnsLastState(t *testing.T) {
	stub := &stubNewsService{
		deleteFn: func(ctx context.Context, id int64) (*ports.NewsResult, error) {
			if id != 1 {
				t.Fatalf("unexpected id: %d", id)
			}
			return sampleNewsResult(), nil
		},
	}
	h := NewNewsHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/news/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["title"] != "breaking" {
		t.Fatalf("expected last state of the record, got %+v", resp)
	}
}
