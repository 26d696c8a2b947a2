package handler

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/newsdesk/news-api/internal/api/metrics"
	"github.com/newsdesk/news-api/internal/core/ports"
)

type NewsHandler struct {
	news ports.NewsService
}

func NewNewsHandler(news ports.NewsService) *NewsHandler {
	return &NewsHandler{news: news}
}

// newsForm carries the multipart fields shared by create and update. The
// image file is read separately via FormFile.
type newsForm struct {
	Title           string `form:"title" validate:"required,max=100"`
	Description     string `form:"description" validate:"required,max=1500"`
	AuthorID        string `form:"authorId" validate:"required"`
	PublicationDate string `form:"publicationDate" validate:"required"`
}

type authorSummaryResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	UserName  string `json:"userName"`
	Email     string `json:"email"`
}

type newsResponse struct {
	ID              int64                 `json:"id"`
	Title           string                `json:"title"`
	Description     string                `json:"description"`
	ImageURL        string                `json:"imageUrl"`
	PublicationDate time.Time             `json:"publicationDate"`
	CreationDate    time.Time             `json:"creationDate"`
	Author          authorSummaryResponse `json:"author"`
}

func toNewsResponse(r *ports.NewsResult) newsResponse {
	return newsResponse{
		ID:              r.News.ID,
		Title:           r.News.Title,
		Description:     r.News.Description,
		ImageURL:        r.News.ImageURL,
		PublicationDate: r.News.PublicationDate,
		CreationDate:    r.News.CreationDate,
		Author: authorSummaryResponse{
			ID:        r.Author.ID,
			FirstName: r.Author.FirstName,
			LastName:  r.Author.LastName,
			UserName:  r.Author.UserName,
			Email:     r.Author.Email,
		},
	}
}

// bindNewsForm binds and validates the multipart text fields, parsing the
// publication date. Dates are accepted as "2006-01-02" or RFC 3339.
func bindNewsForm(c echo.Context) (*newsForm, time.Time, error) {
	var form newsForm
	if err := c.Bind(&form); err != nil {
		return nil, time.Time{}, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&form); err != nil {
		return nil, time.Time{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	pub, err := time.Parse("2006-01-02", form.PublicationDate)
	if err != nil {
		pub, err = time.Parse(time.RFC3339, form.PublicationDate)
	}
	if err != nil {
		return nil, time.Time{}, echo.NewHTTPError(http.StatusBadRequest, "publicationdate must be a valid date")
	}
	return &form, pub, nil
}

// openUpload turns a multipart file header into an ImageUpload. The caller
// must close the returned file.
func openUpload(fh *multipart.FileHeader) (ports.ImageUpload, multipart.File, error) {
	src, err := fh.Open()
	if err != nil {
		return ports.ImageUpload{}, nil, echo.NewHTTPError(http.StatusBadRequest, "unable to read image")
	}
	return ports.ImageUpload{
		Filename: fh.Filename,
		Size:     fh.Size,
		Content:  src,
	}, src, nil
}

// newsID parses the path id. Non-numeric ids behave like unknown ones.
func newsID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid News Id")
	}
	return id, nil
}

// Create publishes a news item.
//
// @Summary      Publish a news item
// @Tags         news
// @Accept       multipart/form-data
// @Produce      json
// @Param        title            formData  string  true  "Title (max 100 chars)"
// @Param        description      formData  string  true  "Description (max 1500 chars)"
// @Param        authorId         formData  string  true  "Owning author id"
// @Param        publicationDate  formData  string  true  "Date within the next 7 days"
// @Param        image            formData  file    true  "Cover image (jpg, jpeg or png, under 2MB)"
// @Success      200  {object}  newsResponse
// @Failure      400  {object}  map[string]string
// @Router       /news [post]
func (h *NewsHandler) Create(c echo.Context) error {
	form, pub, err := bindNewsForm(c)
	if err != nil {
		return err
	}

	fh, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "image is required")
	}
	upload, src, err := openUpload(fh)
	if err != nil {
		return err
	}
	defer src.Close()

	result, err := h.news.Create(c.Request().Context(), ports.CreateNewsInput{
		Title:           form.Title,
		Description:     form.Description,
		AuthorID:        form.AuthorID,
		PublicationDate: pub,
		Image:           upload,
	})
	if err != nil {
		return err
	}

	metrics.NewsPublishedTotal.Inc()
	return c.JSON(http.StatusOK, toNewsResponse(result))
}

// List returns a filtered, sorted page of news items.
//
// @Summary      List news
// @Tags         news
// @Produce      json
// @Param        search      query  string  false  "Title/description substring, or exact author id"
// @Param        sortType    query  string  false  "Title, Description or PublicationDate"
// @Param        sortOrder   query  string  false  "asc or desc"
// @Param        pageSize    query  int     false  "Page size (1-20, default 5)"
// @Param        pageNumber  query  int     false  "Page number (default 1)"
// @Success      200  {array}  newsResponse
// @Router       /news [get]
func (h *NewsHandler) List(c echo.Context) error {
	results, err := h.news.List(c.Request().Context(), listParams(c))
	if err != nil {
		return err
	}

	out := make([]newsResponse, 0, len(results))
	for i := range results {
		out = append(out, toNewsResponse(&results[i]))
	}
	return c.JSON(http.StatusOK, out)
}

// Count returns the number of news items matching the search filter.
//
// @Summary      Count news
// @Tags         news
// @Produce      json
// @Param        search  query  string  false  "Title/description substring, or exact author id"
// @Success      200  {integer}  int
// @Failure      500  {object}   map[string]string
// @Router       /news/count [get]
func (h *NewsHandler) Count(c echo.Context) error {
	n, err := h.news.Count(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
	}
	return c.JSON(http.StatusOK, n)
}

// Get returns a single news item with its author embedded.
//
// @Summary      Get a news item by id
// @Tags         news
// @Produce      json
// @Param        id  path  int  true  "News id"
// @Success      200  {object}  newsResponse
// @Failure      400  {object}  map[string]string
// @Router       /news/{id} [get]
func (h *NewsHandler) Get(c echo.Context) error {
	id, err := newsID(c)
	if err != nil {
		return err
	}
	result, err := h.news.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toNewsResponse(result))
}

// Update replaces a news item; a new image is optional.
//
// @Summary      Update a news item
// @Tags         news
// @Accept       multipart/form-data
// @Produce      json
// @Param        id               path      int     true   "News id"
// @Param        title            formData  string  true   "Title (max 100 chars)"
// @Param        description      formData  string  true   "Description (max 1500 chars)"
// @Param        authorId         formData  string  true   "Owning author id"
// @Param        publicationDate  formData  string  true   "Date within the next 7 days"
// @Param        image            formData  file    false  "Replacement cover image"
// @Success      200  {object}  newsResponse
// @Failure      400  {object}  map[string]string
// @Router       /news/{id} [put]
func (h *NewsHandler) Update(c echo.Context) error {
	id, err := newsID(c)
	if err != nil {
		return err
	}
	form, pub, err := bindNewsForm(c)
	if err != nil {
		return err
	}

	input := ports.UpdateNewsInput{
		Title:           form.Title,
		Description:     form.Description,
		AuthorID:        form.AuthorID,
		PublicationDate: pub,
	}

	if fh, err := c.FormFile("image"); err == nil {
		upload, src, err := openUpload(fh)
		if err != nil {
			return err
		}
		defer src.Close()
		input.Image = &upload
	} else if !errors.Is(err, http.ErrMissingFile) {
		return echo.NewHTTPError(http.StatusBadRequest, "unable to read image")
	}

	result, err := h.news.Update(c.Request().Context(), id, input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toNewsResponse(result))
}

// Delete removes a news item and returns its last state.
//
// @Summary      Delete a news item
// @Tags         news
// @Produce      json
// @Param        id  path  int  true  "News id"
// @Success      200  {object}  newsResponse
// @Failure      400  {object}  map[string]string
// @Router       /news/{id} [delete]
func (h *NewsHandler) Delete(c echo.Context) error {
	id, err := newsID(c)
	if err != nil {
		return err
	}
	result, err := h.news.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}

	metrics.NewsDeletedTotal.Inc()
	return c.JSON(http.StatusOK, toNewsResponse(result))
}
