package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/newsdesk/news-api/internal/api/metrics"
	"github.com/newsdesk/news-api/internal/core/ports"
)

const (
	defaultPageSize   = 5
	defaultPageNumber = 1
)

type AuthorHandler struct {
	authors ports.AuthorService
}

func NewAuthorHandler(authors ports.AuthorService) *AuthorHandler {
	return &AuthorHandler{authors: authors}
}

type registerRequest struct {
	FirstName string `json:"firstName" validate:"required,min=3,max=20"`
	LastName  string `json:"lastName" validate:"required,min=3,max=20"`
	UserName  string `json:"userName" validate:"required,min=3,max=20"`
	Email     string `json:"email" validate:"required,email,max=128"`
	Password  string `json:"password" validate:"required,min=6,max=256"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type addRoleRequest struct {
	UserID   string `json:"userId" validate:"required"`
	RoleName string `json:"roleName" validate:"required"`
}

type updateAuthorRequest struct {
	FirstName string `json:"firstName" validate:"required,min=3,max=20"`
	LastName  string `json:"lastName" validate:"required,min=3,max=20"`
	UserName  string `json:"userName" validate:"required,min=3,max=20"`
	Email     string `json:"email" validate:"required,email,max=128"`
}

// authorResponse is the credential payload returned by every author
// endpoint. Token and ExpiresOn are zero for operations that do not issue
// a credential.
type authorResponse struct {
	ID              string    `json:"id"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	UserName        string    `json:"userName"`
	Email           string    `json:"email"`
	Roles           []string  `json:"roles"`
	IsAuthenticated bool      `json:"isAuthenticated"`
	Token           string    `json:"token"`
	ExpiresOn       time.Time `json:"expiresOn"`
	Message         string    `json:"message"`
}

func toAuthorResponse(r *ports.AuthorResult, message string) authorResponse {
	roles := r.Roles
	if roles == nil {
		roles = []string{}
	}
	return authorResponse{
		ID:              r.Author.ID,
		FirstName:       r.Author.FirstName,
		LastName:        r.Author.LastName,
		UserName:        r.Author.UserName,
		Email:           r.Author.Email,
		Roles:           roles,
		IsAuthenticated: r.Token != "",
		Token:           r.Token,
		ExpiresOn:       r.ExpiresOn,
		Message:         message,
	}
}

// listParams reads the shared listing query parameters, applying the
// documented defaults when a value is absent or malformed.
func listParams(c echo.Context) ports.ListParams {
	pageSize, err := strconv.Atoi(c.QueryParam("pageSize"))
	if err != nil {
		pageSize = defaultPageSize
	}
	pageNumber, err := strconv.Atoi(c.QueryParam("pageNumber"))
	if err != nil {
		pageNumber = defaultPageNumber
	}
	return ports.ListParams{
		Search:     c.QueryParam("search"),
		SortType:   c.QueryParam("sortType"),
		SortOrder:  c.QueryParam("sortOrder"),
		PageSize:   pageSize,
		PageNumber: pageNumber,
	}
}

// Register creates an author account and returns its first credential.
//
// @Summary      Register a new author
// @Tags         authors
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      200   {object}  authorResponse
// @Failure      400   {object}  map[string]string
// @Router       /authors/register [post]
func (h *AuthorHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authors.Register(c.Request().Context(), ports.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		UserName:  req.UserName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.Inc()
	return c.JSON(http.StatusOK, toAuthorResponse(result, "User created successfully"))
}

// Login authenticates an author and returns a fresh credential.
//
// @Summary      Login
// @Tags         authors
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authorResponse
// @Failure      400   {object}  map[string]string
// @Router       /authors/login [post]
func (h *AuthorHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authors.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, toAuthorResponse(result, "Token generated successfully"))
}

// AddRole grants a role to an author and echoes the request back.
//
// @Summary      Grant a role to an author
// @Tags         authors
// @Accept       json
// @Produce      json
// @Param        body  body      addRoleRequest  true  "User id and role name"
// @Success      200   {object}  addRoleRequest
// @Failure      400   {object}  map[string]string
// @Security     BearerAuth
// @Router       /authors/addrole [post]
func (h *AuthorHandler) AddRole(c echo.Context) error {
	var req addRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.authors.AddRole(c.Request().Context(), req.UserID, req.RoleName); err != nil {
		return err
	}

	metrics.RoleGrantsTotal.WithLabelValues(req.RoleName).Inc()
	return c.JSON(http.StatusOK, req)
}

// GetAuthors returns a filtered, sorted page of authors, each carrying a
// freshly minted credential.
//
// @Summary      List authors
// @Tags         authors
// @Produce      json
// @Param        search      query  string  false  "Substring filter"
// @Param        sortType    query  string  false  "FirstName, LastName, Email or UserName"
// @Param        sortOrder   query  string  false  "asc or desc"
// @Param        pageSize    query  int     false  "Page size (1-20, default 5)"
// @Param        pageNumber  query  int     false  "Page number (default 1)"
// @Success      200  {array}  authorResponse
// @Router       /authors/getauthors [get]
func (h *AuthorHandler) GetAuthors(c echo.Context) error {
	results, err := h.authors.ListAuthors(c.Request().Context(), listParams(c))
	if err != nil {
		return err
	}

	out := make([]authorResponse, 0, len(results))
	for i := range results {
		out = append(out, toAuthorResponse(&results[i], ""))
	}
	return c.JSON(http.StatusOK, out)
}

// Count returns the number of authors matching the search filter.
//
// @Summary      Count authors
// @Tags         authors
// @Produce      json
// @Param        search  query  string  false  "Substring filter"
// @Success      200  {integer}  int
// @Failure      500  {object}   map[string]string
// @Router       /authors/count [get]
func (h *AuthorHandler) Count(c echo.Context) error {
	n, err := h.authors.CountAuthors(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
	}
	return c.JSON(http.StatusOK, n)
}

// GetAuthor returns a single author with a freshly minted credential.
//
// @Summary      Get an author by id
// @Tags         authors
// @Produce      json
// @Param        id  path  string  true  "Author id"
// @Success      200  {object}  authorResponse
// @Failure      400  {object}  map[string]string
// @Router       /authors/getauthor/{id} [get]
func (h *AuthorHandler) GetAuthor(c echo.Context) error {
	result, err := h.authors.GetAuthorByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAuthorResponse(result, ""))
}

// UpdateAuthor replaces the profile fields of an author.
//
// @Summary      Update an author profile
// @Tags         authors
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "Author id"
// @Param        body  body  updateAuthorRequest  true  "Profile fields"
// @Success      200  {object}  authorResponse
// @Failure      400  {object}  map[string]string
// @Security     BearerAuth
// @Router       /authors/updateauthor/{id} [put]
func (h *AuthorHandler) UpdateAuthor(c echo.Context) error {
	var req updateAuthorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authors.UpdateAuthor(c.Request().Context(), c.Param("id"), ports.UpdateAuthorInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		UserName:  req.UserName,
		Email:     req.Email,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAuthorResponse(result, "User updated successfully"))
}

// DeleteAuthor removes an author account and their news items.
//
// @Summary      Delete an author
// @Tags         authors
// @Produce      json
// @Param        id  path  string  true  "Author id"
// @Success      200  {object}  authorResponse
// @Failure      400  {object}  map[string]string
// @Security     BearerAuth
// @Router       /authors/deleteauthor/{id} [delete]
func (h *AuthorHandler) DeleteAuthor(c echo.Context) error {
	result, err := h.authors.DeleteAuthor(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAuthorResponse(result, "User deleted successfully"))
}
