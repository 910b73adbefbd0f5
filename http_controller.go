package nina

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-print"
)

// problemBody is the RFC 7807 style error payload.
type problemBody struct {
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// validationBody carries per-field validation failures.
type validationBody struct {
	Title  string           `json:"title"`
	Status int              `json:"status"`
	Errors ValidationErrors `json:"errors"`
}

// paginationHeader is serialized into the X-Pagination response header so
// clients get windowing metadata out of band.
type paginationHeader struct {
	CurrentPage int  `json:"current_page"`
	PageSize    int  `json:"page_size"`
	TotalCount  int  `json:"total_count"`
	TotalPages  int  `json:"total_pages"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

// respond translates an outcome into an HTTP response using the canonical
// status mapping.
func respond[T any](c *fiber.Ctx, out Outcome[T]) error {
	if out.IsSuccess {
		switch out.Status {
		case StatusNoContent:
			return c.SendStatus(fiber.StatusNoContent)
		default:
			return c.Status(out.Status.HTTPStatus()).JSON(out.Data)
		}
	}

	if len(out.ValidationErrors) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(validationBody{
			Title:  out.ErrorMessage,
			Status: fiber.StatusBadRequest,
			Errors: out.ValidationErrors,
		})
	}

	code := out.Status.HTTPStatus()
	return c.Status(code).JSON(problemBody{
		Title:  out.Status.String(),
		Status: code,
		Detail: out.ErrorMessage,
	})
}

func badRequestBody(c *fiber.Ctx, logger Logger, err error) error {
	logger.Error("failed to parse request body", "error", err)
	return c.Status(fiber.StatusBadRequest).JSON(problemBody{
		Title:  StatusBadRequest.String(),
		Status: fiber.StatusBadRequest,
		Detail: "The request body could not be parsed.",
	})
}

// AuthController exposes the login endpoint.
type AuthController struct {
	Service Authenticator
	Logger  Logger
	Debug   bool
}

func NewAuthController(service Authenticator, logger Logger) *AuthController {
	if logger == nil {
		logger = defLogger{}
	}
	return &AuthController{Service: service, Logger: logger}
}

// Login handles POST /api/auth/login.
func (a *AuthController) Login(c *fiber.Ctx) error {
	payload := UserLogin{}
	if err := c.BodyParser(&payload); err != nil {
		return badRequestBody(c, a.Logger, err)
	}

	return respond(c, a.Service.Login(c.UserContext(), payload))
}

// UsersController exposes the user lifecycle endpoints.
type UsersController struct {
	Service UserManager
	Logger  Logger
	Debug   bool
}

func NewUsersController(service UserManager, logger Logger) *UsersController {
	if logger == nil {
		logger = defLogger{}
	}
	return &UsersController{Service: service, Logger: logger}
}

// GetUsers handles GET /api/users. Pagination metadata travels in the
// X-Pagination header; the body is the bare item list.
func (u *UsersController) GetUsers(c *fiber.Ctx) error {
	p := NewPagination(c.QueryInt("page", 1), c.QueryInt("page_size", DefaultPageSize))

	out := u.Service.GetPage(c.UserContext(), p)
	if !out.IsSuccess {
		return respond(c, out)
	}

	page := out.Data
	meta, err := json.Marshal(paginationHeader{
		CurrentPage: page.Page,
		PageSize:    page.PageSize,
		TotalCount:  page.TotalCount,
		TotalPages:  page.TotalPages,
		HasNext:     page.HasNext(),
		HasPrevious: page.HasPrevious(),
	})
	if err == nil {
		c.Set("X-Pagination", string(meta))
	}

	return c.Status(fiber.StatusOK).JSON(page.Items)
}

// GetUserByID handles GET /api/users/:userID.
func (u *UsersController) GetUserByID(c *fiber.Ctx) error {
	return respond(c, u.Service.GetByID(c.UserContext(), paramUserID(c)))
}

// CreateUser handles POST /api/users.
func (u *UsersController) CreateUser(c *fiber.Ctx) error {
	payload := UserCreation{}
	if err := c.BodyParser(&payload); err != nil {
		return badRequestBody(c, u.Logger, err)
	}

	if u.Debug {
		fmt.Println(print.MaybePrettyJSON(payload))
	}

	return respond(c, u.Service.Create(c.UserContext(), payload))
}

// UpdateUser handles PUT /api/users/:userID.
func (u *UsersController) UpdateUser(c *fiber.Ctx) error {
	payload := UserUpdation{}
	if err := json.Unmarshal(c.Body(), &payload); err != nil {
		return badRequestBody(c, u.Logger, err)
	}

	return respond(c, u.Service.Update(c.UserContext(), paramUserID(c), payload))
}

// DeleteUser handles DELETE /api/users/:userID.
func (u *UsersController) DeleteUser(c *fiber.Ctx) error {
	return respond(c, u.Service.Delete(c.UserContext(), paramUserID(c)))
}

// paramUserID parses the :userID route parameter; anything non-numeric
// resolves to zero, which the flows reject as an invalid ID.
func paramUserID(c *fiber.Ctx) int64 {
	id, err := strconv.ParseInt(c.Params("userID"), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// RegisterRoutes mounts the API surface. The guard, when given, protects the
// mutating user routes; reads and registration stay open.
func RegisterRoutes(app fiber.Router, auth *AuthController, users *UsersController, guard ...fiber.Handler) {
	api := app.Group("/api")

	api.Post("/auth/login", auth.Login)

	usersGroup := api.Group("/users")
	usersGroup.Get("/", users.GetUsers)
	usersGroup.Get("/:userID", users.GetUserByID)
	usersGroup.Post("/", users.CreateUser)

	usersGroup.Put("/:userID", append(append([]fiber.Handler{}, guard...), users.UpdateUser)...)
	usersGroup.Delete("/:userID", append(append([]fiber.Handler{}, guard...), users.DeleteUser)...)
}

// NewErrorHandler converts unhandled errors into a generic 500 problem
// response; internal detail stays in the logs.
func NewErrorHandler(logger Logger) fiber.ErrorHandler {
	if logger == nil {
		logger = defLogger{}
	}

	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		if fe, ok := err.(*fiber.Error); ok {
			code = fe.Code
		}

		detail := MsgInternalError
		if code != fiber.StatusInternalServerError {
			detail = err.Error()
		} else {
			logger.Error("unhandled request error", "error", err, "path", c.Path())
		}

		return c.Status(code).JSON(problemBody{
			Title:  fiberStatusTitle(code),
			Status: code,
			Detail: detail,
		})
	}
}

func fiberStatusTitle(code int) string {
	switch code {
	case fiber.StatusNotFound:
		return StatusNotFound.String()
	case fiber.StatusBadRequest:
		return StatusBadRequest.String()
	case fiber.StatusUnauthorized:
		return StatusUnauthorized.String()
	case fiber.StatusConflict:
		return StatusConflict.String()
	default:
		return StatusInternalError.String()
	}
}

