package server

import (
	"errors"

	"forumapi/internal/middleware"
	"forumapi/internal/models"
	"forumapi/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// domainMessages maps validation domain codes to the client-facing messages.
// Unknown codes are treated as server errors so internals never leak.
var domainMessages = map[string]string{
	validation.ErrRegisterUserMissingProperty: "tidak dapat membuat user baru karena properti yang dibutuhkan tidak ada",
	validation.ErrRegisterUserWrongType:       "tidak dapat membuat user baru karena tipe data tidak sesuai",
	validation.ErrRegisterUserUsernameTooLong: "tidak dapat membuat user baru karena karakter username melebihi batas limit",
	validation.ErrRegisterUserUsernameIllegal: "tidak dapat membuat user baru karena username mengandung karakter terlarang",

	validation.ErrLoginUserMissingProperty: "harus mengirimkan username dan password",
	validation.ErrLoginUserWrongType:       "username dan password harus string",

	validation.ErrAddThreadMissingProperty: "Need payload contain title and body of thread",
	validation.ErrAddThreadWrongType:       "Need payload contain title as string and body as string",

	validation.ErrAddCommentMissingProperty: "Need payload contain content of comment",
	validation.ErrAddCommentWrongType:       "Need payload contain content as string",

	validation.ErrAddReplyMissingProperty: "Need payload contain content of reply",
	validation.ErrAddReplyWrongType:       "Need payload contain content as string",

	validation.ErrRefreshAuthMissingToken: "harus mengirimkan token refresh",
	validation.ErrRefreshAuthWrongType:    "refresh token harus string",
	validation.ErrDeleteAuthMissingToken:  "harus mengirimkan token refresh",
	validation.ErrDeleteAuthWrongType:     "refresh token harus string",
}

const internalErrorMessage = "terjadi kegagalan pada server kami"

// respondSuccess writes the success envelope with the given status code.
func respondSuccess(c *fiber.Ctx, status int, data any) error {
	body := fiber.Map{"status": "success"}
	if data != nil {
		body["data"] = data
	}
	return c.Status(status).JSON(body)
}

// respondError translates an application error into the fail/error envelope.
func respondError(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if !errors.As(err, &appErr) {
		appErr = models.NewInternalError(err)
	}

	if message, ok := domainMessages[appErr.Code]; ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "fail",
			"message": message,
		})
	}

	var status int
	switch appErr.Code {
	case models.CodeInvariant:
		status = fiber.StatusBadRequest
	case models.CodeAuthentication:
		status = fiber.StatusUnauthorized
	case models.CodeAuthorization:
		status = fiber.StatusForbidden
	case models.CodeNotFound:
		status = fiber.StatusNotFound
	default:
		middleware.Logger.ErrorContext(c.UserContext(), "unhandled server error",
			"code", appErr.Code, "error", appErr.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": internalErrorMessage,
		})
	}

	return c.Status(status).JSON(fiber.Map{
		"status":  "fail",
		"message": appErr.Message,
	})
}

// errorHandler is the Fiber app-level fallback for errors that escape the
// handlers.
func errorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) && fiberErr.Code < fiber.StatusInternalServerError {
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"status":  "fail",
			"message": fiberErr.Message,
		})
	}
	return respondError(c, err)
}
