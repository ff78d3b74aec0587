package http

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"checkers/internal/core"
	"checkers/internal/processor"
	"checkers/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

const defaultRateLimit = 10 // req/sec

// Options tune the API surface
type Options struct {
	DevMode   bool
	RateLimit int // requests per second per client, doubled in dev mode
}

type HTTPHandler struct {
	proc *processor.Processor
	svc  *service.Service
}

func NewHTTPHandler(proc *processor.Processor, svc *service.Service) *HTTPHandler {
	return &HTTPHandler{proc: proc, svc: svc}
}

func NewFiberApp(proc *processor.Processor, svc *service.Service, opts Options) *fiber.App {
	h := NewHTTPHandler(proc, svc)

	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 35 * time.Second, // covers a full long poll
		IdleTimeout:  60 * time.Second,
	})

	// Global middleware (order matters)
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "${time} ${status} ${method} ${path} ${latency}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	// Health check (no rate limit)
	app.Get("/health", h.Health)

	api := app.Group("/api/v1")

	maxReq := opts.RateLimit
	if maxReq <= 0 {
		maxReq = defaultRateLimit
	}
	if opts.DevMode {
		maxReq *= 2
	}
	api.Use(limiter.New(limiter.Config{
		Max:          maxReq,
		Expiration:   1 * time.Second,
		KeyGenerator: clientKey,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(core.ErrorResponse{
				Error:   "rate limit exceeded",
				Code:    core.ErrRateLimitExceeded,
				Details: fmt.Sprintf("%d requests per second allowed", maxReq),
			})
		},
	}))

	api.Use(contentTypeValidator)
	api.Use(validationMiddleware)

	api.Post("/games", h.CreateGame)
	api.Get("/games/:gameId", requireGameID, h.GetGame)
	api.Delete("/games/:gameId", requireGameID, h.DeleteGame)
	api.Post("/games/:gameId/actions", requireGameID, h.SubmitAction)
	api.Get("/games/:gameId/board", requireGameID, h.GetBoard)

	return app
}

// clientKey prefers the first X-Forwarded-For hop over the peer address
func clientKey(c *fiber.Ctx) string {
	if xff := c.Get("X-Forwarded-For"); xff != "" {
		if idx := strings.Index(xff, ","); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}
		return xff
	}
	return c.IP()
}

// gameIDParam copies the route ID out of fiber's reusable request buffer
func gameIDParam(c *fiber.Ctx) string {
	return strings.Clone(c.Params("gameId"))
}

// customErrorHandler provides consistent error responses
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	response := core.ErrorResponse{
		Error: "internal server error",
		Code:  core.ErrInternalError,
	}

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		response.Error = e.Message

		switch code {
		case fiber.StatusNotFound:
			response.Code = core.ErrGameNotFound
		case fiber.StatusBadRequest, fiber.StatusMethodNotAllowed:
			response.Code = core.ErrInvalidRequest
		case fiber.StatusTooManyRequests:
			response.Code = core.ErrRateLimitExceeded
		}
	}

	return c.Status(code).JSON(response)
}

// statusFor maps a processor error code to an HTTP status
func statusFor(code string) int {
	switch {
	case code == core.ErrGameNotFound:
		return fiber.StatusNotFound
	case core.IsRuleError(code):
		return fiber.StatusUnprocessableEntity
	case code == core.ErrInvalidRequest, code == core.ErrInvalidLayout:
		return fiber.StatusBadRequest
	case code == core.ErrQueueUnavailable:
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

func (h *HTTPHandler) respond(c *fiber.Ctx, resp processor.ProcessorResponse, okStatus int) error {
	if !resp.Success {
		return c.Status(statusFor(resp.Error.Code)).JSON(resp.Error)
	}
	if resp.Data == nil {
		return c.SendStatus(okStatus)
	}
	return c.Status(okStatus).JSON(resp.Data)
}

// Health check endpoint
func (h *HTTPHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "healthy",
		"time":   time.Now().Unix(),
		"games":  h.svc.GameCount(),
	})
}

// CreateGame starts a game from the opening or a supplied layout
func (h *HTTPHandler) CreateGame(c *fiber.Ctx) error {
	req, ok := c.Locals("validatedBody").(*core.CreateGameRequest)
	if !ok {
		return c.Status(fiber.StatusInternalServerError).JSON(core.ErrorResponse{
			Error: "validation data missing",
			Code:  core.ErrInternalError,
		})
	}

	resp := h.proc.Submit(c.Context(), processor.NewCreateGameCommand(*req))
	return h.respond(c, resp, fiber.StatusCreated)
}

// GetGame returns the current game state. With wait=true and a version the
// request blocks until the game moves past that version or the wait times out.
func (h *HTTPHandler) GetGame(c *fiber.Ctx) error {
	gameID := gameIDParam(c)

	if c.QueryBool("wait") {
		version, err := strconv.Atoi(c.Query("version"))
		if err != nil || version < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(core.ErrorResponse{
				Error:   "invalid version",
				Code:    core.ErrInvalidRequest,
				Details: "wait requires a non-negative integer version",
			})
		}

		if err := h.waitForChange(c.Context(), gameID, version); err != nil {
			return c.Status(fiber.StatusNotFound).JSON(core.ErrorResponse{
				Error: "game not found",
				Code:  core.ErrGameNotFound,
			})
		}
	}

	resp := h.proc.Submit(c.Context(), processor.NewGetGameCommand(gameID))
	return h.respond(c, resp, fiber.StatusOK)
}

func (h *HTTPHandler) waitForChange(ctx context.Context, gameID string, version int) error {
	ch, err := h.svc.WaitForChange(ctx, gameID, version)
	if err != nil {
		return err
	}
	<-ch
	return nil
}

// SubmitAction forwards one click to the game
func (h *HTTPHandler) SubmitAction(c *fiber.Ctx) error {
	req, ok := c.Locals("validatedBody").(*core.ActionRequest)
	if !ok {
		return c.Status(fiber.StatusInternalServerError).JSON(core.ErrorResponse{
			Error: "validation data missing",
			Code:  core.ErrInternalError,
		})
	}

	cmd := processor.NewSubmitActionCommand(gameIDParam(c), *req)
	return h.respond(c, h.proc.Submit(c.Context(), cmd), fiber.StatusOK)
}

// DeleteGame removes a game and releases its long-poll clients
func (h *HTTPHandler) DeleteGame(c *fiber.Ctx) error {
	resp := h.proc.Submit(c.Context(), processor.NewDeleteGameCommand(gameIDParam(c)))
	return h.respond(c, resp, fiber.StatusNoContent)
}

// GetBoard returns ASCII representation of the board
func (h *HTTPHandler) GetBoard(c *fiber.Ctx) error {
	resp := h.proc.Submit(c.Context(), processor.NewGetBoardCommand(gameIDParam(c)))
	return h.respond(c, resp, fiber.StatusOK)
}
