package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"hockeystats-api/internal/services"
	"hockeystats-api/pkg/lambda"
)

// WelcomeMessage is the plain text body of the root route
const WelcomeMessage = "Welcome to the HockeyStats item service!"

// ItemHandler serves the add and fetch operations on the normalized request
// type, so every front (API Gateway, function URL, gin) shares one code path.
type ItemHandler struct {
	itemService services.ItemService
	logger      *logrus.Logger
}

// NewItemHandler creates a new item handler
func NewItemHandler(itemService services.ItemService, logger *logrus.Logger) *ItemHandler {
	if logger == nil {
		logger = logrus.New()
	}
	return &ItemHandler{
		itemService: itemService,
		logger:      logger,
	}
}

// Handler returns Route wrapped with request ID and request logging middleware
func (h *ItemHandler) Handler() lambda.HandlerFunc {
	return lambda.Chain(h.Route,
		lambda.WithRequestID(),
		lambda.WithRequestLogging(h.logger),
	)
}

// Route dispatches by method and path.
//
//	GET  /add?id=&name=    add from query parameters
//	POST /add              add from a JSON body
//	GET  /fetch?id=        fetch
//	GET  /                 welcome text
//	*    /?action=add|fetch same as /add and /fetch
func (h *ItemHandler) Route(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	path := req.Path
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}

	switch path {
	case "/add":
		return h.HandleAdd(ctx, req)
	case "/fetch":
		return h.HandleFetch(ctx, req)
	case "", "/":
		switch action := req.Query("action"); action {
		case "":
			return h.HandleWelcome(ctx, req)
		case "add":
			return h.HandleAdd(ctx, req)
		case "fetch":
			return h.HandleFetch(ctx, req)
		default:
			return lambda.JSONResponse(http.StatusBadRequest, ErrorResponse{Error: "Unknown action"})
		}
	default:
		return lambda.JSONResponse(http.StatusNotFound, ErrorResponse{Error: "Not found"})
	}
}

// @Summary Add an item
// @Description Upsert an item. GET reads id and name from the query string, POST from a JSON body.
// @Tags items
// @Accept json
// @Produce json
// @Param id query string false "Item ID (GET)"
// @Param name query string false "Item name (GET)"
// @Param item body services.AddItemRequest false "Item (POST)"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /add [get]
// @Router /add [post]
func (h *ItemHandler) HandleAdd(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	var addReq services.AddItemRequest

	switch req.Method {
	case http.MethodGet:
		addReq.ID = req.Query("id")
		addReq.Name = req.Query("name")
	case http.MethodPost:
		if err := json.Unmarshal(req.Body, &addReq); err != nil {
			h.logger.WithError(err).Debug("Add request body is not a JSON item")
			addReq = services.AddItemRequest{}
		}
	default:
		return methodNotAllowed()
	}

	if err := h.itemService.AddItem(ctx, &addReq); err != nil {
		if services.IsValidationError(err) {
			return lambda.JSONResponse(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		}
		return lambda.JSONResponse(http.StatusInternalServerError, ErrorResponse{Error: errorMessage(err)})
	}

	return lambda.JSONResponse(http.StatusOK, MessageResponse{Message: "Item added"})
}

// @Summary Fetch an item
// @Description Get an item by ID
// @Tags items
// @Produce json
// @Param id query string true "Item ID"
// @Success 200 {object} models.Item
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} MessageResponse
// @Failure 500 {object} ErrorResponse
// @Router /fetch [get]
func (h *ItemHandler) HandleFetch(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	if req.Method != http.MethodGet {
		return methodNotAllowed()
	}

	item, err := h.itemService.GetItem(ctx, req.Query("id"))
	if err != nil {
		if services.IsValidationError(err) {
			return lambda.JSONResponse(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		}
		return lambda.JSONResponse(http.StatusInternalServerError, ErrorResponse{Error: errorMessage(err)})
	}

	if item == nil {
		return lambda.JSONResponse(http.StatusNotFound, MessageResponse{Message: "Item not found"})
	}

	return lambda.JSONResponse(http.StatusOK, item)
}

// HandleWelcome answers the root route
func (h *ItemHandler) HandleWelcome(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		return methodNotAllowed()
	}
	return lambda.TextResponse(http.StatusOK, WelcomeMessage), nil
}

func methodNotAllowed() (*lambda.Response, error) {
	return lambda.JSONResponse(http.StatusMethodNotAllowed, ErrorResponse{Error: "Method not allowed"})
}
