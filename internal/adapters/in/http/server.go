package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/application/usecases/queries"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/services"
	"courier/internal/core/ports"
	"courier/internal/generated/servers"
	"courier/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	loginHandler         commands.LoginCommandHandler
	logoutHandler        commands.LogoutCommandHandler
	acceptOrderHandler   commands.AcceptOrderCommandHandler
	completeOrderHandler commands.CompleteOrderCommandHandler

	// Query handlers
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler
	getOrderHandler         queries.GetOrderQueryHandler

	// Domain services
	estimator  services.DeliveryEstimator
	directions services.DirectionsBuilder
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	loginHandler commands.LoginCommandHandler,
	logoutHandler commands.LogoutCommandHandler,
	acceptOrderHandler commands.AcceptOrderCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
) *Server {
	return &Server{
		loginHandler:            loginHandler,
		logoutHandler:           logoutHandler,
		acceptOrderHandler:      acceptOrderHandler,
		completeOrderHandler:    completeOrderHandler,
		getPendingOrdersHandler: getPendingOrdersHandler,
		getOrderHandler:         getOrderHandler,
		estimator:               services.NewDeliveryEstimator(),
		directions:              services.NewDirectionsBuilder(),
	}
}

// CreateSession handles POST /api/v1/session - logs the courier in.
func (s *Server) CreateSession(ctx echo.Context) error {
	var credentials servers.Credentials
	if err := ctx.Bind(&credentials); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewLoginCommand(credentials.Username, credentials.Password)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid credentials: " + err.Error(),
		})
	}

	if handleErr := s.loginHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, commands.ErrInvalidCredentials) {
			return ctx.JSON(http.StatusUnauthorized, servers.Error{
				Code:    http.StatusUnauthorized,
				Message: "Username or password is incorrect",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to log in",
		})
	}

	return ctx.JSON(http.StatusOK, servers.Session{
		Username: strings.ToLower(cmd.Username()),
	})
}

// DeleteSession handles DELETE /api/v1/session - logs the courier out.
func (s *Server) DeleteSession(ctx echo.Context) error {
	cmd := commands.NewLogoutCommand()

	if err := s.logoutHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to log out",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrders handles GET /api/v1/orders - lists the working set.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetPendingOrdersQuery()

	response, err := s.getPendingOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	if response.State == ports.Failed {
		return ctx.JSON(http.StatusServiceUnavailable, servers.Error{
			Code:    http.StatusServiceUnavailable,
			Message: "Failed to load orders",
		})
	}

	orders := make([]servers.OrderSummary, len(response.Orders))
	for i, summary := range response.Orders {
		orders[i] = servers.OrderSummary{
			Id:           summary.ID,
			CustomerName: summary.CustomerName,
			Address:      summary.Address,
			Status:       servers.OrderSummaryStatus(summary.Status.String()),
			ItemCount:    summary.ItemCount,
			Total:        summary.Total,
			CreatedAt:    summary.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, servers.OrderList{
		Loading: response.State == ports.Loading,
		Orders:  orders,
	})
}

// GetOrderById handles GET /api/v1/orders/{orderId} - order detail.
func (s *Server) GetOrderById(ctx echo.Context, orderId servers.OrderId) error {
	response, httpErr := s.fetchOrder(ctx, orderId)
	if httpErr != nil {
		return httpErr
	}

	return ctx.JSON(http.StatusOK, s.toOrderResponse(response))
}

// AcceptOrder handles POST /api/v1/orders/{orderId}/accept.
func (s *Server) AcceptOrder(ctx echo.Context, orderId servers.OrderId) error {
	orderID, err := kernel.NewOrderID(orderId)
	if err != nil {
		return s.orderNotFound(ctx)
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID)
	if err != nil {
		return s.orderNotFound(ctx)
	}

	if handleErr := s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.transitionError(ctx, handleErr, "accepted")
	}

	response, httpErr := s.fetchOrder(ctx, orderId)
	if httpErr != nil {
		return httpErr
	}

	return ctx.JSON(http.StatusOK, s.toOrderResponse(response))
}

// CompleteOrder handles POST /api/v1/orders/{orderId}/complete.
func (s *Server) CompleteOrder(ctx echo.Context, orderId servers.OrderId) error {
	orderID, err := kernel.NewOrderID(orderId)
	if err != nil {
		return s.orderNotFound(ctx)
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID)
	if err != nil {
		return s.orderNotFound(ctx)
	}

	if handleErr := s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.transitionError(ctx, handleErr, "completed")
	}

	response, httpErr := s.fetchOrder(ctx, orderId)
	if httpErr != nil {
		return httpErr
	}

	return ctx.JSON(http.StatusOK, s.toOrderResponse(response))
}

// GetOrderDirections handles GET /api/v1/orders/{orderId}/directions.
func (s *Server) GetOrderDirections(ctx echo.Context, orderId servers.OrderId) error {
	response, httpErr := s.fetchOrder(ctx, orderId)
	if httpErr != nil {
		return httpErr
	}

	address, err := kernel.NewAddress(response.Address)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to build directions link",
		})
	}

	url, err := s.directions.URL(address)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to build directions link",
		})
	}

	return ctx.JSON(http.StatusOK, servers.Directions{Url: url})
}

// fetchOrder loads one order through the detail query, translating an
// unknown id into a 404 response. The returned error, when non-nil, is the
// already-written echo response.
func (s *Server) fetchOrder(ctx echo.Context, orderId string) (queries.GetOrderQueryResponse, error) {
	orderID, err := kernel.NewOrderID(orderId)
	if err != nil {
		return queries.GetOrderQueryResponse{}, s.orderNotFound(ctx)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return queries.GetOrderQueryResponse{}, s.orderNotFound(ctx)
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return queries.GetOrderQueryResponse{}, s.orderNotFound(ctx)
		}
		return queries.GetOrderQueryResponse{}, ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve order",
		})
	}

	return response, nil
}

func (s *Server) toOrderResponse(response queries.GetOrderQueryResponse) servers.Order {
	items := make([]servers.OrderItem, len(response.Items))
	for i, item := range response.Items {
		items[i] = servers.OrderItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
			Subtotal: item.Subtotal,
		}
	}

	// The window is best effort: a zero clock cannot happen here.
	window, _ := s.estimator.Window(time.Now())

	return servers.Order{
		Id:            response.ID,
		CustomerName:  response.CustomerName,
		CustomerPhone: response.CustomerPhone,
		Address:       response.Address,
		Status:        servers.OrderStatus(response.Status.String()),
		Items:         items,
		Total:         response.Total,
		CreatedAt:     response.CreatedAt,
		DeliveryWindow: servers.DeliveryWindow{
			From: window.From,
			To:   window.To,
		},
	}
}

func (s *Server) orderNotFound(ctx echo.Context) error {
	return ctx.JSON(http.StatusNotFound, servers.Error{
		Code:    http.StatusNotFound,
		Message: "Order not found",
	})
}

func (s *Server) transitionError(ctx echo.Context, err error, action string) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return s.orderNotFound(ctx)
	}
	if errors.Is(err, errs.ErrValueIsInvalid) {
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    http.StatusConflict,
			Message: "Order cannot be " + action + " in its current status",
		})
	}
	return ctx.JSON(http.StatusInternalServerError, servers.Error{
		Code:    http.StatusInternalServerError,
		Message: "Failed to update order",
	})
}
