package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"lunchbox/internal/core/application/usecases/commands"
	"lunchbox/internal/core/application/usecases/queries"
	"lunchbox/internal/core/domain/model/kernel"
	"lunchbox/internal/core/domain/model/order"
	"lunchbox/internal/core/domain/model/payment"
	"lunchbox/internal/core/domain/services"
	"lunchbox/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Handlers groups the use cases the server exposes.
type Handlers struct {
	CreateOrder        commands.CreateOrderCommandHandler
	ChangeOrderStatus  commands.ChangeOrderStatusCommandHandler
	RegisterPayment    commands.RegisterPaymentCommandHandler
	ConfirmPayment     commands.ConfirmPaymentCommandHandler
	RefusePayment      commands.RefusePaymentCommandHandler
	CreateMenuItem     commands.CreateMenuItemCommandHandler
	SetMenuItemActive  commands.SetMenuItemActiveCommandHandler
	SetDateAvailable   commands.SetDateAvailabilityCommandHandler
	SetWeeklyAvailable commands.SetWeeklyAvailabilityCommandHandler
	ResetDefaultMenu   commands.ResetDefaultMenuCommandHandler
	CreateSizeTier     commands.CreateSizeTierCommandHandler
	SetStrategy        commands.SetPricingStrategyCommandHandler
	ConfigurePricing   commands.ConfigurePricingCommandHandler

	GetQuote      queries.GetQuoteQueryHandler
	GetMenu       queries.GetMenuQueryHandler
	GetOrder      queries.GetOrderQueryHandler
	GetOpenOrders queries.GetOpenOrdersQueryHandler
	GetPayment    queries.GetPaymentQueryHandler
}

// Server maps HTTP requests onto commands and queries.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

func NewServer(h Handlers, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{h: h, logger: logger.With("component", "http")}
}

// Register mounts every route on e.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	api := e.Group("/api/v1")

	api.POST("/quote", s.Quote)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/open", s.GetOpenOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/status", s.ChangeOrderStatus)
	api.GET("/orders/:id/payment", s.GetPayment)
	api.PUT("/orders/:id/payment", s.RegisterPayment)
	api.POST("/orders/:id/payment/confirm", s.ConfirmPayment)
	api.POST("/orders/:id/payment/refuse", s.RefusePayment)

	api.GET("/menu", s.GetMenu)
	api.POST("/menu/items", s.CreateMenuItem)
	api.PUT("/menu/items/:id/active", s.SetMenuItemActive)
	api.PUT("/menu/items/:id/availability/dates/:date", s.SetDateAvailability)
	api.PUT("/menu/items/:id/availability/weekdays/:weekday", s.SetWeeklyAvailability)
	api.POST("/menu/reset", s.ResetDefaultMenu)

	api.POST("/sizes", s.CreateSizeTier)
	api.PUT("/pricing/strategy", s.SetPricingStrategy)
	api.PUT("/pricing/config", s.ConfigurePricing)
}

// Quote handles POST /api/v1/quote.
func (s *Server) Quote(c echo.Context) error {
	var req QuoteRequest
	if err := c.Bind(&req); err != nil {
		return s.badBody(c)
	}

	lines, err := parseLines(req.Items)
	if err != nil {
		return s.fail(c, err)
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetQuoteQuery(lines, req.Size, date)
	if err != nil {
		return s.fail(c, err)
	}

	breakdown, err := s.h.GetQuote.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toQuote(breakdown))
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return s.badBody(c)
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return s.fail(c, errs.NewValueIsRequiredErrorWithCause("customer id", err))
	}
	lines, err := parseLines(req.Items)
	if err != nil {
		return s.fail(c, err)
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return s.fail(c, err)
	}
	delivery, err := parseDelivery(req.Delivery)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), customerID, lines, req.Size, date, delivery)
	if err != nil {
		return s.fail(c, err)
	}

	o, err := s.h.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, fromAggregate(o))
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return s.fail(c, err)
	}

	view, err := s.h.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, fromView(view))
}

// GetOpenOrders handles GET /api/v1/orders/open, the kitchen queue.
func (s *Server) GetOpenOrders(c echo.Context) error {
	views, err := s.h.GetOpenOrders.Handle(c.Request().Context(), queries.NewGetOpenOrdersQuery())
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]Order, len(views))
	for i, v := range views {
		response[i] = fromView(v)
	}
	return c.JSON(http.StatusOK, response)
}

// ChangeOrderStatus handles POST /api/v1/orders/:id/status.
func (s *Server) ChangeOrderStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}
	var req ChangeStatusRequest
	if err := c.Bind(&req); err != nil {
		return s.badBody(c)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, req.Status, req.Reason)
	if err != nil {
		return s.fail(c, err)
	}

	o, err := s.h.ChangeOrderStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, fromAggregate(o))
}

// GetPayment handles GET /api/v1/orders/:id/payment.
func (s *Server) GetPayment(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetPaymentQuery(id)
	if err != nil {
		return s.fail(c, err)
	}

	view, err := s.h.GetPayment.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, fromPaymentView(view))
}

// RegisterPayment handles PUT /api/v1/orders/:id/payment. It creates the
// payment of the order or edits it while pending.
func (s *Server) RegisterPayment(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}
	var req PaymentRequest
	if err := c.Bind(&req); err != nil {
		return s.badBody(c)
	}

	amount, err := optionalMoney(req.Amount)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewRegisterPaymentCommand(kernel.NewUUID(), id, req.Method, amount, payment.Details{
		Reference:   req.Reference,
		Note:        req.Note,
		PixTxID:     req.PixTxID,
		CardPresent: req.CardPresent,
	})
	if err != nil {
		return s.fail(c, err)
	}

	p, err := s.h.RegisterPayment.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, fromPayment(p))
}

// ConfirmPayment handles POST /api/v1/orders/:id/payment/confirm.
func (s *Server) ConfirmPayment(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewConfirmPaymentCommand(id)
	if err != nil {
		return s.fail(c, err)
	}

	if err := s.h.ConfirmPayment.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// RefusePayment handles POST /api/v1/orders/:id/payment/refuse.
func (s *Server) RefusePayment(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}
	var req RefusePaymentRequest
	if err := c.Bind(&req); err != nil {
		return s.badBody(c)
	}

	cmd, err := commands.NewRefusePaymentCommand(id, req.Reason)
	if err != nil {
		return s.fail(c, err)
	}

	if err := s.h.RefusePayment.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetMenu handles GET /api/v1/menu?category=&date=.
func (s *Server) GetMenu(c echo.Context) error {
	date, err := parseDate(c.QueryParam("date"))
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetMenuQuery(c.QueryParam("category"), date)
	if err != nil {
		return s.fail(c, err)
	}

	res, err := s.h.GetMenu.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, fromMenu(res, date != nil))
}

// CreateMenuItem handles POST /api/v1/menu/items.
func (s *Server) CreateMenuItem(c echo.Context) error {
	var req CreateMenuItemRequest
	if err := c.Bind(&req); err != nil {
		return s.badBody(c)
	}

	price, err := kernel.NewMoney(req.Price)
	if err != nil {
		return s.fail(c, err)
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	cmd, err := commands.NewCreateMenuItemCommand(kernel.NewUUID(), req.Name, req.Category, price, commands.MenuItemParams{
		Description:  req.Description,
		Active:       active,
		DisplayOrder: req.DisplayOrder,
		ImageURL:     req.ImageURL,
	})
	if err != nil {
		return s.fail(c, err)
	}

	item, err := s.h.CreateMenuItem.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, fromItem(item))
}

// SetMenuItemActive handles PUT /api/v1/menu/items/:id/active.
func (s *Server) SetMenuItemActive(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}
	var req SetActiveRequest
	if err := c.Bind(&req); err != nil {
		return s.badBody(c)
	}

	cmd, err := commands.NewSetMenuItemActiveCommand(id, req.Active)
	if err != nil {
		return s.fail(c, err)
	}

	if err := s.h.SetMenuItemActive.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// SetDateAvailability handles PUT /api/v1/menu/items/:id/availability/dates/:date.
func (s *Server) SetDateAvailability(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}
	date, err := kernel.ParseDate(c.Param("date"))
	if err != nil {
		return s.fail(c, err)
	}
	var req DateAvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return s.badBody(c)
	}

	cmd, err := commands.NewSetDateAvailabilityCommand(id, date, req.Available, req.MaxQty)
	if err != nil {
		return s.fail(c, err)
	}

	if err := s.h.SetDateAvailable.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// SetWeeklyAvailability handles PUT /api/v1/menu/items/:id/availability/weekdays/:weekday,
// where weekday is 1 (Monday) to 7 (Sunday).
func (s *Server) SetWeeklyAvailability(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}
	weekday, err := strconv.Atoi(c.Param("weekday"))
	if err != nil {
		return s.fail(c, errs.NewValueIsInvalidErrorWithCause("weekday", err))
	}
	var req WeeklyAvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return s.badBody(c)
	}

	cmd, err := commands.NewSetWeeklyAvailabilityCommand(id, weekday, req.Available)
	if err != nil {
		return s.fail(c, err)
	}

	if err := s.h.SetWeeklyAvailable.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ResetDefaultMenu handles POST /api/v1/menu/reset.
func (s *Server) ResetDefaultMenu(c echo.Context) error {
	res, err := s.h.ResetDefaultMenu.Handle(c.Request().Context(), commands.NewResetDefaultMenuCommand())
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, ResetResult{Restored: res.Restored, Deactivated: res.Deactivated})
}

// CreateSizeTier handles POST /api/v1/sizes.
func (s *Server) CreateSizeTier(c echo.Context) error {
	var req CreateSizeTierRequest
	if err := c.Bind(&req); err != nil {
		return s.badBody(c)
	}

	price, err := kernel.NewMoney(req.BasePrice)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCreateSizeTierCommand(kernel.NewUUID(), req.Name, price, req.MaxMixes, req.MaxSides)
	if err != nil {
		return s.fail(c, err)
	}

	tier, err := s.h.CreateSizeTier.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, fromTier(tier))
}

// SetPricingStrategy handles PUT /api/v1/pricing/strategy.
func (s *Server) SetPricingStrategy(c echo.Context) error {
	var req StrategyRequest
	if err := c.Bind(&req); err != nil {
		return s.badBody(c)
	}

	cmd, err := commands.NewSetPricingStrategyCommand(req.Strategy)
	if err != nil {
		return s.fail(c, err)
	}

	cfg, err := s.h.SetStrategy.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, fromConfig(cfg))
}

// ConfigurePricing handles PUT /api/v1/pricing/config.
func (s *Server) ConfigurePricing(c echo.Context) error {
	var req PricingConfigRequest
	if err := c.Bind(&req); err != nil {
		return s.badBody(c)
	}

	extra, err := kernel.NewMoney(req.ExtraMixPrice)
	if err != nil {
		return s.fail(c, err)
	}
	side, err := optionalMoney(req.DefaultSidePrice)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewConfigurePricingCommand(req.IncludedMixCount, extra, side)
	if err != nil {
		return s.fail(c, err)
	}

	cfg, err := s.h.ConfigurePricing.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, fromConfig(cfg))
}

func (s *Server) badBody(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: "Invalid request body",
	})
}

// fail writes err with the status of its kind. Server errors are logged and
// their message is not echoed back.
func (s *Server) fail(c echo.Context, err error) error {
	code := statusOf(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err,
		)
		message = http.StatusText(code)
	}
	return c.JSON(code, Error{Code: code, Message: message})
}

func statusOf(err error) int {
	switch {
	case errs.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrVersionConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func pathID(c echo.Context) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return id, nil
}

func parseLines(items []LineRequest) ([]services.RequestedLine, error) {
	lines := make([]services.RequestedLine, 0, len(items))
	for _, it := range items {
		id, err := kernel.UUIDFromString(it.ItemID)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("item id", err)
		}
		lines = append(lines, services.RequestedLine{ItemID: id, Quantity: it.Quantity})
	}
	return lines, nil
}

// parseDate returns nil for an empty string.
func parseDate(s string) (*kernel.Date, error) {
	if s == "" {
		return nil, nil //nolint:nilnil // no date given
	}
	d, err := kernel.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func optionalMoney(d *decimal.Decimal) (*kernel.Money, error) {
	if d == nil {
		return nil, nil //nolint:nilnil // amount not given
	}
	m, err := kernel.NewMoney(*d)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func parseDelivery(req DeliveryRequest) (order.DeliveryInfo, error) {
	deliveryType, err := order.ParseDeliveryType(req.Type)
	if err != nil {
		return order.DeliveryInfo{}, err
	}

	var location *kernel.GeoPoint
	if req.Lat != nil || req.Lng != nil {
		if req.Lat == nil || req.Lng == nil {
			return order.DeliveryInfo{}, errs.NewValueIsRequiredError("delivery lat and lng")
		}
		p, err := kernel.NewGeoPoint(*req.Lat, *req.Lng)
		if err != nil {
			return order.DeliveryInfo{}, err
		}
		location = &p
	}

	changeFor, err := optionalMoney(req.ChangeFor)
	if err != nil {
		return order.DeliveryInfo{}, err
	}

	return order.NewDeliveryInfo(order.DeliveryInfoParams{
		Type: deliveryType,
		Address: order.Address{
			Street:     req.Address.Street,
			Number:     req.Address.Number,
			Complement: req.Address.Complement,
			District:   req.Address.District,
			City:       req.Address.City,
			State:      req.Address.State,
			PostalCode: req.Address.PostalCode,
		},
		Location:         location,
		Note:             req.Note,
		BringCardMachine: req.BringCardMachine,
		ChangeFor:        changeFor,
	})
}
