package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"verduleria/internal/core/application/usecases/commands"
	"verduleria/internal/core/application/usecases/queries"
	"verduleria/internal/core/domain/model/kernel"
	"verduleria/internal/core/domain/model/order"
)

// Server exposes the application's use cases over REST. It translates the
// Spanish wire vocabulary into commands and queries and maps application
// errors onto HTTP statuses.
type Server struct {
	// Command handlers
	saveCustomerHandler    commands.SaveCustomerCommandHandler
	deleteCustomerHandler  commands.DeleteCustomerCommandHandler
	saveProductHandler     commands.SaveProductCommandHandler
	deleteProductHandler   commands.DeleteProductCommandHandler
	saveOrderHandler       commands.SaveOrderCommandHandler
	changeStatusHandler    commands.ChangeOrderStatusCommandHandler
	deleteOrderHandler     commands.DeleteOrderCommandHandler
	generateNoteHandler    commands.GenerateDeliveryNoteCommandHandler
	confirmDeliveryHandler commands.ConfirmDeliveryCommandHandler
	deleteNoteHandler      commands.DeleteDeliveryNoteCommandHandler

	// Query handlers
	getCustomersHandler    queries.GetCustomersQueryHandler
	getCustomerByIDHandler queries.GetCustomerByIDQueryHandler
	getProductsHandler     queries.GetProductsQueryHandler
	getProductByIDHandler  queries.GetProductByIDQueryHandler
	getOrdersHandler       queries.GetOrdersQueryHandler
	getOrderByIDHandler    queries.GetOrderByIDQueryHandler
	getNotesHandler        queries.GetDeliveryNotesQueryHandler
	getNoteByIDHandler     queries.GetDeliveryNoteByIDQueryHandler
	getNoteByOrderHandler  queries.GetDeliveryNoteByOrderQueryHandler
}

// ServerParams bundles the handlers a Server needs. A struct keeps the
// constructor call readable; every field is required.
type ServerParams struct {
	SaveCustomerHandler    commands.SaveCustomerCommandHandler
	DeleteCustomerHandler  commands.DeleteCustomerCommandHandler
	SaveProductHandler     commands.SaveProductCommandHandler
	DeleteProductHandler   commands.DeleteProductCommandHandler
	SaveOrderHandler       commands.SaveOrderCommandHandler
	ChangeStatusHandler    commands.ChangeOrderStatusCommandHandler
	DeleteOrderHandler     commands.DeleteOrderCommandHandler
	GenerateNoteHandler    commands.GenerateDeliveryNoteCommandHandler
	ConfirmDeliveryHandler commands.ConfirmDeliveryCommandHandler
	DeleteNoteHandler      commands.DeleteDeliveryNoteCommandHandler

	GetCustomersHandler    queries.GetCustomersQueryHandler
	GetCustomerByIDHandler queries.GetCustomerByIDQueryHandler
	GetProductsHandler     queries.GetProductsQueryHandler
	GetProductByIDHandler  queries.GetProductByIDQueryHandler
	GetOrdersHandler       queries.GetOrdersQueryHandler
	GetOrderByIDHandler    queries.GetOrderByIDQueryHandler
	GetNotesHandler        queries.GetDeliveryNotesQueryHandler
	GetNoteByIDHandler     queries.GetDeliveryNoteByIDQueryHandler
	GetNoteByOrderHandler  queries.GetDeliveryNoteByOrderQueryHandler
}

// NewServer creates an HTTP server wired to the given handlers.
func NewServer(params ServerParams) *Server {
	return &Server{
		saveCustomerHandler:    params.SaveCustomerHandler,
		deleteCustomerHandler:  params.DeleteCustomerHandler,
		saveProductHandler:     params.SaveProductHandler,
		deleteProductHandler:   params.DeleteProductHandler,
		saveOrderHandler:       params.SaveOrderHandler,
		changeStatusHandler:    params.ChangeStatusHandler,
		deleteOrderHandler:     params.DeleteOrderHandler,
		generateNoteHandler:    params.GenerateNoteHandler,
		confirmDeliveryHandler: params.ConfirmDeliveryHandler,
		deleteNoteHandler:      params.DeleteNoteHandler,
		getCustomersHandler:    params.GetCustomersHandler,
		getCustomerByIDHandler: params.GetCustomerByIDHandler,
		getProductsHandler:     params.GetProductsHandler,
		getProductByIDHandler:  params.GetProductByIDHandler,
		getOrdersHandler:       params.GetOrdersHandler,
		getOrderByIDHandler:    params.GetOrderByIDHandler,
		getNotesHandler:        params.GetNotesHandler,
		getNoteByIDHandler:     params.GetNoteByIDHandler,
		getNoteByOrderHandler:  params.GetNoteByOrderHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	clientes := e.Group("/api/clientes")
	clientes.GET("/all", s.GetClientes)
	clientes.GET("/:id", s.GetCliente)
	clientes.POST("", s.CreateCliente)
	clientes.PUT("/:id", s.UpdateCliente)
	clientes.DELETE("/:id", s.DeleteCliente)

	productos := e.Group("/api/productos")
	productos.GET("/all", s.GetProductos)
	productos.GET("/:id", s.GetProducto)
	productos.POST("", s.CreateProducto)
	productos.PUT("/:id", s.UpdateProducto)
	productos.DELETE("/:id", s.DeleteProducto)

	pedidos := e.Group("/api/pedidos")
	pedidos.GET("/all", s.GetPedidos)
	pedidos.GET("/:id", s.GetPedido)
	pedidos.POST("", s.CreatePedido)
	pedidos.PUT("/:id", s.UpdatePedido)
	pedidos.DELETE("/:id", s.DeletePedido)
	pedidos.PUT("/:id/estado", s.ChangeEstado)
	pedidos.POST("/:id/remito", s.GenerarRemito)
	pedidos.GET("/:id/remito", s.GetRemitoDePedido)

	remitos := e.Group("/api/remitos")
	remitos.GET("/all", s.GetRemitos)
	remitos.GET("/:id", s.GetRemito)
	remitos.POST("/:id/confirmacion", s.ConfirmarEntrega)
	remitos.DELETE("/:id", s.DeleteRemito)
}

func pathID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

// GetClientes handles GET /api/clientes/all.
func (s *Server) GetClientes(ctx echo.Context) error {
	query, err := queries.NewGetCustomersQuery(ctx.QueryParam("search"))
	if err != nil {
		return fail(ctx, err)
	}

	customers, err := s.getCustomersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]ClienteDTO, len(customers))
	for i, c := range customers {
		response[i] = clienteFromResponse(c)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCliente handles GET /api/clientes/:id.
func (s *Server) GetCliente(ctx echo.Context) error {
	customerID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}

	query, err := queries.NewGetCustomerByIDQuery(customerID)
	if err != nil {
		return fail(ctx, err)
	}

	resp, err := s.getCustomerByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, clienteFromResponse(resp))
}

// CreateCliente handles POST /api/clientes.
func (s *Server) CreateCliente(ctx echo.Context) error {
	return s.saveCliente(ctx, kernel.NewUUID(), http.StatusCreated)
}

// UpdateCliente handles PUT /api/clientes/:id.
func (s *Server) UpdateCliente(ctx echo.Context) error {
	customerID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}
	return s.saveCliente(ctx, customerID, http.StatusOK)
}

func (s *Server) saveCliente(ctx echo.Context, customerID kernel.UUID, status int) error {
	var body ClienteDTO
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSaveCustomerCommand(
		customerID,
		body.RazonSocial,
		body.Telefono,
		body.Direccion,
		body.Email,
		body.CuitDni,
	)
	if err != nil {
		return fail(ctx, err)
	}

	saved, err := s.saveCustomerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(status, clienteFromAggregate(saved))
}

// DeleteCliente handles DELETE /api/clientes/:id.
func (s *Server) DeleteCliente(ctx echo.Context) error {
	customerID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}

	cmd, err := commands.NewDeleteCustomerCommand(customerID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.deleteCustomerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetProductos handles GET /api/productos/all.
func (s *Server) GetProductos(ctx echo.Context) error {
	query, err := queries.NewGetProductsQuery(ctx.QueryParam("search"))
	if err != nil {
		return fail(ctx, err)
	}

	products, err := s.getProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]ProductoDTO, len(products))
	for i, p := range products {
		response[i] = productoFromResponse(p)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetProducto handles GET /api/productos/:id.
func (s *Server) GetProducto(ctx echo.Context) error {
	productID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid product id")
	}

	query, err := queries.NewGetProductByIDQuery(productID)
	if err != nil {
		return fail(ctx, err)
	}

	resp, err := s.getProductByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, productoFromResponse(resp))
}

// CreateProducto handles POST /api/productos.
func (s *Server) CreateProducto(ctx echo.Context) error {
	return s.saveProducto(ctx, kernel.NewUUID(), http.StatusCreated)
}

// UpdateProducto handles PUT /api/productos/:id.
func (s *Server) UpdateProducto(ctx echo.Context) error {
	productID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid product id")
	}
	return s.saveProducto(ctx, productID, http.StatusOK)
}

func (s *Server) saveProducto(ctx echo.Context, productID kernel.UUID, status int) error {
	var body ProductoDTO
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSaveProductCommand(productID, body.Nombre, body.UnidadMedida, body.PrecioVenta)
	if err != nil {
		return fail(ctx, err)
	}

	saved, err := s.saveProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(status, productoFromAggregate(saved))
}

// DeleteProducto handles DELETE /api/productos/:id.
func (s *Server) DeleteProducto(ctx echo.Context) error {
	productID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid product id")
	}

	cmd, err := commands.NewDeleteProductCommand(productID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.deleteProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetPedidos handles GET /api/pedidos/all. Besides the search expression the
// listing accepts clienteId and estado query parameters, which narrow the
// result to one customer or one lifecycle status.
func (s *Server) GetPedidos(ctx echo.Context) error {
	query, err := queries.NewGetOrdersQuery(ctx.QueryParam("search"))
	if err != nil {
		return fail(ctx, err)
	}

	if clienteID := ctx.QueryParam("clienteId"); clienteID != "" {
		customerID, idErr := kernel.UUIDFromString(clienteID)
		if idErr != nil {
			return badRequest(ctx, "Invalid clienteId")
		}
		if query, err = query.ForCustomer(customerID); err != nil {
			return fail(ctx, err)
		}
	}

	if estado := ctx.QueryParam("estado"); estado != "" {
		status, stErr := order.StatusFromString(estado)
		if stErr != nil {
			return fail(ctx, stErr)
		}
		if query, err = query.InStatus(status); err != nil {
			return fail(ctx, err)
		}
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]PedidoDTO, len(orders))
	for i, o := range orders {
		response[i] = pedidoFromResponse(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPedido handles GET /api/pedidos/:id.
func (s *Server) GetPedido(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderByIDQuery(orderID)
	if err != nil {
		return fail(ctx, err)
	}

	resp, err := s.getOrderByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, pedidoFromResponse(resp))
}

// CreatePedido handles POST /api/pedidos.
func (s *Server) CreatePedido(ctx echo.Context) error {
	return s.savePedido(ctx, kernel.NewUUID(), http.StatusCreated)
}

// UpdatePedido handles PUT /api/pedidos/:id. Supplied lines replace the
// order's lines wholesale; the status endpoint handles lifecycle changes.
func (s *Server) UpdatePedido(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}
	return s.savePedido(ctx, orderID, http.StatusOK)
}

func (s *Server) savePedido(ctx echo.Context, orderID kernel.UUID, status int) error {
	var body PedidoDTO
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(body.ClienteID)
	if err != nil {
		return badRequest(ctx, "Invalid clienteId")
	}

	lines := make([]commands.LineSpec, len(body.Detalles))
	for i, detalle := range body.Detalles {
		productID, idErr := kernel.UUIDFromString(detalle.ProductoID)
		if idErr != nil {
			return badRequest(ctx, "Invalid productoId")
		}
		lines[i] = commands.LineSpec{
			ProductID: productID,
			Quantity:  detalle.Cantidad,
			UnitPrice: detalle.PrecioVenta,
		}
	}

	cmd, err := commands.NewSaveOrderCommand(orderID, customerID, body.MontoTotal, lines)
	if err != nil {
		return fail(ctx, err)
	}

	saved, err := s.saveOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(status, pedidoFromAggregate(saved))
}

// DeletePedido handles DELETE /api/pedidos/:id.
func (s *Server) DeletePedido(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeEstado handles PUT /api/pedidos/:id/estado.
func (s *Server) ChangeEstado(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body CambioEstadoDTO
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := order.StatusFromString(body.Estado)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, target)
	if err != nil {
		return fail(ctx, err)
	}

	changed, err := s.changeStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, pedidoFromAggregate(changed))
}

// GenerarRemito handles POST /api/pedidos/:id/remito. Issuing a note moves
// an order still in preparation to the shipped status.
func (s *Server) GenerarRemito(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body GenerarRemitoDTO
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewGenerateDeliveryNoteCommand(kernel.NewUUID(), body.NumeroRemito, orderID)
	if err != nil {
		return fail(ctx, err)
	}

	issued, err := s.generateNoteHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, remitoFromAggregate(issued))
}

// GetRemitoDePedido handles GET /api/pedidos/:id/remito.
func (s *Server) GetRemitoDePedido(ctx echo.Context) error {
	orderID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetDeliveryNoteByOrderQuery(orderID)
	if err != nil {
		return fail(ctx, err)
	}

	resp, err := s.getNoteByOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, remitoFromResponse(resp))
}

// GetRemitos handles GET /api/remitos/all.
func (s *Server) GetRemitos(ctx echo.Context) error {
	query, err := queries.NewGetDeliveryNotesQuery(ctx.QueryParam("search"))
	if err != nil {
		return fail(ctx, err)
	}

	notes, err := s.getNotesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]RemitoDTO, len(notes))
	for i, n := range notes {
		response[i] = remitoFromResponse(n)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetRemito handles GET /api/remitos/:id.
func (s *Server) GetRemito(ctx echo.Context) error {
	noteID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid delivery note id")
	}

	query, err := queries.NewGetDeliveryNoteByIDQuery(noteID)
	if err != nil {
		return fail(ctx, err)
	}

	resp, err := s.getNoteByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, remitoFromResponse(resp))
}

// ConfirmarEntrega handles POST /api/remitos/:id/confirmacion. Confirming
// receipt also moves the note's order to the delivered status.
func (s *Server) ConfirmarEntrega(ctx echo.Context) error {
	noteID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid delivery note id")
	}

	var body ConfirmarEntregaDTO
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewConfirmDeliveryCommand(noteID, body.RecibidoPor, body.DocumentoReceptor, body.Observaciones)
	if err != nil {
		return fail(ctx, err)
	}

	confirmed, err := s.confirmDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, remitoFromAggregate(confirmed))
}

// DeleteRemito handles DELETE /api/remitos/:id. Removing a note makes its
// order eligible for note generation again.
func (s *Server) DeleteRemito(ctx echo.Context) error {
	noteID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid delivery note id")
	}

	cmd, err := commands.NewDeleteDeliveryNoteCommand(noteID)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.deleteNoteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
