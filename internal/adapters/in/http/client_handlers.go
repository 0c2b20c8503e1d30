package http

import (
	"net/http"
	"time"

	"pigeonpost/internal/core/application/usecases/commands"
	"pigeonpost/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

type createClientRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	BirthDate string `json:"birthDate"`
	Address   string `json:"address"`
}

type editClientRequest struct {
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	BirthDate *string `json:"birthDate"`
	Address   *string `json:"address"`
}

type clientListData struct {
	Items      []ClientView   `json:"items"`
	Pagination PaginationView `json:"pagination"`
}

// GetClients handles GET /api/v1/clients.
//
//	@Summary	List clients
//	@Tags		clients
//	@Param		name		query	string	false	"name substring filter"
//	@Param		email		query	string	false	"email substring filter"
//	@Param		page		query	int		false	"page number, 1-based"
//	@Param		pageSize	query	int		false	"page size, max 100"
//	@Success	200	{object}	Envelope
//	@Router		/clients [get]
func (s *Server) GetClients(ctx echo.Context) error {
	page, err := parseIntDefault(ctx, "page", 1)
	if err != nil {
		return respondError(ctx, err)
	}
	pageSize, err := parseIntDefault(ctx, "pageSize", 0)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetClientsQuery(ctx.QueryParam("name"), ctx.QueryParam("email"), page, pageSize)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.handlers.GetClients.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	views := make([]ClientView, len(result.Items))
	for i, item := range result.Items {
		views[i] = clientViewFromSummary(item)
	}

	return respondData(ctx, http.StatusOK, clientListData{
		Items:      views,
		Pagination: newPaginationView(result.Page, result.PageSize, result.Total),
	})
}

// GetClient handles GET /api/v1/clients/:id.
//
//	@Summary	Get one client
//	@Tags		clients
//	@Param		id	path		int	true	"client id"
//	@Success	200	{object}	Envelope
//	@Failure	404	{object}	Envelope
//	@Router		/clients/{id} [get]
func (s *Server) GetClient(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetClientQuery(id)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.handlers.GetClient.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusOK, clientViewFromSummary(result))
}

// GetClientLetters handles GET /api/v1/clients/:id/letters.
//
//	@Summary	List a client's sent and received letters
//	@Tags		clients
//	@Param		id	path		int	true	"client id"
//	@Success	200	{object}	Envelope
//	@Failure	404	{object}	Envelope
//	@Router		/clients/{id}/letters [get]
func (s *Server) GetClientLetters(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetClientLettersQuery(id)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.handlers.GetClientLetters.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusOK, ClientLettersView{
		Sent:     letterViewsFromSummaries(result.Sent),
		Received: letterViewsFromSummaries(result.Received),
		Total:    result.Total,
	})
}

// CreateClient handles POST /api/v1/clients.
//
//	@Summary	Register a client
//	@Tags		clients
//	@Accept		json
//	@Param		client	body		createClientRequest	true	"client to register"
//	@Success	201	{object}	Envelope
//	@Failure	400	{object}	Envelope
//	@Failure	409	{object}	Envelope
//	@Router		/clients [post]
func (s *Server) CreateClient(ctx echo.Context) error {
	var req createClientRequest
	if err := ctx.Bind(&req); err != nil {
		return respondValidation(ctx, "invalid request body")
	}

	birthDate, err := parseDate("birthDate", req.BirthDate)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateClientCommand(req.Name, req.Email, birthDate, req.Address)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.handlers.CreateClient.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusCreated, clientViewFromAggregate(created))
}

// EditClient handles PUT /api/v1/clients/:id.
//
//	@Summary	Edit a client
//	@Tags		clients
//	@Accept		json
//	@Param		id		path		int					true	"client id"
//	@Param		client	body		editClientRequest	true	"fields to change"
//	@Success	200	{object}	Envelope
//	@Failure	409	{object}	Envelope
//	@Router		/clients/{id} [put]
func (s *Server) EditClient(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var req editClientRequest
	if err = ctx.Bind(&req); err != nil {
		return respondValidation(ctx, "invalid request body")
	}

	var birthDate *time.Time
	if req.BirthDate != nil {
		parsed, parseErr := parseDate("birthDate", *req.BirthDate)
		if parseErr != nil {
			return respondError(ctx, parseErr)
		}
		birthDate = &parsed
	}

	cmd, err := commands.NewEditClientCommand(id, req.Name, req.Email, birthDate, req.Address)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.handlers.EditClient.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusOK, clientViewFromAggregate(updated))
}

// DeleteClient handles DELETE /api/v1/clients/:id.
//
//	@Summary	Delete an unreferenced client
//	@Tags		clients
//	@Param		id	path		int	true	"client id"
//	@Success	200	{object}	Envelope
//	@Failure	409	{object}	Envelope
//	@Router		/clients/{id} [delete]
func (s *Server) DeleteClient(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteClientCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.DeleteClient.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondMessage(ctx, http.StatusOK, "client deleted")
}
