package http

import (
	"net/http"

	"pigeonpost/internal/core/application/usecases/commands"
	"pigeonpost/internal/core/application/usecases/queries"
	"pigeonpost/internal/core/domain/model/letter"

	"github.com/labstack/echo/v4"
)

type createLetterRequest struct {
	Message     string `json:"message"`
	SenderID    int64  `json:"senderId"`
	RecipientID int64  `json:"recipientId"`
	CarrierID   int64  `json:"carrierId"`
}

type changeLetterStatusRequest struct {
	Status string `json:"status"`
}

type editLetterMessageRequest struct {
	Message string `json:"message"`
}

type letterListData struct {
	Items      []LetterView   `json:"items"`
	Pagination PaginationView `json:"pagination"`
}

// GetLetters handles GET /api/v1/letters.
//
//	@Summary	List letters
//	@Tags		letters
//	@Param		status		query	string	false	"queued, dispatched or delivered"
//	@Param		senderId	query	int		false	"filter by sender"
//	@Param		recipientId	query	int		false	"filter by recipient"
//	@Param		carrierId	query	int		false	"filter by carrier"
//	@Param		page		query	int		false	"page number, 1-based"
//	@Param		pageSize	query	int		false	"page size, max 100"
//	@Success	200	{object}	Envelope
//	@Router		/letters [get]
func (s *Server) GetLetters(ctx echo.Context) error {
	return s.listLetters(ctx, false)
}

// GetOverdueLetters handles GET /api/v1/letters/overdue.
//
//	@Summary	List overdue letters
//	@Tags		letters
//	@Success	200	{object}	Envelope
//	@Router		/letters/overdue [get]
func (s *Server) GetOverdueLetters(ctx echo.Context) error {
	return s.listLetters(ctx, true)
}

func (s *Server) listLetters(ctx echo.Context, overdueOnly bool) error {
	filter := queries.GetLettersFilter{OverdueOnly: overdueOnly}

	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := letter.ParseStatus(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		filter.Status = &status
	}

	var err error
	if filter.SenderID, err = parseOptionalInt64(ctx, "senderId"); err != nil {
		return respondError(ctx, err)
	}
	if filter.RecipientID, err = parseOptionalInt64(ctx, "recipientId"); err != nil {
		return respondError(ctx, err)
	}
	if filter.CarrierID, err = parseOptionalInt64(ctx, "carrierId"); err != nil {
		return respondError(ctx, err)
	}

	page, err := parseIntDefault(ctx, "page", 1)
	if err != nil {
		return respondError(ctx, err)
	}
	pageSize, err := parseIntDefault(ctx, "pageSize", 0)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetLettersQuery(filter, page, pageSize)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.handlers.GetLetters.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusOK, letterListData{
		Items:      letterViewsFromSummaries(result.Items),
		Pagination: newPaginationView(result.Page, result.PageSize, result.Total),
	})
}

// GetLetter handles GET /api/v1/letters/:id.
//
//	@Summary	Get one letter
//	@Tags		letters
//	@Param		id	path		int	true	"letter id"
//	@Success	200	{object}	Envelope
//	@Failure	404	{object}	Envelope
//	@Router		/letters/{id} [get]
func (s *Server) GetLetter(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetLetterQuery(id)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.handlers.GetLetter.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	view := LetterDetailView{
		LetterView: letterViewFromSummary(result.LetterSummary),
		UpdatedAt:  result.UpdatedAt,
	}
	if result.TimeSpent != nil {
		view.TimeSpent = &TimeSpentView{
			Milliseconds: result.TimeSpent.Milliseconds,
			Seconds:      result.TimeSpent.Seconds,
			Minutes:      result.TimeSpent.Minutes,
			Hours:        result.TimeSpent.Hours,
		}
	}

	return respondData(ctx, http.StatusOK, view)
}

// CreateLetter handles POST /api/v1/letters.
//
//	@Summary	Create a letter
//	@Tags		letters
//	@Accept		json
//	@Param		letter	body		createLetterRequest	true	"letter to create"
//	@Success	201	{object}	Envelope
//	@Failure	400	{object}	Envelope
//	@Failure	409	{object}	Envelope
//	@Router		/letters [post]
func (s *Server) CreateLetter(ctx echo.Context) error {
	var req createLetterRequest
	if err := ctx.Bind(&req); err != nil {
		return respondValidation(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateLetterCommand(req.Message, req.SenderID, req.RecipientID, req.CarrierID)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.handlers.CreateLetter.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusCreated, letterViewFromAggregate(created))
}

// ChangeLetterStatus handles PUT /api/v1/letters/:id/status.
//
//	@Summary	Change letter status
//	@Tags		letters
//	@Accept		json
//	@Param		id		path		int							true	"letter id"
//	@Param		status	body		changeLetterStatusRequest	true	"target status"
//	@Success	200	{object}	Envelope
//	@Failure	409	{object}	Envelope
//	@Router		/letters/{id}/status [put]
func (s *Server) ChangeLetterStatus(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var req changeLetterStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return respondValidation(ctx, "invalid request body")
	}

	status, err := letter.ParseStatus(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewChangeLetterStatusCommand(id, status)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.handlers.ChangeLetterStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusOK, letterViewFromAggregate(updated))
}

// EditLetterMessage handles PATCH /api/v1/letters/:id/message.
//
//	@Summary	Edit the message of a queued letter
//	@Tags		letters
//	@Accept		json
//	@Param		id		path		int							true	"letter id"
//	@Param		message	body		editLetterMessageRequest	true	"new message"
//	@Success	200	{object}	Envelope
//	@Failure	409	{object}	Envelope
//	@Router		/letters/{id}/message [patch]
func (s *Server) EditLetterMessage(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var req editLetterMessageRequest
	if err = ctx.Bind(&req); err != nil {
		return respondValidation(ctx, "invalid request body")
	}

	cmd, err := commands.NewEditLetterMessageCommand(id, req.Message)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.handlers.EditLetterMessage.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusOK, letterViewFromAggregate(updated))
}

// DeleteLetter handles DELETE /api/v1/letters/:id.
//
//	@Summary	Delete a queued letter
//	@Tags		letters
//	@Param		id	path		int	true	"letter id"
//	@Success	200	{object}	Envelope
//	@Failure	409	{object}	Envelope
//	@Router		/letters/{id} [delete]
func (s *Server) DeleteLetter(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteLetterCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.DeleteLetter.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondMessage(ctx, http.StatusOK, "letter deleted")
}

// GetStatistics handles GET /api/v1/letters/statistics.
//
//	@Summary	Delivery statistics report
//	@Tags		letters
//	@Success	200	{object}	Envelope
//	@Router		/letters/statistics [get]
func (s *Server) GetStatistics(ctx echo.Context) error {
	result, err := s.handlers.GetStatistics.Handle(ctx.Request().Context(), queries.NewGetStatisticsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusOK, StatisticsView{
		TotalLetters:         result.TotalLetters,
		QueuedLetters:        result.QueuedLetters,
		DispatchedLetters:    result.DispatchedLetters,
		DeliveredLetters:     result.DeliveredLetters,
		OverdueLetters:       result.OverdueLetters,
		AverageDeliveryHours: result.AverageDeliveryHours,
	})
}
