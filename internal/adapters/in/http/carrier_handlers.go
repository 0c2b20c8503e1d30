package http

import (
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"pigeonpost/internal/core/application/usecases/commands"
	"pigeonpost/internal/core/application/usecases/queries"
	"pigeonpost/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// maxPhotoSize caps carrier photo uploads at 5MB.
const maxPhotoSize = 5 << 20

var allowedPhotoExtensions = map[string]struct{}{
	".jpeg": {},
	".jpg":  {},
	".png":  {},
	".gif":  {},
}

type createCarrierRequest struct {
	Nickname  string  `json:"nickname"`
	Speed     float64 `json:"speed"`
	BirthDate string  `json:"birthDate"`
	PhotoURL  *string `json:"photoUrl"`
}

type editCarrierRequest struct {
	Nickname  *string  `json:"nickname"`
	Speed     *float64 `json:"speed"`
	BirthDate *string  `json:"birthDate"`
	PhotoURL  *string  `json:"photoUrl"`
}

// GetCarriers handles GET /api/v1/carriers.
//
//	@Summary	List carriers
//	@Tags		carriers
//	@Param		activeOnly		query	bool	false	"only active carriers"
//	@Param		includeRetired	query	bool	false	"include retired carriers"
//	@Success	200	{object}	Envelope
//	@Router		/carriers [get]
func (s *Server) GetCarriers(ctx echo.Context) error {
	query := queries.NewGetCarriersQuery(
		parseBoolParam(ctx, "activeOnly"),
		parseBoolParam(ctx, "includeRetired"),
		false,
	)
	return s.listCarriers(ctx, query)
}

// GetAvailableCarriers handles GET /api/v1/carriers/available.
//
//	@Summary	List carriers available for assignment
//	@Tags		carriers
//	@Success	200	{object}	Envelope
//	@Router		/carriers/available [get]
func (s *Server) GetAvailableCarriers(ctx echo.Context) error {
	return s.listCarriers(ctx, queries.NewGetCarriersQuery(false, false, true))
}

func (s *Server) listCarriers(ctx echo.Context, query queries.GetCarriersQuery) error {
	result, err := s.handlers.GetCarriers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	views := make([]CarrierView, len(result))
	for i, item := range result {
		views[i] = carrierViewFromResponse(item)
	}
	return respondData(ctx, http.StatusOK, views)
}

// GetCarrier handles GET /api/v1/carriers/:id.
//
//	@Summary	Get one carrier
//	@Tags		carriers
//	@Param		id	path		int	true	"carrier id"
//	@Success	200	{object}	Envelope
//	@Failure	404	{object}	Envelope
//	@Router		/carriers/{id} [get]
func (s *Server) GetCarrier(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetCarrierQuery(id)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.handlers.GetCarrier.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusOK, carrierViewFromResponse(result))
}

// CreateCarrier handles POST /api/v1/carriers.
// Accepts either a JSON body or a multipart form with an optional photo file.
//
//	@Summary	Register a carrier
//	@Tags		carriers
//	@Accept		json
//	@Accept		mpfd
//	@Param		carrier	body		createCarrierRequest	true	"carrier to register"
//	@Success	201	{object}	Envelope
//	@Failure	400	{object}	Envelope
//	@Failure	409	{object}	Envelope
//	@Router		/carriers [post]
func (s *Server) CreateCarrier(ctx echo.Context) error {
	req, err := s.bindCarrierCreate(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	birthDate, err := parseDate("birthDate", req.BirthDate)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateCarrierCommand(req.Nickname, req.Speed, birthDate, req.PhotoURL)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.handlers.CreateCarrier.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusCreated, carrierViewFromAggregate(created))
}

func (s *Server) bindCarrierCreate(ctx echo.Context) (createCarrierRequest, error) {
	contentType := ctx.Request().Header.Get(echo.HeaderContentType)
	if !strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
		var req createCarrierRequest
		if err := ctx.Bind(&req); err != nil {
			return createCarrierRequest{}, errs.NewValidationErrorWithCause("body", "invalid request body", err)
		}
		return req, nil
	}

	speed, err := strconv.ParseFloat(ctx.FormValue("speed"), 64)
	if err != nil {
		return createCarrierRequest{}, errs.NewValidationErrorWithCause("speed", "speed must be a number", err)
	}

	req := createCarrierRequest{
		Nickname:  ctx.FormValue("nickname"),
		Speed:     speed,
		BirthDate: ctx.FormValue("birthDate"),
	}

	file, err := ctx.FormFile("photo")
	if err == nil {
		photoURL, saveErr := s.savePhoto(file)
		if saveErr != nil {
			return createCarrierRequest{}, saveErr
		}
		req.PhotoURL = &photoURL
	}

	return req, nil
}

// savePhoto stores an uploaded carrier photo under the uploads dir with a
// generated filename and returns its public URL path.
func (s *Server) savePhoto(file *multipart.FileHeader) (string, error) {
	if file.Size > maxPhotoSize {
		return "", errs.NewValidationError("photo", "photo must not exceed 5MB")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if _, ok := allowedPhotoExtensions[ext]; !ok {
		return "", errs.NewValidationError("photo", "photo must be a jpeg, jpg, png or gif file")
	}

	if err := os.MkdirAll(s.uploadsDir, 0o755); err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(s.uploadsDir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err = io.Copy(dst, src); err != nil {
		return "", err
	}

	return "/uploads/" + name, nil
}

// EditCarrier handles PUT /api/v1/carriers/:id.
//
//	@Summary	Edit a carrier
//	@Tags		carriers
//	@Accept		json
//	@Param		id		path		int					true	"carrier id"
//	@Param		carrier	body		editCarrierRequest	true	"fields to change"
//	@Success	200	{object}	Envelope
//	@Failure	409	{object}	Envelope
//	@Router		/carriers/{id} [put]
func (s *Server) EditCarrier(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var req editCarrierRequest
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

	cmd, err := commands.NewEditCarrierCommand(id, req.Nickname, req.Speed, birthDate, req.PhotoURL)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.handlers.EditCarrier.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusOK, carrierViewFromAggregate(updated))
}

// RetireCarrier handles PATCH /api/v1/carriers/:id/retire.
//
//	@Summary	Retire a carrier permanently
//	@Tags		carriers
//	@Param		id	path		int	true	"carrier id"
//	@Success	200	{object}	Envelope
//	@Failure	409	{object}	Envelope
//	@Router		/carriers/{id}/retire [patch]
func (s *Server) RetireCarrier(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRetireCarrierCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	retired, err := s.handlers.RetireCarrier.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusOK, carrierViewFromAggregate(retired))
}

// DeleteCarrier handles DELETE /api/v1/carriers/:id.
//
//	@Summary	Deactivate an unreferenced carrier
//	@Tags		carriers
//	@Param		id	path		int	true	"carrier id"
//	@Success	200	{object}	Envelope
//	@Failure	409	{object}	Envelope
//	@Router		/carriers/{id} [delete]
func (s *Server) DeleteCarrier(ctx echo.Context) error {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteCarrierCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.DeleteCarrier.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondMessage(ctx, http.StatusOK, "carrier deactivated")
}
