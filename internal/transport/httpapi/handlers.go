package httpapi

import (
	"net/http"
	"strconv"

	"github.com/Vetrovv/course_scheduler/internal/model"
	"github.com/Vetrovv/course_scheduler/internal/service"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type scheduleAPI struct {
	scheduleSvc     *service.ScheduleService
	cancellationSvc *service.CancellationService
	reportSvc       *service.ReportService
	blockedSvc      *service.BlockedDateService
	logger          *zap.Logger
}

func registerScheduleAPI(g *echo.Group, opts *Options) {
	api := scheduleAPI{
		scheduleSvc:     opts.ScheduleSvc,
		cancellationSvc: opts.CancellationSvc,
		reportSvc:       opts.ReportSvc,
		blockedSvc:      opts.BlockedSvc,
		logger:          opts.Logger,
	}

	ig := g.Group("/instances/:id")
	ig.GET("/schedule", api.getSchedule)
	ig.PUT("/pattern", api.setPattern)
	ig.POST("/cancellations", api.createCancellation)
	ig.GET("/cancellations", api.listCancellations)
	ig.POST("/reports", api.createReport)
	ig.GET("/reports", api.listReports)
	ig.GET("/reports/summary", api.getPaySummary)

	g.GET("/blocked-dates", api.listBlockedDates)
	g.POST("/blocked-dates", api.createBlockedDate)
	g.DELETE("/blocked-dates/:id", api.deleteBlockedDate)
}

// Handlers

func (api *scheduleAPI) getSchedule(ctx echo.Context) error {
	instanceID, err := pathID(ctx, "id")
	if err != nil {
		return err
	}

	occurrences, err := api.scheduleSvc.GetCombinedSchedule(ctx.Request().Context(), instanceID)
	if err != nil {
		return serviceError(err)
	}

	return ctx.JSON(http.StatusOK, occurrences)
}

func (api *scheduleAPI) setPattern(ctx echo.Context) error {
	instanceID, err := pathID(ctx, "id")
	if err != nil {
		return err
	}

	data := new(SetPatternRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := ctx.Validate(data); err != nil {
		return err
	}

	pattern := &model.RecurrencePattern{
		CourseInstanceID: instanceID,
		TimeSlots:        make(map[int]model.TimeSlot, len(data.Days)),
		TotalLessons:     data.TotalLessons,
	}

	for _, day := range data.Days {
		if _, exists := pattern.TimeSlots[day.Weekday]; exists {
			return echo.NewHTTPError(http.StatusBadRequest, "duplicate weekday in pattern")
		}
		if day.EndTime <= day.StartTime {
			return echo.NewHTTPError(http.StatusBadRequest, "end_time must be after start_time")
		}

		anchor, err := parseOptionalDate(day.FirstLessonDate)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}

		pattern.DaysOfWeek = append(pattern.DaysOfWeek, day.Weekday)
		pattern.TimeSlots[day.Weekday] = model.TimeSlot{
			StartTime:       day.StartTime,
			EndTime:         day.EndTime,
			FirstLessonDate: anchor,
		}
	}

	if err := api.scheduleSvc.SetPattern(ctx.Request().Context(), instanceID, pattern); err != nil {
		return serviceError(err)
	}

	return ctx.JSON(http.StatusOK, pattern)
}

func (api *scheduleAPI) createCancellation(ctx echo.Context) error {
	instanceID, err := pathID(ctx, "id")
	if err != nil {
		return err
	}

	data := new(CancelOccurrenceRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := ctx.Validate(data); err != nil {
		return err
	}

	originalDate, err := parseDate(data.OriginalDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	record, err := api.cancellationSvc.CancelOccurrence(
		ctx.Request().Context(), instanceID, data.LessonID, originalDate, data.Reason)
	if err != nil {
		return serviceError(err)
	}

	return ctx.JSON(http.StatusCreated, record)
}

func (api *scheduleAPI) listCancellations(ctx echo.Context) error {
	instanceID, err := pathID(ctx, "id")
	if err != nil {
		return err
	}

	records, err := api.cancellationSvc.GetCancellations(ctx.Request().Context(), instanceID)
	if err != nil {
		return serviceError(err)
	}

	return ctx.JSON(http.StatusOK, records)
}

func (api *scheduleAPI) createReport(ctx echo.Context) error {
	instanceID, err := pathID(ctx, "id")
	if err != nil {
		return err
	}

	data := new(CreateReportRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := ctx.Validate(data); err != nil {
		return err
	}

	lessonDate, err := parseDate(data.LessonDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	report := &model.LessonReport{
		CourseInstanceID: instanceID,
		LessonID:         data.LessonID,
		LessonDate:       lessonDate,
		Topic:            data.Topic,
		DurationMinutes:  data.DurationMinutes,
	}

	if err := api.reportSvc.CreateReport(ctx.Request().Context(), report); err != nil {
		return serviceError(err)
	}

	return ctx.JSON(http.StatusCreated, report)
}

func (api *scheduleAPI) listReports(ctx echo.Context) error {
	instanceID, err := pathID(ctx, "id")
	if err != nil {
		return err
	}

	reports, err := api.reportSvc.GetReports(ctx.Request().Context(), instanceID)
	if err != nil {
		return serviceError(err)
	}

	return ctx.JSON(http.StatusOK, reports)
}

func (api *scheduleAPI) getPaySummary(ctx echo.Context) error {
	instanceID, err := pathID(ctx, "id")
	if err != nil {
		return err
	}

	summary, err := api.reportSvc.GetPaySummary(ctx.Request().Context(), instanceID)
	if err != nil {
		return serviceError(err)
	}

	return ctx.JSON(http.StatusOK, summary)
}

func (api *scheduleAPI) listBlockedDates(ctx echo.Context) error {
	blocked, err := api.blockedSvc.GetBlockedDates(ctx.Request().Context())
	if err != nil {
		return serviceError(err)
	}

	return ctx.JSON(http.StatusOK, blocked)
}

func (api *scheduleAPI) createBlockedDate(ctx echo.Context) error {
	data := new(CreateBlockedDateRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := ctx.Validate(data); err != nil {
		return err
	}

	date, err := parseOptionalDate(data.Date)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	rangeStart, err := parseOptionalDate(data.RangeStart)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	rangeEnd, err := parseOptionalDate(data.RangeEnd)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	blocked := &model.BlockedDate{
		Date:       date,
		RangeStart: rangeStart,
		RangeEnd:   rangeEnd,
		Reason:     data.Reason,
	}

	if err := api.blockedSvc.AddBlockedDate(ctx.Request().Context(), blocked); err != nil {
		return serviceError(err)
	}

	return ctx.JSON(http.StatusCreated, blocked)
}

func (api *scheduleAPI) deleteBlockedDate(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return err
	}

	if err := api.blockedSvc.DeleteBlockedDate(ctx.Request().Context(), id); err != nil {
		return serviceError(err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// Helpers

// pathID разбирает числовой параметр пути
func pathID(ctx echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

// serviceError переводит ошибки сервисов в HTTP коды. Сервисы оборачивают
// "not found" в текст ошибки, остальное считается внутренней ошибкой.
func serviceError(err error) error {
	switch err.Error() {
	case "course instance not found":
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case "lesson already reported for this date":
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case "blocked date must be either a single date or a range",
		"range end must not be before range start":
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return err
}
