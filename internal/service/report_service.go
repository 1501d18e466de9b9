package service

import (
	"context"
	"fmt"

	"github.com/Vetrovv/course_scheduler/internal/model"
	"github.com/Vetrovv/course_scheduler/internal/repository"
	"github.com/Vetrovv/course_scheduler/internal/schedule"
	"go.uber.org/zap"
)

// ReportService управляет отчётами о проведённых занятиях и расчётом
// оплаты преподавателя
type ReportService struct {
	instanceRepo *repository.CourseInstanceRepository
	reportRepo   *repository.ReportRepository
	logger       *zap.Logger
}

func NewReportService(
	instanceRepo *repository.CourseInstanceRepository,
	reportRepo *repository.ReportRepository,
	logger *zap.Logger,
) *ReportService {
	return &ReportService{
		instanceRepo: instanceRepo,
		reportRepo:   reportRepo,
		logger:       logger,
	}
}

// CreateReport создаёт отчёт о проведённом занятии. На одну дату запуска
// курса допускается не больше одного отчёта: даты отчётов участвуют в
// расчёте занятости.
func (s *ReportService) CreateReport(ctx context.Context, report *model.LessonReport) error {
	instance, err := s.instanceRepo.GetByID(ctx, report.CourseInstanceID)
	if err != nil {
		return fmt.Errorf("get course instance: %w", err)
	}

	if instance == nil {
		return fmt.Errorf("course instance not found")
	}

	existing, err := s.reportRepo.GetReportedDates(ctx, report.CourseInstanceID)
	if err != nil {
		return fmt.Errorf("get reported dates: %w", err)
	}

	key := schedule.DateKey(report.LessonDate)
	for _, date := range existing {
		if schedule.DateKey(date) == key {
			return fmt.Errorf("lesson already reported for this date")
		}
	}

	if err := s.reportRepo.Create(ctx, report); err != nil {
		return fmt.Errorf("create report: %w", err)
	}

	s.logger.Info("Lesson report created",
		zap.Int64("report_id", report.ID),
		zap.Int64("course_instance_id", report.CourseInstanceID),
		zap.Time("lesson_date", report.LessonDate),
	)

	return nil
}

// GetReports возвращает все отчёты запуска курса
func (s *ReportService) GetReports(ctx context.Context, courseInstanceID int64) ([]*model.LessonReport, error) {
	return s.reportRepo.GetByCourseInstanceID(ctx, courseInstanceID)
}

// GetPaySummary считает оплату преподавателя по запуску курса:
// суммарные минуты отчитанных занятий по почасовой ставке запуска
func (s *ReportService) GetPaySummary(ctx context.Context, courseInstanceID int64) (*model.PaySummary, error) {
	instance, err := s.instanceRepo.GetByID(ctx, courseInstanceID)
	if err != nil {
		return nil, fmt.Errorf("get course instance: %w", err)
	}

	if instance == nil {
		return nil, fmt.Errorf("course instance not found")
	}

	reported, totalMinutes, err := s.reportRepo.GetSummary(ctx, courseInstanceID)
	if err != nil {
		return nil, fmt.Errorf("get summary: %w", err)
	}

	return &model.PaySummary{
		CourseInstanceID: courseInstanceID,
		ReportedLessons:  reported,
		TotalMinutes:     totalMinutes,
		AmountDue:        totalMinutes * instance.HourlyRate / 60,
	}, nil
}
