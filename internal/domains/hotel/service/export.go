package service

//go:generate go run go.uber.org/mock/mockgen -source=./export.go -destination=../mocks/export_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reziro/config"
	"reziro/infras/otel"
	"reziro/infras/s3"
	"reziro/internal/domains/hotel/calc"
	"reziro/internal/domains/hotel/model"
	"reziro/internal/domains/hotel/model/dto"
	"reziro/shared/constant"
	"time"
)

const (
	exportDirectory = "exports"

	metaAccount  = "account"
	metaMonthKey = "month-key"
)

var ErrExportDisabled = errors.New("month export is not configured")

// MonthReport is the document uploaded by an export: the summary of a month
// plus the records it was computed from.
type MonthReport struct {
	MonthKey        string                 `json:"monthKey"`
	Locked          bool                   `json:"locked"`
	GeneratedAt     string                 `json:"generatedAt"`
	Summary         model.MonthSummary     `json:"summary"`
	Bookings        []model.Booking        `json:"bookings"`
	Expenses        []model.Expense        `json:"expenses"`
	ManualReferrals []model.ManualReferral `json:"manualReferrals"`
	HotelCosts      []model.HotelCost      `json:"hotelCosts"`
	PartnerStats    []model.PartnerStats   `json:"partnerStats"`
}

type Exporter interface {
	ExportMonth(ctx context.Context, store *Store, monthKey string) (dto.ExportResponse, error)
}

type exporterImpl struct {
	cfg     *config.Config
	storage s3.S3
	otel    otel.Otel
	env     Env
}

// NewExporter accepts a nil storage; every export then fails with
// ErrExportDisabled.
func NewExporter(cfg *config.Config, storage s3.S3, otl otel.Otel, env Env) Exporter {
	return &exporterImpl{
		cfg:     cfg,
		storage: storage,
		otel:    otl,
		env:     env,
	}
}

func BuildMonthReport(state model.AppState, monthKey string, generatedAt time.Time) MonthReport {
	report := MonthReport{
		MonthKey:        monthKey,
		Locked:          state.MonthLocks[monthKey].IsLocked,
		GeneratedAt:     generatedAt.Format(constant.TimestampFormat),
		Summary:         calc.MonthSummary(state, monthKey),
		Bookings:        []model.Booking{},
		Expenses:        []model.Expense{},
		ManualReferrals: []model.ManualReferral{},
		HotelCosts:      []model.HotelCost{},
		PartnerStats:    calc.AllPartnerStats(state, monthKey),
	}

	for _, booking := range state.Bookings {
		if booking.MonthKey == monthKey {
			report.Bookings = append(report.Bookings, booking)
		}
	}

	for _, expense := range state.Expenses {
		if expense.MonthKey == monthKey {
			report.Expenses = append(report.Expenses, expense)
		}
	}

	for _, referral := range state.ManualReferrals {
		if referral.MonthKey == monthKey {
			report.ManualReferrals = append(report.ManualReferrals, referral)
		}
	}

	for _, cost := range state.HotelCosts {
		if calc.HotelCostActiveInMonth(cost, monthKey) {
			report.HotelCosts = append(report.HotelCosts, cost)
		}
	}

	return report
}

func (e *exporterImpl) ExportMonth(ctx context.Context, store *Store, monthKey string) (res dto.ExportResponse, err error) {
	ctx, scope := e.otel.NewScope(ctx, constant.OtelServiceScopeName, spanPrefix+"ExportMonth")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if e.storage == nil || !e.cfg.External.S3.Enabled {
		return res, ErrExportDisabled
	}

	if monthKey == constant.Empty {
		monthKey = store.selectedMonth()
	}

	if !calc.ValidMonthKey(monthKey) {
		return res, invalid("month key %q", monthKey)
	}

	now := e.env.Now()
	report := BuildMonthReport(store.State(), monthKey, now)

	body, err := json.Marshal(report)
	if err != nil {
		return res, fmt.Errorf("failed to encode month report: %w", err)
	}

	url, err := e.storage.Put(ctx, s3.Object{
		Key:         ExportKey(store.UserID(), monthKey, now),
		ContentType: constant.ContentTypeJSON,
		Body:        body,
		Metadata: map[string]string{
			metaAccount:  store.UserID(),
			metaMonthKey: monthKey,
		},
	})
	if err != nil {
		return res, fmt.Errorf("failed to upload month report: %w", err)
	}

	store.log.Info().Str("monthKey", monthKey).Str("url", url).Msg("month report exported")

	return dto.ExportResponse{MonthKey: monthKey, URL: url}, nil
}

// ExportKey places every export of an account under its own prefix; the
// timestamp keeps repeated exports of a month apart.
func ExportKey(userID, monthKey string, at time.Time) string {
	return fmt.Sprintf("%s/%s/%s-%d.json", exportDirectory, userID, monthKey, at.UnixMilli())
}
