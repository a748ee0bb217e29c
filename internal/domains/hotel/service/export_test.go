package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	otelMocks "reziro/infras/otel/mocks"
	"reziro/infras/s3"
	s3Mocks "reziro/infras/s3/mocks"
	"reziro/internal/domains/hotel/mocks"
	"reziro/internal/domains/hotel/model"
	"reziro/internal/domains/hotel/service"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBuildMonthReport(t *testing.T) {
	clock := newClock()

	state, room := stateWithRoom(t, clock)
	state, march := book(t, state, room.ID, "2024-03-05", "2024-03-08", clock)
	state, _ = book(t, state, room.ID, "2024-04-02", "2024-04-04", clock)

	report := service.BuildMonthReport(state, "2024-03", firstTick)

	assert.Equal(t, "2024-03", report.MonthKey)
	assert.False(t, report.Locked)
	assert.Equal(t, "2024-03-01T08:00:00.000Z", report.GeneratedAt)
	require.Len(t, report.Bookings, 1)
	assert.Equal(t, march.ID, report.Bookings[0].ID)
	assert.Empty(t, report.Expenses)
	assert.Equal(t, "2024-03", report.Summary.MonthKey)
}

func TestExporter_ExportMonth(t *testing.T) {
	ctx := context.Background()

	t.Run("uploads the selected month", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		clock := newClock()

		state, room := stateWithRoom(t, clock)
		state, _ = book(t, state, room.ID, "2024-03-05", "2024-03-08", clock)

		store := openStore(t, mocks.NewMockAdapter(ctrl), state, clock)

		cfg := testConfig()
		cfg.External.S3.Enabled = true

		storage := s3Mocks.NewMockS3(ctrl)
		key := fmt.Sprintf("exports/u-1/2024-03-%d.json", firstTick.UnixMilli())

		storage.EXPECT().
			Put(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, object s3.Object) (string, error) {
				assert.Equal(t, key, object.Key)
				assert.Equal(t, "application/json", object.ContentType)
				assert.Equal(t, map[string]string{"account": "u-1", "month-key": "2024-03"}, object.Metadata)

				var report service.MonthReport
				require.NoError(t, json.Unmarshal(object.Body, &report))
				assert.Len(t, report.Bookings, 1)

				return "https://cdn.example.com/" + key, nil
			})

		exporter := service.NewExporter(cfg, storage, otelMocks.NewOtel(), clock.env())

		res, err := exporter.ExportMonth(ctx, store, "")
		require.NoError(t, err)

		assert.Equal(t, "2024-03", res.MonthKey)
		assert.Equal(t, "https://cdn.example.com/"+key, res.URL)
	})

	t.Run("rejects a malformed month", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		clock := newClock()
		store := openStore(t, mocks.NewMockAdapter(ctrl), stateOnly(t, clock), clock)

		cfg := testConfig()
		cfg.External.S3.Enabled = true

		exporter := service.NewExporter(cfg, s3Mocks.NewMockS3(ctrl), otelMocks.NewOtel(), clock.env())

		_, err := exporter.ExportMonth(ctx, store, "2024-13")
		assert.ErrorIs(t, err, service.ErrInvalidInput)
	})

	t.Run("disabled storage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		clock := newClock()
		store := openStore(t, mocks.NewMockAdapter(ctrl), stateOnly(t, clock), clock)

		exporter := service.NewExporter(testConfig(), nil, otelMocks.NewOtel(), clock.env())

		_, err := exporter.ExportMonth(ctx, store, "2024-03")
		assert.ErrorIs(t, err, service.ErrExportDisabled)
	})

	t.Run("upload failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		clock := newClock()
		store := openStore(t, mocks.NewMockAdapter(ctrl), stateOnly(t, clock), clock)

		cfg := testConfig()
		cfg.External.S3.Enabled = true

		storage := s3Mocks.NewMockS3(ctrl)
		storage.EXPECT().
			Put(gomock.Any(), gomock.Any()).
			Return("", errors.New("access denied"))

		tracer := otelMocks.NewOtel()
		exporter := service.NewExporter(cfg, storage, tracer, clock.env())

		_, err := exporter.ExportMonth(ctx, store, "2024-03")
		require.Error(t, err)
		assert.Len(t, tracer.Errors(), 1)
		assert.Equal(t, []string{"service.hotel.ExportMonth"}, tracer.ErroredSpans())
	})
}

func TestExportKey(t *testing.T) {
	assert.Equal(t, fmt.Sprintf("exports/u-1/2024-03-%d.json", firstTick.UnixMilli()), service.ExportKey("u-1", "2024-03", firstTick))
}

func stateOnly(t *testing.T, clock *testClock) model.AppState {
	t.Helper()

	state, _ := stateWithRoom(t, clock)

	return state
}
