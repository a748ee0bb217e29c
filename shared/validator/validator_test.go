package validator_test

import (
	"net/http"
	"reziro/shared/failure"
	"reziro/shared/validator"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stayRequest struct {
	RoomID        string  `json:"roomId"        validate:"required"`
	StartDate     string  `json:"startDate"     validate:"required,isodate"`
	EndDate       string  `json:"endDate"       validate:"required,isodate"`
	MonthKey      string  `json:"monthKey"      validate:"omitempty,monthkey"`
	PricePerNight float64 `json:"pricePerNight" validate:"gte=0"`
	Email         string  `json:"email"         validate:"omitempty,email"`
	Frequency     string  `json:"frequency"     validate:"omitempty,oneof=monthly quarterly yearly"`
}

func validStay() stayRequest {
	return stayRequest{
		RoomID:        "room-1",
		StartDate:     "2024-03-01",
		EndDate:       "2024-03-04",
		MonthKey:      "2024-03",
		PricePerNight: 450,
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*stayRequest)
		wantMsg string
	}{
		{name: "valid", mutate: func(*stayRequest) {}},
		{name: "missing room", mutate: func(r *stayRequest) { r.RoomID = "" }, wantMsg: "roomId is required"},
		{name: "bad start date", mutate: func(r *stayRequest) { r.StartDate = "01/03/2024" }, wantMsg: "startDate must be a date formatted YYYY-MM-DD"},
		{name: "bad month key", mutate: func(r *stayRequest) { r.MonthKey = "2024-3" }, wantMsg: "monthKey must be a month formatted YYYY-MM"},
		{name: "month thirteen", mutate: func(r *stayRequest) { r.MonthKey = "2024-13" }, wantMsg: "monthKey must be a month formatted YYYY-MM"},
		{name: "impossible date", mutate: func(r *stayRequest) { r.EndDate = "2023-02-29" }, wantMsg: "endDate must be a date formatted YYYY-MM-DD"},
		{name: "leap day", mutate: func(r *stayRequest) { r.EndDate = "2024-02-29" }},
		{name: "negative price", mutate: func(r *stayRequest) { r.PricePerNight = -1 }, wantMsg: "pricePerNight must be greater than or equal to 0"},
		{name: "bad email", mutate: func(r *stayRequest) { r.Email = "nope" }, wantMsg: "email must be a valid email address"},
		{name: "bad frequency", mutate: func(r *stayRequest) { r.Frequency = "weekly" }, wantMsg: "frequency must be one of monthly quarterly yearly"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validStay()
			tt.mutate(&req)

			err := validator.ValidateStruct(&req)
			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectError bool
	}{
		{name: "valid body", body: `{"roomId":"room-1","startDate":"2024-03-01","endDate":"2024-03-02","pricePerNight":100}`},
		{name: "invalid field", body: `{"roomId":"room-1","startDate":"2024-03-01","endDate":"tomorrow"}`, expectError: true},
		{name: "malformed", body: `{"roomId":}`, expectError: true},
		{name: "empty object", body: `{}`, expectError: true},
		{name: "two values", body: `{"roomId":"room-1","startDate":"2024-03-01","endDate":"2024-03-02"} {}`, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req stayRequest

			err := validator.Validate(strings.NewReader(tt.body), &req)
			if tt.expectError {
				assert.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "room-1", req.RoomID)
		})
	}
}

type guest struct {
	Email string `json:"email" validate:"omitempty,email"`
}

type reservation struct {
	Guest  guest  `json:"guest"`
	Nights int    `json:"nights" validate:"gte=1"`
	Note   string `validate:"max=5"`
}

func TestValidateStruct_ReportsEveryField(t *testing.T) {
	req := reservation{Guest: guest{Email: "nope"}, Nights: 0, Note: "too long"}

	err := validator.ValidateStruct(&req)
	require.Error(t, err)

	assert.Equal(t,
		"guest.email must be a valid email address; nights must be greater than or equal to 1; Note must be at most 5",
		err.Error(),
	)
}
