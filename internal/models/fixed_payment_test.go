package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestFixedPayment_Validate(t *testing.T) {
	validUserID := uuid.New()

	tests := []struct {
		name    string
		payment FixedPayment
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid payment",
			payment: FixedPayment{
				UserID: validUserID,
				Name:   "Rent",
				Amount: decimal.NewFromFloat(1200.00),
				DueDay: 1,
			},
			wantErr: false,
		},
		{
			name: "due day 31 is allowed at rest",
			payment: FixedPayment{
				UserID: validUserID,
				Name:   "Insurance",
				Amount: decimal.NewFromFloat(80.00),
				DueDay: 31,
			},
			wantErr: false,
		},
		{
			name: "missing user ID",
			payment: FixedPayment{
				Name:   "Rent",
				Amount: decimal.NewFromFloat(1200.00),
				DueDay: 1,
			},
			wantErr: true,
			errMsg:  "user ID is required",
		},
		{
			name: "missing name",
			payment: FixedPayment{
				UserID: validUserID,
				Amount: decimal.NewFromFloat(1200.00),
				DueDay: 1,
			},
			wantErr: true,
			errMsg:  "payment name is required",
		},
		{
			name: "non-positive amount",
			payment: FixedPayment{
				UserID: validUserID,
				Name:   "Rent",
				Amount: decimal.Zero,
				DueDay: 1,
			},
			wantErr: true,
			errMsg:  "payment amount must be positive",
		},
		{
			name: "due day too low",
			payment: FixedPayment{
				UserID: validUserID,
				Name:   "Rent",
				Amount: decimal.NewFromFloat(1200.00),
				DueDay: 0,
			},
			wantErr: true,
			errMsg:  "due day must be between 1 and 31",
		},
		{
			name: "due day too high",
			payment: FixedPayment{
				UserID: validUserID,
				Name:   "Rent",
				Amount: decimal.NewFromFloat(1200.00),
				DueDay: 32,
			},
			wantErr: true,
			errMsg:  "due day must be between 1 and 31",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.payment.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNextDueDate(t *testing.T) {
	tests := []struct {
		name   string
		dueDay int
		now    time.Time
		want   time.Time
	}{
		{
			name:   "later this month",
			dueDay: 20,
			now:    date(2025, time.June, 10),
			want:   date(2025, time.June, 20),
		},
		{
			name:   "same day rolls to next month",
			dueDay: 10,
			now:    date(2025, time.June, 10),
			want:   date(2025, time.July, 10),
		},
		{
			name:   "already passed rolls to next month",
			dueDay: 5,
			now:    date(2025, time.June, 10),
			want:   date(2025, time.July, 5),
		},
		{
			name:   "due day 31 clamps in 30-day month",
			dueDay: 31,
			now:    date(2025, time.June, 10),
			want:   date(2025, time.June, 30),
		},
		{
			name:   "due day 31 clamps in february",
			dueDay: 31,
			now:    date(2025, time.February, 10),
			want:   date(2025, time.February, 28),
		},
		{
			name:   "due day 31 clamps in leap february",
			dueDay: 31,
			now:    date(2024, time.February, 20),
			want:   date(2024, time.February, 29),
		},
		{
			name:   "rollover re-clamps for the new month",
			dueDay: 31,
			now:    date(2025, time.March, 31),
			want:   date(2025, time.April, 30),
		},
		{
			name:   "december rolls into january of the next year",
			dueDay: 15,
			now:    date(2025, time.December, 20),
			want:   date(2026, time.January, 15),
		},
		{
			name:   "time of day still counts as not after",
			dueDay: 10,
			now:    time.Date(2025, time.June, 10, 23, 59, 0, 0, time.UTC),
			want:   date(2025, time.July, 10),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextDueDate(tt.dueDay, tt.now)
			assert.True(t, got.Equal(tt.want), "expected %s, got %s", tt.want, got)
			assert.True(t, got.After(tt.now), "next due date must be strictly in the future")
		})
	}
}

func TestDaysUntil(t *testing.T) {
	tests := []struct {
		name string
		due  time.Time
		now  time.Time
		want int
	}{
		{
			name: "nine days out across leap day",
			due:  date(2024, time.February, 29),
			now:  date(2024, time.February, 20),
			want: 9,
		},
		{
			name: "same day is zero",
			due:  date(2025, time.June, 10),
			now:  time.Date(2025, time.June, 10, 18, 30, 0, 0, time.UTC),
			want: 0,
		},
		{
			name: "time of day is ignored",
			due:  date(2025, time.June, 11),
			now:  time.Date(2025, time.June, 10, 23, 59, 0, 0, time.UTC),
			want: 1,
		},
		{
			name: "past due is negative",
			due:  date(2025, time.June, 8),
			now:  date(2025, time.June, 10),
			want: -2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysUntil(tt.due, tt.now))
		})
	}
}

func TestPaymentStatusFor(t *testing.T) {
	tests := []struct {
		name         string
		isActive     bool
		daysUntilDue int
		want         string
	}{
		{name: "inactive wins over everything", isActive: false, daysUntilDue: 0, want: PaymentStatusInactive},
		{name: "overdue", isActive: true, daysUntilDue: -1, want: PaymentStatusOverdue},
		{name: "due today", isActive: true, daysUntilDue: 0, want: PaymentStatusDue},
		{name: "one day out is warning", isActive: true, daysUntilDue: 1, want: PaymentStatusWarning},
		{name: "two days out is warning", isActive: true, daysUntilDue: 2, want: PaymentStatusWarning},
		{name: "three days out is upcoming", isActive: true, daysUntilDue: 3, want: PaymentStatusUpcoming},
		{name: "far out is upcoming", isActive: true, daysUntilDue: 25, want: PaymentStatusUpcoming},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PaymentStatusFor(tt.isActive, tt.daysUntilDue))
		})
	}
}
