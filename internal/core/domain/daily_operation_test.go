package domain_test

import (
	"testing"
	"time"

	"github.com/2fiksen-ship-it/booking/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestApprovalStatus_IsTerminal(t *testing.T) {
	tests := []struct {
		name   string
		status domain.ApprovalStatus
		want   bool
	}{
		{name: "draft is not terminal", status: domain.StatusDraft, want: false},
		{name: "pending is not terminal", status: domain.StatusPending, want: false},
		{name: "approved is terminal", status: domain.StatusApproved, want: true},
		{name: "rejected is terminal", status: domain.StatusRejected, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.IsTerminal())
		})
	}
}

func TestDailyOperation_Approve(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name      string
		operation domain.DailyOperation
	}{
		{
			name: "operation without discount",
			operation: domain.DailyOperation{
				OperationID: "op_123",
				BasePrice:   decimal.NewFromInt(100000),
				FinalPrice:  decimal.NewFromInt(100000),
				Status:      domain.StatusPending,
			},
		},
		{
			name: "operation with discount request",
			operation: domain.DailyOperation{
				OperationID:    "op_456",
				BasePrice:      decimal.NewFromInt(100000),
				DiscountAmount: decimal.NewFromInt(5000),
				FinalPrice:     decimal.NewFromInt(95000),
				Status:         domain.StatusPending,
				Discount: &domain.DiscountRequest{
					RequestID:   "req_456",
					OperationID: "op_456",
					Status:      domain.StatusPending,
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.operation.Approve("user_123", now)

			assert.Equal(t, domain.StatusApproved, tt.operation.Status)
			assert.Equal(t, "user_123", *tt.operation.ApprovedBy)
			assert.Equal(t, now, *tt.operation.ApprovedAt)
			if tt.operation.Discount != nil {
				assert.Equal(t, domain.StatusApproved, tt.operation.Discount.Status)
			}
		})
	}
}

func TestDailyOperation_Reject(t *testing.T) {
	now := time.Now()
	op := domain.DailyOperation{
		OperationID:    "op_789",
		BasePrice:      decimal.NewFromInt(50000),
		DiscountAmount: decimal.NewFromInt(10000),
		FinalPrice:     decimal.NewFromInt(40000),
		Status:         domain.StatusPending,
		Discount: &domain.DiscountRequest{
			RequestID:   "req_789",
			OperationID: "op_789",
			Status:      domain.StatusPending,
		},
	}

	op.Reject("user_123", now, "discount too steep")

	assert.Equal(t, domain.StatusRejected, op.Status)
	assert.Equal(t, "user_123", *op.ApprovedBy)
	assert.Equal(t, "discount too steep", op.RejectionReason)
	assert.Equal(t, domain.StatusRejected, op.Discount.Status)
}
