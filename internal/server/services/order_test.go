package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/printflow/printflow/internal/common"
	"github.com/printflow/printflow/internal/server/models"
)

func validOrder() *models.Order {
	return &models.Order{
		CustomerName:    "Acme Prints",
		CustomerContact: "0917 123 4567",
		DueDate:         time.Now().Add(48 * time.Hour),
		Items: []models.OrderItem{
			{ProductName: "Business cards", Quantity: 500, UnitPrice: 2.50},
		},
	}
}

func TestOrderCreate_DefaultsAndNumber(t *testing.T) {
	svc := NewOrderService(&fakeOrdersRepo{})

	o, err := svc.Create(context.Background(), validOrder())
	require.NoError(t, err)
	require.Equal(t, models.StatusPending, o.Status)
	require.NotEmpty(t, o.OrderNumber)
}

func TestOrderCreate_Validation(t *testing.T) {
	svc := NewOrderService(&fakeOrdersRepo{})
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*models.Order)
	}{
		{"missing customer name", func(o *models.Order) { o.CustomerName = "" }},
		{"missing contact", func(o *models.Order) { o.CustomerContact = "" }},
		{"no items", func(o *models.Order) { o.Items = nil }},
		{"past due date", func(o *models.Order) { o.DueDate = time.Now().Add(-time.Hour) }},
		{"zero quantity", func(o *models.Order) { o.Items[0].Quantity = 0 }},
		{"free item", func(o *models.Order) { o.Items[0].UnitPrice = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := validOrder()
			tt.mutate(o)
			_, err := svc.Create(ctx, o)
			require.ErrorIs(t, err, common.ErrValidation)
		})
	}
}

func TestOrderSetStatus_RejectsUnknown(t *testing.T) {
	svc := NewOrderService(&fakeOrdersRepo{})

	err := svc.SetStatus(context.Background(), "o1", "teleported")
	require.ErrorIs(t, err, common.ErrValidation)
}
