package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alwazw/manus-erp/internal/apperrors"
	"github.com/alwazw/manus-erp/internal/core/domain"
	"github.com/alwazw/manus-erp/internal/core/services"
	"github.com/alwazw/manus-erp/internal/dto"
	"github.com/alwazw/manus-erp/internal/repositories/memory"
)

func widgetRequest() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		SKU:       "WID-001",
		Name:      "Widget",
		Category:  "Hardware",
		Quantity:  25,
		UnitPrice: decimal.NewFromFloat(9.99),
	}
}

func TestAddProduct_DefaultsInventoryStatus(t *testing.T) {
	svc := services.NewProductService(memory.NewProductStore())

	product, err := svc.AddProduct(context.Background(), widgetRequest())

	require.NoError(t, err)
	assert.Equal(t, domain.InStock, product.InventoryStatus)
	assert.Equal(t, 25, product.Quantity)
}

func TestAddProduct_MissingFields(t *testing.T) {
	svc := services.NewProductService(memory.NewProductStore())

	req := widgetRequest()
	req.Category = ""

	_, err := svc.AddProduct(context.Background(), req)
	assert.ErrorIs(t, err, services.ErrMissingField)
}

func TestAddProduct_DuplicateSKU(t *testing.T) {
	svc := services.NewProductService(memory.NewProductStore())
	ctx := context.Background()

	_, err := svc.AddProduct(ctx, widgetRequest())
	require.NoError(t, err)

	_, err = svc.AddProduct(ctx, widgetRequest())
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestUpdateProduct_PartialUpdate(t *testing.T) {
	svc := services.NewProductService(memory.NewProductStore())
	ctx := context.Background()

	_, err := svc.AddProduct(ctx, widgetRequest())
	require.NoError(t, err)

	quantity := 3
	status := string(domain.LowStock)
	updated, err := svc.UpdateProduct(ctx, "WID-001", dto.UpdateProductRequest{
		Quantity:        &quantity,
		InventoryStatus: &status,
	})

	require.NoError(t, err)
	assert.Equal(t, 3, updated.Quantity)
	assert.Equal(t, domain.LowStock, updated.InventoryStatus)
	// Untouched fields survive.
	assert.Equal(t, "Widget", updated.Name)
	assert.True(t, updated.UnitPrice.Equal(decimal.NewFromFloat(9.99)))
}

func TestUpdateProduct_NotFound(t *testing.T) {
	svc := services.NewProductService(memory.NewProductStore())

	name := "Renamed"
	_, err := svc.UpdateProduct(context.Background(), "NOPE", dto.UpdateProductRequest{Name: &name})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteProduct(t *testing.T) {
	svc := services.NewProductService(memory.NewProductStore())
	ctx := context.Background()

	_, err := svc.AddProduct(ctx, widgetRequest())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(ctx, "WID-001"))

	_, err = svc.GetProductBySKU(ctx, "WID-001")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	err = svc.DeleteProduct(ctx, "WID-001")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
