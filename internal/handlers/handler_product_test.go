package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProducts_CreateAndFetch(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/products", gin.H{
		"sku":        "WID-001",
		"name":       "Widget",
		"category":   "Hardware",
		"quantity":   25,
		"unit_price": "9.99",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/products/WID-001", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var product map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &product))
	assert.Equal(t, "Widget", product["name"])
	assert.Equal(t, "In Stock", product["inventory_level_status"])
}

func TestProducts_DuplicateSKUConflicts(t *testing.T) {
	r := newTestRouter(t)

	payload := gin.H{
		"sku":      "WID-001",
		"name":     "Widget",
		"category": "Hardware",
	}
	w := doJSON(t, r, http.MethodPost, "/api/products", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/products", payload)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestProducts_DeleteThenMiss(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/products", gin.H{
		"sku":      "GAD-002",
		"name":     "Gadget",
		"category": "Hardware",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/products/GAD-002", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/products/GAD-002", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
