package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"

	"ussurochki/internal/app/ds"
	"ussurochki/internal/app/dto"
	"ussurochki/internal/app/export"
	"ussurochki/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*gin.Engine, *repository.Repository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	repo, err := repository.New(filepath.Join(dir, "test.db"))
	require.NoError(t, err)

	h := NewHandler(repo, export.New(repo, filepath.Join(dir, "exports")))
	router := gin.New()
	h.RegisterRoutes(router)
	return router, repo
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestClientEndpoints(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/clients", dto.SaveClientRequest{Name: "Иванов"})
	require.Equal(t, http.StatusOK, w.Code)

	var client dto.ClientResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &client))
	require.NotZero(t, client.ID)
	require.Equal(t, "", client.Phone)

	w = doJSON(t, router, http.MethodGet, "/api/clients?query=Иван", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list dto.ClientListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Equal(t, 1, list.Total)
	require.Equal(t, "Иванов", list.Clients[0].Name)

	w = doJSON(t, router, http.MethodDelete, "/api/clients/abc", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/clients", map[string]string{"phone": "123"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMklOrderEndpoints(t *testing.T) {
	router, repo := newTestRouter(t)

	client, err := repo.SaveClient(ds.Client{Name: "Иванов"})
	require.NoError(t, err)
	product, err := repo.SaveProduct(ds.Product{Name: "Линзы А", Price: 500})
	require.NoError(t, err)

	w := doJSON(t, router, http.MethodPost, "/api/orders/mkl", dto.SaveMklOrderRequest{ClientID: client.ID})
	require.Equal(t, http.StatusOK, w.Code)

	var order dto.MklOrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	require.NotZero(t, order.ID)
	require.Equal(t, ds.StatusNotOrdered, order.Status)

	orderPath := "/api/orders/mkl/" + itoa(order.ID)

	w = doJSON(t, router, http.MethodPut, orderPath+"/items", dto.ReplaceMklItemsRequest{
		Items: []dto.MklItemRequest{{ProductID: product.ID, Qty: 2}},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var items []dto.MklItemResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 1)
	require.Equal(t, "Линзы А", items[0].ProductName)
	require.Equal(t, 2, items[0].Qty)

	w = doJSON(t, router, http.MethodPut, orderPath+"/status", dto.SetStatusRequest{Status: ds.StatusOrdered})
	require.Equal(t, http.StatusOK, w.Code)

	var status dto.StatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	require.Equal(t, order.ID, status.ID)
	require.Equal(t, ds.StatusOrdered, status.Status)

	w = doJSON(t, router, http.MethodGet, "/api/orders/mkl?status="+ds.StatusOrdered, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list dto.MklOrderListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Equal(t, 1, list.Total)
	require.Equal(t, "Иванов", list.Orders[0].ClientName)

	w = doJSON(t, router, http.MethodDelete, orderPath, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/orders/mkl", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Equal(t, 0, list.Total)
}

func TestMeridianOrderEndpoints(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/orders/meridian", dto.SaveMeridianOrderRequest{})
	require.Equal(t, http.StatusOK, w.Code)

	var order dto.MeridianOrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	require.NotZero(t, order.ID)
	require.Equal(t, ds.StatusNotOrdered, order.Status)

	w = doJSON(t, router, http.MethodPut, "/api/orders/meridian/"+itoa(order.ID)+"/items", dto.ReplaceMeridianItemsRequest{
		Items: []dto.MeridianItemRequest{{ProductName: "Оправа синяя"}},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var items []dto.MeridianItemResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 1)
	require.Equal(t, "Оправа синяя", items[0].ProductName)
	require.Equal(t, 1, items[0].Qty)
}

func TestExportEndpoint(t *testing.T) {
	router, repo := newTestRouter(t)

	client, err := repo.SaveClient(ds.Client{Name: "Иванов"})
	require.NoError(t, err)
	_, err = repo.SaveMklOrder(ds.MklOrder{ClientID: client.ID, Status: ds.StatusDelivered})
	require.NoError(t, err)

	w := doJSON(t, router, http.MethodPost, "/api/export/mkl?status="+ds.StatusDelivered, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.ExportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, filepath.IsAbs(resp.File))
	require.Contains(t, filepath.Base(resp.File), "mkl_")
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
