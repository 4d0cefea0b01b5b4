package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/iliyamo/online-market/internal/model"
)

func getWithParam(t *testing.T, h echo.HandlerFunc, path, id string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)
	require.NoError(t, h(c))
	return rec
}

func TestDeleteSellerCascadesToProducts(t *testing.T) {
	products := newFakeProductStore()
	users := newFakeUserStore(products)
	h := NewAdminHandler(users, products)

	seller := seedUser(t, users, "seller@example.com", "pw", model.RoleSeller, true)
	products.add("lamp", 10, "seller@example.com")
	products.add("chair", 20, "seller@example.com")
	other := products.add("mug", 5, "other@example.com")

	rec := getWithParam(t, h.DeleteUser, "/delete-user/"+seller.ID.Hex(), seller.ID.Hex())

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/admin", rec.Header().Get(echo.HeaderLocation))

	remaining, err := products.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, remaining, 1, "only the other seller's product survives")
	assert.Equal(t, other.ID, remaining[0].ID)

	u, err := users.FindByEmail(context.Background(), "seller@example.com")
	require.NoError(t, err)
	assert.Nil(t, u, "the user record itself is removed")
}

func TestDeleteBuyerRemovesOnlyUser(t *testing.T) {
	products := newFakeProductStore()
	users := newFakeUserStore(products)
	h := NewAdminHandler(users, products)

	buyer := seedUser(t, users, "buyer@example.com", "pw", model.RoleBuyer, true)
	// A buyer-contributed listing stays even after the buyer is deleted;
	// cascade applies to sellers only.
	products.add("lamp", 10, "buyer@example.com")

	rec := getWithParam(t, h.DeleteUser, "/delete-user/"+buyer.ID.Hex(), buyer.ID.Hex())

	assert.Equal(t, http.StatusFound, rec.Code)

	remaining, err := products.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, remaining, 1)

	u, err := users.FindByEmail(context.Background(), "buyer@example.com")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestDeleteUnknownUserFailsWithNotFound(t *testing.T) {
	users := newFakeUserStore(nil)
	h := NewAdminHandler(users, newFakeProductStore())

	rec := getWithParam(t, h.DeleteUser, "/delete-user/x", primitive.NewObjectID().Hex())

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "User not found!")
}

func TestApproveSellerIsIdempotent(t *testing.T) {
	users := newFakeUserStore(nil)
	h := NewAdminHandler(users, newFakeProductStore())
	seller := seedUser(t, users, "seller@example.com", "pw", model.RoleSeller, false)

	for i := 0; i < 2; i++ {
		rec := getWithParam(t, h.ApproveSeller, "/approve-seller/"+seller.ID.Hex(), seller.ID.Hex())
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/admin/sellers", rec.Header().Get(echo.HeaderLocation))
	}

	u, err := users.FindByID(context.Background(), seller.ID.Hex())
	require.NoError(t, err)
	assert.True(t, u.Approved)
}

func TestDashboardListsPendingSellers(t *testing.T) {
	products := newFakeProductStore()
	users := newFakeUserStore(products)
	h := NewAdminHandler(users, products)

	seedUser(t, users, "pending@example.com", "pw", model.RoleSeller, false)
	seedUser(t, users, "approved@example.com", "pw", model.RoleSeller, true)
	seedUser(t, users, "buyer@example.com", "pw", model.RoleBuyer, true)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, h.Dashboard(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "pending@example.com")
	assert.Contains(t, body, "pending_sellers")

	pending, err := users.ListPendingSellers(context.Background())
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "pending@example.com", pending[0].Email)
}
