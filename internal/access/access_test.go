package access

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/online-market/internal/model"
)

func buyer() *model.Session {
	return &model.Session{Email: "b@example.com", Role: model.RoleBuyer, Approved: true}
}

func seller(approved bool) *model.Session {
	return &model.Session{Email: "s@example.com", Role: model.RoleSeller, Approved: approved}
}

func admin() *model.Session {
	return &model.Session{Email: "a@example.com", Role: model.RoleAdmin, Approved: true}
}

func TestAnonymousReachesOnlySignupAndLogin(t *testing.T) {
	assert.NoError(t, Check(nil, OpSignup))
	assert.NoError(t, Check(nil, OpLogin))

	for _, op := range []Operation{
		OpBrowseCatalog, OpViewCart, OpModifyCart, OpAddProduct,
		OpEditProduct, OpDeleteProduct, OpSellerDashboard,
		OpEditProfile, OpAdminPanel, OpApproveSeller, OpDeleteUser,
	} {
		assert.ErrorIs(t, Check(nil, op), ErrUnauthenticated, "op %d", op)
	}
}

func TestBuyerHasMarketplaceAccess(t *testing.T) {
	s := buyer()

	// Product management is intentionally open to buyers: listings are
	// user-contributed.
	for _, op := range []Operation{
		OpBrowseCatalog, OpViewCart, OpModifyCart, OpEditProfile,
		OpAddProduct, OpEditProduct, OpDeleteProduct,
	} {
		assert.NoError(t, Check(s, op), "op %d", op)
	}

	assert.ErrorIs(t, Check(s, OpSellerDashboard), ErrForbidden)
	assert.ErrorIs(t, Check(s, OpAdminPanel), ErrForbidden)
	assert.ErrorIs(t, Check(s, OpApproveSeller), ErrForbidden)
	assert.ErrorIs(t, Check(s, OpDeleteUser), ErrForbidden)
}

func TestUnapprovedSellerBlockedDistinctly(t *testing.T) {
	s := seller(false)

	// Pending approval is its own denial, not a generic forbidden.
	assert.ErrorIs(t, Check(s, OpSellerDashboard), ErrPendingApproval)
	assert.ErrorIs(t, Check(s, OpAddProduct), ErrPendingApproval)

	// The rest of the buyer surface stays open while waiting.
	assert.NoError(t, Check(s, OpBrowseCatalog))
	assert.NoError(t, Check(s, OpViewCart))
	assert.NoError(t, Check(s, OpEditProfile))
}

func TestApprovedSellerReachesDashboard(t *testing.T) {
	s := seller(true)

	assert.NoError(t, Check(s, OpSellerDashboard))
	assert.NoError(t, Check(s, OpAddProduct))
	assert.ErrorIs(t, Check(s, OpAdminPanel), ErrForbidden)
}

func TestAdminReachesEverything(t *testing.T) {
	s := admin()

	for _, op := range []Operation{
		OpSignup, OpLogin, OpBrowseCatalog, OpViewCart, OpModifyCart,
		OpAddProduct, OpEditProduct, OpDeleteProduct, OpSellerDashboard,
		OpEditProfile, OpAdminPanel, OpApproveSeller, OpDeleteUser,
	} {
		assert.NoError(t, Check(s, op), "op %d", op)
	}
}

func TestAuthenticatedUserMayRevisitLoginAndSignup(t *testing.T) {
	assert.NoError(t, Check(buyer(), OpLogin))
	assert.NoError(t, Check(buyer(), OpSignup))
}
