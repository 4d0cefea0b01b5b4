// Package access is the single access-control gate of the application.
// Check is a pure predicate over session state and a requested
// operation; it is evaluated by middleware on every route but carries
// no HTTP knowledge itself, so it can be tested independently of
// routing.
package access

import (
	"errors"

	"github.com/iliyamo/online-market/internal/model"
)

// Operation names one guarded surface of the application.
type Operation int

const (
	OpSignup Operation = iota
	OpLogin
	OpBrowseCatalog
	OpViewCart
	OpModifyCart
	OpAddProduct
	OpEditProduct
	OpDeleteProduct
	OpSellerDashboard
	OpEditProfile
	OpAdminPanel
	OpApproveSeller
	OpDeleteUser
)

// ErrUnauthenticated denies anonymous requests to everything except
// signup and login. Handlers translate it into a redirect to the login
// page.
var ErrUnauthenticated = errors.New("authentication required")

// ErrForbidden denies an authenticated user whose role does not cover
// the operation.
var ErrForbidden = errors.New("forbidden")

// ErrPendingApproval denies a seller that has not been approved yet.
// It is distinct from ErrForbidden so the user sees an explicit
// pending-approval message instead of a generic denial.
var ErrPendingApproval = errors.New("seller account pending approval")

// Check reports whether the session may perform the operation. A nil
// session means an anonymous request.
//
// Buyers deliberately keep access to product add/edit/delete: listings
// are user-contributed, marketplace style. Sellers additionally need
// admin approval before they can reach the seller dashboard or add
// products.
func Check(sess *model.Session, op Operation) error {
	if sess == nil {
		if op == OpSignup || op == OpLogin {
			return nil
		}
		return ErrUnauthenticated
	}

	switch op {
	case OpSignup, OpLogin:
		return nil
	case OpBrowseCatalog, OpViewCart, OpModifyCart, OpEditProfile, OpEditProduct, OpDeleteProduct:
		return nil
	case OpAddProduct:
		if sess.Role == model.RoleSeller && !sess.Approved {
			return ErrPendingApproval
		}
		return nil
	case OpSellerDashboard:
		switch sess.Role {
		case model.RoleAdmin:
			return nil
		case model.RoleSeller:
			if !sess.Approved {
				return ErrPendingApproval
			}
			return nil
		default:
			return ErrForbidden
		}
	case OpAdminPanel, OpApproveSeller, OpDeleteUser:
		if sess.Role != model.RoleAdmin {
			return ErrForbidden
		}
		return nil
	default:
		return ErrForbidden
	}
}
