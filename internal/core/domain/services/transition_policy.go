package services

import (
	"fmt"

	"smartlogi/internal/core/domain/model/actor"
	"smartlogi/internal/core/domain/model/parcel"
)

// Rejection codes, stable across releases and safe to use as metric labels.
const (
	RejectedInvalidStatus = "invalid_status"
	RejectedTerminal      = "terminal"
	RejectedRole          = "role"
)

// Decision is the outcome of TransitionPolicy.Evaluate.
//
// An allowed decision carries the status to write in NewStatus and leaves Reason empty.
// A denied decision carries a human-readable Reason and a Code from the Rejected* set.
type Decision struct {
	Allowed   bool
	Reason    string
	Code      string
	NewStatus parcel.Status
}

func allow(status parcel.Status) Decision {
	return Decision{Allowed: true, NewStatus: status}
}

func deny(code, reason string) Decision {
	return Decision{Code: code, Reason: reason}
}

// TransitionPolicy decides whether a parcel status change is permitted.
//
// It is a pure function of its inputs: it never touches storage, never errors and
// holds no state, so a single value may be shared freely between goroutines.
//
// Rules, first match wins:
//  1. the requested status must be a defined status
//  2. nothing leaves DELIVERED
//  3. only MANAGER and COURIER may change a status; for a courier the caller
//     still has to check that the courier is the one assigned to the parcel
//  4. requesting the current status is allowed and recorded like any other change
//
// Forward skips such as CREATED -> DELIVERED are allowed, and so are moves back
// to an earlier status other than out of DELIVERED.
//
// Example usage:
//
//	policy := services.NewTransitionPolicy()
//	decision := policy.Evaluate(p.Status(), parcel.Collected, principal.Role())
//	if !decision.Allowed {
//	    return errs.NewRuleViolationError(decision.Reason)
//	}
type TransitionPolicy struct{}

func NewTransitionPolicy() TransitionPolicy {
	return TransitionPolicy{}
}

// Evaluate applies the rules to a requested change from current to requested by role.
func (TransitionPolicy) Evaluate(current, requested parcel.Status, role actor.Role) Decision {
	if requested.Validate() != nil {
		return deny(RejectedInvalidStatus, "status is not valid")
	}

	if current.IsTerminal() {
		return deny(RejectedTerminal, parcel.ErrParcelAlreadyDelivered.Reason)
	}

	switch role {
	case actor.RoleManager, actor.RoleCourier:
	default:
		return deny(RejectedRole, fmt.Sprintf("role %s may not change parcel status", role))
	}

	return allow(requested)
}
