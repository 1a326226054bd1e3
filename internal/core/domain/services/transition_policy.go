package services

import (
	"fmt"

	"parcel/internal/core/domain/model/parcel"
	"parcel/internal/core/domain/model/user"
	"parcel/internal/pkg/errs"
)

// Operation identifies a lifecycle mutation subject to authorization.
type Operation int

const (
	// OperationUnknown represents an invalid or undefined operation.
	OperationUnknown Operation = iota

	// OperationCreate registers a new parcel; the caller is the sender.
	OperationCreate

	// OperationCancel is the sender calling off an unmoved parcel.
	OperationCancel

	// OperationUpdateStatus is the admin status override.
	OperationUpdateStatus

	// OperationConfirmDelivery is the receiver acknowledging delivery.
	OperationConfirmDelivery

	// OperationReschedule is the receiver proposing a new delivery date.
	OperationReschedule

	// OperationReturn is the receiver sending the parcel back.
	OperationReturn

	// OperationToggleBlock is the admin flipping the block flag.
	OperationToggleBlock
)

func getOperationStrings() map[Operation]string {
	return map[Operation]string{
		OperationCreate:          "create",
		OperationCancel:          "cancel",
		OperationUpdateStatus:    "update status",
		OperationConfirmDelivery: "confirm delivery",
		OperationReschedule:      "reschedule",
		OperationReturn:          "return",
		OperationToggleBlock:     "toggle block",
	}
}

// String returns the operation name used in error messages and logs.
func (o Operation) String() string {
	if s, ok := getOperationStrings()[o]; ok {
		return s
	}
	return "unknown"
}

// Validate checks that the operation is one of the defined values.
func (o Operation) Validate() error {
	if _, ok := getOperationStrings()[o]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("operation",
			fmt.Errorf("%d is not a valid operation", o))
	}
	return nil
}

// TransitionPolicy is the single source of truth for who may trigger which
// parcel transition. Every command handler consults it instead of re-deriving
// role and ownership rules per call site.
//
// The check order is fixed and observable through error kinds: actor state,
// then the parcel block flag, then role/ownership. State preconditions come
// after all of these and live on the aggregate itself.
type TransitionPolicy struct{}

// NewTransitionPolicy creates a new TransitionPolicy instance.
func NewTransitionPolicy() TransitionPolicy {
	return TransitionPolicy{}
}

// ValidateActor rejects acting users that no longer resolve: soft-deleted
// accounts read as not found, blocked accounts as forbidden.
func (TransitionPolicy) ValidateActor(actor *user.User) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if actor.IsDeleted() {
		return errs.NewObjectNotFoundError("userId", actor.ID().String())
	}
	if actor.Activity() == user.ActivityBlocked {
		return errs.NewOperationForbiddenError("act", "acting user is blocked")
	}
	return nil
}

// Authorize checks whether actor may perform op on prc. It does not evaluate
// state preconditions; those belong to the aggregate's transition methods.
func (p TransitionPolicy) Authorize(op Operation, actor *user.User, prc *parcel.Parcel) error {
	if err := op.Validate(); err != nil {
		return err
	}
	if err := p.ValidateActor(actor); err != nil {
		return err
	}
	if err := prc.Validate(); err != nil {
		return err
	}

	if prc.IsBlocked() && op != OperationToggleBlock {
		return errs.NewOperationForbiddenError(op.String(), "parcel is blocked")
	}

	switch op {
	case OperationCancel:
		if !prc.Sender().IsEqual(actor.ID()) {
			return errs.NewOperationForbiddenError(op.String(), "caller is not the sender of this parcel")
		}
	case OperationConfirmDelivery, OperationReschedule, OperationReturn:
		if !prc.Receiver().IsEqual(actor.ID()) {
			return errs.NewOperationForbiddenError(op.String(), "caller is not the receiver of this parcel")
		}
	case OperationUpdateStatus, OperationToggleBlock:
		if actor.Role() != user.RoleAdmin {
			return errs.NewOperationForbiddenError(op.String(), "caller is not an admin")
		}
	case OperationCreate:
		// Creation has no existing parcel to own; ValidateActor suffices.
	}

	return nil
}
