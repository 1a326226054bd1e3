// Package parcel contains the parcel aggregate root and its value objects.
// The aggregate enforces the delivery lifecycle state machine and owns the
// append-only status log audit trail.
//
// Status transitions and their preconditions live on the Status value object;
// the aggregate methods combine a transition check with the matching audit
// entry so the two can never diverge. Authorization (who may trigger which
// transition) is a separate concern handled by the transition policy domain
// service.
package parcel
