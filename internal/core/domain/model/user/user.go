package user

import (
	"errors"
	"fmt"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through the RestoreUser factory method.
var ErrUserIsNotConstructed = errors.New("User must be created via RestoreUser constructor")

// Role identifies the authority level of an acting user.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleUser is a regular account: parcel sender or receiver.
	RoleUser

	// RoleAdmin may override parcel status and toggle the block flag.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUser:  "USER",
		RoleAdmin: "ADMIN",
	}
}

// RoleFromString parses a role from its wire representation ("USER", "ADMIN").
func RoleFromString(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// String returns the wire representation of the role.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "UNKNOWN"
}

// Validate checks that the role is one of the defined values.
func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// Activity is the administrative activity state of an account.
type Activity int

const (
	// ActivityUnknown represents an invalid or undefined activity state.
	ActivityUnknown Activity = iota

	// ActivityActive is a usable account.
	ActivityActive

	// ActivityInactive is a dormant account; it may still read but not act.
	ActivityInactive

	// ActivityBlocked is an administratively suspended account.
	ActivityBlocked
)

func getActivityStrings() map[Activity]string {
	return map[Activity]string{
		ActivityActive:   "ACTIVE",
		ActivityInactive: "INACTIVE",
		ActivityBlocked:  "BLOCKED",
	}
}

// ActivityFromString parses an activity state from its wire representation.
func ActivityFromString(s string) (Activity, error) {
	for activity, str := range getActivityStrings() {
		if str == s {
			return activity, nil
		}
	}
	return ActivityUnknown, errs.NewValueIsInvalidErrorWithCause("isActive",
		fmt.Errorf("%q is not a valid activity state", s))
}

// String returns the wire representation of the activity state.
func (a Activity) String() string {
	if s, ok := getActivityStrings()[a]; ok {
		return s
	}
	return "UNKNOWN"
}

// Validate checks that the activity state is one of the defined values.
func (a Activity) Validate() error {
	if _, ok := getActivityStrings()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("isActive",
			fmt.Errorf("%d is not a valid activity state", a))
	}
	return nil
}

// User is the acting principal referenced by parcels. The lifecycle engine
// treats users as read-only: accounts are created and mutated by the external
// auth collaborator, this model only reconstructs them from the store.
type User struct {
	id        kernel.UUID
	name      string
	email     string
	phone     string
	role      Role
	activity  Activity
	isDeleted bool

	isConstructed bool
}

// RestoreUser reconstructs a user entity from persistence.
func RestoreUser(
	id kernel.UUID,
	name string,
	email string,
	phone string,
	role Role,
	activity Activity,
	isDeleted bool,
) (*User, error) {
	if err := errors.Join(
		id.Validate(),
		role.Validate(),
		activity.Validate(),
	); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}

	return &User{
		id:            id,
		name:          name,
		email:         email,
		phone:         phone,
		role:          role,
		activity:      activity,
		isDeleted:     isDeleted,
		isConstructed: true,
	}, nil
}

// Validate ensures the User instance was properly constructed through RestoreUser.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// IsEqual compares two users by their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Name returns the user's display name.
func (u *User) Name() string {
	return u.name
}

// Email returns the user's contact email.
func (u *User) Email() string {
	return u.email
}

// Phone returns the user's contact phone, possibly empty.
func (u *User) Phone() string {
	return u.phone
}

// Role returns the user's authority level.
func (u *User) Role() Role {
	return u.role
}

// Activity returns the user's activity state.
func (u *User) Activity() Activity {
	return u.activity
}

// IsDeleted reports whether the account is soft-deleted.
func (u *User) IsDeleted() bool {
	return u.isDeleted
}
