package parcel

import (
	"fmt"

	"parcel/internal/pkg/errs"
)

// Weight bounds in kilograms. The lower bound rejects zero and negative
// weights; the upper bound caps what a single parcel may declare.
const (
	MinWeight = 0.1
	MaxWeight = 1000.0
)

// Type categorizes the contents of a parcel.
type Type int

const (
	// TypeUnknown represents an invalid or undefined parcel type.
	TypeUnknown Type = iota

	// TypeDocument is paperwork and flat mail.
	TypeDocument

	// TypePackage is a general-purpose parcel.
	TypePackage

	// TypeFragile requires careful handling.
	TypeFragile

	// TypeElectronics requires careful handling and customs declarations.
	TypeElectronics
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeDocument:    "DOCUMENT",
		TypePackage:     "PACKAGE",
		TypeFragile:     "FRAGILE",
		TypeElectronics: "ELECTRONICS",
	}
}

// TypeFromString parses a parcel type from its wire representation
// ("DOCUMENT", "PACKAGE", "FRAGILE", "ELECTRONICS").
func TypeFromString(s string) (Type, error) {
	for t, str := range getTypeStrings() {
		if str == s {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause("parcelInfo.type",
		fmt.Errorf("%q is not a valid parcel type", s))
}

// String returns the wire representation of the parcel type.
func (t Type) String() string {
	if s, ok := getTypeStrings()[t]; ok {
		return s
	}
	return "UNKNOWN"
}

// Validate checks that the type is one of the defined values.
func (t Type) Validate() error {
	if _, ok := getTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("parcelInfo.type",
			fmt.Errorf("%d is not a valid parcel type", t))
	}
	return nil
}

// Details describes what is being shipped: type, weight, an optional
// description, and the declared value used for claims.
type Details struct {
	parcelType Type
	weight     float64
	desc       string
	value      float64
}

// NewDetails creates validated parcel details. Weight must lie within
// [MinWeight, MaxWeight]; the declared value must be non-negative.
func NewDetails(parcelType Type, weight float64, description string, value float64) (Details, error) {
	if err := parcelType.Validate(); err != nil {
		return Details{}, err
	}
	if weight < MinWeight || weight > MaxWeight {
		return Details{}, errs.NewValueIsOutOfRangeError("parcelInfo.weight", weight, MinWeight, MaxWeight)
	}
	if value < 0 {
		return Details{}, errs.NewValueIsInvalidErrorWithCause("parcelInfo.value",
			fmt.Errorf("%v is negative", value))
	}

	return Details{
		parcelType: parcelType,
		weight:     weight,
		desc:       description,
		value:      value,
	}, nil
}

// Type returns the parcel's content category.
func (d Details) Type() Type { return d.parcelType }

// Weight returns the weight in kilograms.
func (d Details) Weight() float64 { return d.weight }

// Description returns the optional free-form description.
func (d Details) Description() string { return d.desc }

// Value returns the declared value.
func (d Details) Value() float64 { return d.value }

// Validate ensures the details were created through NewDetails.
func (d Details) Validate() error {
	if err := d.parcelType.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("parcelInfo must be created via NewDetails", err)
	}
	return nil
}
