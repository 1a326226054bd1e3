package parcel_test

import (
	"testing"

	"parcel/internal/core/domain/model/parcel"
	"parcel/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDetails(t *testing.T) {
	t.Run("valid details", func(t *testing.T) {
		d, err := parcel.NewDetails(parcel.TypeFragile, 2.5, "glassware", 1500)

		require.NoError(t, err)
		assert.Equal(t, parcel.TypeFragile, d.Type())
		assert.Equal(t, 2.5, d.Weight())
		assert.Equal(t, "glassware", d.Description())
		assert.Equal(t, 1500.0, d.Value())
	})

	t.Run("description and value are optional", func(t *testing.T) {
		d, err := parcel.NewDetails(parcel.TypeDocument, 0.1, "", 0)

		require.NoError(t, err)
		assert.Empty(t, d.Description())
		assert.Zero(t, d.Value())
	})

	t.Run("weight out of range", func(t *testing.T) {
		_, err := parcel.NewDetails(parcel.TypePackage, 0, "", 0)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = parcel.NewDetails(parcel.TypePackage, -1.2, "", 0)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = parcel.NewDetails(parcel.TypePackage, 1001, "", 0)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("negative declared value", func(t *testing.T) {
		_, err := parcel.NewDetails(parcel.TypePackage, 1, "", -10)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("invalid type", func(t *testing.T) {
		_, err := parcel.NewDetails(parcel.TypeUnknown, 1, "", 0)
		require.Error(t, err)
	})
}

func TestTypeFromString(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		for _, typ := range []parcel.Type{
			parcel.TypeDocument,
			parcel.TypePackage,
			parcel.TypeFragile,
			parcel.TypeElectronics,
		} {
			parsed, err := parcel.TypeFromString(typ.String())
			require.NoError(t, err)
			assert.Equal(t, typ, parsed)
		}
	})

	t.Run("rejects unknown", func(t *testing.T) {
		_, err := parcel.TypeFromString("LIVESTOCK")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewAddress(t *testing.T) {
	t.Run("country defaults when omitted", func(t *testing.T) {
		a, err := parcel.NewAddress("12 Lake Road", "Dhaka", "", "", "")

		require.NoError(t, err)
		assert.Equal(t, parcel.DefaultCountry, a.Country())
	})

	t.Run("explicit country is kept", func(t *testing.T) {
		a, err := parcel.NewAddress("1 High St", "Leeds", "", "LS1", "United Kingdom")

		require.NoError(t, err)
		assert.Equal(t, "United Kingdom", a.Country())
	})

	t.Run("street and city are required", func(t *testing.T) {
		_, err := parcel.NewAddress("", "Dhaka", "", "", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = parcel.NewAddress("12 Lake Road", "", "", "", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewReceiverInfo(t *testing.T) {
	address, err := parcel.NewAddress("12 Lake Road", "Dhaka", "", "", "")
	require.NoError(t, err)

	t.Run("name and phone are required", func(t *testing.T) {
		_, err := parcel.NewReceiverInfo("", "+8801712345678", address)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = parcel.NewReceiverInfo("Rahim Uddin", "", address)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero address rejected", func(t *testing.T) {
		var zero parcel.Address
		_, err := parcel.NewReceiverInfo("Rahim Uddin", "+8801712345678", zero)
		require.Error(t, err)
	})
}
