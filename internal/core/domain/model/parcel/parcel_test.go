package parcel_test

import (
	"testing"
	"time"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/parcel"
	"parcel/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testReceiverInfo(t *testing.T) parcel.ReceiverInfo {
	t.Helper()
	address, err := parcel.NewAddress("12 Lake Road", "Dhaka", "", "1207", "")
	require.NoError(t, err)
	info, err := parcel.NewReceiverInfo("Rahim Uddin", "+8801712345678", address)
	require.NoError(t, err)
	return info
}

func testDetails(t *testing.T) parcel.Details {
	t.Helper()
	details, err := parcel.NewDetails(parcel.TypePackage, 1.2, "books", 300)
	require.NoError(t, err)
	return details
}

func newTestParcel(t *testing.T, status parcel.Status) (*parcel.Parcel, kernel.UUID, kernel.UUID) {
	t.Helper()
	now := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)
	senderID := kernel.NewUUID()
	receiverID := kernel.NewUUID()

	p, err := parcel.NewParcel(kernel.NewUUID(), kernel.NewTrackingID(now),
		senderID, receiverID, testReceiverInfo(t), testDetails(t), 50, now)
	require.NoError(t, err)

	if status != parcel.StatusRequested {
		require.NoError(t, p.OverrideStatus(kernel.NewUUID(), status, "", now.Add(time.Hour)))
	}
	return p, senderID, receiverID
}

func TestNewParcel(t *testing.T) {
	now := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)
	senderID := kernel.NewUUID()
	receiverID := kernel.NewUUID()

	t.Run("should create requested parcel with initial log entry", func(t *testing.T) {
		trackingID := kernel.NewTrackingID(now)
		p, err := parcel.NewParcel(kernel.NewUUID(), trackingID,
			senderID, receiverID, testReceiverInfo(t), testDetails(t), 50, now)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, parcel.StatusRequested, p.Status())
		assert.True(t, p.TrackingID().IsEqual(trackingID))
		assert.Equal(t, 50.0, p.DeliveryFee())
		assert.Equal(t, 1.2, p.Details().Weight())
		assert.Nil(t, p.DeliveredAt())
		assert.False(t, p.IsBlocked())
		assert.Equal(t, now, p.RequestedAt())

		logs := p.StatusLogs()
		require.Len(t, logs, 1)
		assert.Equal(t, parcel.EventStatusChange, logs[0].Event())
		assert.Equal(t, parcel.StatusRequested, logs[0].Status())
		assert.Equal(t, "Dhaka", logs[0].Location())
		assert.Equal(t, "Parcel has been requested by sender.", logs[0].Note())
		assert.True(t, logs[0].UpdatedBy().IsEqual(senderID))
	})

	t.Run("should reject sender equal to receiver", func(t *testing.T) {
		_, err := parcel.NewParcel(kernel.NewUUID(), kernel.NewTrackingID(now),
			senderID, senderID, testReceiverInfo(t), testDetails(t), 50, now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "sender and receiver must be different")
	})

	t.Run("should reject negative delivery fee", func(t *testing.T) {
		_, err := parcel.NewParcel(kernel.NewUUID(), kernel.NewTrackingID(now),
			senderID, receiverID, testReceiverInfo(t), testDetails(t), -1, now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject missing tracking id", func(t *testing.T) {
		var emptyTracking kernel.TrackingID
		_, err := parcel.NewParcel(kernel.NewUUID(), emptyTracking,
			senderID, receiverID, testReceiverInfo(t), testDetails(t), 50, now)

		require.Error(t, err)
	})
}

func TestParcel_Cancel(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	t.Run("sender cancels a requested parcel", func(t *testing.T) {
		p, senderID, _ := newTestParcel(t, parcel.StatusRequested)
		before := len(p.StatusLogs())

		require.NoError(t, p.Cancel(senderID, now))

		assert.Equal(t, parcel.StatusRequested, p.Status())
		logs := p.StatusLogs()
		require.Len(t, logs, before+1)
		last := logs[len(logs)-1]
		assert.Equal(t, "Sender App", last.Location())
		assert.Equal(t, "Parcel has been cancelled by sender.", last.Note())
	})

	t.Run("sender cancels an approved parcel", func(t *testing.T) {
		p, senderID, _ := newTestParcel(t, parcel.StatusApproved)

		require.NoError(t, p.Cancel(senderID, now))
		assert.Equal(t, parcel.StatusRequested, p.Status())
	})

	t.Run("cancel in transit fails and mutates nothing", func(t *testing.T) {
		p, senderID, _ := newTestParcel(t, parcel.StatusInTransit)
		before := len(p.StatusLogs())

		err := p.Cancel(senderID, now)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Contains(t, err.Error(), "in transit")
		assert.Equal(t, parcel.StatusInTransit, p.Status())
		assert.Len(t, p.StatusLogs(), before)
	})
}

func TestParcel_ConfirmDelivery(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	t.Run("receiver confirms an in-transit parcel", func(t *testing.T) {
		p, _, receiverID := newTestParcel(t, parcel.StatusInTransit)
		before := len(p.StatusLogs())

		require.NoError(t, p.ConfirmDelivery(receiverID, "", now))

		assert.Equal(t, parcel.StatusDelivered, p.Status())
		require.NotNil(t, p.DeliveredAt())
		assert.Equal(t, now, *p.DeliveredAt())

		logs := p.StatusLogs()
		require.Len(t, logs, before+1)
		last := logs[len(logs)-1]
		assert.Equal(t, parcel.StatusDelivered, last.Status())
		assert.Equal(t, "Dhaka", last.Location())
		assert.Equal(t, "Parcel has been delivered successfully.", last.Note())
	})

	t.Run("custom note is kept", func(t *testing.T) {
		p, _, receiverID := newTestParcel(t, parcel.StatusInTransit)

		require.NoError(t, p.ConfirmDelivery(receiverID, "left at the gate", now))

		logs := p.StatusLogs()
		assert.Equal(t, "left at the gate", logs[len(logs)-1].Note())
	})

	t.Run("confirm on approved parcel fails and mutates nothing", func(t *testing.T) {
		p, _, receiverID := newTestParcel(t, parcel.StatusApproved)
		before := len(p.StatusLogs())

		err := p.ConfirmDelivery(receiverID, "", now)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, parcel.StatusApproved, p.Status())
		assert.Nil(t, p.DeliveredAt())
		assert.Len(t, p.StatusLogs(), before)
	})
}

func TestParcel_Reschedule(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	newDate := time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC)

	t.Run("log-only event leaves status unchanged", func(t *testing.T) {
		p, _, receiverID := newTestParcel(t, parcel.StatusInTransit)
		before := len(p.StatusLogs())

		require.NoError(t, p.Reschedule(receiverID, newDate, now))

		assert.Equal(t, parcel.StatusInTransit, p.Status())
		logs := p.StatusLogs()
		require.Len(t, logs, before+1)
		last := logs[len(logs)-1]
		assert.Equal(t, parcel.EventRescheduled, last.Event())
		assert.Equal(t, parcel.StatusInTransit, last.Status())
		assert.Contains(t, last.Note(), "2026-09-02T10:00:00Z")
	})

	t.Run("requires a proposed date", func(t *testing.T) {
		p, _, receiverID := newTestParcel(t, parcel.StatusInTransit)

		err := p.Reschedule(receiverID, time.Time{}, now)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("only in transit", func(t *testing.T) {
		p, _, receiverID := newTestParcel(t, parcel.StatusApproved)

		err := p.Reschedule(receiverID, newDate, now)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestParcel_Return(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	t.Run("receiver returns an in-transit parcel", func(t *testing.T) {
		p, _, receiverID := newTestParcel(t, parcel.StatusInTransit)

		require.NoError(t, p.Return(receiverID, now))

		assert.Equal(t, parcel.StatusReturned, p.Status())
		logs := p.StatusLogs()
		last := logs[len(logs)-1]
		assert.Equal(t, "N/A", last.Location())
		assert.Equal(t, "Parcel has been returned by receiver", last.Note())
	})

	t.Run("delivered parcel cannot be returned", func(t *testing.T) {
		p, _, receiverID := newTestParcel(t, parcel.StatusDelivered)
		before := len(p.StatusLogs())

		err := p.Return(receiverID, now)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Contains(t, err.Error(), "delivered parcel can't be returned")
		assert.Len(t, p.StatusLogs(), before)
	})
}

func TestParcel_OverrideStatus(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	adminID := kernel.NewUUID()

	t.Run("admin walks the parcel through the lifecycle", func(t *testing.T) {
		p, _, _ := newTestParcel(t, parcel.StatusRequested)

		require.NoError(t, p.OverrideStatus(adminID, parcel.StatusApproved, "", now))
		require.NoError(t, p.OverrideStatus(adminID, parcel.StatusInTransit, "", now))
		assert.Nil(t, p.DeliveredAt())

		require.NoError(t, p.OverrideStatus(adminID, parcel.StatusDelivered, "", now))
		assert.Equal(t, parcel.StatusDelivered, p.Status())
		require.NotNil(t, p.DeliveredAt())

		logs := p.StatusLogs()
		require.Len(t, logs, 4)
		last := logs[len(logs)-1]
		assert.Equal(t, "Admin Office", last.Location())
		assert.Equal(t, "Status updated to DELIVERED", last.Note())
	})

	t.Run("delivered parcel rejects a different target and mutates nothing", func(t *testing.T) {
		p, _, _ := newTestParcel(t, parcel.StatusDelivered)
		before := len(p.StatusLogs())
		deliveredAt := *p.DeliveredAt()

		err := p.OverrideStatus(adminID, parcel.StatusApproved, "", now)

		require.ErrorIs(t, err, errs.ErrOperationForbidden)
		assert.Equal(t, parcel.StatusDelivered, p.Status())
		assert.Equal(t, deliveredAt, *p.DeliveredAt())
		assert.Len(t, p.StatusLogs(), before)
	})

	t.Run("redundant delivered override keeps the original timestamp", func(t *testing.T) {
		p, _, _ := newTestParcel(t, parcel.StatusDelivered)
		deliveredAt := *p.DeliveredAt()

		require.NoError(t, p.OverrideStatus(adminID, parcel.StatusDelivered, "re-confirmed", now.Add(time.Hour)))
		assert.Equal(t, deliveredAt, *p.DeliveredAt())
	})
}

func TestParcel_ToggleBlock(t *testing.T) {
	t.Run("toggling twice restores the original value", func(t *testing.T) {
		p, _, _ := newTestParcel(t, parcel.StatusRequested)

		assert.True(t, p.ToggleBlock())
		assert.True(t, p.IsBlocked())
		assert.False(t, p.ToggleBlock())
		assert.False(t, p.IsBlocked())
	})

	t.Run("does not append a log entry", func(t *testing.T) {
		p, _, _ := newTestParcel(t, parcel.StatusRequested)
		before := len(p.StatusLogs())

		p.ToggleBlock()
		assert.Len(t, p.StatusLogs(), before)
	})
}

func TestRestoreParcel(t *testing.T) {
	now := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)

	t.Run("deliveredAt must match delivered status", func(t *testing.T) {
		p, _, _ := newTestParcel(t, parcel.StatusRequested)

		_, err := parcel.RestoreParcel(p.ID(), p.TrackingID(), p.Sender(), p.Receiver(),
			p.ReceiverInfo(), p.Details(), p.DeliveryFee(), parcel.StatusDelivered,
			p.StatusLogs(), false, now, nil)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		deliveredAt := now.Add(time.Hour)
		_, err = parcel.RestoreParcel(p.ID(), p.TrackingID(), p.Sender(), p.Receiver(),
			p.ReceiverInfo(), p.Details(), p.DeliveryFee(), parcel.StatusRequested,
			p.StatusLogs(), false, now, &deliveredAt)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("round trips an aggregate", func(t *testing.T) {
		p, _, _ := newTestParcel(t, parcel.StatusInTransit)

		restored, err := parcel.RestoreParcel(p.ID(), p.TrackingID(), p.Sender(), p.Receiver(),
			p.ReceiverInfo(), p.Details(), p.DeliveryFee(), p.Status(),
			p.StatusLogs(), p.IsBlocked(), p.RequestedAt(), p.DeliveredAt())

		require.NoError(t, err)
		assert.True(t, restored.IsEqual(p))
		assert.Equal(t, p.Status(), restored.Status())
		assert.Len(t, restored.StatusLogs(), len(p.StatusLogs()))
	})
}
