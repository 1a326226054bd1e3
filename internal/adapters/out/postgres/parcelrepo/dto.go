// Package parcelrepo provides data transfer objects and mapping functions for
// parcel persistence. It implements the repository pattern for the parcel
// aggregate, converting between the domain model and its relational shape:
// one parcels row plus an append-only status_logs child table.
package parcelrepo

import (
	"time"

	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO represents the database structure for persisting parcel aggregates.
// The tracking id carries a unique index, which is the system-wide uniqueness
// guarantee the generator relies on.
type ParcelDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackingID    string    `gorm:"type:varchar(32);uniqueIndex"`
	SenderID      uuid.UUID `gorm:"type:uuid;index"`
	ReceiverID    uuid.UUID `gorm:"type:uuid;index"`
	ReceiverName  string
	ReceiverPhone string
	Street        string
	City          string
	State         string
	ZipCode       string
	Country       string
	ParcelType    string `gorm:"type:varchar(16)"`
	Weight        float64
	Description   string
	DeclaredValue float64
	DeliveryFee   float64
	CurrentStatus string `gorm:"type:varchar(16);index"`
	IsBlocked     bool
	RequestedAt   time.Time
	DeliveredAt   *time.Time

	StatusLogs []StatusLogDTO `gorm:"foreignKey:ParcelID;references:ID"`
}

// TableName specifies the database table name for parcel entities.
func (ParcelDTO) TableName() string {
	return "parcels"
}

// StatusLogDTO represents one audit trail entry. Rows are insert-only;
// nothing in the system updates or deletes them.
type StatusLogDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParcelID  uuid.UUID `gorm:"type:uuid;index"`
	Event     string    `gorm:"type:varchar(16)"`
	Status    string    `gorm:"type:varchar(16)"`
	Location  string
	Note      string
	UpdatedBy uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time
}

// TableName specifies the database table name for status log entries.
func (StatusLogDTO) TableName() string {
	return "status_logs"
}

// fromDomain converts a parcel aggregate to its database representation,
// including every status log entry currently held by the aggregate.
func fromDomain(aggregate *parcel.Parcel) ParcelDTO {
	logs := aggregate.StatusLogs()
	logDTOs := make([]StatusLogDTO, 0, len(logs))
	for _, l := range logs {
		logDTOs = append(logDTOs, StatusLogDTO{
			ID:        l.ID().Bytes(),
			ParcelID:  aggregate.ID().Bytes(),
			Event:     l.Event().String(),
			Status:    l.Status().String(),
			Location:  l.Location(),
			Note:      l.Note(),
			UpdatedBy: l.UpdatedBy().Bytes(),
			CreatedAt: l.CreatedAt(),
		})
	}

	info := aggregate.ReceiverInfo()
	details := aggregate.Details()

	return ParcelDTO{
		ID:            aggregate.ID().Bytes(),
		TrackingID:    aggregate.TrackingID().String(),
		SenderID:      aggregate.Sender().Bytes(),
		ReceiverID:    aggregate.Receiver().Bytes(),
		ReceiverName:  info.Name(),
		ReceiverPhone: info.Phone(),
		Street:        info.Address().Street(),
		City:          info.Address().City(),
		State:         info.Address().State(),
		ZipCode:       info.Address().ZipCode(),
		Country:       info.Address().Country(),
		ParcelType:    details.Type().String(),
		Weight:        details.Weight(),
		Description:   details.Description(),
		DeclaredValue: details.Value(),
		DeliveryFee:   aggregate.DeliveryFee(),
		CurrentStatus: aggregate.Status().String(),
		IsBlocked:     aggregate.IsBlocked(),
		RequestedAt:   aggregate.RequestedAt(),
		DeliveredAt:   aggregate.DeliveredAt(),
		StatusLogs:    logDTOs,
	}
}

// toDomain converts a database DTO to a parcel aggregate using RestoreParcel.
// The caller must have loaded the status logs in chronological order.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	trackingID, err := kernel.TrackingIDFromString(dto.TrackingID)
	if err != nil {
		return nil, err
	}
	senderID, err := kernel.UUIDFromBytes(dto.SenderID[:])
	if err != nil {
		return nil, err
	}
	receiverID, err := kernel.UUIDFromBytes(dto.ReceiverID[:])
	if err != nil {
		return nil, err
	}

	address, err := parcel.NewAddress(dto.Street, dto.City, dto.State, dto.ZipCode, dto.Country)
	if err != nil {
		return nil, err
	}
	info, err := parcel.NewReceiverInfo(dto.ReceiverName, dto.ReceiverPhone, address)
	if err != nil {
		return nil, err
	}

	parcelType, err := parcel.TypeFromString(dto.ParcelType)
	if err != nil {
		return nil, err
	}
	details, err := parcel.NewDetails(parcelType, dto.Weight, dto.Description, dto.DeclaredValue)
	if err != nil {
		return nil, err
	}

	status, err := parcel.StatusFromString(dto.CurrentStatus)
	if err != nil {
		return nil, err
	}

	logs := make([]parcel.StatusLog, 0, len(dto.StatusLogs))
	for _, l := range dto.StatusLogs {
		entry, logErr := logToDomain(l)
		if logErr != nil {
			return nil, logErr
		}
		logs = append(logs, entry)
	}

	return parcel.RestoreParcel(
		id,
		trackingID,
		senderID,
		receiverID,
		info,
		details,
		dto.DeliveryFee,
		status,
		logs,
		dto.IsBlocked,
		dto.RequestedAt,
		dto.DeliveredAt,
	)
}

func logToDomain(dto StatusLogDTO) (parcel.StatusLog, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return parcel.StatusLog{}, err
	}
	event, err := parcel.EventFromString(dto.Event)
	if err != nil {
		return parcel.StatusLog{}, err
	}
	status, err := parcel.StatusFromString(dto.Status)
	if err != nil {
		return parcel.StatusLog{}, err
	}
	updatedBy, err := kernel.UUIDFromBytes(dto.UpdatedBy[:])
	if err != nil {
		return parcel.StatusLog{}, err
	}

	return parcel.RestoreStatusLog(id, event, status, dto.Location, dto.Note, updatedBy, dto.CreatedAt)
}
