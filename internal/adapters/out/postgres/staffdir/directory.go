// Package staffdir provides the database-backed staff directory used to
// resolve staff identifiers to display names for event payloads.
package staffdir

import (
	"context"
	"errors"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StaffDTO represents the database structure for staff members. The table is
// maintained by the identity system; this adapter only reads it.
type StaffDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName string    `gorm:"type:varchar(255);not null"`
	Role     string    `gorm:"type:varchar(32);not null"`
}

// TableName specifies the database table name for staff entities.
func (StaffDTO) TableName() string {
	return "staff"
}

// GormStaffDirectory implements ports.StaffDirectory using GORM.
type GormStaffDirectory struct {
	db *gorm.DB
}

// NewGormStaffDirectory creates a database-backed staff directory.
func NewGormStaffDirectory(db *gorm.DB) *GormStaffDirectory {
	return &GormStaffDirectory{db: db}
}

// FullName resolves a staff member's display name.
func (d *GormStaffDirectory) FullName(ctx context.Context, staffID kernel.UUID) (string, error) {
	if err := staffID.Validate(); err != nil {
		return "", err
	}

	var dto StaffDTO
	if err := d.db.WithContext(ctx).First(&dto, "id = ?", staffID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", errs.NewObjectNotFoundError("staff", staffID.String())
		}
		return "", err
	}

	return dto.FullName, nil
}
