//go:build unit

package rental_test

import (
	"testing"
	"time"

	"fleetrent/internal/domain/rental"
	"fleetrent/internal/domain/vehicle"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(t *testing.T, start, end time.Time, status rental.Status, isReservation bool) rental.ScheduleEntry {
	t.Helper()
	return rental.ScheduleEntry{
		RentalID:      uuid.New(),
		Period:        mustPeriod(t, start, end),
		Status:        status,
		IsReservation: isReservation,
	}
}

func TestFindConflict(t *testing.T) {
	candidate := mustPeriod(t, day0(10, 0), day0(14, 0))

	t.Run("empty schedule has no conflict", func(t *testing.T) {
		_, conflict := rental.FindConflict(candidate, nil)
		assert.False(t, conflict)
	})

	t.Run("overlapping active entry conflicts", func(t *testing.T) {
		e := entry(t, day0(12, 0), day0(16, 0), rental.StatusActive, false)
		id, conflict := rental.FindConflict(candidate, []rental.ScheduleEntry{e})
		require.True(t, conflict)
		assert.Equal(t, e.RentalID, id)
	})

	t.Run("active reservation occupies its slot", func(t *testing.T) {
		e := entry(t, day0(12, 0), day0(16, 0), rental.StatusActive, true)
		_, conflict := rental.FindConflict(candidate, []rental.ScheduleEntry{e})
		assert.True(t, conflict)
	})

	t.Run("terminal entries are ignored", func(t *testing.T) {
		entries := []rental.ScheduleEntry{
			entry(t, day0(10, 0), day0(14, 0), rental.StatusCompleted, false),
			entry(t, day0(10, 0), day0(14, 0), rental.StatusCancelled, false),
		}
		_, conflict := rental.FindConflict(candidate, entries)
		assert.False(t, conflict)
	})

	t.Run("back-to-back entries do not conflict", func(t *testing.T) {
		entries := []rental.ScheduleEntry{
			entry(t, day0(6, 0), day0(10, 0), rental.StatusActive, false),
			entry(t, day0(14, 0), day0(18, 0), rental.StatusActive, false),
		}
		_, conflict := rental.FindConflict(candidate, entries)
		assert.False(t, conflict)
	})

	t.Run("first conflicting entry is reported", func(t *testing.T) {
		first := entry(t, day0(11, 0), day0(12, 0), rental.StatusActive, false)
		second := entry(t, day0(13, 0), day0(15, 0), rental.StatusActive, false)
		id, conflict := rental.FindConflict(candidate, []rental.ScheduleEntry{first, second})
		require.True(t, conflict)
		assert.Equal(t, first.RentalID, id)
	})
}

func TestResolveVehicleStatus(t *testing.T) {
	now := day0(12, 0)

	t.Run("maintenance wins over everything", func(t *testing.T) {
		entries := []rental.ScheduleEntry{
			entry(t, day0(10, 0), day0(14, 0), rental.StatusActive, false),
		}
		got := rental.ResolveVehicleStatus(now, vehicle.StatusMaintenance, entries)
		assert.Equal(t, vehicle.StatusMaintenance, got)
	})

	t.Run("active rental means rented regardless of dates", func(t *testing.T) {
		entries := []rental.ScheduleEntry{
			entry(t, day0(14, 0), day0(18, 0), rental.StatusActive, false),
		}
		got := rental.ResolveVehicleStatus(now, vehicle.StatusAvailable, entries)
		assert.Equal(t, vehicle.StatusRented, got)
	})

	t.Run("future reservation holds the vehicle", func(t *testing.T) {
		entries := []rental.ScheduleEntry{
			entry(t, day0(14, 0), day0(18, 0), rental.StatusActive, true),
		}
		got := rental.ResolveVehicleStatus(now, vehicle.StatusAvailable, entries)
		assert.Equal(t, vehicle.StatusReserved, got)
	})

	t.Run("expired reservation releases the vehicle", func(t *testing.T) {
		entries := []rental.ScheduleEntry{
			entry(t, day0(6, 0), day0(10, 0), rental.StatusActive, true),
		}
		got := rental.ResolveVehicleStatus(now, vehicle.StatusReserved, entries)
		assert.Equal(t, vehicle.StatusAvailable, got)
	})

	t.Run("no active entries means available", func(t *testing.T) {
		entries := []rental.ScheduleEntry{
			entry(t, day0(6, 0), day0(10, 0), rental.StatusCompleted, false),
		}
		got := rental.ResolveVehicleStatus(now, vehicle.StatusRented, entries)
		assert.Equal(t, vehicle.StatusAvailable, got)
	})

	t.Run("idempotent", func(t *testing.T) {
		entries := []rental.ScheduleEntry{
			entry(t, day0(14, 0), day0(18, 0), rental.StatusActive, true),
		}
		first := rental.ResolveVehicleStatus(now, vehicle.StatusAvailable, entries)
		second := rental.ResolveVehicleStatus(now, first, entries)
		assert.Equal(t, first, second)
	})
}
