package vehicle_test

import (
	"testing"

	"gigboard/internal/core/domain/model/vehicle"
	"gigboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewState(t *testing.T) {
	t.Run("creates a validated snapshot", func(t *testing.T) {
		s, err := vehicle.NewState(42.5, 78, 22)
		require.NoError(t, err)

		assert.InDelta(t, 42.5, s.SpeedKph(), 1e-9)
		assert.Equal(t, 78, s.BatteryPct())
		assert.InDelta(t, 22.0, s.OutsideTempC(), 1e-9)
		require.NoError(t, s.Validate())
	})

	t.Run("rejects negative speed", func(t *testing.T) {
		_, err := vehicle.NewState(-1, 50, 22)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects battery outside 0..100", func(t *testing.T) {
		_, err := vehicle.NewState(0, -5, 22)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = vehicle.NewState(0, 140, 22)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var s vehicle.State
		require.ErrorIs(t, s.Validate(), errs.ErrValueIsRequired)
	})
}

func TestState_IsParked(t *testing.T) {
	parked, err := vehicle.NewState(0, 80, 20)
	require.NoError(t, err)
	assert.True(t, parked.IsParked())

	crawling, err := vehicle.NewState(0.5, 80, 20)
	require.NoError(t, err)
	assert.False(t, crawling.IsParked())
}

func TestState_Access(t *testing.T) {
	t.Run("parked grants full access", func(t *testing.T) {
		s, err := vehicle.NewState(0, 80, 20)
		require.NoError(t, err)
		assert.Equal(t, vehicle.FullAccess, s.Access())
	})

	t.Run("moving restricts", func(t *testing.T) {
		s, err := vehicle.NewState(30, 80, 20)
		require.NoError(t, err)
		assert.Equal(t, vehicle.Restricted, s.Access())
	})
}

func TestAccessLevel_String(t *testing.T) {
	assert.Equal(t, "full-access", vehicle.FullAccess.String())
	assert.Equal(t, "restricted", vehicle.Restricted.String())
}
