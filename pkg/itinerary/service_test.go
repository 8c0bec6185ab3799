package itinerary

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wayplan/wayplan/internal/event_bus"
	"github.com/wayplan/wayplan/internal/utils"
)

var ctx = context.Background()

var repoStub = NewStubRepository()

var clock = &utils.MockClock{FixedNow: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}

var service Service

func setup(t *testing.T) func() {
	service = NewService(repoStub, event_bus.NewEventBus(), clock)
	return func() {
		t.Log("Teardown after test")
		repoStub.Cleanup()
	}
}

func japanTrip() Itinerary {
	return New("Japan", "Tokyo", "2026-04-01", "2026-04-05", "leisure")
}

func TestServiceImpl_Create(t *testing.T) {
	t.Run("should create and persist an itinerary", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		created, err := service.Create(ctx, japanTrip())

		// then
		assert.NoError(t, err)
		assert.Equal(t, "Japan", created.TripName)

		stored, err := repoStub.LoadAll(ctx)
		require.NoError(t, err)
		assert.Contains(t, stored, "Japan")
	})

	t.Run("should reject a duplicate trip name", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		_, err := service.Create(ctx, japanTrip())
		require.NoError(t, err)

		// when
		_, err = service.Create(ctx, japanTrip())

		// then
		assert.ErrorIs(t, err, ErrAlreadyExists)
		assert.Contains(t, err.Error(), "Japan")
	})

	t.Run("should trim surrounding whitespace from the trip name", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		it := japanTrip()
		it.TripName = "  Japan  "

		// when
		created, err := service.Create(ctx, it)

		// then
		assert.NoError(t, err)
		assert.Equal(t, "Japan", created.TripName)
	})
}

func TestServiceImpl_Update(t *testing.T) {
	t.Run("should replace an existing itinerary", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		_, err := service.Create(ctx, japanTrip())
		require.NoError(t, err)
		changed := japanTrip()
		changed.Location = "Kyoto"

		// when
		err = service.Update(ctx, changed)

		// then
		assert.NoError(t, err)
		it, err := service.Get(ctx, "Japan")
		require.NoError(t, err)
		assert.Equal(t, "Kyoto", it.Location)
	})

	t.Run("should fail for an unknown trip", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		err := service.Update(ctx, japanTrip())

		// then
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestServiceImpl_Activities(t *testing.T) {
	t.Run("should add a valid activity", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		_, err := service.Create(ctx, japanTrip())
		require.NoError(t, err)

		// when
		err = service.AddActivity(ctx, "Japan", Activity{
			Date: "2026-04-02", StartTime: "09:00", EndTime: "11:00", Description: "Market",
		})

		// then
		assert.NoError(t, err)
		it, err := service.Get(ctx, "Japan")
		require.NoError(t, err)
		require.Len(t, it.Activities, 1)
	})

	t.Run("should reject an activity outside the trip dates", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		_, err := service.Create(ctx, japanTrip())
		require.NoError(t, err)

		// when
		err = service.AddActivity(ctx, "Japan", Activity{
			Date: "2026-05-01", StartTime: "09:00", EndTime: "11:00", Description: "Market",
		})

		// then
		assert.ErrorIs(t, err, ErrActivityOutsideTrip)
		it, getErr := service.Get(ctx, "Japan")
		require.NoError(t, getErr)
		assert.Empty(t, it.Activities)
	})

	t.Run("should toggle and remove by description", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		_, err := service.Create(ctx, japanTrip())
		require.NoError(t, err)
		err = service.AddActivity(ctx, "Japan", Activity{
			Date: "2026-04-02", StartTime: "09:00", EndTime: "11:00", Description: "Market",
		})
		require.NoError(t, err)

		// when
		err = service.ToggleActivityCompleted(ctx, "Japan", "Market")
		require.NoError(t, err)
		it, err := service.Get(ctx, "Japan")
		require.NoError(t, err)
		assert.True(t, it.Activities[0].Completed)

		err = service.RemoveActivity(ctx, "Japan", "Market")

		// then
		assert.NoError(t, err)
		it, err = service.Get(ctx, "Japan")
		require.NoError(t, err)
		assert.Empty(t, it.Activities)
	})

	t.Run("should report a missing activity", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		_, err := service.Create(ctx, japanTrip())
		require.NoError(t, err)

		// when
		err = service.RemoveActivity(ctx, "Japan", "Unknown")

		// then
		assert.ErrorIs(t, err, ErrActivityNotFound)
	})
}

func TestServiceImpl_Status(t *testing.T) {
	t.Run("should report each phase relative to today", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		_, err := service.Create(ctx, japanTrip())
		require.NoError(t, err)
		_, err = service.Create(ctx, New("Now", "Bali", "2026-02-25", "2026-03-03", "beach"))
		require.NoError(t, err)
		_, err = service.Create(ctx, New("Rome weekend", "Rome", "2025-10-01", "2025-10-05", "city"))
		require.NoError(t, err)

		// when / then
		for tripName, expected := range map[string]Status{
			"Japan":        StatusUpcoming,
			"Now":          StatusOngoing,
			"Rome weekend": StatusPast,
		} {
			status, err := service.Status(ctx, tripName)
			require.NoError(t, err)
			assert.Equal(t, expected, status, tripName)
		}
	})

	t.Run("should treat the end date as part of the trip", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		_, err := service.Create(ctx, New("Last day", "Bali", "2026-02-25", "2026-03-01", "beach"))
		require.NoError(t, err)

		// when
		status, err := service.Status(ctx, "Last day")

		// then
		require.NoError(t, err)
		assert.Equal(t, StatusOngoing, status)
	})

	t.Run("should fail for an unknown trip", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		status, err := service.Status(ctx, "Nowhere")

		// then
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Equal(t, StatusUnknown, status)
	})
}

func TestServiceImpl_GetAll(t *testing.T) {
	t.Run("should hand out a copy of the collection", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		_, err := service.Create(ctx, japanTrip())
		require.NoError(t, err)

		// when
		itineraries, err := service.GetAll(ctx)
		require.NoError(t, err)
		delete(itineraries, "Japan")

		// then
		_, err = service.Get(ctx, "Japan")
		assert.NoError(t, err)
	})
}

func TestServiceImpl_Upcoming(t *testing.T) {
	t.Run("should list future trips soonest first", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		_, err := service.Create(ctx, japanTrip())
		require.NoError(t, err)
		_, err = service.Create(ctx, New("Iceland", "Reykjavik", "2026-03-10", "2026-03-15", "adventure"))
		require.NoError(t, err)
		_, err = service.Create(ctx, New("Past trip", "Rome", "2025-10-01", "2025-10-05", "city"))
		require.NoError(t, err)

		// when
		upcoming, err := service.Upcoming(ctx)

		// then
		require.NoError(t, err)
		require.Len(t, upcoming, 2)
		assert.Equal(t, "Iceland", upcoming[0].TripName)
		assert.Equal(t, "Japan", upcoming[1].TripName)
	})

	t.Run("should exclude a trip that is ongoing today", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		_, err := service.Create(ctx, New("Now", "Bali", "2026-02-25", "2026-03-03", "beach"))
		require.NoError(t, err)

		// when
		upcoming, err := service.Upcoming(ctx)

		// then
		require.NoError(t, err)
		assert.Empty(t, upcoming)
	})
}
