package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dost/config"
	"dost/infras/otel/mocks"
	"dost/internal/domains/room/model/dto"
	"dost/internal/domains/room/service"
	"dost/shared/cache"
	"dost/shared/constant"
	gDto "dost/shared/dto"
	"dost/shared/failure"
)

func newDemoService() service.Room {
	cfg := &config.Config{}

	return service.New(nil, cfg, cache.NewMemoryCache(), mocks.NewOtel(), nil, nil)
}

func TestRoomService_GetAll_DemoMode(t *testing.T) {
	svc := newDemoService()

	params := gDto.QueryParams{SortBy: constant.DefaultValueSortBy, SortDir: constant.DefaultValueSortDir}

	res, err := svc.GetAll(context.Background(), params, "", "")
	require.NoError(t, err)

	assert.Equal(t, 3, res.TotalData)
	require.Len(t, res.Rooms, 3)
	assert.Equal(t, "Deluxe King 305", res.Rooms[0].RoomName)

	filtered, err := svc.GetAll(context.Background(), params, "suite", "")
	require.NoError(t, err)

	require.Len(t, filtered.Rooms, 1)
	assert.Equal(t, "Luxury Suite 202", filtered.Rooms[0].RoomName)

	empty, err := svc.GetAll(context.Background(), params, "penthouse", "")
	require.NoError(t, err)

	assert.NotNil(t, empty.Rooms)
	assert.Empty(t, empty.Rooms)
	assert.Zero(t, empty.TotalData)
}

func TestRoomService_Get_DemoMode(t *testing.T) {
	svc := newDemoService()

	room, err := svc.Get(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, "Superior Room 101", room.RoomName)

	_, err = svc.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestRoomService_WritesRejectedInDemoMode(t *testing.T) {
	svc := newDemoService()

	_, err := svc.Create(context.Background(), dto.CreateRoomRequest{
		RoomName: "New Room",
		RoomType: constant.RoomTypeSingle,
		Price:    1000,
		Capacity: 1,
	})
	assert.True(t, errors.Is(err, failure.DemoModeError))

	err = svc.Update(context.Background(), "r1", dto.UpdateRoomRequest{})
	assert.True(t, errors.Is(err, failure.DemoModeError))

	err = svc.Delete(context.Background(), "r1")
	assert.True(t, errors.Is(err, failure.DemoModeError))
}

func TestRoomService_UploadImages_Progress(t *testing.T) {
	svc := newDemoService()

	tests := []struct {
		name  string
		files int
		want  []int
	}{
		{name: "single file", files: 1, want: []int{100}},
		{name: "three files", files: 3, want: []int{33, 67, 100}},
		{name: "four files", files: 4, want: []int{25, 50, 75, 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files := make([]dto.UploadFile, tt.files)

			var progress []int
			results := svc.UploadImages(context.Background(), files, func(p int) {
				progress = append(progress, p)
			})

			assert.Equal(t, tt.want, progress)
			require.Len(t, results, tt.files)

			// Progress never goes backwards and always ends at 100.
			for i := 1; i < len(progress); i++ {
				assert.GreaterOrEqual(t, progress[i], progress[i-1])
			}
			assert.Equal(t, 100, progress[len(progress)-1])

			// Demo mode substitutes the placeholder without reporting errors.
			for _, result := range results {
				assert.Equal(t, constant.PlaceholderImageURL, result.URL)
				assert.Empty(t, result.Error)
			}
		})
	}
}
