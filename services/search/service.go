// File: services/search/service.go
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	bookingRepo "hotelify/database/repository/booking"
	guestRepo "hotelify/database/repository/guest"
	roomRepo "hotelify/database/repository/room"
	"hotelify/models"
	"hotelify/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Each entity contributes at most this many hits.
const searchLimit = 5

// Results are cached briefly; the dashboard fires a search per keystroke.
const cacheTTL = 30 * time.Second

// SearchService runs a free-text query across rooms, guests and bookings.
type SearchService interface {
	Global(ctx context.Context, query string) (*models.SearchResults, error)
}

// DefaultSearchService is the production SearchService.
type DefaultSearchService struct {
	Rooms    roomRepo.RoomRepository
	Guests   guestRepo.GuestRepository
	Bookings bookingRepo.BookingRepository
	Cache    *redis.Client
}

// Global fans the query out to the three entity lookups concurrently and
// formats the combined hits.
func (s *DefaultSearchService) Global(ctx context.Context, query string) (*models.SearchResults, error) {
	logger := utils.GetLogger()

	cacheKey := "search:" + query
	if s.Cache != nil {
		if data, err := s.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var cached models.SearchResults
			if err := json.Unmarshal([]byte(data), &cached); err == nil {
				return &cached, nil
			}
		}
	}

	var (
		wg       sync.WaitGroup
		rooms    []models.Room
		guests   []models.Guest
		bookings []models.BookingSearchRow
		errs     [3]error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		rooms, errs[0] = s.Rooms.Search(ctx, query, searchLimit)
	}()
	go func() {
		defer wg.Done()
		guests, errs[1] = s.Guests.Search(ctx, query, searchLimit)
	}()
	go func() {
		defer wg.Done()
		bookings, errs[2] = s.Bookings.SearchJoined(ctx, query, searchLimit)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("search failed: %w", err)
		}
	}

	results := &models.SearchResults{
		Rooms:    make([]models.SearchHit, 0, len(rooms)),
		Guests:   make([]models.SearchHit, 0, len(guests)),
		Bookings: make([]models.SearchHit, 0, len(bookings)),
	}
	for _, r := range rooms {
		results.Rooms = append(results.Rooms, models.SearchHit{
			ID:       r.ID,
			Type:     "room",
			Title:    "Room " + r.Number,
			Subtitle: r.Type,
			URL:      "/rooms?id=" + r.ID,
		})
	}
	for _, g := range guests {
		results.Guests = append(results.Guests, models.SearchHit{
			ID:       g.ID,
			Type:     "guest",
			Title:    g.Name,
			Subtitle: g.Email,
			URL:      "/guests/edit/" + g.ID,
		})
	}
	for _, b := range bookings {
		title := "Booking #" + shortID(b.ID)
		results.Bookings = append(results.Bookings, models.SearchHit{
			ID:       b.ID,
			Type:     "booking",
			Title:    title,
			Subtitle: b.GuestName + " - Room " + b.RoomNumber,
			URL:      "/reservations?id=" + b.ID,
		})
	}

	if s.Cache != nil {
		if data, err := json.Marshal(results); err == nil {
			if err := s.Cache.Set(ctx, cacheKey, data, cacheTTL).Err(); err != nil {
				logger.Debug("failed to cache search results", zap.Error(err))
			}
		}
	}

	return results, nil
}

// shortID keeps the last four characters of an ID for display.
func shortID(id string) string {
	if len(id) <= 4 {
		return id
	}
	return id[len(id)-4:]
}
