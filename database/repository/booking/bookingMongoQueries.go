// File: database/repository/booking/bookingMongoQueries.go
package bookingRepo

import (
	"context"
	"fmt"

	"hotelify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetByID retrieves a booking by its unique ID.
func (r *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	var booking models.Booking
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("booking with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	return &booking, nil
}

// List retrieves bookings matching the filter, newest first. A checkIn bound
// keeps bookings ending on or after it, a checkOut bound keeps bookings
// starting on or before it, so together they select bookings overlapping
// the requested window.
func (r *MongoBookingRepo) List(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.GuestID != "" {
		query["guestId"] = filter.GuestID
	}
	if filter.RoomID != "" {
		query["roomId"] = filter.RoomID
	}
	if filter.CheckIn != nil {
		query["checkOut"] = bson.M{"$gte": *filter.CheckIn}
	}
	if filter.CheckOut != nil {
		query["checkIn"] = bson.M{"$lte": *filter.CheckOut}
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}

// FindActiveByRoom retrieves confirmed and checked-in bookings for a room.
func (r *MongoBookingRepo) FindActiveByRoom(ctx context.Context, roomID string) ([]models.Booking, error) {
	filter := bson.M{
		"roomId": roomID,
		"status": bson.M{"$in": bson.A{models.BookingConfirmed, models.BookingCheckedIn}},
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch active bookings for room %s: %w", roomID, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}

// SearchJoined finds bookings whose room number or guest name matches the
// query, joined against the rooms and guests collections.
func (r *MongoBookingRepo) SearchJoined(ctx context.Context, query string, limit int64) ([]models.BookingSearchRow, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         "rooms",
			"localField":   "roomId",
			"foreignField": "id",
			"as":           "room",
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "guests",
			"localField":   "guestId",
			"foreignField": "id",
			"as":           "guest",
		}}},
		{{Key: "$unwind", Value: "$room"}},
		{{Key: "$unwind", Value: "$guest"}},
		{{Key: "$match", Value: bson.M{
			"$or": bson.A{
				bson.M{"room.number": bson.M{"$regex": query, "$options": "i"}},
				bson.M{"guest.name": bson.M{"$regex": query, "$options": "i"}},
			},
		}}},
		{{Key: "$project", Value: bson.M{
			"id":         1,
			"roomNumber": "$room.number",
			"guestName":  "$guest.name",
		}}},
		{{Key: "$limit", Value: limit}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to search bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []models.BookingSearchRow
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("error decoding booking search rows: %w", err)
	}
	return rows, nil
}
