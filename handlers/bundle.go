package handlers

// HandlerBundle groups all endpoint handlers into one struct so route
// registration takes a single dependency.
type HandlerBundle struct {
	Auth      *AuthHandler
	Bookings  *BookingHandler
	Rooms     *RoomHandler
	Guests    *GuestHandler
	Staff     *StaffHandler
	Inventory *InventoryHandler
	Settings  *SettingsHandler
	Search    *SearchHandler
}
