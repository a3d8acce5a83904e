package reservation

// Booking is the part of a reservation the availability calculation needs.
type Booking struct {
	RoomID int64
	Window StayWindow
}

// AvailableRooms returns the rooms that no booking overlapping window
// refers to. Input order is preserved.
func AvailableRooms[R any](rooms []R, roomID func(R) int64, bookings []Booking, window StayWindow) []R {
	occupied := OccupiedRoomIDs(bookings, window)

	available := make([]R, 0, len(rooms))
	for _, r := range rooms {
		if _, taken := occupied[roomID(r)]; !taken {
			available = append(available, r)
		}
	}
	return available
}

// OccupiedRoomIDs collects the rooms of the bookings overlapping window.
func OccupiedRoomIDs(bookings []Booking, window StayWindow) map[int64]struct{} {
	occupied := make(map[int64]struct{}, len(bookings))
	for _, b := range bookings {
		if b.Window.Overlaps(window) {
			occupied[b.RoomID] = struct{}{}
		}
	}
	return occupied
}
