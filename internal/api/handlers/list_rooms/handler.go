package list_rooms

import (
	"net/http"

	"github.com/m04kA/hotel-booking-service/internal/api/handlers"
	"github.com/m04kA/hotel-booking-service/internal/domain"
)

// RoomResponse HTTP response model
type RoomResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	NightPrice float64 `json:"nightPrice"`
	MaxGuests  int     `json:"maxGuests"`
	Currency   string  `json:"currency"`
}

type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

type Handler struct {
	rooms []domain.Room
}

func NewHandler(rooms []domain.Room) *Handler {
	return &Handler{rooms: rooms}
}

// Handle GET /api/v1/rooms
func (h *Handler) Handle(w http.ResponseWriter, _ *http.Request) {
	resp := RoomListResponse{Rooms: make([]RoomResponse, 0, len(h.rooms))}
	for _, room := range h.rooms {
		resp.Rooms = append(resp.Rooms, RoomResponse{
			ID:         room.ID,
			Name:       room.Name,
			NightPrice: room.NightPrice,
			MaxGuests:  room.MaxGuests,
			Currency:   domain.Currency,
		})
	}
	handlers.RespondJSON(w, http.StatusOK, resp)
}
