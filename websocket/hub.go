package websocket

import (
	"log"
	"sync"

	"github.com/stayscout/travel_api/models"
	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

type Client struct {
	UserID uuid.UUID
	Conn   *websocket.Conn
}

// BookingEvent is pushed to the guest and the host whenever a booking is
// created or changes status.
type BookingEvent struct {
	Event     string      `json:"event"`
	BookingID string      `json:"booking_id"`
	Reference string      `json:"reference"`
	ListingID string      `json:"listing_id"`
	Status    string      `json:"status"`
	Targets   []uuid.UUID `json:"-"`
}

var clients = make(map[uuid.UUID]*websocket.Conn)
var clientsMu sync.RWMutex
var Register = make(chan *Client)
var Unregister = make(chan *Client)
var Broadcast = make(chan *BookingEvent, 16)

func RunHub() {
	for {
		select {
		case client := <-Register:
			clientsMu.Lock()
			clients[client.UserID] = client.Conn
			clientsMu.Unlock()
		case client := <-Unregister:
			clientsMu.Lock()
			if conn, ok := clients[client.UserID]; ok && conn == client.Conn {
				delete(clients, client.UserID)
			}
			clientsMu.Unlock()
		case event := <-Broadcast:
			deliver(event)
		}
	}
}

func deliver(event *BookingEvent) {
	var stale []uuid.UUID

	clientsMu.RLock()
	for _, target := range event.Targets {
		conn, ok := clients[target]
		if !ok {
			continue
		}
		if err := conn.WriteJSON(event); err != nil {
			log.Printf("Error sending booking event to client %s: %v", target, err)
			conn.Close()
			stale = append(stale, target)
		}
	}
	clientsMu.RUnlock()

	if len(stale) > 0 {
		clientsMu.Lock()
		for _, target := range stale {
			delete(clients, target)
		}
		clientsMu.Unlock()
	}
}

// PublishBookingEvent notifies the guest and the listing's host. The booking
// must have Listing preloaded so the host id is known.
func PublishBookingEvent(booking *models.Booking, event string) {
	ev := &BookingEvent{
		Event:     event,
		BookingID: booking.ID.String(),
		Reference: booking.Reference,
		ListingID: booking.ListingID.String(),
		Status:    booking.Status,
		Targets:   []uuid.UUID{booking.GuestID, booking.Listing.HostID},
	}
	select {
	case Broadcast <- ev:
	default:
		log.Printf("Booking event channel full, dropping event %s for booking %s", event, booking.ID)
	}
}
