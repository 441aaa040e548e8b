package websocket

import (
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
)

// Live spot-price ticker for the trade page. Clients subscribe over /ws/rates
// and receive the full rate map on every refresh.

var (
	clients   = make(map[*websocket.Conn]bool)
	clientsMu sync.RWMutex
)

var (
	Register   = make(chan *websocket.Conn)
	Unregister = make(chan *websocket.Conn)
	Broadcast  = make(chan map[string]float64, 1)
)

func RunHub() {
	for {
		select {
		case conn := <-Register:
			clientsMu.Lock()
			clients[conn] = true
			total := len(clients)
			clientsMu.Unlock()
			log.Printf("Rates ticker client connected (%d total)", total)
		case conn := <-Unregister:
			clientsMu.Lock()
			delete(clients, conn)
			clientsMu.Unlock()
		case rates := <-Broadcast:
			clientsMu.RLock()
			var stale []*websocket.Conn
			for conn := range clients {
				if err := conn.WriteJSON(rates); err != nil {
					log.Printf("Error pushing rates to client: %v", err)
					conn.Close()
					stale = append(stale, conn)
				}
			}
			clientsMu.RUnlock()
			if len(stale) > 0 {
				clientsMu.Lock()
				for _, conn := range stale {
					delete(clients, conn)
				}
				clientsMu.Unlock()
			}
		}
	}
}

// BroadcastRates hands a refreshed rate map to the hub without blocking the
// fetcher when nobody is listening.
func BroadcastRates(rates map[string]float64) {
	select {
	case Broadcast <- rates:
	default:
	}
}
