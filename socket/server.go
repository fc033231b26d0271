package socket

import (
	"log"

	socketio "github.com/googollee/go-socket.io"

	"lovelink_server/utils"
)

// NewSocketServer initializes the Socket.IO server that relays chat messages.
// Clients join a room named after the pair and receive each other's messages
// as newMessage events. Persistence stays on the HTTP path; this is relay only.
func NewSocketServer() *socketio.Server {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(c socketio.Conn) error {
		log.Println("✅ Socket connected:", c.ID())
		return nil
	})

	server.OnEvent("/", "join", func(c socketio.Conn, data map[string]string) {
		userID := data["userId"]
		targetID := data["targetUserId"]
		if userID == "" || targetID == "" {
			log.Println("❌ Invalid join request")
			return
		}
		room := utils.PairKey(userID, targetID)
		log.Printf("👥 User %s joined room %s\n", userID, room)
		c.Join(room)
	})

	server.OnEvent("/", "sendMessage", func(c socketio.Conn, message map[string]interface{}) {
		senderID, _ := message["senderId"].(string)
		receiverID, _ := message["receiverId"].(string)
		if senderID == "" || receiverID == "" {
			log.Println("❌ Invalid sendMessage payload")
			return
		}
		room := utils.PairKey(senderID, receiverID)
		server.BroadcastToRoom("/", room, "newMessage", message)
	})

	server.OnDisconnect("/", func(c socketio.Conn, reason string) {
		log.Println("❌ Socket disconnected:", c.ID(), reason)
	})

	return server
}
