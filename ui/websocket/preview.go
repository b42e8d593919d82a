package websocket

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"

	"github.com/floatkit/floatkit/infrastructure/valkey"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	valkeylib "github.com/valkey-io/valkey-go"
)

// PreviewMessage is pushed to builder sessions whenever a widget is saved,
// carrying the freshly rendered script.
type PreviewMessage struct {
	WidgetID  string `json:"widget_id"`
	Script    string `json:"script"`
	UpdatedAt string `json:"updated_at"`
	SenderID  string `json:"sender_id,omitempty"`
}

type registration struct {
	conn     *websocket.Conn
	widgetID string
}

var (
	// Clients maps each connection to the widget id it watches.
	Clients    = make(map[*websocket.Conn]string)
	Register   = make(chan registration)
	Push       = make(chan PreviewMessage)
	Unregister = make(chan *websocket.Conn)

	vkClient *valkey.Client
	wsChan   = "floatkit:preview_broadcast"
	localID  string
)

// SetValkeyClient enables cross-server preview propagation via Pub/Sub, so
// a save on one server reaches builder sessions connected to another.
func SetValkeyClient(client *valkey.Client, serverID string) {
	vkClient = client
	localID = serverID
}

func handleRegister(reg registration) {
	Clients[reg.conn] = reg.widgetID
	logrus.Debugf("[WS] Preview connection registered for widget %s", reg.widgetID)
}

func handleUnregister(conn *websocket.Conn) {
	delete(Clients, conn)
	logrus.Debug("[WS] Preview connection unregistered")
}

func pushToLocal(message PreviewMessage) {
	payload, err := json.Marshal(message)
	if err != nil {
		logrus.Errorf("[WS] Marshal error: %v", err)
		return
	}

	for conn, widgetID := range Clients {
		if widgetID != message.WidgetID {
			continue
		}
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			logrus.Errorf("[WS] Write error: %v", err)
			closeConnection(conn)
		}
	}
}

func publishToValkey(message PreviewMessage) {
	if vkClient == nil {
		return
	}

	message.SenderID = localID
	data, err := json.Marshal(message)
	if err != nil {
		return
	}

	ctx := context.Background()
	cmd := vkClient.Inner().B().Publish().Channel(wsChan).Message(string(data)).Build()
	if err := vkClient.Inner().Do(ctx, cmd).Error(); err != nil {
		logrus.Errorf("[WS] Failed to publish to Valkey: %v", err)
	}
}

func startValkeySubscriber() {
	if vkClient == nil {
		return
	}

	logrus.Info("[WS] Starting Valkey Pub/Sub subscriber for preview events")
	go func() {
		err := vkClient.Inner().Receive(context.Background(), vkClient.Inner().B().Subscribe().Channel(wsChan).Build(), func(msg valkeylib.PubSubMessage) {
			var previewMsg PreviewMessage
			if err := json.Unmarshal([]byte(msg.Message), &previewMsg); err == nil {
				// Avoid loops: ignore messages sent by this same instance
				if previewMsg.SenderID == localID {
					return
				}
				pushToLocal(previewMsg)
			}
		})
		if err != nil {
			logrus.Errorf("[WS] Valkey subscriber failed: %v", err)
		}
	}()
}

func closeConnection(conn *websocket.Conn) {
	_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
	_ = conn.Close()
	delete(Clients, conn)
}

func RunHub() {
	if vkClient != nil {
		startValkeySubscriber()
	}

	for {
		select {
		case reg := <-Register:
			handleRegister(reg)

		case conn := <-Unregister:
			handleUnregister(conn)

		case message := <-Push:
			pushToLocal(message)

			if vkClient != nil {
				publishToValkey(message)
			}
		}
	}
}

// RegisterRoutes mounts the preview socket. Builders connect to
// /ws/preview/:id and receive a PreviewMessage on every save of that widget.
func RegisterRoutes(app fiber.Router) {
	app.Use("/ws/preview/:id", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})

	app.Get("/ws/preview/:id", websocket.New(func(conn *websocket.Conn) {
		defer func() {
			Unregister <- conn
			_ = conn.Close()
		}()

		Register <- registration{conn: conn, widgetID: conn.Params("id")}

		// The socket is push-only; reads just keep the connection alive and
		// detect the close.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					logrus.Debugf("[WS] read error: %v", err)
				}
				return
			}
		}
	}))
}
