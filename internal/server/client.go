package server

import (
	"net/http"
	"time"

	"github.com/bisarnacki/magog/internal/engine"
	"github.com/bisarnacki/magog/pkg/api"
	"github.com/bisarnacki/magog/pkg/logger"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - посредник между Websocket и GameService
type Client struct {
	Game    *engine.GameService
	Conn    *websocket.Conn
	Send    chan api.ServerResponse
	Session string
}

func NewClient(game *engine.GameService, conn *websocket.Conn, session string) *Client {
	return &Client{
		Game:    game,
		Conn:    conn,
		Send:    make(chan api.ServerResponse, 256),
		Session: session,
	}
}

// readPump читает команды от клиента
func (c *Client) readPump() {
	log := logger.Log.WithFields(logrus.Fields{
		"component": "ws_client",
		"session":   c.Session,
	})
	defer func() {
		c.Game.Hub.Unregister(c.Session)
		if err := c.Conn.Close(); err != nil {
			log.WithError(err).Warn("failed to close websocket connection")
		}
		log.Info("Client disconnected")
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			log.WithError(err).Warn("failed to set pong read deadline")
		}
		return nil
	})

	// 1. ПОДПИСКА НА ОБНОВЛЕНИЯ
	gameUpdates := c.Game.Hub.Register(c.Session)

	// Запускаем пересылку обновлений из Hub в writePump
	go func() {
		for msg := range gameUpdates {
			c.Send <- msg
		}
		close(c.Send)
	}()
	log.Info("Client connected")

	// Отправляем INIT (триггер первой отрисовки)
	c.Game.ProcessCommand(c.Session, api.ClientCommand{Action: "INIT"})

	// 2. ЦИКЛ ЧТЕНИЯ КОМАНД
	for {
		var cmd api.ClientCommand
		err := c.Conn.ReadJSON(&cmd)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.WithError(err).Error("WS error")
			}
			break
		}
		cmd.Token = c.Session
		if err := c.Game.ProcessCommand(c.Session, cmd); err != nil {
			c.Game.Hub.SendTo(c.Session, api.ServerResponse{Type: "ERROR", Error: err.Error()})
		}
	}
}

// writePump отправляет данные клиенту + Ping
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("failed to close websocket connection in writePump")
		}
	}()

	for {
		select {
		case message, ok := <-c.Send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					logger.Log.WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.Conn.WriteJSON(message); err != nil {
				logger.Log.WithError(err).Debug("write json message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				logger.Log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
