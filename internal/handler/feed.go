/*
 *  Copyright (c) 2026, Zhezkazgan University. All Rights Reserved.
 *
 *  Licensed under the Apache License, Version 2.0 (the "License");
 *  you may not use this file except in compliance with the License.
 *  You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 *  Unless required by applicable law or agreed to in writing, software
 *  distributed under the License is distributed on an "AS IS" BASIS,
 *  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *  See the License for the specific language governing permissions and
 *  limitations under the License.
 *
 */

package handler

import (
	"errors"
	"net/http"
	"time"

	ws "campus-api/internal/websocket"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

func closeDeadline() time.Time {
	return time.Now().Add(5 * time.Second)
}

// FeedHandler upgrades admin clients onto the content change feed. The route
// sits inside the session-gated group, so the upgrade only happens for an
// authenticated editor.
type FeedHandler struct {
	hub      *ws.Hub
	upgrader websocket.Upgrader
}

func NewFeedHandler(hub *ws.Hub) *FeedHandler {
	return &FeedHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Admin UI and API share an origin in deployment; the session
			// cookie gate has already run by the time we get here.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (h *FeedHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/ws/content", h.Connect)
}

// Connect upgrades the request and keeps the connection registered until the
// client goes away. Clients only receive events; inbound messages are drained
// and discarded.
func (h *FeedHandler) Connect(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error response.
		return
	}

	if err := h.hub.Add(conn); err != nil {
		if errors.Is(err, ws.ErrHubFull) {
			conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "connection limit reached"),
				closeDeadline())
		}
		conn.Close()
		return
	}

	go h.drain(conn)
}

func (h *FeedHandler) drain(conn *websocket.Conn) {
	defer h.hub.Remove(conn)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
