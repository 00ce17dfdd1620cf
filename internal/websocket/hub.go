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

// Package websocket maintains the admin change feed: an in-memory registry of
// connected admin editors that receives an event for every successful content
// write. Delivery is best-effort; a peer that fails a write is dropped.
package websocket

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// ErrHubFull is returned when the connection limit is reached
var ErrHubFull = errors.New("change feed connection limit reached")

// writeWait bounds each broadcast write. A peer that cannot accept an event
// within it counts as a failed write and is dropped, so a stalled connection
// never holds the registry lock. Variable so tests can shorten it.
var writeWait = 5 * time.Second

// ChangeEvent describes one content mutation
type ChangeEvent struct {
	Resource string    `json:"resource"`
	Action   string    `json:"action"`
	At       time.Time `json:"at"`
}

// Hub registers admin feed connections and broadcasts change events.
// The mutex serializes registry mutation and broadcast writes; gorilla
// connections do not allow concurrent writers.
type Hub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
	max   int
}

// NewHub creates a hub with the given connection cap
func NewHub(maxConnections int) *Hub {
	return &Hub{
		conns: make(map[*websocket.Conn]struct{}),
		max:   maxConnections,
	}
}

// Add registers a connection. Fails with ErrHubFull at the cap.
func (h *Hub) Add(conn *websocket.Conn) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.max > 0 && len(h.conns) >= h.max {
		return ErrHubFull
	}
	h.conns[conn] = struct{}{}
	return nil
}

// Remove unregisters and closes a connection
func (h *Hub) Remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.conns[conn]; ok {
		delete(h.conns, conn)
		conn.Close()
	}
}

// Count returns the number of connected clients
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

// Broadcast delivers a change event to every connected client. Peers whose
// write fails or misses the write deadline are closed and removed.
func (h *Hub) Broadcast(resource, action string) {
	event := ChangeEvent{
		Resource: resource,
		Action:   action,
		At:       time.Now().UTC(),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(event); err != nil {
			log.Printf("[WARN] dropping change feed client: %v", err)
			delete(h.conns, conn)
			conn.Close()
		}
	}
}

// Shutdown closes all connections
func (h *Hub) Shutdown() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		conn.Close()
		delete(h.conns, conn)
	}
}
