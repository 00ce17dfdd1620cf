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

package websocket

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// feedTestServer upgrades every request and registers the server side of the
// connection with the hub.
func feedTestServer(t *testing.T, hub *Hub) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool { return true },
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		if err := hub.Add(conn); err != nil {
			conn.Close()
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func dialFeed(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHubBroadcast(t *testing.T) {
	hub := NewHub(10)
	server := feedTestServer(t, hub)

	client := dialFeed(t, server)
	require.Eventually(t, func() bool { return hub.Count() == 1 },
		time.Second, 10*time.Millisecond)

	hub.Broadcast("settings", "updated")

	client.SetReadDeadline(time.Now().Add(time.Second))
	var event ChangeEvent
	require.NoError(t, client.ReadJSON(&event))
	assert.Equal(t, "settings", event.Resource)
	assert.Equal(t, "updated", event.Action)
	assert.False(t, event.At.IsZero())
}

func TestHubConnectionCap(t *testing.T) {
	hub := NewHub(2)
	server := feedTestServer(t, hub)

	dialFeed(t, server)
	dialFeed(t, server)
	require.Eventually(t, func() bool { return hub.Count() == 2 },
		time.Second, 10*time.Millisecond)

	// the third upgrade succeeds at the HTTP layer but the hub rejects it
	dialFeed(t, server)
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 2, hub.Count())
}

func TestHubRemove(t *testing.T) {
	hub := NewHub(10)
	server := feedTestServer(t, hub)

	dialFeed(t, server)
	require.Eventually(t, func() bool { return hub.Count() == 1 },
		time.Second, 10*time.Millisecond)

	hub.Shutdown()
	assert.Equal(t, 0, hub.Count())
}

func TestHubDropsStalledPeer(t *testing.T) {
	prevWriteWait := writeWait
	writeWait = 200 * time.Millisecond
	defer func() { writeWait = prevWriteWait }()

	hub := NewHub(10)
	server := feedTestServer(t, hub)

	// This client never reads; its receive buffers eventually fill and
	// broadcast writes to it stop completing.
	dialFeed(t, server)
	require.Eventually(t, func() bool { return hub.Count() == 1 },
		time.Second, 10*time.Millisecond)

	payload := strings.Repeat("x", 32*1024)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 256 && hub.Count() > 0; i++ {
			hub.Broadcast(payload, "updated")
		}
	}()

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("broadcast did not return; a stalled peer is holding the hub")
	}
	assert.Equal(t, 0, hub.Count())
}

func TestHubDropsDeadPeers(t *testing.T) {
	hub := NewHub(10)
	server := feedTestServer(t, hub)

	client := dialFeed(t, server)
	require.Eventually(t, func() bool { return hub.Count() == 1 },
		time.Second, 10*time.Millisecond)

	client.Close()
	// the first write after the close may still land in the OS buffer;
	// broadcast until the hub notices the peer is gone
	require.Eventually(t, func() bool {
		hub.Broadcast("news", "created")
		return hub.Count() == 0
	}, 2*time.Second, 50*time.Millisecond)
}
