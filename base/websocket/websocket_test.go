// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

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

// echoServer echoes every message back, and closes the connection
// normally when it receives "bye".
func echoServer(t *testing.T) string {
	upgrader := websocket.Upgrader{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		for {
			typ, msg, err := conn.ReadMessage()
			if err != nil {
				return
			}
			if string(msg) == "bye" {
				conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := conn.WriteMessage(typ, msg); err != nil {
				return
			}
		}
	}))
	t.Cleanup(ts.Close)
	return "ws" + strings.TrimPrefix(ts.URL, "http")
}

func TestRoundTrip(t *testing.T) {
	c, err := Connect(echoServer(t))
	require.NoError(t, err)

	require.NoError(t, c.Send(TextMessage, []byte("hello")))
	typ, msg, err := c.Receive()
	require.NoError(t, err)
	assert.Equal(t, TextMessage, typ)
	assert.Equal(t, "hello", string(msg))

	require.NoError(t, c.Send(BinaryMessage, []byte{1, 2, 3}))
	typ, msg, err = c.Receive()
	require.NoError(t, err)
	assert.Equal(t, BinaryMessage, typ)
	assert.Equal(t, []byte{1, 2, 3}, msg)

	type pose struct {
		Joint string  `json:"joint"`
		Value float32 `json:"value"`
	}
	require.NoError(t, c.SendJSON(pose{Joint: "j1", Value: 30}))
	var got pose
	require.NoError(t, c.ReceiveJSON(&got))
	assert.Equal(t, pose{Joint: "j1", Value: 30}, got)

	assert.NoError(t, c.Close())
}

func TestOnMessage(t *testing.T) {
	c, err := Connect(echoServer(t))
	require.NoError(t, err)

	msgs := make(chan string, 2)
	closed := make(chan struct{})
	c.OnMessage(func(typ MessageTypes, msg []byte) {
		assert.Equal(t, TextMessage, typ)
		msgs <- string(msg)
	})
	c.OnClose(func() { close(closed) })

	require.NoError(t, c.Send(TextMessage, []byte("one")))
	require.NoError(t, c.Send(TextMessage, []byte("two")))
	for _, want := range []string{"one", "two"} {
		select {
		case msg := <-msgs:
			assert.Equal(t, want, msg)
		case <-time.After(5 * time.Second):
			t.Fatal("no message received")
		}
	}

	require.NoError(t, c.Send(TextMessage, []byte("bye")))
	select {
	case <-closed:
	case <-time.After(5 * time.Second):
		t.Fatal("OnClose was not called")
	}
	c.Close()
}

func TestConnectError(t *testing.T) {
	_, err := Connect("ws://127.0.0.1:1/nothing")
	assert.Error(t, err)
}
