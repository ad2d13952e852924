package room

import (
	"klaverjas-server/pkg/playable"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Client is a client connected to the server via websockets
// Conn is nil for in-process clients (the terminal client and tests)
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// send is a channel for sending messages to the client
	send chan interface{}

	// CloseError contains the reason why the connection was closed, it is logged on disconnect
	CloseError error

	session *Session
}

// NewClient returns a new client object
func NewClient(conn *websocket.Conn) *Client {
	return &Client{
		send: make(chan interface{}, 256),
		Conn: conn,
	}
}

// Send send a message to the web client
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// SendChan returns a read-only channel
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// String returns a traceable identifier for the connection
func (c *Client) String() string {
	if c.Conn == nil {
		return "local"
	}

	return c.Conn.RemoteAddr().String()
}

// ReceivedMessage is called when the server receives a message from a connected client
func (c *Client) ReceivedMessage(msg *playable.PayloadIn) {
	if c.session == nil {
		logrus.WithField("msg", msg).Warn("received message, but session not found")
		return
	}

	c.session.ReceivedMessage(msg)
}
