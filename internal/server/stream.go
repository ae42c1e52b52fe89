package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/midbel/pitchcharts"
	"github.com/midbel/pitchcharts/canvas"
	"github.com/midbel/pitchcharts/viewport"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	queueSize      = 16
)

const (
	TypeResize = "resize"
	TypePing   = "ping"
	TypePong   = "pong"
	TypeFrame  = "frame"
	TypeError  = "error"
)

// Message is exchanged in both directions. Clients send resize and ping
// messages, the server answers with frames, pongs and errors.
type Message struct {
	Type  string  `json:"type"`
	Width float64 `json:"width,omitempty"`
	Ratio float64 `json:"dpr,omitempty"`
	Frame *Frame  `json:"frame,omitempty"`
	Error string  `json:"error,omitempty"`
}

type Frame struct {
	Chart       string  `json:"chart"`
	ContentType string  `json:"content_type"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	Ratio       float64 `json:"dpr"`
	Bars        int     `json:"bars"`
	Data        []byte  `json:"data"`
}

// handleStream opens a rendering session: the chart is drawn once when the
// socket opens and again for every resize message, until the socket closes.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	ch, err := charts.Lookup(name)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	width, ratio, err := s.parseSize(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	format := r.URL.Query().Get("format")
	if format == "" {
		format = canvas.SVG
	}
	target, err := canvas.New(format)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "err", err)
		return
	}
	sess := session{
		server: s,
		conn:   conn,
		chart:  ch,
		target: target,
		window: viewport.New(width, ratio),
		send:   make(chan Message, queueSize),
		done:   make(chan struct{}),
		logger: s.logger.With("chart", ch.Name, "remote", r.RemoteAddr),
	}
	sess.run()
}

type session struct {
	server *Server
	conn   *websocket.Conn
	chart  charts.Chart
	target canvas.Target
	window *viewport.Window
	logger *slog.Logger

	send chan Message
	done chan struct{}
	once sync.Once
}

func (s *session) run() {
	s.logger.Info("stream opened")

	renderer := charts.NewRenderer(s.chart, s.target,
		charts.WithContainer(s.window),
		charts.WithDisplay(s.window),
		charts.WithViewport(s.window),
		charts.WithLogger(s.logger),
		charts.WithDrawHook(s.frame),
	)
	go s.writePump()

	defer func() {
		renderer.Close()
		close(s.send)
		s.conn.Close()
		s.logger.Info("stream closed")
	}()

	if err := renderer.Mount(); err != nil {
		s.push(Message{Type: TypeError, Error: err.Error()})
		return
	}
	s.readPump()
}

// readPump handles client messages. Every resize runs synchronously on
// this goroutine, so frames are queued in the order of the messages.
func (s *session) readPump() {
	s.conn.SetReadLimit(maxMessageSize)
	s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("websocket read error", "err", err)
			}
			return
		}
		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			s.push(Message{Type: TypeError, Error: "malformed message"})
			continue
		}
		switch msg.Type {
		case TypeResize:
			width, ratio, err := s.server.clampSize(msg.Width, msg.Ratio)
			if err != nil {
				s.push(Message{Type: TypeError, Error: err.Error()})
				continue
			}
			s.window.Resize(width, ratio)
		case TypePing:
			s.push(Message{Type: TypePong})
		default:
			s.push(Message{Type: TypeError, Error: "unknown message type " + msg.Type})
		}
	}
}

func (s *session) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		s.stop()
		s.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-s.send:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				s.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := s.conn.WriteJSON(msg); err != nil {
				return
			}
		case <-ticker.C:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// frame is called by the renderer while the surface holds the new frame.
func (s *session) frame(g charts.Geometry) {
	data, err := canvas.Bytes(s.target)
	if err != nil {
		s.logger.Error("encoding frame failed", "err", err)
		s.push(Message{Type: TypeError, Error: err.Error()})
		return
	}
	s.push(Message{
		Type: TypeFrame,
		Frame: &Frame{
			Chart:       s.chart.Name,
			ContentType: s.target.ContentType(),
			Width:       g.Surface.PixelWidth,
			Height:      g.Surface.PixelHeight,
			Ratio:       g.Surface.PixelRatio,
			Bars:        len(g.Bars),
			Data:        data,
		},
	})
}

func (s *session) push(msg Message) {
	select {
	case s.send <- msg:
	case <-s.done:
	}
}

func (s *session) stop() {
	s.once.Do(func() {
		close(s.done)
	})
}
