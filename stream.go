package capz

import (
	"encoding/json"
	"net"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/zoobzio/clockz"
	"golang.org/x/sync/errgroup"
)

// DefaultStreamAddr is where a StreamSink listens when no address is
// configured and only-localhost is in effect.
const DefaultStreamAddr = "127.0.0.1:8086"

// announceAddr receives UDP broadcast announcements so consumers on
// the local network can discover a listening sink.
const announceAddr = "255.255.255.255:8087"

// StreamSink streams events to an out-of-process consumer as JSON
// lines over TCP. One consumer is served at a time; further dials are
// rejected until it detaches.
//
// Events emitted while no consumer is attached are dropped - that is
// the documented fire-and-forget contract, not an error. The write
// queue is bounded; when the consumer cannot keep up, events are
// dropped rather than blocking the emitting goroutine.
type StreamSink struct {
	eventSink
	cfg      streamConfig
	ln       net.Listener
	log      *logrus.Logger
	clock    clockz.Clock
	sessions *IDPool
	queue    chan Event
	stopCh   chan struct{}
	group    errgroup.Group
	conn     atomic.Pointer[streamConn]
	dropped  atomic.Uint64
	closed   atomic.Bool
}

type streamConn struct {
	id   string
	conn net.Conn
	enc  *json.Encoder
}

// StreamOption configures NewStreamSink.
type StreamOption func(*streamConfig)

type streamConfig struct {
	addr          string
	queueSize     int
	allInterfaces bool
	ipv4Only      bool
	broadcast     bool
	noExit        bool
	log           *logrus.Logger
	clock         clockz.Clock
}

// WithListenAddr overrides the listen address.
func WithListenAddr(addr string) StreamOption {
	return func(c *streamConfig) { c.addr = addr }
}

// WithAllInterfaces lifts the default localhost-only restriction and
// listens on every interface.
func WithAllInterfaces() StreamOption {
	return func(c *streamConfig) { c.allInterfaces = true }
}

// WithIPv4Only restricts the listener to IPv4 interfaces.
func WithIPv4Only() StreamOption {
	return func(c *streamConfig) { c.ipv4Only = true }
}

// WithBroadcast announces the listening sink on the local network over
// UDP until a consumer attaches.
func WithBroadcast() StreamOption {
	return func(c *streamConfig) { c.broadcast = true }
}

// WithNoExit makes Shutdown drain the write queue to an attached
// consumer before returning, so short-lived programs do not lose the
// tail of the capture.
func WithNoExit() StreamOption {
	return func(c *streamConfig) { c.noExit = true }
}

// WithQueueSize sets the bounded write queue size. Default 4096.
func WithQueueSize(n int) StreamOption {
	return func(c *streamConfig) { c.queueSize = n }
}

// WithLogger replaces the sink's logger. The default logs at warn
// level; connection lifecycle is logged at info.
func WithLogger(log *logrus.Logger) StreamOption {
	return func(c *streamConfig) { c.log = log }
}

// WithStreamClock replaces the clock stamping outgoing events.
func WithStreamClock(clock clockz.Clock) StreamOption {
	return func(c *streamConfig) { c.clock = clock }
}

// NewStreamSink opens the listener immediately and returns the sink.
// Serving starts at Startup, i.e. when the sink is passed to Start.
func NewStreamSink(opts ...StreamOption) (*StreamSink, error) {
	cfg := streamConfig{
		queueSize: 4096,
		clock:     clockz.RealClock,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.log == nil {
		cfg.log = logrus.New()
		cfg.log.SetLevel(logrus.WarnLevel)
	}
	if cfg.addr == "" {
		if cfg.allInterfaces {
			cfg.addr = ":8086"
		} else {
			cfg.addr = DefaultStreamAddr
		}
	}
	network := "tcp"
	if cfg.ipv4Only {
		network = "tcp4"
	}

	ln, err := net.Listen(network, cfg.addr)
	if err != nil {
		return nil, err
	}

	s := &StreamSink{
		cfg:      cfg,
		ln:       ln,
		log:      cfg.log,
		clock:    cfg.clock,
		sessions: NewIDPool(16, nil),
		queue:    make(chan Event, cfg.queueSize),
		stopCh:   make(chan struct{}),
	}
	s.eventSink.submit = s.submit
	return s, nil
}

// Addr returns the address the sink actually listens on.
func (s *StreamSink) Addr() net.Addr {
	return s.ln.Addr()
}

// DroppedCount returns the number of events dropped because no
// consumer was attached or the write queue was full.
func (s *StreamSink) DroppedCount() uint64 {
	return s.dropped.Load()
}

// Startup implements Sink: start the accept and write loops.
func (s *StreamSink) Startup() {
	s.group.Go(s.acceptLoop)
	s.group.Go(s.writeLoop)
	if s.cfg.broadcast {
		s.group.Go(s.announceLoop)
	}
}

// Shutdown implements Sink: stop serving and close the listener and
// any attached consumer. With WithNoExit the queue is drained first.
func (s *StreamSink) Shutdown() {
	if s.closed.Swap(true) {
		return
	}
	close(s.stopCh)
	s.ln.Close()
	_ = s.group.Wait()
	s.detach()
}

// Connected implements Sink.
func (s *StreamSink) Connected() bool {
	return s.conn.Load() != nil
}

// submit stamps an event and queues it for the writer, dropping
// instead of blocking when the queue is full.
func (s *StreamSink) submit(ev Event) {
	ev.Time = s.clock.Now()
	select {
	case s.queue <- ev:
	default:
		s.dropped.Add(1)
	}
}

func (s *StreamSink) acceptLoop() error {
	for {
		conn, err := s.ln.Accept()
		if err != nil {
			select {
			case <-s.stopCh:
				return nil
			default:
			}
			s.log.WithError(err).Warn("accept failed")
			return err
		}

		next := &streamConn{
			id:   s.sessions.Get(),
			conn: conn,
			enc:  json.NewEncoder(conn),
		}
		if !s.conn.CompareAndSwap(nil, next) {
			// Already serving a consumer.
			s.log.WithField("remote", conn.RemoteAddr()).Info("rejecting second consumer")
			conn.Close()
			continue
		}
		s.log.WithFields(logrus.Fields{
			"session": next.id,
			"remote":  conn.RemoteAddr(),
		}).Info("consumer attached")
	}
}

func (s *StreamSink) writeLoop() error {
	for {
		select {
		case <-s.stopCh:
			if s.cfg.noExit {
				s.drain()
			}
			return nil
		case ev := <-s.queue:
			s.write(ev)
		}
	}
}

// drain flushes whatever is left in the queue to an attached consumer.
func (s *StreamSink) drain() {
	for {
		select {
		case ev := <-s.queue:
			s.write(ev)
		default:
			return
		}
	}
}

func (s *StreamSink) write(ev Event) {
	c := s.conn.Load()
	if c == nil {
		s.dropped.Add(1)
		return
	}
	if err := c.enc.Encode(ev); err != nil {
		s.log.WithFields(logrus.Fields{
			"session": c.id,
		}).WithError(err).Info("consumer detached")
		s.detach()
		s.dropped.Add(1)
	}
}

func (s *StreamSink) detach() {
	if c := s.conn.Swap(nil); c != nil {
		c.conn.Close()
	}
}

// announceLoop broadcasts the listen address over UDP once a second
// until a consumer attaches or the sink shuts down.
func (s *StreamSink) announceLoop() error {
	conn, err := net.Dial("udp4", announceAddr)
	if err != nil {
		s.log.WithError(err).Warn("broadcast unavailable")
		return nil
	}
	defer conn.Close()

	type announcement struct {
		Addr string `json:"addr"`
	}
	enc := json.NewEncoder(conn)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return nil
		case <-ticker.C:
			if s.Connected() {
				return nil
			}
			if err := enc.Encode(announcement{Addr: s.ln.Addr().String()}); err != nil {
				s.log.WithError(err).Warn("broadcast failed")
				return nil
			}
		}
	}
}
