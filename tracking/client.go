package tracking

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"strconv"
	"time"
)

// maxDatagram fits any TUIO bundle a tracker emits in one UDP packet
const maxDatagram = 4096

// Client receives TUIO bundles over UDP
type Client struct {
	config  *Config
	socket  UDPSocket
	decoder *Decoder
	buf     []byte

	packets      int
	decodeErrors int
}

// Open binds the TUIO port, retrying with exponential backoff.
// Exhausted retries yield an error wrapping ErrTrackingUnavailable.
func Open(ctx context.Context, cfg *Config, factory UDPSocketFactory) (*Client, error) {
	if factory == nil {
		factory = NetSocketFactory{}
	}

	address := net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	addr, err := net.ResolveUDPAddr("udp", address)
	if err != nil {
		return nil, fmt.Errorf("%w: resolve %s: %w", ErrTrackingUnavailable, address, err)
	}

	attempts := cfg.BindAttempts
	if attempts < 1 {
		attempts = 1
	}
	backoff := cfg.BindBackoff

	var socket UDPSocket
	for attempt := 1; ; attempt++ {
		socket, err = factory.ListenUDP("udp", addr)
		if err == nil {
			break
		}
		if attempt >= attempts {
			return nil, fmt.Errorf("%w: bind %s after %d attempts: %w", ErrTrackingUnavailable, address, attempt, err)
		}
		log.Printf("TUIO bind %s failed (attempt %d/%d): %v; retrying in %v", address, attempt, attempts, err, backoff)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}

	if cfg.ReadBufferSize > 0 {
		if err := socket.SetReadBuffer(cfg.ReadBufferSize); err != nil {
			log.Printf("Warning: failed to set TUIO receive buffer to %d bytes: %v", cfg.ReadBufferSize, err)
		}
	}
	log.Printf("TUIO client listening on %s", socket.LocalAddr())

	return &Client{
		config:  cfg,
		socket:  socket,
		decoder: NewDecoder(),
		buf:     make([]byte, maxDatagram),
	}, nil
}

// Update reads at most one datagram. A read that times out is not an error.
// Malformed packets are logged and skipped.
func (c *Client) Update(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := c.socket.SetReadDeadline(time.Now().Add(c.config.PollTimeout)); err != nil {
		return fmt.Errorf("%w: set deadline: %w", ErrTrackingUnavailable, err)
	}

	n, addr, err := c.socket.ReadFromUDP(c.buf)
	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return nil
		}
		return fmt.Errorf("%w: read: %w", ErrTrackingUnavailable, err)
	}

	c.packets++
	if err := c.decoder.Decode(c.buf[:n]); err != nil {
		c.decodeErrors++
		log.Printf("TUIO packet from %v malformed: %v", addr, err)
	}
	return nil
}

// Objects returns the currently alive objects
func (c *Client) Objects() []Object {
	return c.decoder.Objects()
}

// Close releases the socket and logs receive statistics
func (c *Client) Close() error {
	log.Printf("TUIO client closed: packets=%d bundles=%d late=%d errors=%d",
		c.packets, c.decoder.Bundles, c.decoder.LateFrames, c.decodeErrors)
	return c.socket.Close()
}
