package tracking

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
)

type capturedDatagram struct {
	offset  time.Duration
	payload []byte
}

// Replay feeds TUIO datagrams from a pcap capture, paced by their capture timestamps
type Replay struct {
	datagrams []capturedDatagram
	next      int
	clock     Clock
	start     time.Time
	decoder   *Decoder
	finished  bool
}

// OpenReplay loads UDP payloads sent to port from a pcap file; port 0 keeps all UDP traffic
func OpenReplay(path string, port int, clock Clock) (*Replay, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open capture: %w", ErrTrackingUnavailable, err)
	}
	defer f.Close()

	datagrams, err := readCapture(f, port)
	if err != nil {
		return nil, fmt.Errorf("%w: read capture %s: %w", ErrTrackingUnavailable, path, err)
	}
	log.Printf("TUIO replay loaded %d datagrams from %s (port %d)", len(datagrams), path, port)

	if clock == nil {
		clock = realClock{}
	}
	return &Replay{
		datagrams: datagrams,
		clock:     clock,
		decoder:   NewDecoder(),
	}, nil
}

func readCapture(r io.Reader, port int) ([]capturedDatagram, error) {
	reader, err := pcapgo.NewReader(r)
	if err != nil {
		return nil, err
	}

	source := gopacket.NewPacketSource(reader, reader.LinkType())
	var (
		out   []capturedDatagram
		first time.Time
	)
	for {
		packet, err := source.NextPacket()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		udpLayer := packet.Layer(layers.LayerTypeUDP)
		if udpLayer == nil {
			continue
		}
		udp, ok := udpLayer.(*layers.UDP)
		if !ok || len(udp.Payload) == 0 {
			continue
		}
		if port != 0 && int(udp.DstPort) != port {
			continue
		}

		ts := packet.Metadata().Timestamp
		if first.IsZero() {
			first = ts
		}
		payload := make([]byte, len(udp.Payload))
		copy(payload, udp.Payload)
		out = append(out, capturedDatagram{offset: ts.Sub(first), payload: payload})
	}
	return out, nil
}

// Update decodes every datagram whose capture offset has elapsed since the first call
func (r *Replay) Update(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	now := r.clock.Now()
	if r.start.IsZero() {
		r.start = now
	}
	elapsed := now.Sub(r.start)

	for r.next < len(r.datagrams) && r.datagrams[r.next].offset <= elapsed {
		if err := r.decoder.Decode(r.datagrams[r.next].payload); err != nil {
			log.Printf("TUIO replay datagram %d malformed: %v", r.next, err)
		}
		r.next++
	}

	if r.next == len(r.datagrams) && !r.finished {
		r.finished = true
		log.Printf("TUIO replay finished after %v", elapsed)
	}
	return nil
}

// Objects returns the currently alive objects
func (r *Replay) Objects() []Object {
	return r.decoder.Objects()
}

// Done reports whether every captured datagram has been delivered
func (r *Replay) Done() bool {
	return r.finished
}
