// Command tuio-sim sends synthetic TUIO 1.1 frames for two markers orbiting the table,
// so tuio-hockey can be played or recorded without a camera tracker.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hypebeast/go-osc/osc"

	"github.com/lixenwraith/tuio-hockey/constant"
)

const (
	addrObject = "/tuio/2Dobj"
	addrCursor = "/tuio/2Dcur"
)

// marker is one simulated fiducial
type marker struct {
	session int32
	class   int32
	x, y    float32
	angle   float32
}

func main() {
	var (
		host     = flag.String("host", "127.0.0.1", "destination address")
		port     = flag.Int("port", 3333, "destination UDP port")
		rate     = flag.Duration("interval", constant.FrameUpdateInterval, "time between frames")
		duration = flag.Duration("duration", 0, "stop after this long (0 runs until interrupted)")
		cursor   = flag.Bool("cursor", false, "send 2Dcur frames instead of 2Dobj")
	)
	flag.Parse()
	log.SetFlags(log.Ltime | log.Lmicroseconds)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if *duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *duration)
		defer cancel()
	}

	client := osc.NewClient(*host, *port)
	address := addrObject
	if *cursor {
		address = addrCursor
	}

	log.Printf("Sending %s frames to %s:%d every %v", address, *host, *port, *rate)
	sent, err := send(ctx, client, address, *rate)
	log.Printf("Sent %d frames", sent)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tuio-sim: %v\n", err)
		os.Exit(1)
	}
}

// send emits one frame per tick until ctx ends
func send(ctx context.Context, client *osc.Client, address string, interval time.Duration) (int, error) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	start := time.Now()
	var fseq int32
	for {
		select {
		case <-ctx.Done():
			return int(fseq), nil
		case now := <-ticker.C:
			fseq++
			frame := buildFrame(address, fseq, markers(now.Sub(start).Seconds()))
			if err := client.Send(frame); err != nil {
				return int(fseq), fmt.Errorf("send frame %d: %w", fseq, err)
			}
		}
	}
}

// markers places player 1 on the left half and player 2 on the right, each on its own orbit
func markers(t float64) []marker {
	return []marker{
		{
			session: 101,
			class:   constant.Player1ID,
			x:       float32(0.25 + 0.15*math.Cos(t*1.3)),
			y:       float32(0.5 + 0.35*math.Sin(t*1.3)),
			angle:   float32(math.Mod(t, 2*math.Pi)),
		},
		{
			session: 102,
			class:   constant.Player2ID,
			x:       float32(0.75 + 0.15*math.Cos(t*0.9+math.Pi)),
			y:       float32(0.5 + 0.35*math.Sin(t*0.9+math.Pi)),
			angle:   float32(math.Mod(t*0.5, 2*math.Pi)),
		},
	}
}

// buildFrame encodes alive, one set per marker, then fseq
func buildFrame(address string, fseq int32, ms []marker) *osc.Bundle {
	b := osc.NewBundle(time.Now())

	// 2Dcur identifies markers by session id, so the player id doubles as the session
	session := func(m marker) int32 {
		if address == addrCursor {
			return m.class
		}
		return m.session
	}

	alive := osc.NewMessage(address, "alive")
	for _, m := range ms {
		alive.Append(session(m))
	}
	b.Append(alive)

	for _, m := range ms {
		set := osc.NewMessage(address, "set")
		if address == addrCursor {
			set.Append(session(m), m.x, m.y, float32(0), float32(0), float32(0))
		} else {
			set.Append(m.session, m.class, m.x, m.y, m.angle,
				float32(0), float32(0), float32(0), float32(0), float32(0))
		}
		b.Append(set)
	}

	b.Append(osc.NewMessage(address, "fseq", fseq))
	return b
}
