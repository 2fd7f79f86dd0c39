package tracking

import (
	"errors"
	"fmt"
	"sort"

	"github.com/hypebeast/go-osc/osc"
)

const (
	addrObject = "/tuio/2Dobj"
	addrCursor = "/tuio/2Dcur"

	// lateFrameWindow bounds how far behind a frame id may lag and still count as late
	// Larger gaps are treated as a tracker restart
	lateFrameWindow = 100
)

// Decoder holds TUIO session state built from OSC packets
type Decoder struct {
	objects map[sessionKey]Object
	// Last accepted frame sequence per profile
	frames map[Profile]int32

	// Counters for diagnostics
	Bundles    int
	LateFrames int
}

type sessionKey struct {
	profile Profile
	session int32
}

// NewDecoder creates an empty TUIO session
func NewDecoder() *Decoder {
	return &Decoder{
		objects: make(map[sessionKey]Object),
		frames:  make(map[Profile]int32),
	}
}

// Decode parses one datagram and applies it to the session
func (d *Decoder) Decode(data []byte) error {
	packet, err := osc.ParsePacket(string(data))
	if err != nil {
		return fmt.Errorf("parse OSC packet: %w", err)
	}
	return d.apply(packet)
}

// apply runs every message of a bundle; a malformed message is skipped and
// reported in the joined error so the rest of the frame still lands
func (d *Decoder) apply(packet osc.Packet) error {
	switch p := packet.(type) {
	case *osc.Bundle:
		d.Bundles++
		if d.isLate(p) {
			d.LateFrames++
			return nil
		}
		var errs []error
		for _, msg := range p.Messages {
			errs = append(errs, d.applyMessage(msg))
		}
		for _, nested := range p.Bundles {
			errs = append(errs, d.apply(nested))
		}
		return errors.Join(errs...)
	case *osc.Message:
		return d.applyMessage(p)
	}
	return nil
}

// isLate reports whether the bundle carries an fseq older than the last accepted one.
// Frame id -1 marks an out-of-band update and is always accepted.
func (d *Decoder) isLate(b *osc.Bundle) bool {
	for _, msg := range b.Messages {
		profile, ok := profileFor(msg.Address)
		if !ok || len(msg.Arguments) < 2 || msg.Arguments[0] != "fseq" {
			continue
		}
		fseq, ok := toInt32(msg.Arguments[1])
		if !ok || fseq == -1 {
			return false
		}
		last, seen := d.frames[profile]
		if seen && fseq < last && last-fseq < lateFrameWindow {
			return true
		}
	}
	return false
}

func (d *Decoder) applyMessage(msg *osc.Message) error {
	profile, ok := profileFor(msg.Address)
	if !ok || len(msg.Arguments) == 0 {
		return nil
	}
	cmd, ok := msg.Arguments[0].(string)
	if !ok {
		return fmt.Errorf("%s: command is %T, want string", msg.Address, msg.Arguments[0])
	}
	args := msg.Arguments[1:]

	switch cmd {
	case "set":
		return d.set(profile, args)
	case "alive":
		return d.alive(profile, args)
	case "fseq":
		if len(args) > 0 {
			if fseq, ok := toInt32(args[0]); ok && fseq != -1 {
				d.frames[profile] = fseq
			}
		}
	}
	// "source" and unknown commands carry nothing we track
	return nil
}

func (d *Decoder) set(profile Profile, args []any) error {
	var obj Object
	obj.Profile = profile

	switch profile {
	case ProfileObject:
		// s i x y a X Y A m r
		if len(args) < 4 {
			return fmt.Errorf("%s set: %d arguments, want at least 4", addrObject, len(args))
		}
		session, ok1 := toInt32(args[0])
		class, ok2 := toInt32(args[1])
		x, ok3 := toFloat(args[2])
		y, ok4 := toFloat(args[3])
		if !ok1 || !ok2 || !ok3 || !ok4 {
			return fmt.Errorf("%s set: malformed arguments %v", addrObject, args)
		}
		obj.SessionID, obj.ID, obj.X, obj.Y = session, int(class), x, y
		if len(args) > 4 {
			obj.Angle, _ = toFloat(args[4])
		}
	case ProfileCursor:
		// s x y X Y m
		if len(args) < 3 {
			return fmt.Errorf("%s set: %d arguments, want at least 3", addrCursor, len(args))
		}
		session, ok1 := toInt32(args[0])
		x, ok2 := toFloat(args[1])
		y, ok3 := toFloat(args[2])
		if !ok1 || !ok2 || !ok3 {
			return fmt.Errorf("%s set: malformed arguments %v", addrCursor, args)
		}
		obj.SessionID, obj.ID, obj.X, obj.Y = session, int(session), x, y
	}

	d.objects[sessionKey{profile: profile, session: obj.SessionID}] = obj
	return nil
}

func (d *Decoder) alive(profile Profile, args []any) error {
	live := make(map[int32]struct{}, len(args))
	for _, a := range args {
		s, ok := toInt32(a)
		if !ok {
			return fmt.Errorf("alive: session id is %T", a)
		}
		live[s] = struct{}{}
	}
	for key := range d.objects {
		if key.profile != profile {
			continue
		}
		if _, ok := live[key.session]; !ok {
			delete(d.objects, key)
		}
	}
	return nil
}

// Objects returns alive objects ordered by profile then session id
func (d *Decoder) Objects() []Object {
	out := make([]Object, 0, len(d.objects))
	for _, obj := range d.objects {
		out = append(out, obj)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Profile != out[j].Profile {
			return out[i].Profile < out[j].Profile
		}
		return out[i].SessionID < out[j].SessionID
	})
	return out
}

func profileFor(address string) (Profile, bool) {
	switch address {
	case addrObject:
		return ProfileObject, true
	case addrCursor:
		return ProfileCursor, true
	}
	return 0, false
}

func toInt32(v any) (int32, bool) {
	switch n := v.(type) {
	case int32:
		return n, true
	case int64:
		return int32(n), true
	case float32:
		return int32(n), true
	}
	return 0, false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case int32:
		return float64(n), true
	}
	return 0, false
}
