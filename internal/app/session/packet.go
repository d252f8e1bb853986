package session

import (
	"strconv"
	"strings"
	"time"

	"roombot/internal/app/wire"
	"roombot/internal/pkg/errs"
)

// ConnectTag is the tag of the connect packet.
const ConnectTag = "j2"

// packetBuilder appends attributes in call order.
type packetBuilder struct {
	attrs []wire.Attr
}

func (b *packetBuilder) add(key, value string) {
	b.attrs = append(b.attrs, wire.Attr{Key: key, Value: value})
}

func (b *packetBuilder) addIfSet(key string, f Field) {
	if f.Set {
		b.add(key, f.Value)
	}
}

// BuildConnectPacket assembles the attributes of the connect packet. The server rejects the
// packet unless the attributes appear in exactly this order; absent optional keys are
// omitted, never sent empty.
func BuildConnectPacket(creds Credentials, login LoginData, room RoomData, now time.Time) ([]wire.Attr, error) {
	var missing []string
	if !room.ID.Set {
		missing = append(missing, "room id (i)")
	}
	if !login.K1.Set {
		missing = append(missing, "k1")
	}
	if !login.K3.Set {
		missing = append(missing, "k3")
	}
	if !login.ID.Set {
		missing = append(missing, "login id (i)")
	}
	if len(missing) > 0 {
		return nil, errs.NewError(errs.ErrMissingCredentialField, strings.Join(missing, ", "))
	}

	b := &packetBuilder{attrs: make([]wire.Attr, 0, 48)}

	b.add("cb", strconv.FormatInt(now.Unix(), 10))
	b.add("l5", "65535")
	b.add("l4", "123")
	b.add("l3", "456")
	b.add("l2", "0")
	b.add("q", "1")
	b.add("y", room.ID.Value)
	b.add("k", login.K1.Value)
	b.add("k3", login.K3.Value)
	b.addIfSet("d1", login.D[1])
	b.add("z", "12")
	b.add("p", "0")
	b.add("c", creds.RoomID)
	b.add("r", "")
	b.add("f", "0")
	b.add("e", "")
	b.add("u", login.ID.Value)
	b.addIfSet("d0", login.D[0])
	for i := 2; i < DynamicKeys; i++ {
		b.addIfSet("d"+strconv.Itoa(i), login.D[i])
	}
	b.addIfSet("dx", login.DX)
	b.addIfSet("dt", login.DT)
	b.add("N", creds.RegName)
	b.add("n", creds.DisplayName)
	b.add("a", creds.Avatar)
	b.add("h", "google.com")
	b.add("v", "3")

	return b.attrs, nil
}
