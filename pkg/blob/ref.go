package blob

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"io"
	"os"
	"sync/atomic"
	"time"
)

// refLen is the hex length of a blob reference (12 raw bytes).
const refLen = 24

var (
	machineID = readMachineID()
	counter   = readRandomUint32()
)

func readMachineID() [3]byte {
	var mid [3]byte
	hostname, err := os.Hostname()
	if err != nil {
		_, _ = io.ReadFull(rand.Reader, mid[:])
		return mid
	}
	hw := make([]byte, 32)
	copy(hw, hostname)
	copy(mid[:], hw[:3])
	return mid
}

func readRandomUint32() uint32 {
	var b [4]byte
	_, _ = io.ReadFull(rand.Reader, b[:])
	return binary.BigEndian.Uint32(b[:])
}

// newRef generates a unique 12-byte reference, hex encoded.
// Layout: 4 bytes unix timestamp, 3 bytes machine id, 2 bytes pid,
// 3 bytes atomic counter. Unique across time, machines, processes and
// multiple refs within the same second.
func newRef() string {
	var id [12]byte

	binary.BigEndian.PutUint32(id[0:4], uint32(time.Now().Unix()))
	copy(id[4:7], machineID[:])
	binary.BigEndian.PutUint16(id[7:9], uint16(os.Getpid()))

	c := atomic.AddUint32(&counter, 1)
	id[9] = byte(c >> 16)
	id[10] = byte(c >> 8)
	id[11] = byte(c)

	return hex.EncodeToString(id[:])
}

// validRef reports whether s looks like a reference this store issued.
// Anything else is rejected before touching the filesystem, which also
// rules out path traversal through the ref parameter.
func validRef(s string) bool {
	if len(s) != refLen {
		return false
	}
	for _, r := range s {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}
	return true
}
