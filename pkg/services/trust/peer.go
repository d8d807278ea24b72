package trust

import (
	"github.com/mr-tron/base58"
)

// PeerIDSize is a byte length of PeerID.
//
// Matches the size of a compressed secp256k1 public key
// which identifies a vehicle on the network.
const PeerIDSize = 33

// PeerID represents an identifier of the vehicle which
// participates in trust scoring. Used as a key of the
// record storage.
type PeerID [PeerIDSize]byte

// PeerIDFromBytes converts a binary key representation to PeerID.
//
// Data longer than PeerIDSize is truncated, shorter data
// is zero-padded at the tail.
func PeerIDFromBytes(data []byte) (id PeerID) {
	copy(id[:], data)
	return
}

// Bytes returns a binary representation of the PeerID.
func (id PeerID) Bytes() []byte {
	return id[:]
}

// String implements fmt.Stringer via base58 encoding.
func (id PeerID) String() string {
	return base58.Encode(id[:])
}

// DecodeString parses a base58 string into the PeerID.
func (id *PeerID) DecodeString(s string) error {
	data, err := base58.Decode(s)
	if err != nil {
		return err
	}

	*id = PeerIDFromBytes(data)

	return nil
}
