package shake

import (
	"github.com/brendoncarroll/go-shake/oids"
)

var (
	// NIST hash algorithm arcs, https://csrc.nist.gov/projects/computer-security-objects-register/algorithm-registration
	OIDSHAKE128 = oids.New(2, 16, 840, 1, 101, 3, 4, 2, 11)
	OIDSHAKE256 = oids.New(2, 16, 840, 1, 101, 3, 4, 2, 12)
)

var strengthByOID = map[oids.OID]Strength{
	OIDSHAKE128: Strength128,
	OIDSHAKE256: Strength256,
}

// OID returns the object identifier of the SHAKE instance, or the zero OID if s is unsupported.
func (s Strength) OID() oids.OID {
	switch s {
	case Strength128:
		return OIDSHAKE128
	case Strength256:
		return OIDSHAKE256
	default:
		return oids.OID{}
	}
}

// StrengthFromOID looks up the strength identified by oid.
func StrengthFromOID(oid oids.OID) (Strength, error) {
	s, exists := strengthByOID[oid]
	if !exists {
		return 0, ErrUnrecognizedOID{OID: oid}
	}
	return s, nil
}
