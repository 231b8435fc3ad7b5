// Package oids implements object identifiers as comparable values.
package oids

import (
	"encoding/asn1"
	"encoding/binary"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// OID is an object identifier.  OIDs can be compared with == and used as map keys.
type OID struct {
	s string
}

func New(xs ...int) OID {
	sb := strings.Builder{}
	for _, x := range xs {
		var buf [8]byte
		binary.BigEndian.PutUint64(buf[:], uint64(x))
		sb.Write(buf[:])
	}
	return OID{s: sb.String()}
}

// Parse parses the dotted decimal form, e.g. "2.16.840.1.101.3.4.2.11".
func Parse(x string) (OID, error) {
	if x == "" {
		return OID{}, errors.New("oids: empty string")
	}
	parts := strings.Split(x, ".")
	xs := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.ParseUint(part, 10, 63)
		if err != nil {
			return OID{}, errors.Wrapf(err, "oids: parsing arc %d of %q", i, x)
		}
		xs[i] = int(n)
	}
	return New(xs...), nil
}

// FromASN1 converts from the encoding/asn1 representation.
func FromASN1(x asn1.ObjectIdentifier) OID {
	return New(x...)
}

func (oid OID) Len() int {
	return len(oid.s) / 8
}

func (oid OID) At(i int) uint64 {
	begin := i * 8
	end := begin + 8
	return binary.BigEndian.Uint64([]byte(oid.s[begin:end]))
}

func (oid OID) String() string {
	sb := strings.Builder{}
	for i := 0; i < oid.Len(); i++ {
		if i > 0 {
			sb.WriteString(".")
		}
		sb.WriteString(strconv.FormatUint(oid.At(i), 10))
	}
	return sb.String()
}

func (oid OID) IsZero() bool {
	return oid.s == ""
}

func (oid OID) ASN1() (ret asn1.ObjectIdentifier) {
	for i := 0; i < oid.Len(); i++ {
		ret = append(ret, int(oid.At(i)))
	}
	return ret
}

// MarshalDER returns the DER encoding of oid, tag and length included.
func (oid OID) MarshalDER() ([]byte, error) {
	return asn1.Marshal(oid.ASN1())
}
