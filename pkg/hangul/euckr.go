package hangul

import (
	"fmt"

	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"
)

// FromEUCKR decodes an EUC-KR (KS X 1001 / CP949 superset) byte
// sequence into a String. Legacy Korean corpora still ship in this
// encoding.
func FromEUCKR(b []byte) (*String, error) {
	decoded, _, err := transform.Bytes(korean.EUCKR.NewDecoder(), b)
	if err != nil {
		return nil, fmt.Errorf("decoding EUC-KR: %w", err)
	}
	return NewString(string(decoded)), nil
}

// ToEUCKR encodes the string as EUC-KR. Encapsulation sentinels render
// as the letter S first, the same as String().
func (s *String) ToEUCKR() ([]byte, error) {
	encoded, _, err := transform.Bytes(korean.EUCKR.NewEncoder(), []byte(s.String()))
	if err != nil {
		return nil, fmt.Errorf("encoding EUC-KR: %w", err)
	}
	return encoded, nil
}
