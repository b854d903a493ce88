package fasta

import (
	"fmt"

	"github.com/snksoft/crc"
)

// crc64ISO is the reflected ISO 3309 polynomial with zero init and no final
// xor, the variant used for UniProt sequence checksums.
var crc64ISO = &crc.Parameters{
	Width:      64,
	Polynomial: 0x000000000000001B,
	ReflectIn:  true,
	ReflectOut: true,
	Init:       0,
	FinalXor:   0,
}

// CRC64 returns the CRC-64 of seq.
func CRC64(seq string) uint64 {
	return crc.CalculateCRC(crc64ISO, []byte(seq))
}

// Checksum renders CRC64 of the record's sequence as 16 upper-case hex
// digits.
func (r Record) Checksum() string {
	return fmt.Sprintf("%016X", CRC64(r.Sequence))
}
