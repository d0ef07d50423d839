package bitvector

import "encoding/binary"

// binaryHeaderSize is the byte size of the serialized header: nBits packed
// as a single big-endian uint64.
const binaryHeaderSize = 8

// MarshalBinary encodes v as [nBits uint64][words...], big-endian.
func (v *BitVector) MarshalBinary() ([]byte, error) {
	buf := make([]byte, binaryHeaderSize+len(v.words)*8)
	binary.BigEndian.PutUint64(buf[:binaryHeaderSize], uint64(v.nBits))
	for i, w := range v.words {
		binary.BigEndian.PutUint64(buf[binaryHeaderSize+i*8:binaryHeaderSize+(i+1)*8], w)
	}

	return buf, nil
}

// UnmarshalBinary decodes a BitVector produced by MarshalBinary into v,
// replacing its contents.
func (v *BitVector) UnmarshalBinary(data []byte) error {
	if len(data) < binaryHeaderSize {
		return ErrTruncatedData
	}
	nBits := binary.BigEndian.Uint64(data[:binaryHeaderSize])
	nWords := wordsFor(int(nBits))
	if len(data)-binaryHeaderSize != nWords*8 {
		return ErrTruncatedData
	}
	words := make([]uint64, nWords)
	for i := range words {
		words[i] = binary.BigEndian.Uint64(data[binaryHeaderSize+i*8 : binaryHeaderSize+(i+1)*8])
	}
	v.nBits = int(nBits)
	v.words = words
	v.nOnes = -1

	return nil
}
