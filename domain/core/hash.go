package core

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"

	"smokestat/domain/dataset"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// Short returns the first 12 hex digits, enough to tell runs apart in a page footer
func (h Hash) Short() string {
	if len(h) < 12 {
		return string(h)
	}
	return string(h[:12])
}

// IsEmpty checks if the hash is empty
func (h Hash) IsEmpty() bool {
	return h == ""
}

// ComputeTableHash hashes the observation values in row order. The source
// path is deliberately left out so a moved file keeps its hash.
func ComputeTableHash(tbl *dataset.Table) Hash {
	var data strings.Builder
	data.WriteString(strings.Join(dataset.RequiredColumns, ","))
	data.WriteByte('\n')
	for _, o := range tbl.Observations {
		data.WriteString(strconv.Itoa(o.Year))
		for _, v := range []float64{o.PercentSmokers, o.LungCancerPer100, o.UnemploymentRate} {
			data.WriteByte(',')
			data.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		data.WriteByte('\n')
	}
	return NewHash([]byte(data.String()))
}
