package main

import (
	"crypto/rand"
	"encoding/binary"
	mathrand "math/rand"

	"github.com/spf13/cobra"
)

// sourceRNG builds the RNG used by topology generators (gnp/dsf/rhg),
// seeded the same way mcmc.NewDriver seeds the chain's RNG: from the
// shared -s flag when given, otherwise from OS entropy. There is a single
// global -s flag, so the source and the chain it feeds draw from the same
// seed value when one is supplied.
func sourceRNG(cmd *cobra.Command) *mathrand.Rand {
	var s uint64
	if sp := seedPtr(cmd); sp != nil {
		s = *sp
	} else {
		var buf [8]byte
		if _, err := rand.Read(buf[:]); err == nil {
			s = binary.LittleEndian.Uint64(buf[:])
		}
	}
	return mathrand.New(mathrand.NewSource(int64(s)))
}
