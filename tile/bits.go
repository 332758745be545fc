package tile

// gb extracts n bits of v starting at bit start, zero-extended.
func gb(v, start, n uint8) uint8 {
	return (v >> start) & (1<<n - 1)
}

// sb stores the low n bits of x into v at bit start, leaving every
// other bit untouched. Out-of-range values truncate to the slice width.
func sb(v *uint8, start, n, x uint8) {
	mask := uint8(1<<n-1) << start
	*v = *v&^mask | x<<start&mask
}

func hasBit(v, bit uint8) bool { return v&(1<<bit) != 0 }

func setBit(v *uint8, bit uint8) { *v |= 1 << bit }

func clrBit(v *uint8, bit uint8) { *v &^= 1 << bit }

func toggleBit(v *uint8, bit uint8) { *v ^= 1 << bit }
