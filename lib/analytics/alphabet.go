package analytics

// alphabet maps 6-bit values to URL-safe characters. Index is the value.
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

const groupBits = 6

// values is the reverse of alphabet; -1 marks characters outside it.
var values [256]int8

func init() {
	for i := range values {
		values[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		values[alphabet[i]] = int8(i)
	}
}

// packGroups writes v as n 6-bit groups, most significant first.
// Bits above 6*n are discarded.
func packGroups(v uint64, n int) string {
	out := make([]byte, n)
	for i := n - 1; i >= 0; i-- {
		out[i] = alphabet[v&0x3f]
		v >>= groupBits
	}
	return string(out)
}

// unpackGroups is the inverse of packGroups.
func unpackGroups(s string) (uint64, bool) {
	var v uint64
	for i := 0; i < len(s); i++ {
		d := values[s[i]]
		if d < 0 {
			return 0, false
		}
		v = v<<groupBits | uint64(d)
	}
	return v, true
}
