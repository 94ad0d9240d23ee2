package common

// WipeByteArray overwrites the contents of data with zeros. Callers use it
// to scrub password buffers once they are no longer needed.
func WipeByteArray(data []byte) {
	for i := range data {
		data[i] = 0
	}
}
