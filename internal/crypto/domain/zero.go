package domain

// Zero overwrites each buffer with zeros to clear key material or plaintext
// from memory once it is no longer needed. Nil buffers are ignored.
func Zero(bufs ...[]byte) {
	for _, b := range bufs {
		clear(b)
	}
}
