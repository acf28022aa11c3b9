package protocol

// ComputeChecksum computes the 4-bit checksum of the given bytes: the
// byte values are summed as integers and the low nibble of the sum is
// returned.
func ComputeChecksum(data []byte) byte {
	var sum uint32
	for _, b := range data {
		sum += uint32(b)
	}
	return byte(sum & 0x0F)
}

// CheckChecksum reports whether the frame carries a valid trailing
// checksum. The leading marker byte is excluded from the sum, and only
// the low nibble of the trailing byte is compared so it does not matter
// whether the sender transmitted the checksum on top of ValueBase.
// Frames shorter than MinChecksumFrameSize are never valid.
func CheckChecksum(frame []byte) bool {
	if len(frame) < MinChecksumFrameSize {
		return false
	}
	expected := ComputeChecksum(frame[1 : len(frame)-1])
	return frame[len(frame)-1]&0x0F == expected
}

// checksumByte encodes the checksum of the preceding frame bytes for
// transmission, on top of ValueBase like any other data nibble.
func checksumByte(data []byte) byte {
	return ValueBase + ComputeChecksum(data)
}
