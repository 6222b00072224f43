package contract

import "taskmesh/sdk"

// packU64LEInline sprinkles a uint64 into dst in little-endian order so our keys stay compact.
func packU64LEInline(x uint64, dst []byte) {
	dst[0] = byte(x)
	dst[1] = byte(x >> 8)
	dst[2] = byte(x >> 16)
	dst[3] = byte(x >> 24)
	dst[4] = byte(x >> 32)
	dst[5] = byte(x >> 40)
	dst[6] = byte(x >> 48)
	dst[7] = byte(x >> 56)
}

// packU32LEInline mirrors the 64-bit helper but for smaller task indexes.
func packU32LEInline(x uint32, dst []byte) {
	dst[0] = byte(x)
	dst[1] = byte(x >> 8)
	dst[2] = byte(x >> 16)
	dst[3] = byte(x >> 24)
}

// packU64LE appends the encoded number to dst and returns the new slice.
func packU64LE(x uint64, dst []byte) []byte {
	return append(dst,
		byte(x),
		byte(x>>8),
		byte(x>>16),
		byte(x>>24),
		byte(x>>32),
		byte(x>>40),
		byte(x>>48),
		byte(x>>56),
	)
}

// accountKey addresses a currency account under 0x01.
func accountKey(addr sdk.Address) string {
	s := addr.String()
	buf := make([]byte, 0, 1+len(s))
	buf = append(buf, kAccount)
	buf = append(buf, s...)
	return string(buf)
}

// repAccountKey mirrors accountKey for the reputation ledger.
func repAccountKey(addr sdk.Address) string {
	s := addr.String()
	buf := make([]byte, 0, 1+len(s))
	buf = append(buf, kReputation)
	buf = append(buf, s...)
	return string(buf)
}

// projectKey builds a storage key string for a project by ID.
func projectKey(id uint64) string {
	var buf [9]byte
	buf[0] = kProject
	packU64LEInline(id, buf[1:])
	return string(buf[:])
}

// stakeKey mixes project id plus address bytes to avoid nested maps in host storage.
func stakeKey(projectID uint64, addr sdk.Address) string {
	s := addr.String()
	buf := make([]byte, 0, 1+8+len(s))
	buf = append(buf, kStake)
	buf = packU64LE(projectID, buf)
	buf = append(buf, s...)
	return string(buf)
}

// submissionKey stores hash submissions sequentially under 0x12.
func submissionKey(projectID uint64, seq uint32) string {
	var buf [13]byte
	buf[0] = kSubmission
	packU64LEInline(projectID, buf[1:])
	packU32LEInline(seq, buf[9:])
	return string(buf[:])
}

// taskKey stores tasks sequentially under 0x13.
func taskKey(projectID uint64, idx uint32) string {
	var buf [13]byte
	buf[0] = kTask
	packU64LEInline(projectID, buf[1:])
	packU32LEInline(idx, buf[9:])
	return string(buf[:])
}

// validationKey keeps validation records next to their task but in their own prefix.
func validationKey(projectID uint64, idx uint32) string {
	var buf [13]byte
	buf[0] = kValidation
	packU64LEInline(projectID, buf[1:])
	packU32LEInline(idx, buf[9:])
	return string(buf[:])
}

// pollKey builds a storage key string for a poll by ID.
func pollKey(id uint64) string {
	var buf [9]byte
	buf[0] = kPoll
	packU64LEInline(id, buf[1:])
	return string(buf[:])
}

// pollCommitKey addresses one voter's sealed ballot within a poll.
func pollCommitKey(pollID uint64, addr sdk.Address) string {
	s := addr.String()
	buf := make([]byte, 0, 1+8+len(s))
	buf = append(buf, kPollCommit)
	buf = packU64LE(pollID, buf)
	buf = append(buf, s...)
	return string(buf)
}

// voteCreditKey scopes quadratic vote budgets per ledger kind and address.
func voteCreditKey(kind StakeKind, addr sdk.Address) string {
	s := addr.String()
	buf := make([]byte, 0, 1+1+len(s))
	buf = append(buf, kVoteCredit)
	buf = append(buf, byte(kind))
	buf = append(buf, s...)
	return string(buf)
}
