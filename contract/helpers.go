package contract

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"

	"taskmesh/sdk"
)

// getCount reads the string counter under the key, defaulting to zero.
func getCount(s sdk.State, key string) uint64 {
	ptr := s.Get(key)
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, _ := strconv.ParseUint(*ptr, 10, 64)
	return n
}

// setCount stores uint64 counters back as decimal strings for the host kv.
func setCount(s sdk.State, key string, n uint64) {
	s.Set(key, strconv.FormatUint(n, 10))
}

// UInt64ToString turns an id back into decimal text for logs or payload building.
// Example payload: UInt64ToString(9001)
func UInt64ToString(val uint64) string {
	return strconv.FormatUint(val, 10)
}

// taskDigest commits one task as sha256("description|weighting") hex.
// Example payload: taskDigest("build the parser", 40)
func taskDigest(description string, weighting uint32) string {
	h := sha256.Sum256([]byte(description + "|" + strconv.FormatUint(uint64(weighting), 10)))
	return hex.EncodeToString(h[:])
}

// taskListHash chains the per-task digests in order into the list commitment.
func taskListHash(specs []TaskSpec) string {
	var b strings.Builder
	for _, t := range specs {
		b.WriteString(taskDigest(t.Description, t.Weighting))
	}
	h := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(h[:])
}

// TaskListHash is the exported commitment helper so callers can build the
// hash they submit during the staked window.
// Example payload: TaskListHash([]TaskSpec{{Description: "docs", Weighting: 100}})
func TaskListHash(specs []TaskSpec) string {
	return taskListHash(specs)
}

// VoteHash seals a ballot as sha256("choice|secret") hex; choice is "1" or "0".
// Example payload: VoteHash(true, "hunter2")
func VoteHash(choice bool, secret string) string {
	c := "0"
	if choice {
		c = "1"
	}
	h := sha256.Sum256([]byte(c + "|" + secret))
	return hex.EncodeToString(h[:])
}

// flooredShare computes amount*num/den with truncating division.
func flooredShare(amount, num, den Amount) Amount {
	if den == 0 {
		return 0
	}
	return amount * num / den
}

// positionalWeights splits PositionalWeightTotal basis points over n list
// positions: position i gets total*(n-i)/(n*(n+1)/2) with the rounding
// remainder landing on position 0. Strictly decreasing and injective for
// every n up to MaxAttestersPerSide, and the slice always sums to the total.
func positionalWeights(n int) []Amount {
	if n <= 0 {
		return nil
	}
	den := Amount(n) * Amount(n+1) / 2
	out := make([]Amount, n)
	sum := Amount(0)
	for i := 0; i < n; i++ {
		w := PositionalWeightTotal * Amount(n-i) / den
		out[i] = w
		sum += w
	}
	out[0] += PositionalWeightTotal - sum
	return out
}
