package whisper

import "time"

// now returns the current time as unix seconds, used whenever a caller
// omits an explicit "now": when omitted, the current UTC unix time is used.
func now() uint64 {
	return uint64(time.Now().UTC().Unix())
}
