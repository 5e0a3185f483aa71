package timeparse

import "errors"

// ErrUnparseable is returned when no resolution rule matches the input text.
var ErrUnparseable = errors.New("unparseable time expression")

// ErrUnknownDay is returned by ResolveDay for day names outside the known set.
var ErrUnknownDay = errors.New("unknown day name")

// DefaultHour is the wall-clock hour used when a day-level expression carries
// no explicit time ("tomorrow", "next week").
const DefaultHour = 9
