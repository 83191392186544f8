package reconcile

import (
	"net/netip"
	"sort"
)

// Decide compares the observed address with a snapshot and returns what has
// to change. It performs no I/O and cannot fail.
//
// Only entries whose description equals description are considered; all
// others are neither inspected further nor ever scheduled for removal. When
// several owned entries exist they are all removed: the list converges to a
// single owned entry rather than guessing which one was meant to survive.
func Decide(addr netip.Addr, snapshot Snapshot, description string, suffix int) Decision {
	target := CIDR(addr, suffix)
	owned := snapshot.Owned(description)

	if len(owned) == 1 && owned[0] == target {
		return Decision{Kind: NoChange, Target: target}
	}

	remove := make([]string, len(owned))
	copy(remove, owned)
	sort.Strings(remove)

	return Decision{
		Kind:   Replace,
		Target: target,
		Remove: remove,
	}
}
