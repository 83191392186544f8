package reconcile

import (
	"fmt"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
)

const managed = "Auto-updated host IP"

func snapshotOf(entries ...Entry) Snapshot {
	return Snapshot{ListID: "pl-test", Entries: entries, Version: NewVersion(1)}
}

func TestDecide_Scenarios(t *testing.T) {
	addr := netip.MustParseAddr("203.0.113.42")

	tests := []struct {
		name     string
		snapshot Snapshot
		suffix   int
		want     Decision
	}{
		{
			name:     "stale owned entry is replaced",
			snapshot: snapshotOf(Entry{CIDR: "198.51.100.5/32", Description: managed}),
			suffix:   32,
			want:     Decision{Kind: Replace, Target: "203.0.113.42/32", Remove: []string{"198.51.100.5/32"}},
		},
		{
			name:     "no owned entry adds with configured suffix",
			snapshot: snapshotOf(Entry{CIDR: "10.0.0.0/8", Description: "office"}),
			suffix:   24,
			want:     Decision{Kind: Replace, Target: "203.0.113.42/24", Remove: []string{}},
		},
		{
			name:     "owned entry already correct",
			snapshot: snapshotOf(Entry{CIDR: "203.0.113.42/32", Description: managed}, Entry{CIDR: "10.0.0.0/8", Description: "office"}),
			suffix:   32,
			want:     Decision{Kind: NoChange, Target: "203.0.113.42/32"},
		},
		{
			name: "multiple owned entries are all removed",
			snapshot: snapshotOf(
				Entry{CIDR: "198.51.100.9/32", Description: managed},
				Entry{CIDR: "198.51.100.5/32", Description: managed},
				Entry{CIDR: "203.0.113.42/32", Description: managed},
			),
			suffix: 32,
			want: Decision{
				Kind:   Replace,
				Target: "203.0.113.42/32",
				Remove: []string{"198.51.100.5/32", "198.51.100.9/32", "203.0.113.42/32"},
			},
		},
		{
			name:     "description match is case-sensitive",
			snapshot: snapshotOf(Entry{CIDR: "203.0.113.42/32", Description: "auto-updated host ip"}),
			suffix:   32,
			want:     Decision{Kind: Replace, Target: "203.0.113.42/32", Remove: []string{}},
		},
		{
			name:     "empty list",
			snapshot: snapshotOf(),
			suffix:   32,
			want:     Decision{Kind: Replace, Target: "203.0.113.42/32", Remove: []string{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decide(addr, tt.snapshot, managed, tt.suffix)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecide_NeverRemovesForeignEntries(t *testing.T) {
	addr := netip.MustParseAddr("203.0.113.42")

	for owned := 0; owned <= 4; owned++ {
		t.Run(fmt.Sprintf("%d owned", owned), func(t *testing.T) {
			var entries []Entry
			for i := 0; i < owned; i++ {
				entries = append(entries, Entry{CIDR: fmt.Sprintf("198.51.100.%d/32", i+1), Description: managed})
			}
			// foreign entries, including one with the target CIDR itself
			entries = append(entries,
				Entry{CIDR: "203.0.113.42/32", Description: "someone else"},
				Entry{CIDR: "192.0.2.0/24", Description: ""},
			)

			d := Decide(addr, snapshotOf(entries...), managed, 32)

			assert.Equal(t, Replace, d.Kind)
			assert.Equal(t, "203.0.113.42/32", d.Add())
			assert.Len(t, d.Remove, owned)
			for _, cidr := range d.Remove {
				assert.NotEqual(t, "192.0.2.0/24", cidr)
				assert.NotEqual(t, "203.0.113.42/32", cidr)
			}
		})
	}
}

func TestDecide_FixedPoint(t *testing.T) {
	addr := netip.MustParseAddr("203.0.113.42")
	snaps := []Snapshot{
		snapshotOf(),
		snapshotOf(Entry{CIDR: "198.51.100.5/32", Description: managed}),
		snapshotOf(
			Entry{CIDR: "198.51.100.5/32", Description: managed},
			Entry{CIDR: "198.51.100.6/32", Description: managed},
			Entry{CIDR: "10.0.0.0/8", Description: "office"},
		),
	}

	for i, snap := range snaps {
		t.Run(fmt.Sprintf("snapshot %d", i), func(t *testing.T) {
			list := newFakeList(snap.Entries...)
			d := Decide(addr, list.snapshot(), managed, 32)
			assert.Equal(t, Replace, d.Kind)

			list.apply(d, managed)
			after := Decide(addr, list.snapshot(), managed, 32)

			assert.Equal(t, NoChange, after.Kind)
			assert.Equal(t, []string{"203.0.113.42/32"}, list.snapshot().Owned(managed))
		})
	}
}

func TestCIDR(t *testing.T) {
	assert.Equal(t, "203.0.113.1/32", CIDR(netip.MustParseAddr("203.0.113.1"), 32))
	assert.Equal(t, "203.0.113.1/24", CIDR(netip.MustParseAddr("::ffff:203.0.113.1"), 24))
}

func TestSnapshot_OwnedDeduplicates(t *testing.T) {
	s := snapshotOf(
		Entry{CIDR: "198.51.100.5/32", Description: managed},
		Entry{CIDR: "198.51.100.5/32", Description: managed},
		Entry{CIDR: "198.51.100.6/32", Description: "other"},
	)
	assert.Equal(t, []string{"198.51.100.5/32"}, s.Owned(managed))
}
