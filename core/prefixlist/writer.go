package prefixlist

import (
	"context"
	"fmt"

	apperrors "prefix-list-updater/core/errors"
	"prefix-list-updater/core/reconcile"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// Apply submits a Replace decision as one ModifyManagedPrefixList call
// carrying the snapshot's version as CurrentVersion. EC2 rejects the whole
// request if the list moved on since the snapshot was read.
func (c *Client) Apply(ctx context.Context, snapshot reconcile.Snapshot, decision reconcile.Decision) (reconcile.Version, error) {
	if decision.Kind != reconcile.Replace {
		return snapshot.Version, nil
	}

	remove, add := requestEntries(decision)
	if len(remove) == 0 && !add {
		return snapshot.Version, nil
	}

	if add && snapshot.MaxEntries > 0 {
		if after := len(snapshot.Entries) - len(remove) + 1; after > snapshot.MaxEntries {
			return reconcile.Version{}, &apperrors.WriteError{
				Kind:    apperrors.WriteCapacityExceeded,
				ListID:  snapshot.ListID,
				Version: snapshot.Version.Int64(),
				Err:     fmt.Errorf("list would hold %d entries, max is %d", after, snapshot.MaxEntries),
			}
		}
	}

	input := &ec2.ModifyManagedPrefixListInput{
		PrefixListId:   aws.String(snapshot.ListID),
		CurrentVersion: aws.Int64(snapshot.Version.Int64()),
	}
	for _, cidr := range remove {
		input.RemoveEntries = append(input.RemoveEntries, types.RemovePrefixListEntry{Cidr: aws.String(cidr)})
	}
	if add {
		input.AddEntries = []types.AddPrefixListEntry{{
			Cidr:        aws.String(decision.Target),
			Description: aws.String(c.description),
		}}
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	out, err := c.api.ModifyManagedPrefixList(ctx, input)
	if err != nil {
		return reconcile.Version{}, classifyWrite(snapshot, err)
	}

	if out.PrefixList != nil && out.PrefixList.Version != nil {
		return reconcile.NewVersion(*out.PrefixList.Version), nil
	}
	return reconcile.NewVersion(snapshot.Version.Int64() + 1), nil
}

// requestEntries turns a decision into the entries to send. An owned entry
// that already holds the target CIDR is kept in place instead of being
// removed and re-added in the same request, which EC2 refuses.
func requestEntries(d reconcile.Decision) (remove []string, add bool) {
	add = true
	for _, cidr := range d.Remove {
		if cidr == d.Target {
			add = false
			continue
		}
		remove = append(remove, cidr)
	}
	return remove, add
}
