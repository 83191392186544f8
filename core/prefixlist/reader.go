package prefixlist

import (
	"context"
	"fmt"

	apperrors "prefix-list-updater/core/errors"
	"prefix-list-updater/core/reconcile"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
)

// Read fetches the list's version and every entry at exactly that version.
// Entries are requested with TargetVersion set to the described version, so
// a concurrent modification cannot mix entries of two versions into one
// snapshot.
func (c *Client) Read(ctx context.Context, listID string) (reconcile.Snapshot, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	out, err := c.api.DescribeManagedPrefixLists(ctx, &ec2.DescribeManagedPrefixListsInput{
		PrefixListIds: []string{listID},
	})
	if err != nil {
		return reconcile.Snapshot{}, classifyRead(listID, err)
	}
	if len(out.PrefixLists) == 0 {
		return reconcile.Snapshot{}, &apperrors.RemoteError{
			Kind:   apperrors.RemoteNotFound,
			ListID: listID,
			Err:    fmt.Errorf("describe returned no prefix list"),
		}
	}

	pl := out.PrefixLists[0]
	snapshot := reconcile.Snapshot{
		ListID:     listID,
		Version:    reconcile.NewVersion(aws.ToInt64(pl.Version)),
		MaxEntries: int(aws.ToInt32(pl.MaxEntries)),
	}

	input := &ec2.GetManagedPrefixListEntriesInput{
		PrefixListId: aws.String(listID),
		MaxResults:   aws.Int32(c.pageSize),
	}
	if pl.Version != nil {
		input.TargetVersion = pl.Version
	}

	paginator := ec2.NewGetManagedPrefixListEntriesPaginator(c.api, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return reconcile.Snapshot{}, classifyRead(listID, err)
		}
		for _, e := range page.Entries {
			snapshot.Entries = append(snapshot.Entries, reconcile.Entry{
				CIDR:        aws.ToString(e.Cidr),
				Description: aws.ToString(e.Description),
			})
		}
	}

	return snapshot, nil
}
