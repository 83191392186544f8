package mocks

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/stretchr/testify/mock"
)

// API is a mock implementation of prefixlist.API
type API struct {
	mock.Mock
}

func (m *API) DescribeManagedPrefixLists(ctx context.Context, params *ec2.DescribeManagedPrefixListsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeManagedPrefixListsOutput, error) {
	args := m.Called(ctx, params)
	if out, ok := args.Get(0).(*ec2.DescribeManagedPrefixListsOutput); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *API) GetManagedPrefixListEntries(ctx context.Context, params *ec2.GetManagedPrefixListEntriesInput, optFns ...func(*ec2.Options)) (*ec2.GetManagedPrefixListEntriesOutput, error) {
	args := m.Called(ctx, params)
	if out, ok := args.Get(0).(*ec2.GetManagedPrefixListEntriesOutput); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *API) ModifyManagedPrefixList(ctx context.Context, params *ec2.ModifyManagedPrefixListInput, optFns ...func(*ec2.Options)) (*ec2.ModifyManagedPrefixListOutput, error) {
	args := m.Called(ctx, params)
	if out, ok := args.Get(0).(*ec2.ModifyManagedPrefixListOutput); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}
