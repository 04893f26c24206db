package receipt

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeS3 records PutObject calls.
type fakeS3 struct {
	input *s3.PutObjectInput
	body  string
	err   error
}

func (f *fakeS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.input = params
	data, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	f.body = string(data)
	return &s3.PutObjectOutput{}, nil
}

func TestS3Store_Save(t *testing.T) {
	client := &fakeS3{}
	store := newS3Store(client, "deli-receipts", "receipts/", zerolog.Nop())
	receipt := newTestReceipt(t)

	location, err := store.Save(context.Background(), receipt)
	require.NoError(t, err)

	expectedKey := "receipts/" + receipt.FileName()
	assert.Equal(t, "s3://deli-receipts/"+expectedKey, location)

	require.NotNil(t, client.input)
	assert.Equal(t, "deli-receipts", aws.ToString(client.input.Bucket))
	assert.Equal(t, expectedKey, aws.ToString(client.input.Key))
	assert.Equal(t, receipt.Text, client.body)
	assert.Equal(t, receipt.OrderID.String(), client.input.Metadata["order-id"])
	assert.Equal(t, "7.00", client.input.Metadata["total"])
}

func TestS3Store_Save_Error(t *testing.T) {
	client := &fakeS3{err: errors.New("access denied")}
	store := newS3Store(client, "deli-receipts", "", zerolog.Nop())

	location, err := store.Save(context.Background(), newTestReceipt(t))
	require.Error(t, err)
	assert.Empty(t, location)
	assert.Contains(t, err.Error(), "bucket=deli-receipts")
	assert.Contains(t, err.Error(), "access denied")
}
