package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice/internal/config"
	"backoffice/internal/errors"
	"backoffice/internal/infrastructure/upstream"
	"backoffice/internal/testutil"
)

func newTestClient(t *testing.T, fake *testutil.FakeCommerceAPI, resource Resource) *Client {
	up := upstream.New(config.UpstreamConfig{
		BaseURL: fake.URL(),
		Timeout: 5 * time.Second,
	})
	return NewClient(up, resource, nil)
}

func TestList_Brands(t *testing.T) {
	fake := testutil.NewFakeCommerceAPI(t)
	fake.SeedBrands(
		map[string]interface{}{"_id": "b1", "name": "Acme", "website": "https://acme.example"},
		map[string]interface{}{"_id": "b2", "name": "Globex"},
	)

	client := newTestClient(t, fake, Brands)
	entries, err := client.List(context.Background())

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Acme", entries[0].Name)
	assert.Equal(t, "https://acme.example", entries[0].Website)
}

func TestList_Categories(t *testing.T) {
	fake := testutil.NewFakeCommerceAPI(t)
	fake.SeedCategories(map[string]interface{}{"_id": "c1", "name": "Shoes", "description": "Footwear"})

	client := newTestClient(t, fake, Categories)
	entries, err := client.List(context.Background())

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Shoes", entries[0].Name)
	assert.Equal(t, "Footwear", entries[0].Description)
}

func TestCreateUpdateDelete_UseResourcePath(t *testing.T) {
	fake := testutil.NewFakeCommerceAPI(t)
	client := newTestClient(t, fake, Brands)
	ctx := context.Background()

	require.NoError(t, client.Create(ctx, EntryInput{Name: "Acme"}))
	require.NoError(t, client.Update(ctx, "b1", EntryInput{Name: "Acme Corp"}))
	require.NoError(t, client.Delete(ctx, "b1"))

	requests := fake.Requests()
	require.Len(t, requests, 3)

	assert.Equal(t, "POST", requests[0].Method)
	assert.Equal(t, "/api/brand", requests[0].Path)
	assert.Equal(t, "Acme", requests[0].Body["name"])

	assert.Equal(t, "PUT", requests[1].Method)
	assert.Equal(t, "/api/brand/b1", requests[1].Path)

	assert.Equal(t, "DELETE", requests[2].Method)
	assert.Equal(t, "/api/brand/b1", requests[2].Path)
}

func TestList_FailureSurfacesMessage(t *testing.T) {
	fake := testutil.NewFakeCommerceAPI(t)
	fake.FailPath("/api/category", "categories unavailable")

	client := newTestClient(t, fake, Categories)
	entries, err := client.List(context.Background())

	assert.Nil(t, entries)
	ge, ok := errors.IsGatewayError(err)
	require.True(t, ok)
	assert.Equal(t, "categories unavailable", ge.Message)
}
