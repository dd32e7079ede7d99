package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/atelier/internal/domain"
	"github.com/alexanderramin/atelier/internal/hierarchy"
	"github.com/alexanderramin/atelier/internal/record"
	"github.com/alexanderramin/atelier/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func canvasItem(id, bucket, name string) record.CanvasItem {
	return record.CanvasItem{ID: id, Bucket: &bucket, Name: &name}
}

func seedCanvas(t *testing.T, env *testEnv) {
	t.Helper()
	seed(t, env, record.CollectionCanvas,
		canvasItem("c1", "value_propositions", "Fast delivery"),
		canvasItem("c2", "key_resources", "Senior team"),
		canvasItem("c3", "canaux", "Newsletter"),
	)
}

func TestCanvasService_OverviewGroupsByBucket(t *testing.T) {
	env := newTestEnv(t)
	seedCanvas(t, env)
	svc := NewCanvasService(env.uow, fixedClock, env.ids)

	ov, err := svc.Overview(context.Background(), "WEB01")
	require.NoError(t, err)

	require.Len(t, ov.Buckets.Keys, len(domain.CanvasBuckets)+1)
	assert.Equal(t, string(domain.BucketKeyPartners), ov.Buckets.Keys[0])
	assert.Equal(t, hierarchy.Unassigned, ov.Buckets.Keys[len(ov.Buckets.Keys)-1])

	vp, ok := ov.Buckets.Lookup(string(domain.BucketValuePropositions))
	require.True(t, ok)
	require.Len(t, vp, 1)
	assert.Equal(t, "Fast delivery", vp[0].Name)

	channels, _ := ov.Buckets.Lookup(string(domain.BucketChannels))
	require.Len(t, channels, 1)
	assert.Equal(t, "c3", channels[0].ID)

	none, _ := ov.Buckets.Lookup(hierarchy.Unassigned)
	assert.Empty(t, none)

	assert.Equal(t, 3, ov.Stats.TotalItems)
	assert.Equal(t, 3, ov.Stats.FilledBuckets)
	assert.Equal(t, 33, ov.Stats.CompletionRate)
}

func TestCanvasService_SaveAndDeleteItems(t *testing.T) {
	env := newTestEnv(t)
	seedCanvas(t, env)
	svc := NewCanvasService(env.uow, fixedClock, env.ids)
	ctx := context.Background()

	err := svc.SaveItems(ctx, "WEB01", []domain.CanvasItem{
		{ID: "c2", Bucket: domain.BucketKeyResources, Name: "Senior team of four"},
		{Bucket: domain.BucketRevenueStreams, Name: "Retainers"},
	})
	require.NoError(t, err)

	items := stored[record.CanvasItem](t, env, record.CollectionCanvas)
	assert.Equal(t, []string{"c1", "c2", "c3", "canvas-1"}, keysOf(items))
	assert.Equal(t, "Senior team of four", *items[1].Name)
	assert.Equal(t, "revenue_streams", *items[3].Bucket)

	require.NoError(t, svc.DeleteItem(ctx, "WEB01", "c3"))
	items = stored[record.CanvasItem](t, env, record.CollectionCanvas)
	assert.Equal(t, []string{"c1", "c2", "canvas-1"}, keysOf(items))

	assert.ErrorIs(t, svc.DeleteItem(ctx, "WEB01", "c3"), repository.ErrNotFound)
}

func TestCanvasService_SavePricing(t *testing.T) {
	env := newTestEnv(t)
	svc := NewCanvasService(env.uow, fixedClock, env.ids)
	ctx := context.Background()

	err := svc.SavePricing(ctx, "WEB01", []domain.PricingEntry{
		{ID: "p1", Kind: domain.PricingHourly, Name: "Consulting", HourlyRate: 80},
		{ID: "p2", Kind: domain.PricingPackage, Name: "Landing page", Price: 900, Hours: 10},
	})
	require.NoError(t, err)

	ov, err := svc.Overview(ctx, "WEB01")
	require.NoError(t, err)
	require.Len(t, ov.Pricing, 2)
	assert.Equal(t, domain.PricingPackage, ov.Pricing[1].Kind)
	assert.Equal(t, 2, ov.Stats.Pricing.Total)
	assert.Equal(t, 80.0, ov.Stats.Pricing.MinHourlyRate)
	assert.Equal(t, 90.0, ov.Stats.Pricing.MaxHourlyRate)

	require.NoError(t, svc.DeletePricing(ctx, "WEB01", "p1"))
	assert.Equal(t, []string{"p2"}, keysOf(stored[record.PricingEntry](t, env, record.CollectionPricing)))
}

func TestCanvasService_SavePricingRejectsInvalid(t *testing.T) {
	env := newTestEnv(t)
	svc := NewCanvasService(env.uow, fixedClock, env.ids)

	err := svc.SavePricing(context.Background(), "WEB01", []domain.PricingEntry{
		{ID: "p1", Kind: domain.PricingCustom, Name: "Audit", MinPrice: 500, MaxPrice: 100},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "maxPrice: max price must be >= min price")
	assert.Empty(t, stored[record.PricingEntry](t, env, record.CollectionPricing))
}
