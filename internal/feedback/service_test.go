package feedback

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/angelmondragon/restroboost-backend/internal/records"
	"github.com/angelmondragon/restroboost-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/restroboost-backend/pkg/errors"
	"github.com/angelmondragon/restroboost-backend/pkg/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 7, 18, 30, 0, 0, time.Local)

func newTestService(t *testing.T) (Service, *Repository) {
	t.Helper()
	repo, err := NewRepository(records.Deps{Backend: kv.NewMemory()})
	require.NoError(t, err)
	svc, err := NewService(ServiceParams{Repo: repo, Now: func() time.Time { return testNow }})
	require.NoError(t, err)
	return svc, repo
}

func TestAddAppliesDefaults(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)

	created, err := svc.Add(ctx, CreateEntryInput{Customer: "Lisa Wang", Rating: 2, Comment: "Too salty", Dish: "Caesar Salad"})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "3/7/2026", created.Date)
	assert.Equal(t, enums.SentimentPositive, created.Sentiment, "sentiment defaults to positive regardless of rating")
	assert.Zero(t, created.Helpful)
	assert.False(t, created.Responded)

	entries, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, *created, entries[0])
}

func TestAddValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.Add(ctx, CreateEntryInput{Rating: 3})
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))
	_, err = svc.Add(ctx, CreateEntryInput{Customer: "a", Rating: 0})
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))
	_, err = svc.Add(ctx, CreateEntryInput{Customer: "a", Rating: 3, Sentiment: "meh"})
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))
}

func TestMarkRespondedAndHelpful(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	created, err := svc.Add(ctx, CreateEntryInput{Customer: "Anna", Rating: 4, Sentiment: enums.SentimentPositive})
	require.NoError(t, err)

	responded, err := svc.MarkResponded(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, responded.Responded)

	helpful, err := svc.MarkHelpful(ctx, created.ID)
	require.NoError(t, err)
	helpful, err = svc.MarkHelpful(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, helpful.Helpful)
	assert.True(t, helpful.Responded)
}

func TestUpdateShallowMerge(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	created, err := svc.Add(ctx, CreateEntryInput{Customer: "Tom", Rating: 1, Comment: "cold", Sentiment: enums.SentimentNegative})
	require.NoError(t, err)

	comment := "cold but apologised"
	updated, err := svc.Update(ctx, created.ID, UpdateEntryInput{Comment: &comment})
	require.NoError(t, err)
	assert.Equal(t, comment, updated.Comment)
	assert.Equal(t, created.Rating, updated.Rating)
	assert.Equal(t, created.Sentiment, updated.Sentiment)
	assert.Equal(t, created.Date, updated.Date)

	bad := -1
	_, err = svc.Update(ctx, created.ID, UpdateEntryInput{Helpful: &bad})
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))
}

func TestMissingIDs(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(t)
	_, err := svc.Add(ctx, CreateEntryInput{Customer: "Tom", Rating: 1})
	require.NoError(t, err)

	_, err = svc.MarkHelpful(ctx, "missing")
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeNotFound))
	_, err = svc.MarkResponded(ctx, "missing")
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeNotFound))
	assert.True(t, pkgerrors.HasCode(svc.Delete(ctx, "missing"), pkgerrors.CodeNotFound))

	entries, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestListFilters(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	for _, in := range []CreateEntryInput{
		{Customer: "Sarah", Rating: 5, Dish: "Margherita Pizza", Sentiment: enums.SentimentPositive},
		{Customer: "Emma", Rating: 2, Dish: "Beef Burger", Comment: "overcooked", Sentiment: enums.SentimentNegative},
		{Customer: "Lisa", Rating: 3, Dish: "Caesar Salad", Sentiment: enums.SentimentNeutral},
	} {
		_, err := svc.Add(ctx, in)
		require.NoError(t, err)
	}

	neg := enums.SentimentNegative
	got, err := svc.List(ctx, ListInput{Sentiment: &neg})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Emma", got[0].Customer)

	got, err = svc.List(ctx, ListInput{Search: "PIZZA"})
	require.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = svc.List(ctx, ListInput{Search: "overcooked"})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

type brokenRepo struct{ repository }

func (brokenRepo) GetAll(context.Context) ([]Entry, error) {
	return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, errors.New("down"), "load")
}

func TestListPropagatesBackendErrors(t *testing.T) {
	svc, err := NewService(ServiceParams{Repo: brokenRepo{}})
	require.NoError(t, err)
	_, err = svc.List(context.Background(), ListInput{})
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeDependency))
}
