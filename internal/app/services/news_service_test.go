package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unistone/campus/internal/app/models/dto"
	"github.com/unistone/campus/internal/pkg/apperrors"
)

func TestCreateNewsLeadsTheFeed(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewNewsService(repos.NewsRepository, zerolog.Nop())

	ctx := context.Background()

	older, err := svc.CreateNews(ctx, &dto.CreateNewsRequest{Title: "Older"})
	require.NoError(t, err)
	newer, err := svc.CreateNews(ctx, &dto.CreateNewsRequest{Title: "Newer"})
	require.NoError(t, err)

	list, err := svc.ListNews(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, newer.ID, list[0].ID, "newest article should lead the feed")
	assert.Equal(t, older.ID, list[1].ID)
}

func TestCreateNewsEditorialDefaults(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewNewsService(repos.NewsRepository, zerolog.Nop())

	article, err := svc.CreateNews(context.Background(), &dto.CreateNewsRequest{Title: "Bare"})
	require.NoError(t, err)

	assert.Equal(t, defaultNewsSource, article.Source)
	assert.Equal(t, defaultNewsReadTime, article.ReadTime)
	assert.Equal(t, defaultNewsCategory, article.Category)
}

func TestGetNews(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewNewsService(repos.NewsRepository, zerolog.Nop())

	created, err := svc.CreateNews(context.Background(), &dto.CreateNewsRequest{Title: "Campus shuttle pilot"})
	require.NoError(t, err)

	got, err := svc.GetNews(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Campus shuttle pilot", got.Title)

	_, err = svc.GetNews(context.Background(), "NWS-missing")
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}
