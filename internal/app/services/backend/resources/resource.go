// Package resources holds the typed wrappers over the directory backend, one
// per collection.
package resources

import (
	"bhzdravlje-service/internal/app/models"
	"bhzdravlje-service/internal/app/services/backend/apiclient"
	"bhzdravlje-service/internal/pkg/constvars"
	"bhzdravlje-service/internal/pkg/utils"
	"context"
	"net/url"
	"strconv"

	"go.uber.org/zap"
)

const listAllPageSize = 100

type resource[T any] struct {
	client *apiclient.Client
	log    *zap.Logger
	name   string
	path   string
}

func newResource[T any](client *apiclient.Client, logger *zap.Logger, name, path string) *resource[T] {
	return &resource[T]{
		client: client,
		log:    logger,
		name:   name,
		path:   path,
	}
}

func (r *resource[T]) FindAll(ctx context.Context, params url.Values) ([]T, *models.ListMeta, error) {
	requestID := utils.GetRequestID(ctx)
	r.log.Info(r.name+"Backend.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryKey, params.Encode()),
	)

	var items []T
	meta, err := r.client.Get(ctx, r.path, params, &items)
	if err != nil {
		r.log.Error(r.name+"Backend.FindAll error fetching collection",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, nil, err
	}
	if items == nil {
		items = []T{}
	}

	r.log.Info(r.name+"Backend.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(items)),
	)
	return items, meta, nil
}

func (r *resource[T]) FindBySlug(ctx context.Context, slug string) (*T, error) {
	requestID := utils.GetRequestID(ctx)
	r.log.Info(r.name+"Backend.FindBySlug called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSlugKey, slug),
	)

	item := new(T)
	if _, err := r.client.Get(ctx, r.itemPath(slug), nil, item); err != nil {
		r.log.Error(r.name+"Backend.FindBySlug error fetching item",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSlugKey, slug),
			zap.Error(err),
		)
		return nil, err
	}

	r.log.Info(r.name+"Backend.FindBySlug succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSlugKey, slug),
	)
	return item, nil
}

func (r *resource[T]) FindReviews(ctx context.Context, slug string, limit int) ([]models.Review, error) {
	requestID := utils.GetRequestID(ctx)
	params := url.Values{}
	if limit > 0 {
		params.Set(constvars.BackendQueryParamPerPage, strconv.Itoa(limit))
	}

	var reviews []models.Review
	if _, err := r.client.Get(ctx, r.itemPath(slug)+constvars.ResourceReviews, params, &reviews); err != nil {
		r.log.Error(r.name+"Backend.FindReviews error fetching reviews",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSlugKey, slug),
			zap.Error(err),
		)
		return nil, err
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	return reviews, nil
}

func (r *resource[T]) ListAll(ctx context.Context, maxPages int) ([]T, error) {
	var all []T
	for page := 1; maxPages <= 0 || page <= maxPages; page++ {
		params := url.Values{}
		params.Set(constvars.BackendQueryParamPage, strconv.Itoa(page))
		params.Set(constvars.BackendQueryParamPerPage, strconv.Itoa(listAllPageSize))

		items, meta, err := r.FindAll(ctx, params)
		if err != nil {
			return nil, err
		}
		all = append(all, items...)

		if len(items) == 0 || meta == nil || page >= meta.LastPage {
			break
		}
	}
	return all, nil
}

func (r *resource[T]) itemPath(slug string) string {
	return r.path + "/" + url.PathEscape(slug)
}
