package resources

import (
	"bhzdravlje-service/internal/app/contracts"
	"bhzdravlje-service/internal/app/models"
	"bhzdravlje-service/internal/app/services/backend/apiclient"
	"bhzdravlje-service/internal/pkg/constvars"
	"context"
	"net/url"
	"strconv"

	"go.uber.org/zap"
)

type blogBackend struct {
	*resource[models.BlogPost]
}

func NewBlogBackend(client *apiclient.Client, logger *zap.Logger) contracts.BlogBackend {
	return &blogBackend{
		resource: newResource[models.BlogPost](client, logger, "blog", constvars.ResourceBlogPosts),
	}
}

// FindRelated returns newest posts of the same category, excluding post.
func (b *blogBackend) FindRelated(ctx context.Context, post *models.BlogPost, limit int) ([]models.BlogPost, error) {
	params := url.Values{}
	if post.Category != "" {
		params.Set(constvars.BackendQueryParamCategory, post.Category)
	}
	params.Set(constvars.BackendQueryParamSort, "-published_at")
	params.Set(constvars.BackendQueryParamPerPage, strconv.Itoa(limit+1))

	posts, _, err := b.FindAll(ctx, params)
	if err != nil {
		return nil, err
	}

	related := make([]models.BlogPost, 0, limit)
	for _, candidate := range posts {
		if candidate.Slug == post.Slug {
			continue
		}
		if len(related) == limit {
			break
		}
		related = append(related, candidate)
	}
	return related, nil
}
