package blog

import (
	"bhzdravlje-service/internal/app/contracts"
	"bhzdravlje-service/internal/app/models"
	"bhzdravlje-service/internal/app/services/core/directory"
	"bhzdravlje-service/internal/pkg/constvars"
	"bhzdravlje-service/internal/pkg/dto/responses"
	"bhzdravlje-service/internal/pkg/exceptions"
	"bhzdravlje-service/internal/pkg/listing"
	"bhzdravlje-service/internal/pkg/seo"
	"bhzdravlje-service/internal/pkg/utils"
	"context"

	"go.uber.org/zap"
)

const (
	listingTitle       = "Zdravstveni savjeti i novosti"
	listingDescription = "Članci o zdravlju, prevenciji i liječenju, pisani uz pomoć doktora iz Bosne i Hercegovine."
	listingLabel       = "Blog"
	relatedPostsLimit  = 3
)

type blogUsecase struct {
	BlogBackend contracts.BlogBackend
	Cache       directory.Cache
	SEO         *seo.Builder
	Log         *zap.Logger
	listCfg     directory.ListingConfig[models.BlogPost]
}

func NewBlogUsecase(
	blogBackend contracts.BlogBackend,
	cache directory.Cache,
	seoBuilder *seo.Builder,
	logger *zap.Logger,
) contracts.BlogUsecase {
	return &blogUsecase{
		BlogBackend: blogBackend,
		Cache:       cache,
		SEO:         seoBuilder,
		Log:         logger,
		listCfg: directory.ListingConfig[models.BlogPost]{
			Route:       listing.Route{BasePath: constvars.PagePathBlog},
			Title:       listingTitle,
			Description: listingDescription,
			Label:       listingLabel,
			TextOf:      models.BlogPost.SearchText,
			NameOf: func(p models.BlogPost) string {
				return p.Title
			},
			PathOf: func(p models.BlogPost) string {
				return directory.ProfilePath(constvars.PagePathBlog, p.Slug)
			},
		},
	}
}

func (uc *blogUsecase) GetListing(ctx context.Context, query listing.Query) (*responses.PageModel, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("blogUsecase.GetListing called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingListingFiltersKey, query),
	)

	page, err := directory.FetchPage[models.BlogPost](ctx, uc.Cache, uc.BlogBackend, constvars.EntityTypeBlogPost, query.BackendParams())
	if err != nil {
		uc.Log.Error("blogUsecase.GetListing error fetching posts",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return directory.BuildListingPage(uc.SEO, uc.listCfg, query, page), nil
}

// GetProfile renders one article. Related posts are optional.
func (uc *blogUsecase) GetProfile(ctx context.Context, slug string) (*responses.PageModel, error) {
	requestID := utils.GetRequestID(ctx)
	path := directory.ProfilePath(constvars.PagePathBlog, slug)

	if err := utils.ValidateSlug(slug); err != nil {
		return uc.notFound(path), nil
	}

	post, err := directory.FetchItem[models.BlogPost](ctx, uc.Cache, uc.BlogBackend, constvars.EntityTypeBlogPost, slug)
	if err != nil {
		if exceptions.IsNotFound(err) {
			return uc.notFound(path), nil
		}
		uc.Log.Error("blogUsecase.GetProfile error fetching post",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSlugKey, slug),
			zap.Error(err),
		)
		return nil, err
	}

	related, err := uc.BlogBackend.FindRelated(ctx, post, relatedPostsLimit)
	if err != nil {
		uc.Log.Warn("blogUsecase.GetProfile related posts unavailable",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		related = nil
	}

	data := responses.BlogPostPage{
		Post:    *post,
		Related: related,
		Extras:  directory.Extras(uc.SEO, path, post.Title, nil, post.VideoURL),
	}

	description := post.Excerpt
	if description == "" {
		description = post.Content
	}

	metadata := uc.SEO.Page(post.Title, description, path).
		WithType("article").
		WithImage(post.CoverImageURL).
		WithJSONLD(uc.SEO.BlogPosting(seo.Article{
			Headline:      post.Title,
			Description:   description,
			Path:          path,
			Image:         post.CoverImageURL,
			AuthorName:    post.Author,
			DatePublished: post.PublishedAt,
			Section:       post.Category,
		})).
		WithBreadcrumbs(uc.SEO,
			seo.Breadcrumb{Name: directory.HomeLabel, Path: constvars.PagePathHome},
			seo.Breadcrumb{Name: listingLabel, Path: constvars.PagePathBlog},
			seo.Breadcrumb{Name: post.Title, Path: path},
		)

	return &responses.PageModel{
		Data: data,
		SEO:  metadata,
	}, nil
}

func (uc *blogUsecase) notFound(path string) *responses.PageModel {
	return directory.NotFoundPage(uc.SEO, path, constvars.ErrClientBlogPostNotFound, constvars.PagePathBlog, listingLabel)
}
