package sitemap

import (
	"bhzdravlje-service/internal/app/contracts"
	"bhzdravlje-service/internal/app/models"
	"bhzdravlje-service/internal/app/services/core/directory"
	"bhzdravlje-service/internal/pkg/constvars"
	"bhzdravlje-service/internal/pkg/exceptions"
	"bhzdravlje-service/internal/pkg/metrics"
	"bhzdravlje-service/internal/pkg/utils"
	"context"
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"
	lockExpiration   = 10 * time.Minute
	defaultMaxPages  = 50
)

type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	XMLNS   string     `xml:"xmlns,attr"`
	URLs    []urlEntry `xml:"url"`
}

type urlEntry struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// Sources are the backends whose entities get a profile URL in the sitemap.
type Sources struct {
	Doctors      contracts.DoctorBackend
	Clinics      contracts.FacilityBackend[models.Clinic]
	Laboratories contracts.FacilityBackend[models.Laboratory]
	Spas         contracts.FacilityBackend[models.Spa]
	CareHomes    contracts.FacilityBackend[models.CareHome]
	BlogPosts    contracts.BlogBackend
	Questions    contracts.QuestionBackend
	Cities       contracts.CityBackend
}

type sitemapUsecase struct {
	Sources   Sources
	RedisRepo contracts.RedisRepository
	Locker    contracts.LockerService
	SiteURL   func(path string) string
	MaxPages  int
	Log       *zap.Logger
}

func NewSitemapUsecase(
	sources Sources,
	redisRepo contracts.RedisRepository,
	locker contracts.LockerService,
	siteURL func(path string) string,
	maxPages int,
	logger *zap.Logger,
) contracts.SitemapUsecase {
	if maxPages <= 0 {
		maxPages = defaultMaxPages
	}
	return &sitemapUsecase{
		Sources:   sources,
		RedisRepo: redisRepo,
		Locker:    locker,
		SiteURL:   siteURL,
		MaxPages:  maxPages,
		Log:       logger,
	}
}

// Generate rebuilds sitemap.xml and stores it in redis. When another replica
// holds the lock it returns without doing anything. A failing source aborts
// the run and the previous sitemap stays in place.
func (uc *sitemapUsecase) Generate(ctx context.Context) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("sitemapUsecase.Generate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	acquired, lockValue, err := uc.Locker.TryLock(ctx, constvars.RedisKeySitemapLockName, lockExpiration)
	if err != nil {
		return err
	}
	if !acquired {
		uc.Log.Info("sitemapUsecase.Generate skipped, lock held elsewhere",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil
	}
	defer func() {
		if err := uc.Locker.Unlock(context.WithoutCancel(ctx), constvars.RedisKeySitemapLockName, lockValue); err != nil {
			uc.Log.Warn("sitemapUsecase.Generate error releasing lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}()

	entries, err := uc.collect(ctx)
	if err != nil {
		uc.Log.Error("sitemapUsecase.Generate error collecting URLs",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	document, err := render(entries)
	if err != nil {
		return exceptions.ErrServerProcess(err)
	}

	if err := uc.RedisRepo.SetString(ctx, constvars.RedisKeySitemap, string(document), 0); err != nil {
		uc.Log.Error("sitemapUsecase.Generate error storing sitemap",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	metrics.SitemapURLs.Set(float64(len(entries)))
	metrics.SitemapLastGenerated.SetToCurrentTime()

	uc.Log.Info("sitemapUsecase.Generate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSitemapURLCountKey, len(entries)),
	)
	return nil
}

func (uc *sitemapUsecase) GetSitemap(ctx context.Context) ([]byte, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("sitemapUsecase.GetSitemap called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	document, err := uc.RedisRepo.Get(ctx, constvars.RedisKeySitemap)
	if err != nil {
		return nil, err
	}
	if document == "" {
		return nil, exceptions.ErrSitemapNotReady(nil)
	}
	return []byte(document), nil
}

func (uc *sitemapUsecase) GetRobots() []byte {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("Disallow: " + constvars.PagePathRegistration + "\n")
	b.WriteString("Disallow: /*?pretraga=\n")
	b.WriteString("\n")
	b.WriteString("Sitemap: " + uc.SiteURL(constvars.PagePathSitemap) + "\n")
	return []byte(b.String())
}

func (uc *sitemapUsecase) collect(ctx context.Context) ([]urlEntry, error) {
	entries := uc.staticEntries()

	var (
		doctors, clinics, laboratories, spas []urlEntry
		careHomes, blogPosts, questions      []urlEntry
		cities                               []urlEntry
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		doctors, err = listEntries[models.Doctor](gctx, uc, uc.Sources.Doctors, func(d models.Doctor) (string, string) {
			return directory.ProfilePath(constvars.PagePathDoctor, d.Slug), ""
		})
		return err
	})
	g.Go(func() (err error) {
		clinics, err = listEntries[models.Clinic](gctx, uc, uc.Sources.Clinics, func(c models.Clinic) (string, string) {
			return directory.ProfilePath(constvars.PagePathClinic, c.Slug), ""
		})
		return err
	})
	g.Go(func() (err error) {
		laboratories, err = listEntries[models.Laboratory](gctx, uc, uc.Sources.Laboratories, func(l models.Laboratory) (string, string) {
			return directory.ProfilePath(constvars.PagePathLaboratory, l.Slug), ""
		})
		return err
	})
	g.Go(func() (err error) {
		spas, err = listEntries[models.Spa](gctx, uc, uc.Sources.Spas, func(s models.Spa) (string, string) {
			return directory.ProfilePath(constvars.PagePathSpa, s.Slug), ""
		})
		return err
	})
	g.Go(func() (err error) {
		careHomes, err = listEntries[models.CareHome](gctx, uc, uc.Sources.CareHomes, func(c models.CareHome) (string, string) {
			return directory.ProfilePath(constvars.PagePathCareHome, c.Slug), ""
		})
		return err
	})
	g.Go(func() (err error) {
		blogPosts, err = listEntries[models.BlogPost](gctx, uc, uc.Sources.BlogPosts, func(p models.BlogPost) (string, string) {
			return directory.ProfilePath(constvars.PagePathBlog, p.Slug), dateOnly(p.PublishedAt)
		})
		return err
	})
	g.Go(func() (err error) {
		questions, err = listEntries[models.Question](gctx, uc, uc.Sources.Questions, func(q models.Question) (string, string) {
			return directory.ProfilePath(constvars.PagePathQuestions, q.Slug), dateOnly(q.CreatedAt)
		})
		return err
	})
	g.Go(func() error {
		if uc.Sources.Cities == nil {
			return nil
		}
		all, err := uc.Sources.Cities.ListAll(gctx, uc.MaxPages)
		if err != nil {
			return fmt.Errorf("cities: %w", err)
		}
		for _, city := range all {
			cities = append(cities,
				uc.entry(directory.ProfilePath(constvars.PagePathCity, city.Slug), "", "weekly", "0.6"),
				uc.entry(directory.ProfilePath(constvars.PagePathCareHomes, city.Slug), "", "weekly", "0.5"),
			)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, section := range [][]urlEntry{doctors, clinics, laboratories, spas, careHomes, blogPosts, questions, cities} {
		entries = append(entries, section...)
	}
	return entries, nil
}

func (uc *sitemapUsecase) staticEntries() []urlEntry {
	entries := []urlEntry{uc.entry(constvars.PagePathHome, "", "daily", "1.0")}
	for _, path := range []string{
		constvars.PagePathDoctors,
		constvars.PagePathClinics,
		constvars.PagePathLaboratories,
		constvars.PagePathSpas,
		constvars.PagePathCareHomes,
		constvars.PagePathCities,
		constvars.PagePathBlog,
		constvars.PagePathQuestions,
	} {
		entries = append(entries, uc.entry(path, "", "daily", "0.8"))
	}
	for _, path := range []string{constvars.PagePathCalculatorBMI, constvars.PagePathCalculatorDue} {
		entries = append(entries, uc.entry(path, "", "monthly", "0.4"))
	}
	return entries
}

func (uc *sitemapUsecase) entry(path, lastMod, changeFreq, priority string) urlEntry {
	return urlEntry{
		Loc:        uc.SiteURL(path),
		LastMod:    lastMod,
		ChangeFreq: changeFreq,
		Priority:   priority,
	}
}

// listEntries pages through backend and maps every item to a profile entry.
// A nil backend contributes nothing.
func listEntries[T any](ctx context.Context, uc *sitemapUsecase, backend contracts.ResourceBackend[T], pathOf func(T) (string, string)) ([]urlEntry, error) {
	if backend == nil {
		return nil, nil
	}
	items, err := backend.ListAll(ctx, uc.MaxPages)
	if err != nil {
		return nil, err
	}
	entries := make([]urlEntry, 0, len(items))
	for _, item := range items {
		path, lastMod := pathOf(item)
		entries = append(entries, uc.entry(path, lastMod, "weekly", "0.7"))
	}
	return entries, nil
}

func render(entries []urlEntry) ([]byte, error) {
	body, err := xml.MarshalIndent(urlSet{XMLNS: sitemapNamespace, URLs: entries}, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}

// dateOnly keeps the YYYY-MM-DD prefix of an RFC 3339 timestamp.
func dateOnly(timestamp string) string {
	if len(timestamp) < len("2006-01-02") {
		return ""
	}
	return timestamp[:len("2006-01-02")]
}
