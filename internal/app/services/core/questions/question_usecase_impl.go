package questions

import (
	"bhzdravlje-service/internal/app/contracts"
	"bhzdravlje-service/internal/app/models"
	"bhzdravlje-service/internal/app/services/core/directory"
	"bhzdravlje-service/internal/pkg/constvars"
	"bhzdravlje-service/internal/pkg/dto/requests"
	"bhzdravlje-service/internal/pkg/dto/responses"
	"bhzdravlje-service/internal/pkg/exceptions"
	"bhzdravlje-service/internal/pkg/listing"
	"bhzdravlje-service/internal/pkg/seo"
	"bhzdravlje-service/internal/pkg/utils"
	"context"

	"go.uber.org/zap"
)

const (
	listingTitle       = "Pitajte doktora"
	listingDescription = "Postavite pitanje doktoru i pročitajte odgovore specijalista na pitanja pacijenata."
	listingLabel       = "Pitanja"
	questionTemplate   = "question_received"
	questionSubject    = "Zaprimili smo vaše pitanje"
)

type questionUsecase struct {
	QuestionBackend contracts.QuestionBackend
	Mailer          contracts.MailerService
	Cache           directory.Cache
	SEO             *seo.Builder
	Log             *zap.Logger
	listCfg         directory.ListingConfig[models.Question]
}

func NewQuestionUsecase(
	questionBackend contracts.QuestionBackend,
	mailer contracts.MailerService,
	cache directory.Cache,
	seoBuilder *seo.Builder,
	logger *zap.Logger,
) contracts.QuestionUsecase {
	return &questionUsecase{
		QuestionBackend: questionBackend,
		Mailer:          mailer,
		Cache:           cache,
		SEO:             seoBuilder,
		Log:             logger,
		listCfg: directory.ListingConfig[models.Question]{
			Route:       listing.Route{BasePath: constvars.PagePathQuestions},
			Title:       listingTitle,
			Description: listingDescription,
			Label:       listingLabel,
			TextOf:      models.Question.SearchText,
			NameOf: func(q models.Question) string {
				return q.Title
			},
			PathOf: func(q models.Question) string {
				return directory.ProfilePath(constvars.PagePathQuestions, q.Slug)
			},
		},
	}
}

func (uc *questionUsecase) GetListing(ctx context.Context, query listing.Query) (*responses.PageModel, error) {
	requestID := utils.GetRequestID(ctx)

	page, err := directory.FetchPage[models.Question](ctx, uc.Cache, uc.QuestionBackend, constvars.EntityTypeQuestion, query.BackendParams())
	if err != nil {
		uc.Log.Error("questionUsecase.GetListing error fetching questions",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return directory.BuildListingPage(uc.SEO, uc.listCfg, query, page), nil
}

func (uc *questionUsecase) GetProfile(ctx context.Context, slug string) (*responses.PageModel, error) {
	requestID := utils.GetRequestID(ctx)
	path := directory.ProfilePath(constvars.PagePathQuestions, slug)

	if err := utils.ValidateSlug(slug); err != nil {
		return uc.notFound(path), nil
	}

	question, err := directory.FetchItem[models.Question](ctx, uc.Cache, uc.QuestionBackend, constvars.EntityTypeQuestion, slug)
	if err != nil {
		if exceptions.IsNotFound(err) {
			return uc.notFound(path), nil
		}
		uc.Log.Error("questionUsecase.GetProfile error fetching question",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSlugKey, slug),
			zap.Error(err),
		)
		return nil, err
	}

	answers := make([]seo.QAAnswer, 0, len(question.Answers))
	for _, answer := range question.Answers {
		author := ""
		if answer.Doctor != nil {
			author = answer.Doctor.Name
		}
		answers = append(answers, seo.QAAnswer{
			Text:        answer.Content,
			DateCreated: answer.CreatedAt,
			AuthorName:  author,
		})
	}

	metadata := uc.SEO.Page(question.Title, question.Content, path).
		WithJSONLD(uc.SEO.QAPage(seo.QA{
			Name:        question.Title,
			Text:        question.Content,
			Path:        path,
			DateCreated: question.CreatedAt,
			AuthorName:  question.AskedBy,
			Answers:     answers,
		})).
		WithBreadcrumbs(uc.SEO,
			seo.Breadcrumb{Name: directory.HomeLabel, Path: constvars.PagePathHome},
			seo.Breadcrumb{Name: listingLabel, Path: constvars.PagePathQuestions},
			seo.Breadcrumb{Name: question.Title, Path: path},
		)
	// Unanswered questions are thin content.
	if len(question.Answers) == 0 {
		metadata.NoIndex()
	}

	return &responses.PageModel{
		Data: responses.QuestionPage{
			Question: *question,
			Extras:   directory.Extras(uc.SEO, path, question.Title, nil, ""),
		},
		SEO: metadata,
	}, nil
}

// AskQuestion validates a new question and forwards it to the backend.
func (uc *questionUsecase) AskQuestion(ctx context.Context, request *requests.CreateQuestion) (*models.Question, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("questionUsecase.AskQuestion called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	utils.TrimStringFields(request)
	request.Email = utils.SanitizeEmail(request.Email)
	if err := utils.ValidateStruct(request); err != nil {
		uc.Log.Info("questionUsecase.AskQuestion invalid input",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInputValidation(err)
	}

	question, err := uc.QuestionBackend.Create(ctx, request)
	if err != nil {
		uc.Log.Error("questionUsecase.AskQuestion error creating question",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	utils.LogBusinessEvent(ctx, uc.Log, "question_asked",
		zap.String(constvars.LoggingSlugKey, question.Slug),
	)
	uc.notify(ctx, request, question)
	return question, nil
}

// notify confirms the question by email when the asker left an address.
// Failures are logged only.
func (uc *questionUsecase) notify(ctx context.Context, request *requests.CreateQuestion, question *models.Question) {
	if uc.Mailer == nil || request.Email == "" {
		return
	}

	err := uc.Mailer.SendEmail(ctx, &requests.EmailPayload{
		To:       []string{request.Email},
		Subject:  questionSubject,
		Template: questionTemplate,
		Data: map[string]interface{}{
			"title": request.Title,
			"url":   uc.SEO.AbsoluteURL(directory.ProfilePath(constvars.PagePathQuestions, question.Slug)),
		},
	})
	if err != nil {
		uc.Log.Warn("questionUsecase.notify error publishing notification",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
	}
}

func (uc *questionUsecase) notFound(path string) *responses.PageModel {
	return directory.NotFoundPage(uc.SEO, path, constvars.ErrClientQuestionNotFound, constvars.PagePathQuestions, listingLabel)
}
