package handler

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Astemirdum/isbndb-service/isbndb/internal/errs"
	"github.com/Astemirdum/isbndb-service/isbndb/internal/model"
	"github.com/Astemirdum/isbndb-service/pkg/circuit_breaker"
	"github.com/Astemirdum/isbndb-service/pkg/isbndb"
	"github.com/Astemirdum/isbndb-service/pkg/kafka"
	md "github.com/Astemirdum/isbndb-service/pkg/middleware"
	"github.com/Astemirdum/isbndb-service/pkg/validate"
	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	defaultLimit = 20
	maxLimit     = 100
	batchWorkers = 8
)

type Handler struct {
	isbndbSvc ISBNdbService
	enqueuer  Enqueuer
	topic     string
	log       *zap.Logger
}

func New(svc ISBNdbService, log *zap.Logger, producer sarama.AsyncProducer, topic string) *Handler {
	if topic == "" {
		topic = kafka.LookupTopic
	}
	log = log.Named("handler")
	return &Handler{
		isbndbSvc: svc,
		enqueuer:  NewEnqueuer(producer, log),
		topic:     topic,
		log:       log,
	}
}

type resource struct {
	kind   isbndb.Kind
	find   func(ctx context.Context, id string) (*isbndb.Resource, error)
	search func(ctx context.Context, args isbndb.Args) (*isbndb.Iterator, error)
}

func (h *Handler) resources() []resource {
	return []resource{
		{isbndb.Authors, h.isbndbSvc.FindAuthor, h.isbndbSvc.SearchAuthors},
		{isbndb.Books, h.isbndbSvc.FindBook, h.isbndbSvc.SearchBooks},
		{isbndb.Categories, h.isbndbSvc.FindCategory, h.isbndbSvc.SearchCategories},
		{isbndb.Publishers, h.isbndbSvc.FindPublisher, h.isbndbSvc.SearchPublishers},
		{isbndb.Subjects, h.isbndbSvc.FindSubject, h.isbndbSvc.SearchSubjects},
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPost},
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)
	for _, r := range h.resources() {
		path := "/" + r.kind.Plural()
		api.GET(path, h.search(r))
		api.GET(path+"/:id", h.find(r))
		api.POST(path+"/batch", h.batchFind(r))
	}

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) find(r resource) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := pathID(c)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		res, err := r.find(c.Request().Context(), id)
		h.publish(kafka.LookupEvent{
			Operation: kafka.OperationFind,
			Kind:      string(r.kind),
			Term:      id,
			Found:     found(res),
		}, err)
		if err != nil {
			return httpError(err)
		}
		if res == nil {
			return echo.NewHTTPError(http.StatusNotFound, errs.ErrNotFound.Error())
		}
		return c.JSON(http.StatusOK, res)
	}
}

// pathID returns the decoded :id segment. echo routes on URL.RawPath when
// the request carries escapes such as %2F, leaving the param still encoded.
func pathID(c echo.Context) (string, error) {
	id := c.Param("id")
	if c.Request().URL.RawPath != "" {
		decoded, err := url.PathUnescape(id)
		if err != nil {
			return "", errs.ErrInvalidID
		}
		id = decoded
	}
	if id == "" {
		return "", errs.ErrEmptyID
	}
	return id, nil
}

// search maps query parameters onto search args one to one. A repeated
// key is rejected rather than silently truncated.
func (h *Handler) search(r resource) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		limit := defaultLimit
		args := isbndb.Args{}
		for k, v := range c.QueryParams() {
			if len(v) == 0 {
				continue
			}
			if len(v) > 1 {
				return echo.NewHTTPError(http.StatusBadRequest, errors.Wrap(errs.ErrRepeatedParam, k).Error())
			}
			if k == "limit" {
				n, err := strconv.Atoi(v[0])
				if err != nil || n <= 0 || n > maxLimit {
					return echo.NewHTTPError(http.StatusBadRequest, errs.ErrLimit.Error())
				}
				limit = n
				continue
			}
			args[k] = v[0]
		}

		resp, err := drain(ctx, r, args, limit)
		h.publish(kafka.LookupEvent{
			Operation: kafka.OperationSearch,
			Kind:      string(r.kind),
			Args:      args,
			Found:     len(resp.Items),
		}, err)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(http.StatusOK, resp)
	}
}

func drain(ctx context.Context, r resource, args isbndb.Args, limit int) (model.SearchResponse, error) {
	resp := model.SearchResponse{Items: make([]isbndb.Resource, 0, limit)}
	it, err := r.search(ctx, args)
	if err != nil {
		return resp, err
	}
	if it == nil {
		return resp, nil
	}
	for len(resp.Items) < limit && it.Next(ctx) {
		resp.Items = append(resp.Items, *it.Resource())
	}
	if err := it.Err(); err != nil {
		return model.SearchResponse{Items: []isbndb.Resource{}}, err
	}
	resp.Total = it.Total()
	if resp.Total < len(resp.Items) {
		resp.Total = len(resp.Items)
	}
	return resp, nil
}

func (h *Handler) batchFind(r resource) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req model.BatchFindRequest
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		if err := c.Validate(req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}

		results := make([]*isbndb.Resource, len(req.IDs))
		gg, ctx := errgroup.WithContext(c.Request().Context())
		gg.SetLimit(batchWorkers)
		for i, id := range req.IDs {
			i, id := i, id
			gg.Go(func() error {
				res, err := r.find(ctx, id)
				if err != nil {
					return err
				}
				results[i] = res
				return nil
			})
		}
		err := gg.Wait()

		resp := model.BatchFindResponse{
			Items:   make([]isbndb.Resource, 0, len(req.IDs)),
			Missing: make([]string, 0),
		}
		for i, res := range results {
			if res == nil {
				resp.Missing = append(resp.Missing, req.IDs[i])
				continue
			}
			resp.Items = append(resp.Items, *res)
		}
		h.publish(kafka.LookupEvent{
			Operation: kafka.OperationBatch,
			Kind:      string(r.kind),
			Args:      map[string]string{"ids": strconv.Itoa(len(req.IDs))},
			Found:     len(resp.Items),
		}, err)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(http.StatusOK, resp)
	}
}

func (h *Handler) publish(event kafka.LookupEvent, err error) {
	event.ID = uuid.NewString()
	event.Timestamp = time.Now().UTC()
	if err != nil {
		event.Error = err.Error()
	}
	if err := h.enqueuer.Enqueue(h.topic, event); err != nil {
		h.log.Warn("lookup event h.enqueuer.Enqueue()", zap.Error(err))
	}
}

func found(res *isbndb.Resource) int {
	if res == nil {
		return 0
	}
	return 1
}

func httpError(err error) *echo.HTTPError {
	var apiErr *isbndb.APIError
	switch {
	case errors.Is(err, isbndb.ErrReservedArg):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, isbndb.ErrNoAccessKey), errors.Is(err, circuit_breaker.ErrOpen):
		return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	case errors.As(err, &apiErr):
		if apiErr.StatusCode == http.StatusTooManyRequests {
			return echo.NewHTTPError(http.StatusTooManyRequests, err.Error())
		}
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
