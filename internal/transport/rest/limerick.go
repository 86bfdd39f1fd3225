package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/inspoet/internal/domain"
	"github.com/heartmarshall/inspoet/internal/service/limerick"
)

// emptyHistoryMessage is returned by GET /show_saved before anything was saved.
const emptyHistoryMessage = "Save some poems!!!"

const maxBodyBytes = 1 << 16

// limerickService defines the minimal interface needed by LimerickHandler.
type limerickService interface {
	Generate(ctx context.Context, input limerick.GenerateInput) (*limerick.GenerateResult, error)
	History(ctx context.Context) ([]domain.HistoryRecord, error)
	Authors(ctx context.Context) ([]string, error)
	Themes(ctx context.Context, author string) ([]limerick.PoemThemes, error)
}

// LimerickHandler serves the generation endpoints.
type LimerickHandler struct {
	svc      limerickService
	validate *validator.Validate
	log      *slog.Logger
}

// NewLimerickHandler creates a LimerickHandler.
func NewLimerickHandler(svc limerickService, logger *slog.Logger) *LimerickHandler {
	return &LimerickHandler{
		svc:      svc,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		log:      logger.With("handler", "limerick"),
	}
}

type generateRequest struct {
	Author     string `json:"author"     validate:"max=200"`
	Candidates int    `json:"candidates" validate:"gte=0,lte=50"`
}

type candidateResponse struct {
	Title          string   `json:"title"`
	Lines          []string `json:"lines"`
	GrammarScore   int      `json:"grammar_score"`
	SentimentScore float64  `json:"sentiment_score"`
	CompositeScore float64  `json:"composite_score"`
}

type generateResponse struct {
	ID             string              `json:"id"`
	Author         string              `json:"author"`
	Title          string              `json:"title"`
	Lines          []string            `json:"lines"`
	GrammarScore   int                 `json:"grammar_score"`
	SentimentScore float64             `json:"sentiment_score"`
	CompositeScore float64             `json:"composite_score"`
	CreatedAt      time.Time           `json:"created_at"`
	AuthorFallback bool                `json:"author_fallback"`
	Candidates     []candidateResponse `json:"candidates"`
}

// Generate handles POST /generate_limerick. An empty body asks for a random
// author with the default batch size.
func (h *LimerickHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		handleError(w, r, h.log, toValidationError(err))
		return
	}

	result, err := h.svc.Generate(r.Context(), limerick.GenerateInput{
		Author:     req.Author,
		Candidates: req.Candidates,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toGenerateResponse(result))
}

// ShowSaved handles GET /show_saved.
func (h *LimerickHandler) ShowSaved(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.History(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if len(records) == 0 {
		writeError(w, http.StatusNotFound, emptyHistoryMessage)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// Authors handles GET /authors.
func (h *LimerickHandler) Authors(w http.ResponseWriter, r *http.Request) {
	authors, err := h.svc.Authors(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if authors == nil {
		authors = []string{}
	}
	writeJSON(w, http.StatusOK, authors)
}

// Themes handles GET /authors/{author}/themes.
func (h *LimerickHandler) Themes(w http.ResponseWriter, r *http.Request) {
	themes, err := h.svc.Themes(r.Context(), chi.URLParam(r, "author"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, themes)
}

func toGenerateResponse(res *limerick.GenerateResult) generateResponse {
	rec := res.Record
	out := generateResponse{
		ID:             rec.ID.String(),
		Author:         rec.Author,
		Title:          rec.Title,
		Lines:          rec.Lines,
		GrammarScore:   rec.GrammarScore,
		SentimentScore: rec.SentimentScore,
		CompositeScore: res.Composite,
		CreatedAt:      rec.CreatedAt,
		AuthorFallback: res.AuthorFallback,
		Candidates:     make([]candidateResponse, 0, len(res.Candidates)),
	}
	for _, c := range res.Candidates {
		out.Candidates = append(out.Candidates, candidateResponse{
			Title:          c.Poem.Title,
			Lines:          c.Poem.Lines,
			GrammarScore:   c.Poem.GrammarErrors,
			SentimentScore: c.Poem.Sentiment,
			CompositeScore: c.Score,
		})
	}
	return out
}

func toValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, domain.FieldError{
			Field:   strings.ToLower(fe.Field()),
			Message: describeTag(fe),
		})
	}
	return domain.NewValidationErrors(fields)
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "max":
		return "max " + fe.Param() + " characters"
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	default:
		return "failed " + fe.Tag()
	}
}
