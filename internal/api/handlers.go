package api

import (
	"context"
	"errors"
	"net/http"

	"aetherium_ai_server/internal/ai"
	"aetherium_ai_server/internal/site"
	"aetherium_ai_server/internal/types"
	"aetherium_ai_server/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Flows is the set of marketing flows served over HTTP. *ai.Generator implements it.
type Flows interface {
	GenerateArticleFromBrief(ctx context.Context, in types.ArticleBriefInput) (*types.ArticleOutput, error)
	OptimizeContentForSEO(ctx context.Context, in types.SEOInput) (*types.SEOOutput, error)
	GenerateVideoScript(ctx context.Context, in types.VideoScriptInput) (*types.VideoScriptOutput, error)
	GenerateBusinessName(ctx context.Context, in types.BusinessNameInput) (*types.BusinessNameOutput, error)
	GenerateAIPersona(ctx context.Context, in types.PersonaInput) (*types.PersonaOutput, error)
	GenerateProductDescription(ctx context.Context, in types.ProductDescriptionInput) (*types.ProductDescriptionOutput, error)
	GenerateImageFromTextPrompt(ctx context.Context, in types.ImageInput) (*types.ImageOutput, error)
}

var _ Flows = (*ai.Generator)(nil)

// APIHandler holds dependencies for API endpoints.
type APIHandler struct {
	flows  Flows
	logger *zap.Logger
}

// NewAPIHandler initializes a new API handler with its dependencies.
func NewAPIHandler(flows Flows, logger *zap.Logger) *APIHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &APIHandler{flows: flows, logger: logger}
}

// ErrorResponse is the body of every non-2xx flow response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message,omitempty"`
}

// --- Flow Handlers ---

// POST /api/flows/blog-article
func (h *APIHandler) GenerateArticle(c *gin.Context) {
	serveFlow(h, c, "generate the article", h.flows.GenerateArticleFromBrief)
}

// POST /api/flows/seo-optimize
func (h *APIHandler) OptimizeSEO(c *gin.Context) {
	serveFlow(h, c, "optimize content", h.flows.OptimizeContentForSEO)
}

// POST /api/flows/video-script
func (h *APIHandler) GenerateVideoScript(c *gin.Context) {
	serveFlow(h, c, "generate video script", h.flows.GenerateVideoScript)
}

// POST /api/flows/business-names
func (h *APIHandler) GenerateBusinessNames(c *gin.Context) {
	serveFlow(h, c, "generate business names", h.flows.GenerateBusinessName)
}

// POST /api/flows/persona
func (h *APIHandler) GeneratePersona(c *gin.Context) {
	serveFlow(h, c, "generate AI persona", h.flows.GenerateAIPersona)
}

// POST /api/flows/product-description
func (h *APIHandler) GenerateProductDescription(c *gin.Context) {
	serveFlow(h, c, "generate the product description", h.flows.GenerateProductDescription)
}

// POST /api/flows/image
func (h *APIHandler) GenerateImage(c *gin.Context) {
	serveFlow(h, c, "generate image", h.flows.GenerateImageFromTextPrompt)
}

// serveFlow binds the request body (JSON or form) into In, runs the flow and
// writes either the output record or an ErrorResponse.
func serveFlow[In any, Out any](h *APIHandler, c *gin.Context, action string, run func(context.Context, In) (*Out, error)) {
	var req In
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	out, err := run(c.Request.Context(), req)
	if err != nil {
		status, body := h.errorResponse(action, err)
		_ = c.Error(err)
		c.JSON(status, body)
		return
	}
	c.JSON(http.StatusOK, out)
}

// errorResponse maps a flow error to a status and a user-facing notice. Model
// and transport details stay in the logs.
func (h *APIHandler) errorResponse(action string, err error) (int, ErrorResponse) {
	var verr *ai.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid input: " + verr.Field + " " + verr.Message,
			Field:   verr.Field,
			Message: verr.Message,
		}
	case errors.Is(err, ai.ErrValidation):
		return http.StatusBadRequest, ErrorResponse{Error: "Invalid input."}
	case errors.Is(err, context.Canceled):
		// client went away; nobody reads this body
		return 499, ErrorResponse{Error: "Request cancelled."}
	case errors.Is(err, ai.ErrNoImage):
		return http.StatusBadGateway, ErrorResponse{Error: "No image was generated. Please try a different prompt."}
	case errors.Is(err, ai.ErrGeneration):
		status := http.StatusBadGateway
		if utils.IsUpstreamUnavailable(err) {
			status = http.StatusServiceUnavailable
		}
		return status, ErrorResponse{Error: "Failed to " + action + ". Please try again."}
	default:
		h.logger.Error("Unexpected flow error", zap.String("action", action), zap.Error(err))
		return http.StatusInternalServerError, ErrorResponse{Error: "Internal server error. Please try again."}
	}
}

// --- Site Handlers ---

// GET /api/tools
func (h *APIHandler) ListTools(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tools": site.Tools()})
}

// GET /api/site
func (h *APIHandler) GetLanding(c *gin.Context) {
	c.JSON(http.StatusOK, site.LandingContent())
}

// GET|HEAD /health
func (h *APIHandler) Health(c *gin.Context) {
	if c.Request.Method == http.MethodHead {
		c.Status(http.StatusOK)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
