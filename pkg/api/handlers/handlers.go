package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	useragent "github.com/mileusna/useragent"

	"github.com/guidewire/core-auth-examples/pkg/client"
	"github.com/guidewire/core-auth-examples/pkg/utils"
)

// DemoState is the opaque state sent with every authorize request.
const DemoState = "demo-state"

// RequestIDKey is where the request ID middleware stores the ID on the gin context.
const RequestIDKey = "requestID"

// CoreAuth is the part of the CORE_AUTH client the demo server needs.
type CoreAuth interface {
	AuthenticateURL(p client.AuthorizeParams) (string, error)
	Verify(ctx context.Context, token string) (*client.Response, error)
	BaseURL() string
}

type Handler struct {
	coreAuth    CoreAuth
	callbackURL string
	postbackURL string
	log         utils.Logger
}

type CallbackResponse struct {
	Via          string          `json:"via"`
	State        *string         `json:"state"`
	Verification client.Document `json:"verification"`
}

type PostbackRequest struct {
	Token string `json:"token"`
	State string `json:"state"`
}

// NewHandler wires the demo routes. publicURL is where the browser and
// CORE_AUTH reach this server, e.g. http://localhost:5000.
func NewHandler(coreAuth CoreAuth, publicURL string, log utils.Logger) *Handler {
	base := strings.TrimRight(publicURL, "/")
	return &Handler{
		coreAuth:    coreAuth,
		callbackURL: base + "/callback",
		postbackURL: base + "/postback",
		log:         log,
	}
}

func (h *Handler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"baseURL":     h.coreAuth.BaseURL(),
		"callbackURL": h.callbackURL,
		"postbackURL": h.postbackURL,
	})
}

func (h *Handler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// Login sends the browser to the CORE_AUTH authorize page.
func (h *Handler) Login(c *gin.Context) {
	ua := useragent.Parse(c.Request.UserAgent())
	h.log.InfoFields("login requested", utils.Fields{
		"request_id": c.GetString(RequestIDKey),
		"browser":    ua.Name,
		"os":         ua.OS,
	})

	authURL, err := h.coreAuth.AuthenticateURL(client.AuthorizeParams{
		RedirectURL: h.callbackURL,
		PostbackURL: h.postbackURL,
		State:       DemoState,
	})
	if err != nil {
		h.fail(c, "building authenticate url", err)
		return
	}

	c.Redirect(http.StatusFound, authURL)
}

// Callback receives the token through the browser redirect and answers with
// the verification result.
func (h *Handler) Callback(c *gin.Context) {
	token := c.Query("token")
	state, hasState := c.GetQuery("state")

	if token == "" {
		c.String(http.StatusBadRequest, "token missing")
		return
	}

	res, err := h.coreAuth.Verify(h.requestContext(c), token)
	if err != nil {
		h.fail(c, "callback verification", err)
		return
	}

	resp := CallbackResponse{Via: "callback", Verification: res.Body}
	if hasState {
		resp.State = &state
	}
	c.JSON(http.StatusOK, resp)
}

// Postback receives the token server-to-server. The verification result is
// only logged.
func (h *Handler) Postback(c *gin.Context) {
	var req PostbackRequest
	// a missing or malformed body counts as an empty one
	_ = c.ShouldBindJSON(&req)

	h.log.InfoFields("postback received", utils.Fields{
		"request_id": c.GetString(RequestIDKey),
		"state":      req.State,
	})

	if req.Token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "token missing"})
		return
	}

	res, err := h.coreAuth.Verify(h.requestContext(c), req.Token)
	if err != nil {
		h.fail(c, "postback verification", err)
		return
	}

	h.log.InfoFields("verification result (postback)", utils.Fields{
		"request_id":   c.GetString(RequestIDKey),
		"status":       res.StatusCode,
		"verification": res.Body,
	})
	c.Status(http.StatusNoContent)
}

func (h *Handler) requestContext(c *gin.Context) context.Context {
	return client.WithRequestID(c.Request.Context(), c.GetString(RequestIDKey))
}

func (h *Handler) fail(c *gin.Context, msg string, err error) {
	h.log.Error(msg, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
