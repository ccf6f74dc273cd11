package http

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
	"github.com/sirupsen/logrus"

	appgraphql "critterbook/internal/graphql"
)

// sessionCookieName is the credential the transport exchanges with
// browsers. Everything below this layer sees only the opaque token string.
const sessionCookieName = "sessionToken"

// Handler wires HTTP routes to the GraphQL executor and owns all cookie
// plumbing: it extracts the inbound session token into the request context
// and applies the set-credential instruction emitted by login/register.
type Handler struct {
	schema     graphql.Schema
	logger     logrus.FieldLogger
	production bool
}

func NewHandler(schema graphql.Schema, logger logrus.FieldLogger, production bool) *Handler {
	return &Handler{
		schema:     schema,
		logger:     logger,
		production: production,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())
	router.Use(requestLogger(h.logger))

	api := router.Group("/api")
	{
		api.POST("/graphql", h.graphql)
		api.GET("/graphql", h.graphql)
		api.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"ok": "ok"})
		})
	}
}

type graphqlRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func (h *Handler) graphql(c *gin.Context) {
	req, ok := h.parseRequest(c)
	if !ok {
		return
	}

	ctx := appgraphql.WithRequestCache(c.Request.Context())

	if token, err := c.Cookie(sessionCookieName); err == nil && token != "" {
		ctx = appgraphql.WithSessionToken(ctx, token)
	}

	recorder := &appgraphql.CredentialRecorder{}
	ctx = appgraphql.WithCredentialRecorder(ctx, recorder)

	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		OperationName:  req.OperationName,
		VariableValues: req.Variables,
		Context:        ctx,
	})

	if cred := recorder.Credential; cred != nil {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(sessionCookieName, cred.Token, cred.MaxAge, "/", "", h.production, true)
	}

	// Resolver failures ride inside the result body; the HTTP status stays
	// 200 like any GraphQL transport.
	c.JSON(http.StatusOK, result)
}

func (h *Handler) parseRequest(c *gin.Context) (graphqlRequest, bool) {
	var req graphqlRequest

	if c.Request.Method == http.MethodGet {
		req.Query = c.Query("query")
		req.OperationName = c.Query("operationName")
		if raw := c.Query("variables"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &req.Variables); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid variables"})
				return graphqlRequest{}, false
			}
		}
	} else if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return graphqlRequest{}, false
	}

	if req.Query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return graphqlRequest{}, false
	}
	return req, true
}
