package web

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/perillat/noteshare/log"
)

type contextKey int

const paramsKey contextKey = iota

// ParamsFromContext returns the route parameters stored by
// RegisterHandler.
func ParamsFromContext(ctx context.Context) (map[string]string, bool) {
	params, ok := ctx.Value(paramsKey).(map[string]string)
	return params, ok
}

// Server adapts a gin engine to the RegisterHandler interface the
// feature packages register their routes on. Route parameters are
// copied into the request context for the go-kit decoders, see
// ParamsFromContext.
type Server struct {
	engine *gin.Engine
	logger log.Logger
}

func NewServer(logger log.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Printf("%s %s -> %d (%v)", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	})

	// CORS
	engine.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, PUT, POST, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Accept-Language, Authorization, Content-Type")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusOK)
		}
		c.Next()
	})

	// Unknown route
	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Page not found"})
	})

	// Ping
	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, map[string]string{"data": "ok"})
	})

	return &Server{
		engine: engine,
		logger: logger,
	}
}

func (s *Server) RegisterHandler(path, method string, handler http.Handler) {
	s.engine.Handle(method, path, func(c *gin.Context) {
		params := make(map[string]string)
		for _, p := range c.Params {
			params[p.Key] = p.Value
		}

		ctx := context.WithValue(c.Request.Context(), paramsKey, params)
		handler.ServeHTTP(c.Writer, c.Request.WithContext(ctx))
	})
}

// Handler exposes the underlying engine, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) Start(addr string) error {
	s.logger.Print("server started, listening on ", addr)
	return http.ListenAndServe(addr, s.engine)
}
