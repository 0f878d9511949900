package httpapi

import (
	"expvar"
	"net/http"

	"github.com/go-chi/cors"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/example/storefront-service/internal/usecase"
)

type Server struct {
	Router         *mux.Router
	SubmitQuote    usecase.SubmitQuote
	Recommend      usecase.Recommend
	GetProduct     usecase.GetProductBySlug
	ListCategories usecase.ListCategories
	Log            logrus.FieldLogger
	AllowedOrigins []string
}

func NewServer(s *Server) *Server {
	if s.Log == nil {
		s.Log = logrus.StandardLogger()
	}
	s.Router = mux.NewRouter()
	api := s.Router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/quotes", requireJSON(s.handleSubmitQuote)).Methods(http.MethodPost)
	api.HandleFunc("/recommendations", requireJSON(s.handleRecommendations)).Methods(http.MethodPost)
	api.HandleFunc("/products/{slug}", s.handleProduct).Methods(http.MethodGet)
	api.HandleFunc("/categories", s.handleCategories).Methods(http.MethodGet)

	s.Router.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)
	s.Router.Handle("/debug/vars", expvar.Handler()).Methods(http.MethodGet)
	return s
}

// Handler wraps the router with CORS, request ids and access logging.
func (s *Server) Handler() http.Handler {
	var h http.Handler = s.Router
	if len(s.AllowedOrigins) > 0 {
		h = cors.Handler(cors.Options{
			AllowedOrigins:   s.AllowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders:   []string{"Content-Type", "X-Request-Id"},
			ExposedHeaders:   []string{"X-Request-Id"},
			AllowCredentials: true,
			MaxAge:           300,
		})(h)
	}
	return withRequestID(withLogging(s.Log)(h))
}
