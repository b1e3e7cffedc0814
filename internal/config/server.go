package config

import (
	"fmt"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
)

type Route struct {
	Path    string
	Method  string
	Handler http.HandlerFunc
}

// Server defines the server struct
type Server struct {
	router         *mux.Router
	allowedOrigins []string
}

type ServerConfigOption func(server *Server)

// WithAllowedOrigins restricts the origins accepted by CORS.
func WithAllowedOrigins(origins []string) ServerConfigOption {
	return func(s *Server) {
		if len(origins) > 0 {
			s.allowedOrigins = origins
		}
	}
}

//NewServer creates a new server
func NewServer(options ...ServerConfigOption) *Server {
	s := &Server{
		router:         mux.NewRouter().StrictSlash(true),
		allowedOrigins: []string{"*"},
	}

	for _, opt := range options {
		opt(s)
	}

	return s
}

func (s *Server) WithRoutes(basePath string, routes ...Route) *Server {
	sub := s.router.PathPrefix(basePath).Subrouter()
	for _, route := range routes {
		sub.HandleFunc(route.Path, route.Handler).Methods(route.Method)
		log.WithFields(map[string]interface{}{
			"method": route.Method,
			"path":   fmt.Sprintf("%s%s", basePath, route.Path),
		}).Infof("registered path")
	}
	return s
}

// Handler returns the router wrapped with CORS, access logging and panic recovery.
func (s *Server) Handler() http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   s.allowedOrigins,
		AllowedHeaders:   []string{"Access-Control-Allow-Origin", "Content-Type", "Origin", "Accept-Encoding", "Accept-Language", "Authorization"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowCredentials: true,
	})
	handler := handlers.CombinedLoggingHandler(log.StandardLogger().Writer(), c.Handler(s.router))
	return handlers.RecoveryHandler(handlers.RecoveryLogger(log.StandardLogger()))(handler)
}

//Start the server on the defined port
func (s *Server) Start(addr string, port int) {
	log.Infof("listening on %s:%v", addr, port)
	panic(
		http.ListenAndServe(
			fmt.Sprintf("%s:%v", addr, port),
			s.Handler()),
	)
}
