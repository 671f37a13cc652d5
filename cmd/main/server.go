package main

import (
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"

	"hellopage/pkg/page"
)

// welcomeMessage is the fixed text shown on the index page. It is a trusted
// literal; page.Render applies no HTML escaping to it.
const welcomeMessage = "Hello CGI!!! Welcome to the world of DevOps :)"

// Server owns the route table and dependencies for the web application.
type Server struct {
	config *Config
	logger *slog.Logger
	mux    *http.ServeMux
}

// NewServer creates the server object and registers its routes on a fresh mux.
func NewServer(config *Config, logger *slog.Logger) *Server {
	server := &Server{
		config: config,
		logger: logger,
		mux:    http.NewServeMux(),
	}

	server.mux.HandleFunc("/", server.handleIndex)

	return server
}

// handleIndex serves the welcome page on the root path. Everything else falls
// back to the standard not-found and method-not-allowed responses.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	// The "/" pattern matches every path, so keep non-root requests out of the handler.
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	s.logger.Info("Serving welcome page", "remote_addr", getClientIP(r), "user_agent", r.UserAgent())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = io.WriteString(w, page.Render(welcomeMessage))
}

func getClientIP(r *http.Request) string {

	// The X-Real-Ip header contains the forwarded IP in some cases (like from nginx)
	realIP := r.Header.Get("X-Real-Ip")
	if realIP != "" {
		return realIP
	}

	// The X-Forwarded-For header can contain a comma-separated list of IPs.
	// The first IP in the list is the original client IP.
	forwardedFor := r.Header.Get("X-Forwarded-For")
	if forwardedFor != "" {
		ips := strings.Split(forwardedFor, ",")
		return strings.TrimSpace(ips[0])
	}

	// No proxy headers, so fall back to the remote address.
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// If splitting fails (e.g., no port), return the address as is.
		return r.RemoteAddr
	}
	return ip
}
