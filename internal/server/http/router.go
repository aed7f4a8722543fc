package httpserver

import "net/http"

// Server 是 Handler 外面的薄封装，给只想拿一个 http.Handler 的调用方用
type Server struct {
	h http.Handler
}

func NewServer() *Server {
	return &Server{h: NewHandler()}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.h.ServeHTTP(w, r)
}
