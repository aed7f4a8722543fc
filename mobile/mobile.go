package mobile

import (
	"log"
	"net/http"

	httpserver "janggi/internal/server/http"
)

// StartServer starts the local HTTP server.
// webDir: physical path to the extracted web assets
// port: port to listen on, e.g. "2889"
func StartServer(webDir string, port string) {
	mux := http.NewServeMux()
	mux.Handle("/api/", httpserver.NewServer())
	mux.Handle("/", http.FileServer(http.Dir(webDir)))

	// Run in background so it doesn't block the app UI thread
	go func() {
		if err := http.ListenAndServe("127.0.0.1:"+port, mux); err != nil {
			log.Printf("Server Error: %v", err)
		}
	}()
}
