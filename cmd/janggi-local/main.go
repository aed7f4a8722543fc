package main

import (
	"flag"
	"log"
	"net/http"
	"os/exec"
	"runtime"
	"time"

	httpserver "janggi/internal/server/http"
)

func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default: // linux / bsd
		cmd = exec.Command("xdg-open", url)
	}

	_ = cmd.Start() // 不阻塞，不关心错误（服务器环境可能没有图形界面）
}

func main() {
	addr := flag.String("addr", ":2889", "listen address")
	webDir := flag.String("web", "./web", "directory with index.html / js / svg")
	noBrowser := flag.Bool("no-browser", false, "do not open the browser on start")
	flag.Parse()

	mux := http.NewServeMux()
	mux.Handle("/api/", httpserver.NewServer())
	mux.Handle("/", http.FileServer(http.Dir(*webDir)))

	log.Printf("listening on %s, serving static from %s", *addr, *webDir)

	if !*noBrowser {
		// 稍等一下再开浏览器，免得服务器还没起来
		go func() {
			time.Sleep(100 * time.Millisecond)
			openBrowser("http://127.0.0.1" + *addr)
		}()
	}

	if err := http.ListenAndServe(*addr, mux); err != nil {
		log.Fatal(err)
	}
}
